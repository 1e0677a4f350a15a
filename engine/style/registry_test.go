package style

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylize/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylize.style")
	defer teardown()
	//
	reg := NewRegistry()
	require.Equal(t, 44, reg.Len())
	ids := reg.IDs()
	assert.Equal(t, "serifNormal", ids[0])
	assert.Equal(t, "serifBold", ids[1])
	assert.Equal(t, "zalgoHeavy", ids[len(ids)-1])
	all := reg.All()
	require.Len(t, all, len(ids))
	seen := make(map[string]bool)
	for i, s := range all {
		assert.Equal(t, ids[i], s.ID)
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
		assert.NotEmpty(t, s.Category)
		assert.NotEmpty(t, s.Icon)
		assert.NotNil(t, s.Converter())
	}
}

func TestRegistryLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylize.style")
	defer teardown()
	//
	reg := NewRegistry()
	s, err := reg.Lookup("monospace")
	require.NoError(t, err)
	assert.Equal(t, CatMonospace, s.Category)
	_, ok := reg.Style("comicSans")
	assert.False(t, ok)
	_, err = reg.Lookup("comicSans")
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestRegistryCategories(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylize.style")
	defer teardown()
	//
	reg := NewRegistry()
	cats := reg.Categories()
	assert.Equal(t, CatSerif, cats[0])
	assert.Equal(t, CatGlitch, cats[len(cats)-1])
	assert.Len(t, cats, 15)
	circled := reg.ByCategory(CatCircled)
	require.Len(t, circled, 4)
	assert.Equal(t, "circled", circled[0].ID)
	assert.Equal(t, "bubbleNegative", circled[3].ID)
	assert.Len(t, reg.ByCategory(CatDecoration), 5)
	assert.Nil(t, reg.ByCategory("Comic"))
	total := 0
	for _, c := range cats {
		total += len(reg.ByCategory(c))
	}
	assert.Equal(t, reg.Len(), total)
}

func TestByCategoryReturnsCopy(t *testing.T) {
	reg := NewRegistry()
	list := reg.ByCategory(CatGlitch)
	list[0] = Style{ID: "hijacked"}
	assert.Equal(t, "zalgoLight", reg.ByCategory(CatGlitch)[0].ID)
}

func TestConvertAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylize.style")
	defer teardown()
	//
	reg := NewRegistry(WithRandomSource(SeededSource(1)))
	results, err := reg.ConvertAll("  Hello \n")
	require.NoError(t, err)
	require.Len(t, results, reg.Len())
	assert.Equal(t, "Hello", results[0].Text)
	for _, r := range results {
		if r.Style.ID == "mathBold" {
			assert.Equal(t, "𝐇𝐞𝐥𝐥𝐨", r.Text)
		}
	}
	_, err = reg.ConvertAll(" \t ")
	assert.True(t, errors.Is(err, ErrEmptyInput))
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestZeroStyleIsIdentity(t *testing.T) {
	assert.Equal(t, "abc", Style{}.Convert("abc"))
}
