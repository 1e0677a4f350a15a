package style

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func convert(t *testing.T, reg *Registry, id, text string) string {
	s, ok := reg.Style(id)
	require.True(t, ok, "style %q not registered", id)
	return s.Convert(text)
}

func TestSerifNormalIsIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylize.style")
	defer teardown()
	//
	reg := NewRegistry()
	for c := 'a'; c <= 'z'; c++ {
		assert.Equal(t, string(c), convert(t, reg, "serifNormal", string(c)))
		C := c - 'a' + 'A'
		assert.Equal(t, string(C), convert(t, reg, "serifNormal", string(C)))
	}
}

func TestFormulaFamilies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylize.style")
	defer teardown()
	//
	reg := NewRegistry()
	cases := []struct {
		style, in string
		out       rune
	}{
		{"serifBold", "a", 0x1D41A},
		{"serifBold", "A", 0x1D400},
		{"serifBold", "0", 0x1D7CE},
		{"serifBold", "m", 0x1D41A + 12},
		{"serifBold", "Z", 0x1D400 + 25},
		{"serifItalic", "a", 0x1D44E},
		{"serifItalic", "h", 0x210E}, // not U+1D455, which is unassigned
		{"serifItalic", "i", 0x1D456},
		{"sansSerifBold", "9", 0x1D7F5},
		{"scriptNormal", "e", 0x212F},
		{"scriptNormal", "B", 0x212C},
		{"scriptNormal", "A", 0x1D49C},
		{"frakturNormal", "C", 0x212D},
		{"frakturNormal", "Z", 0x2128},
		{"frakturNormal", "a", 0x1D51E},
		{"doubleStruck", "R", 0x211D},
		{"doubleStruck", "A", 0x1D538},
		{"doubleStruck", "1", 0x1D7D9},
		{"monospace", "z", 0x1D68A + 25},
		{"circled", "0", 0x24EA},
		{"circled", "1", 0x2460},
		{"circledNegative", "A", 0x1F150},
		{"squaredNegative", "Z", 0x1F170 + 25},
		{"regionalFlags", "d", 0x1F1E9},
		{"fullwidth", "5", 0xFF15},
	}
	for _, c := range cases {
		assert.Equal(t, string(c.out), convert(t, reg, c.style, c.in),
			"%s(%q) should be %U", c.style, c.in, c.out)
	}
}

func TestUnmappedPassesThrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylize.style")
	defer teardown()
	//
	reg := NewRegistry()
	assert.Equal(t, "ᴴᵉˡˡᵒ q!", convert(t, reg, "superscript", "Hello q!"))
	assert.Equal(t, "1 😀", convert(t, reg, "squared", "1 😀"))
	assert.Equal(t, "", convert(t, reg, "mathBold", ""))
}

func TestEndToEndHello(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylize.style")
	defer teardown()
	//
	reg := NewRegistry()
	assert.Equal(t, "𝐇𝐞𝐥𝐥𝐨", convert(t, reg, "mathBold", "Hello"))
	assert.Equal(t, "olleH", convert(t, reg, "reversed", "Hello"))
	assert.Equal(t, "H e l l o", convert(t, reg, "wide", "Hello"))
	assert.Equal(t, "ollǝH", convert(t, reg, "upsideDown", "Hello"))
	assert.Equal(t, "ん乇ﾚﾚの", convert(t, reg, "asianStyle", "Hello"))
}

func TestReverseTwiceIsIdentity(t *testing.T) {
	for _, s := range []string{"", "a", "Hello, World", "été", "👍🏽 ok", "|x|\n"} {
		assert.Equal(t, s, Reverse(Reverse(s)))
	}
}

func TestWidenInsertsSpaces(t *testing.T) {
	for _, s := range []string{"a", "ab", "Hello", "𝐇𝐞𝐥𝐥𝐨"} {
		w := Widen(s)
		n := utf8.RuneCountInString(s)
		assert.Equal(t, n-1, strings.Count(w, " "), "spaces in %q", w)
		assert.Equal(t, 2*n-1, utf8.RuneCountInString(w))
	}
	assert.Equal(t, "", Widen(""))
}

func TestDiacriticDoublesLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylize.style")
	defer teardown()
	//
	reg := NewRegistry()
	for _, s := range reg.ByCategory(CatDecoration) {
		for _, in := range []string{"", "x", "Hello World", "𝐇i"} {
			out := s.Convert(in)
			assert.Equal(t, 2*utf8.RuneCountInString(in), utf8.RuneCountInString(out), s.ID)
		}
	}
	assert.Equal(t, "a\u0336b\u0336", convert(t, reg, "strikethrough", "ab"))
}

func TestZalgoIsBounded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylize.style")
	defer teardown()
	//
	for _, maxMarks := range []int{ZalgoLight, ZalgoHeavy} {
		for seed := int64(0); seed < 20; seed++ {
			z := Zalgo{MaxMarks: maxMarks, Random: SeededSource(seed)}
			in := "Hello"
			out := z.Convert(in)
			n, m := utf8.RuneCountInString(in), utf8.RuneCountInString(out)
			assert.GreaterOrEqual(t, m, n)
			assert.LessOrEqual(t, m, n*(1+3*maxMarks))
			assert.Equal(t, 'H', []rune(out)[0])
		}
	}
}

func TestZalgoIsReproducibleWithSeed(t *testing.T) {
	z := Zalgo{MaxMarks: ZalgoHeavy, Random: SeededSource(42)}
	assert.Equal(t, z.Convert("glitch"), z.Convert("glitch"))
	assert.Equal(t, "", z.Convert(""))
}

func TestCuteDecoration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylize.style")
	defer teardown()
	//
	reg := NewRegistry(WithRandomSource(SeededSource(7)))
	out := convert(t, reg, "cute", "hi")
	parts := strings.Split(out, " ")
	require.Len(t, parts, 3)
	assert.Contains(t, cuteSymbols, parts[0])
	assert.Equal(t, "hi", parts[1])
	assert.Contains(t, cuteSymbols, parts[2])
	assert.Equal(t, out, convert(t, reg, "cute", "hi"), "seeded output should repeat")
}

func TestUpsideDownIsNotAnInvolution(t *testing.T) {
	ud := UpsideDown{flip: upsideDownMap()}
	assert.Equal(t, "ʍ", ud.Convert("w"))
	assert.Equal(t, "W", ud.Convert("M"))
	assert.NotEqual(t, "w", ud.Convert(ud.Convert("w")))
}
