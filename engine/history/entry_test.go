package history

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntryFormatting(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 9, 7, 33, 0, time.Local)
	e := Entry{ID: 1, Text: "Hello", Timestamp: ts}
	assert.Equal(t, "05/03/2024 09:07", e.FormattedDate())
	assert.Equal(t, "[05/03/2024 09:07] Hello", e.String())
}

func TestEntryPreview(t *testing.T) {
	e := Entry{Text: strings.Repeat("x", 60)}
	assert.Equal(t, strings.Repeat("x", 50)+"...", e.Preview(50))
	assert.Equal(t, e.Text, e.Preview(60))
	assert.Equal(t, e.Text, e.Preview(0))
	// combining marks stay with their base character
	e = Entry{Text: "a\u0336b\u0336c\u0336"}
	assert.Equal(t, "a\u0336b\u0336...", e.Preview(2))
	assert.Equal(t, e.Text, e.Preview(3))
}

func TestEntryEqualComparesIDs(t *testing.T) {
	a := Entry{ID: 7, Text: "a"}
	b := Entry{ID: 7, Text: "b"}
	c := Entry{ID: 8, Text: "a"}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
