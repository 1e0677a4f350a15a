package history

import (
	"fmt"
	"sync"
	"time"

	"github.com/npillmayer/uax/grapheme"
)

// Layouts for presenting timestamps.
const (
	DisplayLayout = "02/01/2006 15:04"
	ExportLayout  = "02/01/2006 15:04:05"
)

// PreviewLength is the number of user-perceived characters Entry.String
// shows of an entry's text.
const PreviewLength = 50

// Entry is a single logged text. Entries are immutable; ID identifies
// an entry within its store.
type Entry struct {
	ID        int64
	Text      string
	Timestamp time.Time
}

// Equal reports whether e and other denote the same entry.
// Entries are compared by ID only.
func (e Entry) Equal(other Entry) bool {
	return e.ID == other.ID
}

// FormattedDate returns the entry's timestamp as dd/MM/yyyy HH:mm.
func (e Entry) FormattedDate() string {
	return e.Timestamp.Format(DisplayLayout)
}

var setupGraphemes sync.Once

// Preview returns the text cut to at most n grapheme clusters. A cut
// text is suffixed with "...".
func (e Entry) Preview(n int) string {
	if n <= 0 || len(e.Text) <= n {
		return e.Text
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(e.Text)
	if gstr.Len() <= n {
		return e.Text
	}
	var prefix []byte
	for i := 0; i < n; i++ {
		prefix = append(prefix, gstr.Nth(i)...)
	}
	return string(prefix) + "..."
}

func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.FormattedDate(), e.Preview(PreviewLength))
}
