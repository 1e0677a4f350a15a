package style

import (
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// GraphemeCount returns the number of user-perceived characters of a
// styled text. Styles like underline or zalgo produce many more scalar
// values than visible characters.
func GraphemeCount(text string) int {
	if text == "" {
		return 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return grapheme.StringFromString(text).Len()
}

// DisplayWidth estimates the number of terminal cells text occupies, with
// East Asian wide characters (fullwidth and CJK styles) counting twice.
func DisplayWidth(text string) int {
	if text == "" {
		return 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(text)
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		w += uax11.Width([]byte(gstr.Nth(i)), uax11.LatinContext)
	}
	return w
}
