package history

import (
	"strconv"
	"strings"
)

const (
	exportTitle = "=== STYLE CONVERTER HISTORY ==="
	ruleWidth   = 50
)

// Export renders the history as a human-readable report, in store order
// (newest first):
//
//	=== STYLE CONVERTER HISTORY ===
//	Exported on: 17/10/2026 14:03:12
//	Total: 2 entries
//
//	==================================================
//
//	1. [17/10/2026 14:02]
//	Text: Hello
//	--------------------------------------------------
//
func (s *Store) Export() string {
	entries := s.Entries()
	var b strings.Builder
	b.WriteString(exportTitle)
	b.WriteString("\nExported on: ")
	b.WriteString(s.clock().Format(ExportLayout))
	b.WriteString("\nTotal: ")
	b.WriteString(strconv.Itoa(len(entries)))
	if len(entries) == 1 {
		b.WriteString(" entry")
	} else {
		b.WriteString(" entries")
	}
	b.WriteString("\n\n")
	b.WriteString(strings.Repeat("=", ruleWidth))
	b.WriteString("\n\n")
	for i, e := range entries {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". [")
		b.WriteString(e.FormattedDate())
		b.WriteString("]\nText: ")
		b.WriteString(e.Text)
		b.WriteString("\n")
		b.WriteString(strings.Repeat("-", ruleWidth))
		b.WriteString("\n\n")
	}
	return b.String()
}
