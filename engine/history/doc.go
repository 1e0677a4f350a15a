/*
Package history keeps a bounded log of texts a user has converted.

The log is ordered newest-first and holds at most Config.Limit entries
(50 by default); adding to a full log evicts the oldest entry. Adding the
same text twice in a row records it only once. There is no global
de-duplication: "a", "b", "a" are three entries.

Every mutation is written synchronously to a flat file with one entry
per line:

	<id>|<local timestamp>|<text with newlines escaped as \n>

Persistence failures never surface from the mutators. They are traced,
the store continues in memory, and the last failure is available from
Store.LastError.

A Store is not safe for concurrent mutation. Clients serialize access.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package history

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylize.history'.
func tracer() tracing.Trace {
	return tracing.Select("stylize.history")
}
