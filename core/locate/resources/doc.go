/*
Package resources resolves per-user resources for an application, such as
the location of the persisted conversion history.

Locations are derived from the application configuration. The key
`app-key` names the application's sub-folder within the user's
configuration directory, and explicit keys (e.g. `history-file`) override
derived defaults.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'stylize.resources'.
func tracer() tracing.Trace {
	return tracing.Select("stylize.resources")
}
