/*
Package style implements a registry of named Unicode text styles.

A style turns plain text into a visually distinct Unicode rendition: bold or
script letters from the Mathematical Alphanumeric Symbols block, circled and
squared letters, superscript, combining-mark decorations, upside-down text,
and "zalgo" glitch noise. Every style is either backed by a codepoint.Map,
applied scalar value by scalar value, or by a procedural converter.

The Registry is built once and is read-only afterwards. It is safe for
concurrent use by multiple goroutines, including the randomized styles,
which draw a fresh random generator for every call to Convert:

	reg := style.NewRegistry()
	bold, _ := reg.Style("serifBold")
	fmt.Println(bold.Convert("Hello"))   // 𝐇𝐞𝐥𝐥𝐨

All converters operate on Unicode scalar values, not on grapheme clusters.
Reversing or flipping a string which contains combining marks or
multi-code-point emoji will therefore re-attach marks to different base
characters. This is long-standing observable behaviour and kept as is.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylize.style'.
func tracer() tracing.Trace {
	return tracing.Select("stylize.style")
}
