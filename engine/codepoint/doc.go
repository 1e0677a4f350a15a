/*
Package codepoint implements immutable mappings from a single Unicode scalar
value to a replacement string.

Maps are assembled with a Builder, either from contiguous runs of code-points
(the Mathematical Alphanumeric Symbols block is laid out in runs of 26 letters
and 10 digits), from literal glyph tables, or from single overrides. Overrides
are needed because some letters of a run were encoded in Unicode long before
the run itself, in the Letterlike Symbols block (e.g., italic small h is
U+210E, not U+1D455). Those holes must be patched explicitly.

	m := codepoint.NewBuilder().
		Run('a', 0x1D44E, 26).
		Put('h', "ℎ").
		Map()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package codepoint
