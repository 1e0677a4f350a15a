package style

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/stylize/engine/codepoint"
)

// Combining marks used by the decoration styles.
const (
	MarkStrikethrough   rune = '\u0336' // combining long stroke overlay
	MarkUnderline       rune = '\u0332' // combining low line
	MarkOverline        rune = '\u0305' // combining overline
	MarkDoubleUnderline rune = '\u0333' // combining double low line
	MarkSlash           rune = '\u0338' // combining long solidus overlay
)

// Diacritic appends a fixed combining mark after every scalar value.
type Diacritic struct {
	Mark rune
}

// Convert is part of interface Converter.
func (d Diacritic) Convert(text string) string {
	buf := make([]byte, 0, len(text)*3)
	for _, r := range text {
		buf = d.appendRune(buf, r)
	}
	return string(buf)
}

func (d Diacritic) appendRune(buf []byte, r rune) []byte {
	buf = appendRune(buf, r)
	return appendRune(buf, d.Mark)
}

var _ runeAppender = Diacritic{}

// UpsideDown replaces characters by their rotated look-alikes and reverses
// the result.
//
// The table approximates a rotation: some letters map to themselves and
// some rotations are only similar (M becomes W, but w becomes ʍ). A second
// application does not restore the input.
type UpsideDown struct {
	flip codepoint.Map
}

// Convert is part of interface Converter.
func (u UpsideDown) Convert(text string) string {
	flipped := NewMapConverter(u.flip).Convert(text)
	return Reverse(flipped)
}

// Reverse reverses the sequence of scalar values of text. Combining marks
// end up before their base character; double reversal is the identity.
func Reverse(text string) string {
	rs := []rune(text)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return string(rs)
}

// Widen puts a single space between adjacent scalar values.
func Widen(text string) string {
	n := utf8.RuneCountInString(text)
	if n < 2 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + n - 1)
	i := 0
	for _, r := range text {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		i++
	}
	return b.String()
}

// Decorate wraps a text between two symbols, each picked at random
// from Symbols.
type Decorate struct {
	Symbols []string
	Random  RandomSource
}

// Convert is part of interface Converter.
func (d Decorate) Convert(text string) string {
	if len(d.Symbols) == 0 {
		return text
	}
	rnd := d.random()()
	left := d.Symbols[rnd.Intn(len(d.Symbols))]
	right := d.Symbols[rnd.Intn(len(d.Symbols))]
	return left + " " + text + " " + right
}

func (d Decorate) random() RandomSource {
	if d.Random == nil {
		return DefaultRandomSource
	}
	return d.Random
}
