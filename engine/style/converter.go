package style

import (
	"math/rand"
	"time"

	"github.com/npillmayer/stylize/engine/codepoint"
)

// A Converter transforms plain text into styled text. Converters are total:
// they accept every input, including the empty string, and never fail.
type Converter interface {
	Convert(text string) string
}

// ConverterFunc adapts an ordinary function to the Converter interface.
type ConverterFunc func(string) string

// Convert calls f(text).
func (f ConverterFunc) Convert(text string) string {
	return f(text)
}

// MapConverter applies a codepoint.Map to every scalar value of a text.
// Scalar values without a mapping are copied unchanged.
type MapConverter struct {
	cmap codepoint.Map
}

// NewMapConverter creates a converter for m.
func NewMapConverter(m codepoint.Map) MapConverter {
	return MapConverter{cmap: m}
}

// Convert is part of interface Converter.
func (mc MapConverter) Convert(text string) string {
	return string(mc.cmap.Apply(make([]byte, 0, len(text)*4), text))
}

// Map returns the underlying code-point map.
func (mc MapConverter) Map() codepoint.Map {
	return mc.cmap
}

func (mc MapConverter) appendRune(buf []byte, r rune) []byte {
	if s, ok := mc.cmap.Lookup(r); ok {
		return append(buf, s...)
	}
	return appendRune(buf, r)
}

var _ runeAppender = MapConverter{}

// --- Randomness ------------------------------------------------------------

// Intner is the part of *rand.Rand randomized converters draw from.
type Intner interface {
	Intn(n int) int
}

// RandomSource creates a random generator. Randomized converters call it
// once per conversion, so generators are never shared between goroutines.
type RandomSource func() Intner

// DefaultRandomSource returns a generator seeded from the wall clock.
func DefaultRandomSource() Intner {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// SeededSource returns a RandomSource producing identically seeded
// generators, making randomized styles reproducible.
func SeededSource(seed int64) RandomSource {
	return func() Intner {
		return rand.New(rand.NewSource(seed))
	}
}
