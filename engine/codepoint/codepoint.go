package codepoint

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Map maps single Unicode scalar values to replacement strings.
// Replacements are never empty. A Map is immutable once built and
// therefore safe for concurrent use.
type Map struct {
	m map[rune]string
}

// Lookup returns the replacement for r, if r is mapped.
func (cm Map) Lookup(r rune) (string, bool) {
	s, ok := cm.m[r]
	return s, ok
}

// Len returns the number of mapped code-points.
func (cm Map) Len() int {
	return len(cm.m)
}

// Keys returns the mapped code-points in ascending order.
func (cm Map) Keys() []rune {
	keys := make([]rune, 0, len(cm.m))
	for r := range cm.m {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Apply appends the mapping of every scalar value of text to buf and returns
// the extended buffer. Unmapped values are copied unchanged.
func (cm Map) Apply(buf []byte, text string) []byte {
	for _, r := range text {
		if s, ok := cm.m[r]; ok {
			buf = append(buf, s...)
		} else {
			buf = utf8.AppendRune(buf, r)
		}
	}
	return buf
}

func (cm Map) String() string {
	return fmt.Sprintf("codepoint.Map[%d]", len(cm.m))
}

// --- Builder ---------------------------------------------------------------

// Builder collects mappings for a Map. Later entries override earlier ones,
// which is how exceptions to a contiguous run are expressed.
//
// Builder methods panic on invalid input. Maps are built from static tables
// at initialization time, where a broken table is a programming error.
type Builder struct {
	m map[rune]string
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{m: make(map[rune]string, 64)}
}

// Put maps key to replacement.
func (b *Builder) Put(key rune, replacement string) *Builder {
	if replacement == "" {
		panic(fmt.Sprintf("codepoint: empty replacement for %q", key))
	}
	if !utf8.ValidRune(key) {
		panic(fmt.Sprintf("codepoint: invalid key %U", key))
	}
	b.m[key] = replacement
	return b
}

// Run maps n consecutive code-points starting at from to n consecutive
// code-points starting at base, i.e. from+i ⇒ base+i.
func (b *Builder) Run(from rune, base rune, n int) *Builder {
	for i := 0; i < n; i++ {
		b.Put(from+rune(i), string(base+rune(i)))
	}
	return b
}

// Identity maps n consecutive code-points starting at from to themselves.
func (b *Builder) Identity(from rune, n int) *Builder {
	return b.Run(from, from, n)
}

// Table maps from+i to the i-th scalar value of glyphs.
func (b *Builder) Table(from rune, glyphs string) *Builder {
	i := 0
	for _, g := range glyphs {
		b.Put(from+rune(i), string(g))
		i++
	}
	return b
}

// Pairs reads a table of alternating keys and replacements, e.g.
// Pairs("a", "ₐ", "e", "ₑ"). Every key must be a single scalar value.
func (b *Builder) Pairs(kv ...string) *Builder {
	if len(kv)%2 != 0 {
		panic("codepoint: odd number of arguments to Pairs")
	}
	for i := 0; i < len(kv); i += 2 {
		k, size := utf8.DecodeRuneInString(kv[i])
		if size != len(kv[i]) || k == utf8.RuneError {
			panic(fmt.Sprintf("codepoint: key %q is not a single scalar value", kv[i]))
		}
		b.Put(k, kv[i+1])
	}
	return b
}

// Merge copies all mappings of other into b.
func (b *Builder) Merge(other Map) *Builder {
	for k, v := range other.m {
		b.m[k] = v
	}
	return b
}

// Map returns the immutable map. The builder may be re-used afterwards
// without affecting the returned map.
func (b *Builder) Map() Map {
	m := make(map[rune]string, len(b.m))
	for k, v := range b.m {
		m[k] = v
	}
	return Map{m: m}
}
