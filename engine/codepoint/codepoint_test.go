package codepoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunWithOverride(t *testing.T) {
	m := NewBuilder().Run('a', 0x1D44E, 26).Put('h', "ℎ").Map()
	assert.Equal(t, 26, m.Len())
	s, ok := m.Lookup('a')
	assert.True(t, ok)
	assert.Equal(t, string(rune(0x1D44E)), s)
	s, _ = m.Lookup('h')
	assert.Equal(t, "ℎ", s, "override must win over the contiguous run")
	s, _ = m.Lookup('z')
	assert.Equal(t, string(rune(0x1D44E+25)), s)
	_, ok = m.Lookup('A')
	assert.False(t, ok)
}

func TestTableAndPairs(t *testing.T) {
	m := NewBuilder().
		Table('0', "⓪①②③④⑤⑥⑦⑧⑨").
		Pairs("+", "⁺", "(", "⁽").
		Map()
	assert.Equal(t, 12, m.Len())
	s, _ := m.Lookup('9')
	assert.Equal(t, "⑨", s)
	s, _ = m.Lookup('(')
	assert.Equal(t, "⁽", s)
	assert.Equal(t, []rune{'(', '+', '0'}, m.Keys()[:3])
}

func TestApplyPassesThroughUnmapped(t *testing.T) {
	m := NewBuilder().Run('A', 0x1D400, 26).Map()
	out := string(m.Apply(nil, "Ab 😀"))
	assert.Equal(t, "𝐀b 😀", out)
}

func TestBuilderIsolation(t *testing.T) {
	b := NewBuilder().Identity('a', 3)
	m1 := b.Map()
	b.Put('a', "x")
	m2 := b.Map()
	s1, _ := m1.Lookup('a')
	s2, _ := m2.Lookup('a')
	assert.Equal(t, "a", s1)
	assert.Equal(t, "x", s2)
}

func TestBuilderPanics(t *testing.T) {
	assert.Panics(t, func() { NewBuilder().Put('a', "") })
	assert.Panics(t, func() { NewBuilder().Pairs("ab", "x") })
	assert.Panics(t, func() { NewBuilder().Pairs("a") })
}
