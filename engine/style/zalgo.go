package style

import (
	"unicode/utf8"
)

// Intensities for zalgo styles: the maximum number of marks drawn
// per pool and character.
const (
	ZalgoLight = 2
	ZalgoHeavy = 5
)

// Mark pools for zalgo noise. Above-base and below-base marks stack
// vertically, mid marks overlay the base character.
var (
	zalgoAbove = []rune{
		'\u030d', '\u030e', '\u0304', '\u0305', '\u033f', '\u0311', '\u0306',
		'\u0310', '\u0352', '\u0357', '\u0351', '\u0307', '\u0308', '\u030a',
		'\u0342', '\u0343', '\u0344', '\u034a', '\u034b', '\u034c', '\u0303',
		'\u0302', '\u030c', '\u0350', '\u0300', '\u0301', '\u030b', '\u030f',
		'\u0312',
	}
	zalgoMid = []rune{
		'\u0315', '\u031b', '\u0340', '\u0341', '\u0358', '\u0321', '\u0322',
		'\u0327', '\u0328', '\u0334', '\u0335', '\u0336', '\u034f', '\u035c',
		'\u035d', '\u035e', '\u035f', '\u0360', '\u0362', '\u0338', '\u0337',
		'\u0361', '\u0489',
	}
	zalgoBelow = []rune{
		'\u0316', '\u0317', '\u0318', '\u0319', '\u031c', '\u031d', '\u031e',
		'\u031f', '\u0320', '\u0324', '\u0325', '\u0326', '\u0329', '\u032a',
		'\u032b', '\u032c', '\u032d', '\u032e', '\u032f', '\u0330', '\u0331',
		'\u0332', '\u0333', '\u0339', '\u033a', '\u033b', '\u033c', '\u0345',
		'\u0347', '\u0348', '\u0349', '\u034d', '\u034e', '\u0353', '\u0354',
		'\u0355', '\u0356', '\u0359', '\u035a', '\u0323',
	}
)

// Zalgo stacks random combining marks on every scalar value. For each of
// the three mark pools a count in [0, MaxMarks] is drawn, then that many
// marks are drawn from the pool (with replacement).
type Zalgo struct {
	MaxMarks int
	Random   RandomSource
}

// Convert is part of interface Converter.
func (z Zalgo) Convert(text string) string {
	rnd := DefaultRandomSource
	if z.Random != nil {
		rnd = z.Random
	}
	rng := rnd()
	buf := make([]byte, 0, len(text)*(1+3*z.MaxMarks))
	for _, r := range text {
		buf = appendRune(buf, r)
		for _, pool := range [3][]rune{zalgoAbove, zalgoMid, zalgoBelow} {
			n := rng.Intn(z.MaxMarks + 1)
			for i := 0; i < n; i++ {
				buf = appendRune(buf, pool[rng.Intn(len(pool))])
			}
		}
	}
	return string(buf)
}

func appendRune(buf []byte, r rune) []byte {
	return utf8.AppendRune(buf, r)
}
