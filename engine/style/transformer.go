package style

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// runeAppender is implemented by converters which map every scalar value
// independently of its neighbours. Those can be applied to a stream.
type runeAppender interface {
	appendRune(buf []byte, r rune) []byte
}

// Transformer returns a transform.Transformer applying s to a byte stream.
// Only styles converting scalar value by scalar value can stream; for
// styles which need the whole text (reversal, upside-down, widening,
// decoration, zalgo) ok is false.
func Transformer(s Style) (t transform.Transformer, ok bool) {
	ra, ok := s.conv.(runeAppender)
	if !ok {
		return nil, false
	}
	return &runeTransformer{conv: ra}, true
}

type runeTransformer struct {
	transform.NopResetter
	conv runeAppender
	buf  []byte
}

// Transform is part of interface transform.Transformer.
func (rt *runeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size < 2 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			err = transform.ErrShortSrc
			break
		}
		rt.buf = rt.conv.appendRune(rt.buf[:0], r)
		if nDst+len(rt.buf) > len(dst) {
			err = transform.ErrShortDst
			break
		}
		nDst += copy(dst[nDst:], rt.buf)
		nSrc += size
	}
	return nDst, nSrc, err
}
