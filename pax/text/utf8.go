// Package text implements PAX's string-drawing layer on top of pax/font:
// UTF-8 code point walking, glyph layout (monospace and variable-pitch),
// alignment, and the plain/antialiased bitmap-glyph shaders (spec.md
// §4.9).
package text

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// replacementChar is returned by Decode in place of an invalid or
// truncated UTF-8 sequence, per spec.md §4.9.
const replacementChar = '�'

// Decode reads one code point from the start of b. On a malformed or
// truncated sequence it returns (U+FFFD, 1), so callers advance by one
// byte; an empty b yields (U+FFFD, 0).
func Decode(b []byte) (rune, int) {
	if len(b) == 0 {
		return replacementChar, 0
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return replacementChar, 1
	}
	return r, size
}

// SeekNext returns the byte offset of the code point following the one
// starting at pos.
func SeekNext(s string, pos int) int {
	if pos >= len(s) {
		return len(s)
	}
	_, size := Decode([]byte(s[pos:]))
	return pos + size
}

// SeekPrev returns the byte offset of the code point preceding the one
// starting at pos, walking backward up to utf8.UTFMax bytes to find a
// valid sequence start.
func SeekPrev(s string, pos int) int {
	if pos <= 0 {
		return 0
	}
	i := pos - 1
	for i > 0 && !utf8.RuneStart(s[i]) && pos-i < utf8.UTFMax {
		i--
	}
	return i
}

// Runes decodes s into a slice of code points using Decode's
// replacement-on-error semantics, for callers that want random access by
// character index rather than byte offset. s is first normalized to NFC
// so a decomposed accent sequence (base letter + combining mark) lays out
// as the single precomposed glyph the bitmap font actually has, rather
// than as two code points the font has no combining-mark rendering for.
func Runes(s string) []rune {
	b := []byte(norm.NFC.String(s))
	out := make([]rune, 0, len(b))
	for len(b) > 0 {
		r, size := Decode(b)
		out = append(out, r)
		if size == 0 {
			size = 1
		}
		b = b[size:]
	}
	return out
}
