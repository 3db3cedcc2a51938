package text

import (
	"testing"

	"github.com/stretchr/testify/require"

	pfont "github.com/paxgfx/pax/pax/font"
)

func TestDecodeValidASCII(t *testing.T) {
	r, n := Decode([]byte("hi"))
	require.Equal(t, 'h', r)
	require.Equal(t, 1, n)
}

func TestDecodeInvalidSequenceReturnsReplacementWithOneByteConsumed(t *testing.T) {
	r, n := Decode([]byte{0xff, 0x41})
	require.Equal(t, rune(replacementChar), r)
	require.Equal(t, 1, n)
}

func TestDecodeEmpty(t *testing.T) {
	r, n := Decode(nil)
	require.Equal(t, rune(replacementChar), r)
	require.Equal(t, 0, n)
}

func TestSeekNextAndSeekPrevRoundTrip(t *testing.T) {
	s := "aéb" // 'a', small-e-acute (2 bytes), 'b'
	p := SeekNext(s, 0)
	require.Equal(t, 1, p)
	p = SeekNext(s, p)
	require.Equal(t, 3, p)
	p = SeekPrev(s, p)
	require.Equal(t, 1, p)
}

func monospaceFont() *pfont.Font {
	return &pfont.Font{
		DefaultSize: 8,
		Ranges: []pfont.Range{
			{Kind: pfont.Monospace, First: 'A', Last: 'Z', Height: 8, GlyphWidth: 6, Bitmap: make([]byte, 26*6*8)},
		},
	}
}

func TestLayoutLineAdvancesByGlyphWidth(t *testing.T) {
	f := monospaceFont()
	glyphs, width := layoutLine(f, []rune("ABC"))
	require.Len(t, glyphs, 3)
	require.Equal(t, 18.0, width)
	require.Equal(t, 0.0, glyphs[0].DrawX)
	require.Equal(t, 6.0, glyphs[1].DrawX)
	require.Equal(t, 12.0, glyphs[2].DrawX)
}

func TestMeasureMultilineTakesWidestLine(t *testing.T) {
	f := monospaceFont()
	w, h := Measure(f, "AB\nABC")
	require.Equal(t, 18.0, w)
	require.Equal(t, 16.0, h)
}

func TestCursorOffsetAtStringStart(t *testing.T) {
	f := monospaceFont()
	x, y := CursorOffset(f, "ABC", 0, AlignBegin)
	require.Equal(t, 0.0, x)
	require.Equal(t, 0.0, y)
}

func TestCursorOffsetAfterSecondLine(t *testing.T) {
	f := monospaceFont()
	x, y := CursorOffset(f, "AB\nABC", 4, AlignBegin)
	require.Equal(t, 6.0, x)
	require.Equal(t, 8.0, y)
}

func TestCursorOffsetCenterAlignedOffsetsByHalfWidth(t *testing.T) {
	f := monospaceFont()
	x, _ := CursorOffset(f, "AB", 0, AlignCenter)
	require.Equal(t, -6.0, x)
}

func TestBitAtAndSampleForMonospace(t *testing.T) {
	f := monospaceFont()
	rg := &f.Ranges[0]
	rg.Bitmap[0] = 0b10000000 // first row of glyph 0 ('A'), leftmost bit set
	g := sampleFor(rg, 0)
	require.True(t, bitAt(g, 0, 0))
	require.False(t, bitAt(g, 1, 0))
}
