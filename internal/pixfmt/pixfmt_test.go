package pixfmt

import (
	"testing"

	"github.com/paxgfx/pax/internal/pcolor"
	"github.com/stretchr/testify/require"
)

func TestARGB8888RoundTrip(t *testing.T) {
	c := pcolor.ARGB(0xFF, 0x20, 0x40, 0x60)
	native := ToNative(ARGB8888, c)
	back := FromNative(ARGB8888, native, nil)
	require.Equal(t, c, back)
}

func TestGrey1SetGet(t *testing.T) {
	pixels := make([]byte, 1)
	tbl := NewTable(Grey1, false, nil, true, true)
	tbl.SetOne(pixels, 2, pcolor.White)
	require.Equal(t, byte(0x04), pixels[0]&0x04)
	got := tbl.GetOne(pixels, 2)
	require.Equal(t, pcolor.Color(0xFFFFFFFF), got)
}

func TestGrey1OffsetMath(t *testing.T) {
	// 4x4 grey1 buffer, pixel (2,2) -> index 2+2*4=10, byte offset 1, bit 2.
	pixels := make([]byte, BytesForPixels(Grey1, 16))
	idx := 2 + 2*4
	tbl := NewTable(Grey1, false, nil, true, true)
	tbl.SetOne(pixels, idx, pcolor.White)
	require.Equal(t, 1, idx/8)
	require.NotZero(t, pixels[1]&(1<<uint(idx%8)))
}

func TestRGB565RoundTripApprox(t *testing.T) {
	c := pcolor.ARGB(255, 255, 255, 255)
	native := ToNative(RGB565, c)
	back := FromNative(RGB565, native, nil)
	require.Equal(t, c, back)
}

func TestPaletteLookup(t *testing.T) {
	pal := []pcolor.Color{pcolor.Black, pcolor.Red, pcolor.Green}
	tbl := NewTable(Palette8, false, &pal, true, true)
	pixels := make([]byte, 1)
	tbl.SetOne(pixels, 0, pcolor.Color(1))
	require.Equal(t, pcolor.Red, tbl.GetOne(pixels, 0))
}

func TestPaletteOutOfRangeReturnsEntryZero(t *testing.T) {
	pal := []pcolor.Color{pcolor.Blue}
	got := FromNative(Palette8, 5, pal)
	require.Equal(t, pcolor.Blue, got)
}

func TestClosestInPalette(t *testing.T) {
	pal := []pcolor.Color{pcolor.Black, pcolor.White, pcolor.Red}
	idx := ClosestInPalette(pal, pcolor.ARGB(255, 250, 250, 250))
	require.Equal(t, 1, idx)
}

func TestSetRangeFillsConsecutivePixels(t *testing.T) {
	pixels := make([]byte, BytesForPixels(ARGB8888, 4)*1)
	tbl := NewTable(ARGB8888, false, nil, true, true)
	tbl.SetRange(pixels, 0, 4, pcolor.Red)
	for i := 0; i < 4; i++ {
		require.Equal(t, pcolor.Red, tbl.GetOne(pixels, i))
	}
}

func TestMergeRangeBlendsPartialAlpha(t *testing.T) {
	pixels := make([]byte, BytesForPixels(ARGB8888, 2))
	tbl := NewTable(ARGB8888, false, nil, true, true)
	tbl.SetRange(pixels, 0, 2, pcolor.Black)
	tbl.MergeRange(pixels, 0, 2, pcolor.ARGB(128, 255, 255, 255))
	got := tbl.GetOne(pixels, 0)
	require.Equal(t, uint8(255), got.A())
	require.Greater(t, int(got.R()), 100)
}

func TestSetRangeDisabledFallsBackToPerPixelLoop(t *testing.T) {
	pixels := make([]byte, BytesForPixels(ARGB8888, 4))
	tbl := NewTable(ARGB8888, false, nil, false, true)
	tbl.SetRange(pixels, 0, 4, pcolor.Red)
	for i := 0; i < 4; i++ {
		require.Equal(t, pcolor.Red, tbl.GetOne(pixels, i))
	}
}

func TestMergeRangeDisabledSkipsOpaqueFastPath(t *testing.T) {
	pixels := make([]byte, BytesForPixels(ARGB8888, 2))
	tbl := NewTable(ARGB8888, false, nil, true, false)
	tbl.SetRange(pixels, 0, 2, pcolor.Black)
	tbl.MergeRange(pixels, 0, 2, pcolor.White) // opaque, but range-merge is disabled
	require.Equal(t, pcolor.White, tbl.GetOne(pixels, 0))
	require.Equal(t, pcolor.White, tbl.GetOne(pixels, 1))
}
