package pcolor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestARGBChannels(t *testing.T) {
	c := ARGB(0x11, 0x22, 0x33, 0x44)
	require.Equal(t, uint8(0x11), c.A())
	require.Equal(t, uint8(0x22), c.R())
	require.Equal(t, uint8(0x33), c.G())
	require.Equal(t, uint8(0x44), c.B())
}

func TestMergeOpaqueOverOpaque(t *testing.T) {
	require.Equal(t, White, Merge(Black, White))
	require.Equal(t, White, Merge(White, Transparent))
}

func TestMergeHalfAlpha(t *testing.T) {
	base := ARGB(255, 0, 0, 0)
	top := ARGB(128, 255, 255, 255)
	out := Merge(base, top)
	require.Equal(t, uint8(255), out.A())
	require.InDelta(t, 127, int(out.R()), 2)
}

func TestTintScalesChannels(t *testing.T) {
	col := ARGB(255, 255, 255, 255)
	tint := ARGB(255, 128, 64, 0)
	out := Tint(col, tint)
	require.Equal(t, uint8(128), out.R())
	require.Equal(t, uint8(64), out.G())
	require.Equal(t, uint8(0), out.B())
}

func TestHSVPrimaries(t *testing.T) {
	red := FromHSV(255, 0, 255, 255)
	require.Equal(t, uint8(255), red.R())
	require.Equal(t, uint8(0), red.G())
	require.Equal(t, uint8(0), red.B())

	green := FromHSV(255, 512, 255, 255)
	require.Equal(t, uint8(0), green.R())
	require.Equal(t, uint8(255), green.G())

	blue := FromHSV(255, 1024, 255, 255)
	require.Equal(t, uint8(255), blue.B())
}

func TestHSVGrey(t *testing.T) {
	c := FromHSV(255, 0, 0, 128)
	require.Equal(t, uint8(128), c.R())
	require.Equal(t, uint8(128), c.G())
	require.Equal(t, uint8(128), c.B())
	_, sat, val := ToHSV(c)
	require.Equal(t, uint8(0), sat)
	require.Equal(t, uint8(128), val)
}
