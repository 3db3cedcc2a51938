package orient

import (
	"testing"

	"github.com/paxgfx/pax/internal/transform"
	"github.com/stretchr/testify/require"
)

func TestInverseComposesToIdentity(t *testing.T) {
	w, h := 10.0, 20.0
	p := transform.Point{X: 3, Y: 7}
	for _, o := range []Orientation{Upright, RotCCW, RotHalf, RotCW, FlipH, FlipHRotCCW, FlipHRotHalf, FlipHRotCW} {
		mapped := PointF(o, w, h, p)
		back := UnpointF(o, w, h, mapped)
		require.InDelta(t, p.X, back.X, 1e-9, "orientation %v", o)
		require.InDelta(t, p.Y, back.Y, 1e-9, "orientation %v", o)
	}
}

func TestIntPointInverseRoundTrips(t *testing.T) {
	w, h := 10, 20
	p := IntPoint{X: 3, Y: 7}
	for _, o := range []Orientation{Upright, RotCCW, RotHalf, RotCW, FlipH, FlipHRotCCW, FlipHRotHalf, FlipHRotCW} {
		mapped := PointI(o, w, h, p)
		back := UnpointI(o, w, h, mapped)
		require.Equal(t, p, back, "orientation %v", o)
	}
}

func TestRotHalfIsPointReflection(t *testing.T) {
	got := PointF(RotHalf, 10, 10, transform.Point{X: 2, Y: 3})
	require.Equal(t, transform.Point{X: 8, Y: 7}, got)
}

func TestCanonicalizeFlipsNegative(t *testing.T) {
	r := IntRect{X: 5, Y: 5, W: -3, H: 2}
	c := r.Canonicalize()
	require.Equal(t, IntRect{X: 2, Y: 5, W: 3, H: 2}, c)
}
