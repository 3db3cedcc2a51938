package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentityAppliedToPointIsPoint(t *testing.T) {
	p := Point{3, 4}
	require.Equal(t, p, Identity().Apply(p))
}

func TestInverseRoundTrip(t *testing.T) {
	m := Rotate(0.7).Mul(Scale(2, 3)).Mul(Translate(5, -2))
	inv, ok := m.Invert()
	require.True(t, ok)
	p := Point{10, -4}
	back := inv.Apply(m.Apply(p))
	require.InDelta(t, p.X, back.X, 1e-9)
	require.InDelta(t, p.Y, back.Y, 1e-9)
}

func TestStackPushPopRestoresTop(t *testing.T) {
	s := NewStack()
	before := s.Top()
	s.Push()
	s.Apply(Scale(2, 2))
	require.NotEqual(t, before, s.Top())
	ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, before, s.Top())
}

func TestPopRootFails(t *testing.T) {
	s := NewStack()
	require.False(t, s.Pop())
}

func TestResetAllUnlinksNonRoot(t *testing.T) {
	s := NewStack()
	s.Push()
	s.Push()
	require.Equal(t, 3, s.Depth())
	s.Reset(true)
	require.Equal(t, 1, s.Depth())
}

func TestIsFirstOrder(t *testing.T) {
	require.True(t, Identity().IsFirstOrder())
	require.True(t, Scale(2, 3).Mul(Translate(1, 1)).IsFirstOrder())
	require.False(t, Rotate(math.Pi/4).IsFirstOrder())
}

func TestApplyRectCanMirror(t *testing.T) {
	m := Scale(-1, 1)
	r := m.ApplyRect(Rect{X: 0, Y: 0, W: 4, H: 4})
	require.Less(t, r.W, 0.0)
}
