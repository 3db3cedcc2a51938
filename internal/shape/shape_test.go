package shape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fullClip(w, h int) ClipRect { return ClipRect{0, 0, w, h} }

func TestTriangleCoversExpectedScanlineCount(t *testing.T) {
	v := [3]Vertex{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}
	spans := Triangle(v, fullClip(20, 20), false)
	require.Len(t, spans, 10)
	require.Equal(t, 0, spans[0].Y)
	require.Equal(t, 9, spans[len(spans)-1].Y)
}

func TestTriangleDegenerateFlatProducesNoSpans(t *testing.T) {
	v := [3]Vertex{{X: 0, Y: 5}, {X: 10, Y: 5}, {X: 5, Y: 5}}
	spans := Triangle(v, fullClip(20, 20), false)
	require.Empty(t, spans)
}

func TestTriangleShadedInterpolatesUV(t *testing.T) {
	v := [3]Vertex{
		{X: 0, Y: 0, U: 0, V: 0},
		{X: 10, Y: 0, U: 1, V: 0},
		{X: 0, Y: 10, U: 0, V: 1},
	}
	spans := Triangle(v, fullClip(20, 20), true)
	require.NotEmpty(t, spans)
	for _, s := range spans {
		require.True(t, s.Shaded)
	}
}

func TestRectClipsToBuffer(t *testing.T) {
	spans := Rect(-5, -5, 5, 5, fullClip(10, 10), false, UVNone, 0, 0, 0, 0)
	require.Len(t, spans, 5)
	for _, s := range spans {
		require.Equal(t, 0, s.X0)
		require.Equal(t, 5, s.X1)
	}
}

func TestRectAxisAlignedUVVariesPerRow(t *testing.T) {
	spans := Rect(0, 0, 4, 4, fullClip(4, 4), true, UVAxisAligned, 0, 0, 1, 1)
	require.Len(t, spans, 4)
	require.InDelta(t, 0.0, spans[0].V0, 1e-9)
	require.InDelta(t, 0.75, spans[3].V0, 1e-9)
}

func TestLineMajorAxisStepCount(t *testing.T) {
	pts := Line(0, 0, 10, 0, fullClip(20, 20))
	require.Len(t, pts, 11)
	require.Equal(t, IntPoint{X: 0, Y: 0}, pts[0])
	require.Equal(t, IntPoint{X: 10, Y: 0}, pts[len(pts)-1])
}

func TestLineFullyOutsideClipIsEmpty(t *testing.T) {
	pts := Line(-10, -10, -1, -1, fullClip(20, 20))
	require.Empty(t, pts)
}

func TestArcTrianglesFullCircleCount(t *testing.T) {
	tris := ArcTriangles(0, 0, 10, 0, 2*3.14159265, 40, false)
	require.NotEmpty(t, tris)
	for _, tri := range tris {
		require.Equal(t, 0.0, tri[0].X)
		require.Equal(t, 0.0, tri[0].Y)
	}
}

func TestHollowArcEmitsTwoTrianglesPerDivision(t *testing.T) {
	tris := HollowArcTriangles(0, 0, 5, 10, 0, 3.14159265, 40)
	require.Equal(t, 0, len(tris)%2)
}

func TestCubicBezierFixedNEndpointsMatch(t *testing.T) {
	p0 := Vertex{X: 0, Y: 0}
	p1 := Vertex{X: 0, Y: 10}
	p2 := Vertex{X: 10, Y: 10}
	p3 := Vertex{X: 10, Y: 0}
	pts := CubicBezierFixedN(p0, p1, p2, p3, 8)
	require.Len(t, pts, 9)
	require.InDelta(t, p0.X, pts[0].X, 1e-9)
	require.InDelta(t, p3.X, pts[len(pts)-1].X, 1e-9)
}

func TestCubicBezierAdaptiveGrows(t *testing.T) {
	p0 := Vertex{X: 0, Y: 0}
	p1 := Vertex{X: 0, Y: 10}
	p2 := Vertex{X: 10, Y: 10}
	p3 := Vertex{X: 10, Y: 0}
	pts := CubicBezierAdaptive(p0, p1, p2, p3, 3)
	require.Len(t, pts, 5)
}

func TestPolygonOutlineClosedHasNEdges(t *testing.T) {
	pts := []Vertex{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	segs := PolygonOutline(pts, true)
	require.Len(t, segs, 4)
}

func TestTriangulateSquareYieldsTwoTriangles(t *testing.T) {
	pts := []Vertex{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	tris, ok := Triangulate(pts)
	require.True(t, ok)
	require.Len(t, tris, 2)
}

func TestTriangulatePentagon(t *testing.T) {
	pts := []Vertex{
		{X: 5, Y: 0}, {X: 10, Y: 4}, {X: 8, Y: 10}, {X: 2, Y: 10}, {X: 0, Y: 4},
	}
	tris, ok := Triangulate(pts)
	require.True(t, ok)
	require.Len(t, tris, 3)
}
