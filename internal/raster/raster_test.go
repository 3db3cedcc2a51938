package raster

import (
	"testing"

	"github.com/paxgfx/pax/internal/pcolor"
	"github.com/paxgfx/pax/internal/pixfmt"
	"github.com/paxgfx/pax/internal/shader"
	"github.com/paxgfx/pax/internal/shape"
	"github.com/stretchr/testify/require"
)

func newSurface(t *testing.T, w, h int) Surface {
	t.Helper()
	pixels := make([]byte, w*h*4)
	table := pixfmt.NewTable(pixfmt.ARGB8888, false, nil, true, true)
	return Surface{Pixels: pixels, Table: table, Width: w}
}

func TestSpansIdentityRawWritesTint(t *testing.T) {
	surf := newSurface(t, 4, 4)
	spans := []shape.Span{{Y: 1, X0: 0, X1: 4}}
	ctx := shader.Build(nil, 255)
	minX, minY, maxX, maxY := Spans(surf, spans, pcolor.Red, ctx, shader.WriterRaw, nil)
	require.Equal(t, 0, minX)
	require.Equal(t, 1, minY)
	require.Equal(t, 4, maxX)
	require.Equal(t, 2, maxY)
	got := surf.Table.GetOne(surf.Pixels, 1*4+2)
	require.Equal(t, pcolor.Red, got)
}

func TestSpansElidedWriterDoesNothing(t *testing.T) {
	surf := newSurface(t, 2, 2)
	spans := []shape.Span{{Y: 0, X0: 0, X1: 2}}
	ctx := shader.Build(nil, 0)
	minX, minY, maxX, maxY := Spans(surf, spans, pcolor.Red, ctx, shader.WriterElide, nil)
	require.Equal(t, 0, minX+minY+maxX+maxY)
	got := surf.Table.GetOne(surf.Pixels, 0)
	require.NotEqual(t, pcolor.Red, got)
}

func TestSpansShaderCallbackInvoked(t *testing.T) {
	surf := newSurface(t, 4, 1)
	spans := []shape.Span{{Y: 0, X0: 0, X1: 4, Shaded: true, U0: 0, U1: 1}}
	calls := 0
	sh := shader.New(func(tint, existing pcolor.Color, x, y int, u, v float64, args any) pcolor.Color {
		calls++
		return pcolor.Blue
	}, nil)
	ctx := shader.Build(sh, 255)
	Spans(surf, spans, pcolor.Red, ctx, shader.WriterRaw, nil)
	require.Equal(t, 4, calls)
	got := surf.Table.GetOne(surf.Pixels, 0)
	require.Equal(t, pcolor.Blue, got)
}

func TestLineWritesEndpoints(t *testing.T) {
	surf := newSurface(t, 10, 10)
	pts := []shape.IntPoint{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 9, Y: 0}}
	ctx := shader.Build(nil, 255)
	Line(surf, pts, pcolor.Green, ctx, shader.WriterRaw)
	require.Equal(t, pcolor.Green, surf.Table.GetOne(surf.Pixels, 9))
}

func TestBlitRowsCopiesAlignedBlock(t *testing.T) {
	src := newSurface(t, 4, 4)
	dst := newSurface(t, 4, 4)
	src.Table.SetRange(src.Pixels, 0, 16, pcolor.White)
	BlitRows(dst, 0, 0, src, 0, 0, 4, 4, 32, false)
	for i := 0; i < 16; i++ {
		require.Equal(t, pcolor.White, dst.Table.GetOne(dst.Pixels, i))
	}
}
