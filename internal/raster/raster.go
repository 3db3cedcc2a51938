// Package raster is the pixel-writing half of drawing: it walks the
// spans and polylines internal/shape computes and pushes pixels through
// a buffer's format dispatch table, splitting work across
// internal/mcr by scanline parity when multicore is enabled (spec.md
// §4.8). internal/shape stays pure geometry; this package is where
// the teacher's renderer-vs-generator split (agg_go's internal/renderer
// consuming internal/vcgen output) is re-expressed for PAX's flat
// trapezoid model.
package raster

import (
	"github.com/paxgfx/pax/internal/mcr"
	"github.com/paxgfx/pax/internal/pcolor"
	"github.com/paxgfx/pax/internal/pixfmt"
	"github.com/paxgfx/pax/internal/shader"
	"github.com/paxgfx/pax/internal/shape"
)

// Surface is the minimal view of a pixel buffer a rasterization kernel
// needs: its backing bytes, its dispatch table, and its row stride in
// pixels.
type Surface struct {
	Pixels []byte
	Table  *pixfmt.Table
	Width  int
}

// workerParity is the scanline parity (y%2) a multicore draw hands to
// the scheduler; the calling goroutine draws the rows of the other parity.
const workerParity = 1

func lerpF(a, b, t float64) float64 { return a + (b-a)*t }

// Spans writes spans into surf under tint/ctx/writer, splitting by
// scanline parity across sched when non-nil (spec.md §4.8's "multicore:
// step y by 2, start on parity"). It returns the bounding rectangle
// actually touched, for the caller to feed to MarkDirtyRect.
func Spans(surf Surface, spans []shape.Span, tint pcolor.Color, ctx shader.Context, writer shader.WriterKind, sched *mcr.Scheduler) (minX, minY, maxX, maxY int) {
	if writer == shader.WriterElide || ctx.Skip || len(spans) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY, maxX, maxY = boundsOf(spans)

	if sched != nil {
		own := make([]shape.Span, 0, len(spans)/2+1)
		worker := make([]shape.Span, 0, len(spans)/2+1)
		for _, s := range spans {
			if s.Y%2 == workerParity {
				worker = append(worker, s)
			} else {
				own = append(own, s)
			}
		}
		sched.Submit(func() { renderSpans(surf, worker, tint, ctx, writer) })
		renderSpans(surf, own, tint, ctx, writer)
		sched.Join()
		return
	}
	renderSpans(surf, spans, tint, ctx, writer)
	return
}

func boundsOf(spans []shape.Span) (minX, minY, maxX, maxY int) {
	minX, minY = spans[0].X0, spans[0].Y
	maxX, maxY = spans[0].X1, spans[0].Y+1
	for _, s := range spans {
		if s.X0 < minX {
			minX = s.X0
		}
		if s.X1 > maxX {
			maxX = s.X1
		}
		if s.Y < minY {
			minY = s.Y
		}
		if s.Y+1 > maxY {
			maxY = s.Y + 1
		}
	}
	return
}

func renderSpans(surf Surface, spans []shape.Span, tint pcolor.Color, ctx shader.Context, writer shader.WriterKind) {
	for _, s := range spans {
		renderSpan(surf, s, tint, ctx, writer)
	}
}

func renderSpan(surf Surface, s shape.Span, tint pcolor.Color, ctx shader.Context, writer shader.WriterKind) {
	count := s.X1 - s.X0
	if count <= 0 {
		return
	}
	idx0 := s.Y*surf.Width + s.X0

	if ctx.Identity {
		switch writer {
		case shader.WriterRaw:
			surf.Table.SetRange(surf.Pixels, idx0, count, tint)
		case shader.WriterMerge:
			surf.Table.MergeRange(surf.Pixels, idx0, count, tint)
		}
		return
	}

	for i := 0; i < count; i++ {
		x := s.X0 + i
		idx := idx0 + i
		var u, v float64
		if s.Shaded && !ctx.IgnoreUV {
			t := 0.0
			if count > 1 {
				t = float64(i) / float64(count-1)
			}
			u, v = lerpF(s.U0, s.U1, t), lerpF(s.V0, s.V1, t)
		}
		var existing pcolor.Color
		if ctx.DoGetter {
			existing = surf.Table.GetOne(surf.Pixels, idx)
		}
		out := ctx.Callback(tint, existing, x, s.Y, u, v, ctx.Args)
		surf.Table.SetOne(surf.Pixels, idx, out)
	}
}
