package raster

import (
	"github.com/paxgfx/pax/internal/pcolor"
	"github.com/paxgfx/pax/internal/shader"
	"github.com/paxgfx/pax/internal/shape"
)

// Line writes the pixels a line walk visits. Lines never partition by
// scanline parity (spec.md §4.6) — callers in multicore mode must join
// the scheduler before calling this.
func Line(surf Surface, pts []shape.IntPoint, tint pcolor.Color, ctx shader.Context, writer shader.WriterKind) (minX, minY, maxX, maxY int) {
	if writer == shader.WriterElide || ctx.Skip || len(pts) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = pts[0].X, pts[0].Y
	maxX, maxY = pts[0].X+1, pts[0].Y+1

	for _, p := range pts {
		if p.X < 0 || p.Y < 0 || p.X >= surf.Width {
			continue
		}
		idx := p.Y*surf.Width + p.X
		if ctx.Identity {
			switch writer {
			case shader.WriterRaw:
				surf.Table.SetOne(surf.Pixels, idx, tint)
			case shader.WriterMerge:
				existing := surf.Table.GetOne(surf.Pixels, idx)
				surf.Table.SetOne(surf.Pixels, idx, pcolor.Merge(existing, tint))
			}
		} else {
			var existing pcolor.Color
			if ctx.DoGetter {
				existing = surf.Table.GetOne(surf.Pixels, idx)
			}
			out := ctx.Callback(tint, existing, p.X, p.Y, 0, 0, ctx.Args)
			surf.Table.SetOne(surf.Pixels, idx, out)
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X+1 > maxX {
			maxX = p.X + 1
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y+1 > maxY {
			maxY = p.Y + 1
		}
	}
	return
}
