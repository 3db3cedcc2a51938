package pax

import (
	"math"

	"github.com/paxgfx/pax/internal/pcolor"
)

// SimpleRoundRect fills a rectangle with quarter-circle corners of the
// given radius, clamped to half the rectangle's shorter side. It is
// assembled from a cross of three plain rectangles plus four quarter
// arcs rather than an outline-and-fill, keeping every piece on the
// existing rect/arc fast paths.
func (b *Buffer) SimpleRoundRect(c pcolor.Color, x, y, w, h, radius float64) {
	if radius <= 0 {
		b.SimpleRect(c, x, y, w, h)
		return
	}
	if radius > w/2 {
		radius = w / 2
	}
	if radius > h/2 {
		radius = h / 2
	}

	b.SimpleRect(c, x+radius, y, w-2*radius, h)
	b.SimpleRect(c, x, y+radius, radius, h-2*radius)
	b.SimpleRect(c, x+w-radius, y+radius, radius, h-2*radius)

	b.SimpleArc(c, x+radius, y+radius, radius, math.Pi, 1.5*math.Pi)
	b.SimpleArc(c, x+w-radius, y+radius, radius, 1.5*math.Pi, 2*math.Pi)
	b.SimpleArc(c, x+radius, y+h-radius, radius, 0.5*math.Pi, math.Pi)
	b.SimpleArc(c, x+w-radius, y+h-radius, radius, 0, 0.5*math.Pi)
}

// NineSlice describes a sprite's stretchable border, in source-sprite
// pixels: the four corners (Left x Top, etc.) are drawn unscaled, the
// edges stretch along one axis, and the center stretches on both —
// PAX's GUI theming needs this to draw resizable buttons/panels from a
// single small bitmap (spec.md §5's theming supplement; the original
// has no sprite/image primitive of its own to ground this on beyond
// pax_draw_image's raw blit, so the nine-region layout itself follows
// the conventional sprite-sheet technique the teacher's pack uses for
// GUI chrome).
type NineSlice struct{ Left, Top, Right, Bottom int }

// DrawNineSlice stretches src into the destination rectangle
// [dstX,dstY,dstW,dstH), keeping the four corners at native scale and
// stretching edges/center to fill the remaining space.
func (b *Buffer) DrawNineSlice(src *Buffer, slice NineSlice, dstX, dstY, dstW, dstH int) {
	sw, sh := src.Width, src.Height
	l, t, r, bo := slice.Left, slice.Top, slice.Right, slice.Bottom

	colsSrc := [3][2]int{{0, l}, {l, sw - r}, {sw - r, sw}}
	colsDst := [3][2]int{{0, l}, {l, dstW - r}, {dstW - r, dstW}}
	rowsSrc := [3][2]int{{0, t}, {t, sh - bo}, {sh - bo, sh}}
	rowsDst := [3][2]int{{0, t}, {t, dstH - bo}, {dstH - bo, dstH}}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sx0, sx1 := colsSrc[col][0], colsSrc[col][1]
			sy0, sy1 := rowsSrc[row][0], rowsSrc[row][1]
			dx0, dx1 := colsDst[col][0], colsDst[col][1]
			dy0, dy1 := rowsDst[row][0], rowsDst[row][1]
			if dx1 <= dx0 || dy1 <= dy0 {
				continue
			}
			sh := TextureShader(src, sx0, sy0, sx1, sy1, false)
			b.RectUV(sh, pcolor.White, float64(dstX+dx0), float64(dstY+dy0), float64(dx1-dx0), float64(dy1-dy0), UV{0, 0}, UV{1, 1})
		}
	}
}
