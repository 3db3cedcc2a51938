package gui

import (
	"github.com/paxgfx/pax/internal/pcolor"
	"github.com/paxgfx/pax/pax"
)

// DrawContext is the pixel buffer a type descriptor's Draw callback
// paints into.
type DrawContext = *pax.Buffer

// Draw fully repaints elem's subtree (spec.md §4.11's "draw").
func Draw(dc DrawContext, elem *Element, theme *Theme) {
	if theme == nil {
		theme = DefaultTheme()
	}
	elem.Parent = nil
	drawInt(dc, Point{}, elem, theme, Dirty)
}

// Redraw repaints only the subtrees whose Dirty flag is set, clearing it
// as it goes (spec.md §4.11's "redraw").
func Redraw(dc DrawContext, elem *Element, theme *Theme) {
	if theme == nil {
		theme = DefaultTheme()
	}
	elem.Parent = nil
	drawInt(dc, Point{}, elem, theme, 0)
}

func drawInt(dc DrawContext, pos Point, elem *Element, theme *Theme, inherited Flags) {
	flags := inherited | elem.Flags
	if flags.Has(Hidden) {
		return
	}
	abs := Point{X: pos.X + elem.Pos.X, Y: pos.Y + elem.Pos.Y}
	if flags.Has(Dirty) {
		if elem.Type != nil && elem.Type.Draw != nil {
			elem.Type.Draw(dc, abs, elem, theme, flags)
		}
		elem.Flags &^= Dirty
	}
	for _, c := range elem.Children {
		drawInt(dc, abs, c, theme, flags&flagsInheritableMask)
	}
}

// drawBase paints a box/input element's background and border, ported
// from pgui_draw_base: a rounded rect fill plus a rounded rect outline,
// skipped entirely when NoBackground is set.
func drawBase(dc DrawContext, pos Point, size Point, theme *Theme, pal Palette, flags Flags) {
	if flags.Has(NoBackground) {
		return
	}
	bg := pal.Background
	if flags.Has(Active) {
		bg = pal.Pressed
	}
	dc.SimpleRoundRect(bg, pos.X, pos.Y, size.X, size.Y, theme.Rounding)
	border := pal.Border
	if flags.Has(Highlight) {
		border = pal.Highlight
	}
	drawRoundRectOutline(dc, pos, size, theme.Rounding, border)
}

// drawRoundRectOutline approximates an outline by drawing four straight
// edges between the rounded corners; PAX has no stroke primitive, so
// GUI borders are built from Line the way pax_gui_draw.c composes them
// out of pax_draw_line calls.
func drawRoundRectOutline(dc DrawContext, pos, size Point, radius float64, col pcolor.Color) {
	x0, y0 := pos.X, pos.Y
	x1, y1 := pos.X+size.X, pos.Y+size.Y
	r := radius
	if 2*r > size.X {
		r = size.X / 2
	}
	if 2*r > size.Y {
		r = size.Y / 2
	}
	dc.SimpleLine(col, x0+r, y0, x1-r, y0)
	dc.SimpleLine(col, x0+r, y1, x1-r, y1)
	dc.SimpleLine(col, x0, y0+r, x0, y1-r)
	dc.SimpleLine(col, x1, y0+r, x1, y1-r)
}
