package gui

import (
	"github.com/paxgfx/pax/pax/text"
)

// TypeLabel draws plain, non-interactive text with no background or
// border (ported from pax_gui's PGUI_TYPE_LABEL).
var TypeLabel = &TypeDescriptor{
	Name: "label",
	MinSize: func(e *Element, theme *Theme) Point {
		w, h := text.Measure(theme.Font, e.Text)
		return Point{X: w, Y: h}
	},
	Draw: func(dc DrawContext, pos Point, e *Element, theme *Theme, flags Flags) {
		col := e.TextColor
		if col == 0 {
			col = theme.Palette(e.Variant).Foreground
		}
		text.DrawString(dc, theme.Font, col, pos.X, pos.Y, e.Text, text.Align(e.AlignH), false)
	},
}

// NewLabel constructs a label showing s.
func NewLabel(s string) *Element {
	el := NewElement(TypeLabel)
	el.Text = s
	return el
}
