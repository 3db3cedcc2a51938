package gui

import "github.com/paxgfx/pax/pax/text"

// TypeButton is a pressable input element (ported from pax_gui's
// PGUI_TYPE_BUTTON): Accept press sets Active and triggers the
// EventCallback; release clears Active.
var TypeButton = &TypeDescriptor{
	Name:  "button",
	Attrs: AttrSelectable | AttrIsButton,
	MinSize: func(e *Element, theme *Theme) Point {
		w, h := text.Measure(theme.Font, e.Text)
		pad := 2 * theme.InputPadding
		return Point{X: w + pad, Y: h + pad}
	},
	Draw: func(dc DrawContext, pos Point, e *Element, theme *Theme, flags Flags) {
		pal := theme.Palette(e.Variant)
		drawBase(dc, pos, e.Size, theme, pal, flags)
		w, h := text.Measure(theme.Font, e.Text)
		tx := pos.X + (e.Size.X-w)/2
		ty := pos.Y + (e.Size.Y-h)/2
		col := e.TextColor
		if col == 0 {
			col = pal.Foreground
		}
		text.DrawString(dc, theme.Font, col, tx, ty, e.Text, text.AlignBegin, false)
	},
	Event: func(e *Element, ev Event) Response {
		if e.Flags.Has(Inactive) {
			return Ignored
		}
		switch {
		case ev.Input == InputAccept && ev.Type == EventPress:
			e.Flags |= Active
			return CapturedDirty
		case ev.Input == InputAccept && ev.Type == EventRelease:
			e.Flags &^= Active
			return CapturedDirty
		default:
			return Ignored
		}
	},
}

// NewButton constructs a button labeled s.
func NewButton(s string) *Element {
	el := NewElement(TypeButton)
	el.Text = s
	return el
}
