package gui

// TypeBox is a plain container: it draws its (optional) background and
// border and otherwise just holds children at their own positions
// (spec.md §4.11, ported from pax_gui's PGUI_TYPE_BOX).
var TypeBox = &TypeDescriptor{
	Name:  "box",
	Attrs: AttrSelectable | AttrScrollable,
	Draw: func(dc DrawContext, pos Point, e *Element, theme *Theme, flags Flags) {
		drawBase(dc, pos, e.Size, theme, theme.Palette(e.Variant), flags)
	},
}

// NewBox constructs a box element of the given size.
func NewBox(w, h float64) *Element {
	el := NewElement(TypeBox)
	el.Size = Point{X: w, Y: h}
	return el
}
