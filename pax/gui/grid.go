package gui

// TypeGrid lays child elements out in a cols x rows grid, interprets
// directional events to move the selection, and lets the accept/back
// events pass through to the selected child (spec.md §4.11, ported from
// pax_gui_grid.c's pgui_calc_grid).
var TypeGrid = &TypeDescriptor{
	Name:  "grid",
	Attrs: AttrSelectable,
	Calc:  calcGrid,
	Draw: func(dc DrawContext, pos Point, e *Element, theme *Theme, flags Flags) {
		drawBase(dc, pos, e.Size, theme, theme.Palette(e.Variant), flags)
	},
	Event: func(e *Element, ev Event) Response {
		if ev.Type != EventPress && ev.Type != EventHold {
			return Ignored
		}
		switch ev.Input {
		case InputLeft, InputRight, InputUp, InputDown:
			if navigateGrid(e, ev.Input) {
				return CapturedDirty
			}
			return Ignored
		default:
			return Ignored
		}
	},
}

// NewGrid constructs a grid element with cols*rows child slots, all
// initially nil.
func NewGrid(cols, rows int) *Element {
	el := NewElement(TypeGrid)
	el.GridCols, el.GridRows = cols, rows
	el.Children = make([]*Element, cols*rows)
	el.SelectedChildIndex = -1
	return el
}

// SetCell assigns child to the grid cell (x,y), setting its parent.
func (e *Element) SetCell(x, y int, child *Element) {
	if e.Type != TypeGrid {
		return
	}
	idx := y*e.GridCols + x
	if idx < 0 || idx >= len(e.Children) {
		return
	}
	child.Parent = e
	e.Children[idx] = child
	if e.SelectedChildIndex < 0 && child.Type != nil && child.Type.Selectable() {
		e.SelectedChildIndex = idx
	}
}
