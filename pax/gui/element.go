// Package gui implements PAX's minimal retained-mode widget layer on top
// of pax: an element tree of value-typed descriptors, top-down layout,
// top-down-then-bubble-up event routing, and dirty-subtree redraw
// (spec.md §4.11), adapted from the teacher's internal/ctrl base-control
// idiom (a small embeddable struct carrying bounds/flags/parent) and
// ported from the original C pax_gui's element/type-descriptor split.
package gui

import "github.com/paxgfx/pax/internal/pcolor"

// Flags is the element flag bitmask (spec.md §4.11); the low byte is
// inheritable to children during layout/draw/event walks.
type Flags uint32

const (
	Hidden    Flags = 1 << 0
	Inactive  Flags = 1 << 1
	Dirty     Flags = 1 << 2
	flagsInheritableMask Flags = 0xff

	NoBackground Flags = 1 << 8
	NoSeparator  Flags = 1 << 9
	Active       Flags = 1 << 10
	Highlight    Flags = 1 << 11
	FillCell     Flags = 1 << 12
	NoPadding    Flags = 1 << 13
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

// Point is a float position or size pair.
type Point struct{ X, Y float64 }

// AttrBits describes structural properties of an element type.
type AttrBits uint32

const (
	AttrSelectable AttrBits = 1 << iota
	AttrIsInput
	AttrIsButton
	AttrScrollable
)

// TypeDescriptor is a value-typed element type (spec.md §4.11): all
// behavior for one kind of widget lives here, not in per-instance
// methods, so the element tree stays a plain data structure.
type TypeDescriptor struct {
	Name    string
	Attrs   AttrBits
	MinSize func(e *Element, theme *Theme) Point
	Calc    func(e *Element, theme *Theme)
	Draw    func(dc DrawContext, pos Point, e *Element, theme *Theme, flags Flags)
	Event   func(e *Element, ev Event) Response
}

func (d *TypeDescriptor) Selectable() bool { return d.Attrs&AttrSelectable != 0 }

// Element is one node of the GUI tree (spec.md §4.11).
type Element struct {
	Type        *TypeDescriptor
	Flags       Flags
	Parent      *Element
	Pos         Point
	Size        Point
	ContentSize Point
	Scroll      Point

	Children           []*Element
	SelectedChildIndex int

	EventCallback func(*Element, Event) Response
	UserData      any

	// Text-bearing elements (label/button/textbox) share these.
	Text       string
	TextColor  pcolor.Color
	AlignH     int
	Variant    Variant
	CursorPos  int // byte offset into Text; textbox-only

	// Grid-only.
	GridCols, GridRows int
	CellSize           Point

	// Dropdown-only.
	Options        []string
	SelectedOption int
	ScrollOffset   int // index of the topmost visible option while open
}

// NewElement constructs an element of the given type with zero size; the
// caller positions and sizes it, or relies on CalcLayout/a parent grid.
func NewElement(t *TypeDescriptor) *Element {
	return &Element{Type: t, SelectedChildIndex: -1}
}

// AddChild appends child to e's children and sets its parent.
func (e *Element) AddChild(child *Element) {
	child.Parent = e
	e.Children = append(e.Children, child)
	if e.SelectedChildIndex < 0 {
		e.selectFirstSelectable()
	}
}

func (e *Element) selectFirstSelectable() {
	for i, c := range e.Children {
		if c.Type != nil && c.Type.Selectable() {
			e.SelectedChildIndex = i
			return
		}
	}
}

// MarkDirty sets the Dirty flag on e and every ancestor, so Redraw's
// subtree walk reaches it.
func (e *Element) MarkDirty() {
	for n := e; n != nil; n = n.Parent {
		n.Flags |= Dirty
	}
}

// SelectedChild returns e's currently selected child, or nil.
func (e *Element) SelectedChild() *Element {
	if e.SelectedChildIndex < 0 || e.SelectedChildIndex >= len(e.Children) {
		return nil
	}
	return e.Children[e.SelectedChildIndex]
}
