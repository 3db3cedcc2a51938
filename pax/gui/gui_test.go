package gui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddChildSelectsFirstSelectable(t *testing.T) {
	box := NewBox(100, 100)
	label := NewLabel("hi")
	btn := NewButton("go")
	box.AddChild(label)
	box.AddChild(btn)
	require.Equal(t, 1, box.SelectedChildIndex)
}

func TestCalcGridFillCellDividesEvenly(t *testing.T) {
	grid := NewGrid(2, 2)
	grid.Flags |= FillCell
	grid.Size = Point{X: 100, Y: 100}
	for i := range grid.Children {
		grid.Children[i] = NewBox(0, 0)
		grid.Children[i].Flags |= FillCell
	}
	theme := DefaultTheme()
	calcGrid(grid, theme)
	require.InDelta(t, 50-2*theme.BoxPadding, grid.CellSize.X, 0.001)
	require.Equal(t, grid.CellSize, grid.Children[3].Size)
}

func TestNavigateGridWrapsOnAxis(t *testing.T) {
	grid := NewGrid(2, 1)
	grid.Children[0] = NewButton("a")
	grid.Children[1] = NewButton("b")
	grid.SelectedChildIndex = 1
	ok := navigateGrid(grid, InputRight)
	require.True(t, ok)
	require.Equal(t, 0, grid.SelectedChildIndex)
}

func TestDispatchRoutesToSelectedDescendant(t *testing.T) {
	root := NewGrid(1, 1)
	btn := NewButton("ok")
	root.Children[0] = btn
	root.SelectedChildIndex = 0

	resp := Dispatch(root, Event{Type: EventPress, Input: InputAccept})
	require.Equal(t, CapturedDirty, resp)
	require.True(t, btn.Flags.Has(Active))
}

func TestDispatchBubblesUnhandledEventToGrid(t *testing.T) {
	root := NewGrid(2, 1)
	root.Children[0] = NewButton("a")
	root.Children[1] = NewButton("b")
	root.SelectedChildIndex = 0

	resp := Dispatch(root, Event{Type: EventPress, Input: InputRight})
	require.Equal(t, CapturedDirty, resp)
	require.Equal(t, 1, root.SelectedChildIndex)
}

func TestTextboxInsertAndBackspace(t *testing.T) {
	tb := NewTextbox()
	Dispatch(wrap(tb), Event{Type: EventPress, Value: 'h'})
	Dispatch(wrap(tb), Event{Type: EventPress, Value: 'i'})
	require.Equal(t, "hi", tb.Text)
	Dispatch(wrap(tb), Event{Type: EventPress, Input: InputBack})
	require.Equal(t, "h", tb.Text)
}

func wrap(e *Element) *Element {
	root := NewGrid(1, 1)
	root.Children[0] = e
	root.SelectedChildIndex = 0
	return root
}

func TestAdjustScrollKeepsMarginVisible(t *testing.T) {
	e := NewDropdown([]string{"a", "b", "c", "d", "e", "f"})
	e.Size = Point{X: 100, Y: 10000} // force all visible minus clamp by option count
	visible := 3
	e.SelectedOption = 4
	adjustScroll(e, visible)
	require.LessOrEqual(t, e.ScrollOffset, e.SelectedOption-dropdownMargin)
	require.GreaterOrEqual(t, e.ScrollOffset+visible, e.SelectedOption+dropdownMargin+1)
}

func TestMarkDirtyPropagatesToRoot(t *testing.T) {
	root := NewBox(10, 10)
	child := NewBox(5, 5)
	root.AddChild(child)
	root.Flags &^= Dirty
	child.MarkDirty()
	require.True(t, root.Flags.Has(Dirty))
}
