package gui

// CalcLayout walks elem's subtree top-down, letting each element compute
// its own size/content-size (via its type's Calc) before recursing into
// children — ported from pgui_calc_layout's box/grid walk.
func CalcLayout(elem *Element, theme *Theme) {
	if elem == nil {
		return
	}
	if elem.Type != nil && elem.Type.Calc != nil {
		elem.Type.Calc(elem, theme)
	}
	for _, c := range elem.Children {
		CalcLayout(c, theme)
	}
}

// calcGrid assigns cell positions/sizes to grid's children, ported from
// pgui_calc_grid: FillCell divides the grid's own size evenly across
// cells and stretches children to fill; otherwise each cell is sized to
// its largest child plus padding and children are centered within it.
func calcGrid(elem *Element, theme *Theme) {
	cols, rows := elem.GridCols, elem.GridRows
	if cols < 1 || rows < 1 {
		elem.Flags |= Hidden
		return
	}
	if len(elem.Children) != cols*rows {
		elem.Flags |= Hidden
		return
	}

	var padded Point
	if elem.Flags.Has(FillCell) {
		padded = Point{X: elem.Size.X / float64(cols), Y: elem.Size.Y / float64(rows)}
		elem.CellSize = Point{X: padded.X - 2*theme.BoxPadding, Y: padded.Y - 2*theme.BoxPadding}
	} else {
		var cellW, cellH float64
		for _, c := range elem.Children {
			if c == nil {
				continue
			}
			if c.Size.X > cellW {
				cellW = c.Size.X
			}
			if c.Size.Y > cellH {
				cellH = c.Size.Y
			}
		}
		elem.CellSize = Point{X: cellW, Y: cellH}
		padded = Point{X: cellW + 2*theme.BoxPadding, Y: cellH + 2*theme.BoxPadding}
		elem.Size = Point{X: padded.X * float64(cols), Y: padded.Y * float64(rows)}
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			child := elem.Children[y*cols+x]
			if child == nil {
				continue
			}
			if child.Flags.Has(FillCell) {
				child.Pos = Point{X: float64(x) * padded.X, Y: float64(y) * padded.Y}
				child.Size = elem.CellSize
			} else {
				child.Pos = Point{
					X: float64(x)*padded.X + (elem.CellSize.X-child.Size.X)*0.5,
					Y: float64(y)*padded.Y + (elem.CellSize.Y-child.Size.Y)*0.5,
				}
			}
		}
	}
}

// navigateGrid moves elem's selected-child index in direction dir,
// wrapping on the moving axis, and skipping non-selectable children
// (spec.md §4.11: "the grid interprets directional events... searching
// for the next selectable child, wrapping on axis").
func navigateGrid(elem *Element, dir Input) bool {
	cols, rows := elem.GridCols, elem.GridRows
	if cols < 1 || rows < 1 || elem.SelectedChildIndex < 0 {
		return false
	}
	x := elem.SelectedChildIndex % cols
	y := elem.SelectedChildIndex / cols

	dx, dy := 0, 0
	switch dir {
	case InputLeft:
		dx = -1
	case InputRight:
		dx = 1
	case InputUp:
		dy = -1
	case InputDown:
		dy = 1
	default:
		return false
	}

	for step := 0; step < cols*rows; step++ {
		if dx != 0 {
			x = ((x+dx)%cols + cols) % cols
		} else {
			y = ((y+dy)%rows + rows) % rows
		}
		idx := y*cols + x
		if idx < len(elem.Children) && elem.Children[idx] != nil &&
			elem.Children[idx].Type != nil && elem.Children[idx].Type.Selectable() {
			elem.SelectedChildIndex = idx
			return true
		}
	}
	return false
}
