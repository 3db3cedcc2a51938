package pax

// MarkClean sets the dirty rectangle to the inverted-degenerate "clean"
// state (spec.md §4.3).
func (b *Buffer) MarkClean() { b.Dirty = Rect{X0: 1, Y0: 1, X1: 0, Y1: 0} }

// MarkDirtyAll marks the entire buffer dirty.
func (b *Buffer) MarkDirtyAll() { b.Dirty = Rect{0, 0, b.Width, b.Height} }

// MarkDirtyPoint clamps (x,y) into buffer bounds and unions it into the
// dirty rectangle.
func (b *Buffer) MarkDirtyPoint(x, y int) {
	x = clampInt(x, 0, b.Width-1)
	y = clampInt(y, 0, b.Height-1)
	b.Dirty = b.Dirty.Union(Rect{X0: x, Y0: y, X1: x + 1, Y1: y + 1})
}

// MarkDirtyRect expands the dirty rectangle to cover [x,x+w) x [y,y+h),
// clamped to buffer bounds. Rasterization kernels call this once with
// their bounding box rather than marking per-pixel (spec.md §4.3).
func (b *Buffer) MarkDirtyRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := clampInt(x, 0, b.Width)
	y0 := clampInt(y, 0, b.Height)
	x1 := clampInt(x+w, 0, b.Width)
	y1 := clampInt(y+h, 0, b.Height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	b.Dirty = b.Dirty.Union(Rect{X0: x0, Y0: y0, X1: x1, Y1: y1})
}

// GetDirty returns the current dirty rectangle as (x,y,w,h); an empty/clean
// state returns w=h=0.
func (b *Buffer) GetDirty() (x, y, w, h int) {
	if b.Dirty.Empty() {
		return 0, 0, 0, 0
	}
	return b.Dirty.X0, b.Dirty.Y0, b.Dirty.X1 - b.Dirty.X0, b.Dirty.Y1 - b.Dirty.Y0
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
