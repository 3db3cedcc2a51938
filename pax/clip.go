package pax

import "github.com/paxgfx/pax/internal/orient"

// SetClip sets the clip rectangle from user-space coordinates: it is
// mapped through orientation, canonicalized to positive width/height,
// then intersected with the buffer (spec.md §4.3).
func (b *Buffer) SetClip(x, y, w, h int) {
	mapped := orient.RectI(b.Orientation, b.Width, b.Height, orient.IntRect{X: x, Y: y, W: w, H: h})
	full := Rect{0, 0, b.Width, b.Height}
	req := Rect{X0: mapped.X, Y0: mapped.Y, X1: mapped.X + mapped.W, Y1: mapped.Y + mapped.H}
	b.Clip = req.Intersect(full)
	b.errs.Clear()
}

// NoClip resets the clip rectangle to the full buffer.
func (b *Buffer) NoClip() {
	b.Clip = Rect{0, 0, b.Width, b.Height}
}

// GetClip returns the current clip rectangle mapped back to user
// coordinates.
func (b *Buffer) GetClip() (x, y, w, h int) {
	inv := orient.Inverse(b.Orientation)
	w, h := b.Width, b.Height
	if orient.SwapsAxes(b.Orientation) {
		w, h = h, w
	}
	mapped := orient.RectI(inv, w, h, orient.IntRect{
		X: b.Clip.X0, Y: b.Clip.Y0, W: b.Clip.X1 - b.Clip.X0, H: b.Clip.Y1 - b.Clip.Y0,
	})
	return mapped.X, mapped.Y, mapped.W, mapped.H
}
