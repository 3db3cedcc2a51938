// Package orient implements the eight symmetries of the square PAX maps
// between user and buffer coordinates (spec.md §4.5), ported directly
// from original_source/src/pax_orientation.c — the teacher corpus has no
// orientation concept of its own (AGG targets a single fixed desktop
// coordinate convention).
package orient

import "github.com/paxgfx/pax/internal/transform"

// Orientation is one of the eight dihedral-group-of-the-square symmetries.
type Orientation int

const (
	Upright Orientation = iota
	RotCCW
	RotHalf
	RotCW
	FlipH
	FlipHRotCCW
	FlipHRotHalf
	FlipHRotCW
)

// Inverse returns the orientation o' such that composing o then o' (or
// o' then o) is the identity (spec.md §4.5, §8 invariant 4).
func Inverse(o Orientation) Orientation {
	switch o {
	case RotCCW:
		return RotCW
	case RotCW:
		return RotCCW
	// Upright, RotHalf, and all four flip-combinations are self-inverse.
	default:
		return o
	}
}

// PointF maps a float point from user space to buffer-native space for a
// buffer of the given (pre-orientation) dimensions.
func PointF(o Orientation, width, height float64, p transform.Point) transform.Point {
	switch o {
	case Upright:
		return p
	case RotCCW:
		return transform.Point{X: p.Y, Y: height - p.X}
	case RotHalf:
		return transform.Point{X: width - p.X, Y: height - p.Y}
	case RotCW:
		return transform.Point{X: width - p.Y, Y: p.X}
	case FlipH:
		return transform.Point{X: width - p.X, Y: p.Y}
	case FlipHRotCCW:
		return transform.Point{X: width - p.Y, Y: height - p.X}
	case FlipHRotHalf:
		return transform.Point{X: p.X, Y: height - p.Y}
	case FlipHRotCW:
		return transform.Point{X: p.Y, Y: p.X}
	default:
		return p
	}
}

// SwapsAxes reports whether o is a quarter turn (with or without flip),
// so that user-space width and height are the buffer's height and width.
func SwapsAxes(o Orientation) bool {
	switch o {
	case RotCCW, RotCW, FlipHRotCCW, FlipHRotCW:
		return true
	default:
		return false
	}
}

// UnpointF is the inverse mapping, buffer-native space back to user space,
// for a buffer of the given (pre-orientation) dimensions. The inverse
// orientation is applied against the user-space dimensions, which are
// swapped for quarter turns.
func UnpointF(o Orientation, width, height float64, p transform.Point) transform.Point {
	if SwapsAxes(o) {
		width, height = height, width
	}
	return PointF(Inverse(o), width, height, p)
}

// IntPoint is an integer 2D coordinate, used for pixel indexing.
type IntPoint struct{ X, Y int }

// PointI maps an integer point the same way as PointF, but decrements the
// buffer dimension by 1 before subtracting (spec.md §4.5), since integer
// pixel indices run [0, dim).
func PointI(o Orientation, width, height int, p IntPoint) IntPoint {
	switch o {
	case Upright:
		return p
	case RotCCW:
		return IntPoint{X: p.Y, Y: height - 1 - p.X}
	case RotHalf:
		return IntPoint{X: width - 1 - p.X, Y: height - 1 - p.Y}
	case RotCW:
		return IntPoint{X: width - 1 - p.Y, Y: p.X}
	case FlipH:
		return IntPoint{X: width - 1 - p.X, Y: p.Y}
	case FlipHRotCCW:
		return IntPoint{X: width - 1 - p.Y, Y: height - 1 - p.X}
	case FlipHRotHalf:
		return IntPoint{X: p.X, Y: height - 1 - p.Y}
	case FlipHRotCW:
		return IntPoint{X: p.Y, Y: p.X}
	default:
		return p
	}
}

// UnpointI is the inverse of PointI, taking the same (pre-orientation)
// buffer dimensions.
func UnpointI(o Orientation, width, height int, p IntPoint) IntPoint {
	if SwapsAxes(o) {
		width, height = height, width
	}
	return PointI(Inverse(o), width, height, p)
}

// RectF maps a float rectangle the same way PointF maps a point, per
// spec.md §4.5 — the resulting width/height may be negative, representing
// mirrored content.
func RectF(o Orientation, width, height float64, r transform.Rect) transform.Rect {
	switch o {
	case Upright:
		return r
	case RotCCW:
		return transform.Rect{X: r.Y, Y: height - r.X, W: r.H, H: -r.W}
	case RotHalf:
		return transform.Rect{X: width - r.X, Y: height - r.Y, W: -r.W, H: -r.H}
	case RotCW:
		return transform.Rect{X: width - r.Y, Y: r.X, W: -r.H, H: r.W}
	case FlipH:
		return transform.Rect{X: width - r.X, Y: r.Y, W: -r.W, H: r.H}
	case FlipHRotCCW:
		return transform.Rect{X: width - r.Y, Y: height - r.X, W: -r.H, H: -r.W}
	case FlipHRotHalf:
		return transform.Rect{X: r.X, Y: height - r.Y, W: r.W, H: -r.H}
	case FlipHRotCW:
		return transform.Rect{X: r.Y, Y: r.X, W: r.H, H: r.W}
	default:
		return r
	}
}

// IntRect is an integer axis-aligned rectangle.
type IntRect struct{ X, Y, W, H int }

// canonicalize flips a rectangle with negative width/height so that W,H
// are non-negative, adjusting X,Y accordingly.
func (r IntRect) canonicalize() IntRect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Canonicalize is the exported form of canonicalize, used by buffer clip
// setup (spec.md §4.3: "canonicalized to positive width/height").
func (r IntRect) Canonicalize() IntRect { return r.canonicalize() }

// VectorI maps a displacement (as opposed to a position) through
// orientation o: only the linear (rotation/flip) part applies, not the
// width/height-dependent translation PointI adds for positions. Used by
// Buffer.Scroll to turn a user-space (dx,dy) into a buffer-native shift.
func VectorI(o Orientation, v IntPoint) IntPoint {
	switch o {
	case Upright:
		return v
	case RotCCW:
		return IntPoint{X: v.Y, Y: -v.X}
	case RotHalf:
		return IntPoint{X: -v.X, Y: -v.Y}
	case RotCW:
		return IntPoint{X: -v.Y, Y: v.X}
	case FlipH:
		return IntPoint{X: -v.X, Y: v.Y}
	case FlipHRotCCW:
		return IntPoint{X: -v.Y, Y: -v.X}
	case FlipHRotHalf:
		return IntPoint{X: v.X, Y: -v.Y}
	case FlipHRotCW:
		return IntPoint{X: v.Y, Y: v.X}
	default:
		return v
	}
}

// RectI maps an integer rectangle through orientation o by mapping its two
// diagonal corners with PointI and rebuilding a canonical rectangle from
// the result — used by buffer clip-rect setup (spec.md §4.3).
func RectI(o Orientation, width, height int, r IntRect) IntRect {
	p0 := PointI(o, width, height, IntPoint{r.X, r.Y})
	p1 := PointI(o, width, height, IntPoint{r.X + r.W - 1, r.Y + r.H - 1})
	out := IntRect{X: p0.X, Y: p0.Y, W: p1.X - p0.X + 1, H: p1.Y - p0.Y + 1}
	return out.canonicalize()
}
