// Package transform implements PAX's 2D affine transform and its stack
// (spec.md §4.4), adapted from the teacher's internal/transform.TransAffine
// (itself a port of AGG's trans_affine) cut down to the plain 3x2 affine
// PAX needs — no perspective or bilinear warp, which are out of scope.
package transform

import "math"

// Matrix is a 2D affine transform [a b c; d e f], interpreted as
// [x y 1]^T -> [ax+by+c, dx+ey+f]^T (spec.md §3).
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity matrix.
func Identity() Matrix { return Matrix{A: 1, E: 1} }

// Translate returns a pure translation matrix.
func Translate(x, y float64) Matrix { return Matrix{A: 1, E: 1, C: x, F: y} }

// Scale returns a pure scale matrix about the origin.
func Scale(sx, sy float64) Matrix { return Matrix{A: sx, E: sy} }

// Rotate returns a pure rotation matrix (radians, counter-clockwise in a
// y-down coordinate system matches clockwise on screen).
func Rotate(theta float64) Matrix {
	s, c := math.Sin(theta), math.Cos(theta)
	return Matrix{A: c, B: -s, D: s, E: c}
}

// Shear returns a pure shear matrix.
func Shear(shx, shy float64) Matrix { return Matrix{A: 1, B: shx, D: shy, E: 1} }

// Point is a 2D float coordinate.
type Point struct{ X, Y float64 }

// Apply transforms p by m.
func (m Matrix) Apply(p Point) Point {
	return Point{X: m.A*p.X + m.B*p.Y + m.C, Y: m.D*p.X + m.E*p.Y + m.F}
}

// Mul composes m and other so that applying the result equals applying
// other first, then m (other is the inner/more-recent transform, per
// spec.md §3: "Multiplication composes right-onto-left").
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Determinant returns the matrix's determinant (used by Invert).
func (m Matrix) Determinant() float64 { return m.A*m.E - m.B*m.D }

// Invert returns the inverse transform; ok is false if the matrix is
// singular (determinant ~0).
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.Determinant()
	if math.Abs(det) < 1e-14 {
		return Matrix{}, false
	}
	invDet := 1 / det
	inv.A = m.E * invDet
	inv.B = -m.B * invDet
	inv.D = -m.D * invDet
	inv.E = m.A * invDet
	inv.C = -(m.C*inv.A + m.F*inv.B)
	inv.F = -(m.C*inv.D + m.F*inv.E)
	return inv, true
}

// IsFirstOrder reports whether m has no rotation/shear component (only
// scale and translate), the fast-path spec.md §4.4 calls out: such
// matrices let axis-aligned rectangle draws skip triangle decomposition.
func (m Matrix) IsFirstOrder() bool {
	return m.B == 0 && m.D == 0
}

// ApplyBatch transforms a slice of points in place, ported from the
// original source's pax_apply_2 helper. Nothing in this module calls it;
// arc generation transforms each vertex on its own.
func (m Matrix) ApplyBatch(pts []Point) {
	for i, p := range pts {
		pts[i] = m.Apply(p)
	}
}

// Rect is an axis-aligned float rectangle.
type Rect struct{ X, Y, W, H float64 }

// ApplyRect maps a rectangle's two diagonal corners through m and returns
// the rectangle spanned between them. Width/height may end up negative if
// m mirrors the rectangle (spec.md §4.5 relies on this for orientation).
// For a matrix with rotation or shear the result is not the bounding box
// of the transformed rectangle.
func (m Matrix) ApplyRect(r Rect) Rect {
	p0 := m.Apply(Point{r.X, r.Y})
	p1 := m.Apply(Point{r.X + r.W, r.Y + r.H})
	return Rect{X: p0.X, Y: p0.Y, W: p1.X - p0.X, H: p1.Y - p0.Y}
}
