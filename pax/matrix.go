package pax

import (
	"github.com/paxgfx/pax/internal/transform"
	"github.com/paxgfx/pax/pax/errcode"
)

// Matrix2D is the public 2D affine matrix (spec.md §3): two rows of
// three scalars interpreted as [x y 1]^T -> [ax+by+c, dx+ey+f]^T.
type Matrix2D = transform.Matrix

// Identity, Translate, Scale, Rotate, and Shear are the primitive
// matrix constructors (spec.md §4.4).
func Identity() Matrix2D            { return transform.Identity() }
func Translate(x, y float64) Matrix2D { return transform.Translate(x, y) }
func Scale(sx, sy float64) Matrix2D   { return transform.Scale(sx, sy) }
func Rotate(theta float64) Matrix2D   { return transform.Rotate(theta) }
func Shear(shx, shy float64) Matrix2D { return transform.Shear(shx, shy) }

// PushMatrix duplicates the current transform and pushes it onto the
// buffer's transform stack.
func (b *Buffer) PushMatrix() { b.Stack.Push() }

// PopMatrix drops the current transform, restoring the one beneath it.
// It is a no-op (and leaves LastError set) if called on the root.
func (b *Buffer) PopMatrix() {
	if !b.Stack.Pop() {
		b.errs.Set(errcode.StackUnderflow)
		return
	}
	b.errs.Clear()
}

// ResetMatrix resets the current transform to identity; if all is true
// it additionally unlinks every non-root transform on the stack
// (spec.md §4.4).
func (b *Buffer) ResetMatrix(all bool) { b.Stack.Reset(all) }

// ApplyMatrix right-multiplies the current transform by m (spec.md
// §4.4): m is applied before whatever was already on the stack.
func (b *Buffer) ApplyMatrix(m Matrix2D) { b.Stack.Apply(m) }

// GetMatrix returns the buffer's current transform.
func (b *Buffer) GetMatrix() Matrix2D { return b.Stack.Top() }

// MatrixDepth reports how many transforms are on the stack, including
// the root.
func (b *Buffer) MatrixDepth() int { return b.Stack.Depth() }
