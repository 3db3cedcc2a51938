package pax

import (
	"github.com/paxgfx/pax/internal/orient"
	"github.com/paxgfx/pax/internal/pcolor"
	"github.com/paxgfx/pax/internal/pixfmt"
)

// Scroll shifts the entire image by (dx,dy) in user-space, mapped through
// orientation to a buffer-native shift, and fills the vacated edge with
// placeholder (spec.md §4.3). When the corresponding byte offset is
// byte-aligned the shift is done with a single slice copy (Go's copy() is
// a memmove and is correct regardless of overlap direction); otherwise it
// falls back to bit-granular per-pixel copies, iterating in the direction
// that never overwrites a pixel before it's read.
func (b *Buffer) Scroll(placeholder pcolor.Color, dx, dy int) {
	b.joinIfMulticore()
	v := orient.VectorI(b.Orientation, orient.IntPoint{X: dx, Y: dy})
	shiftPixels := v.X + v.Y*b.Width
	if shiftPixels == 0 {
		b.errs.Clear()
		return
	}
	bpp := b.TypeInfo.BPP
	bitShift := shiftPixels * bpp

	if bitShift%8 == 0 {
		b.scrollByteAligned(bitShift / 8)
	} else {
		b.scrollBitGranular(shiftPixels)
	}

	// Fill the vacated strips in buffer-native coordinates: whole rows for
	// the vertical part of the shift, and on every other row the column run
	// the horizontal part exposed (which also holds the pixels the linear
	// shift carried over from the neighbouring row).
	for y := 0; y < b.Height; y++ {
		x0, n := 0, b.Width
		if !(y < v.Y || y >= b.Height+v.Y) {
			if n = min(v.X, b.Width); v.X < 0 {
				n = min(-v.X, b.Width)
				x0 = b.Width - n
			}
		}
		if n > 0 {
			b.table.SetRange(b.raw.Pixels, y*b.Width+x0, n, placeholder)
		}
	}

	b.MarkDirtyAll()
	b.errs.Clear()
}

func (b *Buffer) scrollByteAligned(byteShift int) {
	pixels := b.raw.Pixels
	n := len(pixels)
	if byteShift > 0 {
		if byteShift >= n {
			return
		}
		copy(pixels[byteShift:], pixels[:n-byteShift])
	} else {
		s := -byteShift
		if s >= n {
			return
		}
		copy(pixels[:n-s], pixels[s:])
	}
}

func (b *Buffer) scrollBitGranular(shiftPixels int) {
	total := b.Width * b.Height
	bpp := b.TypeInfo.BPP
	rev := b.ReverseEndianness
	pixels := b.raw.Pixels
	if shiftPixels > 0 {
		// Destination index exceeds source index: walk backward so we
		// never clobber a pixel before reading it.
		for i := total - 1; i >= shiftPixels; i-- {
			v := pixfmt.GetNative(pixels, i-shiftPixels, bpp, rev)
			pixfmt.SetNative(pixels, i, bpp, v, rev)
		}
	} else {
		s := -shiftPixels
		for i := 0; i < total-s; i++ {
			v := pixfmt.GetNative(pixels, i+s, bpp, rev)
			pixfmt.SetNative(pixels, i, bpp, v, rev)
		}
	}
}
