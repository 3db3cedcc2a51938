package pax

import (
	"github.com/paxgfx/pax/internal/buffer"
	"github.com/paxgfx/pax/internal/pcolor"
)

// Background fills the entire buffer with c, bypassing clip (spec.md
// §4.3's fast background fill always covers the whole buffer — it is the
// one draw operation that is not clip-constrained). It uses the fast-path
// fill recognised by format (native==0, 16/24/32-bpp loops, or repeated
// byte pattern) rather than a per-pixel loop.
func (b *Buffer) Background(c pcolor.Color) {
	b.joinIfMulticore()
	native := b.table.ConvertToNative(c)
	buffer.FastFill(b.raw, native, b.TypeInfo.BPP, b.ReverseEndianness)
	b.MarkDirtyAll()
	b.errs.Clear()
}
