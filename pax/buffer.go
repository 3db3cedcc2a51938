// Package pax is PAX's public surface: the pixel buffer, the drawing
// calls that rasterize into it, and the text/GUI layers built on top.
//
// Grounded structurally on the teacher's agg.go/context.go "a Context
// wraps a buffer and a transform stack" shape, but rewritten end to end
// for PAX's non-antialiased, promise-driven, multi-pixel-format model —
// none of AGG's antialiased scanline/coverage machinery survives; what's
// kept is the organizational idiom (a thin public package delegating to
// internal/<concern> packages) and the general shape of a draw-call API.
package pax

import (
	"github.com/paxgfx/pax/internal/buffer"
	"github.com/paxgfx/pax/internal/mcr"
	"github.com/paxgfx/pax/internal/orient"
	"github.com/paxgfx/pax/internal/pcolor"
	"github.com/paxgfx/pax/internal/pixfmt"
	"github.com/paxgfx/pax/internal/transform"
	"github.com/paxgfx/pax/pax/errcode"
	"github.com/paxgfx/pax/pax/paxconfig"
	"github.com/paxgfx/pax/pax/paxlog"
)

// Rect is an axis-aligned half-open pixel rectangle [X0,X1) x [Y0,Y1),
// used for the clip and dirty rectangles (spec.md §3). A rectangle with
// X0>X1 or Y0>Y1 is the "inverted-degenerate" empty/clean state.
type Rect struct{ X0, Y0, X1, Y1 int }

// Empty reports whether r is the inverted-degenerate empty state.
func (r Rect) Empty() bool { return r.X0 > r.X1 || r.Y0 > r.Y1 }

// Contains reports whether the integer point (x,y) lies strictly inside r.
func (r Rect) Contains(x, y int) bool { return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1 }

// Intersect returns the intersection of r and o.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{X0: max(r.X0, o.X0), Y0: max(r.Y0, o.Y0), X1: min(r.X1, o.X1), Y1: min(r.Y1, o.Y1)}
	return out
}

// Union returns the smallest rectangle containing both r and o; an empty
// operand is ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect{X0: min(r.X0, o.X0), Y0: min(r.Y0, o.Y0), X1: max(r.X1, o.X1), Y1: max(r.Y1, o.Y1)}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Palette backs palette-format buffers (spec.md §3). Exactly one of
// owned-and-freed-on-destroy or externally-managed applies (invariant 5);
// Owned tracks which.
type Palette struct {
	Colors []pcolor.Color
	Owned  bool
}

// Buffer is PAX's central entity (spec.md §3): geometry, pixel format,
// storage, clip, transform stack, orientation, dirty tracking, and the
// per-format dispatch table.
type Buffer struct {
	Width, Height     int
	Type              pixfmt.Format
	TypeInfo          pixfmt.TypeInfo
	ReverseEndianness bool
	Palette           *Palette
	Clip              Rect
	Stack             *transform.Stack
	Orientation       orient.Orientation
	Dirty             Rect
	Config            paxconfig.Config

	raw   *buffer.Raw
	table *pixfmt.Table
	errs  *errcode.Register
	mc    *mcr.Scheduler
}

// NewBuffer constructs a buffer of the given natural (pre-orientation)
// dimensions and format. If pixels is nil, storage of
// ceil(bpp*w*h/8) bytes is allocated and owned; otherwise the caller's
// storage is borrowed and never freed by PAX (spec.md §4.3).
func NewBuffer(width, height int, format pixfmt.Format, pixels []byte) *Buffer {
	return newBuffer(width, height, format, pixels, paxconfig.Default())
}

// NewBufferWithConfig is like NewBuffer but takes an explicit
// paxconfig.Config instead of paxconfig.Default().
func NewBufferWithConfig(width, height int, format pixfmt.Format, pixels []byte, cfg paxconfig.Config) *Buffer {
	return newBuffer(width, height, format, pixels, cfg)
}

func newBuffer(width, height int, format pixfmt.Format, pixels []byte, cfg paxconfig.Config) *Buffer {
	info := pixfmt.Info(format)
	var raw *buffer.Raw
	if pixels == nil {
		raw = buffer.NewOwned(width, height, info.BPP)
	} else {
		raw = buffer.NewBorrowed(pixels, width, height, info.BPP)
	}
	b := &Buffer{
		Width: width, Height: height,
		Type: format, TypeInfo: info,
		Clip:   Rect{0, 0, width, height},
		Stack:  transform.NewStack(),
		Dirty:  Rect{X0: 1, Y0: 1, X1: 0, Y1: 0}, // starts clean
		Config: cfg,
		raw:    raw,
		errs:   errcode.NewRegister(),
	}
	if info.Class == pixfmt.ClassPalette {
		b.Palette = &Palette{Colors: make([]pcolor.Color, 1<<uint(info.BPP)), Owned: true}
	}
	b.rebuildTable()
	b.errs.Clear()
	return b
}

// SetPalette installs an externally-managed (borrowed, read-only from
// PAX's point of view) palette. The caller must keep it valid and
// unmodified for the buffer's lifetime (spec.md §5).
func (b *Buffer) SetPalette(colors []pcolor.Color) {
	b.joinIfMulticore()
	b.Palette = &Palette{Colors: colors, Owned: false}
	b.rebuildTable()
}

// PaletteSize returns the number of usable palette entries, or 0 for
// non-palette formats.
func (b *Buffer) PaletteSize() int {
	if b.Palette == nil {
		return 0
	}
	return len(b.Palette.Colors)
}

func (b *Buffer) rebuildTable() {
	var colors *[]pcolor.Color
	if b.Palette != nil {
		colors = &b.Palette.Colors
	}
	b.table = pixfmt.NewTable(b.Type, b.ReverseEndianness, colors, b.Config.RangeSetterEnabled, b.Config.RangeMergerEnabled)
}

// SetType mutates the buffer's pixel format in place, rebuilding the
// dispatch table (spec.md §4.3 "construction, and on format mutation").
// Existing pixel bytes are not reinterpreted; callers that need a format
// conversion of existing content must blit through a temporary buffer.
func (b *Buffer) SetType(format pixfmt.Format) {
	b.joinIfMulticore()
	b.Type = format
	b.TypeInfo = pixfmt.Info(format)
	if b.TypeInfo.Class == pixfmt.ClassPalette && b.Palette == nil {
		b.Palette = &Palette{Colors: make([]pcolor.Color, 1<<uint(b.TypeInfo.BPP)), Owned: true}
	}
	b.rebuildTable()
}

// SetReverseEndianness toggles byte-reversal on multi-byte writes/reads
// and rebuilds the dispatch table.
func (b *Buffer) SetReverseEndianness(rev bool) {
	b.joinIfMulticore()
	b.ReverseEndianness = rev
	b.rebuildTable()
}

// Destroy releases owned pixel storage and palette, matching spec.md
// §4.3. It does not need to unlink the transform stack explicitly (the Go
// GC reclaims it once the Buffer is unreferenced), but callers in
// multicore mode must Join first (spec.md §5).
func (b *Buffer) Destroy() {
	if b.mc != nil {
		b.mc.Join()
	}
	b.raw.Destroy()
	if b.Palette != nil && b.Palette.Owned {
		b.Palette = nil
	}
}

// LastError returns the most recently set error code (spec.md §7).
func (b *Buffer) LastError() errcode.Code { return b.errs.Get() }

// pixelIndex returns the row-major pixel index for buffer-native (x,y),
// and whether it is in bounds. When the index is out of bounds and
// Config.BoundsCheck is set, it reports the violation via
// paxlog.BoundsViolation, which aborts the process (spec.md §7's
// debug-build log-and-abort path); release builds leave BoundsCheck off
// and rely on the errcode.OutOfBounds return instead.
func (b *Buffer) pixelIndex(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		if b.Config.BoundsCheck {
			paxlog.BoundsViolation(y*b.Width+x, b.Width, b.Height)
		}
		return 0, false
	}
	return y*b.Width + x, true
}

// GetPixelRaw reads the native-space pixel at buffer-native (x,y) (no
// orientation or clip applied), returning black-transparent if out of
// bounds. With Config.BoundsCheck set (as paxconfig.Default does), an
// out-of-bounds read aborts the process instead (see pixelIndex).
func (b *Buffer) GetPixelRaw(x, y int) pcolor.Color {
	idx, ok := b.pixelIndex(x, y)
	if !ok {
		b.errs.Set(errcode.OutOfBounds)
		return pcolor.Transparent
	}
	b.errs.Clear()
	return b.table.GetOne(b.raw.Pixels, idx)
}

// SetPixelRaw writes a pixel at buffer-native (x,y) with no orientation,
// clip, or alpha blending applied — it always overwrites. For palette
// buffers, an out-of-range index is silently a no-op (spec.md §3
// invariant 2).
func (b *Buffer) SetPixelRaw(x, y int, c pcolor.Color) {
	idx, ok := b.pixelIndex(x, y)
	if !ok {
		b.errs.Set(errcode.OutOfBounds)
		return
	}
	if b.TypeInfo.Class == pixfmt.ClassPalette && int(c) >= b.PaletteSize() {
		b.errs.Clear()
		return
	}
	b.table.SetOne(b.raw.Pixels, idx, c)
	b.errs.Clear()
}

// orientedToRaw maps a user-space integer point into buffer-native space.
func (b *Buffer) orientedToRaw(x, y int) (int, int) {
	p := orient.PointI(b.Orientation, b.Width, b.Height, orient.IntPoint{X: x, Y: y})
	return p.X, p.Y
}

// GetPixel reads the pixel at user-space (x,y), applying orientation.
func (b *Buffer) GetPixel(x, y int) pcolor.Color {
	rx, ry := b.orientedToRaw(x, y)
	return b.GetPixelRaw(rx, ry)
}

// SetPixel writes the pixel at user-space (x,y) with orientation applied.
// It does not honor clip or blending — it is the raw single-pixel poke
// spec.md's "Font file format"/test scenarios use to assert storage
// layout; ordinary drawing goes through the shape/shader pipeline in
// draw.go.
func (b *Buffer) SetPixel(x, y int, c pcolor.Color) {
	rx, ry := b.orientedToRaw(x, y)
	b.SetPixelRaw(rx, ry, c)
	b.MarkDirtyPoint(x, y)
}

// RawPixels exposes the buffer's backing storage, e.g. for blit fast
// paths and the SDL2 demo sink.
func (b *Buffer) RawPixels() []byte { return b.raw.Pixels }

// Table exposes the dispatch table for packages that need low-level
// access (internal/shape, internal/raster); kept unexported-by-name but
// reachable from within the module via this accessor.
func (b *Buffer) Table() *pixfmt.Table { return b.table }
