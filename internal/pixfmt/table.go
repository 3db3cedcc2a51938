package pixfmt

import "github.com/paxgfx/pax/internal/pcolor"

// Table is the per-buffer dispatch table spec.md §3 calls `setters`:
// {get_one, set_one, set_range, merge_range} chosen once from
// (bpp, class, reverse_endianness) at buffer construction and on format
// mutation. It closes over the format and palette reference rather than
// taking them as parameters on every call, matching the "choose once,
// call many" shape of the reference implementation's function-pointer
// table (spec.md §9).
type Table struct {
	Format          Format
	ReverseEndian   bool
	GetOne          func(pixels []byte, idx int) pcolor.Color
	SetOne          func(pixels []byte, idx int, c pcolor.Color)
	SetRange        func(pixels []byte, idx, count int, c pcolor.Color)
	MergeRange      func(pixels []byte, idx, count int, c pcolor.Color)
	ConvertToNative func(c pcolor.Color) uint32
	ConvertFromNative func(native uint32) pcolor.Color
}

// NewTable builds the dispatch table for format f. pal is consulted by
// FromNative lookups for palette formats; it may be nil for non-palette
// formats or borrowed/owned palettes alike (ownership is the buffer's
// concern, not the table's). rangeSetterEnabled/rangeMergerEnabled gate
// SetRange/MergeRange's specialized bulk loops (spec.md §3 `setters`
// table); disabled, each falls back to calling SetOne/GetOne one pixel
// at a time, for platforms where the specialized loop isn't worth its
// code size.
func NewTable(f Format, reverseEndian bool, pal *[]pcolor.Color, rangeSetterEnabled, rangeMergerEnabled bool) *Table {
	bpp := Info(f).BPP
	toNative := func(c pcolor.Color) uint32 { return ToNative(f, c) }
	fromNative := func(n uint32) pcolor.Color {
		var p []pcolor.Color
		if pal != nil {
			p = *pal
		}
		return FromNative(f, n, p)
	}

	t := &Table{Format: f, ReverseEndian: reverseEndian, ConvertToNative: toNative, ConvertFromNative: fromNative}

	t.GetOne = func(pixels []byte, idx int) pcolor.Color {
		return fromNative(GetNative(pixels, idx, bpp, reverseEndian))
	}
	t.SetOne = func(pixels []byte, idx int, c pcolor.Color) {
		SetNative(pixels, idx, bpp, toNative(c), reverseEndian)
	}
	t.SetRange = func(pixels []byte, idx, count int, c pcolor.Color) {
		if !rangeSetterEnabled {
			for i := 0; i < count; i++ {
				t.SetOne(pixels, idx+i, c)
			}
			return
		}
		SetRange(pixels, idx, count, bpp, toNative(c), reverseEndian)
	}
	t.MergeRange = func(pixels []byte, idx, count int, c pcolor.Color) {
		if rangeMergerEnabled && c.A() == 255 {
			t.SetRange(pixels, idx, count, c)
			return
		}
		if c.A() == 0 {
			return
		}
		for i := 0; i < count; i++ {
			existing := t.GetOne(pixels, idx+i)
			t.SetOne(pixels, idx+i, pcolor.Merge(existing, c))
		}
	}
	return t
}
