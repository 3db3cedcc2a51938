package raster

import "github.com/paxgfx/pax/internal/pixfmt"

// BlitRows copies a w x h block from src at (srcX,srcY) to dst at
// (dstX,dstY), one row at a time. When bpp is byte-aligned it uses a
// direct slice copy per row (Go's copy() compiles to memmove) instead of
// the shader dispatch, per spec.md §4.8's "same-format same-orientation
// buffer with alpha=1 guarantee" fast path; otherwise it falls back to
// per-pixel native reads/writes for sub-byte formats.
func BlitRows(dst Surface, dstX, dstY int, src Surface, srcX, srcY, w, h, bpp int, reverseEndian bool) {
	for row := 0; row < h; row++ {
		dRowStart := (dstY+row)*dst.Width + dstX
		sRowStart := (srcY+row)*src.Width + srcX
		if bpp%8 == 0 {
			bytesPerPixel := bpp / 8
			dByteStart := dRowStart * bytesPerPixel
			sByteStart := sRowStart * bytesPerPixel
			n := w * bytesPerPixel
			copy(dst.Pixels[dByteStart:dByteStart+n], src.Pixels[sByteStart:sByteStart+n])
			continue
		}
		for i := 0; i < w; i++ {
			v := pixfmt.GetNative(src.Pixels, sRowStart+i, bpp, reverseEndian)
			pixfmt.SetNative(dst.Pixels, dRowStart+i, bpp, v, reverseEndian)
		}
	}
}
