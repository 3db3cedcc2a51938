// Package rom builds PAX's built-in fallback font from
// golang.org/x/image/font/basicfont's embedded 7x13 bitmap face, so a
// buffer always has something to draw text with before a .paxfont file
// is loaded (spec.md §3's font descriptor, populated here instead of
// decoded from bytes).
package rom

import (
	"image"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	pfont "github.com/paxgfx/pax/pax/font"
)

// Default converts basicfont.Face7x13 into a monospace PAX font with
// one glyph range per contiguous code-point block the face defines.
func Default() *pfont.Font {
	face := basicfont.Face7x13
	cellW, cellH := face.Width, face.Height

	var ranges []pfont.Range
	for _, rg := range face.Ranges {
		low, high := rg.Low, rg.High
		count := int(high - low)
		if count <= 0 {
			continue
		}
		bitsTotal := cellW * cellH * count
		bitmap := make([]byte, (bitsTotal+7)/8)
		for gi := 0; gi < count; gi++ {
			cp := low + rune(gi)
			_, mask, maskp, _, ok := face.Glyph(fixed.Point26_6{}, cp)
			if !ok || mask == nil {
				continue
			}
			glyphBitOffset := gi * cellW * cellH
			bounds := mask.Bounds()
			for y := 0; y < cellH; y++ {
				for x := 0; x < cellW; x++ {
					p := image.Point{X: maskp.X + x, Y: maskp.Y + y}
					if !p.In(bounds) {
						continue
					}
					_, _, _, a := mask.At(p.X, p.Y).RGBA()
					if a > 0x7fff {
						setBit(bitmap, glyphBitOffset, cellW, x, y)
					}
				}
			}
		}
		ranges = append(ranges, pfont.Range{
			Kind: pfont.Monospace, First: low, Last: high - 1,
			Height: cellH, BPP: 1, GlyphWidth: cellW, Bitmap: bitmap,
		})
	}
	return &pfont.Font{Name: "rom7x13", DefaultSize: cellH, Ranges: ranges}
}

// setBit sets one bit within a tightly packed (no row padding) glyph
// bitmap strip, matching pax/font's BitAt reader (stride in bits, not
// bytes).
func setBit(bitmap []byte, glyphBitOffset, strideBits, x, y int) {
	bitIndex := glyphBitOffset + y*strideBits + x
	byteIdx := bitIndex / 8
	bit := 7 - uint(bitIndex%8)
	bitmap[byteIdx] |= 1 << bit
}
