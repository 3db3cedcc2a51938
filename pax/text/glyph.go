package text

import (
	"github.com/paxgfx/pax/internal/pcolor"
	"github.com/paxgfx/pax/pax"
	pfont "github.com/paxgfx/pax/pax/font"
)

// glyphSample locates one glyph's bits within a range's packed bitmap:
// the bit offset (in bits) its cell starts at, its stride in bits, and
// its cell size.
type glyphSample struct {
	bitmap        []byte
	bitOffset     int
	strideBits    int
	cellW, cellH  int
}

func sampleFor(rg *pfont.Range, glyphIndex int) glyphSample {
	if rg.Kind == pfont.Variable {
		rec := rg.Records[glyphIndex]
		return glyphSample{
			bitmap:     rg.Bitmap,
			bitOffset:  rec.BitmapOffset * 8,
			strideBits: rec.DrawW,
			cellW:      rec.DrawW,
			cellH:      rec.DrawH,
		}
	}
	strideBits := rg.GlyphWidth
	return glyphSample{
		bitmap:     rg.Bitmap,
		bitOffset:  glyphIndex * strideBits * rg.Height,
		strideBits: strideBits,
		cellW:      rg.GlyphWidth,
		cellH:      rg.Height,
	}
}

// bitAt reads one bit from g's tightly packed (no row padding) bitmap
// strip — the same MSB-first convention pfont.BitAt documents, applied
// directly here because g.bitOffset is a bit offset that may not be
// byte-aligned, which pfont.BitAt's byte-offset parameter can't express.
func bitAt(g glyphSample, x, y int) bool {
	if x < 0 || y < 0 || x >= g.cellW || y >= g.cellH {
		return false
	}
	bitIndex := g.bitOffset + y*g.strideBits + x
	byteIdx := bitIndex / 8
	if byteIdx < 0 || byteIdx >= len(g.bitmap) {
		return false
	}
	bit := 7 - uint(bitIndex%8)
	return g.bitmap[byteIdx]&(1<<bit) != 0
}

// PlainGlyphShader samples one bit from the glyph cell: the tint color
// where the bit is set, the pre-existing pixel (unchanged) where it
// isn't (spec.md §4.9).
func PlainGlyphShader(rg *pfont.Range, glyphIndex int) *pax.Shader {
	g := sampleFor(rg, glyphIndex)
	return pax.NewShader(func(tint, existing pcolor.Color, _, _ int, u, v float64, _ any) pcolor.Color {
		x := int(u * float64(g.cellW))
		y := int(v * float64(g.cellH))
		if bitAt(g, x, y) {
			return tint
		}
		return existing
	}, nil)
}

// AAGlyphShader performs 2x2 bilinear filtering over the glyph's bit
// mask and alpha-blends the resulting coverage, times the tint, over the
// existing pixel (spec.md §4.9).
func AAGlyphShader(rg *pfont.Range, glyphIndex int) *pax.Shader {
	g := sampleFor(rg, glyphIndex)
	return pax.NewShader(func(tint, existing pcolor.Color, _, _ int, u, v float64, _ any) pcolor.Color {
		fx := u*float64(g.cellW) - 0.5
		fy := v*float64(g.cellH) - 0.5
		x0, y0 := int(fx), int(fy)
		tx, ty := fx-float64(x0), fy-float64(y0)
		if fx < 0 {
			x0, tx = -1, fx+1
		}
		if fy < 0 {
			y0, ty = -1, fy+1
		}
		c00, c10 := sampleCoverage(g, x0, y0), sampleCoverage(g, x0+1, y0)
		c01, c11 := sampleCoverage(g, x0, y0+1), sampleCoverage(g, x0+1, y0+1)
		top := c00 + (c10-c00)*tx
		bot := c01 + (c11-c01)*tx
		coverage := top + (bot-top)*ty
		alpha := uint8(coverage * float64(tint.A()))
		blended := pcolor.ARGB(alpha, tint.R(), tint.G(), tint.B())
		return pcolor.MergeAlpha(existing, blended)
	}, nil)
}

func sampleCoverage(g glyphSample, x, y int) float64 {
	if bitAt(g, x, y) {
		return 1
	}
	return 0
}
