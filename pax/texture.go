package pax

import (
	"math"

	"github.com/paxgfx/pax/internal/pcolor"
)

// TextureShader samples src over the source rectangle [srcX0,srcY0)-
// [srcX1,srcY1) as u,v range over [0,1], returning the texel directly
// when it's fully opaque or merging it (after tint multiplication)
// otherwise (spec.md §4.9's texture shader). bilinear selects 2x2
// filtering instead of nearest-neighbor sampling; its right/bottom
// neighbour texel may lie past the rectangle but stays inside src.
func TextureShader(src *Buffer, srcX0, srcY0, srcX1, srcY1 int, bilinear bool) *Shader {
	return NewShader(func(tint, existing pcolor.Color, x, y int, u, v float64, args any) pcolor.Color {
		fx := float64(srcX0) + u*float64(srcX1-srcX0)
		fy := float64(srcY0) + v*float64(srcY1-srcY0)
		// u or v of exactly 1 lands on the exclusive edge; keep the
		// sample on the rectangle's last texel.
		fx = math.Min(fx, float64(srcX1-1))
		fy = math.Min(fy, float64(srcY1-1))
		var texel pcolor.Color
		if bilinear {
			texel = bilinearSample(src, fx, fy)
		} else {
			texel = src.GetPixelRaw(int(math.Round(fx)), int(math.Round(fy)))
		}
		if tint != pcolor.White {
			texel = pcolor.Tint(texel, tint)
		}
		if texel.A() == 255 {
			return texel
		}
		if texel.A() == 0 {
			return existing
		}
		return pcolor.MergeAlpha(existing, texel)
	}, nil)
}

func bilinearSample(src *Buffer, fx, fy float64) pcolor.Color {
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)
	x1, y1 := min(x0+1, src.Width-1), min(y0+1, src.Height-1)
	c00 := src.GetPixelRaw(x0, y0)
	c10 := src.GetPixelRaw(x1, y0)
	c01 := src.GetPixelRaw(x0, y1)
	c11 := src.GetPixelRaw(x1, y1)
	top := pcolor.Lerp(uint8(tx*255), c00, c10)
	bot := pcolor.Lerp(uint8(tx*255), c01, c11)
	return pcolor.Lerp(uint8(ty*255), top, bot)
}
