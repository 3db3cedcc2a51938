package text

import (
	"github.com/paxgfx/pax/internal/pcolor"
	"github.com/paxgfx/pax/pax"
	pfont "github.com/paxgfx/pax/pax/font"
)

// DrawString lays s out against f starting at (x,y) and emits one shaded
// rectangle per glyph cell (spec.md §4.9): aa selects between the plain
// one-bit-sample shader and the 2x2-bilinear antialiased shader.
func DrawString(b *pax.Buffer, f *pfont.Font, tint pcolor.Color, x, y float64, s string, align Align, aa bool) {
	lines := splitLines(Runes(s))
	lineHeight := LineHeight(f)

	for li, line := range lines {
		glyphs, width := layoutLine(f, line)
		offset := alignOffset(align, width)
		lineY := y + float64(li)*lineHeight
		for _, g := range glyphs {
			if g.W <= 0 || g.H <= 0 {
				continue
			}
			var sh *pax.Shader
			if aa {
				sh = AAGlyphShader(g.Range, g.Index)
			} else {
				sh = PlainGlyphShader(g.Range, g.Index)
			}
			b.RectUV(sh, tint, x+offset+g.DrawX, lineY+g.DrawY, g.W, g.H, pax.UV{U: 0, V: 0}, pax.UV{U: 1, V: 1})
		}
	}
}
