package text

import pfont "github.com/paxgfx/pax/pax/font"

// Align selects how a measured line is offset relative to the caller's x
// coordinate (spec.md §4.9).
type Align int

const (
	AlignBegin Align = iota
	AlignCenter
	AlignEnd
)

// glyph is one resolved, positioned code point within a laid-out string.
type glyph struct {
	Range      *pfont.Range
	Index      int
	DrawX      float64 // offset from the line's pen position
	DrawY      float64
	W, H       float64
	advance    float64
}

// LineHeight returns the vertical distance between baselines: the
// tallest range's cell height, or the font's default size if it has no
// ranges.
func LineHeight(f *pfont.Font) float64 {
	h := 0
	for i := range f.Ranges {
		if f.Ranges[i].Height > h {
			h = f.Ranges[i].Height
		}
	}
	if h == 0 {
		h = f.DefaultSize
	}
	return float64(h)
}

func cellFor(rg *pfont.Range, idx int) (drawX, drawY, w, h, advance float64) {
	if rg.Kind == pfont.Variable {
		rec := rg.Records[idx]
		return float64(rec.DrawX), float64(rec.DrawY), float64(rec.DrawW), float64(rec.DrawH), float64(rec.AdvanceWidth)
	}
	return 0, 0, float64(rg.GlyphWidth), float64(rg.Height), float64(rg.GlyphWidth)
}

// layoutLine resolves and positions every code point of one line
// (already free of '\n'), with the pen starting at x=0.
func layoutLine(f *pfont.Font, line []rune) (glyphs []glyph, width float64) {
	pen := 0.0
	for _, cp := range line {
		rg, idx, _ := f.Lookup(cp)
		if rg == nil {
			continue
		}
		dx, dy, w, h, adv := cellFor(rg, idx)
		glyphs = append(glyphs, glyph{Range: rg, Index: idx, DrawX: pen + dx, DrawY: dy, W: w, H: h, advance: adv})
		pen += adv
	}
	return glyphs, pen
}

func splitLines(runes []rune) [][]rune {
	var lines [][]rune
	start := 0
	for i, r := range runes {
		if r == '\n' {
			lines = append(lines, runes[start:i])
			start = i + 1
		}
	}
	lines = append(lines, runes[start:])
	return lines
}

func alignOffset(align Align, width float64) float64 {
	switch align {
	case AlignCenter:
		return -width / 2
	case AlignEnd:
		return -width
	default:
		return 0
	}
}

// CursorOffset returns the pixel offset of the code point at rune index
// idx within s, relative to the string's top-left draw origin, for the
// text-input widget's caret placement (spec.md §4.9).
func CursorOffset(f *pfont.Font, s string, idx int, align Align) (x, y float64) {
	runes := Runes(s)
	if idx > len(runes) {
		idx = len(runes)
	}
	lines := splitLines(runes)
	lineHeight := LineHeight(f)

	consumed := 0
	for li, line := range lines {
		if idx > consumed+len(line) {
			consumed += len(line) + 1
			continue
		}
		glyphs, width := layoutLine(f, line)
		offset := alignOffset(align, width)
		within := idx - consumed
		pen := 0.0
		for i := 0; i < within && i < len(glyphs); i++ {
			pen += glyphs[i].advance
		}
		return offset + pen, float64(li) * lineHeight
	}
	return alignOffset(align, 0), float64(len(lines)-1) * lineHeight
}

// Measure returns the bounding width (of the widest line) and total
// height (line count times line height) of s.
func Measure(f *pfont.Font, s string) (width, height float64) {
	lines := splitLines(Runes(s))
	lineHeight := LineHeight(f)
	for _, line := range lines {
		_, w := layoutLine(f, line)
		if w > width {
			width = w
		}
	}
	return width, float64(len(lines)) * lineHeight
}
