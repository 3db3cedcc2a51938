package gui

import "github.com/paxgfx/pax/pax/text"

// TypeTextbox is a single-line text input (ported from pax_gui's
// PGUI_TYPE_TEXTBOX, see pax_gui_textbox.c): printable characters insert
// at the cursor, Back deletes the preceding code point, Left/Right move
// the cursor by one code point.
var TypeTextbox = &TypeDescriptor{
	Name:  "textbox",
	Attrs: AttrSelectable | AttrIsInput,
	MinSize: func(e *Element, theme *Theme) Point {
		w, h := text.Measure(theme.Font, e.Text)
		pad := 2 * theme.InputPadding
		if w < 60 {
			w = 60
		}
		return Point{X: w + pad, Y: h + pad}
	},
	Draw: func(dc DrawContext, pos Point, e *Element, theme *Theme, flags Flags) {
		pal := theme.Palette(e.Variant)
		drawBase(dc, pos, e.Size, theme, pal, flags)
		col := e.TextColor
		if col == 0 {
			col = pal.Foreground
		}
		text.DrawString(dc, theme.Font, col, pos.X+theme.InputPadding, pos.Y+theme.InputPadding, e.Text, text.AlignBegin, false)
	},
	Event: func(e *Element, ev Event) Response {
		if e.Flags.Has(Inactive) || ev.Type == EventRelease {
			return Ignored
		}
		switch ev.Input {
		case InputLeft:
			e.CursorPos = text.SeekPrev(e.Text, e.CursorPos)
			return CapturedDirty
		case InputRight:
			e.CursorPos = text.SeekNext(e.Text, e.CursorPos)
			return CapturedDirty
		case InputBack:
			if e.CursorPos == 0 {
				return CapturedErr
			}
			prev := text.SeekPrev(e.Text, e.CursorPos)
			e.Text = e.Text[:prev] + e.Text[e.CursorPos:]
			e.CursorPos = prev
			return CapturedDirty
		case InputNone:
			if ev.Value == 0 {
				return Ignored
			}
			e.Text = e.Text[:e.CursorPos] + string(ev.Value) + e.Text[e.CursorPos:]
			e.CursorPos += len(string(ev.Value))
			return CapturedDirty
		default:
			return Ignored
		}
	},
}

// NewTextbox constructs an empty textbox with the cursor at the start.
func NewTextbox() *Element {
	return NewElement(TypeTextbox)
}

// CaretOffset returns the pixel offset of e's cursor within its text,
// for a caller to draw a blinking caret (spec.md §4.9's cursor-position
// query, exercised here by the text-input widget).
func CaretOffset(e *Element, theme *Theme) (x, y float64) {
	return text.CursorOffset(theme.Font, e.Text, runeIndex(e.Text, e.CursorPos), text.AlignBegin)
}

func runeIndex(s string, byteOffset int) int {
	n := 0
	for i := 0; i < byteOffset && i < len(s); {
		_, size := text.Decode([]byte(s[i:]))
		if size == 0 {
			size = 1
		}
		i += size
		n++
	}
	return n
}
