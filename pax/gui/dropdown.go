package gui

import "github.com/paxgfx/pax/pax/text"

const dropdownMargin = 1

// visibleOptionCount returns how many option rows fit within e's open
// menu height, at least 1.
func visibleOptionCount(e *Element, theme *Theme) int {
	rowH := text.LineHeight(theme.Font) + 2*theme.TextPadding
	n := int(e.Size.Y / rowH)
	if n < 1 {
		n = 1
	}
	if n > len(e.Options) {
		n = len(e.Options)
	}
	return n
}

// adjustScroll applies the "keep selection plus a margin visible" policy
// (spec.md §9's dropdown scroll-adjustment resolution): the selected
// option is kept at least dropdownMargin rows away from either visible
// edge, unless doing so would scroll past the option list's bounds.
func adjustScroll(e *Element, visible int) {
	maxScroll := len(e.Options) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if e.SelectedOption-dropdownMargin < e.ScrollOffset {
		e.ScrollOffset = e.SelectedOption - dropdownMargin
	}
	if e.SelectedOption+dropdownMargin >= e.ScrollOffset+visible {
		e.ScrollOffset = e.SelectedOption + dropdownMargin - visible + 1
	}
	if e.ScrollOffset < 0 {
		e.ScrollOffset = 0
	}
	if e.ScrollOffset > maxScroll {
		e.ScrollOffset = maxScroll
	}
}

// TypeDropdown is a closed-by-default single-select popup list (ported
// from pax_gui_dropdown.c): Accept opens/closes it; while open, Up/Down
// move the selection, applying the margin-scroll policy.
var TypeDropdown = &TypeDescriptor{
	Name:  "dropdown",
	Attrs: AttrSelectable | AttrIsInput,
	MinSize: func(e *Element, theme *Theme) Point {
		h := text.LineHeight(theme.Font) + 2*theme.InputPadding
		return Point{X: 100, Y: h}
	},
	Draw: func(dc DrawContext, pos Point, e *Element, theme *Theme, flags Flags) {
		pal := theme.Palette(e.Variant)
		drawBase(dc, pos, e.Size, theme, pal, flags)
		label := ""
		if e.SelectedOption >= 0 && e.SelectedOption < len(e.Options) {
			label = e.Options[e.SelectedOption]
		}
		text.DrawString(dc, theme.Font, pal.Foreground, pos.X+theme.InputPadding, pos.Y+theme.InputPadding, label, text.AlignBegin, false)

		if !flags.Has(Active) {
			return
		}
		visible := visibleOptionCount(e, theme)
		rowH := text.LineHeight(theme.Font) + 2*theme.TextPadding
		menuY := pos.Y + e.Size.Y
		dc.SimpleRect(pal.Input, pos.X, menuY, e.Size.X, rowH*float64(visible))
		for i := 0; i < visible; i++ {
			optIdx := e.ScrollOffset + i
			if optIdx >= len(e.Options) {
				break
			}
			rowY := menuY + float64(i)*rowH
			col := pal.Foreground
			if optIdx == e.SelectedOption {
				dc.SimpleRect(pal.Highlight, pos.X, rowY, e.Size.X, rowH)
			}
			text.DrawString(dc, theme.Font, col, pos.X+theme.TextPadding, rowY+theme.TextPadding, e.Options[optIdx], text.AlignBegin, false)
		}
	},
	Event: func(e *Element, ev Event) Response {
		if e.Flags.Has(Inactive) || ev.Type != EventPress {
			return Ignored
		}
		if !e.Flags.Has(Active) {
			if ev.Input == InputAccept {
				e.Flags |= Active
				adjustScroll(e, visibleOptionCount(e, nonNilTheme(e)))
				return CapturedDirty
			}
			return Ignored
		}
		switch ev.Input {
		case InputAccept:
			e.Flags &^= Active
			return CapturedDirty
		case InputBack:
			e.Flags &^= Active
			return CapturedDirty
		case InputUp:
			if e.SelectedOption > 0 {
				e.SelectedOption--
				adjustScroll(e, visibleOptionCount(e, nonNilTheme(e)))
				return CapturedDirty
			}
			return CapturedErr
		case InputDown:
			if e.SelectedOption < len(e.Options)-1 {
				e.SelectedOption++
				adjustScroll(e, visibleOptionCount(e, nonNilTheme(e)))
				return CapturedDirty
			}
			return CapturedErr
		default:
			return Ignored
		}
	},
}

// nonNilTheme is a fallback used by the event handler, which isn't
// passed a *Theme directly (spec.md §4.11's event signature carries only
// the event); layout-affecting decisions made at event time use the
// default metrics, and the next Calc/Draw pass reconciles against the
// real theme.
func nonNilTheme(e *Element) *Theme { return DefaultTheme() }

// NewDropdown constructs a closed dropdown over the given options.
func NewDropdown(options []string) *Element {
	el := NewElement(TypeDropdown)
	el.Options = options
	return el
}
