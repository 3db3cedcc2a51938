package gui

import (
	"github.com/paxgfx/pax/internal/pcolor"
	pfont "github.com/paxgfx/pax/pax/font"
	"github.com/paxgfx/pax/pax/font/rom"
)

// Variant selects a color palette within a Theme (spec.md §9's
// "accept"-style button coloring, ported from pax_gui_themes.c).
type Variant int

const (
	VariantDefault Variant = iota
	VariantAccept
	VariantDestructive
)

// Palette is one variant's set of element colors, ported from
// pax_gui_types.h's pgui_theme_t element-style fields.
type Palette struct {
	Background  pcolor.Color
	Foreground  pcolor.Color
	Input       pcolor.Color
	Pressed     pcolor.Color
	Border      pcolor.Color
	Highlight   pcolor.Color
}

// Theme is PAX GUI's styling record (spec.md §4.11), ported from
// pax_gui_themes.c's pgui_theme_default.
type Theme struct {
	Palettes map[Variant]Palette

	Rounding     float64
	InputPadding float64
	TextPadding  float64
	BoxPadding   float64

	Font     *pfont.Font
	FontSize float64

	ScrollBackground pcolor.Color
	ScrollForeground pcolor.Color
	ScrollWidth      float64
	ScrollMinSize    float64
	ScrollOffset     float64
	ScrollRounding   float64
}

func (t *Theme) Palette(v Variant) Palette {
	if p, ok := t.Palettes[v]; ok {
		return p
	}
	return t.Palettes[VariantDefault]
}

// DefaultTheme ports pax_gui_themes.c's light theme numeric values.
func DefaultTheme() *Theme {
	return &Theme{
		Palettes: map[Variant]Palette{
			VariantDefault: {
				Background: pcolor.RGB(255, 255, 255),
				Foreground: pcolor.RGB(0, 0, 0),
				Input:      pcolor.RGB(255, 255, 255),
				Pressed:    pcolor.RGB(0x90, 0x90, 0x90),
				Border:     pcolor.RGB(0, 0, 0),
				Highlight:  pcolor.RGB(0x00, 0xe0, 0xe0),
			},
			VariantAccept: {
				Background: pcolor.RGB(255, 255, 255),
				Foreground: pcolor.RGB(0, 0, 0),
				Input:      pcolor.RGB(255, 255, 255),
				Pressed:    pcolor.RGB(0x00, 0x90, 0x00),
				Border:     pcolor.RGB(0, 0, 0),
				Highlight:  pcolor.RGB(0x60, 0xc0, 0x60),
			},
			VariantDestructive: {
				Background: pcolor.RGB(255, 255, 255),
				Foreground: pcolor.RGB(0, 0, 0),
				Input:      pcolor.RGB(255, 255, 255),
				Pressed:    pcolor.RGB(0x90, 0x00, 0x00),
				Border:     pcolor.RGB(0, 0, 0),
				Highlight:  pcolor.RGB(0xc0, 0x60, 0x60),
			},
		},
		Rounding:         7,
		InputPadding:     4,
		TextPadding:      4,
		BoxPadding:       4,
		Font:             rom.Default(),
		FontSize:         18,
		ScrollBackground: pcolor.ARGB(0x3f, 0, 0, 0),
		ScrollForeground: pcolor.ARGB(0x7f, 255, 255, 255),
		ScrollWidth:      6,
		ScrollMinSize:    12,
		ScrollOffset:     4,
		ScrollRounding:   3,
	}
}
