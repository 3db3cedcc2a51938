package pcolor

// HSV operations use integer math on a 6x256-phase hue wheel (spec.md
// §4.2): hue in [0,1535] (6*256), saturation/value in [0,255].

// FromHSV converts an integer HSV triple (hue 0-1535, sat/val 0-255) plus
// an alpha channel into a canonical Color. RGB<->HSV round-trips exactly
// modulo rounding because both directions walk the same 256-step phase
// interpolation.
func FromHSV(a uint8, hue int, sat, val uint8) Color {
	hue = ((hue % 1536) + 1536) % 1536
	phase := hue / 256
	frac := uint8(hue % 256)

	v := uint32(val)
	s := uint32(sat)
	p := uint8(v * (255 - s) / 255)
	q := uint8(v * uint32(255-uint32(frac)*s/255) / 255)
	t := uint8(v * uint32(255-uint32(255-frac)*s/255) / 255)
	vv := uint8(val)

	switch phase {
	case 0:
		return ARGB(a, vv, t, p)
	case 1:
		return ARGB(a, q, vv, p)
	case 2:
		return ARGB(a, p, vv, t)
	case 3:
		return ARGB(a, p, q, vv)
	case 4:
		return ARGB(a, t, p, vv)
	default:
		return ARGB(a, vv, p, q)
	}
}

// ToHSV is the inverse of FromHSV: it returns (hue, sat, val) for the RGB
// channels of c, discarding alpha.
func ToHSV(c Color) (hue int, sat, val uint8) {
	r, g, b := c.R(), c.G(), c.B()
	max := r
	if g > max {
		max = g
	}
	if b > max {
		max = b
	}
	min := r
	if g < min {
		min = g
	}
	if b < min {
		min = b
	}
	val = max
	delta := int(max) - int(min)
	if max == 0 || delta == 0 {
		return 0, 0, val
	}
	sat = uint8(delta * 255 / int(max))

	var phase int
	var frac int
	switch {
	case r == max:
		phase = 0
		frac = ((int(g) - int(b)) * 256 / delta)
		if frac < 0 {
			frac += 1536
		}
	case g == max:
		phase = 2
		frac = (int(b) - int(r)) * 256 / delta
	default:
		phase = 4
		frac = (int(r) - int(g)) * 256 / delta
	}
	hue = (phase*256 + frac) % 1536
	if hue < 0 {
		hue += 1536
	}
	return hue, sat, val
}
