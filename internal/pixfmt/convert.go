package pixfmt

import "github.com/paxgfx/pax/internal/pcolor"

// truncate8 truncates an 8-bit channel down to n bits by discarding low
// bits (spec.md §4.3 invariant 3: to_native is lossy truncation only).
func truncate8(c uint8, n int) uint32 {
	if n <= 0 {
		return 0
	}
	return uint32(c) >> uint(8-n)
}

// expandToBits expands an n-bit channel back up to 8 bits by replicating
// its high bits, so that from_native(to_native(c)) is a deterministic
// function of c's high bits (spec.md §8 testable property 3).
func expandToBits(v uint32, n int) uint8 {
	if n <= 0 {
		return 0
	}
	v &= uint32(1)<<uint(n) - 1
	out := v
	bits := n
	for bits < 8 {
		out = (out << uint(n)) | v
		bits += n
	}
	out >>= uint(bits - 8)
	return uint8(out)
}

// ToNative converts a canonical color to f's native storage word. For
// palette formats this is a bare truncation to the index width: paletted
// writers presume the caller has already chosen an index (spec.md §4.2);
// bounds-checking the index against the actual palette size is the
// buffer's responsibility (spec.md §3 invariant 2), not this function's.
func ToNative(f Format, c pcolor.Color) uint32 {
	info := Info(f)
	switch info.Class {
	case ClassPalette:
		return uint32(c) & (uint32(1)<<uint(info.BPP) - 1)
	case ClassGrey:
		intensity := (uint32(c.R()) + uint32(c.G()) + uint32(c.B())) / 3
		return truncate8(uint8(intensity), info.BPP)
	default: // ClassARGB (and plain RGB, which has ABits==0)
		bOff := 0
		gOff := info.BBits
		rOff := info.BBits + info.GBits
		aOff := info.BBits + info.GBits + info.RBits
		v := truncate8(c.B(), info.BBits) << uint(bOff)
		v |= truncate8(c.G(), info.GBits) << uint(gOff)
		v |= truncate8(c.R(), info.RBits) << uint(rOff)
		v |= truncate8(c.A(), info.ABits) << uint(aOff)
		return v
	}
}

// FromNative converts f's native storage word back to a canonical color.
// Palette formats perform a bounded table lookup, returning entry 0 when
// the index is out of range (spec.md §4.2); pal may be nil, in which case
// black-opaque is returned for any index.
func FromNative(f Format, native uint32, pal []pcolor.Color) pcolor.Color {
	info := Info(f)
	switch info.Class {
	case ClassPalette:
		idx := int(native)
		if idx < 0 || idx >= len(pal) {
			if len(pal) == 0 {
				return pcolor.Black
			}
			return pal[0]
		}
		return pal[idx]
	case ClassGrey:
		v := expandToBits(native, info.BPP)
		return pcolor.ARGB(255, v, v, v)
	default:
		bOff := 0
		gOff := info.BBits
		rOff := info.BBits + info.GBits
		aOff := info.BBits + info.GBits + info.RBits
		mask := func(n int) uint32 { return uint32(1)<<uint(n) - 1 }
		b := expandToBits((native>>uint(bOff))&mask(info.BBits), info.BBits)
		g := expandToBits((native>>uint(gOff))&mask(info.GBits), info.GBits)
		r := expandToBits((native>>uint(rOff))&mask(info.RBits), info.RBits)
		var a uint8 = 255
		if info.ABits > 0 {
			a = expandToBits((native>>uint(aOff))&mask(info.ABits), info.ABits)
		}
		return pcolor.ARGB(a, r, g, b)
	}
}

// ClosestInPalette finds the nearest palette entry to c by summed squared
// per-channel Euclidean distance in ARGB (spec.md §4.2).
func ClosestInPalette(pal []pcolor.Color, c pcolor.Color) int {
	best := 0
	bestDist := int64(-1)
	for i, p := range pal {
		da := int64(p.A()) - int64(c.A())
		dr := int64(p.R()) - int64(c.R())
		dg := int64(p.G()) - int64(c.G())
		db := int64(p.B()) - int64(c.B())
		dist := da*da + dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}
