package pcolor

// Lerp8 is the 8-bit integer interpolant a + (b-a)*(t + (t>>7)) / 256,
// t in [0,255]. Adding t>>7 stretches t=255 to 256, so t=255 yields b
// exactly and t=0 yields a.
func Lerp8(t uint8, a, b uint8) uint8 {
	ti := int32(t)
	d := int32(b) - int32(a)
	return uint8(int32(a) + d*(ti+(ti>>7))/256)
}

// Merge composites top over base (top's alpha drives the blend), with the
// output alpha clamped to 255 — i.e. compositing onto a fully opaque base.
func Merge(base, top Color) Color {
	a := top.A()
	r := Lerp8(a, base.R(), top.R())
	g := Lerp8(a, base.G(), top.G())
	b := Lerp8(a, base.B(), top.B())
	return ARGB(255, r, g, b)
}

// MergeAlpha is like Merge but also blends the alpha channel instead of
// forcing it to 255 — used when compositing onto another non-opaque
// surface (e.g. shader chains that keep transparency).
func MergeAlpha(base, top Color) Color {
	a := top.A()
	outA := Lerp8(a, base.A(), 255)
	r := Lerp8(a, base.R(), top.R())
	g := Lerp8(a, base.G(), top.G())
	b := Lerp8(a, base.B(), top.B())
	return ARGB(outA, r, g, b)
}

// Tint multiplies col by tintColor per channel: col*tint/255.
func Tint(col, tintColor Color) Color {
	mul := func(a, b uint8) uint8 { return uint8(uint32(a) * uint32(b) / 255) }
	return ARGB(mul(col.A(), tintColor.A()), mul(col.R(), tintColor.R()), mul(col.G(), tintColor.G()), mul(col.B(), tintColor.B()))
}

// Lerp blends two whole colors by the same 8-bit interpolant, channel by
// channel including alpha.
func Lerp(t uint8, a, b Color) Color {
	return ARGB(Lerp8(t, a.A(), b.A()), Lerp8(t, a.R(), b.R()), Lerp8(t, a.G(), b.G()), Lerp8(t, a.B(), b.B()))
}
