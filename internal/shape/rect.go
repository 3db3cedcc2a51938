package shape

// UVMode selects which UV fast path an axis-aligned rectangle fill uses
// (spec.md §4.6). UVNone means the rectangle isn't shaded at all.
type UVMode int

const (
	UVNone UVMode = iota
	// UVIgnore: the shader promised it never reads u,v; skip computing them.
	UVIgnore
	// UVAxisAligned: u varies only with x, v only with y — one lerp per
	// scanline for v, and the row's two U endpoints, instead of
	// interpolating all four corners per pixel.
	UVAxisAligned
)

// Rect produces one full-width Span per covered scanline for an
// axis-aligned rectangle [x0,x1)x[y0,y1), clipped to clip. Non-axis-
// aligned rectangles are the caller's responsibility to decompose into
// two Triangle calls instead.
func Rect(x0, y0, x1, y1 int, clip ClipRect, shaded bool, uv UVMode, u0, v0, u1, v1 float64) []Span {
	rx0, rx1 := clip.clampX(x0), clip.clampX(x1)
	ry0, ry1 := clip.clampY(y0), clip.clampY(y1)
	if rx0 >= rx1 || ry0 >= ry1 || x1 <= x0 || y1 <= y0 {
		return nil
	}

	spans := make([]Span, 0, ry1-ry0)
	for y := ry0; y < ry1; y++ {
		sp := Span{Y: y, X0: rx0, X1: rx1, Shaded: shaded && uv != UVIgnore}
		if sp.Shaded && uv == UVAxisAligned {
			ty := float64(y-y0) / float64(y1-y0)
			v := lerp(v0, v1, ty)
			tx0 := float64(rx0-x0) / float64(x1-x0)
			tx1 := float64(rx1-x0) / float64(x1-x0)
			sp.U0, sp.U1 = lerp(u0, u1, tx0), lerp(u0, u1, tx1)
			sp.V0, sp.V1 = v, v
		}
		spans = append(spans, sp)
	}
	return spans
}
