package shape

import "math"

// Edge is one side of a y-monotone trapezoid: Top.Y <= Bottom.Y.
type Edge struct{ Top, Bottom Vertex }

// Triangle decomposes a triangle into spans by sorting its vertices by Y,
// splitting at the middle vertex's Y into an upper and lower y-monotone
// trapezoid (interpolating the opposite edge's x and, if shaded, UV at
// that Y), and scanning each trapezoid (spec.md §4.6).
func Triangle(verts [3]Vertex, clip ClipRect, shaded bool) []Span {
	v := verts
	if v[0].Y > v[1].Y {
		v[0], v[1] = v[1], v[0]
	}
	if v[1].Y > v[2].Y {
		v[1], v[2] = v[2], v[1]
	}
	if v[0].Y > v[1].Y {
		v[0], v[1] = v[1], v[0]
	}
	top, mid, bot := v[0], v[1], v[2]
	if top.Y == bot.Y {
		return nil
	}
	t := (mid.Y - top.Y) / (bot.Y - top.Y)
	midOpp := Vertex{
		X: lerp(top.X, bot.X, t), Y: mid.Y,
		U: lerp(top.U, bot.U, t), V: lerp(top.V, bot.V, t),
	}

	var leftIsMid bool
	if mid.X <= midOpp.X {
		leftIsMid = true
	}

	var spans []Span
	if mid.Y > top.Y {
		var edgeL, edgeR Edge
		if leftIsMid {
			edgeL, edgeR = Edge{top, mid}, Edge{top, midOpp}
		} else {
			edgeL, edgeR = Edge{top, midOpp}, Edge{top, mid}
		}
		spans = append(spans, trapezoidSpans(edgeL, edgeR, clip, shaded)...)
	}
	if bot.Y > mid.Y {
		var edgeL, edgeR Edge
		if leftIsMid {
			edgeL, edgeR = Edge{mid, bot}, Edge{midOpp, bot}
		} else {
			edgeL, edgeR = Edge{midOpp, bot}, Edge{mid, bot}
		}
		spans = append(spans, trapezoidSpans(edgeL, edgeR, clip, shaded)...)
	}
	return spans
}

// trapezoidSpans scans the y-monotone trapezoid bounded by edgeL and
// edgeR (which must share the same Top.Y/Bottom.Y), clipped to clip,
// producing one Span per integer scanline.
func trapezoidSpans(edgeL, edgeR Edge, clip ClipRect, shaded bool) []Span {
	y0, y1 := edgeL.Top.Y, edgeL.Bottom.Y
	if y1 <= y0 {
		return nil
	}
	yStart := int(math.Ceil(y0))
	if yStart < clip.Y0 {
		yStart = clip.Y0
	}
	yLimit := int(math.Ceil(y1))
	if yLimit > clip.Y1 {
		yLimit = clip.Y1
	}
	if yStart >= yLimit {
		return nil
	}

	spans := make([]Span, 0, yLimit-yStart)
	for y := yStart; y < yLimit; y++ {
		ft := (float64(y) - y0) / (y1 - y0)
		xl := lerp(edgeL.Top.X, edgeL.Bottom.X, ft)
		xr := lerp(edgeR.Top.X, edgeR.Bottom.X, ft)
		ul, vl := lerp(edgeL.Top.U, edgeL.Bottom.U, ft), lerp(edgeL.Top.V, edgeL.Bottom.V, ft)
		ur, vr := lerp(edgeR.Top.U, edgeR.Bottom.U, ft), lerp(edgeR.Top.V, edgeR.Bottom.V, ft)
		if xl > xr {
			xl, xr = xr, xl
			ul, ur = ur, ul
			vl, vr = vr, vl
		}
		x0 := clip.clampX(int(math.Ceil(xl)))
		x1 := clip.clampX(int(math.Ceil(xr)))
		if x0 >= x1 {
			continue
		}
		sp := Span{Y: y, X0: x0, X1: x1, Shaded: shaded}
		if shaded {
			sp.U0, sp.V0 = ul, vl
			sp.U1, sp.V1 = ur, vr
		}
		spans = append(spans, sp)
	}
	return spans
}
