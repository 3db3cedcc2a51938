package shape

// evalCubic evaluates a cubic Bezier curve at parameter t using the
// standard Bernstein-basis form, interpolating UV alongside X/Y so a
// shaded stroke could (in principle) vary color along its length.
func evalCubic(p0, p1, p2, p3 Vertex, t float64) Vertex {
	mt := 1 - t
	a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
	return Vertex{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
		U: a*p0.U + b*p1.U + c*p2.U + d*p3.U,
		V: a*p0.V + b*p1.V + c*p2.V + d*p3.V,
	}
}

// CubicBezierFixedN evaluates the curve at n+1 uniformly-spaced
// parameter values (n clamped up to 4), the fast path of spec.md §4.6.
func CubicBezierFixedN(p0, p1, p2, p3 Vertex, n int) []Vertex {
	if n < 4 {
		n = 4
	}
	pts := make([]Vertex, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, evalCubic(p0, p1, p2, p3, float64(i)/float64(n)))
	}
	return pts
}

// CubicBezierAdaptive is the high-quality path of spec.md §4.6: starting
// from the two endpoints, it repeatedly finds the longest segment of the
// current polyline and bisects it by evaluating the curve at its
// midpoint parameter, for the given number of bifurcation rounds.
func CubicBezierAdaptive(p0, p1, p2, p3 Vertex, rounds int) []Vertex {
	pts := []Vertex{evalCubic(p0, p1, p2, p3, 0), evalCubic(p0, p1, p2, p3, 1)}
	ts := []float64{0, 1}

	for i := 0; i < rounds; i++ {
		longest, longestLenSq := 0, -1.0
		for j := 0; j < len(pts)-1; j++ {
			dx, dy := pts[j+1].X-pts[j].X, pts[j+1].Y-pts[j].Y
			if lenSq := dx*dx + dy*dy; lenSq > longestLenSq {
				longestLenSq, longest = lenSq, j
			}
		}
		tm := (ts[longest] + ts[longest+1]) / 2
		mid := evalCubic(p0, p1, p2, p3, tm)

		pts = insertVertex(pts, longest+1, mid)
		ts = insertFloat(ts, longest+1, tm)
	}
	return pts
}

func insertVertex(s []Vertex, at int, v Vertex) []Vertex {
	out := make([]Vertex, 0, len(s)+1)
	out = append(out, s[:at]...)
	out = append(out, v)
	return append(out, s[at:]...)
}

func insertFloat(s []float64, at int, v float64) []float64 {
	out := make([]float64, 0, len(s)+1)
	out = append(out, s[:at]...)
	out = append(out, v)
	return append(out, s[at:]...)
}
