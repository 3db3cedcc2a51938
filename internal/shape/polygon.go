package shape

import "math"

// PolygonOutline returns the edges of points as a closed or open
// polyline: n edges if closed, n-1 if not (spec.md §4.6's "N or N+1
// lines").
func PolygonOutline(points []Vertex, closed bool) [][2]Vertex {
	n := len(points)
	if n < 2 {
		return nil
	}
	limit := n - 1
	if closed {
		limit = n
	}
	segs := make([][2]Vertex, 0, limit)
	for i := 0; i < limit; i++ {
		segs = append(segs, [2]Vertex{points[i], points[(i+1)%n]})
	}
	return segs
}

func lerpVertex(a, b Vertex, t float64) Vertex {
	return Vertex{X: lerp(a.X, b.X, t), Y: lerp(a.Y, b.Y, t), U: lerp(a.U, b.U, t), V: lerp(a.V, b.V, t)}
}

// PolygonOutlineFraction restricts the outline to the perimeter fraction
// [from,to] (each in [0,1]), measured by cumulative edge length (spec.md
// §4.6).
func PolygonOutlineFraction(points []Vertex, closed bool, from, to float64) [][2]Vertex {
	full := PolygonOutline(points, closed)
	if from <= 0 && to >= 1 {
		return full
	}
	lengths := make([]float64, len(full))
	total := 0.0
	for i, s := range full {
		lengths[i] = math.Hypot(s[1].X-s[0].X, s[1].Y-s[0].Y)
		total += lengths[i]
	}
	if total == 0 {
		return nil
	}
	startLen, endLen := from*total, to*total

	var out [][2]Vertex
	cum := 0.0
	for i, s := range full {
		segStart, segEnd := cum, cum+lengths[i]
		cum = segEnd
		if segEnd <= startLen || segStart >= endLen {
			continue
		}
		a, b := s[0], s[1]
		if segStart < startLen {
			a = lerpVertex(s[0], s[1], (startLen-segStart)/lengths[i])
		}
		if segEnd > endLen {
			b = lerpVertex(s[0], s[1], (endLen-segStart)/lengths[i])
		}
		out = append(out, [2]Vertex{a, b})
	}
	return out
}

func polygonSignedArea(points []Vertex) float64 {
	area := 0.0
	n := len(points)
	for i := 0; i < n; i++ {
		a, b := points[i], points[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

func crossSign(p1, p2, p3 Vertex) float64 {
	return (p1.X-p3.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p3.Y)
}

func pointInTriangle(p, a, b, c Vertex) bool {
	d1, d2, d3 := crossSign(p, a, b), crossSign(p, b, c), crossSign(p, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func isConvexVertex(a, b, c Vertex, ccw bool) bool {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if ccw {
		return cross > 0
	}
	return cross < 0
}

// Triangulate ear-clips a simple closed polygon into n-2 triangles
// (spec.md §4.6). It aborts (ok=false) if no ear can be found, which
// happens for self-intersecting input; whatever triangles were already
// emitted are still returned.
func Triangulate(points []Vertex) (tris [][3]Vertex, ok bool) {
	n := len(points)
	if n < 3 {
		return nil, false
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	ccw := polygonSignedArea(points) > 0

	guard := 0
	for len(idx) > 3 {
		guard++
		if guard > n*n {
			return tris, false
		}
		earFound := false
		for i := 0; i < len(idx); i++ {
			i0 := idx[(i-1+len(idx))%len(idx)]
			i1 := idx[i]
			i2 := idx[(i+1)%len(idx)]
			a, b, c := points[i0], points[i1], points[i2]
			if !isConvexVertex(a, b, c, ccw) {
				continue
			}
			inside := false
			for _, j := range idx {
				if j == i0 || j == i1 || j == i2 {
					continue
				}
				if pointInTriangle(points[j], a, b, c) {
					inside = true
					break
				}
			}
			if inside {
				continue
			}
			tris = append(tris, [3]Vertex{a, b, c})
			idx = append(idx[:i], idx[i+1:]...)
			earFound = true
			break
		}
		if !earFound {
			return tris, false
		}
	}
	tris = append(tris, [3]Vertex{points[idx[0]], points[idx[1]], points[idx[2]]})
	return tris, true
}
