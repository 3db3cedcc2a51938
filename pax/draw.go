package pax

import (
	"math"

	"github.com/paxgfx/pax/internal/orient"
	"github.com/paxgfx/pax/internal/pcolor"
	"github.com/paxgfx/pax/internal/pixfmt"
	"github.com/paxgfx/pax/internal/raster"
	"github.com/paxgfx/pax/internal/shader"
	"github.com/paxgfx/pax/internal/shape"
	"github.com/paxgfx/pax/internal/transform"
)

// Shader re-exports internal/shader's record type as PAX's public
// programmable-pixel-stage entry point (spec.md §3/§4.7).
type Shader = shader.Shader

// ShaderCallback is the v1 per-pixel shader signature: it receives the
// draw's tint and the pre-existing pixel so it can decide how to blend.
type ShaderCallback = shader.CallbackV1

// NewShader builds a v1 Shader record around cb.
func NewShader(cb ShaderCallback, args any) *Shader { return shader.New(cb, args) }

// UV is a texture coordinate pair attached to a shaded vertex.
type UV struct{ U, V float64 }

func (b *Buffer) surface() raster.Surface {
	return raster.Surface{Pixels: b.raw.Pixels, Table: b.table, Width: b.Width}
}

func (b *Buffer) shapeClip() shape.ClipRect {
	return shape.ClipRect{X0: b.Clip.X0, Y0: b.Clip.Y0, X1: b.Clip.X1, Y1: b.Clip.Y1}
}

// toNative maps a user-space point through the current transform, then
// through orientation, into buffer-native pixel space.
func (b *Buffer) toNative(x, y float64) transform.Point {
	p := b.Stack.Top().Apply(transform.Point{X: x, Y: y})
	return orient.PointF(b.Orientation, float64(b.Width), float64(b.Height), p)
}

func (b *Buffer) commitSpans(sh *Shader, tint pcolor.Color, spans []shape.Span) {
	ctx := shader.Build(sh, tint.A())
	writer := shader.SelectWriter(sh, b.TypeInfo.Class == pixfmt.ClassPalette, tint.A())
	minX, minY, maxX, maxY := raster.Spans(b.surface(), spans, tint, ctx, writer, b.scheduler())
	if maxX > minX && maxY > minY {
		b.MarkDirtyRect(minX, minY, maxX-minX, maxY-minY)
	}
	b.errs.Clear()
}

func vertex(b *Buffer, x, y float64, uv *UV) shape.Vertex {
	p := b.toNative(x, y)
	v := shape.Vertex{X: p.X, Y: p.Y}
	if uv != nil {
		v.U, v.V = uv.U, uv.V
	}
	return v
}

// SimpleTriangle fills an unshaded triangle with a flat color.
func (b *Buffer) SimpleTriangle(c pcolor.Color, x0, y0, x1, y1, x2, y2 float64) {
	b.Triangle(nil, c, x0, y0, x1, y1, x2, y2)
}

// Triangle fills a triangle, optionally shaded, with no UVs attached.
func (b *Buffer) Triangle(sh *Shader, tint pcolor.Color, x0, y0, x1, y1, x2, y2 float64) {
	verts := [3]shape.Vertex{
		vertex(b, x0, y0, nil), vertex(b, x1, y1, nil), vertex(b, x2, y2, nil),
	}
	spans := shape.Triangle(verts, b.shapeClip(), sh != nil)
	b.commitSpans(sh, tint, spans)
}

// TriangleUV fills a shaded triangle with per-vertex UV coordinates.
func (b *Buffer) TriangleUV(sh *Shader, tint pcolor.Color, x0, y0 float64, uv0 UV, x1, y1 float64, uv1 UV, x2, y2 float64, uv2 UV) {
	verts := [3]shape.Vertex{
		vertex(b, x0, y0, &uv0), vertex(b, x1, y1, &uv1), vertex(b, x2, y2, &uv2),
	}
	spans := shape.Triangle(verts, b.shapeClip(), true)
	b.commitSpans(sh, tint, spans)
}

func normalizeRectF(r transform.Rect) (x0, y0, x1, y1 float64) {
	x0, x1 = r.X, r.X+r.W
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	y0, y1 = r.Y, r.Y+r.H
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return
}

// SimpleRect fills an unshaded axis-aligned (in the current transform)
// rectangle.
func (b *Buffer) SimpleRect(c pcolor.Color, x, y, w, h float64) {
	b.Rect(nil, c, x, y, w, h)
}

// Rect fills a rectangle in user coordinates, with no UVs attached. When
// the current transform is first-order (scale/translate only), it uses
// the axis-aligned fast path; otherwise it degrades to two triangles
// (spec.md §4.6).
func (b *Buffer) Rect(sh *Shader, tint pcolor.Color, x, y, w, h float64) {
	m := b.Stack.Top()
	if m.IsFirstOrder() {
		r := orient.RectF(b.Orientation, float64(b.Width), float64(b.Height), m.ApplyRect(transform.Rect{X: x, Y: y, W: w, H: h}))
		x0, y0, x1, y1 := normalizeRectF(r)
		spans := shape.Rect(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)), b.shapeClip(), sh != nil, shape.UVIgnore, 0, 0, 0, 0)
		b.commitSpans(sh, tint, spans)
		return
	}
	b.rectAsTriangles(sh, tint, x, y, w, h, false, UV{}, UV{})
}

// RectUV fills an axis-aligned-UV-mapped rectangle: u varies only with
// x, v only with y (spec.md §4.6's UV fast path).
func (b *Buffer) RectUV(sh *Shader, tint pcolor.Color, x, y, w, h float64, uv0, uv1 UV) {
	m := b.Stack.Top()
	if m.IsFirstOrder() {
		r := orient.RectF(b.Orientation, float64(b.Width), float64(b.Height), m.ApplyRect(transform.Rect{X: x, Y: y, W: w, H: h}))
		x0, y0, x1, y1 := normalizeRectF(r)
		spans := shape.Rect(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)), b.shapeClip(), true, shape.UVAxisAligned, uv0.U, uv0.V, uv1.U, uv1.V)
		b.commitSpans(sh, tint, spans)
		return
	}
	b.rectAsTriangles(sh, tint, x, y, w, h, true, uv0, uv1)
}

func (b *Buffer) rectAsTriangles(sh *Shader, tint pcolor.Color, x, y, w, h float64, shaded bool, uv0, uv1 UV) {
	tl, tr := UV{uv0.U, uv0.V}, UV{uv1.U, uv0.V}
	bl, br := UV{uv0.U, uv1.V}, UV{uv1.U, uv1.V}
	var spans []shape.Span
	if shaded {
		v1 := [3]shape.Vertex{vertex(b, x, y, &tl), vertex(b, x+w, y, &tr), vertex(b, x+w, y+h, &br)}
		v2 := [3]shape.Vertex{vertex(b, x, y, &tl), vertex(b, x+w, y+h, &br), vertex(b, x, y+h, &bl)}
		spans = append(spans, shape.Triangle(v1, b.shapeClip(), true)...)
		spans = append(spans, shape.Triangle(v2, b.shapeClip(), true)...)
	} else {
		v1 := [3]shape.Vertex{vertex(b, x, y, nil), vertex(b, x+w, y, nil), vertex(b, x+w, y+h, nil)}
		v2 := [3]shape.Vertex{vertex(b, x, y, nil), vertex(b, x+w, y+h, nil), vertex(b, x, y+h, nil)}
		spans = append(spans, shape.Triangle(v1, b.shapeClip(), false)...)
		spans = append(spans, shape.Triangle(v2, b.shapeClip(), false)...)
	}
	b.commitSpans(sh, tint, spans)
}

// SimpleLine draws an unshaded line. Multicore-enabled buffers join the
// scheduler first since lines don't partition by scanline parity
// (spec.md §4.6).
func (b *Buffer) SimpleLine(c pcolor.Color, x0, y0, x1, y1 float64) {
	b.Line(nil, c, x0, y0, x1, y1)
}

// Line draws a line, optionally shaded.
func (b *Buffer) Line(sh *Shader, tint pcolor.Color, x0, y0, x1, y1 float64) {
	b.joinIfMulticore()
	p0 := b.toNative(x0, y0)
	p1 := b.toNative(x1, y1)
	pts := shape.Line(p0.X, p0.Y, p1.X, p1.Y, b.shapeClip())
	if len(pts) == 0 {
		b.errs.Clear()
		return
	}
	ctx := shader.Build(sh, tint.A())
	writer := shader.SelectWriter(sh, b.TypeInfo.Class == pixfmt.ClassPalette, tint.A())
	minX, minY, maxX, maxY := raster.Line(b.surface(), pts, tint, ctx, writer)
	if maxX > minX && maxY > minY {
		b.MarkDirtyRect(minX, minY, maxX-minX, maxY-minY)
	}
	b.errs.Clear()
}

func (b *Buffer) columnNorms() (c0x, c0y, c1x, c1y float64) {
	m := b.Stack.Top()
	return m.A, m.D, m.B, m.E
}

// SimpleArc fills an unshaded arc (or, with a0=0,a1=2pi, a full circle)
// sweeping [a0,a1] radians.
func (b *Buffer) SimpleArc(c pcolor.Color, x, y, r, a0, a1 float64) {
	b.Arc(nil, c, x, y, r, a0, a1)
}

// Arc fills an arc, optionally shaded with UVs bilinear over the unit
// circle (spec.md §4.6).
func (b *Buffer) Arc(sh *Shader, tint pcolor.Color, x, y, r, a0, a1 float64) {
	c0x, c0y, c1x, c1y := b.columnNorms()
	osr := shape.OnScreenRadius(r, c0x, c0y, c1x, c1y)
	tris := shape.ArcTriangles(x, y, r, a0, a1, osr, sh != nil)
	var spans []shape.Span
	for _, tri := range tris {
		nt := [3]shape.Vertex{
			vertex(b, tri[0].X, tri[0].Y, uvOf(tri[0], sh != nil)),
			vertex(b, tri[1].X, tri[1].Y, uvOf(tri[1], sh != nil)),
			vertex(b, tri[2].X, tri[2].Y, uvOf(tri[2], sh != nil)),
		}
		spans = append(spans, shape.Triangle(nt, b.shapeClip(), sh != nil)...)
	}
	b.commitSpans(sh, tint, spans)
}

func uvOf(v shape.Vertex, shaded bool) *UV {
	if !shaded {
		return nil
	}
	return &UV{U: v.U, V: v.V}
}

// SimpleCircle fills a full unshaded circle (spec.md §7: sweeps the full
// 0..2pi range).
func (b *Buffer) SimpleCircle(c pcolor.Color, x, y, r float64) {
	b.Arc(nil, c, x, y, r, 0, 2*math.Pi)
}

// HollowArc fills the ring between radius0 and radius1 across [a0,a1].
func (b *Buffer) HollowArc(sh *Shader, tint pcolor.Color, x, y, radius0, radius1, a0, a1 float64) {
	c0x, c0y, c1x, c1y := b.columnNorms()
	osr := shape.OnScreenRadius(math.Max(radius0, radius1), c0x, c0y, c1x, c1y)
	tris := shape.HollowArcTriangles(x, y, radius0, radius1, a0, a1, osr)
	var spans []shape.Span
	for _, tri := range tris {
		nt := [3]shape.Vertex{
			vertex(b, tri[0].X, tri[0].Y, nil), vertex(b, tri[1].X, tri[1].Y, nil), vertex(b, tri[2].X, tri[2].Y, nil),
		}
		spans = append(spans, shape.Triangle(nt, b.shapeClip(), sh != nil)...)
	}
	b.commitSpans(sh, tint, spans)
}

// BezierPoints evaluates a cubic Bezier in user space: n>0 requests the
// fixed-sample fast path with n segments, or n rounds of adaptive
// bifurcation when Config.HighQualityCurves is set; n<=0 requests
// adaptive bifurcation with -n rounds (spec.md §4.6).
func (b *Buffer) BezierPoints(x0, y0, x1, y1, x2, y2, x3, y3 float64, n int) []transform.Point {
	p0 := shape.Vertex{X: x0, Y: y0}
	p1 := shape.Vertex{X: x1, Y: y1}
	p2 := shape.Vertex{X: x2, Y: y2}
	p3 := shape.Vertex{X: x3, Y: y3}
	var verts []shape.Vertex
	switch {
	case n > 0 && b.Config.HighQualityCurves:
		verts = shape.CubicBezierAdaptive(p0, p1, p2, p3, n)
	case n > 0:
		verts = shape.CubicBezierFixedN(p0, p1, p2, p3, n)
	default:
		verts = shape.CubicBezierAdaptive(p0, p1, p2, p3, -n)
	}
	pts := make([]transform.Point, len(verts))
	for i, v := range verts {
		pts[i] = transform.Point{X: v.X, Y: v.Y}
	}
	return pts
}

// Bezier draws a cubic Bezier curve as a polyline of line segments.
func (b *Buffer) Bezier(sh *Shader, tint pcolor.Color, x0, y0, x1, y1, x2, y2, x3, y3 float64, n int) {
	pts := b.BezierPoints(x0, y0, x1, y1, x2, y2, x3, y3, n)
	for i := 0; i < len(pts)-1; i++ {
		b.Line(sh, tint, pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y)
	}
}

// PolygonOutline draws the outline of a polygon given as flat (x,y)
// pairs, restricted to the perimeter fraction [from,to].
func (b *Buffer) PolygonOutline(sh *Shader, tint pcolor.Color, closed bool, from, to float64, points []float64) {
	verts := make([]shape.Vertex, len(points)/2)
	for i := range verts {
		verts[i] = shape.Vertex{X: points[2*i], Y: points[2*i+1]}
	}
	segs := shape.PolygonOutlineFraction(verts, closed, from, to)
	for _, s := range segs {
		b.Line(sh, tint, s[0].X, s[0].Y, s[1].X, s[1].Y)
	}
}

// PolygonFilled ear-clips and fills a simple polygon given as flat (x,y)
// pairs. ok is false if the polygon is self-intersecting and could not
// be fully triangulated.
func (b *Buffer) PolygonFilled(sh *Shader, tint pcolor.Color, points []float64) (ok bool) {
	verts := make([]shape.Vertex, len(points)/2)
	for i := range verts {
		verts[i] = shape.Vertex{X: points[2*i], Y: points[2*i+1]}
	}
	tris, ok := shape.Triangulate(verts)
	var spans []shape.Span
	for _, tri := range tris {
		nt := [3]shape.Vertex{
			vertex(b, tri[0].X, tri[0].Y, nil), vertex(b, tri[1].X, tri[1].Y, nil), vertex(b, tri[2].X, tri[2].Y, nil),
		}
		spans = append(spans, shape.Triangle(nt, b.shapeClip(), sh != nil)...)
	}
	b.commitSpans(sh, tint, spans)
	return ok
}
