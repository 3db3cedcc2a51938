package shape

import "math"

// IntPoint is an integer pixel coordinate a line walk visits.
type IntPoint struct{ X, Y int }

const (
	codeInside = 0
	codeLeft   = 1
	codeRight  = 2
	codeTop    = 4
	codeBottom = 8
)

func regionCode(x, y, xmin, xmax, ymin, ymax float64) int {
	code := codeInside
	switch {
	case x < xmin:
		code |= codeLeft
	case x > xmax:
		code |= codeRight
	}
	switch {
	case y < ymin:
		code |= codeTop
	case y > ymax:
		code |= codeBottom
	}
	return code
}

// cohenSutherlandClip clips the segment (x0,y0)-(x1,y1) against the
// rectangle [xmin,xmax]x[ymin,ymax], analytically adjusting endpoints
// (spec.md §4.6). ok is false if the segment lies entirely outside.
func cohenSutherlandClip(x0, y0, x1, y1, xmin, xmax, ymin, ymax float64) (ok bool, ox0, oy0, ox1, oy1 float64) {
	c0 := regionCode(x0, y0, xmin, xmax, ymin, ymax)
	c1 := regionCode(x1, y1, xmin, xmax, ymin, ymax)
	for {
		if c0 == codeInside && c1 == codeInside {
			return true, x0, y0, x1, y1
		}
		if c0&c1 != 0 {
			return false, 0, 0, 0, 0
		}
		var x, y float64
		out := c0
		if out == codeInside {
			out = c1
		}
		switch {
		case out&codeTop != 0:
			x = x0 + (x1-x0)*(ymin-y0)/(y1-y0)
			y = ymin
		case out&codeBottom != 0:
			x = x0 + (x1-x0)*(ymax-y0)/(y1-y0)
			y = ymax
		case out&codeRight != 0:
			y = y0 + (y1-y0)*(xmax-x0)/(x1-x0)
			x = xmax
		case out&codeLeft != 0:
			y = y0 + (y1-y0)*(xmin-x0)/(x1-x0)
			x = xmin
		}
		if out == c0 {
			x0, y0 = x, y
			c0 = regionCode(x0, y0, xmin, xmax, ymin, ymax)
		} else {
			x1, y1 = x, y
			c1 = regionCode(x1, y1, xmin, xmax, ymin, ymax)
		}
	}
}

// Line clips (x0,y0)-(x1,y1) to clip and walks it in ceil(max(|dx|,|dy|))
// equal steps along the major axis, returning the integer pixel
// positions to write (spec.md §4.6). Lines do not partition by scanline
// parity — callers in multicore mode must join before drawing one.
func Line(x0, y0, x1, y1 float64, clip ClipRect) []IntPoint {
	xmin, xmax := float64(clip.X0), float64(clip.X1-1)
	ymin, ymax := float64(clip.Y0), float64(clip.Y1-1)
	if xmax < xmin || ymax < ymin {
		return nil
	}
	ok, cx0, cy0, cx1, cy1 := cohenSutherlandClip(x0, y0, x1, y1, xmin, xmax, ymin, ymax)
	if !ok {
		return nil
	}
	dx, dy := cx1-cx0, cy1-cy0
	n := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if n == 0 {
		return []IntPoint{{X: int(math.Round(cx0)), Y: int(math.Round(cy0))}}
	}
	pts := make([]IntPoint, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		pts = append(pts, IntPoint{
			X: int(math.Round(cx0 + dx*t)),
			Y: int(math.Round(cy0 + dy*t)),
		})
	}
	return pts
}
