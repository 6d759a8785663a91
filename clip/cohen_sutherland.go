package clip

import "github.com/gogpu/pixgeom"

// Outcode classifies a point against the nine regions around a window.
type Outcode uint8

// Outcode bits. Top is the side with smaller y (screen convention).
const (
	Inside Outcode = 0
	Left   Outcode = 1
	Right  Outcode = 2
	Bottom Outcode = 4
	Top    Outcode = 8
)

// Outcode returns the region code of p relative to r.
func (r Rect) Outcode(p pixgeom.Point) Outcode {
	code := Inside
	if p.X < r.XMin {
		code |= Left
	} else if p.X > r.XMax {
		code |= Right
	}
	if p.Y < r.YMin {
		code |= Top
	} else if p.Y > r.YMax {
		code |= Bottom
	}
	return code
}

// snapTol is how far an interpolated boundary crossing may fall outside
// the window edge and still count as on it.
const snapTol = 1e-9

// CohenSutherland clips p0-p1 against r using region codes.
//
// Segments with both codes zero are accepted as is; segments whose codes
// share a bit are rejected. Otherwise the outside endpoint is moved onto the
// window boundary, testing sides in the order top, bottom, right, left, and
// the classification repeats. Every crossing is interpolated on the input
// segment, not on a previously clipped one, so a segment touching a window
// corner lands on that corner.
func CohenSutherland(p0, p1 pixgeom.Point, r Rect) (Segment, bool) {
	a := p0
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	code0 := r.Outcode(p0)
	code1 := r.Outcode(p1)

	for {
		switch {
		case code0|code1 == Inside:
			return Segment{P0: p0, P1: p1}, true
		case code0&code1 != 0:
			return Segment{}, false
		}

		out := code0
		if out == Inside {
			out = code1
		}

		var p pixgeom.Point
		switch {
		case out&Top != 0:
			p = pixgeom.Point{X: r.snapX(a.X + dx*(r.YMin-a.Y)/dy), Y: r.YMin}
		case out&Bottom != 0:
			p = pixgeom.Point{X: r.snapX(a.X + dx*(r.YMax-a.Y)/dy), Y: r.YMax}
		case out&Right != 0:
			p = pixgeom.Point{X: r.XMax, Y: r.snapY(a.Y + dy*(r.XMax-a.X)/dx)}
		default:
			p = pixgeom.Point{X: r.XMin, Y: r.snapY(a.Y + dy*(r.XMin-a.X)/dx)}
		}

		if out == code0 {
			p0, code0 = p, r.Outcode(p)
		} else {
			p1, code1 = p, r.Outcode(p)
		}
	}
}

func (r Rect) snapX(x float64) float64 {
	return snap(x, r.XMin, r.XMax)
}

func (r Rect) snapY(y float64) float64 {
	return snap(y, r.YMin, r.YMax)
}

// snap pulls v onto [lo, hi] when it misses the range by rounding error only.
func snap(v, lo, hi float64) float64 {
	switch {
	case v < lo && lo-v <= snapTol:
		return lo
	case v > hi && v-hi <= snapTol:
		return hi
	}
	return v
}
