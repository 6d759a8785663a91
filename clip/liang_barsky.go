package clip

import "github.com/gogpu/pixgeom"

// LiangBarsky clips p0-p1 against r using the parametric form
// p0 + u*(p1-p0), u in [0, 1].
//
// Each window side contributes a pair (p, q). A side the segment runs
// parallel to (p == 0) rejects it when it lies outside (q < 0); otherwise
// u = q/p tightens the entering bound u1 (p < 0) or the leaving bound
// u2 (p > 0). The segment is rejected as soon as u1 > u2.
func LiangBarsky(p0, p1 pixgeom.Point, r Rect) (Segment, bool) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{p0.X - r.XMin, r.XMax - p0.X, p0.Y - r.YMin, r.YMax - p0.Y}

	u1, u2 := 0.0, 1.0
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return Segment{}, false
			}
			continue
		}
		u := q[i] / p[i]
		if p[i] < 0 {
			if u > u1 {
				u1 = u
			}
		} else if u < u2 {
			u2 = u
		}
		if u1 > u2 {
			return Segment{}, false
		}
	}

	return Segment{
		P0: pixgeom.Point{X: p0.X + u1*dx, Y: p0.Y + u1*dy},
		P1: pixgeom.Point{X: p0.X + u2*dx, Y: p0.Y + u2*dy},
	}, true
}
