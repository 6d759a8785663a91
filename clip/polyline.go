package clip

import (
	"iter"

	"github.com/gogpu/pixgeom"
	"github.com/gogpu/pixgeom/raster"
)

// Polyline clips every edge of the vertex chain pts independently.
// When closed is set the edge from the last vertex back to the first is
// included. Rejected edges are omitted; surviving fragments are not
// reconnected into a new boundary.
func Polyline(pts []pixgeom.Point, closed bool, r Rect, alg Algorithm) []Segment {
	var out []Segment
	for _, e := range Edges(pts, closed) {
		if seg, ok := alg.Segment(e.P0, e.P1, r); ok {
			out = append(out, seg)
		}
	}
	return out
}

// Edges returns the consecutive vertex pairs of pts. A closed chain with at
// least three vertices gains the edge from the last vertex to the first.
func Edges(pts []pixgeom.Point, closed bool) []Segment {
	if len(pts) < 2 {
		return nil
	}
	edges := make([]Segment, 0, len(pts))
	for i := 0; i+1 < len(pts); i++ {
		edges = append(edges, Segment{P0: pts[i], P1: pts[i+1]})
	}
	if closed && len(pts) > 2 {
		edges = append(edges, Segment{P0: pts[len(pts)-1], P1: pts[0]})
	}
	return edges
}

// Pixels keeps only the pixels of seq that fall inside r.
//
// Circles are clipped this way: each rasterized ring pixel is tested against
// the window, which is exact at pixel resolution and needs no conversion of
// the ring into a polygon.
func Pixels(seq iter.Seq[raster.Pixel], r Rect) iter.Seq[raster.Pixel] {
	return func(yield func(raster.Pixel) bool) {
		for px := range seq {
			if !r.Contains(pixgeom.Point{X: float64(px.X), Y: float64(px.Y)}) {
				continue
			}
			if !yield(px) {
				return
			}
		}
	}
}
