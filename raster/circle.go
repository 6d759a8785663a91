package raster

import (
	"iter"
	"slices"

	"github.com/gogpu/pixgeom"
)

// CircleSeq returns the midpoint circle ring around center.
//
// The center and radius are rounded to integers. One octant is walked with
// the decision variable p = 1 - r and each step is mirrored into all eight
// octants, so the sequence length is always a multiple of eight and pixels
// on the axes and diagonals repeat. A zero radius yields the center pixel;
// a negative radius yields nothing.
func CircleSeq(center pixgeom.Point, radius float64) iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		c := Round(center)
		r := round(radius)
		switch {
		case r < 0:
			return
		case r == 0:
			yield(c)
			return
		}

		x, y := 0, r
		p := 1 - r
		if !octants(c, x, y, yield) {
			return
		}
		for x < y {
			x++
			if p < 0 {
				p += 2*x + 1
			} else {
				y--
				p += 2*(x-y) + 1
			}
			if !octants(c, x, y, yield) {
				return
			}
		}
	}
}

// Circle returns the pixels of the midpoint circle around center.
func Circle(center pixgeom.Point, radius float64) []Pixel {
	return slices.Collect(CircleSeq(center, radius))
}

func octants(c Pixel, x, y int, yield func(Pixel) bool) bool {
	for _, px := range [8]Pixel{
		{X: c.X + x, Y: c.Y + y},
		{X: c.X - x, Y: c.Y + y},
		{X: c.X + x, Y: c.Y - y},
		{X: c.X - x, Y: c.Y - y},
		{X: c.X + y, Y: c.Y + x},
		{X: c.X - y, Y: c.Y + x},
		{X: c.X + y, Y: c.Y - x},
		{X: c.X - y, Y: c.Y - x},
	} {
		if !yield(px) {
			return false
		}
	}
	return true
}
