package raster

import (
	"iter"
	"math"
	"slices"

	"github.com/gogpu/pixgeom"
)

// DDASeq returns the digital differential analyzer walk from p0 to p1.
//
// The walk takes steps = round(max(|dx|, |dy|)) increments, raised to the
// pixel distance between the rounded endpoints when fractional endpoints
// span more pixels than that, and emits steps+1 rounded samples. No sample
// advances more than one pixel on either axis, so the path has no gaps;
// consecutive samples may repeat a pixel. When both endpoints round to the
// same pixel the walk yields that single pixel.
//
// Samples are measured from the lexicographically smaller endpoint, which
// makes the pixel set of (p0, p1) identical to that of (p1, p0). The
// sequence is still emitted from p0 towards p1.
func DDASeq(p0, p1 pixgeom.Point) iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		a, b := p0, p1
		reversed := b.X < a.X || (b.X == a.X && b.Y < a.Y)
		if reversed {
			a, b = b, a
		}
		dx, dy := b.X-a.X, b.Y-a.Y
		steps := max(
			round(math.Max(math.Abs(dx), math.Abs(dy))),
			abs(round(b.X)-round(a.X)),
			abs(round(b.Y)-round(a.Y)),
		)
		if steps == 0 {
			yield(Round(p0))
			return
		}
		incX := dx / float64(steps)
		incY := dy / float64(steps)
		for i := 0; i <= steps; i++ {
			k := i
			if reversed {
				k = steps - i
			}
			px := Pixel{
				X: round(a.X + float64(k)*incX),
				Y: round(a.Y + float64(k)*incY),
			}
			if !yield(px) {
				return
			}
		}
	}
}

// DDA returns the pixels of the DDA walk from p0 to p1.
func DDA(p0, p1 pixgeom.Point) []Pixel {
	return slices.Collect(DDASeq(p0, p1))
}

// BresenhamSeq returns the Bresenham walk between the rounded endpoints.
//
// Steep segments are walked along y and every segment is walked in
// increasing order of its primary axis, so the sequence of (p1, p0) is the
// same as that of (p0, p1).
func BresenhamSeq(p0, p1 pixgeom.Point) iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		x0, y0 := round(p0.X), round(p0.Y)
		x1, y1 := round(p1.X), round(p1.Y)

		steep := abs(y1-y0) > abs(x1-x0)
		if steep {
			x0, y0 = y0, x0
			x1, y1 = y1, x1
		}
		if x0 > x1 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
		}

		dx := x1 - x0
		dy := abs(y1 - y0)
		err := dx / 2
		ystep := -1
		if y0 < y1 {
			ystep = 1
		}

		y := y0
		for x := x0; x <= x1; x++ {
			px := Pixel{X: x, Y: y}
			if steep {
				px = Pixel{X: y, Y: x}
			}
			if !yield(px) {
				return
			}
			err -= dy
			if err < 0 {
				y += ystep
				err += dx
			}
		}
	}
}

// Bresenham returns the pixels of the Bresenham walk between p0 and p1.
func Bresenham(p0, p1 pixgeom.Point) []Pixel {
	return slices.Collect(BresenhamSeq(p0, p1))
}
