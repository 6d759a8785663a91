package raster

import (
	"testing"

	"github.com/gogpu/pixgeom"
)

func TestCircle_Symmetry(t *testing.T) {
	center := pixgeom.Pt(20, -7)
	c := Round(center)
	for r := 1; r <= 40; r++ {
		px := Circle(center, float64(r))
		if len(px) == 0 || len(px)%8 != 0 {
			t.Fatalf("r=%d: len = %d, want a positive multiple of 8", r, len(px))
		}
		set := pixelSet(px)
		for p := range set {
			x, y := p.X-c.X, p.Y-c.Y
			for _, m := range [8][2]int{
				{x, y}, {-x, y}, {x, -y}, {-x, -y},
				{y, x}, {-y, x}, {y, -x}, {-y, -x},
			} {
				q := Pixel{X: c.X + m[0], Y: c.Y + m[1]}
				if _, ok := set[q]; !ok {
					t.Fatalf("r=%d: %v present but mirror %v missing", r, p, q)
				}
			}
		}
		for _, axis := range []Pixel{{X: c.X + r, Y: c.Y}, {X: c.X - r, Y: c.Y}, {X: c.X, Y: c.Y + r}, {X: c.X, Y: c.Y - r}} {
			if _, ok := set[axis]; !ok {
				t.Fatalf("r=%d: axis pixel %v missing", r, axis)
			}
		}
	}
}

func TestCircle_NoGaps(t *testing.T) {
	for r := 1; r <= 30; r++ {
		set := pixelSet(Circle(pixgeom.Pt(0, 0), float64(r)))
		for p := range set {
			var neighbours int
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if _, ok := set[Pixel{X: p.X + dx, Y: p.Y + dy}]; ok {
						neighbours++
					}
				}
			}
			if r > 1 && neighbours < 2 {
				t.Fatalf("r=%d: pixel %v has %d neighbours, ring is broken", r, p, neighbours)
			}
		}
	}
}

func TestCircle_RadiusFive(t *testing.T) {
	set := pixelSet(Circle(pixgeom.Pt(0, 0), 5))
	// First octant of the midpoint walk for r=5: (0,5) (1,5) (2,5) (3,4) (4,3).
	for _, p := range []Pixel{{X: 0, Y: 5}, {X: 1, Y: 5}, {X: 2, Y: 5}, {X: 3, Y: 4}, {X: 4, Y: 3}, {X: 5, Y: 0}, {X: -3, Y: -4}} {
		if _, ok := set[p]; !ok {
			t.Errorf("pixel %v missing from r=5 ring", p)
		}
	}
	if len(set) != 28 {
		t.Errorf("r=5 ring has %d distinct pixels, want 28", len(set))
	}
}

func TestCircle_Degenerate(t *testing.T) {
	if got := Circle(pixgeom.Pt(3, 4), 0); len(got) != 1 || got[0] != (Pixel{X: 3, Y: 4}) {
		t.Errorf("zero radius = %v, want [(3,4)]", got)
	}
	if got := Circle(pixgeom.Pt(3, 4), 0.4); len(got) != 1 {
		t.Errorf("sub-pixel radius = %v, want single pixel", got)
	}
	if got := Circle(pixgeom.Pt(3, 4), -2); len(got) != 0 {
		t.Errorf("negative radius = %v, want empty", got)
	}
}
