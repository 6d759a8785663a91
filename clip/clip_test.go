package clip

import (
	"image"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/gogpu/pixgeom"
	"github.com/gogpu/pixgeom/raster"
)

const tolerance = 1e-9

var algorithms = []Algorithm{AlgCohenSutherland, AlgLiangBarsky}

func assertPointNear(t *testing.T, got, want pixgeom.Point) {
	t.Helper()
	if !got.Near(want, tolerance) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSegment_Example(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	for _, alg := range algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			seg, ok := alg.Segment(pixgeom.Pt(-5, 5), pixgeom.Pt(15, 5), r)
			if !ok {
				t.Fatal("segment rejected, want (0,5)-(10,5)")
			}
			assertPointNear(t, seg.P0, pixgeom.Pt(0, 5))
			assertPointNear(t, seg.P1, pixgeom.Pt(10, 5))
		})
	}
}

func TestSegment_FullyInside(t *testing.T) {
	r := NewRect(0, 0, 100, 100)
	p0, p1 := pixgeom.Pt(10, 20), pixgeom.Pt(90, 80)
	for _, alg := range algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			seg, ok := alg.Segment(p0, p1, r)
			if !ok {
				t.Fatal("inside segment rejected")
			}
			if seg.P0 != p0 || seg.P1 != p1 {
				t.Errorf("inside segment changed to %+v", seg)
			}
		})
	}
}

func TestSegment_FullyOutside(t *testing.T) {
	r := NewRect(0, 0, 100, 100)
	tests := []struct {
		name   string
		p0, p1 pixgeom.Point
	}{
		{"left", pixgeom.Pt(-50, 50), pixgeom.Pt(-10, 50)},
		{"right", pixgeom.Pt(110, 50), pixgeom.Pt(150, 70)},
		{"top", pixgeom.Pt(50, -50), pixgeom.Pt(20, -10)},
		{"bottom", pixgeom.Pt(50, 110), pixgeom.Pt(50, 150)},
		{"top-left corner region", pixgeom.Pt(-10, -10), pixgeom.Pt(-5, -5)},
		{"crosses corner regions", pixgeom.Pt(-20, 10), pixgeom.Pt(10, -20)},
		{"outside point", pixgeom.Pt(-1, -1), pixgeom.Pt(-1, -1)},
	}
	for _, alg := range algorithms {
		for _, tt := range tests {
			t.Run(alg.String()+"/"+tt.name, func(t *testing.T) {
				if seg, ok := alg.Segment(tt.p0, tt.p1, r); ok {
					t.Errorf("expected reject, got %+v", seg)
				}
			})
		}
	}
}

func TestSegment_Crossing(t *testing.T) {
	r := NewRect(0, 0, 100, 100)
	tests := []struct {
		name         string
		p0, p1       pixgeom.Point
		want0, want1 pixgeom.Point
	}{
		{"from left", pixgeom.Pt(-50, 50), pixgeom.Pt(50, 50), pixgeom.Pt(0, 50), pixgeom.Pt(50, 50)},
		{"to right", pixgeom.Pt(50, 50), pixgeom.Pt(150, 50), pixgeom.Pt(50, 50), pixgeom.Pt(100, 50)},
		{"from top", pixgeom.Pt(50, -50), pixgeom.Pt(50, 50), pixgeom.Pt(50, 0), pixgeom.Pt(50, 50)},
		{"to bottom", pixgeom.Pt(50, 50), pixgeom.Pt(50, 150), pixgeom.Pt(50, 50), pixgeom.Pt(50, 100)},
		{"diagonal through", pixgeom.Pt(-50, -50), pixgeom.Pt(150, 150), pixgeom.Pt(0, 0), pixgeom.Pt(100, 100)},
		{"clips two sides", pixgeom.Pt(-10, 60), pixgeom.Pt(60, -10), pixgeom.Pt(0, 50), pixgeom.Pt(50, 0)},
		{"corner touch", pixgeom.Pt(-1, 1), pixgeom.Pt(1, -1), pixgeom.Pt(0, 0), pixgeom.Pt(0, 0)},
		{"along top edge", pixgeom.Pt(-5, 0), pixgeom.Pt(105, 0), pixgeom.Pt(0, 0), pixgeom.Pt(100, 0)},
	}
	for _, alg := range algorithms {
		for _, tt := range tests {
			t.Run(alg.String()+"/"+tt.name, func(t *testing.T) {
				seg, ok := alg.Segment(tt.p0, tt.p1, r)
				if !ok {
					t.Fatal("segment rejected")
				}
				assertPointNear(t, seg.P0, tt.want0)
				assertPointNear(t, seg.P1, tt.want1)
			})
		}
	}
}

func TestCohenSutherlandAgreesWithLiangBarsky(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1337))
	coord := func() float64 { return rng.Float64()*200 - 50 }

	var accepted, rejected int
	for i := 0; i < 20000; i++ {
		r := RectFromCorners(
			pixgeom.Pt(rng.Float64()*100, rng.Float64()*100),
			pixgeom.Pt(rng.Float64()*100, rng.Float64()*100),
		)
		p0, p1 := pixgeom.Pt(coord(), coord()), pixgeom.Pt(coord(), coord())

		cs, csOK := CohenSutherland(p0, p1, r)
		lb, lbOK := LiangBarsky(p0, p1, r)
		if csOK != lbOK {
			t.Fatalf("%v-%v in %+v: cohen-sutherland ok=%v, liang-barsky ok=%v", p0, p1, r, csOK, lbOK)
		}
		if !csOK {
			rejected++
			continue
		}
		accepted++
		if !cs.P0.Near(lb.P0, tolerance) || !cs.P1.Near(lb.P1, tolerance) {
			t.Fatalf("%v-%v in %+v: cohen-sutherland %+v, liang-barsky %+v", p0, p1, r, cs, lb)
		}
	}
	if accepted == 0 || rejected == 0 {
		t.Errorf("sample not mixed: accepted=%d rejected=%d", accepted, rejected)
	}
}

func TestCornerTouch(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 pixgeom.Point
		r      Rect
		want   pixgeom.Point
	}{
		{"right-top corner", pixgeom.Pt(13, 11), pixgeom.Pt(7, -3), NewRect(0, 4, 10, 5), pixgeom.Pt(10, 4)},
		{"left-top corner", pixgeom.Pt(2, 12), pixgeom.Pt(7, -3), NewRect(4, 6, 8, 8), pixgeom.Pt(4, 6)},
	}
	for _, tt := range tests {
		for _, alg := range algorithms {
			t.Run(tt.name+"/"+alg.String(), func(t *testing.T) {
				seg, ok := alg.Segment(tt.p0, tt.p1, tt.r)
				if !ok {
					t.Fatalf("%v-%v in %+v rejected, want the corner %v", tt.p0, tt.p1, tt.r, tt.want)
				}
				assertPointNear(t, seg.P0, tt.want)
				assertPointNear(t, seg.P1, tt.want)
			})
		}
	}
}

func TestCohenSutherlandAgreesWithLiangBarsky_Integer(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	coord := func() float64 { return float64(rng.IntN(31) - 5) }

	for i := 0; i < 200000; i++ {
		r := RectFromCorners(
			pixgeom.Pt(float64(rng.IntN(21)), float64(rng.IntN(21))),
			pixgeom.Pt(float64(rng.IntN(21)), float64(rng.IntN(21))),
		)
		p0, p1 := pixgeom.Pt(coord(), coord()), pixgeom.Pt(coord(), coord())

		cs, csOK := CohenSutherland(p0, p1, r)
		lb, lbOK := LiangBarsky(p0, p1, r)
		if csOK != lbOK {
			t.Fatalf("%v-%v in %+v: cohen-sutherland ok=%v, liang-barsky ok=%v", p0, p1, r, csOK, lbOK)
		}
		if csOK && (!cs.P0.Near(lb.P0, tolerance) || !cs.P1.Near(lb.P1, tolerance)) {
			t.Fatalf("%v-%v in %+v: cohen-sutherland %+v, liang-barsky %+v", p0, p1, r, cs, lb)
		}
	}
}

func TestOutcode(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	tests := []struct {
		p    pixgeom.Point
		want Outcode
	}{
		{pixgeom.Pt(5, 5), Inside},
		{pixgeom.Pt(0, 10), Inside},
		{pixgeom.Pt(-1, 5), Left},
		{pixgeom.Pt(11, 5), Right},
		{pixgeom.Pt(5, -1), Top},
		{pixgeom.Pt(5, 11), Bottom},
		{pixgeom.Pt(-1, -1), Left | Top},
		{pixgeom.Pt(11, 11), Right | Bottom},
	}
	for _, tt := range tests {
		if got := r.Outcode(tt.p); got != tt.want {
			t.Errorf("Outcode(%v) = %04b, want %04b", tt.p, got, tt.want)
		}
	}
}

func TestRectFromCorners(t *testing.T) {
	r := RectFromCorners(pixgeom.Pt(8, 1), pixgeom.Pt(2, 6))
	if want := NewRect(2, 1, 8, 6); r != want {
		t.Errorf("RectFromCorners() = %+v, want %+v", r, want)
	}
	if r.IsEmpty() {
		t.Error("IsEmpty() = true")
	}
	if !NewRect(3, 3, 3, 9).IsEmpty() {
		t.Error("zero-width rect not empty")
	}
	if got, want := NewRect(0.5, 0, 3.5, 2).Pixels(), image.Rect(1, 0, 4, 3); got != want {
		t.Errorf("Pixels() = %v, want %v", got, want)
	}
}

func TestPolyline(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	square := []pixgeom.Point{pixgeom.Pt(5, 5), pixgeom.Pt(15, 5), pixgeom.Pt(15, 15), pixgeom.Pt(5, 15)}

	for _, alg := range algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			open := Polyline(square, false, r, alg)
			// (5,5)-(15,5) survives clipped; the other two edges are outside.
			if len(open) != 1 {
				t.Fatalf("open chain: %d segments, want 1 (%+v)", len(open), open)
			}
			assertPointNear(t, open[0].P1, pixgeom.Pt(10, 5))

			closed := Polyline(square, true, r, alg)
			if len(closed) != 2 {
				t.Fatalf("closed chain: %d segments, want 2 (%+v)", len(closed), closed)
			}
			assertPointNear(t, closed[1].P0, pixgeom.Pt(5, 10))
			assertPointNear(t, closed[1].P1, pixgeom.Pt(5, 5))
		})
	}
}

func TestEdges(t *testing.T) {
	tri := []pixgeom.Point{pixgeom.Pt(0, 0), pixgeom.Pt(1, 0), pixgeom.Pt(0, 1)}
	if n := len(Edges(tri, false)); n != 2 {
		t.Errorf("open triangle edges = %d, want 2", n)
	}
	if n := len(Edges(tri, true)); n != 3 {
		t.Errorf("closed triangle edges = %d, want 3", n)
	}
	if n := len(Edges(tri[:2], true)); n != 1 {
		t.Errorf("closed two-vertex chain edges = %d, want 1", n)
	}
	if Edges(tri[:1], true) != nil {
		t.Error("single vertex produced edges")
	}
}

func TestPixels(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	ring := raster.CircleSeq(pixgeom.Pt(10, 10), 4)
	got := slices.Collect(Pixels(ring, r))
	if len(got) == 0 {
		t.Fatal("quarter ring fully clipped")
	}
	for _, px := range got {
		if px.X > 10 || px.Y > 10 || px.X < 0 || px.Y < 0 {
			t.Errorf("pixel %v outside window", px)
		}
	}
	if !slices.Contains(got, raster.Pixel{X: 6, Y: 10}) || !slices.Contains(got, raster.Pixel{X: 10, Y: 6}) {
		t.Errorf("axis pixels on the window edge missing: %v", got)
	}
}

func TestParseAlgorithm(t *testing.T) {
	for in, want := range map[string]Algorithm{
		"cohen-sutherland": AlgCohenSutherland,
		"CS":               AlgCohenSutherland,
		"liang":            AlgLiangBarsky,
		"Liang-Barsky":     AlgLiangBarsky,
	} {
		got, err := ParseAlgorithm(in)
		if err != nil || got != want {
			t.Errorf("ParseAlgorithm(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseAlgorithm("sutherland-hodgman"); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}
