package scene

import (
	"slices"
	"testing"

	"github.com/gogpu/pixgeom"
	"github.com/gogpu/pixgeom/clip"
)

// sharedVertexScene builds a line A-B and a triangle A-C-D sharing A,
// plus a free point F.
func sharedVertexScene(t *testing.T) (s *Scene, a, b, c, d, f PointID) {
	t.Helper()
	s = New()
	a = s.AddPoint(pixgeom.Pt(0, 0))
	b = s.AddPoint(pixgeom.Pt(10, 0))
	c = s.AddPoint(pixgeom.Pt(0, 10))
	d = s.AddPoint(pixgeom.Pt(-10, 0))
	f, _ = s.AddFreePoint(pixgeom.Pt(50, 50))
	if _, err := s.AddLine(a, b); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddPolygon([]PointID{a, c, d}, true); err != nil {
		t.Fatal(err)
	}
	return s, a, b, c, d, f
}

func TestEligible_GroupIntegrity(t *testing.T) {
	s, a, b, c, d, f := sharedVertexScene(t)

	tests := []struct {
		name     string
		selected PointSet
		want     []PointID
	}{
		{"only shared vertex", NewPointSet(a), nil},
		{"line endpoints", NewPointSet(a, b), []PointID{a, b}},
		{"half of the line", NewPointSet(b), nil},
		{"whole polygon", NewPointSet(a, c, d), []PointID{a, c, d}},
		{"polygon minus one vertex", NewPointSet(a, c), nil},
		{"everything", NewPointSet(a, b, c, d, f), []PointID{a, b, c, d, f}},
		{"free point", NewPointSet(f), []PointID{f}},
		{"free point and partial line", NewPointSet(f, b), []PointID{f}},
		{"empty", NewPointSet(), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Eligible(tt.selected).Sorted()
			if !slices.Equal(got, tt.want) && !(len(got) == 0 && len(tt.want) == 0) {
				t.Errorf("Eligible(%v) = %v, want %v", tt.selected.Sorted(), got, tt.want)
			}
		})
	}
}

func TestEligible_OrphanPoint(t *testing.T) {
	s := New()
	orphan := s.AddPoint(pixgeom.Pt(1, 1))
	got := s.Eligible(NewPointSet(orphan))
	if !got.Has(orphan) {
		t.Error("point owned by no entity should be eligible")
	}
}

func TestEligible_CircleNeedsBothPoints(t *testing.T) {
	s := New()
	center := s.AddPoint(pixgeom.Pt(5, 5))
	rim := s.AddPoint(pixgeom.Pt(8, 5))
	if _, err := s.AddCircle(center, rim); err != nil {
		t.Fatal(err)
	}
	if got := s.Eligible(NewPointSet(center)); len(got) != 0 {
		t.Errorf("circle center alone eligible: %v", got.Sorted())
	}
	if got := s.Eligible(NewPointSet(center, rim)); len(got) != 2 {
		t.Errorf("full circle eligible = %v, want both points", got.Sorted())
	}
}

func TestSelectRect(t *testing.T) {
	s, a, b, c, _, _ := sharedVertexScene(t)

	got := s.SelectRect(clip.RectFromCorners(pixgeom.Pt(10, 10), pixgeom.Pt(0, 0))).Sorted()
	want := []PointID{a, b, c}
	if !slices.Equal(got, want) {
		t.Errorf("SelectRect() = %v, want %v", got, want)
	}

	eligible := s.Eligible(NewPointSet(got...)).Sorted()
	if !slices.Equal(eligible, []PointID{a, b}) {
		t.Errorf("marquee eligible = %v, want line endpoints %v", eligible, []PointID{a, b})
	}
}

func TestCentroid(t *testing.T) {
	s, a, b, c, _, _ := sharedVertexScene(t)
	got := s.Centroid(NewPointSet(a, b))
	if got != pixgeom.Pt(5, 0) {
		t.Errorf("Centroid(a,b) = %v, want (5,0)", got)
	}
	got = s.Centroid(NewPointSet(a, b, c, PointID(1000)))
	if !got.Near(pixgeom.Pt(10.0/3, 10.0/3), 1e-12) {
		t.Errorf("Centroid(a,b,c,unknown) = %v", got)
	}
	if got := s.Centroid(nil); got != (pixgeom.Point{}) {
		t.Errorf("Centroid(nil) = %v, want origin", got)
	}
}

func TestTouching(t *testing.T) {
	s, a, _, _, _, f := sharedVertexScene(t)
	got := s.Touching(NewPointSet(a))
	if !slices.Equal(got, []EntityID{1, 2}) {
		t.Errorf("Touching(a) = %v, want line and polygon", got)
	}
	got = s.Touching(NewPointSet(f))
	if !slices.Equal(got, []EntityID{0}) {
		t.Errorf("Touching(f) = %v, want free point entity", got)
	}
}

func TestSelection(t *testing.T) {
	s, a, b, _, _, _ := sharedVertexScene(t)

	var sel Selection
	sel.Add(a)
	if sel.Eligible(s).Has(a) {
		t.Error("shared vertex eligible with partial line")
	}
	sel.Toggle(b)
	if !sel.Has(b) || sel.Len() != 2 {
		t.Errorf("after toggle: len=%d has(b)=%v", sel.Len(), sel.Has(b))
	}
	if got := sel.Eligible(s).Sorted(); !slices.Equal(got, []PointID{a, b}) {
		t.Errorf("Eligible() = %v, want %v", got, []PointID{a, b})
	}

	snapshot := sel.Set()
	sel.Toggle(b)
	if sel.Has(b) || !snapshot.Has(b) {
		t.Error("Set() should return an independent copy")
	}

	sel.Remove(a)
	if sel.Len() != 0 {
		t.Errorf("Len() = %d after removing everything", sel.Len())
	}

	sel.Replace(NewPointSet(a, b))
	sel.Clear()
	if sel.Len() != 0 {
		t.Errorf("Len() = %d after Clear", sel.Len())
	}
}
