package scene

import (
	"maps"
	"slices"

	"github.com/gogpu/pixgeom"
	"github.com/gogpu/pixgeom/clip"
)

// PointSet is a set of point identities.
type PointSet map[PointID]struct{}

// NewPointSet returns a set holding ids.
func NewPointSet(ids ...PointID) PointSet {
	s := make(PointSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set. A nil set is empty.
func (s PointSet) Has(id PointID) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id.
func (s PointSet) Add(id PointID) {
	s[id] = struct{}{}
}

// Sorted returns the members in ascending order.
func (s PointSet) Sorted() []PointID {
	return slices.Sorted(maps.Keys(s))
}

// Eligible applies the group-completeness rule.
//
// A composite entity contributes its points only when every one of them is
// selected. A selected point that belongs to no composite entity is always
// eligible. Any other selected point is left out, so a partially selected
// line or polygon is never partially moved.
func Eligible(selected PointSet, entities []Entity) PointSet {
	out := make(PointSet)
	owned := make(PointSet)
	for _, e := range entities {
		if !e.Composite() {
			continue
		}
		for _, id := range e.Points {
			owned.Add(id)
		}
		if e.Complete(selected) {
			for _, id := range e.Points {
				out.Add(id)
			}
		}
	}
	for id := range selected {
		if !owned.Has(id) {
			out.Add(id)
		}
	}
	return out
}

// SelectRect returns every arena point p with
// xmin <= p.X <= xmax and ymin <= p.Y <= ymax.
func (s *Scene) SelectRect(r clip.Rect) PointSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(PointSet)
	for i, p := range s.points {
		if r.Contains(p) {
			out.Add(PointID(i))
		}
	}
	return out
}

// Eligible resolves selected against the scene's entities.
func (s *Scene) Eligible(selected PointSet) PointSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Eligible(selected, s.entities)
}

// Centroid returns the mean position of ids, the default pivot of a
// transform commit. Unknown IDs are ignored; an empty set yields the origin.
func (s *Scene) Centroid(ids PointSet) pixgeom.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.centroidLocked(ids)
}

func (s *Scene) centroidLocked(ids PointSet) pixgeom.Point {
	pts := make([]pixgeom.Point, 0, len(ids))
	for _, id := range ids.Sorted() {
		if s.validPoint(id) {
			pts = append(pts, s.points[id])
		}
	}
	return pixgeom.Centroid(pts)
}

// Touching returns the entities with at least one point in selected.
func (s *Scene) Touching(selected PointSet) []EntityID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []EntityID
	for i, e := range s.entities {
		if e.Touches(selected) {
			out = append(out, EntityID(i))
		}
	}
	return out
}

// Selection is the mutable set of selected points of an interactive
// session. The transformable subset is derived on demand.
type Selection struct {
	set PointSet
}

// Add selects ids.
func (sel *Selection) Add(ids ...PointID) {
	if sel.set == nil {
		sel.set = make(PointSet)
	}
	for _, id := range ids {
		sel.set.Add(id)
	}
}

// Remove deselects ids.
func (sel *Selection) Remove(ids ...PointID) {
	for _, id := range ids {
		delete(sel.set, id)
	}
}

// Toggle flips the selection state of id.
func (sel *Selection) Toggle(id PointID) {
	if sel.set.Has(id) {
		delete(sel.set, id)
		return
	}
	sel.Add(id)
}

// Replace discards the current selection and selects the members of set.
func (sel *Selection) Replace(set PointSet) {
	sel.set = maps.Clone(set)
}

// Clear empties the selection.
func (sel *Selection) Clear() {
	clear(sel.set)
}

// Has reports whether id is selected.
func (sel *Selection) Has(id PointID) bool {
	return sel.set.Has(id)
}

// Len returns the number of selected points.
func (sel *Selection) Len() int {
	return len(sel.set)
}

// Set returns a copy of the selected points.
func (sel *Selection) Set() PointSet {
	out := maps.Clone(sel.set)
	if out == nil {
		out = make(PointSet)
	}
	return out
}

// Eligible returns the points of the selection a transform may move.
func (sel *Selection) Eligible(s *Scene) PointSet {
	return s.Eligible(sel.set)
}
