package scene

import (
	"fmt"
	"slices"

	"github.com/gogpu/pixgeom"
)

// Pending is a queued transform that has not been committed yet.
//
// Pending is a value: each method returns a new Pending with one more step
// and leaves the receiver untouched. Steps compose left to right in the
// order they were queued (new = step * accumulated). Rotation, scale and
// reflection steps without an explicit pivot are resolved against the
// default pivot supplied at commit time, the centroid of the moved points.
//
// The zero value is the identity.
type Pending struct {
	steps []step
}

type step struct {
	m        pixgeom.Matrix
	pivot    pixgeom.Point
	explicit bool
}

// NewPending returns the identity transform.
func NewPending() Pending {
	return Pending{}
}

func (p Pending) with(st step) Pending {
	return Pending{steps: append(slices.Clip(p.steps), st)}
}

// Translate queues a translation by (dx, dy).
func (p Pending) Translate(dx, dy float64) Pending {
	return p.with(step{m: pixgeom.Translate(dx, dy), explicit: true})
}

// Rotate queues a counter-clockwise rotation in degrees about the default pivot.
func (p Pending) Rotate(degrees float64) Pending {
	return p.with(step{m: pixgeom.Rotate(degrees)})
}

// RotateAbout queues a rotation in degrees about pivot.
func (p Pending) RotateAbout(degrees float64, pivot pixgeom.Point) Pending {
	return p.with(step{m: pixgeom.Rotate(degrees), pivot: pivot, explicit: true})
}

// Scale queues a scale by (sx, sy) about the default pivot.
func (p Pending) Scale(sx, sy float64) Pending {
	return p.with(step{m: pixgeom.Scale(sx, sy)})
}

// ScaleUniform queues a uniform scale about the default pivot.
func (p Pending) ScaleUniform(factor float64) Pending {
	return p.Scale(factor, factor)
}

// ScaleAbout queues a scale by (sx, sy) about pivot.
func (p Pending) ScaleAbout(sx, sy float64, pivot pixgeom.Point) Pending {
	return p.with(step{m: pixgeom.Scale(sx, sy), pivot: pivot, explicit: true})
}

// Reflect queues a reflection across axis through the default pivot.
func (p Pending) Reflect(axis pixgeom.Axis) Pending {
	return p.with(step{m: pixgeom.Reflect(axis)})
}

// ReflectAbout queues a reflection across axis through pivot.
func (p Pending) ReflectAbout(axis pixgeom.Axis, pivot pixgeom.Point) Pending {
	return p.with(step{m: pixgeom.Reflect(axis), pivot: pivot, explicit: true})
}

// Transform queues an arbitrary matrix, applied as given.
func (p Pending) Transform(m pixgeom.Matrix) Pending {
	return p.with(step{m: m, explicit: true})
}

// Then queues every step of next after the steps of p.
func (p Pending) Then(next Pending) Pending {
	return Pending{steps: append(slices.Clip(p.steps), next.steps...)}
}

// Len returns the number of queued steps.
func (p Pending) Len() int {
	return len(p.steps)
}

// IsIdentity reports whether committing p would leave every point in place.
func (p Pending) IsIdentity() bool {
	for _, st := range p.steps {
		if !st.m.IsIdentity() {
			return false
		}
	}
	return true
}

// Resolve folds the queued steps into one matrix, conjugating each
// pivot-relative step by its pivot (translate(p) * M * translate(-p)).
func (p Pending) Resolve(defaultPivot pixgeom.Point) pixgeom.Matrix {
	m := pixgeom.Identity()
	for _, st := range p.steps {
		pivot := defaultPivot
		if st.explicit {
			pivot = st.pivot
		}
		m = st.m.About(pivot).Multiply(m)
	}
	return m
}

// Apply commits p to the points in ids and returns the matrix applied.
//
// The default pivot is the centroid of ids. Every point is mutated in place
// under the scene's write lock, so entities sharing a point all see the
// move and no reader observes a partial update. Unknown IDs are skipped.
// Committing an identity transform or an empty set is a no-op. Callers
// start a fresh Pending after a commit.
func (s *Scene) Apply(ids PointSet, p Pending) pixgeom.Matrix {
	if len(ids) == 0 || p.IsIdentity() {
		return pixgeom.Identity()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	pivot := s.centroidLocked(ids)
	m := p.Resolve(pivot)
	n := s.applyLocked(ids, m)
	s.log.Debug("scene: transform applied",
		"points", n, "steps", p.Len(),
		"pivot_x", pivot.X, "pivot_y", pivot.Y,
		"matrix", m.Aff3())
	return m
}

// ApplyMatrix commits m to the points in ids.
func (s *Scene) ApplyMatrix(ids PointSet, m pixgeom.Matrix) {
	if len(ids) == 0 || m.IsIdentity() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.applyLocked(ids, m)
	s.log.Debug("scene: matrix applied", "points", n, "matrix", m.Aff3())
}

// TransformEntity commits m to every point of eid.
func (s *Scene) TransformEntity(eid EntityID, m pixgeom.Matrix) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if eid < 0 || int(eid) >= len(s.entities) {
		return fmt.Errorf("%w: %d", ErrUnknownEntity, eid)
	}
	s.applyLocked(NewPointSet(s.entities[eid].Points...), m)
	return nil
}

func (s *Scene) applyLocked(ids PointSet, m pixgeom.Matrix) int {
	var n int
	for id := range ids {
		if !s.validPoint(id) {
			continue
		}
		s.points[id] = m.TransformPoint(s.points[id])
		n++
	}
	if n > 0 {
		s.version++
	}
	return n
}
