package scene

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/pixgeom"
)

// Scene is the entity graph: an arena of points and the entities that
// reference them.
//
// Points are stored once and referenced by PointID, so sharing a vertex
// between a line and a polygon is an explicit ID equality. Transform
// commits mutate the arena in place under the write lock; rendering and
// queries take the read lock and never observe a half-applied transform.
//
// Example:
//
//	s := scene.New()
//	a := s.AddPoint(pixgeom.Pt(0, 0))
//	b := s.AddPoint(pixgeom.Pt(10, 0))
//	s.AddLine(a, b)
//	s.Apply(scene.NewPointSet(a, b), scene.NewPending().Rotate(90))
type Scene struct {
	mu sync.RWMutex

	// points is the arena indexed by PointID
	points []pixgeom.Point

	// entities is indexed by EntityID
	entities []Entity

	// version is incremented on each modification for cache invalidation
	version uint64

	log *slog.Logger
}

// New creates an empty scene.
func New(opts ...Option) *Scene {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scene{
		points:   make([]pixgeom.Point, 0, o.capacity),
		entities: make([]Entity, 0, 8),
		log:      o.log(),
	}
}

// Reset clears the scene for reuse without deallocating memory.
func (s *Scene) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = s.points[:0]
	s.entities = s.entities[:0]
	s.version++
}

// Version returns a counter that changes whenever the scene is modified.
func (s *Scene) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// AddPoint stores p in the arena and returns its identity.
// The point belongs to no entity until one references it.
func (s *Scene) AddPoint(p pixgeom.Point) PointID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = append(s.points, p)
	s.version++
	return PointID(len(s.points) - 1)
}

// Point returns the coordinates of id.
func (s *Scene) Point(id PointID) (pixgeom.Point, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.validPoint(id) {
		return pixgeom.Point{}, false
	}
	return s.points[id], true
}

// NumPoints returns the size of the arena.
func (s *Scene) NumPoints() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.points)
}

// AddEntity validates e and stores it.
func (s *Scene) AddEntity(e Entity) (EntityID, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range e.Points {
		if !s.validPoint(id) {
			return 0, fmt.Errorf("%w: %d", ErrUnknownPoint, id)
		}
	}
	s.entities = append(s.entities, e.clone())
	s.version++
	return EntityID(len(s.entities) - 1), nil
}

// AddFreePoint stores p and a point entity referencing it.
func (s *Scene) AddFreePoint(p pixgeom.Point) (PointID, EntityID) {
	id := s.AddPoint(p)
	eid, _ := s.AddEntity(NewPoint(id))
	return id, eid
}

// AddLine adds a line between two existing points.
func (s *Scene) AddLine(a, b PointID) (EntityID, error) {
	return s.AddEntity(NewLine(a, b))
}

// AddPolygon adds a polygon over existing points. An open polygon can be
// extended with AppendVertex and finished with ClosePolygon.
func (s *Scene) AddPolygon(vertices []PointID, closed bool) (EntityID, error) {
	return s.AddEntity(NewPolygon(vertices, closed))
}

// AddCircle adds a circle from an existing center and rim point.
func (s *Scene) AddCircle(center, rim PointID) (EntityID, error) {
	return s.AddEntity(NewCircle(center, rim))
}

// AppendVertex extends an open polygon.
func (s *Scene) AppendVertex(eid EntityID, v PointID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.polygonLocked(eid)
	if err != nil {
		return err
	}
	if e.Closed {
		return fmt.Errorf("%w: entity %d", ErrClosed, eid)
	}
	if !s.validPoint(v) {
		return fmt.Errorf("%w: %d", ErrUnknownPoint, v)
	}
	e.Points = append(e.Points, v)
	s.version++
	return nil
}

// ClosePolygon marks a polygon closed, adding the edge from its last vertex
// back to the first.
func (s *Scene) ClosePolygon(eid EntityID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.polygonLocked(eid)
	if err != nil {
		return err
	}
	e.Closed = true
	s.version++
	return nil
}

// Entity returns a copy of the entity eid.
func (s *Scene) Entity(eid EntityID) (Entity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if eid < 0 || int(eid) >= len(s.entities) {
		return Entity{}, false
	}
	return s.entities[eid].clone(), true
}

// Entities returns a copy of every entity, indexed by EntityID.
func (s *Scene) Entities() []Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entity, len(s.entities))
	for i, e := range s.entities {
		out[i] = e.clone()
	}
	return out
}

// EntityPoints returns the current coordinates of the points of eid.
func (s *Scene) EntityPoints(eid EntityID) ([]pixgeom.Point, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if eid < 0 || int(eid) >= len(s.entities) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEntity, eid)
	}
	return s.coordsLocked(s.entities[eid].Points), nil
}

func (s *Scene) polygonLocked(eid EntityID) (*Entity, error) {
	if eid < 0 || int(eid) >= len(s.entities) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEntity, eid)
	}
	e := &s.entities[eid]
	if e.Kind != KindPolygon {
		return nil, fmt.Errorf("%w: entity %d is a %s", ErrInvalidEntity, eid, e.Kind)
	}
	return e, nil
}

func (s *Scene) coordsLocked(ids []PointID) []pixgeom.Point {
	pts := make([]pixgeom.Point, len(ids))
	for i, id := range ids {
		pts[i] = s.points[id]
	}
	return pts
}

func (s *Scene) validPoint(id PointID) bool {
	return id >= 0 && int(id) < len(s.points)
}
