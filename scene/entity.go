package scene

import (
	"errors"
	"fmt"
)

// PointID identifies a point in a scene's arena. Two IDs are different
// points even when their coordinates are equal.
type PointID int

// EntityID identifies an entity within a scene.
type EntityID int

// Kind tags the variant held by an Entity.
type Kind uint8

const (
	// KindPoint is a free-standing point.
	KindPoint Kind = iota
	// KindLine is a segment between two points.
	KindLine
	// KindPolygon is a vertex chain, optionally closed.
	KindPolygon
	// KindCircle is a center point and a rim point.
	KindCircle
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindPolygon:
		return "polygon"
	case KindCircle:
		return "circle"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Errors returned when building entities.
var (
	ErrInvalidEntity = errors.New("scene: invalid entity")
	ErrUnknownPoint  = errors.New("scene: unknown point")
	ErrUnknownEntity = errors.New("scene: unknown entity")
	ErrClosed        = errors.New("scene: polygon already closed")
)

// Entity is a geometric primitive. It holds references into the point
// arena, never coordinates, so entities that share a PointID move together.
//
// Points layout per kind:
//   - KindPoint: [p]
//   - KindLine: [a, b]
//   - KindPolygon: [v0, v1, ...], at least one vertex
//   - KindCircle: [center, rim]; the radius is |rim - center|
type Entity struct {
	Kind   Kind
	Points []PointID
	Closed bool // polygons only
}

// NewPoint returns a free-standing point entity.
func NewPoint(p PointID) Entity {
	return Entity{Kind: KindPoint, Points: []PointID{p}}
}

// NewLine returns a line entity from a to b.
func NewLine(a, b PointID) Entity {
	return Entity{Kind: KindLine, Points: []PointID{a, b}}
}

// NewPolygon returns a polygon entity over the given vertices.
func NewPolygon(vertices []PointID, closed bool) Entity {
	return Entity{Kind: KindPolygon, Points: append([]PointID(nil), vertices...), Closed: closed}
}

// NewCircle returns a circle entity with the given center and rim point.
func NewCircle(center, rim PointID) Entity {
	return Entity{Kind: KindCircle, Points: []PointID{center, rim}}
}

// Validate checks the point count of e against its kind.
func (e Entity) Validate() error {
	n := len(e.Points)
	switch e.Kind {
	case KindPoint:
		if n != 1 {
			return fmt.Errorf("%w: point has %d references, want 1", ErrInvalidEntity, n)
		}
	case KindLine, KindCircle:
		if n != 2 {
			return fmt.Errorf("%w: %s has %d references, want 2", ErrInvalidEntity, e.Kind, n)
		}
	case KindPolygon:
		if n < 1 {
			return fmt.Errorf("%w: polygon has no vertices", ErrInvalidEntity)
		}
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidEntity, e.Kind)
	}
	if e.Closed && e.Kind != KindPolygon {
		return fmt.Errorf("%w: only polygons can be closed", ErrInvalidEntity)
	}
	return nil
}

// Composite reports whether e takes part in the group-completeness rule.
// Free-standing points do not.
func (e Entity) Composite() bool {
	return e.Kind != KindPoint
}

// Complete reports whether every point of e is in selected.
func (e Entity) Complete(selected PointSet) bool {
	for _, id := range e.Points {
		if !selected.Has(id) {
			return false
		}
	}
	return true
}

// Touches reports whether at least one point of e is in selected.
func (e Entity) Touches(selected PointSet) bool {
	for _, id := range e.Points {
		if selected.Has(id) {
			return true
		}
	}
	return false
}

func (e Entity) clone() Entity {
	e.Points = append([]PointID(nil), e.Points...)
	return e
}
