// Package clip reduces line segments to their visible part inside an
// axis-aligned window.
//
// Two interchangeable algorithms are provided, Cohen-Sutherland region codes
// and Liang-Barsky parametric clipping. Both return ok == false when the
// segment misses the window entirely; that is a normal outcome meaning
// "draw nothing", not an error.
package clip

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/gogpu/pixgeom"
)

// Rect is an axis-aligned clip window. Edges are inclusive.
type Rect struct {
	XMin, YMin float64
	XMax, YMax float64
}

// NewRect creates a Rect from its bounds.
func NewRect(xmin, ymin, xmax, ymax float64) Rect {
	return Rect{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
}

// RectFromCorners builds the window spanned by two opposite corners given
// in any order, as produced by a drag gesture.
func RectFromCorners(a, b pixgeom.Point) Rect {
	return Rect{
		XMin: math.Min(a.X, b.X),
		YMin: math.Min(a.Y, b.Y),
		XMax: math.Max(a.X, b.X),
		YMax: math.Max(a.Y, b.Y),
	}
}

// Contains reports whether p lies inside r or on its border.
func (r Rect) Contains(p pixgeom.Point) bool {
	return p.X >= r.XMin && p.X <= r.XMax && p.Y >= r.YMin && p.Y <= r.YMax
}

// IsEmpty reports whether the window has zero area.
func (r Rect) IsEmpty() bool {
	return r.XMax <= r.XMin || r.YMax <= r.YMin
}

// Pixels returns the integer rectangle covering r, with Max exclusive as
// image.Rectangle expects.
func (r Rect) Pixels() image.Rectangle {
	return image.Rect(
		int(math.Ceil(r.XMin)), int(math.Ceil(r.YMin)),
		int(math.Floor(r.XMax))+1, int(math.Floor(r.YMax))+1,
	)
}

// Segment is a clipped line segment.
type Segment struct {
	P0, P1 pixgeom.Point
}

// Algorithm selects the segment clipper.
type Algorithm uint8

const (
	// AlgCohenSutherland clips with 4-bit region codes.
	AlgCohenSutherland Algorithm = iota
	// AlgLiangBarsky clips the parametric form of the segment.
	AlgLiangBarsky
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgCohenSutherland:
		return "cohen-sutherland"
	case AlgLiangBarsky:
		return "liang-barsky"
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// ParseAlgorithm parses an algorithm name. Short forms "cohen", "cs",
// "liang" and "lb" are accepted.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cohen-sutherland", "cohen", "cs":
		return AlgCohenSutherland, nil
	case "liang-barsky", "liang", "lb":
		return AlgLiangBarsky, nil
	}
	return 0, fmt.Errorf("clip: unknown algorithm %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Segment clips p0-p1 against r with algorithm a.
func (a Algorithm) Segment(p0, p1 pixgeom.Point, r Rect) (Segment, bool) {
	if a == AlgLiangBarsky {
		return LiangBarsky(p0, p1, r)
	}
	return CohenSutherland(p0, p1, r)
}
