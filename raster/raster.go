// Package raster converts segments and circles into integer pixel coordinates.
//
// Every rasterizer is a pure function returning a restartable [iter.Seq];
// the slice variants collect that sequence. Nothing here owns a surface:
// callers filter against their canvas with [Within] and plot the result.
package raster

import (
	"fmt"
	"image"
	"iter"
	"math"
	"slices"
	"strings"

	"github.com/gogpu/pixgeom"
)

// Pixel is an integer pixel coordinate.
type Pixel = image.Point

// LineAlgorithm selects the segment rasterizer.
type LineAlgorithm uint8

const (
	// LineBresenham walks the integer error accumulator.
	LineBresenham LineAlgorithm = iota
	// LineDDA samples the segment at evenly spaced real positions.
	LineDDA
)

// String returns the algorithm name.
func (a LineAlgorithm) String() string {
	switch a {
	case LineBresenham:
		return "bresenham"
	case LineDDA:
		return "dda"
	}
	return fmt.Sprintf("LineAlgorithm(%d)", uint8(a))
}

// ParseLineAlgorithm parses a case-insensitive algorithm name.
func ParseLineAlgorithm(s string) (LineAlgorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bresenham":
		return LineBresenham, nil
	case "dda":
		return LineDDA, nil
	}
	return 0, fmt.Errorf("raster: unknown line algorithm %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (a LineAlgorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *LineAlgorithm) UnmarshalText(text []byte) error {
	v, err := ParseLineAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Seq returns the pixel sequence of the segment p0-p1 using algorithm a.
func (a LineAlgorithm) Seq(p0, p1 pixgeom.Point) iter.Seq[Pixel] {
	if a == LineDDA {
		return DDASeq(p0, p1)
	}
	return BresenhamSeq(p0, p1)
}

// Line returns the pixels of the segment p0-p1 using algorithm a.
func (a LineAlgorithm) Line(p0, p1 pixgeom.Point) []Pixel {
	return slices.Collect(a.Seq(p0, p1))
}

// Within filters seq down to the pixels inside bounds.
// An empty bounds rectangle disables filtering.
func Within(seq iter.Seq[Pixel], bounds image.Rectangle) iter.Seq[Pixel] {
	if bounds.Empty() {
		return seq
	}
	return func(yield func(Pixel) bool) {
		for px := range seq {
			if !px.In(bounds) {
				continue
			}
			if !yield(px) {
				return
			}
		}
	}
}

// Round returns the pixel nearest to p, rounding halves away from zero.
func Round(p pixgeom.Point) Pixel {
	return Pixel{X: round(p.X), Y: round(p.Y)}
}

func round(v float64) int {
	return int(math.Round(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
