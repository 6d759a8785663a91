package scene

import (
	"image"
	"iter"
	"slices"

	"github.com/gogpu/pixgeom"
	"github.com/gogpu/pixgeom/clip"
	"github.com/gogpu/pixgeom/raster"
)

// RenderOptions selects the algorithms and limits used by Render.
type RenderOptions struct {
	// Line is the segment rasterizer for lines and polygon edges.
	Line raster.LineAlgorithm

	// Clip is the segment clipper used when Window is set.
	Clip clip.Algorithm

	// Window is the clip window; nil disables clipping.
	Window *clip.Rect

	// Bounds is the raster buffer; pixels outside it are dropped.
	// An empty rectangle keeps every pixel.
	Bounds image.Rectangle
}

// Shape is the rasterized form of one entity.
type Shape struct {
	Entity EntityID
	Kind   Kind
	Pixels []raster.Pixel
}

// Render rasterizes every visible entity.
//
// Lines and polygon edges are clipped segment by segment and rasterized
// with opts.Line; edges that are fully clipped are omitted. Circles are
// rasterized with the midpoint algorithm and clipped per pixel. Entities
// with no visible pixel are left out of the result.
//
// Render only reads the scene; calling it repeatedly on unchanged data
// returns the same shapes.
func (s *Scene) Render(opts RenderOptions) []Shape {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shapes := make([]Shape, 0, len(s.entities))
	for i, e := range s.entities {
		seq := s.entitySeq(e, opts)
		px := slices.Collect(raster.Within(seq, opts.Bounds))
		if len(px) == 0 {
			continue
		}
		shapes = append(shapes, Shape{Entity: EntityID(i), Kind: e.Kind, Pixels: px})
	}
	s.log.Debug("scene: rendered", "entities", len(s.entities), "visible", len(shapes),
		"line", opts.Line, "clip", opts.Clip, "windowed", opts.Window != nil)
	return shapes
}

// RenderEntity rasterizes a single entity. ok is false for an unknown ID.
func (s *Scene) RenderEntity(eid EntityID, opts RenderOptions) (px []raster.Pixel, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if eid < 0 || int(eid) >= len(s.entities) {
		return nil, false
	}
	seq := s.entitySeq(s.entities[eid], opts)
	return slices.Collect(raster.Within(seq, opts.Bounds)), true
}

func (s *Scene) entitySeq(e Entity, opts RenderOptions) iter.Seq[raster.Pixel] {
	pts := s.coordsLocked(e.Points)

	switch {
	case e.Kind == KindPoint, e.Kind == KindPolygon && len(pts) == 1:
		return pointSeq(pts[0], opts.Window)
	case e.Kind == KindCircle:
		seq := raster.CircleSeq(pts[0], pts[0].Distance(pts[1]))
		if opts.Window != nil {
			seq = clip.Pixels(seq, *opts.Window)
		}
		return seq
	}

	edges := clip.Edges(pts, e.Kind == KindPolygon && e.Closed)
	return func(yield func(raster.Pixel) bool) {
		for _, edge := range edges {
			if opts.Window != nil {
				var ok bool
				if edge, ok = opts.Clip.Segment(edge.P0, edge.P1, *opts.Window); !ok {
					continue
				}
			}
			for px := range opts.Line.Seq(edge.P0, edge.P1) {
				if !yield(px) {
					return
				}
			}
		}
	}
}

func pointSeq(p pixgeom.Point, window *clip.Rect) iter.Seq[raster.Pixel] {
	return func(yield func(raster.Pixel) bool) {
		if window != nil && !window.Contains(p) {
			return
		}
		yield(raster.Round(p))
	}
}

// Style holds the colours used by Draw.
type Style struct {
	Background pixgeom.RGBA
	Ink        pixgeom.RGBA
	Highlight  pixgeom.RGBA
	Frame      pixgeom.RGBA
}

// DefaultStyle returns the dark canvas palette.
func DefaultStyle() Style {
	return Style{
		Background: pixgeom.Background,
		Ink:        pixgeom.Ink,
		Highlight:  pixgeom.Highlight,
		Frame:      pixgeom.Frame,
	}
}

// Draw clears pm and plots every visible entity into it. Entities touching
// selected use the highlight colour. The clip window, if any, is outlined.
// An empty opts.Bounds defaults to the pixmap bounds.
func (s *Scene) Draw(pm *pixgeom.Pixmap, opts RenderOptions, style Style, selected PointSet) {
	if opts.Bounds.Empty() {
		opts.Bounds = pm.Bounds()
	}
	shapes := s.Render(opts)
	touching := make(map[EntityID]bool)
	for _, eid := range s.Touching(selected) {
		touching[eid] = true
	}

	pm.Clear(style.Background)
	for _, sh := range shapes {
		c := style.Ink
		if touching[sh.Entity] {
			c = style.Highlight
		}
		pm.Plot(sh.Pixels, c)
	}
	if opts.Window != nil && !opts.Window.IsEmpty() {
		r := opts.Window.Pixels()
		pm.Frame(image.Rectangle{Min: r.Min, Max: r.Max.Sub(image.Pt(1, 1))}, style.Frame)
	}
}
