// Package pixgeom is a small 2D geometry kernel.
//
// It converts continuous primitives (points, segments, circles, polygon
// outlines) into integer pixel coordinates, clips segments against an
// axis-aligned window and applies affine transformations to groups of
// points.
//
// # Packages
//
//   - pixgeom: Point, Matrix, Pixmap and the shared logger
//   - raster: DDA and Bresenham lines, midpoint circles
//   - clip: Cohen-Sutherland and Liang-Barsky segment clipping
//   - scene: point arena, entities, selection and transform commits
//
// The pixdemo command drives a scene from a small script and writes the
// canvas as a PNG.
//
// # Coordinate System
//
// The kernel does not flip axes. Callers convert world coordinates into
// pixel space before rasterizing; the clipper follows the screen convention
// where "top" means smaller y.
//
// # Quick Start
//
//	s := scene.New()
//	a := s.AddPoint(pixgeom.Pt(0, 0))
//	b := s.AddPoint(pixgeom.Pt(5, 3))
//	line, _ := s.AddLine(a, b)
//
//	shapes := s.Render(scene.RenderOptions{Line: raster.LineBresenham})
//	_ = shapes // shapes[0].Pixels: (0,0) (1,1) (2,1) (3,2) (4,2) (5,3)
//	_ = line
package pixgeom

// Version is the current version of the library.
const Version = "0.1.0"
