package pixgeom

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix represents a 2D affine transformation matrix.
// It stores the top two rows of a 3x3 homogeneous matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//	| 0  0  1 |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Axis selects the mirror line of a reflection.
type Axis uint8

const (
	// AxisX mirrors across the X axis (y becomes -y).
	AxisX Axis = iota
	// AxisY mirrors across the Y axis (x becomes -x).
	AxisY
	// AxisXY mirrors across both axes, a point reflection through the origin.
	AxisXY
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisXY:
		return "XY"
	}
	return "Axis(?)"
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a counter-clockwise rotation matrix about the origin.
// The angle is in degrees.
func Rotate(degrees float64) Matrix {
	return RotateRadians(degrees * math.Pi / 180)
}

// RotateRadians creates a rotation matrix (angle in radians).
func RotateRadians(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Reflect creates a reflection matrix about the origin.
func Reflect(axis Axis) Matrix {
	switch axis {
	case AxisX:
		return Scale(1, -1)
	case AxisY:
		return Scale(-1, 1)
	case AxisXY:
		return Scale(-1, -1)
	}
	return Identity()
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// About returns m conjugated by a translation to pivot,
// i.e. translate(pivot) * m * translate(-pivot).
func (m Matrix) About(pivot Point) Matrix {
	return Translate(pivot.X, pivot.Y).Multiply(m).Multiply(Translate(-pivot.X, -pivot.Y))
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// ApproxEqual reports whether every coefficient of m and other differs by at most tol.
func (m Matrix) ApproxEqual(other Matrix, tol float64) bool {
	a, b := m.Aff3(), other.Aff3()
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// Aff3 returns the matrix in the layout used by golang.org/x/image.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// FromAff3 converts an x/image affine matrix to a Matrix.
func FromAff3(a f64.Aff3) Matrix {
	return Matrix{
		A: a[0], B: a[1], C: a[2],
		D: a[3], E: a[4], F: a[5],
	}
}
