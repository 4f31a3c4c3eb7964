package geom

import (
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/f64"
)

// Matrix2D represents the affine transformation
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
//
// mapping (x, y) to (A*x + C*y + E, B*x + D*y + F).
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the Matrix2D leaving points unchanged.
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Transform applies the matrix to the point (x, y).
func (a Matrix2D) Transform(x, y float64) (float64, float64) {
	return x*a.A + y*a.C + a.E, x*a.B + y*a.D + a.F
}

// TransformPoint is the Point version of Transform.
func (a Matrix2D) TransformPoint(p Point) Point {
	x, y := a.Transform(p.X, p.Y)
	return Point{x, y}
}

// Mult returns a*b, that is the transformation applying b first, then a.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

// Translate returns a translated by (x, y), applied before a.
func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, 0, 1, x, y})
}

// Scale returns a scaled by (x, y), applied before a.
func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{x, 0, 0, y, 0, 0})
}

// Rotate returns a rotated by theta radians, applied before a.
func (a Matrix2D) Rotate(theta float64) Matrix2D {
	s, c := math.Sincos(theta)
	return a.Mult(Matrix2D{c, s, -s, c, 0, 0})
}

// SkewX returns a skewed along the x axis by theta radians.
func (a Matrix2D) SkewX(theta float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, math.Tan(theta), 1, 0, 0})
}

// SkewY returns a skewed along the y axis by theta radians.
func (a Matrix2D) SkewY(theta float64) Matrix2D {
	return a.Mult(Matrix2D{1, math.Tan(theta), 0, 1, 0, 0})
}

// Aff3 returns the matrix in the row major layout of golang.org/x/image/math/f64.
func (a Matrix2D) Aff3() f64.Aff3 {
	return f64.Aff3{
		a.A, a.C, a.E,
		a.B, a.D, a.F,
	}
}

// FromAff3 is the inverse of Aff3.
func FromAff3(m f64.Aff3) Matrix2D {
	return Matrix2D{A: m[0], B: m[3], C: m[1], D: m[4], E: m[2], F: m[5]}
}

// Rasterx converts to the rasterx representation.
func (a Matrix2D) Rasterx() rasterx.Matrix2D {
	return rasterx.Matrix2D(a)
}

// Radians converts degrees, the unit used by SVG, to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }
