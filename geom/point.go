// Package geom implements the numerical routines behind the path
// normalization pipeline: curve elevation, elliptical arc decomposition,
// adaptive flattening, affine matrices and bounding boxes.
// Every routine here is stateless.
package geom

import (
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Point is a position in user space.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Mul(s float64) Point { return Point{p.X * s, p.Y * s} }

// Lerp returns the point at parameter t on the segment p-q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Fixed converts the point to 26.6 fixed point, as expected
// by rasterx and golang.org/x/image consumers.
func (p Point) Fixed() fixed.Point26_6 {
	return ToFixed(p.X, p.Y)
}

// ToFixed converts two floats to a fixed point.
func ToFixed(x, y float64) fixed.Point26_6 {
	return rasterx.ToFixedP(x, y)
}

// FromFixed is the inverse of ToFixed, up to the 1/64 resolution.
func FromFixed(p fixed.Point26_6) Point {
	return Point{float64(p.X) / 64, float64(p.Y) / 64}
}
