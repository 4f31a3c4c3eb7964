package geom

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// bounding boxes of cubic curves, computed from the roots of the derivative

// Rect is an axis aligned box. The zero value is the empty box.
type Rect struct {
	Min, Max Point
	nonEmpty bool
}

// Empty reports whether no point has been added to r.
func (r Rect) Empty() bool { return !r.nonEmpty }

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Extend returns the smallest box containing r and p.
func (r Rect) Extend(p Point) Rect {
	if !r.nonEmpty {
		return Rect{Min: p, Max: p, nonEmpty: true}
	}
	r.Min.X = math.Min(r.Min.X, p.X)
	r.Min.Y = math.Min(r.Min.Y, p.Y)
	r.Max.X = math.Max(r.Max.X, p.X)
	r.Max.Y = math.Max(r.Max.Y, p.Y)
	return r
}

// Union returns the smallest box containing r and s.
func (r Rect) Union(s Rect) Rect {
	if !s.nonEmpty {
		return r
	}
	return r.Extend(s.Min).Extend(s.Max)
}

// Fixed converts r to 26.6 fixed point.
func (r Rect) Fixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: r.Min.Fixed(), Max: r.Max.Fixed()}
}

// CubicBounds returns the exact bounding box of the cubic curve (p0, p1, p2, p3).
func CubicBounds(p0, p1, p2, p3 Point) Rect {
	r := Rect{}.Extend(p0).Extend(p3)
	aX, bX, cX := cubicDerivative(p0.X, p1.X, p2.X, p3.X)
	aY, bY, cY := cubicDerivative(p0.Y, p1.Y, p2.Y, p3.Y)
	for _, t := range append(quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)...) {
		// filter invalid value
		if !(0 <= t && t <= 1) {
			continue
		}
		r = r.Extend(Point{bezierSpline(p0.X, p1.X, p2.X, p3.X, t), bezierSpline(p0.Y, p1.Y, p2.Y, p3.Y, t)})
	}
	return r
}

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		p0
}

// derivative of bezierSpline, as at^2 + bt + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		// bt + c is a simple line
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
