package geom

import (
	"log/slog"
	"math"

	"github.com/benoitkugler/svgpathdata/logging"
)

// maxArcSpan is the maximum angle, in the ellipse parametric space,
// one cubic is allowed to span when approximating an arc.
const maxArcSpan = math.Pi / 2

// ArcToCubic approximates the SVG elliptical arc going from (x1, y1) to (x2, y2)
// with radii rx, ry, the x axis rotated by phi degrees, and the
// given large arc and sweep flags.
// It returns the cubic segments as a flat list: every 6 values are
// the two control points and the end point of one curve.
//
// A degenerate arc (same end points or a zero radius) gives one straight
// curve. The last point is always exactly (x2, y2).
func ArcToCubic(x1, y1, rx, ry, phi float64, largeArc, sweep bool, x2, y2 float64) []float64 {
	if (x1 == x2 && y1 == y2) || rx == 0 || ry == 0 {
		return []float64{x1, y1, x2, y2, x2, y2}
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	sinPhi, cosPhi := math.Sincos(Radians(phi))

	// half chord, in the ellipse frame
	hx := (x1 - x2) / 2
	hy := (y1 - y2) / 2
	px := cosPhi*hx + sinPhi*hy
	py := -sinPhi*hx + cosPhi*hy

	cx, cy, rx, ry := findArcCenter(px, py, rx, ry, largeArc, sweep)

	// back to user space
	centerX := cosPhi*cx - sinPhi*cy + (x1+x2)/2
	centerY := sinPhi*cx + cosPhi*cy + (y1+y2)/2

	theta := vectorAngle(1, 0, (px-cx)/rx, (py-cy)/ry)
	delta := vectorAngle((px-cx)/rx, (py-cy)/ry, (-px-cx)/rx, (-py-cy)/ry)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	segs := int(math.Ceil(math.Abs(delta)/maxArcSpan - 1e-9))
	if segs < 1 {
		segs = 1
	}
	dTheta := delta / float64(segs)
	alpha := math.Tan(dTheta/4) * 4 / 3

	// maps a point of the unit circle to the arc ellipse
	toUser := func(u, v float64) (float64, float64) {
		u, v = u*rx, v*ry
		return cosPhi*u - sinPhi*v + centerX, sinPhi*u + cosPhi*v + centerY
	}

	out := make([]float64, 0, 6*segs)
	sin1, cos1 := math.Sincos(theta)
	for i := 1; i <= segs; i++ {
		sin2, cos2 := math.Sincos(theta + dTheta*float64(i))
		c1x, c1y := toUser(cos1-alpha*sin1, sin1+alpha*cos1)
		c2x, c2y := toUser(cos2+alpha*sin2, sin2-alpha*cos2)
		ex, ey := toUser(cos2, sin2)
		if i == segs {
			ex, ey = x2, y2 // no roundoff on the end point
		}
		out = append(out, c1x, c1y, c2x, c2y, ex, ey)
		sin1, cos1 = sin2, cos2
	}
	return out
}

// findArcCenter locates the center of the ellipse going through (px, py) and (-px, -py),
// expressed in the ellipse frame with the chord midpoint as origin.
// When the ellipse does not exist, the radii are scaled up
// minimally, preserving their ratio, and returned.
func findArcCenter(px, py, rx, ry float64, largeArc, sweep bool) (cx, cy, nrx, nry float64) {
	lambda := (px*px)/(rx*rx) + (py*py)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		logging.Logger().Debug("arc radii too small, scaling up",
			slog.Float64("rx", rx), slog.Float64("ry", ry), slog.Float64("factor", s))
		rx, ry = rx*s, ry*s
	}
	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*py*py - ry2*px*px
	den := rx2*py*py + ry2*px*px
	var coef float64
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		coef = -coef
	}
	return coef * rx * py / ry, -coef * ry * px / rx, rx, ry
}

// vectorAngle returns the signed angle from (ux, uy) to (vx, vy).
func vectorAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}
