package geom

import (
	"math"

	"github.com/benoitkugler/svgpathdata/logging"
)

const (
	collinearityEpsilon   = 1e-30
	angleToleranceEpsilon = 0.01

	// maxFlattenDepth bounds the subdivision for pathological input.
	maxFlattenDepth = 32
)

// FlattenOptions tunes the cubic flattening.
type FlattenOptions struct {
	// ApproximationScale is the ratio between user space and device pixels.
	// The polyline stays within 0.5/ApproximationScale of the curve.
	// Values <= 0 are treated as 1.
	ApproximationScale float64 `toml:"approximation_scale"`

	// AngleTolerance, in radians, enables the smoothness test on
	// sharp turns. Zero disables it.
	AngleTolerance float64 `toml:"angle_tolerance"`

	// CuspLimit, in radians, stops the subdivision at cusps
	// sharper than the limit. Zero disables it.
	CuspLimit float64 `toml:"cusp_limit"`
}

// DefaultFlatten is a distance only flattening at device resolution.
var DefaultFlatten = FlattenOptions{ApproximationScale: 1}

// flattener holds the state shared by one recursive subdivision.
type flattener struct {
	distanceTolSq float64
	angleTol      float64
	cuspLimit     float64
	points        []Point
}

// FlattenCubic approximates the cubic curve (p0, p1, p2, p3) by a polyline.
// It returns the line-to points following p0; the last one is always exactly p3.
func FlattenCubic(p0, p1, p2, p3 Point, opts FlattenOptions) []Point {
	return AppendFlattenCubic(nil, p0, p1, p2, p3, opts)
}

// AppendFlattenCubic is like FlattenCubic but appends to dst.
func AppendFlattenCubic(dst []Point, p0, p1, p2, p3 Point, opts FlattenOptions) []Point {
	for _, p := range [...]Point{p0, p1, p2, p3} {
		if !isFinite(p.X) || !isFinite(p.Y) {
			logging.Logger().Debug("flatten: non finite control point, emitting end point only")
			return append(dst, p3)
		}
	}
	scale := opts.ApproximationScale
	if scale <= 0 {
		scale = 1
	}
	tol := 0.5 / scale
	f := flattener{
		distanceTolSq: tol * tol,
		angleTol:      opts.AngleTolerance,
		cuspLimit:     opts.CuspLimit,
		points:        dst,
	}
	f.subdivide(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y, 0)
	return append(f.points, p3)
}

func (f *flattener) add(x, y float64) {
	f.points = append(f.points, Point{x, y})
}

// subdivide splits the curve at t = 0.5 until each piece is flat enough,
// emitting points depth first, left to right.
func (f *flattener) subdivide(x1, y1, x2, y2, x3, y3, x4, y4 float64, level int) {
	if level > maxFlattenDepth {
		return
	}

	// de Casteljau mid points
	x12, y12 := (x1+x2)/2, (y1+y2)/2
	x23, y23 := (x2+x3)/2, (y2+y3)/2
	x34, y34 := (x3+x4)/2, (y3+y4)/2
	x123, y123 := (x12+x23)/2, (y12+y23)/2
	x234, y234 := (x23+x34)/2, (y23+y34)/2
	x1234, y1234 := (x123+x234)/2, (y123+y234)/2

	dx, dy := x4-x1, y4-y1
	d2 := math.Abs((x2-x4)*dy - (y2-y4)*dx)
	d3 := math.Abs((x3-x4)*dy - (y3-y4)*dx)

	switch {
	case d2 <= collinearityEpsilon && d3 <= collinearityEpsilon:
		// all collinear, or p1 == p4
		k := dx*dx + dy*dy
		if k == 0 {
			d2 = sqDistance(x1, y1, x2, y2)
			d3 = sqDistance(x4, y4, x3, y3)
		} else {
			k = 1 / k
			d2 = k * ((x2-x1)*dx + (y2-y1)*dy)
			d3 = k * ((x3-x1)*dx + (y3-y1)*dy)
			if d2 > 0 && d2 < 1 && d3 > 0 && d3 < 1 {
				// 1---2---3---4: nothing to add between the end points
				return
			}
			d2 = collinearDistance(d2, x2, y2, x1, y1, x4, y4, dx, dy)
			d3 = collinearDistance(d3, x3, y3, x1, y1, x4, y4, dx, dy)
		}
		if d2 > d3 {
			if d2 < f.distanceTolSq {
				f.add(x2, y2)
				return
			}
		} else if d3 < f.distanceTolSq {
			f.add(x3, y3)
			return
		}

	case d2 <= collinearityEpsilon:
		// p1, p2, p4 collinear, p3 is significant
		if d3*d3 <= f.distanceTolSq*(dx*dx+dy*dy) {
			if f.angleTol < angleToleranceEpsilon {
				f.add(x23, y23)
				return
			}
			da := turn(x2, y2, x3, y3, x4, y4)
			if da < f.angleTol {
				f.add(x2, y2)
				f.add(x3, y3)
				return
			}
			if f.cuspLimit != 0 && da > f.cuspLimit {
				f.add(x3, y3)
				return
			}
		}

	case d3 <= collinearityEpsilon:
		// p1, p3, p4 collinear, p2 is significant
		if d2*d2 <= f.distanceTolSq*(dx*dx+dy*dy) {
			if f.angleTol < angleToleranceEpsilon {
				f.add(x23, y23)
				return
			}
			da := turn(x1, y1, x2, y2, x3, y3)
			if da < f.angleTol {
				f.add(x2, y2)
				f.add(x3, y3)
				return
			}
			if f.cuspLimit != 0 && da > f.cuspLimit {
				f.add(x2, y2)
				return
			}
		}

	default:
		if (d2+d3)*(d2+d3) <= f.distanceTolSq*(dx*dx+dy*dy) {
			if f.angleTol < angleToleranceEpsilon {
				f.add(x23, y23)
				return
			}
			da1 := turn(x1, y1, x2, y2, x3, y3)
			da2 := turn(x2, y2, x3, y3, x4, y4)
			if da1+da2 < f.angleTol {
				f.add(x23, y23)
				return
			}
			if f.cuspLimit != 0 {
				if da1 > f.cuspLimit {
					f.add(x2, y2)
					return
				}
				if da2 > f.cuspLimit {
					f.add(x3, y3)
					return
				}
			}
		}
	}

	f.subdivide(x1, y1, x12, y12, x123, y123, x1234, y1234, level+1)
	f.subdivide(x1234, y1234, x234, y234, x34, y34, x4, y4, level+1)
}

// turn returns the absolute change of direction, in [0, pi],
// between the segments a-b and b-c.
func turn(ax, ay, bx, by, cx, cy float64) float64 {
	da := math.Abs(math.Atan2(cy-by, cx-bx) - math.Atan2(by-ay, bx-ax))
	if da >= math.Pi {
		da = 2*math.Pi - da
	}
	return da
}

// collinearDistance returns the squared distance from (px, py) to the chord
// (x1, y1)-(x4, y4), given its projection parameter t.
func collinearDistance(t, px, py, x1, y1, x4, y4, dx, dy float64) float64 {
	switch {
	case t <= 0:
		return sqDistance(px, py, x1, y1)
	case t >= 1:
		return sqDistance(px, py, x4, y4)
	default:
		return sqDistance(px, py, x1+t*dx, y1+t*dy)
	}
}

func sqDistance(x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	return dx*dx + dy*dy
}

func isFinite(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }
