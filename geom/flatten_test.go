package geom

import (
	"math"
	"testing"
)

// distance from p to the segment a-b
func segmentDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		d := p.Sub(a)
		return math.Hypot(d.X, d.Y)
	}
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / l2
	t = math.Max(0, math.Min(1, t))
	d := p.Sub(a.Lerp(b, t))
	return math.Hypot(d.X, d.Y)
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	return Point{
		bezierSpline(p0.X, p1.X, p2.X, p3.X, t),
		bezierSpline(p0.Y, p1.Y, p2.Y, p3.Y, t),
	}
}

func TestFlattenCollinear(t *testing.T) {
	p0, p1, p2, p3 := Point{0, 0}, Point{1, 1}, Point{2, 2}, Point{3, 3}
	pts := FlattenCubic(p0, p1, p2, p3, DefaultFlatten)
	if len(pts) != 1 || pts[0] != p3 {
		t.Errorf("expected only the end point, got %v", pts)
	}
}

func TestFlattenEndPoint(t *testing.T) {
	p3 := Point{100.125, -3.5}
	for _, opts := range []FlattenOptions{
		DefaultFlatten,
		{ApproximationScale: 10},
		{ApproximationScale: 4, AngleTolerance: 0.2},
		{ApproximationScale: 4, AngleTolerance: 0.2, CuspLimit: 0.5},
	} {
		pts := FlattenCubic(Point{0, 0}, Point{50, 80}, Point{-20, 40}, p3, opts)
		if got := pts[len(pts)-1]; got != p3 {
			t.Errorf("%+v: last point %v, want %v", opts, got, p3)
		}
	}
}

func TestFlattenDeviation(t *testing.T) {
	curves := [][4]Point{
		{{0, 0}, {0, 100}, {100, 100}, {100, 0}},
		{{0, 0}, {50, 100}, {150, -100}, {200, 0}},
		{{0, 0}, {30, 0}, {60, 0.5}, {90, 0}},
	}
	for _, scale := range []float64{1, 4, 25} {
		tol := 0.5 / scale
		for _, c := range curves {
			pts := append([]Point{c[0]}, FlattenCubic(c[0], c[1], c[2], c[3], FlattenOptions{ApproximationScale: scale})...)
			for i := 0; i <= 1000; i++ {
				p := cubicAt(c[0], c[1], c[2], c[3], float64(i)/1000)
				best := math.Inf(1)
				for j := 1; j < len(pts); j++ {
					best = math.Min(best, segmentDistance(p, pts[j-1], pts[j]))
				}
				if best > tol+1e-9 {
					t.Fatalf("scale %g, curve %v: deviation %g exceeds %g at t=%g", scale, c, best, tol, float64(i)/1000)
				}
			}
		}
	}
}

func TestFlattenMorePointsWithScale(t *testing.T) {
	c := [4]Point{{0, 0}, {0, 100}, {100, 100}, {100, 0}}
	coarse := FlattenCubic(c[0], c[1], c[2], c[3], FlattenOptions{ApproximationScale: 1})
	fine := FlattenCubic(c[0], c[1], c[2], c[3], FlattenOptions{ApproximationScale: 20})
	if len(fine) <= len(coarse) {
		t.Errorf("expected more points at higher scale: %d <= %d", len(fine), len(coarse))
	}
}

func TestFlattenNonFinite(t *testing.T) {
	p3 := Point{1, 1}
	pts := FlattenCubic(Point{0, 0}, Point{math.NaN(), 0}, Point{0, math.Inf(1)}, p3, DefaultFlatten)
	if len(pts) != 1 || pts[0] != p3 {
		t.Errorf("expected only the end point, got %v", pts)
	}
}

func TestFlattenDegenerateLoop(t *testing.T) {
	// start == end: subdivision must still terminate and close on p3
	p := Point{5, 5}
	pts := FlattenCubic(p, Point{10, 0}, Point{0, 0}, p, DefaultFlatten)
	if pts[len(pts)-1] != p {
		t.Errorf("last point %v, want %v", pts[len(pts)-1], p)
	}
	if len(pts) < 2 {
		t.Errorf("expected the loop to be subdivided, got %v", pts)
	}
}

func TestAppendFlattenCubic(t *testing.T) {
	dst := []Point{{-1, -1}}
	dst = AppendFlattenCubic(dst, Point{0, 0}, Point{1, 1}, Point{2, 2}, Point{3, 3}, DefaultFlatten)
	if len(dst) != 2 || dst[0] != (Point{-1, -1}) {
		t.Errorf("unexpected %v", dst)
	}
}

func TestFlattenAngleTolerance(t *testing.T) {
	c := [4]Point{{0, 0}, {0, 100}, {100, 100}, {100, 0}}
	distance := FlattenCubic(c[0], c[1], c[2], c[3], FlattenOptions{ApproximationScale: 1})
	smooth := FlattenCubic(c[0], c[1], c[2], c[3], FlattenOptions{ApproximationScale: 1, AngleTolerance: 0.05})
	if len(smooth) <= len(distance) {
		t.Errorf("angle tolerance should add points: %d <= %d", len(smooth), len(distance))
	}
	if smooth[len(smooth)-1] != c[3] {
		t.Errorf("last point %v, want %v", smooth[len(smooth)-1], c[3])
	}
}

func TestFlattenCuspLimit(t *testing.T) {
	// crossed control legs: the curve turns back on itself
	c := [4]Point{{0, 0}, {100, 100}, {0, 100}, {100, 0}}
	distance := FlattenCubic(c[0], c[1], c[2], c[3], FlattenOptions{ApproximationScale: 1})
	angle := FlattenCubic(c[0], c[1], c[2], c[3], FlattenOptions{ApproximationScale: 1, AngleTolerance: 0.05})
	cusp := FlattenCubic(c[0], c[1], c[2], c[3], FlattenOptions{ApproximationScale: 1, AngleTolerance: 0.05, CuspLimit: 0.01})
	if len(cusp) >= len(angle) {
		t.Errorf("cusp limit should stop the subdivision early: %d >= %d", len(cusp), len(angle))
	}
	// a limit below half the angle tolerance stops every piece the distance test accepts
	if len(cusp) != len(distance) {
		t.Errorf("expected %d points, got %d", len(distance), len(cusp))
	}
	if cusp[len(cusp)-1] != c[3] {
		t.Errorf("last point %v, want %v", cusp[len(cusp)-1], c[3])
	}
}
