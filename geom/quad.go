package geom

// QuadraticToCubic elevates the quadratic curve (p0, q, p1) to the
// cubic (p0, c1, c2, p1) tracing the exact same curve.
func QuadraticToCubic(p0, q, p1 Point) (c1, c2 Point) {
	c1 = p0.Add(q.Sub(p0).Mul(2. / 3))
	c2 = p1.Add(q.Sub(p1).Mul(2. / 3))
	return c1, c2
}
