package quad

// Spline is a chain of quadratic Bézier segments sharing endpoints. For
// a chain of n segments the point list has length 2n+1: index 0 is the
// start point, odd indices hold the off-curve control points, even
// indices ≥ 2 hold the on-curve joins, and the last index is the end
// point.
type Spline []Point

// Segments returns the number of quadratic segments in the chain.
func (s Spline) Segments() int {
	return (len(s) - 1) / 2
}

// Quad returns the i-th quadratic segment of the chain as its start
// point, off-curve control point and end point.
func (s Spline) Quad(i int) (p0, ctrl, p1 Point) {
	return s[2*i], s[2*i+1], s[2*i+2]
}

// Eval returns the point on the i-th quadratic segment at local
// parameter t.
func (s Spline) Eval(i int, t float64) Point {
	p0, ctrl, p1 := s.Quad(i)
	return p0.Lerp(ctrl, t).Lerp(ctrl.Lerp(p1, t), t)
}

// Start returns the first on-curve point of the chain.
func (s Spline) Start() Point {
	return s[0]
}

// End returns the last on-curve point of the chain.
func (s Spline) End() Point {
	return s[len(s)-1]
}
