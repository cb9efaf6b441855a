package quad

import (
	"gonum.org/v1/gonum/floats"
)

// Default limits of the search for a quadratic approximation: no more
// than DefaultMaxSegments quadratic segments per cubic, with a maximum
// sampled distance of DefaultMaxError design units.
const (
	DefaultMaxSegments = 10
	DefaultMaxError    = 10.0
)

// totalErrorSamples is the number of parameter steps at which cubic and
// chain are compared, distributed proportionally over the chain's
// segments.
const totalErrorSamples = 20

// Approximate finds a chain of quadratic segments approximating the
// cubic c, preserving its endpoint tangents. Segment counts
// n = 1 … maxSegments are tried in order and the first chain whose
// sampled distance from c stays within maxError is returned. When no
// segment count satisfies the tolerance, the chain for maxSegments is
// returned as a best effort; it may exceed the tolerance.
//
// Non-positive limits select the package defaults. ok is false only
// when no chain exists at all, i.e. maxSegments is 1 and the cubic's
// endpoint tangents are parallel.
func Approximate(c Cubic, maxSegments int, maxError float64) (s Spline, ok bool) {
	if maxSegments <= 0 {
		maxSegments = DefaultMaxSegments
	}
	if maxError <= 0 {
		maxError = DefaultMaxError
	}
	var spline Spline
	for n := 1; n <= maxSegments; n++ {
		s, ok := approxSpline(c, n)
		if !ok { // parallel tangents, no single quadratic exists
			continue
		}
		spline = s
		if ApproximationError(c, s) <= maxError {
			tracer().Debugf("approximated cubic with %d quadratic(s)", n)
			return s, true
		}
	}
	if spline == nil {
		return nil, false
	}
	tracer().Infof("no chain of ≤ %d segments within error %g, returning best effort",
		maxSegments, maxError)
	return spline, true
}

// ApproximateBatch converts a group of interpolation-compatible cubics,
// typically the corresponding curves of several font masters, using one
// shared segment count for the whole group. A count n is accepted when
// every cubic has a chain at n and the worst sampled distance over the
// group stays within maxError; otherwise the group falls back to
// maxSegments, as in [Approximate]. All returned chains have the same
// length.
func ApproximateBatch(group []Cubic, maxSegments int, maxError float64) (ss []Spline, ok bool) {
	if maxSegments <= 0 {
		maxSegments = DefaultMaxSegments
	}
	if maxError <= 0 {
		maxError = DefaultMaxError
	}
	if len(group) == 0 {
		return nil, true
	}
	var fallback []Spline
	for n := 1; n <= maxSegments; n++ {
		splines := make([]Spline, 0, len(group))
		ok := true
		for _, c := range group {
			s, sok := approxSpline(c, n)
			if !sok { // one master degenerate at n=1 blocks the whole group
				ok = false
				break
			}
			splines = append(splines, s)
		}
		if !ok {
			continue
		}
		fallback = splines
		worst := 0.0
		for i, c := range group {
			if e := ApproximationError(c, splines[i]); e > worst {
				worst = e
			}
		}
		if worst <= maxError {
			tracer().Debugf("approximated group of %d cubics with %d quadratic(s) each",
				len(group), n)
			return splines, true
		}
	}
	if fallback == nil {
		return nil, false
	}
	tracer().Infof("no shared chain of ≤ %d segments within error %g, returning best effort",
		maxSegments, maxError)
	return fallback, true
}

// approxSpline approximates c with a chain of exactly n quadratic
// segments. For n = 1 the control point is the intersection of the two
// endpoint tangent lines, which does not exist when the tangents are
// parallel. For n > 1 the cubic is split evenly and each sub-curve gets
// a control point blended from its two 1.5-extended tangent handles,
// with blend weight i/(n-1) across the chain; this produces smoother
// joins than approximating each sub-curve independently.
func approxSpline(c Cubic, n int) (Spline, bool) {
	if n == 1 {
		ctrl, ok := c.TangentIntersection()
		if !ok {
			return nil, false
		}
		return Spline{c.P0, ctrl, c.P3}, true
	}
	sub := c.Split(n)
	s := make(Spline, 0, 2*n+1)
	s = append(s, c.P0)
	for i, sc := range sub {
		t := float64(i) / float64(n-1)
		h0 := sc.P0.extend(sc.P1, 1.5)
		h1 := sc.P3.extend(sc.P2, 1.5)
		s = append(s, h0.Lerp(h1, t))
		if i < n-1 {
			s = append(s, sub[i+1].P0)
		}
	}
	return append(s, c.P3), true
}

// ApproximationError measures the maximum Euclidean distance between
// the cubic and the chain, sampled at totalErrorSamples parameter steps
// distributed proportionally across the chain's segments.
func ApproximationError(c Cubic, s Spline) float64 {
	n := s.Segments()
	steps := totalErrorSamples / n
	if steps < 1 {
		steps = 1
	}
	dists := make([]float64, 0, n*steps)
	for i := 0; i < n; i++ {
		for j := 0; j < steps; j++ {
			t := float64(j) / float64(steps)
			onCubic := c.Eval((float64(i) + t) / float64(n))
			onChain := s.Eval(i, t)
			dists = append(dists, onCubic.Distance(onChain))
		}
	}
	return floats.Max(dists)
}
