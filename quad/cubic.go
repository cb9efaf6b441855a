package quad

// Cubic is a cubic Bézier curve with endpoints P0 and P3 and control
// points P1 and P2.
type Cubic struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval returns the point on the curve at parameter t, using de
// Casteljau's construction.
func (c Cubic) Eval(t float64) Point {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	return p01.Lerp(p12, t).Lerp(p12.Lerp(p23, t), t)
}

// parameters returns the curve in polynomial coefficient form, i.e.
// a·t³ + b·t² + c·t + d per coordinate.
func (cb Cubic) parameters() (a, b, c, d Point) {
	c = cb.P1.Sub(cb.P0).Mul(3.0)
	b = cb.P2.Sub(cb.P1).Mul(3.0).Sub(c)
	d = cb.P0
	a = cb.P3.Sub(d).Sub(c).Sub(b)
	return a, b, c, d
}

// Split subdivides the curve into n sub-curves at parameter values
// evenly spaced in [0,1]. The sub-curves share endpoints: sub-curve i
// runs from parameter i/n to (i+1)/n of the original.
func (c Cubic) Split(n int) []Cubic {
	if n <= 1 {
		return []Cubic{c}
	}
	a, b, cc, d := c.parameters()
	dt := 1.0 / float64(n)
	delta2 := dt * dt
	delta3 := dt * delta2
	out := make([]Cubic, 0, n)
	for i := 0; i < n; i++ {
		t1 := float64(i) * dt
		t1sq := t1 * t1
		// coefficients of the sub-curve, reparametrized to [0,1]
		a1 := a.Mul(delta3)
		b1 := a.Mul(3.0).Mul(t1).Add(b).Mul(delta2)
		c1 := b.Mul(2.0).Mul(t1).Add(cc).Add(a.Mul(3.0).Mul(t1sq)).Mul(dt)
		d1 := a.Mul(t1).Mul(t1sq).Add(b.Mul(t1sq)).Add(cc.Mul(t1)).Add(d)
		p0 := d1
		p1 := c1.Mul(1.0 / 3.0).Add(d1)
		p2 := b1.Add(c1).Mul(1.0 / 3.0).Add(p1)
		p3 := a1.Add(d1).Add(c1).Add(b1)
		out = append(out, Cubic{P0: p0, P1: p1, P2: p2, P3: p3})
	}
	return out
}

// TangentIntersection returns the intersection of the curve's two
// endpoint tangent lines, i.e. the line through P0 and P1 and the line
// through P2 and P3. ok is false when the tangent directions are
// parallel, in which case no single quadratic with these tangents
// exists.
func (c Cubic) TangentIntersection() (pt Point, ok bool) {
	ab := c.P1.Sub(c.P0)
	cd := c.P3.Sub(c.P2)
	normal := Pt(-ab.Y, ab.X)
	denom := cd.Dot(normal) // equals ab × cd
	if denom == 0 {
		return Point{}, false
	}
	h := c.P0.Sub(c.P2).Dot(normal) / denom
	return c.P2.Add(cd.Mul(h)), true
}
