package quad

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate in font design units. Coordinates are
// real-valued during computation; font tooling truncates them to
// integers on output.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul scales both coordinates by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Lerp linearly interpolates between p and q at time t.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X*(1-t) + q.X*t,
		Y: p.Y*(1-t) + q.Y*t,
	}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Dot treats p and q as vectors and returns their dot product.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross treats p and q as vectors and returns the z-component of their
// cross product. It is zero iff p and q are parallel.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Trunc returns p with both coordinates rounded towards zero.
func (p Point) Trunc() Point {
	return Point{X: math.Trunc(p.X), Y: math.Trunc(p.Y)}
}

// extend returns the point reached by scaling the handle from p towards
// q by factor s.
func (p Point) extend(q Point, s float64) Point {
	return p.Add(q.Sub(p).Mul(s))
}
