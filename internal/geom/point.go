package geom

import "math"

// Eps is the threshold below which dot/cross products and distances are
// treated as zero. Near-singular configurations (coincident centers,
// parallel tangents) are resolved against this rather than allowed to
// divide by zero.
const Eps = 1e-9

// Point is a position in the 2D plane.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Angle returns the bearing of p from the origin, in (-π, π].
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Finite reports whether both coordinates are finite numbers.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Cross returns the z component of (a-o) × (b-o). Positive means o→a→b
// turns counter-clockwise.
func Cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// unit returns the unit vector at angle a.
func unit(a float64) Point {
	return Point{math.Cos(a), math.Sin(a)}
}
