package geom

import "math"

// Turn is a rotation direction. CCW is a left turn, CW a right turn.
type Turn int

const (
	CCW Turn = iota
	CW
)

func (t Turn) String() string {
	if t == CCW {
		return "ccw"
	}
	return "cw"
}

// Circle is a center and a non-negative radius.
type Circle struct {
	Center Point
	Radius float64
}

// TurningCircle returns the circle of radius r traced by a vehicle at pose p
// turning at maximum curvature in direction t. The center sits r
// perpendicular to the heading: on the left for CCW, on the right for CW.
func TurningCircle(p Pose, r float64, t Turn) Circle {
	sin, cos := math.Sincos(p.Theta)
	if t == CCW {
		return Circle{Center: Point{p.X - r*sin, p.Y + r*cos}, Radius: r}
	}
	return Circle{Center: Point{p.X + r*sin, p.Y - r*cos}, Radius: r}
}

// PointAt returns the point on the circle at angle a (measured from the
// center).
func (c Circle) PointAt(a float64) Point {
	return c.Center.Add(unit(a).Scale(c.Radius))
}

// Intersect returns the two intersection points of c and o. ok is false when
// the circles are separate, contained, or concentric within Eps. When the
// circles are tangent the two points coincide.
func (c Circle) Intersect(o Circle) (p1, p2 Point, ok bool) {
	d := c.Center.Dist(o.Center)
	if d < Eps {
		return Point{}, Point{}, false
	}
	if d > c.Radius+o.Radius+Eps {
		return Point{}, Point{}, false
	}
	if d < math.Abs(c.Radius-o.Radius)-Eps {
		return Point{}, Point{}, false
	}

	a := (d*d + c.Radius*c.Radius - o.Radius*o.Radius) / (2 * d)
	h2 := c.Radius*c.Radius - a*a
	if h2 < 0 {
		h2 = 0 // tangent within rounding
	}
	h := math.Sqrt(h2)

	dir := o.Center.Sub(c.Center).Scale(1 / d)
	mid := c.Center.Add(dir.Scale(a))
	perp := Point{-dir.Y, dir.X}
	return mid.Add(perp.Scale(h)), mid.Sub(perp.Scale(h)), true
}
