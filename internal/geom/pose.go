package geom

import "math"

// Pose is a position plus heading. Theta is radians counter-clockwise from
// the +x axis, normalized to (-π, π] by NewPose.
type Pose struct {
	X     float64
	Y     float64
	Theta float64
}

// NewPose returns a pose with the heading normalized to (-π, π].
func NewPose(x, y, theta float64) Pose {
	return Pose{X: x, Y: y, Theta: NormalizeAngle(theta)}
}

// Point returns the pose position.
func (p Pose) Point() Point { return Point{p.X, p.Y} }

// Finite reports whether all three components are finite numbers.
func (p Pose) Finite() bool {
	return Point{p.X, p.Y}.Finite() && !math.IsNaN(p.Theta) && !math.IsInf(p.Theta, 0)
}

// NormalizeAngle maps an angle to (-π, π].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Mod2Pi maps an angle to [0, 2π).
func Mod2Pi(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
