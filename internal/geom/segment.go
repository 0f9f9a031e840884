package geom

import "math"

// Segment is one piece of a path: a circular arc or a straight line. Both
// kinds expose their length and the oriented poses at their ends, and can be
// sampled for visualization or tracking.
type Segment interface {
	Length() float64
	StartPose() Pose
	EndPose() Pose
	// Sample returns n poses spaced evenly along the segment, including
	// both endpoints. n < 2 is treated as 2.
	Sample(n int) []Pose
}

// Line is a straight segment from Start to End.
type Line struct {
	Start Point
	End   Point
}

var _ Segment = Line{}

func (l Line) Length() float64 {
	return l.Start.Dist(l.End)
}

// heading is the direction of travel. A zero-length line has heading 0.
func (l Line) heading() float64 {
	return l.End.Sub(l.Start).Angle()
}

func (l Line) StartPose() Pose {
	return Pose{X: l.Start.X, Y: l.Start.Y, Theta: l.heading()}
}

func (l Line) EndPose() Pose {
	return Pose{X: l.End.X, Y: l.End.Y, Theta: l.heading()}
}

func (l Line) Sample(n int) []Pose {
	if n < 2 {
		n = 2
	}
	th := l.heading()
	out := make([]Pose, n)
	for i := range out {
		t := float64(i) / float64(n-1)
		p := l.Start.Add(l.End.Sub(l.Start).Scale(t))
		out[i] = Pose{X: p.X, Y: p.Y, Theta: th}
	}
	return out
}

// Arc is a circular arc swept from StartAngle to EndAngle in the given
// direction. Angles are positions around Center; the sweep is always taken
// the Direction way round, so it lies in [0, 2π).
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Direction  Turn
}

var _ Segment = Arc{}

// Sweep returns the swept angle in [0, 2π). Sweeps within Eps of a full
// turn snap to zero so that numerically identical start/end angles do not
// produce a spurious full circle.
func (a Arc) Sweep() float64 {
	var s float64
	if a.Direction == CCW {
		s = Mod2Pi(a.EndAngle - a.StartAngle)
	} else {
		s = Mod2Pi(a.StartAngle - a.EndAngle)
	}
	if 2*math.Pi-s < Eps {
		return 0
	}
	return s
}

func (a Arc) Length() float64 {
	return a.Sweep() * a.Radius
}

// PoseAt returns the pose of a vehicle at position angle ang on the arc's
// circle, traveling in the arc's direction. Headings are tangent to the
// circle: ang+π/2 counter-clockwise, ang-π/2 clockwise.
func (a Arc) PoseAt(ang float64) Pose {
	p := Point{a.Center.X + a.Radius*math.Cos(ang), a.Center.Y + a.Radius*math.Sin(ang)}
	th := ang + math.Pi/2
	if a.Direction == CW {
		th = ang - math.Pi/2
	}
	return Pose{X: p.X, Y: p.Y, Theta: NormalizeAngle(th)}
}

func (a Arc) StartPose() Pose { return a.PoseAt(a.StartAngle) }

func (a Arc) EndPose() Pose { return a.PoseAt(a.EndAngle) }

func (a Arc) Sample(n int) []Pose {
	if n < 2 {
		n = 2
	}
	sweep := a.Sweep()
	if a.Direction == CW {
		sweep = -sweep
	}
	out := make([]Pose, n)
	for i := range out {
		t := float64(i) / float64(n-1)
		out[i] = a.PoseAt(a.StartAngle + t*sweep)
	}
	return out
}
