package geom

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"pi stays pi", math.Pi, math.Pi},
		{"minus pi wraps to pi", -math.Pi, math.Pi},
		{"three pi", 3 * math.Pi, math.Pi},
		{"two pi", 2 * math.Pi, 0},
		{"minus half pi", -math.Pi / 2, -math.Pi / 2},
		{"five half pi", 5 * math.Pi / 2, math.Pi / 2},
		{"minus five half pi", -5 * math.Pi / 2, -math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAngle(tt.in)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got <= -math.Pi || got > math.Pi {
				t.Errorf("NormalizeAngle(%v) = %v outside (-pi, pi]", tt.in, got)
			}
		})
	}
}

func TestMod2Pi(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{2 * math.Pi, 0},
		{5 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		got := Mod2Pi(tt.in)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Mod2Pi(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("Mod2Pi(%v) = %v outside [0, 2pi)", tt.in, got)
		}
	}
}

func TestTurningCircle(t *testing.T) {
	p := Pose{X: 0, Y: 0, Theta: 0}
	left := TurningCircle(p, 1, CCW)
	if left.Center.Dist(Point{0, 1}) > 1e-12 {
		t.Errorf("left circle center = %v, want (0, 1)", left.Center)
	}
	right := TurningCircle(p, 1, CW)
	if right.Center.Dist(Point{0, -1}) > 1e-12 {
		t.Errorf("right circle center = %v, want (0, -1)", right.Center)
	}

	// heading +y: left center is at -x
	p = Pose{X: 2, Y: 3, Theta: math.Pi / 2}
	left = TurningCircle(p, 2, CCW)
	if left.Center.Dist(Point{0, 3}) > 1e-12 {
		t.Errorf("left circle center = %v, want (0, 3)", left.Center)
	}
}

func TestCircleIntersect(t *testing.T) {
	p1, p2, ok := (Circle{Point{0, 0}, 2}).Intersect(Circle{Point{2, 0}, 2})
	if !ok {
		t.Fatal("expected intersection")
	}
	h := math.Sqrt(3)
	if p1.Dist(Point{1, h}) > 1e-9 || p2.Dist(Point{1, -h}) > 1e-9 {
		t.Errorf("intersections = %v, %v, want (1, ±sqrt3)", p1, p2)
	}

	// tangent circles meet in one (doubled) point
	p1, p2, ok = (Circle{Point{0, 0}, 1}).Intersect(Circle{Point{2, 0}, 1})
	if !ok {
		t.Fatal("expected tangent intersection")
	}
	if p1.Dist(p2) > 1e-6 || p1.Dist(Point{1, 0}) > 1e-9 {
		t.Errorf("tangent intersection = %v, %v, want (1, 0) twice", p1, p2)
	}

	if _, _, ok := (Circle{Point{0, 0}, 1}).Intersect(Circle{Point{5, 0}, 1}); ok {
		t.Error("separate circles should not intersect")
	}
	if _, _, ok := (Circle{Point{0, 0}, 1}).Intersect(Circle{Point{0, 0}, 2}); ok {
		t.Error("concentric circles should not intersect")
	}
}

func TestLine(t *testing.T) {
	l := Line{Start: Point{0, 0}, End: Point{3, 4}}
	if l.Length() != 5 {
		t.Errorf("Length = %v, want 5", l.Length())
	}
	sp := l.StartPose()
	if math.Abs(sp.Theta-math.Atan2(4, 3)) > 1e-12 {
		t.Errorf("StartPose heading = %v", sp.Theta)
	}
	samples := l.Sample(5)
	if len(samples) != 5 {
		t.Fatalf("Sample(5) returned %d poses", len(samples))
	}
	if samples[0].Point() != (Point{0, 0}) || samples[4].Point() != (Point{3, 4}) {
		t.Errorf("sample endpoints = %v, %v", samples[0], samples[4])
	}
}

func TestArc(t *testing.T) {
	a := Arc{Center: Point{0, 0}, Radius: 1, StartAngle: 0, EndAngle: math.Pi / 2, Direction: CCW}
	if math.Abs(a.Sweep()-math.Pi/2) > 1e-12 {
		t.Errorf("Sweep = %v, want pi/2", a.Sweep())
	}
	if math.Abs(a.Length()-math.Pi/2) > 1e-12 {
		t.Errorf("Length = %v, want pi/2", a.Length())
	}

	sp := a.StartPose()
	if sp.Point().Dist(Point{1, 0}) > 1e-12 || math.Abs(sp.Theta-math.Pi/2) > 1e-12 {
		t.Errorf("StartPose = %v, want (1, 0) heading pi/2", sp)
	}
	ep := a.EndPose()
	if ep.Point().Dist(Point{0, 1}) > 1e-12 || math.Abs(ep.Theta-math.Pi) > 1e-12 {
		t.Errorf("EndPose = %v, want (0, 1) heading pi", ep)
	}

	// clockwise covers the same quarter the other way round
	cw := Arc{Center: Point{0, 0}, Radius: 1, StartAngle: math.Pi / 2, EndAngle: 0, Direction: CW}
	if math.Abs(cw.Sweep()-math.Pi/2) > 1e-12 {
		t.Errorf("CW Sweep = %v, want pi/2", cw.Sweep())
	}
	if math.Abs(cw.StartPose().Theta-0) > 1e-12 {
		t.Errorf("CW StartPose heading = %v, want 0", cw.StartPose().Theta)
	}
}

func TestArcSweepSnapsFullTurn(t *testing.T) {
	// numerically identical angles must not become a full circle
	a := Arc{Center: Point{0, 0}, Radius: 1, StartAngle: 1.25, EndAngle: 1.25 - 1e-13, Direction: CCW}
	if a.Sweep() != 0 {
		t.Errorf("Sweep = %v, want 0", a.Sweep())
	}
}

func TestArcSample(t *testing.T) {
	a := Arc{Center: Point{0, 0}, Radius: 2, StartAngle: 0, EndAngle: math.Pi, Direction: CCW}
	samples := a.Sample(9)
	if len(samples) != 9 {
		t.Fatalf("Sample(9) returned %d poses", len(samples))
	}
	for i, s := range samples {
		if math.Abs(s.Point().Dist(Point{0, 0})-2) > 1e-12 {
			t.Errorf("sample %d not on circle: %v", i, s)
		}
	}
	if samples[8].Point().Dist(Point{-2, 0}) > 1e-12 {
		t.Errorf("last sample = %v, want (-2, 0)", samples[8])
	}
}
