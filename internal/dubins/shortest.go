package dubins

import (
	"fmt"
	"math"

	"github.com/TilinHub/Knots/internal/geom"
)

// poseEps is the tolerance for treating two poses as identical.
const poseEps = 1e-9

// ShortestPath returns the minimum-length bounded-curvature path from start
// to end for a vehicle with minimum turning radius r.
//
// All six families are evaluated; infeasible ones are discarded. Ties
// within geom.Eps are broken toward the lexicographically first family
// name. If no family is feasible the straight-line fallback is returned,
// tagged Degenerate so callers cannot mistake it for a true
// bounded-curvature path.
func ShortestPath(start, end geom.Pose, r float64) (Path, error) {
	if err := validate(start, end, r); err != nil {
		return Path{}, err
	}
	start, end = geom.NewPose(start.X, start.Y, start.Theta), geom.NewPose(end.X, end.Y, end.Theta)

	if samePose(start, end) {
		return zeroPath(start, r), nil
	}

	var best Path
	found := false
	for _, f := range Families() {
		p, ok := Compute(f, start, end, r)
		if !ok {
			continue
		}
		// Strict comparison keeps the lexicographically first family on a
		// tie, since Families() is ordered.
		if !found || p.TotalLength < best.TotalLength-geom.Eps {
			best = p
			found = true
		}
	}
	if !found {
		return fallbackPath(start, end), nil
	}
	return best, nil
}

// AllPaths returns every feasible family's path in lexicographic family
// order. The slice may be empty for degenerate inputs.
func AllPaths(start, end geom.Pose, r float64) ([]Path, error) {
	if err := validate(start, end, r); err != nil {
		return nil, err
	}
	start, end = geom.NewPose(start.X, start.Y, start.Theta), geom.NewPose(end.X, end.Y, end.Theta)

	var out []Path
	for _, f := range Families() {
		if p, ok := Compute(f, start, end, r); ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func validate(start, end geom.Pose, r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return fmt.Errorf("%w: min_radius must be positive, got %v", ErrInvalidParameter, r)
	}
	if !start.Finite() {
		return fmt.Errorf("%w: start pose has non-finite components", ErrInvalidParameter)
	}
	if !end.Finite() {
		return fmt.Errorf("%w: end pose has non-finite components", ErrInvalidParameter)
	}
	return nil
}

func samePose(a, b geom.Pose) bool {
	return a.Point().Dist(b.Point()) < poseEps &&
		math.Abs(geom.NormalizeAngle(a.Theta-b.Theta)) < poseEps
}

// zeroPath is the identical-pose special case. The family formulas wrap a
// zero sweep to a full 2π turn, so the zero-length path is constructed
// directly: three empty segments anchored at the pose, tagged LSL.
func zeroPath(p geom.Pose, r float64) Path {
	c := geom.TurningCircle(p, r, geom.CCW)
	a := p.Point().Sub(c.Center).Angle()
	arc := geom.Arc{Center: c.Center, Radius: r, StartAngle: a, EndAngle: a, Direction: geom.CCW}
	line := geom.Line{Start: p.Point(), End: p.Point()}
	return Path{
		Family:      LSL,
		Segments:    []geom.Segment{arc, line, arc},
		TotalLength: 0,
		Start:       p,
		End:         p,
	}
}

func fallbackPath(start, end geom.Pose) Path {
	line := geom.Line{Start: start.Point(), End: end.Point()}
	return Path{
		Family:      Degenerate,
		Segments:    []geom.Segment{line},
		TotalLength: line.Length(),
		Start:       start,
		End:         end,
		Degenerate:  true,
	}
}
