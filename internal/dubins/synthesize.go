package dubins

import (
	"math"

	"github.com/TilinHub/Knots/internal/geom"
)

// Compute synthesizes the path of a single family between two poses with
// minimum turning radius r. It reports false when the family cannot connect
// the poses, which is a normal outcome for roughly half of all queries.
//
// Preconditions (r > 0, finite poses) are the caller's responsibility;
// ShortestPath and AllPaths validate them once per query.
func Compute(f Family, start, end geom.Pose, r float64) (Path, bool) {
	if f.threeArc() {
		return computeCCC(f, start, end, r)
	}
	return computeCSC(f, start, end, r)
}

// computeCSC builds the four circle-straight-circle words. The two turning
// circles are joined by the external tangent when the turn directions match
// (LSL, RSR) and by the internal tangent when they differ (LSR, RSL).
func computeCSC(f Family, start, end geom.Pose, r float64) (Path, bool) {
	t1, _, t2 := f.turns()
	c1 := geom.TurningCircle(start, r, t1)
	c2 := geom.TurningCircle(end, r, t2)
	d := c1.Center.Dist(c2.Center)
	bearing := c2.Center.Sub(c1.Center).Angle()

	// Heading of the connecting tangent line. Same-direction circles take
	// the external tangent, which for equal radii is parallel to the
	// center line and exists for any d >= 0. Opposite-direction circles
	// take the internal tangent, which requires the circles not to
	// overlap: d >= 2r.
	var heading float64
	if t1 == t2 {
		heading = bearing
	} else {
		if d < 2*r-geom.Eps {
			return Path{}, false
		}
		if d < geom.Eps {
			return Path{}, false
		}
		s := 2 * r / d
		if s > 1 {
			s = 1
		}
		if t1 == geom.CCW {
			heading = bearing + math.Asin(s)
		} else {
			heading = bearing - math.Asin(s)
		}
	}

	a1 := tangentPointAngle(heading, t1)
	a2 := tangentPointAngle(heading, t2)

	arcIn := geom.Arc{
		Center:     c1.Center,
		Radius:     r,
		StartAngle: start.Point().Sub(c1.Center).Angle(),
		EndAngle:   a1,
		Direction:  t1,
	}
	line := geom.Line{Start: c1.PointAt(a1), End: c2.PointAt(a2)}
	arcOut := geom.Arc{
		Center:     c2.Center,
		Radius:     r,
		StartAngle: a2,
		EndAngle:   end.Point().Sub(c2.Center).Angle(),
		Direction:  t2,
	}
	return newPath(f, start, end, arcIn, line, arcOut)
}

// tangentPointAngle returns the position angle on a turning circle at which
// a vehicle traveling in direction t has the given heading.
func tangentPointAngle(heading float64, t geom.Turn) float64 {
	if t == geom.CCW {
		return heading - math.Pi/2
	}
	return heading + math.Pi/2
}

// computeCCC builds the two three-arc words. A middle circle of radius r
// must be externally tangent to both outer turning circles, so its center
// lies at distance 2r from each; that requires the outer centers to be at
// most 4r apart. The circle-circle intersection yields two candidate middle
// centers in general; both give valid paths and the shorter one is kept.
// At d = 4r the candidates coincide.
func computeCCC(f Family, start, end geom.Pose, r float64) (Path, bool) {
	outer, inner, _ := f.turns()
	c1 := geom.TurningCircle(start, r, outer)
	c3 := geom.TurningCircle(end, r, outer)
	d := c1.Center.Dist(c3.Center)
	if d > 4*r+geom.Eps {
		return Path{}, false
	}

	m1, m2, ok := geom.Circle{Center: c1.Center, Radius: 2 * r}.
		Intersect(geom.Circle{Center: c3.Center, Radius: 2 * r})
	if !ok {
		// Coincident outer centers leave the middle circle unconstrained;
		// treat as infeasible and let the CSC families cover the query.
		return Path{}, false
	}

	best, okBest := cccCandidate(f, start, end, r, c1, c3, m1, outer, inner)
	if alt, okAlt := cccCandidate(f, start, end, r, c1, c3, m2, outer, inner); okAlt {
		if !okBest || alt.TotalLength < best.TotalLength {
			best, okBest = alt, true
		}
	}
	return best, okBest
}

func cccCandidate(f Family, start, end geom.Pose, r float64, c1, c3 geom.Circle, mid geom.Point, outer, inner geom.Turn) (Path, bool) {
	// Position angles of the middle center as seen from each outer center.
	psi1 := mid.Sub(c1.Center).Angle()
	psi2 := c3.Center.Sub(mid).Angle()

	arcIn := geom.Arc{
		Center:     c1.Center,
		Radius:     r,
		StartAngle: start.Point().Sub(c1.Center).Angle(),
		EndAngle:   psi1,
		Direction:  outer,
	}
	// Touch points sit midway between tangent centers: the entry point is
	// at angle psi1+π around mid (toward c1), the exit point at angle
	// psi2 (toward c3).
	arcMid := geom.Arc{
		Center:     mid,
		Radius:     r,
		StartAngle: geom.NormalizeAngle(psi1 + math.Pi),
		EndAngle:   psi2,
		Direction:  inner,
	}
	arcOut := geom.Arc{
		Center:     c3.Center,
		Radius:     r,
		StartAngle: geom.NormalizeAngle(psi2 + math.Pi),
		EndAngle:   end.Point().Sub(c3.Center).Angle(),
		Direction:  outer,
	}
	return newPath(f, start, end, arcIn, arcMid, arcOut)
}
