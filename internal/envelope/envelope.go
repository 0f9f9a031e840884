package envelope

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/TilinHub/Knots/internal/geom"
)

// ErrInvalidParameter reports a malformed query: an out-of-range smoothing
// factor, or disk data with non-finite or negative components.
var ErrInvalidParameter = errors.New("envelope: invalid parameter")

// DefaultSamplesPerEdge is the smoothed-curve sampling density used by
// Compute. ComputeSampled accepts an explicit density.
const DefaultSamplesPerEdge = 16

// Disk is a disk in the plane. The radius is validated but does not affect
// hull geometry; the envelope is computed over centers.
type Disk struct {
	Center geom.Point
	Radius float64
}

// EnvelopePoint is a vertex of the computed hull. TangentAngle, when set,
// is the direction of the hull boundary leaving this vertex; it is nil for
// degenerate hulls of fewer than three vertices.
type EnvelopePoint struct {
	X            float64
	Y            float64
	TangentAngle *float64
}

// Result is the envelope of a disk set. Points are in counter-clockwise
// order and Indices[i] is the position of Points[i] in the input slice.
// Curve is the smoothed closed boundary, empty when the hull has fewer
// than three vertices.
type Result struct {
	Points  []EnvelopePoint
	Indices []int
	Curve   []geom.Pose
}

// Compute returns the convex envelope of the disks. smoothing selects the
// curve fit: 0 is the hull polygon itself, 1 is the maximally smoothed
// periodic spline, values between blend the two.
func Compute(disks []Disk, smoothing float64) (Result, error) {
	return ComputeSampled(disks, smoothing, DefaultSamplesPerEdge)
}

// ComputeSampled is Compute with an explicit smoothed-curve sampling
// density per hull edge.
func ComputeSampled(disks []Disk, smoothing float64, samplesPerEdge int) (Result, error) {
	if math.IsNaN(smoothing) || smoothing < 0 || smoothing > 1 {
		return Result{}, fmt.Errorf("%w: smoothing_factor must be in [0,1], got %v", ErrInvalidParameter, smoothing)
	}
	for i, d := range disks {
		if !d.Center.Finite() {
			return Result{}, fmt.Errorf("%w: disk %d has non-finite center", ErrInvalidParameter, i)
		}
		if math.IsNaN(d.Radius) || d.Radius < 0 {
			return Result{}, fmt.Errorf("%w: disk %d has negative radius", ErrInvalidParameter, i)
		}
	}
	if samplesPerEdge < 2 {
		samplesPerEdge = 2
	}

	centers := make([]geom.Point, len(disks))
	for i, d := range disks {
		centers[i] = d.Center
	}
	idx := hullIndices(centers)

	res := Result{
		Points:  make([]EnvelopePoint, 0, len(idx)),
		Indices: idx,
	}
	for k, i := range idx {
		ep := EnvelopePoint{X: centers[i].X, Y: centers[i].Y}
		if len(idx) >= 3 {
			next := centers[idx[(k+1)%len(idx)]]
			a := next.Sub(centers[i]).Angle()
			ep.TangentAngle = &a
		}
		res.Points = append(res.Points, ep)
	}

	if len(idx) >= 3 {
		verts := make([]geom.Point, len(idx))
		for k, i := range idx {
			verts[k] = centers[i]
		}
		res.Curve = smoothClosed(verts, smoothing, samplesPerEdge)
	}
	return res, nil
}

// hullIndices returns the indices of the convex hull vertices of pts in
// counter-clockwise order, starting from the leftmost-lowest point. It is
// Andrew's monotone chain: sort, then build the lower and upper chains with
// a cross-product turn test. Collinear points are dropped, so a fully
// collinear input reduces to its two extremes. Runs in O(n log n).
func hullIndices(pts []geom.Point) []int {
	n := len(pts)
	switch n {
	case 0:
		return nil
	case 1:
		return []int{0}
	case 2:
		if pts[0] == pts[1] {
			return []int{0}
		}
		return []int{0, 1}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	// Sort by (x, y), index as the final key so duplicate points resolve
	// to the earliest input position and repeated calls are identical.
	sort.Slice(order, func(a, b int) bool {
		pa, pb := pts[order[a]], pts[order[b]]
		if pa.X != pb.X {
			return pa.X < pb.X
		}
		if pa.Y != pb.Y {
			return pa.Y < pb.Y
		}
		return order[a] < order[b]
	})

	// Drop exact duplicates, keeping the first input index.
	uniq := order[:0]
	for _, i := range order {
		if len(uniq) > 0 && pts[uniq[len(uniq)-1]] == pts[i] {
			continue
		}
		uniq = append(uniq, i)
	}
	if len(uniq) == 1 {
		return []int{uniq[0]}
	}
	if len(uniq) == 2 {
		return []int{uniq[0], uniq[1]}
	}

	build := func(seq []int) []int {
		var chain []int
		for _, i := range seq {
			for len(chain) >= 2 &&
				geom.Cross(pts[chain[len(chain)-2]], pts[chain[len(chain)-1]], pts[i]) <= 0 {
				chain = chain[:len(chain)-1]
			}
			chain = append(chain, i)
		}
		return chain
	}

	lower := build(uniq)
	rev := make([]int, len(uniq))
	for k, i := range uniq {
		rev[len(uniq)-1-k] = i
	}
	upper := build(rev)

	// Each chain ends where the other begins; drop the duplicated
	// endpoints when joining.
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return hull
}
