package dubins

import (
	"errors"
	"math"

	"github.com/TilinHub/Knots/internal/geom"
)

// ErrInvalidParameter reports a malformed query: non-positive or non-finite
// turning radius, or a pose with non-finite components.
var ErrInvalidParameter = errors.New("dubins: invalid parameter")

// Family names one of the six Dubins words, e.g. "LSL" is
// left-straight-left.
type Family string

const (
	LSL Family = "LSL"
	RSR Family = "RSR"
	LSR Family = "LSR"
	RSL Family = "RSL"
	LRL Family = "LRL"
	RLR Family = "RLR"

	// Degenerate tags the straight-line fallback path returned when no
	// family is feasible. It is not a real bounded-curvature word.
	Degenerate Family = "degenerate"
)

// Families returns the six path families in lexicographic order, which is
// also the selector's tie-break order.
func Families() []Family {
	return []Family{LRL, LSL, LSR, RLR, RSL, RSR}
}

// turns returns the turn direction of each of the three segments. The
// middle entry is meaningful only for the three-arc families.
func (f Family) turns() (first, middle, last geom.Turn) {
	switch f {
	case LSL:
		return geom.CCW, 0, geom.CCW
	case RSR:
		return geom.CW, 0, geom.CW
	case LSR:
		return geom.CCW, 0, geom.CW
	case RSL:
		return geom.CW, 0, geom.CCW
	case LRL:
		return geom.CCW, geom.CW, geom.CCW
	default: // RLR
		return geom.CW, geom.CCW, geom.CW
	}
}

func (f Family) threeArc() bool {
	return f == LRL || f == RLR
}

// Path is a fully parametrized three-segment path connecting Start to End.
// Segments are contiguous: each segment begins at the pose where the
// previous one ends, the first begins at Start, and the last ends at End.
type Path struct {
	Family      Family
	Segments    []geom.Segment
	TotalLength float64
	Start       geom.Pose
	End         geom.Pose

	// Degenerate is set only on the straight-line fallback, which does not
	// honor the turning-radius constraint.
	Degenerate bool
}

// Sample returns poses along the whole path, samplesPerSegment per segment.
func (p Path) Sample(samplesPerSegment int) []geom.Pose {
	var out []geom.Pose
	for _, s := range p.Segments {
		out = append(out, s.Sample(samplesPerSegment)...)
	}
	return out
}

func newPath(f Family, start, end geom.Pose, segs ...geom.Segment) (Path, bool) {
	total := 0.0
	for _, s := range segs {
		total += s.Length()
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return Path{}, false
	}
	return Path{
		Family:      f,
		Segments:    segs,
		TotalLength: total,
		Start:       start,
		End:         end,
	}, true
}
