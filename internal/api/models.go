package api

import (
	"github.com/TilinHub/Knots/internal/dubins"
	"github.com/TilinHub/Knots/internal/envelope"
	"github.com/TilinHub/Knots/internal/geom"
)

// PoseJSON is the wire form of a 2D pose.
type PoseJSON struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Theta float64 `json:"theta"`
}

func toPose(p PoseJSON) geom.Pose { return geom.Pose{X: p.X, Y: p.Y, Theta: p.Theta} }

func fromPose(p geom.Pose) PoseJSON { return PoseJSON{X: p.X, Y: p.Y, Theta: p.Theta} }

// SegmentJSON is the wire form of one path segment. Arc fields are omitted
// for straight segments.
type SegmentJSON struct {
	Type       string    `json:"type"` // arc_left, arc_right, or line
	Length     float64   `json:"length"`
	StartPoint PoseJSON  `json:"start_point"`
	EndPoint   PoseJSON  `json:"end_point"`
	Center     *PoseJSON `json:"center,omitempty"`
	Radius     *float64  `json:"radius,omitempty"`
	StartAngle *float64  `json:"start_angle,omitempty"`
	EndAngle   *float64  `json:"end_angle,omitempty"`
}

// PathJSON is the wire form of a synthesized path.
type PathJSON struct {
	PathType    string        `json:"path_type"`
	Segments    []SegmentJSON `json:"segments"`
	TotalLength float64       `json:"total_length"`
	StartPose   PoseJSON      `json:"start_pose"`
	EndPose     PoseJSON      `json:"end_pose"`
	Degenerate  bool          `json:"degenerate,omitempty"`
}

// DubinsRequest asks for the optimal path between two poses.
type DubinsRequest struct {
	StartPose  PoseJSON `json:"start_pose"`
	EndPose    PoseJSON `json:"end_pose"`
	MinRadius  float64  `json:"min_radius"`
	ComputeAll bool     `json:"compute_all"`
}

// DubinsResponse carries the optimal path and, when requested, every
// feasible family.
type DubinsResponse struct {
	OptimalPath       PathJSON   `json:"optimal_path"`
	AllPaths          []PathJSON `json:"all_paths,omitempty"`
	ComputationTimeMs float64    `json:"computation_time_ms"`
	ComputationID     string     `json:"computation_id"`
}

// DiskJSON is the wire form of a disk.
type DiskJSON struct {
	Center PoseJSON `json:"center"`
	Radius float64  `json:"radius"`
}

// EnvelopeRequest asks for the convex envelope of a disk set. A nil
// smoothing factor selects the configured default.
type EnvelopeRequest struct {
	Disks           []DiskJSON `json:"disks"`
	SmoothingFactor *float64   `json:"smoothing_factor"`
}

// EnvelopePointJSON is the wire form of a hull vertex.
type EnvelopePointJSON struct {
	X            float64  `json:"x"`
	Y            float64  `json:"y"`
	TangentAngle *float64 `json:"tangent_angle,omitempty"`
}

// EnvelopeResponse carries the hull, index mapping, and smoothed curve.
type EnvelopeResponse struct {
	EnvelopePoints    []EnvelopePointJSON `json:"envelope_points"`
	ConvexHullIndices []int               `json:"convex_hull_indices"`
	SmoothedCurve     []PoseJSON          `json:"smoothed_curve"`
	ComputationTimeMs float64             `json:"computation_time_ms"`
	ComputationID     string              `json:"computation_id"`
}

func fromSegment(s geom.Segment) SegmentJSON {
	out := SegmentJSON{
		Length:     s.Length(),
		StartPoint: fromPose(s.StartPose()),
		EndPoint:   fromPose(s.EndPose()),
	}
	switch seg := s.(type) {
	case geom.Arc:
		if seg.Direction == geom.CCW {
			out.Type = "arc_left"
		} else {
			out.Type = "arc_right"
		}
		center := PoseJSON{X: seg.Center.X, Y: seg.Center.Y}
		radius := seg.Radius
		sa := seg.StartAngle
		ea := seg.EndAngle
		out.Center = &center
		out.Radius = &radius
		out.StartAngle = &sa
		out.EndAngle = &ea
	default:
		out.Type = "line"
	}
	return out
}

func fromPath(p dubins.Path) PathJSON {
	segs := make([]SegmentJSON, 0, len(p.Segments))
	for _, s := range p.Segments {
		segs = append(segs, fromSegment(s))
	}
	return PathJSON{
		PathType:    string(p.Family),
		Segments:    segs,
		TotalLength: p.TotalLength,
		StartPose:   fromPose(p.Start),
		EndPose:     fromPose(p.End),
		Degenerate:  p.Degenerate,
	}
}

func fromEnvelope(res envelope.Result) ([]EnvelopePointJSON, []int, []PoseJSON) {
	pts := make([]EnvelopePointJSON, 0, len(res.Points))
	for _, p := range res.Points {
		pts = append(pts, EnvelopePointJSON{X: p.X, Y: p.Y, TangentAngle: p.TangentAngle})
	}
	indices := res.Indices
	if indices == nil {
		indices = []int{}
	}
	curve := make([]PoseJSON, 0, len(res.Curve))
	for _, p := range res.Curve {
		curve = append(curve, fromPose(p))
	}
	return pts, indices, curve
}
