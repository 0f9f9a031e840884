package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/TilinHub/Knots/internal/dubins"
	"github.com/TilinHub/Knots/internal/envelope"
	"github.com/TilinHub/Knots/internal/geom"
	"github.com/TilinHub/Knots/internal/httputil"
	"github.com/TilinHub/Knots/internal/version"
)

func computationID() string {
	return "cmp_" + uuid.NewString()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": version.Version,
	})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"name":       "Knots geometry kernel",
		"version":    version.Version,
		"git_sha":    version.GitSHA,
		"build_time": version.BuildTime,
		"features": []string{
			"Dubins path synthesis (6 families)",
			"Convex envelope computation",
		},
	})
}

func (s *Server) handleDubinsCompute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}
	var req DubinsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.BadRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	started := time.Now()
	optimal, err := dubins.ShortestPath(toPose(req.StartPose), toPose(req.EndPose), req.MinRadius)
	if err != nil {
		if errors.Is(err, dubins.ErrInvalidParameter) {
			httputil.BadRequest(w, err.Error())
			return
		}
		httputil.InternalServerError(w, "path computation failed")
		return
	}

	resp := DubinsResponse{
		OptimalPath:   fromPath(optimal),
		ComputationID: computationID(),
	}
	if req.ComputeAll {
		all, err := dubins.AllPaths(toPose(req.StartPose), toPose(req.EndPose), req.MinRadius)
		if err != nil {
			httputil.InternalServerError(w, "path computation failed")
			return
		}
		resp.AllPaths = make([]PathJSON, 0, len(all))
		for _, p := range all {
			resp.AllPaths = append(resp.AllPaths, fromPath(p))
		}
	}
	resp.ComputationTimeMs = float64(time.Since(started).Nanoseconds()) / 1e6
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDubinsInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	type familyInfo struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"path_types": []familyInfo{
			{Name: "LSL", Description: "Left-Straight-Left"},
			{Name: "RSR", Description: "Right-Straight-Right"},
			{Name: "LSR", Description: "Left-Straight-Right"},
			{Name: "RSL", Description: "Right-Straight-Left"},
			{Name: "LRL", Description: "Left-Right-Left"},
			{Name: "RLR", Description: "Right-Left-Right"},
		},
		"reference": "Diaz, A., & Ayala, L. (2020). Census of bounded curvature paths.",
	})
}

func (s *Server) handleEnvelopeCompute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}
	var req EnvelopeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.BadRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if len(req.Disks) > s.cfg.MaxDisks {
		httputil.BadRequest(w, fmt.Sprintf("too many disks: %d (max %d)", len(req.Disks), s.cfg.MaxDisks))
		return
	}

	smoothing := s.cfg.DefaultSmoothingFactor
	if req.SmoothingFactor != nil {
		smoothing = *req.SmoothingFactor
	}
	disks := make([]envelope.Disk, 0, len(req.Disks))
	for _, d := range req.Disks {
		disks = append(disks, envelope.Disk{
			Center: geom.Point{X: d.Center.X, Y: d.Center.Y},
			Radius: d.Radius,
		})
	}

	started := time.Now()
	res, err := envelope.ComputeSampled(disks, smoothing, s.cfg.CurveSamplesPerEdge)
	if err != nil {
		if errors.Is(err, envelope.ErrInvalidParameter) {
			httputil.BadRequest(w, err.Error())
			return
		}
		httputil.InternalServerError(w, "envelope computation failed")
		return
	}

	pts, indices, curve := fromEnvelope(res)
	httputil.WriteJSON(w, http.StatusOK, EnvelopeResponse{
		EnvelopePoints:    pts,
		ConvexHullIndices: indices,
		SmoothedCurve:     curve,
		ComputationTimeMs: float64(time.Since(started).Nanoseconds()) / 1e6,
		ComputationID:     computationID(),
	})
}
