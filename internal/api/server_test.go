package api

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/TilinHub/Knots/internal/config"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewServer(config.Default()).ServeMux())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, buf.Bytes()
}

func TestHealth(t *testing.T) {
	srv := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %q", body["status"])
	}
}

func TestDubinsCompute(t *testing.T) {
	srv := setupTestServer(t)

	resp, body := postJSON(t, srv.URL+"/api/dubins/compute", `{
		"start_pose": {"x": 0, "y": 0, "theta": 0},
		"end_pose": {"x": 0, "y": 4, "theta": 0},
		"min_radius": 1
	}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}

	var out DubinsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if out.OptimalPath.PathType != "LRL" {
		t.Errorf("path_type = %q, want LRL", out.OptimalPath.PathType)
	}
	if math.Abs(out.OptimalPath.TotalLength-2*math.Pi) > 1e-6 {
		t.Errorf("total_length = %v, want 2pi", out.OptimalPath.TotalLength)
	}
	if len(out.OptimalPath.Segments) != 3 {
		t.Errorf("segments = %d, want 3", len(out.OptimalPath.Segments))
	}
	if out.OptimalPath.Degenerate {
		t.Error("optimal path must not be degenerate")
	}
	if !strings.HasPrefix(out.ComputationID, "cmp_") {
		t.Errorf("computation_id = %q", out.ComputationID)
	}
	if out.AllPaths != nil {
		t.Error("all_paths present without compute_all")
	}
}

func TestDubinsComputeAll(t *testing.T) {
	srv := setupTestServer(t)

	resp, body := postJSON(t, srv.URL+"/api/dubins/compute", `{
		"start_pose": {"x": 0, "y": 0, "theta": 0},
		"end_pose": {"x": 0, "y": 4, "theta": 0},
		"min_radius": 1,
		"compute_all": true
	}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}

	var out DubinsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatal(err)
	}
	if len(out.AllPaths) == 0 {
		t.Fatal("all_paths empty")
	}

	var families []string
	for _, p := range out.AllPaths {
		families = append(families, p.PathType)
	}
	// lexicographically ordered, no duplicates
	for i := 1; i < len(families); i++ {
		if families[i-1] >= families[i] {
			t.Errorf("families out of order: %v", families)
		}
	}
}

func TestDubinsComputeRejectsBadInput(t *testing.T) {
	srv := setupTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"zero radius", `{"start_pose":{"x":0,"y":0,"theta":0},"end_pose":{"x":1,"y":1,"theta":0},"min_radius":0}`},
		{"negative radius", `{"start_pose":{"x":0,"y":0,"theta":0},"end_pose":{"x":1,"y":1,"theta":0},"min_radius":-2}`},
		{"malformed json", `{"start_pose":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := postJSON(t, srv.URL+"/api/dubins/compute", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestDubinsComputeMethodGuard(t *testing.T) {
	srv := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/api/dubins/compute")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestEnvelopeCompute(t *testing.T) {
	srv := setupTestServer(t)

	resp, body := postJSON(t, srv.URL+"/api/envelope/compute", `{
		"disks": [
			{"center": {"x": 0, "y": 0}, "radius": 1},
			{"center": {"x": 4, "y": 0}, "radius": 1},
			{"center": {"x": 0, "y": 4}, "radius": 1}
		],
		"smoothing_factor": 0.8
	}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}

	var out EnvelopeResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]int{0, 1, 2}, out.ConvexHullIndices); diff != "" {
		t.Errorf("hull indices mismatch (-want +got):\n%s", diff)
	}
	if len(out.SmoothedCurve) == 0 {
		t.Error("smoothed_curve empty")
	}
	first := out.SmoothedCurve[0]
	last := out.SmoothedCurve[len(out.SmoothedCurve)-1]
	if math.Abs(first.X-last.X) > 1e-9 || math.Abs(first.Y-last.Y) > 1e-9 {
		t.Error("smoothed_curve does not close")
	}
}

func TestEnvelopeComputeDefaultsSmoothing(t *testing.T) {
	srv := setupTestServer(t)

	// omitted smoothing_factor uses the configured default rather than 0
	resp, body := postJSON(t, srv.URL+"/api/envelope/compute", `{
		"disks": [
			{"center": {"x": 0, "y": 0}, "radius": 1},
			{"center": {"x": 4, "y": 0}, "radius": 1},
			{"center": {"x": 0, "y": 4}, "radius": 1}
		]
	}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	var out EnvelopeResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatal(err)
	}
	if len(out.SmoothedCurve) == 0 {
		t.Error("smoothed_curve empty")
	}
}

func TestEnvelopeComputeRejectsBadInput(t *testing.T) {
	srv := setupTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"smoothing above one", `{"disks":[{"center":{"x":0,"y":0},"radius":1}],"smoothing_factor":2}`},
		{"negative smoothing", `{"disks":[{"center":{"x":0,"y":0},"radius":1}],"smoothing_factor":-1}`},
		{"negative disk radius", `{"disks":[{"center":{"x":0,"y":0},"radius":-1}],"smoothing_factor":0.5}`},
		{"malformed json", `{"disks":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := postJSON(t, srv.URL+"/api/envelope/compute", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestEnvelopeComputeDiskLimit(t *testing.T) {
	cfg := config.Default()
	cfg.MaxDisks = 2
	srv := httptest.NewServer(NewServer(cfg).ServeMux())
	defer srv.Close()

	resp, _ := postJSON(t, srv.URL+"/api/envelope/compute", `{
		"disks": [
			{"center": {"x": 0, "y": 0}, "radius": 1},
			{"center": {"x": 1, "y": 0}, "radius": 1},
			{"center": {"x": 2, "y": 0}, "radius": 1}
		]
	}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestDubinsInfo(t *testing.T) {
	srv := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/api/dubins/info")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var out struct {
		PathTypes []struct {
			Name string `json:"name"`
		} `json:"path_types"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out.PathTypes) != 6 {
		t.Errorf("path_types = %d, want 6", len(out.PathTypes))
	}
}

func TestDubinsPlot(t *testing.T) {
	srv := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/api/dubins/plot?sx=0&sy=0&stheta=0&ex=4&ey=4&etheta=1.5&radius=1")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}

	resp2, err := http.Get(srv.URL + "/api/dubins/plot?radius=abc")
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp2.StatusCode)
	}
}
