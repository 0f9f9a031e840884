package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/TilinHub/Knots/internal/dubins"
	"github.com/TilinHub/Knots/internal/geom"
	"github.com/TilinHub/Knots/internal/httputil"
)

const plotSamplesPerSegment = 48

// handleDubinsPlot renders a quick HTML chart of the optimal path between
// two poses. This is a debugging endpoint for inspecting geometry without a
// frontend. Query params: sx, sy, stheta, ex, ey, etheta, radius.
func (s *Server) handleDubinsPlot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	q := r.URL.Query()
	parse := func(name string, def float64) (float64, error) {
		v := q.Get(name)
		if v == "" {
			return def, nil
		}
		return strconv.ParseFloat(v, 64)
	}

	var err error
	var sx, sy, stheta, ex, ey, etheta, radius float64
	for _, p := range []struct {
		dst  *float64
		name string
		def  float64
	}{
		{&sx, "sx", 0}, {&sy, "sy", 0}, {&stheta, "stheta", 0},
		{&ex, "ex", 4}, {&ey, "ey", 4}, {&etheta, "etheta", 0},
		{&radius, "radius", 1},
	} {
		if *p.dst, err = parse(p.name, p.def); err != nil {
			httputil.BadRequest(w, fmt.Sprintf("invalid %s: %v", p.name, err))
			return
		}
	}

	path, err := dubins.ShortestPath(geom.Pose{X: sx, Y: sy, Theta: stheta}, geom.Pose{X: ex, Y: ey, Theta: etheta}, radius)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}

	poses := path.Sample(plotSamplesPerSegment)
	data := make([]opts.LineData, 0, len(poses))
	minC, maxC := poses[0].X, poses[0].X
	for _, p := range poses {
		data = append(data, opts.LineData{Value: []interface{}{p.X, p.Y}})
		for _, v := range []float64{p.X, p.Y} {
			if v < minC {
				minC = v
			}
			if v > maxC {
				maxC = v
			}
		}
	}
	pad := (maxC - minC) * 0.1
	if pad == 0 {
		pad = 1.0
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Dubins Path", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Dubins %s (length %.4f)", path.Family, path.TotalLength),
			Subtitle: fmt.Sprintf("start=(%.2f, %.2f, %.2f) end=(%.2f, %.2f, %.2f) R=%.2f", sx, sy, stheta, ex, ey, etheta, radius),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: minC - pad, Max: maxC + pad, Name: "X"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: minC - pad, Max: maxC + pad, Name: "Y"}),
	)
	line.AddSeries("path", data, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}))

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("failed to render chart: %v", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
