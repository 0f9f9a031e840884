// Command path-plot renders a Dubins path, and optionally a disk envelope,
// to a PNG. It exists so kernel output can be inspected without running the
// HTTP server.
//
// Usage:
//
//	path-plot -start 0,0,0 -end 0,4,0 -radius 1 -out path.png
//	path-plot -disks "0,0,1;4,0,1;0,4,1" -smoothing 0.8 -out envelope.png
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/TilinHub/Knots/internal/dubins"
	"github.com/TilinHub/Knots/internal/envelope"
	"github.com/TilinHub/Knots/internal/geom"
)

var (
	startFlag     = flag.String("start", "0,0,0", "Start pose as x,y,theta")
	endFlag       = flag.String("end", "4,4,1.5708", "End pose as x,y,theta")
	radiusFlag    = flag.Float64("radius", 1.0, "Minimum turning radius")
	allFlag       = flag.Bool("all", false, "Plot every feasible family, not just the optimum")
	disksFlag     = flag.String("disks", "", "Optional disks as x,y,r;x,y,r;...")
	smoothingFlag = flag.Float64("smoothing", 0.8, "Envelope smoothing factor in [0,1]")
	outFlag       = flag.String("out", "path.png", "Output PNG file")
)

const samplesPerSegment = 64

func parsePose(s string) (geom.Pose, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geom.Pose{}, fmt.Errorf("expected x,y,theta, got %q", s)
	}
	var vals [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geom.Pose{}, fmt.Errorf("bad component %q: %w", p, err)
		}
		vals[i] = v
	}
	return geom.Pose{X: vals[0], Y: vals[1], Theta: vals[2]}, nil
}

func parseDisks(s string) ([]envelope.Disk, error) {
	if s == "" {
		return nil, nil
	}
	var out []envelope.Disk
	for _, part := range strings.Split(s, ";") {
		fields := strings.Split(part, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("expected x,y,r, got %q", part)
		}
		var vals [3]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("bad component %q: %w", f, err)
			}
			vals[i] = v
		}
		out = append(out, envelope.Disk{Center: geom.Point{X: vals[0], Y: vals[1]}, Radius: vals[2]})
	}
	return out, nil
}

func poseLine(poses []geom.Pose) plotter.XYs {
	pts := make(plotter.XYs, len(poses))
	for i, p := range poses {
		pts[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return pts
}

func addPath(p *plot.Plot, path dubins.Path, c color.Color) error {
	line, err := plotter.NewLine(poseLine(path.Sample(samplesPerSegment)))
	if err != nil {
		return err
	}
	line.Color = c
	line.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("%s (%.3f)", path.Family, path.TotalLength), line)
	return nil
}

func familyColors(n int) []color.Color {
	colors := make([]color.Color, n)
	for i := range colors {
		hue := float64(i) / float64(n)
		colors[i] = color.RGBA{
			R: uint8(127 + 127*hue),
			G: uint8(200 - 150*hue),
			B: uint8(60 + 180*hue),
			A: 255,
		}
	}
	return colors
}

func main() {
	flag.Parse()

	start, err := parsePose(*startFlag)
	if err != nil {
		log.Fatalf("invalid -start: %v", err)
	}
	end, err := parsePose(*endFlag)
	if err != nil {
		log.Fatalf("invalid -end: %v", err)
	}
	disks, err := parseDisks(*disksFlag)
	if err != nil {
		log.Fatalf("invalid -disks: %v", err)
	}

	p := plot.New()
	p.Title.Text = "Knots geometry kernel"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.Legend.Top = true

	if *allFlag {
		paths, err := dubins.AllPaths(start, end, *radiusFlag)
		if err != nil {
			log.Fatalf("path synthesis failed: %v", err)
		}
		colors := familyColors(len(paths))
		for i, path := range paths {
			if err := addPath(p, path, colors[i]); err != nil {
				log.Fatalf("plot path: %v", err)
			}
		}
		log.Printf("plotted %d feasible families", len(paths))
	} else {
		path, err := dubins.ShortestPath(start, end, *radiusFlag)
		if err != nil {
			log.Fatalf("path synthesis failed: %v", err)
		}
		if err := addPath(p, path, color.RGBA{R: 230, G: 90, B: 40, A: 255}); err != nil {
			log.Fatalf("plot path: %v", err)
		}
		log.Printf("optimal family %s, length %.6f", path.Family, path.TotalLength)
	}

	if len(disks) > 0 {
		res, err := envelope.Compute(disks, *smoothingFlag)
		if err != nil {
			log.Fatalf("envelope computation failed: %v", err)
		}

		centers := make(plotter.XYs, len(disks))
		for i, d := range disks {
			centers[i] = plotter.XY{X: d.Center.X, Y: d.Center.Y}
		}
		scatter, err := plotter.NewScatter(centers)
		if err != nil {
			log.Fatalf("plot disks: %v", err)
		}
		p.Add(scatter)
		p.Legend.Add("disk centers", scatter)

		if len(res.Curve) > 0 {
			curve, err := plotter.NewLine(poseLine(res.Curve))
			if err != nil {
				log.Fatalf("plot envelope: %v", err)
			}
			curve.Color = color.RGBA{R: 60, G: 120, B: 220, A: 255}
			curve.Width = vg.Points(1)
			p.Add(curve)
			p.Legend.Add("envelope", curve)
		}
		log.Printf("envelope hull has %d vertices", len(res.Indices))
	}

	if err := p.Save(8*vg.Inch, 8*vg.Inch, *outFlag); err != nil {
		log.Fatalf("save plot: %v", err)
	}
	log.Printf("wrote %s", *outFlag)
}
