package envelope

import (
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/TilinHub/Knots/internal/geom"
)

// wrapPad is how many vertices are repeated on each side of the ring before
// spline fitting, so the fitted curve is periodic across the seam.
const wrapPad = 3

// smoothClosed fits a closed curve through the hull vertices. The curve is
// parametrized by cumulative chord length; each coordinate is interpolated
// with a natural cubic spline over a wrapped copy of the vertex ring, and
// every sample blends the polygon position with the spline position by the
// smoothing factor. factor 0 therefore returns the sampled polygon and
// factor 1 the pure spline.
//
// The returned poses carry tangent headings and close on themselves:
// the final pose position coincides with the first.
func smoothClosed(verts []geom.Point, factor float64, samplesPerEdge int) []geom.Pose {
	n := len(verts)
	if n < 3 {
		return nil
	}

	// Chord-length parameter over the closed ring, wrapPad vertices of
	// context on both sides.
	ext := make([]geom.Point, 0, n+2*wrapPad+1)
	for i := -wrapPad; i <= n+wrapPad; i++ {
		ext = append(ext, verts[((i%n)+n)%n])
	}
	ts := make([]float64, len(ext))
	for i := 1; i < len(ext); i++ {
		d := ext[i-1].Dist(ext[i])
		if d < geom.Eps {
			d = geom.Eps // keep the parameter strictly increasing
		}
		ts[i] = ts[i-1] + d
	}

	xs := make([]float64, len(ext))
	ys := make([]float64, len(ext))
	for i, p := range ext {
		xs[i] = p.X
		ys[i] = p.Y
	}
	var cx, cy interp.NaturalCubic
	if err := cx.Fit(ts, xs); err != nil {
		return samplePolygon(verts, samplesPerEdge)
	}
	if err := cy.Fit(ts, ys); err != nil {
		return samplePolygon(verts, samplesPerEdge)
	}

	// The core ring spans ts[wrapPad] .. ts[wrapPad+n].
	t0 := ts[wrapPad]
	t1 := ts[wrapPad+n]
	total := n * samplesPerEdge

	pts := make([]geom.Point, total+1)
	for i := 0; i <= total; i++ {
		t := t0 + (t1-t0)*float64(i)/float64(total)
		spline := geom.Point{X: cx.Predict(t), Y: cy.Predict(t)}
		poly := polygonAt(verts, ts[wrapPad:wrapPad+n+1], t)
		pts[i] = poly.Scale(1 - factor).Add(spline.Scale(factor))
	}
	pts[total] = pts[0] // exact closure

	return posesFromClosed(pts)
}

// polygonAt evaluates the closed polygon at chord parameter t. knots has
// n+1 entries covering the ring including the closing edge back to the
// first vertex.
func polygonAt(verts []geom.Point, knots []float64, t float64) geom.Point {
	n := len(verts)
	for k := 0; k < n; k++ {
		if t <= knots[k+1] || k == n-1 {
			span := knots[k+1] - knots[k]
			if span < geom.Eps {
				return verts[k]
			}
			u := (t - knots[k]) / span
			next := verts[(k+1)%n]
			return verts[k].Add(next.Sub(verts[k]).Scale(u))
		}
	}
	return verts[0]
}

func samplePolygon(verts []geom.Point, samplesPerEdge int) []geom.Pose {
	n := len(verts)
	pts := make([]geom.Point, 0, n*samplesPerEdge+1)
	for k := 0; k < n; k++ {
		next := verts[(k+1)%n]
		for i := 0; i < samplesPerEdge; i++ {
			u := float64(i) / float64(samplesPerEdge)
			pts = append(pts, verts[k].Add(next.Sub(verts[k]).Scale(u)))
		}
	}
	pts = append(pts, verts[0])
	return posesFromClosed(pts)
}

// posesFromClosed attaches tangent headings to a closed point sequence
// (first == last) by forward differences; the final pose reuses the first
// heading so the closure also holds for orientation.
func posesFromClosed(pts []geom.Point) []geom.Pose {
	out := make([]geom.Pose, len(pts))
	for i := 0; i < len(pts)-1; i++ {
		d := pts[i+1].Sub(pts[i])
		th := math.Atan2(d.Y, d.X)
		out[i] = geom.Pose{X: pts[i].X, Y: pts[i].Y, Theta: th}
	}
	last := len(pts) - 1
	out[last] = geom.Pose{X: pts[last].X, Y: pts[last].Y, Theta: out[0].Theta}
	return out
}
