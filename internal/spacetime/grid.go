package spacetime

import "math"

// WarpedGridPoint is one vertex of the funnel surface.
type WarpedGridPoint struct {
	X, Y, Z float64
}

// GridLine is an ordered polyline of warped points tagged with the color
// band of its mean radius.
type GridLine struct {
	Points []WarpedGridPoint
	Zone   Zone
}

// CartesianGrid builds the funnel-shaped square grid: nLines lines
// parallel to each axis across [-extent, extent], each sampled at
// samples points and displaced by the well.
func (w Well) CartesianGrid(extent float64, nLines, samples int) []GridLine {
	lines := make([]GridLine, 0, 2*nLines)

	for k := 0; k < nLines; k++ {
		c := lerp(-extent, extent, k, nLines)
		// constant-x line, then constant-y line
		lines = append(lines, w.sampleLine(samples, func(t float64) (float64, float64) {
			return c, -extent + 2*extent*t
		}))
		lines = append(lines, w.sampleLine(samples, func(t float64) (float64, float64) {
			return -extent + 2*extent*t, c
		}))
	}
	return lines
}

// RadialGrid builds nRadial spokes running from just outside the horizon
// down the funnel to rMax.
func (w Well) RadialGrid(nRadial, samples int) []GridLine {
	lines := make([]GridLine, 0, nRadial)
	rInner := 1.2 * w.Rs

	for k := 0; k < nRadial; k++ {
		angle := 2 * math.Pi * float64(k) / float64(nRadial)
		sin, cos := math.Sincos(angle)
		lines = append(lines, w.sampleLine(samples, func(t float64) (float64, float64) {
			r := rInner + (w.RMax-rInner)*t
			return r * cos, r * sin
		}))
	}
	return lines
}

// sampleLine evaluates a parametric (x, y) path at samples points,
// applies the well displacement, and tags the line by its mean radius.
func (w Well) sampleLine(samples int, path func(t float64) (x, y float64)) GridLine {
	pts := make([]WarpedGridPoint, samples)
	sumR := 0.0
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples-1)
		x, y := path(t)
		r := math.Hypot(x, y)
		if r == 0 {
			r = 0.01 // avoid the singular center sample
		}
		sumR += r
		pts[i] = WarpedGridPoint{X: x, Y: y, Z: w.Depth(r)}
	}
	return GridLine{Points: pts, Zone: w.Zone(sumR / float64(samples))}
}

func lerp(lo, hi float64, i, n int) float64 {
	if n <= 1 {
		return lo
	}
	return lo + (hi-lo)*float64(i)/float64(n-1)
}
