// Package analysis measures derived quantities of traced trajectories:
// bending angles, escape/capture sweeps over the impact parameter, and
// the numerical critical impact parameter.
package analysis

import (
	"fmt"

	"github.com/san-kum/photonsphere/internal/dynamo"
	"github.com/san-kum/photonsphere/internal/geodesic"
	"github.com/san-kum/photonsphere/internal/physics"
)

// WeakFieldDeflection is the first-order bending angle 4M/b = 2rs/b,
// the standard sanity reference for large impact parameters.
func WeakFieldDeflection(bh physics.BlackHole, b float64) float64 {
	return 2.0 * bh.SchwarzschildRadius / b
}

// SweepPoint is one sample of a deflection sweep.
type SweepPoint struct {
	B           float64
	Outcome     geodesic.Outcome
	Deflection  float64
	MinRadius   float64
	Revolutions float64
}

// Sweep traces count rays with impact parameters evenly spaced across
// [bMin, bMax].
func Sweep(bh physics.BlackHole, bMin, bMax float64, count int, opts geodesic.Options) ([]SweepPoint, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: sweep needs at least 2 samples", dynamo.ErrInvalidParameter)
	}
	if bMin <= 0 || bMax <= bMin {
		return nil, fmt.Errorf("%w: sweep range [%g, %g]", dynamo.ErrInvalidParameter, bMin, bMax)
	}

	bs := make([]float64, count)
	for i := range bs {
		bs[i] = bMin + (bMax-bMin)*float64(i)/float64(count-1)
	}
	trajs, err := geodesic.TraceAll(bh, bs, opts)
	if err != nil {
		return nil, err
	}

	points := make([]SweepPoint, count)
	for i, traj := range trajs {
		points[i] = SweepPoint{
			B:           bs[i],
			Outcome:     traj.Outcome,
			Deflection:  traj.Deflection,
			MinRadius:   traj.MinRadius,
			Revolutions: traj.Revolutions,
		}
	}
	return points, nil
}
