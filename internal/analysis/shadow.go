package analysis

import (
	"fmt"

	"github.com/san-kum/photonsphere/internal/dynamo"
	"github.com/san-kum/photonsphere/internal/geodesic"
	"github.com/san-kum/photonsphere/internal/physics"
)

// CriticalImpactParameter locates the capture/escape boundary of the
// integrated orbit equation by bisection over b. The bracket starts at
// [3M, startRadius/2]; rays below the boundary are captured, rays above
// escape, and the interval halves until it is tighter than tol.
//
// Note this is the boundary of the numerical ODE (b ≈ 3√3·M), not the
// conventional 3M dead-band used for tagging.
func CriticalImpactParameter(bh physics.BlackHole, tol float64, opts geodesic.Options) (float64, error) {
	if tol <= 0 {
		return 0, fmt.Errorf("%w: tolerance %g", dynamo.ErrInvalidParameter, tol)
	}
	if opts.StartRadius == 0 {
		opts.StartRadius = geodesic.DefaultStartRadius
	}

	lo := bh.CriticalImpactParameter()
	hi := opts.StartRadius / 2

	escaped := func(b float64) (bool, error) {
		traj, err := geodesic.Trace(bh, b, opts)
		if err != nil {
			return false, err
		}
		return traj.Outcome == geodesic.Escaped, nil
	}

	if ok, err := escaped(hi); err != nil {
		return 0, err
	} else if !ok {
		return 0, fmt.Errorf("%w: upper bracket b=%g does not escape", dynamo.ErrInvalidParameter, hi)
	}

	for hi-lo > tol {
		mid := 0.5 * (lo + hi)
		ok, err := escaped(mid)
		if err != nil {
			return 0, err
		}
		if ok {
			hi = mid
		} else {
			lo = mid
		}
	}
	return 0.5 * (lo + hi), nil
}
