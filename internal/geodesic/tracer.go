package geodesic

import (
	"fmt"
	"math"

	"github.com/san-kum/photonsphere/internal/dynamo"
	"github.com/san-kum/photonsphere/internal/integrators"
	"github.com/san-kum/photonsphere/internal/physics"
)

const (
	DefaultStartRadius      = 100.0
	DefaultStepSize         = 0.005
	DefaultMaxSteps         = 40000
	DefaultCaptureFactor    = 1.01
	DefaultMaxRevolutions   = 3.0
	DefaultDivergenceLimit  = 1e6
	DefaultCriticalDeadband = 1e-3
)

// Options controls a single trajectory integration. The zero value of
// any field falls back to the package default.
type Options struct {
	// StartRadius is the radius the ray is launched from ("coming from
	// infinity"). Must exceed the impact parameter.
	StartRadius float64
	// StepSize is the fixed angular step dφ.
	StepSize float64
	// MaxSteps bounds the integration loop; exhausting it classifies
	// the ray as critically scattered.
	MaxSteps int
	// CaptureFactor scales rs for the capture cutoff: the ray counts as
	// captured once r < CaptureFactor·rs.
	CaptureFactor float64
	// MaxRevolutions truncates rays that keep winding around the hole.
	MaxRevolutions float64
	// DivergenceLimit is the safety bound on u = 1/r; beyond it the
	// integration is treated as horizon infall.
	DivergenceLimit float64
	// CriticalDeadband forces the CriticallyScattered tag for impact
	// parameters within this distance of 3M, so floating-point noise at
	// the boundary cannot flip the outcome between runs.
	CriticalDeadband float64
	// Integrator names the step method ("euler", "rk4", "rk45"); empty
	// means RK4. Each Trace call builds its own integrator, so Options
	// values are safe to share across goroutines.
	Integrator string
}

func DefaultOptions() Options {
	return Options{
		StartRadius:      DefaultStartRadius,
		StepSize:         DefaultStepSize,
		MaxSteps:         DefaultMaxSteps,
		CaptureFactor:    DefaultCaptureFactor,
		MaxRevolutions:   DefaultMaxRevolutions,
		DivergenceLimit:  DefaultDivergenceLimit,
		CriticalDeadband: DefaultCriticalDeadband,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.StartRadius == 0 {
		o.StartRadius = d.StartRadius
	}
	if o.StepSize == 0 {
		o.StepSize = d.StepSize
	}
	if o.MaxSteps == 0 {
		o.MaxSteps = d.MaxSteps
	}
	if o.CaptureFactor == 0 {
		o.CaptureFactor = d.CaptureFactor
	}
	if o.MaxRevolutions == 0 {
		o.MaxRevolutions = d.MaxRevolutions
	}
	if o.DivergenceLimit == 0 {
		o.DivergenceLimit = d.DivergenceLimit
	}
	if o.CriticalDeadband == 0 {
		o.CriticalDeadband = d.CriticalDeadband
	}
	return o
}

// Point is one sample along a trajectory, in both polar and Cartesian
// form (the orbit plane before any scene rotation).
type Point struct {
	R   float64
	Phi float64
	X   float64
	Y   float64
}

// Trajectory is the finite, classified path of one photon.
type Trajectory struct {
	ImpactParameter float64
	Points          []Point
	Outcome         Outcome
	// MinRadius is the closest approach reached before truncation.
	MinRadius float64
	// Revolutions is the total swept angle in units of full turns.
	Revolutions float64
	// Deflection is the asymptotic bending angle; only meaningful for
	// escaped rays (NaN otherwise).
	Deflection float64
}

// Trace integrates the photon orbit equation for impact parameter b and
// classifies the ray's fate. It is a pure function of its inputs.
func Trace(bh physics.BlackHole, b float64, opts Options) (*Trajectory, error) {
	rs := bh.SchwarzschildRadius
	if rs <= 0 {
		return nil, fmt.Errorf("%w: schwarzschild radius %g", dynamo.ErrInvalidParameter, rs)
	}
	if b <= 0 {
		return nil, fmt.Errorf("%w: impact parameter %g", dynamo.ErrInvalidParameter, b)
	}
	opts = opts.withDefaults()
	if opts.StepSize <= 0 {
		return nil, fmt.Errorf("%w: dφ=%g", dynamo.ErrNonPositiveStep, opts.StepSize)
	}
	if b >= opts.StartRadius {
		return nil, fmt.Errorf("%w: impact parameter %g not below start radius %g",
			dynamo.ErrInvalidParameter, b, opts.StartRadius)
	}

	// Initial slope for a ray arriving from r₀ with impact parameter b:
	// (du/dφ)² = 1/b² − u²(1 − rs·u). Positive root: the ray is inbound.
	u0 := 1.0 / opts.StartRadius
	slopeSq := 1.0/(b*b) - u0*u0*(1.0-rs*u0)
	if slopeSq < 0 {
		return nil, fmt.Errorf("%w: no inbound ray for b=%g from r=%g",
			dynamo.ErrInvalidParameter, b, opts.StartRadius)
	}

	integ, err := integrators.New(opts.Integrator)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dynamo.ErrInvalidParameter, err)
	}
	orbit := physics.NewPhotonOrbit(bh)

	captureRadius := opts.CaptureFactor * rs
	maxPhi := opts.MaxRevolutions * 2 * math.Pi

	traj := &Trajectory{
		ImpactParameter: b,
		Points:          make([]Point, 0, 1024),
		MinRadius:       opts.StartRadius,
		Deflection:      math.NaN(),
	}

	x := dynamo.State{u0, math.Sqrt(slopeSq)}
	phi := 0.0
	appendPoint(traj, x[0], phi)

	outcome := CriticallyScattered // the fallthrough when the budget runs out
	for i := 0; i < opts.MaxSteps; i++ {
		x = integ.Step(orbit, x, phi, opts.StepSize)
		phi += opts.StepSize

		u := x[0]
		if !x.IsValid() || u > opts.DivergenceLimit {
			// u → ∞ is horizon infall, not an error.
			outcome = Captured
			break
		}
		if u <= 0 {
			// Crossed u = 0: the ray has receded beyond any radius.
			outcome = Escaped
			break
		}

		r := 1.0 / u
		appendPoint(traj, u, phi)
		if r < traj.MinRadius {
			traj.MinRadius = r
		}

		if r < captureRadius {
			outcome = Captured
			break
		}
		// Receding (du/dφ < 0) past the starting distance: out for good.
		if r >= opts.StartRadius && x[1] < 0 {
			outcome = Escaped
			break
		}
		if phi > maxPhi {
			outcome = CriticallyScattered
			break
		}
	}

	traj.Outcome = outcome
	traj.Revolutions = phi / (2 * math.Pi)

	if outcome == Escaped {
		// Swept angle of the flat-space chord from r₀ back to r₀ is
		// π − 2·asin(b/r₀); the excess is the bending angle.
		traj.Deflection = phi - math.Pi + 2*math.Asin(b/opts.StartRadius)
	}

	// Dead-band around b = 3M: tagged critical by convention regardless
	// of where the integration ended up.
	if math.Abs(b-bh.CriticalImpactParameter()) <= opts.CriticalDeadband {
		traj.Outcome = CriticallyScattered
	}

	return traj, nil
}

func appendPoint(traj *Trajectory, u, phi float64) {
	r := 1.0 / u
	sin, cos := math.Sincos(phi)
	traj.Points = append(traj.Points, Point{R: r, Phi: phi, X: r * cos, Y: r * sin})
}
