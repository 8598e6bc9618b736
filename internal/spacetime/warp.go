package spacetime

import (
	"fmt"
	"math"

	"github.com/san-kum/photonsphere/internal/dynamo"
)

const (
	DefaultRMax         = 15.0
	DefaultDepthScale   = 6.0
	DefaultFalloff      = 0.3
	DefaultHorizonDepth = -15.0
)

// Zone is the distance band a grid line falls into, used only to pick a
// display color.
type Zone int

const (
	NearHorizon Zone = iota
	StrongWarp
	MediumWarp
	Minimal
)

func (z Zone) String() string {
	switch z {
	case NearHorizon:
		return "near-horizon"
	case StrongWarp:
		return "strong"
	case MediumWarp:
		return "medium"
	default:
		return "minimal"
	}
}

// Well is the cosmetic gravity-well displacement function. It is not
// derived from the Schwarzschild metric; it only has to look like a
// funnel and vanish smoothly at the grid boundary.
type Well struct {
	Rs         float64
	RMax       float64
	DepthScale float64
	Falloff    float64
	// HorizonDepth is the clamped displacement for r ≤ rs; the grid is
	// never drawn inside the horizon, so the single deep value stands in
	// for the whole excluded region.
	HorizonDepth float64
	// ZoneEdges are the radius thresholds separating the four color
	// bands, in increasing order.
	ZoneEdges [3]float64
}

func NewWell(rs float64) (Well, error) {
	if rs <= 0 {
		return Well{}, fmt.Errorf("%w: schwarzschild radius %g", dynamo.ErrInvalidParameter, rs)
	}
	return Well{
		Rs:           rs,
		RMax:         DefaultRMax,
		DepthScale:   DefaultDepthScale,
		Falloff:      DefaultFalloff,
		HorizonDepth: DefaultHorizonDepth,
		ZoneEdges:    [3]float64{4.0, 7.0, 10.0},
	}, nil
}

// Depth returns the vertical displacement at radius r:
//
//	-DepthScale · sqrt(rs/r) · (1 − r/rMax)^Falloff
//
// clamped to HorizonDepth for r ≤ rs and to 0 for r ≥ rMax. Both grid
// families evaluate this one function, so the funnel surface is
// seamless.
func (w Well) Depth(r float64) float64 {
	if r <= w.Rs {
		return w.HorizonDepth
	}
	if r >= w.RMax {
		return 0
	}
	return -w.DepthScale * math.Sqrt(w.Rs/r) * math.Pow(1.0-r/w.RMax, w.Falloff)
}

// Zone classifies a radius into its color band.
func (w Well) Zone(r float64) Zone {
	switch {
	case r < w.ZoneEdges[0]:
		return NearHorizon
	case r < w.ZoneEdges[1]:
		return StrongWarp
	case r < w.ZoneEdges[2]:
		return MediumWarp
	default:
		return Minimal
	}
}
