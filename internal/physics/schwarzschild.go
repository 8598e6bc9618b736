package physics

import (
	"fmt"

	"github.com/san-kum/photonsphere/internal/dynamo"
)

// BlackHole describes a non-rotating point mass in geometric units
// (G = c = 1). All derived radii follow from the Schwarzschild radius.
type BlackHole struct {
	SchwarzschildRadius float64
}

func NewBlackHole(rs float64) (BlackHole, error) {
	if rs <= 0 {
		return BlackHole{}, fmt.Errorf("%w: schwarzschild radius %g", dynamo.ErrInvalidParameter, rs)
	}
	return BlackHole{SchwarzschildRadius: rs}, nil
}

// Mass is rs/2 in geometric units.
func (bh BlackHole) Mass() float64 {
	return bh.SchwarzschildRadius / 2.0
}

// PhotonSphereRadius is the radius of the unstable circular photon
// orbit, 1.5·rs.
func (bh BlackHole) PhotonSphereRadius() float64 {
	return 1.5 * bh.SchwarzschildRadius
}

// CriticalImpactParameter is the impact parameter conventionally paired
// with the photon sphere, b = 3M.
func (bh BlackHole) CriticalImpactParameter() float64 {
	return 3.0 * bh.Mass()
}
