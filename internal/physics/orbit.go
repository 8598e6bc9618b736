package physics

import (
	"fmt"

	"github.com/san-kum/photonsphere/internal/dynamo"
)

// PhotonOrbit is the null geodesic equation of the Schwarzschild metric
// in reciprocal-radius form,
//
//	d²u/dφ² + u = 3Mu²,  u = 1/r,
//
// written as the first-order system {du/dφ = v, dv/dφ = 3Mu² − u}. The
// independent variable is the azimuthal angle φ.
type PhotonOrbit struct {
	Mass float64
}

func NewPhotonOrbit(bh BlackHole) *PhotonOrbit {
	return &PhotonOrbit{Mass: bh.Mass()}
}

func (p *PhotonOrbit) StateDim() int { return 2 }

func (p *PhotonOrbit) Derive(x dynamo.State, _ float64) dynamo.State {
	u := x[0]
	v := x[1]
	return dynamo.State{v, 3.0*p.Mass*u*u - u}
}

func (p *PhotonOrbit) GetParams() map[string]float64 {
	return map[string]float64{"mass": p.Mass}
}

func (p *PhotonOrbit) SetParam(name string, value float64) error {
	switch name {
	case "mass":
		p.Mass = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
