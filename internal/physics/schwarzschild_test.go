package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/photonsphere/internal/dynamo"
)

func TestBlackHoleDerivedRadii(t *testing.T) {
	bh, err := NewBlackHole(2.0)
	if err != nil {
		t.Fatalf("NewBlackHole failed: %v", err)
	}

	if bh.Mass() != 1.0 {
		t.Errorf("Mass() = %v, want 1.0", bh.Mass())
	}
	if bh.PhotonSphereRadius() != 3.0 {
		t.Errorf("PhotonSphereRadius() = %v, want 3.0", bh.PhotonSphereRadius())
	}
	if bh.CriticalImpactParameter() != 3.0 {
		t.Errorf("CriticalImpactParameter() = %v, want 3.0", bh.CriticalImpactParameter())
	}
}

func TestBlackHoleInvalidRadius(t *testing.T) {
	for _, rs := range []float64{0, -1.0} {
		_, err := NewBlackHole(rs)
		if !errors.Is(err, dynamo.ErrInvalidParameter) {
			t.Errorf("NewBlackHole(%v): expected ErrInvalidParameter, got %v", rs, err)
		}
	}
}

func TestPhotonOrbitDerive(t *testing.T) {
	bh, _ := NewBlackHole(1.0)
	orbit := NewPhotonOrbit(bh)

	// At the photon sphere u = 1/(1.5 rs) = 2/3, dv/dφ vanishes: the
	// circular orbit is an equilibrium of the reduced system.
	u := 1.0 / bh.PhotonSphereRadius()
	dx := orbit.Derive(dynamo.State{u, 0}, 0)
	if dx[0] != 0 {
		t.Errorf("du/dφ = %v, want 0 for zero slope", dx[0])
	}
	if math.Abs(dx[1]) > 1e-15 {
		t.Errorf("dv/dφ = %v at photon sphere, want 0", dx[1])
	}

	// Far from the hole the equation reduces to the straight-line
	// equation u'' = -u.
	dx = orbit.Derive(dynamo.State{1e-6, 0}, 0)
	if math.Abs(dx[1]+1e-6) > 1e-11 {
		t.Errorf("weak-field dv/dφ = %v, want ≈ -u", dx[1])
	}
}

func TestPhotonOrbitParams(t *testing.T) {
	bh, _ := NewBlackHole(2.0)
	orbit := NewPhotonOrbit(bh)

	if orbit.GetParams()["mass"] != 1.0 {
		t.Errorf("mass param = %v, want 1.0", orbit.GetParams()["mass"])
	}
	if err := orbit.SetParam("mass", 0.5); err != nil {
		t.Fatalf("SetParam failed: %v", err)
	}
	if orbit.Mass != 0.5 {
		t.Errorf("mass = %v after SetParam, want 0.5", orbit.Mass)
	}
	if err := orbit.SetParam("spin", 1.0); err == nil {
		t.Error("expected error for unknown param")
	}
}
