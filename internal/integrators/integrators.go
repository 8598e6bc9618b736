// Package integrators provides explicit one-step ODE integrators used by
// the geodesic tracer: forward Euler, classic RK4 and adaptive
// Dormand-Prince RK45.
package integrators

import (
	"fmt"

	"github.com/san-kum/photonsphere/internal/dynamo"
)

// New returns an integrator by name ("euler", "rk4", "rk45").
func New(name string) (dynamo.Integrator, error) {
	switch name {
	case "euler":
		return NewEuler(), nil
	case "rk4", "":
		return NewRK4(), nil
	case "rk45":
		return NewRK45(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}
