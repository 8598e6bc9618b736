// Package dynamo provides the ODE primitives shared by the geodesic
// tracer:
//
//   - [State]: vector of dependent variables
//   - [System]: right-hand side of a first-order ODE system
//   - [Integrator]: explicit one-step integrator
//   - [AdaptiveIntegrator]: integrator with step-size control
//
// Systems and integrators are pure; a single Integrator value may keep
// scratch buffers between steps and is therefore not safe for concurrent
// use. Callers that integrate several trajectories in parallel construct
// one integrator per goroutine (see geodesic.TraceAll).
package dynamo
