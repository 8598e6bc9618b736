// Package physics defines the Schwarzschild black hole parameters and
// the photon orbit ODE integrated by the geodesic tracer.
//
// Everything is expressed in geometric units (G = c = 1), so a black
// hole is fully characterized by its Schwarzschild radius rs = 2M.
package physics
