// Package spacetime builds the warped coordinate grid drawn under the
// photon trajectories: a purely cosmetic funnel displacement applied to
// Cartesian grid lines and radial spokes, with distance-based color
// bands.
package spacetime
