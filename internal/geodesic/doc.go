// Package geodesic integrates photon trajectories around a Schwarzschild
// black hole and classifies each ray's fate.
//
// A ray is launched from a large starting radius with a given impact
// parameter b, stepped through the reduced orbit equation in u = 1/r
// versus azimuthal angle φ, and truncated as soon as it either crosses
// the capture radius (Captured), recedes past its starting radius
// (Escaped), or exhausts its revolution/step budget (CriticallyScattered).
//
// Tracing is pure: identical inputs produce identical trajectories, and
// independent rays may be traced concurrently (see [TraceAll]).
package geodesic
