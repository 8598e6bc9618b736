package viz

import "math"

// Camera orbits the origin: azimuth spins the scene around the vertical
// axis, elevation tilts it toward the viewer, and a fixed eye distance
// provides mild perspective.
type Camera struct {
	Azimuth   float64 // radians
	Elevation float64 // radians
	Zoom      float64
	Distance  float64
	// Extent is the world-space half-width mapped onto the viewport.
	Extent float64
}

func NewCamera(extent float64) *Camera {
	return &Camera{
		Azimuth:   45 * math.Pi / 180,
		Elevation: 25 * math.Pi / 180,
		Zoom:      1.0,
		Distance:  60.0,
		Extent:    extent,
	}
}

func (c *Camera) Rotate(dAzim, dElev float64) {
	c.Azimuth = math.Mod(c.Azimuth+dAzim, 2*math.Pi)
	c.Elevation = clamp(c.Elevation+dElev, -math.Pi/2, math.Pi/2)
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// Transform rotates a world point into camera space: x right, y up,
// z toward the viewer.
func (c *Camera) Transform(p Vec3) Vec3 {
	ca, sa := math.Cos(c.Azimuth), math.Sin(c.Azimuth)
	x := p.X*ca - p.Y*sa
	y := p.X*sa + p.Y*ca

	ce, se := math.Cos(c.Elevation), math.Sin(c.Elevation)
	// Tilt: world z becomes screen-up, scaled down as the view flattens.
	up := p.Z*ce - y*se
	depth := p.Z*se + y*ce

	return Vec3{X: x, Y: up, Z: depth}.Scale(c.Zoom)
}

// Project maps a world point to normalized viewport coordinates in
// [-1, 1] plus a depth for painter ordering. ok is false behind the eye.
func (c *Camera) Project(p Vec3) (nx, ny, depth float64, ok bool) {
	t := c.Transform(p)
	if t.Z >= c.Distance-1e-6 {
		return 0, 0, 0, false
	}
	persp := c.Distance / (c.Distance - t.Z)
	scale := persp / c.Extent
	return t.X * scale, t.Y * scale, t.Z, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
