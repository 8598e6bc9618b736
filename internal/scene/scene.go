// Package scene assembles drawable geometry for one configuration: the
// warped grid, the event-horizon sphere, and the traced rays with their
// straight flat-spacetime counterparts.
package scene

import (
	"fmt"
	"image/color"
	"math"

	"github.com/san-kum/photonsphere/internal/config"
	"github.com/san-kum/photonsphere/internal/geodesic"
	"github.com/san-kum/photonsphere/internal/physics"
	"github.com/san-kum/photonsphere/internal/spacetime"
	"github.com/san-kum/photonsphere/internal/viz"
)

// Ray is one traced photon ready for drawing.
type Ray struct {
	Config     config.RayConfig
	Color      color.NRGBA
	Trajectory *geodesic.Trajectory
	// Path is the geodesic rotated into 3D and clipped to the plot
	// region (the far approach from the start radius is off-screen).
	Path []viz.Vec3
	// Straight is the flat-spacetime comparison ray.
	Straight []viz.Vec3
}

// Scene is the fully traced, immutable geometry for one configuration.
type Scene struct {
	BlackHole physics.BlackHole
	Well      spacetime.Well
	PlotLimit float64
	Rays      []Ray

	grid    []viz.Line
	horizon []viz.Line
}

// New traces every configured ray (in parallel) and builds the static
// grid and horizon geometry.
func New(cfg *config.Config) (*Scene, error) {
	bh, err := physics.NewBlackHole(cfg.SchwarzschildRadius)
	if err != nil {
		return nil, err
	}
	well, err := spacetime.NewWell(cfg.SchwarzschildRadius)
	if err != nil {
		return nil, err
	}
	well.RMax = cfg.PlotLimit
	if w := cfg.Warp; w.DepthScale != 0 {
		well.DepthScale = w.DepthScale
	}
	if w := cfg.Warp; w.Falloff != 0 {
		well.Falloff = w.Falloff
	}
	if w := cfg.Warp; w.HorizonDepth != 0 {
		well.HorizonDepth = w.HorizonDepth
	}

	s := &Scene{
		BlackHole: bh,
		Well:      well,
		PlotLimit: cfg.PlotLimit,
	}
	s.buildGrid(cfg)
	s.buildHorizon()

	opts := solverOptions(cfg.Solver)
	bs := make([]float64, len(cfg.Rays))
	for i, rc := range cfg.Rays {
		bs[i] = rc.B
	}
	trajs, err := geodesic.TraceAll(bh, bs, opts)
	if err != nil {
		return nil, err
	}

	s.Rays = make([]Ray, len(cfg.Rays))
	for i, rc := range cfg.Rays {
		col, err := viz.ParseHexColor(rc.Color)
		if err != nil {
			return nil, fmt.Errorf("ray %d: %w", i, err)
		}
		s.Rays[i] = Ray{
			Config:     rc,
			Color:      col,
			Trajectory: trajs[i],
			Path:       s.rotatePath(trajs[i], rc),
			Straight:   straightRay(rc, cfg.PlotLimit),
		}
	}
	return s, nil
}

func solverOptions(sc config.SolverConfig) geodesic.Options {
	return geodesic.Options{
		StartRadius:      sc.StartRadius,
		StepSize:         sc.StepSize,
		MaxSteps:         sc.MaxSteps,
		MaxRevolutions:   sc.MaxRevolutions,
		CriticalDeadband: sc.Deadband,
		Integrator:       sc.Integrator,
	}
}

func (s *Scene) buildGrid(cfg *config.Config) {
	cart := s.Well.CartesianGrid(cfg.PlotLimit, cfg.Grid.Lines, cfg.Grid.Samples)
	radial := s.Well.RadialGrid(cfg.Grid.Radial, cfg.Grid.RadialSamples)

	s.grid = make([]viz.Line, 0, len(cart)+len(radial))
	for _, gl := range cart {
		s.grid = append(s.grid, gridLine(gl, viz.ZoneColor(gl.Zone)))
	}
	for _, gl := range radial {
		s.grid = append(s.grid, gridLine(gl, viz.RadialColor))
	}
}

func gridLine(gl spacetime.GridLine, col color.NRGBA) viz.Line {
	pts := make([]viz.Vec3, len(gl.Points))
	for i, p := range gl.Points {
		pts[i] = viz.Vec3{X: p.X, Y: p.Y, Z: p.Z}
	}
	return viz.Line{Points: pts, Color: col}
}

// buildHorizon approximates the event-horizon sphere with latitude and
// longitude rings.
func (s *Scene) buildHorizon() {
	const (
		latRings  = 5
		lonRings  = 8
		ringSteps = 40
	)
	rs := s.BlackHole.SchwarzschildRadius

	for k := 1; k <= latRings; k++ {
		lat := math.Pi * float64(k) / float64(latRings+1)
		z := rs * math.Cos(lat)
		r := rs * math.Sin(lat)
		pts := make([]viz.Vec3, ringSteps+1)
		for i := 0; i <= ringSteps; i++ {
			a := 2 * math.Pi * float64(i) / float64(ringSteps)
			sin, cos := math.Sincos(a)
			pts[i] = viz.Vec3{X: r * cos, Y: r * sin, Z: z}
		}
		s.horizon = append(s.horizon, viz.Line{Points: pts, Color: viz.HorizonColor})
	}
	for k := 0; k < lonRings; k++ {
		lon := math.Pi * float64(k) / float64(lonRings)
		sinL, cosL := math.Sincos(lon)
		pts := make([]viz.Vec3, ringSteps+1)
		for i := 0; i <= ringSteps; i++ {
			a := 2 * math.Pi * float64(i) / float64(ringSteps)
			sin, cos := math.Sincos(a)
			pts[i] = viz.Vec3{X: rs * cos * cosL, Y: rs * cos * sinL, Z: rs * sin}
		}
		s.horizon = append(s.horizon, viz.Line{Points: pts, Color: viz.HorizonColor})
	}
}

// rotatePath converts the planar trajectory into 3D: the orbit plane is
// spun by the ray's azimuthal angle, then tilted by its polar angle.
func (s *Scene) rotatePath(traj *geodesic.Trajectory, rc config.RayConfig) []viz.Vec3 {
	clip := 1.5 * s.PlotLimit
	sinT, cosT := math.Sincos(rc.Theta)

	pts := make([]viz.Vec3, 0, len(traj.Points))
	for _, p := range traj.Points {
		sinP, cosP := math.Sincos(p.Phi + rc.Phi)
		x2d := p.R * cosP
		y2d := p.R * sinP
		if math.Abs(x2d) > clip || math.Abs(y2d) > clip {
			continue
		}
		pts = append(pts, viz.Vec3{X: x2d * cosT, Y: y2d, Z: x2d * sinT})
	}
	return pts
}

// straightRay builds the dashed flat-spacetime ray with the same launch
// geometry, for visual comparison.
func straightRay(rc config.RayConfig, plotLimit float64) []viz.Vec3 {
	const samples = 300
	length := 2 * plotLimit

	sinP, cosP := math.Sincos(rc.Phi)
	sinT, cosT := math.Sincos(rc.Theta)

	dir := viz.Vec3{X: cosP * cosT, Y: sinP, Z: cosP * sinT}
	offset := viz.Vec3{X: -sinP * rc.B, Y: cosP * rc.B}

	pts := make([]viz.Vec3, samples)
	for i := 0; i < samples; i++ {
		t := -length + 2*length*float64(i)/float64(samples-1)
		pts[i] = offset.Add(dir.Scale(t))
	}
	return pts
}
