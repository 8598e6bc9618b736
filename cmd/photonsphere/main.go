package main

import (
	"fmt"
	"image"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/photonsphere/internal/analysis"
	"github.com/san-kum/photonsphere/internal/config"
	"github.com/san-kum/photonsphere/internal/export"
	"github.com/san-kum/photonsphere/internal/geodesic"
	"github.com/san-kum/photonsphere/internal/physics"
	"github.com/san-kum/photonsphere/internal/scene"
	"github.com/san-kum/photonsphere/internal/spacetime"
	"github.com/san-kum/photonsphere/internal/tui"
	"github.com/san-kum/photonsphere/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	rs         float64
	// render
	outFile string
	frames  int
	delayMS int
	imgW    int
	imgH    int
	rotate  bool
	// trace
	jsonFile   string
	withPoints bool
	integrator string
	// sweep
	samples int
	csvFile string
	// critical
	tolerance float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "photonsphere",
		Short: "schwarzschild photon geodesic visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Float64Var(&rs, "rs", 0, "schwarzschild radius override")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the scene to an animated GIF",
		RunE:  renderGIF,
	}
	renderCmd.Flags().StringVar(&outFile, "out", "orbit.gif", "output file")
	renderCmd.Flags().IntVar(&frames, "frames", 0, "frame count (default from config)")
	renderCmd.Flags().IntVar(&delayMS, "delay", 0, "frame delay in ms (default from config)")
	renderCmd.Flags().IntVar(&imgW, "width", 0, "image width")
	renderCmd.Flags().IntVar(&imgH, "height", 0, "image height")
	renderCmd.Flags().BoolVar(&rotate, "rotate", false, "spin the camera during the animation")

	traceCmd := &cobra.Command{
		Use:   "trace [impact parameter]",
		Short: "trace a single photon and report its fate",
		Args:  cobra.ExactArgs(1),
		RunE:  traceRay,
	}
	traceCmd.Flags().StringVar(&jsonFile, "json", "", "write the trajectory to a JSON file")
	traceCmd.Flags().BoolVar(&withPoints, "points", false, "include (r, phi) samples in the JSON export")
	traceCmd.Flags().StringVar(&integrator, "integrator", "", "step method: euler, rk4, rk45")

	sweepCmd := &cobra.Command{
		Use:   "sweep [b_min] [b_max]",
		Short: "sweep the impact parameter and tabulate outcomes",
		Args:  cobra.ExactArgs(2),
		RunE:  sweepRays,
	}
	sweepCmd.Flags().IntVar(&samples, "samples", 25, "number of rays")
	sweepCmd.Flags().StringVar(&csvFile, "csv", "", "write the sweep to a CSV file")

	criticalCmd := &cobra.Command{
		Use:   "critical",
		Short: "locate the capture/escape boundary by bisection",
		RunE:  findCritical,
	}
	criticalCmd.Flags().Float64Var(&tolerance, "tol", 1e-6, "bisection tolerance")

	gridCmd := &cobra.Command{
		Use:   "grid",
		Short: "show the funnel depth profile and warp zones",
		RunE:  showGrid,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(renderCmd, traceCmd, sweepCmd, criticalCmd, gridCmd, tuiCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves preset, config file, and flag overrides in that
// order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("rs") {
		cfg.SchwarzschildRadius = rs
	}
	return cfg, nil
}

func solverOptions(cfg *config.Config) geodesic.Options {
	opts := geodesic.Options{
		StartRadius:      cfg.Solver.StartRadius,
		StepSize:         cfg.Solver.StepSize,
		MaxSteps:         cfg.Solver.MaxSteps,
		MaxRevolutions:   cfg.Solver.MaxRevolutions,
		CriticalDeadband: cfg.Solver.Deadband,
		Integrator:       cfg.Solver.Integrator,
	}
	if integrator != "" {
		opts.Integrator = integrator
	}
	return opts
}

func renderGIF(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if frames > 0 {
		cfg.Animation.Frames = frames
	}
	if delayMS > 0 {
		cfg.Animation.DelayMS = delayMS
	}
	if imgW > 0 {
		cfg.Animation.Width = imgW
	}
	if imgH > 0 {
		cfg.Animation.Height = imgH
	}
	if rotate {
		cfg.Animation.AutoRotate = true
	}

	s, err := scene.New(cfg)
	if err != nil {
		return err
	}

	cam := viz.NewCamera(cfg.PlotLimit)
	cam.Azimuth = cfg.Camera.Azimuth * math.Pi / 180
	cam.Elevation = cfg.Camera.Elevation * math.Pi / 180
	if cfg.Camera.Zoom > 0 {
		cam.Zoom = cfg.Camera.Zoom
	}

	n := cfg.Animation.Frames
	if n < 2 {
		n = 2
	}
	fmt.Printf("rendering %d frames at %dx%d...\n", n, cfg.Animation.Width, cfg.Animation.Height)
	start := time.Now()

	imgs := make([]*image.NRGBA, n)
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n-1)
		imgs[i] = viz.RenderImage(s.Frame(progress), cam, cfg.Animation.Width, cfg.Animation.Height, viz.White)
		if cfg.Animation.AutoRotate {
			cam.Rotate(cfg.Animation.DegPerFrame*math.Pi/180, 0)
		}
	}

	if err := export.EncodeGIF(outFile, imgs, cfg.Animation.DelayMS/10); err != nil {
		return err
	}
	fmt.Printf("wrote %s in %v\n", outFile, time.Since(start).Round(time.Millisecond))
	return nil
}

func traceRay(cmd *cobra.Command, args []string) error {
	b, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid impact parameter: %s", args[0])
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	bh, err := physics.NewBlackHole(cfg.SchwarzschildRadius)
	if err != nil {
		return err
	}

	traj, err := geodesic.Trace(bh, b, solverOptions(cfg))
	if err != nil {
		return err
	}

	fmt.Printf("impact parameter: %.4f\n", traj.ImpactParameter)
	fmt.Printf("outcome: %s\n", traj.Outcome)
	fmt.Printf("closest approach: %.4f (photon sphere at %.4f)\n", traj.MinRadius, bh.PhotonSphereRadius())
	fmt.Printf("revolutions: %.3f\n", traj.Revolutions)
	if !math.IsNaN(traj.Deflection) {
		fmt.Printf("deflection: %.6f rad (weak-field estimate %.6f)\n",
			traj.Deflection, analysis.WeakFieldDeflection(bh, b))
	}

	data := make([]float64, len(traj.Points))
	for i, p := range traj.Points {
		data[i] = p.R
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("r vs integration step"),
	))

	if jsonFile != "" {
		if err := export.WriteJSON(jsonFile, []*geodesic.Trajectory{traj}, withPoints); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", jsonFile)
	}
	return nil
}

func sweepRays(cmd *cobra.Command, args []string) error {
	bMin, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid b_min: %s", args[0])
	}
	bMax, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid b_max: %s", args[1])
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	bh, err := physics.NewBlackHole(cfg.SchwarzschildRadius)
	if err != nil {
		return err
	}

	points, err := analysis.Sweep(bh, bMin, bMax, samples, solverOptions(cfg))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "B\tOUTCOME\tDEFLECTION\tMIN_R\tREVS")
	for _, p := range points {
		deflection := "-"
		if !math.IsNaN(p.Deflection) {
			deflection = fmt.Sprintf("%.5f", p.Deflection)
		}
		fmt.Fprintf(w, "%.4f\t%s\t%s\t%.3f\t%.3f\n", p.B, p.Outcome, deflection, p.MinRadius, p.Revolutions)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	// Chart the bending angle over the escaped tail of the sweep.
	var defl []float64
	for _, p := range points {
		if p.Outcome == geodesic.Escaped {
			defl = append(defl, p.Deflection)
		}
	}
	if len(defl) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(defl,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("deflection vs b (escaped rays)"),
		))
	}

	if csvFile != "" {
		if err := export.WriteSweepCSV(csvFile, points); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", csvFile)
	}
	return nil
}

func findCritical(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	bh, err := physics.NewBlackHole(cfg.SchwarzschildRadius)
	if err != nil {
		return err
	}

	start := time.Now()
	bc, err := analysis.CriticalImpactParameter(bh, tolerance, solverOptions(cfg))
	if err != nil {
		return err
	}
	theory := 3 * math.Sqrt(3) * bh.Mass()

	fmt.Printf("critical impact parameter: %.8f\n", bc)
	fmt.Printf("analytic 3*sqrt(3)*M: %.8f\n", theory)
	fmt.Printf("difference: %.2e\n", math.Abs(bc-theory))
	fmt.Printf("found in %v\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func showGrid(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	well, err := spacetime.NewWell(cfg.SchwarzschildRadius)
	if err != nil {
		return err
	}
	well.RMax = cfg.PlotLimit

	const n = 80
	depths := make([]float64, n)
	for i := 0; i < n; i++ {
		r := well.Rs + (well.RMax-well.Rs)*float64(i)/float64(n-1)
		depths[i] = well.Depth(r)
	}
	fmt.Println(asciigraph.Plot(depths,
		asciigraph.Height(14),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("funnel depth, r in [%.1f, %.1f]", well.Rs, well.RMax)),
	))

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ZONE\tRANGE\tDEPTH AT INNER EDGE")
	edges := []float64{well.Rs, well.ZoneEdges[0], well.ZoneEdges[1], well.ZoneEdges[2], well.RMax}
	names := []string{"near-horizon", "strong", "medium", "minimal"}
	for i, name := range names {
		fmt.Fprintf(w, "%s\t[%.1f, %.1f)\t%.3f\n", name, edges[i], edges[i+1], well.Depth(edges[i]))
	}
	return w.Flush()
}
