package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSchwarzschildRadius = 2.0
	DefaultPlotLimit           = 15.0
	DefaultFrames              = 150
	DefaultDelayMS             = 50
)

type Config struct {
	SchwarzschildRadius float64      `yaml:"schwarzschild_radius"`
	PlotLimit           float64      `yaml:"plot_limit"`
	Warp                WarpConfig   `yaml:"warp"`
	Grid                GridConfig   `yaml:"grid"`
	Solver              SolverConfig `yaml:"solver"`
	Rays                []RayConfig  `yaml:"rays"`
	Animation           AnimConfig   `yaml:"animation"`
	Camera              CameraConfig `yaml:"camera"`
}

type WarpConfig struct {
	DepthScale   float64 `yaml:"depth_scale"`
	Falloff      float64 `yaml:"falloff"`
	HorizonDepth float64 `yaml:"horizon_depth"`
}

type GridConfig struct {
	Lines         int `yaml:"lines"`
	Samples       int `yaml:"samples"`
	Radial        int `yaml:"radial"`
	RadialSamples int `yaml:"radial_samples"`
}

type SolverConfig struct {
	StartRadius    float64 `yaml:"start_radius"`
	StepSize       float64 `yaml:"step_size"`
	MaxSteps       int     `yaml:"max_steps"`
	MaxRevolutions float64 `yaml:"max_revolutions"`
	Deadband       float64 `yaml:"deadband"`
	Integrator     string  `yaml:"integrator"`
}

// RayConfig describes one launched photon: impact parameter, launch
// plane orientation and display color.
type RayConfig struct {
	B     float64 `yaml:"b"`
	Theta float64 `yaml:"theta"`
	Phi   float64 `yaml:"phi"`
	Color string  `yaml:"color"`
}

type AnimConfig struct {
	Frames      int     `yaml:"frames"`
	DelayMS     int     `yaml:"delay_ms"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	AutoRotate  bool    `yaml:"auto_rotate"`
	DegPerFrame float64 `yaml:"deg_per_frame"`
}

type CameraConfig struct {
	Azimuth   float64 `yaml:"azimuth"`   // degrees
	Elevation float64 `yaml:"elevation"` // degrees
	Zoom      float64 `yaml:"zoom"`
}

// Default returns the showcase configuration: six rays around an rs = 2
// hole, three escaping and three plunging.
func Default() *Config {
	return &Config{
		SchwarzschildRadius: DefaultSchwarzschildRadius,
		PlotLimit:           DefaultPlotLimit,
		Warp: WarpConfig{
			DepthScale:   6.0,
			Falloff:      0.3,
			HorizonDepth: -15.0,
		},
		Grid: GridConfig{
			Lines:         28,
			Samples:       100,
			Radial:        20,
			RadialSamples: 50,
		},
		Solver: SolverConfig{
			StartRadius:    100.0,
			StepSize:       0.005,
			MaxSteps:       40000,
			MaxRevolutions: 3.0,
			Deadband:       1e-3,
			Integrator:     "rk4",
		},
		Rays: []RayConfig{
			{B: 10.0, Theta: 0, Phi: 0, Color: "#FFD700"},
			{B: 9.0, Theta: 0.5236, Phi: 0.7854, Color: "#FFA500"},
			{B: 8.5, Theta: -0.5236, Phi: 1.5708, Color: "#FFDB58"},
			{B: 5.0, Theta: 0.3927, Phi: -0.5236, Color: "#FF1493"},
			{B: 4.5, Theta: -0.3927, Phi: 2.3562, Color: "#FF69B4"},
			{B: 4.0, Theta: 0.2618, Phi: 3.1416, Color: "#FF6B9D"},
		},
		Animation: AnimConfig{
			Frames:      DefaultFrames,
			DelayMS:     DefaultDelayMS,
			Width:       800,
			Height:      600,
			AutoRotate:  false,
			DegPerFrame: 1.0,
		},
		Camera: CameraConfig{
			Azimuth:   45,
			Elevation: 25,
			Zoom:      1.0,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
