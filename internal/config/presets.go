package config

import "sort"

// Presets are named ray sets layered over the default configuration.
// b values are in the same geometric units as rs = 2 (M = 1), where the
// numerical capture boundary sits near b = 3√3 ≈ 5.196.
var Presets = map[string]func() *Config{
	"showcase": Default,
	"critical": func() *Config {
		cfg := Default()
		cfg.Rays = []RayConfig{
			{B: 5.1962, Theta: 0, Phi: 0, Color: "#FFD700"},
			{B: 5.21, Theta: 0.2618, Phi: 1.0472, Color: "#FFA500"},
			{B: 5.18, Theta: -0.2618, Phi: 2.0944, Color: "#FF1493"},
			{B: 3.0, Theta: 0, Phi: 3.1416, Color: "#00CED1"}, // the 3M dead-band ray
		}
		return cfg
	},
	"plunge": func() *Config {
		cfg := Default()
		cfg.Rays = []RayConfig{
			{B: 4.5, Theta: 0, Phi: 0, Color: "#FF1493"},
			{B: 3.8, Theta: 0.3927, Phi: 1.5708, Color: "#FF69B4"},
			{B: 2.5, Theta: -0.3927, Phi: -1.5708, Color: "#FF6B9D"},
			{B: 1.2, Theta: 0.2618, Phi: 2.618, Color: "#DC143C"},
		}
		return cfg
	},
	"grid-only": func() *Config {
		cfg := Default()
		cfg.Rays = nil
		cfg.Animation.AutoRotate = true
		return cfg
	},
}

func GetPreset(name string) *Config {
	f, ok := Presets[name]
	if !ok {
		return nil
	}
	return f()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
