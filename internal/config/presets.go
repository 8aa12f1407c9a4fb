package config

import "sort"

var Presets = map[string]*Config{
	"binary": {
		Particles: 2, Gravity: 0.00001, FPS: 60, Simulate: true,
	},
	"handful": {
		Particles: 10, Gravity: 0.0001, FPS: 60, Simulate: true,
	},
	"cluster": {
		Particles: 100, Gravity: 0.00001, FPS: 60, Simulate: true,
	},
	"galaxy": {
		Particles: 1000, Gravity: 0.00001, FPS: 60, Simulate: true,
	},
	"dense": {
		Particles: 5000, Gravity: 0.000002, FPS: 30, Simulate: true,
	},
}

// GetPreset returns a copy of the named preset with the remaining fields
// filled from the defaults, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Particles = p.Particles
	cfg.Gravity = p.Gravity
	cfg.FPS = p.FPS
	cfg.Simulate = p.Simulate
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
