package config

import "sort"

var presets = map[string]*Config{
	"baseline": {
		Model: "unified", Yaw: 0, Loading: 2.0,
		Sweep: SweepConfig{From: 0, To: 4, Steps: 40},
	},
	"yawed": {
		Model: "unified", Yaw: 20, Loading: 2.0,
		Sweep: SweepConfig{From: 0, To: 4, Steps: 40},
	},
	"supercritical": {
		Model: "heck", Yaw: 0, Loading: 20.0,
		Sweep: SweepConfig{From: 10, To: 30, Steps: 40},
	},
	"betz": {
		Model: "limited", Yaw: 0, Loading: 2.0,
		Sweep: SweepConfig{From: 0, To: 4, Steps: 80},
	},
	"distribution": {
		Model: "unified", Yaw: 0, Loading: 2.0,
		Rotor: "iea15mw", Annuli: 53,
	},
}

// GetPreset returns a copy of the named preset with unset numerical fields
// filled from the defaults, nil if unknown.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := *DefaultConfig()
	cfg.Model = p.Model
	cfg.Yaw = p.Yaw
	cfg.Loading = p.Loading
	if p.Sweep.Steps > 0 {
		cfg.Sweep = p.Sweep
	}
	if p.Rotor != "" {
		cfg.Rotor = p.Rotor
	}
	if p.Annuli > 0 {
		cfg.Annuli = p.Annuli
	}
	return &cfg
}

// ListPresets returns the preset names sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
