// Package config defines the run configuration for the rotorwake CLI.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultEps       = 1e-5
	DefaultBeta      = 0.1403
	DefaultRelax     = 0.25
	DefaultRelaxLow  = 0.1
	DefaultRelaxHigh = 0.9
	DefaultThreshold = 15.0
	DefaultAnnuli    = 40
)

// Config selects a momentum model and its numerical tuning. Yaw is in
// degrees here (the CLI surface); the solver core works in radians.
type Config struct {
	Model   string  `yaml:"model"` // limited | heck | unified | thrust
	Yaw     float64 `yaml:"yaw"`
	Loading float64 `yaml:"loading"`
	Beta    float64 `yaml:"beta"`
	Eps     float64 `yaml:"eps"`
	MaxIter int     `yaml:"maxiter"`

	Relax          float64 `yaml:"relax"`           // unified family
	RelaxLow       float64 `yaml:"relax_low"`       // coupled-velocity model
	RelaxHigh      float64 `yaml:"relax_high"`      // coupled-velocity model, supercritical
	RelaxThreshold float64 `yaml:"relax_threshold"` // supercritical loading switch

	Sweep  SweepConfig `yaml:"sweep"`
	Rotor  string      `yaml:"rotor"`
	Annuli int         `yaml:"annuli"`
}

// SweepConfig is a loading-coefficient range for sweep runs.
type SweepConfig struct {
	From  float64 `yaml:"from"`
	To    float64 `yaml:"to"`
	Steps int     `yaml:"steps"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:          "unified",
		Yaw:            0,
		Loading:        2.0,
		Beta:           DefaultBeta,
		Eps:            DefaultEps,
		Relax:          DefaultRelax,
		RelaxLow:       DefaultRelaxLow,
		RelaxHigh:      DefaultRelaxHigh,
		RelaxThreshold: DefaultThreshold,
		Sweep:          SweepConfig{From: 0, To: 4, Steps: 40},
		Rotor:          "iea15mw",
		Annuli:         DefaultAnnuli,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
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
