// Package rotor holds rotor definitions: the named geometry a caller selects
// before building per-annulus loading distributions for the momentum solver.
package rotor

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Station is one radial blade station. Mu is the normalized radial position
// r/R, chord is in meters, twist in radians.
type Station struct {
	Mu    float64 `yaml:"mu"`
	Chord float64 `yaml:"chord"`
	Twist float64 `yaml:"twist"`
}

// Definition describes a rotor. Stations must be sorted by Mu ascending.
type Definition struct {
	Name      string    `yaml:"name"`
	Radius    float64   `yaml:"radius"`
	HubHeight float64   `yaml:"hub_height"`
	Blades    int       `yaml:"blades"`
	RatedTSR  float64   `yaml:"rated_tsr"`
	Stations  []Station `yaml:"stations"`
}

func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	def := &Definition{}
	if err := yaml.Unmarshal(data, def); err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

func Save(path string, def *Definition) error {
	data, err := yaml.Marshal(def)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("rotor: missing name")
	}
	if d.Radius <= 0 {
		return fmt.Errorf("rotor %s: radius must be positive", d.Name)
	}
	if d.Blades <= 0 {
		return fmt.Errorf("rotor %s: blade count must be positive", d.Name)
	}
	if len(d.Stations) < 2 {
		return fmt.Errorf("rotor %s: need at least two blade stations", d.Name)
	}
	for i := 1; i < len(d.Stations); i++ {
		if d.Stations[i].Mu <= d.Stations[i-1].Mu {
			return fmt.Errorf("rotor %s: stations must be sorted by mu", d.Name)
		}
	}
	return nil
}

// ChordAt linearly interpolates the chord at radial position mu, clamping
// outside the defined stations.
func (d *Definition) ChordAt(mu float64) float64 {
	s := d.Stations
	if mu <= s[0].Mu {
		return s[0].Chord
	}
	if mu >= s[len(s)-1].Mu {
		return s[len(s)-1].Chord
	}
	for i := 1; i < len(s); i++ {
		if mu <= s[i].Mu {
			t := (mu - s[i-1].Mu) / (s[i].Mu - s[i-1].Mu)
			return s[i-1].Chord + t*(s[i].Chord-s[i-1].Chord)
		}
	}
	return s[len(s)-1].Chord
}

// Solidity returns the local blade solidity B c / (2 pi r) at mu.
func (d *Definition) Solidity(mu float64) float64 {
	r := mu * d.Radius
	if r == 0 {
		r = 1e-3 * d.Radius
	}
	return float64(d.Blades) * d.ChordAt(mu) / (2 * math.Pi * r)
}
