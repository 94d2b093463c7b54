package rotor

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestGetPreset(t *testing.T) {
	def := GetPreset("iea15mw")
	if def == nil {
		t.Fatal("expected preset, got nil")
	}
	if def.Radius != 120.0 {
		t.Errorf("expected radius 120, got %f", def.Radius)
	}
	if err := def.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if def := GetPreset("nonexistent"); def != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) < 2 {
		t.Fatalf("expected at least two presets, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Error("preset names should be sorted")
		}
	}
}

func TestChordInterpolation(t *testing.T) {
	def := &Definition{
		Name: "test", Radius: 100, Blades: 3,
		Stations: []Station{
			{Mu: 0.2, Chord: 4.0},
			{Mu: 0.6, Chord: 2.0},
		},
	}

	if got := def.ChordAt(0.4); math.Abs(got-3.0) > 1e-12 {
		t.Errorf("midpoint chord: expected 3, got %f", got)
	}
	if got := def.ChordAt(0.0); got != 4.0 {
		t.Errorf("below first station should clamp, got %f", got)
	}
	if got := def.ChordAt(1.0); got != 2.0 {
		t.Errorf("above last station should clamp, got %f", got)
	}
}

func TestSolidityPositive(t *testing.T) {
	def := GetPreset("iea15mw")

	for _, mu := range []float64{0.1, 0.5, 0.9} {
		if s := def.Solidity(mu); s <= 0 {
			t.Errorf("solidity at mu=%g should be positive, got %f", mu, s)
		}
	}
	if def.Solidity(0.1) <= def.Solidity(0.9) {
		t.Error("solidity should decrease toward the tip")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	def := GetPreset("iea10mw")
	path := filepath.Join(t.TempDir(), "rotor.yaml")

	if err := Save(path, def); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Name != def.Name {
		t.Errorf("expected name %s, got %s", def.Name, loaded.Name)
	}
	if len(loaded.Stations) != len(def.Stations) {
		t.Errorf("expected %d stations, got %d", len(def.Stations), len(loaded.Stations))
	}
	if loaded.Stations[0].Chord != def.Stations[0].Chord {
		t.Error("station data should survive the round trip")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	bad := "name: broken\nradius: 100\nblades: 3\nstations:\n  - mu: 0.5\n    chord: 3\n  - mu: 0.2\n    chord: 4\n"
	if err := os.WriteFile(path, []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("unsorted stations should be rejected")
	}
}

func TestValidate(t *testing.T) {
	def := &Definition{Name: "x", Radius: 1, Blades: 3, Stations: []Station{{Mu: 0.1}, {Mu: 0.9}}}
	if err := def.Validate(); err != nil {
		t.Errorf("minimal definition should validate: %v", err)
	}

	def.Radius = -1
	if err := def.Validate(); err == nil {
		t.Error("negative radius should be rejected")
	}
}
