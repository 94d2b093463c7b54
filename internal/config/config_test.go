package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "unified" {
		t.Errorf("expected model unified, got %s", cfg.Model)
	}
	if cfg.Eps <= 0 {
		t.Error("eps should be positive")
	}
	if cfg.Beta != DefaultBeta {
		t.Errorf("expected beta %g, got %g", DefaultBeta, cfg.Beta)
	}
	if cfg.RelaxThreshold != DefaultThreshold {
		t.Errorf("expected relax threshold %g, got %g", DefaultThreshold, cfg.RelaxThreshold)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("supercritical")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Model != "heck" {
		t.Errorf("expected heck model, got %s", cfg.Model)
	}
	if cfg.Loading != 20.0 {
		t.Errorf("expected loading 20, got %f", cfg.Loading)
	}
	// Numerical tuning falls back to defaults.
	if cfg.Eps != DefaultEps {
		t.Errorf("expected default eps, got %g", cfg.Eps)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Error("preset names should be sorted")
		}
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Model = "thrust"
	cfg.Yaw = 15
	cfg.Sweep = SweepConfig{From: 0.1, To: 0.9, Steps: 17}

	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Model != "thrust" || loaded.Yaw != 15 {
		t.Errorf("expected thrust/15, got %s/%f", loaded.Model, loaded.Yaw)
	}
	if loaded.Sweep.Steps != 17 {
		t.Errorf("expected 17 sweep steps, got %d", loaded.Sweep.Steps)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
