package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SpeedKmh != 60 {
		t.Errorf("expected default speed 60, got %f", cfg.SpeedKmh)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Gravity != 9.81 {
		t.Errorf("expected Earth gravity, got %f", cfg.Gravity)
	}
}

func TestScenarioConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weather = "wet"
	cfg.Tyres = "worn"
	cfg.Car = "Mazda CX-5"

	s, err := cfg.Scenario()
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if s.Vehicle == nil {
		t.Fatal("car selection should populate the vehicle")
	}
	if s.Vehicle.MassKg != 1600 {
		t.Errorf("expected CX-5 mass 1600, got %f", s.Vehicle.MassKg)
	}
}

func TestScenarioConversionErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weather = "hail"
	if _, err := cfg.Scenario(); err == nil {
		t.Error("expected error for unknown weather")
	}

	cfg = DefaultConfig()
	cfg.Car = "Batmobile"
	if _, err := cfg.Scenario(); err == nil {
		t.Error("expected error for unknown car")
	}

	cfg = DefaultConfig()
	cfg.SpeedKmh = -5
	if _, err := cfg.Scenario(); err == nil {
		t.Error("expected error for negative speed")
	}
}

func TestManualMassKeepsClosedForm(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MassKg = 1750

	s, err := cfg.Scenario()
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if s.Vehicle != nil {
		t.Error("bare manual mass should not enable the numeric model")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	cfg := DefaultConfig()
	cfg.SpeedKmh = 80
	cfg.Weather = "snow"
	cfg.ABS = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.SpeedKmh != 80 || loaded.Weather != "snow" || !loaded.ABS {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("highway_wet")
	if cfg == nil {
		t.Fatal("expected preset")
	}
	if cfg.SpeedKmh != 110 || cfg.Weather != "wet" {
		t.Errorf("unexpected preset values: %+v", cfg)
	}
	if cfg.Dt <= 0 {
		t.Error("preset should inherit default dt")
	}

	if _, err := cfg.Scenario(); err != nil {
		t.Errorf("every preset must convert cleanly: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("autobahn") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestAllPresetsConvert(t *testing.T) {
	for _, name := range ListPresets() {
		if _, err := GetPreset(name).Scenario(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gravity = 3.71 // Mars
	cfg.AirDensity = 0.020

	env := cfg.Environment()
	if env.Gravity != 3.71 || env.AirDensity != 0.020 {
		t.Errorf("overrides not applied: %+v", env)
	}

	cfg.Gravity = 0
	if cfg.Environment().Gravity != 9.81 {
		t.Error("zero gravity should fall back to the default")
	}
}
