package config

import (
	"math"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Qubit.Variant != "transmon" {
		t.Errorf("expected variant transmon, got %s", cfg.Qubit.Variant)
	}
	if cfg.Qubit.Ec <= 0 || cfg.Qubit.Ej <= 0 {
		t.Error("energies should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative n_charge", func(c *Config) { c.Qubit.NCharge = -1 }},
		{"negative m_max", func(c *Config) { c.Drive.MMax = -1 }},
		{"zero amp_steps", func(c *Config) { c.Sweep.AmpSteps = 0 }},
		{"inverted amp range", func(c *Config) { c.Sweep.AmpStart = 0.5; c.Sweep.AmpStop = 0.1 }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestAmplitudes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sweep.AmpStart = 0
	cfg.Sweep.AmpStop = 0.2
	cfg.Sweep.AmpSteps = 26

	amps := cfg.Amplitudes()
	if len(amps) != 26 {
		t.Fatalf("expected 26 amplitudes, got %d", len(amps))
	}
	if amps[0] != 0 {
		t.Errorf("first amplitude = %v, want 0", amps[0])
	}
	if math.Abs(amps[25]-0.2) > 1e-12 {
		t.Errorf("last amplitude = %v, want 0.2", amps[25])
	}
	for i := 1; i < len(amps); i++ {
		if amps[i] <= amps[i-1] {
			t.Fatalf("amplitudes not increasing at %d", i)
		}
	}
}

func TestAmplitudesSingleStep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sweep.AmpStart = 0.1
	cfg.Sweep.AmpSteps = 1

	amps := cfg.Amplitudes()
	if len(amps) != 1 || amps[0] != 0.1 {
		t.Errorf("single-step amplitudes = %v", amps)
	}
}

func TestQubitParams(t *testing.T) {
	cfg := DefaultConfig()
	p := cfg.QubitParams()

	for _, name := range []string{"Ej", "Ec", "ng", "N_max_charge", "N_max"} {
		if !p.Has(name) {
			t.Errorf("missing qubit param %s", name)
		}
	}

	cfg.Qubit.NMax = 0
	if cfg.QubitParams().Has("N_max") {
		t.Error("N_max should be omitted when unset")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Qubit.Ej = 25
	cfg.Drive.Frequency = 5.5
	cfg.Sweep.AmpSteps = 11

	path := filepath.Join(t.TempDir(), "floqsim.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Qubit.Ej != 25 || loaded.Drive.Frequency != 5.5 || loaded.Sweep.AmpSteps != 11 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("transmon", "weak-drive")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Sweep.AmpStop != 0.05 {
		t.Errorf("expected amp_stop 0.05, got %v", cfg.Sweep.AmpStop)
	}
}

func TestGetPresetReturnsCopy(t *testing.T) {
	cfg := GetPreset("transmon", "default")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	cfg.Qubit.Ej = 99
	cfg.Sweep.AmpSteps = 1

	again := GetPreset("transmon", "default")
	if again.Qubit.Ej != 20 || again.Sweep.AmpSteps != 26 {
		t.Errorf("preset table mutated through returned config: %+v", again)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("transmon", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "default") != nil {
		t.Error("expected nil for nonexistent variant")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("transmon")
	if len(presets) == 0 {
		t.Error("expected presets for transmon")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent variant")
	}
}
