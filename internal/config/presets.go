package config

var Presets = map[string]map[string]*Config{
	"transmon": {
		"default": {
			Qubit: QubitConfig{Variant: "transmon", Ej: 20, Ec: 0.25, NCharge: 15, NMax: 10},
			Drive: DriveConfig{MMax: 15, Detuning: 0.2, Coupling: "charge-number"},
			Sweep: SweepConfig{AmpStop: 0.2, AmpSteps: 26, Levels: 3},
		},
		"weak-drive": {
			Qubit: QubitConfig{Variant: "transmon", Ej: 20, Ec: 0.25, NCharge: 15, NMax: 10},
			Drive: DriveConfig{MMax: 10, Detuning: 0.3, Coupling: "charge-number"},
			Sweep: SweepConfig{AmpStop: 0.05, AmpSteps: 21, Levels: 3},
		},
		"strong-drive": {
			Qubit: QubitConfig{Variant: "transmon", Ej: 20, Ec: 0.25, NCharge: 15, NMax: 10},
			Drive: DriveConfig{MMax: 25, Detuning: 0.2, Coupling: "charge-number"},
			Sweep: SweepConfig{AmpStop: 0.5, AmpSteps: 51, Levels: 4},
		},
		"offset-charge": {
			Qubit: QubitConfig{Variant: "transmon", Ej: 20, Ec: 0.25, Ng: 0.25, NCharge: 15, NMax: 10},
			Drive: DriveConfig{MMax: 15, Detuning: 0.2, Coupling: "charge-number"},
			Sweep: SweepConfig{AmpStop: 0.2, AmpSteps: 26, Levels: 3},
		},
	},
}

func GetPreset(variant, preset string) *Config {
	variantPresets, ok := Presets[variant]
	if !ok {
		return nil
	}
	cfg, ok := variantPresets[preset]
	if !ok {
		return nil
	}
	// Callers layer flag overrides onto the result, so hand out a copy
	// rather than a pointer into the Presets table.
	cp := *cfg
	return &cp
}

func ListPresets(variant string) []string {
	variantPresets, ok := Presets[variant]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(variantPresets))
	for name := range variantPresets {
		names = append(names, name)
	}
	return names
}
