package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/floqsim/internal/qubit"
)

const (
	DefaultEj       = 20.0
	DefaultEc       = 0.25
	DefaultNCharge  = 15
	DefaultNMax     = 10
	DefaultMMax     = 15
	DefaultDetuning = 0.2
	DefaultAmpStop  = 0.2
	DefaultAmpSteps = 26
)

type Config struct {
	Qubit QubitConfig `yaml:"qubit"`
	Drive DriveConfig `yaml:"drive"`
	Sweep SweepConfig `yaml:"sweep"`
}

type QubitConfig struct {
	Variant string  `yaml:"variant"`
	Ej      float64 `yaml:"ej"`
	Ec      float64 `yaml:"ec"`
	Ng      float64 `yaml:"ng"`
	NCharge int     `yaml:"n_charge"`
	NMax    int     `yaml:"n_max"`
}

type DriveConfig struct {
	MMax int `yaml:"m_max"`
	// Frequency is the absolute drive frequency in GHz. When zero, the
	// drive runs at the bare qubit frequency plus Detuning.
	Frequency float64 `yaml:"frequency"`
	Detuning  float64 `yaml:"detuning"`
	// Coupling selects the registered coupling scheme (charge-number,
	// eigen-number).
	Coupling string `yaml:"coupling"`
}

type SweepConfig struct {
	AmpStart float64 `yaml:"amp_start"`
	AmpStop  float64 `yaml:"amp_stop"`
	AmpSteps int     `yaml:"amp_steps"`
	Levels   int     `yaml:"levels"`
	Workers  int     `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Qubit: QubitConfig{
			Variant: "transmon",
			Ej:      DefaultEj,
			Ec:      DefaultEc,
			NCharge: DefaultNCharge,
			NMax:    DefaultNMax,
		},
		Drive: DriveConfig{
			MMax:     DefaultMMax,
			Detuning: DefaultDetuning,
			Coupling: "charge-number",
		},
		Sweep: SweepConfig{
			AmpStop:  DefaultAmpStop,
			AmpSteps: DefaultAmpSteps,
			Levels:   3,
		},
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

func (c *Config) Validate() error {
	if c.Qubit.NCharge < 0 {
		return fmt.Errorf("config: n_charge must be >= 0, got %d", c.Qubit.NCharge)
	}
	if c.Drive.MMax < 0 {
		return fmt.Errorf("config: m_max must be >= 0, got %d", c.Drive.MMax)
	}
	if c.Sweep.AmpSteps < 1 {
		return fmt.Errorf("config: amp_steps must be >= 1, got %d", c.Sweep.AmpSteps)
	}
	if c.Sweep.AmpStop < c.Sweep.AmpStart {
		return fmt.Errorf("config: amp_stop %v below amp_start %v", c.Sweep.AmpStop, c.Sweep.AmpStart)
	}
	return nil
}

// QubitParams maps the qubit section onto the parameter names the qubit
// constructors expect.
func (c *Config) QubitParams() qubit.Params {
	p := qubit.Params{
		"Ej":           c.Qubit.Ej,
		"Ec":           c.Qubit.Ec,
		"ng":           c.Qubit.Ng,
		"N_max_charge": float64(c.Qubit.NCharge),
	}
	if c.Qubit.NMax > 0 {
		p["N_max"] = float64(c.Qubit.NMax)
	}
	return p
}

// DriveParams maps the drive section onto drive parameter names.
func (c *Config) DriveParams() qubit.Params {
	return qubit.Params{"M_max": float64(c.Drive.MMax)}
}

// Amplitudes expands the sweep section into the evaluation sequence.
func (c *Config) Amplitudes() []float64 {
	steps := c.Sweep.AmpSteps
	if steps == 1 {
		return []float64{c.Sweep.AmpStart}
	}
	amps := make([]float64, steps)
	span := c.Sweep.AmpStop - c.Sweep.AmpStart
	for i := range amps {
		amps[i] = c.Sweep.AmpStart + span*float64(i)/float64(steps-1)
	}
	return amps
}
