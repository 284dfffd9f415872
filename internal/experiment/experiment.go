// Package experiment wires configuration, qubit construction, and the
// sweep driver into complete runs.
package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/san-kum/floqsim/internal/config"
	"github.com/san-kum/floqsim/internal/floquet"
	"github.com/san-kum/floqsim/internal/metrics"
	"github.com/san-kum/floqsim/internal/qubit"
	"github.com/san-kum/floqsim/internal/sweep"
)

// Result bundles everything one experiment run produces.
type Result struct {
	Spectrum  qubit.Spectrum
	Frequency float64
	Sweep     *sweep.Result
	Metrics   map[string]float64
	Elapsed   time.Duration
}

type Experiment struct {
	cfg    *config.Config
	log    zerolog.Logger
	driven *floquet.DrivenQubit
	spec   qubit.Spectrum
}

func New(cfg *config.Config, log zerolog.Logger) *Experiment {
	return &Experiment{cfg: cfg, log: log}
}

// Setup validates the configuration and constructs the qubit, coupling, and
// driven system.
func (e *Experiment) Setup() error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	registry := NewRegistry()

	q, err := registry.GetQubit(e.cfg.Qubit.Variant, e.cfg.QubitParams())
	if err != nil {
		return err
	}

	spec, err := q.Spectrum()
	if err != nil {
		return err
	}
	e.spec = spec

	scheme := e.cfg.Drive.Coupling
	if scheme == "" {
		scheme = "charge-number"
	}
	coupling, err := registry.GetCoupling(scheme, q)
	if err != nil {
		return err
	}

	driven, err := floquet.NewDrivenQubit(e.cfg.DriveParams(), q, coupling)
	if err != nil {
		return err
	}
	e.driven = driven

	e.log.Debug().
		Str("variant", e.cfg.Qubit.Variant).
		Str("coupling", scheme).
		Int("extended_dim", driven.Dim()).
		Float64("freq01_ghz", spec.Freq01).
		Float64("anharmonicity_mhz", spec.Anharmonicity*1e3).
		Msg("driven system constructed")
	return nil
}

// Frequency resolves the drive frequency: the configured absolute value, or
// the bare qubit frequency plus the configured detuning.
func (e *Experiment) Frequency() float64 {
	if e.cfg.Drive.Frequency != 0 {
		return e.cfg.Drive.Frequency
	}
	return e.spec.Freq01 + e.cfg.Drive.Detuning
}

// Spectrum returns the bare spectrum summary computed during Setup.
func (e *Experiment) Spectrum() qubit.Spectrum { return e.spec }

// Driven returns the constructed driven system.
func (e *Experiment) Driven() *floquet.DrivenQubit { return e.driven }

// Run executes the amplitude sweep and reduces the curves to metrics.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.driven == nil {
		return nil, fmt.Errorf("experiment: not set up")
	}

	freq := e.Frequency()
	amps := e.cfg.Amplitudes()

	e.log.Info().
		Float64("frequency_ghz", freq).
		Int("points", len(amps)).
		Int("workers", e.cfg.Sweep.Workers).
		Msg("sweep started")

	start := time.Now()
	res, err := sweep.Run(ctx, e.driven, sweep.Config{
		Frequency:  freq,
		Amplitudes: amps,
		Levels:     e.cfg.Sweep.Levels,
		Workers:    e.cfg.Sweep.Workers,
	})
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	vals := metrics.ObserveAll(res, metrics.NewStarkShift(), metrics.NewAnharmonicityDrift())

	e.log.Info().
		Dur("elapsed", elapsed).
		Float64("stark_shift_mhz", vals["stark_shift"]*1e3).
		Float64("anharmonicity_drift", vals["anharmonicity_drift"]).
		Msg("sweep finished")

	return &Result{
		Spectrum:  e.spec,
		Frequency: freq,
		Sweep:     res,
		Metrics:   vals,
		Elapsed:   elapsed,
	}, nil
}
