// Package sweep drives amplitude sweeps over a driven qubit, producing
// consistently labeled eigen-energies and the derived ac-Stark curves.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/san-kum/floqsim/internal/floquet"
)

// ErrNoAmplitudes indicates a sweep with an empty amplitude sequence.
var ErrNoAmplitudes = errors.New("sweep: no amplitudes given")

// Config describes one amplitude sweep at fixed drive frequency.
type Config struct {
	Frequency  float64   // drive frequency, GHz
	Amplitudes []float64 // evaluation points, output preserves this order
	Levels     int       // tracked qubit levels; 0 means 3
	Workers    int       // parallel diagonalizations; 0 means GOMAXPROCS
}

// Result holds per-amplitude labeled energies and derived quantities.
// Slices are indexed in the order of Config.Amplitudes.
type Result struct {
	Frequency     float64
	Amplitudes    []float64
	Energies      [][]float64 // [amplitude][level], photon-zero sector
	QubitFreq     []float64   // E1 - E0
	Anharmonicity []float64   // E2 + E0 - 2·E1
}

// Run computes the zero-photon index assignment once for the sweep
// frequency, then diagonalizes the effective Hamiltonian at every amplitude
// and selects the labeled energies. Amplitude points are independent and
// run on a bounded worker set; output ordering follows the input sequence.
func Run(ctx context.Context, d *floquet.DrivenQubit, cfg Config) (*Result, error) {
	if len(cfg.Amplitudes) == 0 {
		return nil, ErrNoAmplitudes
	}

	levels := cfg.Levels
	if levels <= 0 {
		levels = 3
	}
	if levels > d.Qubit().Dim() {
		return nil, fmt.Errorf("sweep: %d levels requested, qubit has %d", levels, d.Qubit().Dim())
	}

	assignment, err := d.AssignStateIndices(cfg.Frequency)
	if err != nil {
		return nil, err
	}
	idxs := d.ZeroPhotonIndices(assignment)[:levels]

	result := &Result{
		Frequency:     cfg.Frequency,
		Amplitudes:    append([]float64(nil), cfg.Amplitudes...),
		Energies:      make([][]float64, len(cfg.Amplitudes)),
		QubitFreq:     make([]float64, len(cfg.Amplitudes)),
		Anharmonicity: make([]float64, len(cfg.Amplitudes)),
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(cfg.Amplitudes) {
		workers = len(cfg.Amplitudes)
	}

	jobs := make(chan int)
	errs := make([]error, len(cfg.Amplitudes))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				errs[i] = evalPoint(d, cfg.Frequency, result, i, idxs)
			}
		}()
	}

	feed := func() error {
		defer close(jobs)
		for i := range cfg.Amplitudes {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- i:
			}
		}
		return nil
	}
	feedErr := feed()
	wg.Wait()

	if feedErr != nil {
		return nil, feedErr
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// evalPoint diagonalizes one sweep point and writes to its own output slot.
func evalPoint(d *floquet.DrivenQubit, frequency float64, result *Result, i int, idxs []int) error {
	vals, _, err := d.Eigensystem(frequency, result.Amplitudes[i])
	if err != nil {
		return err
	}

	energies := make([]float64, len(idxs))
	for a, idx := range idxs {
		energies[a] = vals[idx]
	}
	result.Energies[i] = energies

	if len(energies) >= 2 {
		result.QubitFreq[i] = energies[1] - energies[0]
	}
	if len(energies) >= 3 {
		result.Anharmonicity[i] = energies[2] + energies[0] - 2*energies[1]
	}
	return nil
}
