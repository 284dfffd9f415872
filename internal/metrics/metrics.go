// Package metrics derives summary quantities from sweep curves.
package metrics

import (
	"math"

	"github.com/san-kum/floqsim/internal/sweep"
)

// Metric observes sweep points in amplitude order and reduces them to one
// number.
type Metric interface {
	Name() string
	Observe(amplitude, qubitFreq, anharmonicity float64)
	Value() float64
	Reset()
}

// ObserveAll feeds a sweep result through a set of metrics and collects
// their values by name.
func ObserveAll(res *sweep.Result, ms ...Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
		for i := range res.Amplitudes {
			m.Observe(res.Amplitudes[i], res.QubitFreq[i], res.Anharmonicity[i])
		}
	}

	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// StarkShift reports the qubit-frequency shift at the last observed
// amplitude relative to the first (zero-drive) point, in GHz.
type StarkShift struct {
	first   float64
	last    float64
	samples int
}

func NewStarkShift() *StarkShift { return &StarkShift{} }

func (s *StarkShift) Name() string { return "stark_shift" }

func (s *StarkShift) Observe(amplitude, qubitFreq, anharmonicity float64) {
	if s.samples == 0 {
		s.first = qubitFreq
	}
	s.last = qubitFreq
	s.samples++
}

func (s *StarkShift) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.last - s.first
}

func (s *StarkShift) Reset() {
	s.first = 0
	s.last = 0
	s.samples = 0
}

// AnharmonicityDrift reports the maximum relative deviation of the
// anharmonicity from its zero-drive value.
type AnharmonicityDrift struct {
	bare    float64
	max     float64
	samples int
}

func NewAnharmonicityDrift() *AnharmonicityDrift { return &AnharmonicityDrift{} }

func (a *AnharmonicityDrift) Name() string { return "anharmonicity_drift" }

func (a *AnharmonicityDrift) Observe(amplitude, qubitFreq, anharmonicity float64) {
	if a.samples == 0 {
		a.bare = anharmonicity
	}
	a.samples++
	if a.bare == 0 {
		return
	}
	drift := math.Abs(anharmonicity-a.bare) / math.Abs(a.bare)
	if drift > a.max {
		a.max = drift
	}
}

func (a *AnharmonicityDrift) Value() float64 { return a.max }

func (a *AnharmonicityDrift) Reset() {
	a.bare = 0
	a.max = 0
	a.samples = 0
}
