package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/floqsim/internal/sweep"
)

func TestStarkShift(t *testing.T) {
	m := NewStarkShift()

	m.Observe(0, 5.0, -0.3)
	m.Observe(0.1, 4.95, -0.3)
	m.Observe(0.2, 4.9, -0.3)

	if math.Abs(m.Value()-(-0.1)) > 1e-12 {
		t.Errorf("stark shift = %v, want -0.1", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("value after reset = %v", m.Value())
	}
}

func TestStarkShiftEmpty(t *testing.T) {
	m := NewStarkShift()
	if m.Value() != 0 {
		t.Errorf("empty metric value = %v", m.Value())
	}
}

func TestAnharmonicityDrift(t *testing.T) {
	m := NewAnharmonicityDrift()

	m.Observe(0, 5.0, -0.30)
	m.Observe(0.1, 4.95, -0.33)
	m.Observe(0.2, 4.9, -0.27)

	want := 0.1 // |-0.33 - (-0.30)| / 0.30
	if math.Abs(m.Value()-want) > 1e-12 {
		t.Errorf("drift = %v, want %v", m.Value(), want)
	}
}

func TestAnharmonicityDriftZeroBare(t *testing.T) {
	m := NewAnharmonicityDrift()
	m.Observe(0, 5.0, 0)
	m.Observe(0.1, 4.9, -0.1)
	if m.Value() != 0 {
		t.Errorf("drift with zero bare anharmonicity = %v, want 0", m.Value())
	}
}

func TestObserveAll(t *testing.T) {
	res := &sweep.Result{
		Amplitudes:    []float64{0, 0.1},
		QubitFreq:     []float64{5.0, 4.9},
		Anharmonicity: []float64{-0.3, -0.3},
	}

	vals := ObserveAll(res, NewStarkShift(), NewAnharmonicityDrift())
	if len(vals) != 2 {
		t.Fatalf("expected 2 metrics, got %d", len(vals))
	}
	if math.Abs(vals["stark_shift"]-(-0.1)) > 1e-12 {
		t.Errorf("stark_shift = %v", vals["stark_shift"])
	}
	if vals["anharmonicity_drift"] != 0 {
		t.Errorf("anharmonicity_drift = %v", vals["anharmonicity_drift"])
	}
}
