package qubit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Params maps named physical constants to values. All frequencies and
// energies are in GHz (h = 1). Constructors copy the map; instances never
// observe later mutation.
type Params map[string]float64

// Get returns the named parameter, or fallback when absent.
func (p Params) Get(name string, fallback float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return fallback
}

// Has reports whether the named parameter is present.
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

func (p Params) clone() Params {
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// require checks every name against p, reporting the first missing one.
func (p Params) require(names []string) error {
	for _, name := range names {
		if !p.Has(name) {
			return fmt.Errorf("%w: %s", ErrMissingParameter, name)
		}
	}
	return nil
}

// System is a bare quantum system: operators built in a working basis, the
// Hamiltonian diagonalized eagerly at construction, the truncated
// eigensystem cached as plain data. Implementations are immutable after
// construction; changing a parameter means constructing a new instance.
type System interface {
	// Dim is the truncated energy-eigenbasis dimension.
	Dim() int

	// ChargeDim is the working (charge) basis dimension.
	ChargeDim() int

	// Levels returns the cached eigenvalues ascending, in GHz. The returned
	// slice is shared; callers must not modify it.
	Levels() []float64

	// EigenbasisHamiltonian returns the truncated diagonal Hamiltonian
	// shifted so the ground eigenvalue is exactly zero.
	EigenbasisHamiltonian() *mat.Dense

	// TransformToEigenbasis re-expresses a working-basis operator in the
	// truncated energy eigenbasis: Uᵀ·op·U with eigenvectors as U's columns.
	TransformToEigenbasis(op mat.Matrix) (*mat.Dense, error)

	// Spectrum derives the 0↔1 transition frequency and anharmonicity.
	Spectrum() (Spectrum, error)
}

// Spectrum summarizes the low-lying level structure.
type Spectrum struct {
	Freq01        float64 // E1 - E0, GHz
	Anharmonicity float64 // (E2-E1) - (E1-E0), GHz
}

func (s Spectrum) String() string {
	return fmt.Sprintf("ω01 = %.6f GHz, α = %.3f MHz", s.Freq01, s.Anharmonicity*1e3)
}
