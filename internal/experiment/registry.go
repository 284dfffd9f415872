package experiment

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/floqsim/internal/qubit"
)

// chargeCoupled is satisfied by qubit variants that expose their
// charge-basis number operator for drive coupling.
type chargeCoupled interface {
	qubit.System
	NumberOperator() *mat.Dense
}

type Registry struct {
	qubits    map[string]func(qubit.Params) (qubit.System, error)
	couplings map[string]func(qubit.System) (*mat.Dense, error)
}

func NewRegistry() *Registry {
	r := &Registry{
		qubits:    make(map[string]func(qubit.Params) (qubit.System, error)),
		couplings: make(map[string]func(qubit.System) (*mat.Dense, error)),
	}

	r.qubits["transmon"] = func(p qubit.Params) (qubit.System, error) {
		return qubit.NewTransmon(p)
	}

	// charge-number: the charge-basis number operator transformed into the
	// qubit eigenbasis. This is the coupling a charge-driven transmon wants
	// and performs the basis transform the library otherwise leaves to the
	// caller.
	r.couplings["charge-number"] = func(q qubit.System) (*mat.Dense, error) {
		cc, ok := q.(chargeCoupled)
		if !ok {
			return nil, fmt.Errorf("experiment: qubit variant does not expose a charge coupling")
		}
		return q.TransformToEigenbasis(cc.NumberOperator())
	}

	// eigen-number: a number-like coupling taken directly in the eigenbasis
	// without transformation, for callers that build their own operator.
	r.couplings["eigen-number"] = func(q qubit.System) (*mat.Dense, error) {
		op := mat.NewDense(q.Dim(), q.Dim(), nil)
		for i := 0; i < q.Dim(); i++ {
			op.Set(i, i, float64(i))
		}
		return op, nil
	}

	return r
}

func (r *Registry) GetQubit(variant string, params qubit.Params) (qubit.System, error) {
	fn, ok := r.qubits[variant]
	if !ok {
		return nil, fmt.Errorf("experiment: unknown qubit variant: %s", variant)
	}
	return fn(params)
}

func (r *Registry) GetCoupling(scheme string, q qubit.System) (*mat.Dense, error) {
	fn, ok := r.couplings[scheme]
	if !ok {
		return nil, fmt.Errorf("experiment: unknown coupling scheme: %s", scheme)
	}
	return fn(q)
}

func (r *Registry) ListQubits() []string {
	names := make([]string, 0, len(r.qubits))
	for name := range r.qubits {
		names = append(names, name)
	}
	return names
}

func (r *Registry) ListCouplings() []string {
	names := make([]string, 0, len(r.couplings))
	for name := range r.couplings {
		names = append(names, name)
	}
	return names
}
