package qubit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/floqsim/internal/operators"
)

// transmonRequired lists the parameters every Transmon needs: Josephson
// energy Ej, charging energy Ec, charge offset ng, and the charge-basis
// half range N_max_charge. N_max (energy-basis truncation) is optional and
// defaults to the full charge dimension.
var transmonRequired = []string{"Ej", "Ec", "ng", "N_max_charge"}

// Transmon is a charge qubit in the transmon regime: H = 4Ec(N - ng)² - Ej·cosφ
// built in the charge basis -N_max_charge..N_max_charge, diagonalized at
// construction with the eigensystem truncated to the lowest N_max pairs.
type Transmon struct {
	params Params

	chargeDim int
	dim       int

	number   *mat.Dense
	hopping  *mat.Dense
	identity *mat.Dense

	levels []float64 // ascending, untruncated charge-basis eigenvalues kept to dim
	vecs   *mat.Dense
}

// NewTransmon validates the parameter set, builds the charge-basis
// operators and Hamiltonian, and diagonalizes eagerly.
func NewTransmon(params Params) (*Transmon, error) {
	if err := params.require(transmonRequired); err != nil {
		return nil, err
	}

	halfRange := int(params["N_max_charge"])
	if halfRange < 0 {
		return nil, fmt.Errorf("%w: N_max_charge = %d", ErrInvalidTruncation, halfRange)
	}
	chargeDim := 2*halfRange + 1

	dim := chargeDim
	if params.Has("N_max") {
		dim = int(params["N_max"])
		if dim < 1 || dim > chargeDim {
			return nil, fmt.Errorf("%w: N_max = %d exceeds charge dimension %d", ErrInvalidTruncation, dim, chargeDim)
		}
	}

	t := &Transmon{
		params:    params.clone(),
		chargeDim: chargeDim,
		dim:       dim,
	}

	if err := t.buildOperators(halfRange); err != nil {
		return nil, err
	}
	if err := t.diagonalize(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Transmon) buildOperators(halfRange int) error {
	number, err := operators.Number(halfRange)
	if err != nil {
		return err
	}
	hopping, err := operators.Hopping(halfRange)
	if err != nil {
		return err
	}
	t.number = number
	t.hopping = hopping
	t.identity = operators.Identity(t.chargeDim)
	return nil
}

// Hamiltonian assembles 4·Ec·(N - ng·I)² - Ej·cosφ in the charge basis,
// with cosφ the nearest-neighbor hopping operator.
func (t *Transmon) Hamiltonian() *mat.Dense {
	ec := t.params["Ec"]
	ej := t.params["Ej"]
	ng := t.params["ng"]

	var offset mat.Dense
	offset.Scale(ng, t.identity)

	var shifted mat.Dense
	shifted.Sub(t.number, &offset)

	var squared mat.Dense
	squared.Mul(&shifted, &shifted)

	var charging mat.Dense
	charging.Scale(4*ec, &squared)

	var josephson mat.Dense
	josephson.Scale(ej, t.hopping)

	var h mat.Dense
	h.Sub(&charging, &josephson)
	return &h
}

func (t *Transmon) diagonalize() error {
	vals, vecs, err := operators.Eigh(t.Hamiltonian())
	if err != nil {
		return err
	}

	t.levels = vals[:t.dim]
	t.vecs = mat.NewDense(t.chargeDim, t.dim, nil)
	t.vecs.Copy(vecs.Slice(0, t.chargeDim, 0, t.dim))
	return nil
}

func (t *Transmon) Dim() int       { return t.dim }
func (t *Transmon) ChargeDim() int { return t.chargeDim }

func (t *Transmon) Levels() []float64 { return t.levels }

// NumberOperator returns the charge-basis number operator, the usual drive
// coupling for charge-driven transmons.
func (t *Transmon) NumberOperator() *mat.Dense { return t.number }

func (t *Transmon) EigenbasisHamiltonian() *mat.Dense {
	h := mat.NewDense(t.dim, t.dim, nil)
	ground := t.levels[0]
	for i, e := range t.levels {
		h.Set(i, i, e-ground)
	}
	return h
}

func (t *Transmon) TransformToEigenbasis(op mat.Matrix) (*mat.Dense, error) {
	r, c := op.Dims()
	if r != t.chargeDim || c != t.chargeDim {
		return nil, fmt.Errorf("%w: got %dx%d, charge basis is %d", ErrDimensionMismatch, r, c, t.chargeDim)
	}

	var opU mat.Dense
	opU.Mul(op, t.vecs)

	var out mat.Dense
	out.Mul(t.vecs.T(), &opU)
	return &out, nil
}

func (t *Transmon) Spectrum() (Spectrum, error) {
	if len(t.levels) < 3 {
		return Spectrum{}, fmt.Errorf("%w: have %d, need 3", ErrInsufficientSpectrum, len(t.levels))
	}
	e0, e1, e2 := t.levels[0], t.levels[1], t.levels[2]
	return Spectrum{
		Freq01:        e1 - e0,
		Anharmonicity: (e2 - e1) - (e1 - e0),
	}, nil
}
