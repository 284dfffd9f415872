package operators

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalidDimension indicates an operator was requested over an empty or
// negative basis range.
var ErrInvalidDimension = errors.New("operators: invalid basis dimension")

// Number returns the diagonal number (charge) operator over the basis
// -halfRange..halfRange: the entry for basis state n is n itself.
func Number(halfRange int) (*mat.Dense, error) {
	if halfRange < 0 {
		return nil, fmt.Errorf("%w: half range %d", ErrInvalidDimension, halfRange)
	}
	dim := 2*halfRange + 1
	op := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		op.Set(i, i, float64(i-halfRange))
	}
	return op, nil
}

// Hopping returns ½ Σ_n (|n+1⟩⟨n| + |n⟩⟨n+1|) over -halfRange..halfRange.
// Off-diagonal entries are 0.5; the truncation edges get no neighbor term.
func Hopping(halfRange int) (*mat.Dense, error) {
	if halfRange < 0 {
		return nil, fmt.Errorf("%w: half range %d", ErrInvalidDimension, halfRange)
	}
	dim := 2*halfRange + 1
	op := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim-1; i++ {
		op.Set(i+1, i, 0.5)
		op.Set(i, i+1, 0.5)
	}
	return op, nil
}

// Identity returns the dim x dim identity matrix.
func Identity(dim int) *mat.Dense {
	op := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		op.Set(i, i, 1)
	}
	return op
}

// Raise returns the shift operator satisfying raise|m⟩ = |m+1⟩, zero at the
// top truncation edge.
func Raise(halfRange int) (*mat.Dense, error) {
	if halfRange < 0 {
		return nil, fmt.Errorf("%w: half range %d", ErrInvalidDimension, halfRange)
	}
	dim := 2*halfRange + 1
	op := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim-1; i++ {
		op.Set(i+1, i, 1)
	}
	return op, nil
}

// Lower returns the shift operator satisfying lower|m⟩ = |m-1⟩, zero at the
// bottom truncation edge.
func Lower(halfRange int) (*mat.Dense, error) {
	if halfRange < 0 {
		return nil, fmt.Errorf("%w: half range %d", ErrInvalidDimension, halfRange)
	}
	dim := 2*halfRange + 1
	op := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim-1; i++ {
		op.Set(i, i+1, 1)
	}
	return op, nil
}
