package operators

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrNotSquare indicates a matrix operation received a non-square input.
var ErrNotSquare = errors.New("operators: matrix is not square")

// ErrFactorization indicates the eigendecomposition failed to converge.
var ErrFactorization = errors.New("operators: eigendecomposition failed")

// Eigh diagonalizes a real symmetric matrix. Eigenvalues are returned in
// ascending order with the matching orthonormal eigenvectors as columns.
// The caller is responsible for passing a symmetric matrix; only the upper
// triangle is read.
func Eigh(a *mat.Dense) ([]float64, *mat.Dense, error) {
	r, c := a.Dims()
	if r != c {
		return nil, nil, ErrNotSquare
	}

	sym := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		for j := i; j < r; j++ {
			sym.SetSym(i, j, a.At(i, j))
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, ErrFactorization
	}

	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	return vals, &vecs, nil
}

// Kron returns the Kronecker (tensor) product a ⊗ b.
func Kron(a, b mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Kronecker(a, b)
	return &out
}

// IsSymmetric reports whether a is symmetric to within tol.
func IsSymmetric(a *mat.Dense, tol float64) bool {
	r, c := a.Dims()
	if r != c {
		return false
	}
	for i := 0; i < r; i++ {
		for j := i + 1; j < r; j++ {
			d := a.At(i, j) - a.At(j, i)
			if d > tol || d < -tol {
				return false
			}
		}
	}
	return true
}
