// Package operators builds truncated quantum operators over finite
// integer-indexed bases.
//
// Bases come in two flavors:
//
//   - charge-like: basis states indexed -N..N, dimension 2N+1
//   - energy-like: basis states indexed 0..D-1, dimension D
//
// All operators are dense real matrices ([mat.Dense]); every Hamiltonian
// representable in this repository is real symmetric, so the Hermitian
// eigenproblem reduces to [Eigh].
//
// Truncation boundaries are hard: shift and hopping operators get no
// contribution past the edges of the basis. This is a finite-basis
// artifact, not physical periodicity.
package operators
