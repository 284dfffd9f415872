// Package qubit defines bare superconducting qubit models.
//
// A [System] builds its operators in a working (charge) basis, diagonalizes
// its Hamiltonian once at construction, and exposes the truncated
// eigensystem: levels, the ground-zeroed eigenbasis Hamiltonian, and a
// change-of-basis transform for operators. All quantities are in GHz with
// h = 1.
//
// [Transmon] is the concrete variant: H = 4Ec(N - ng)² - Ej·cosφ.
package qubit
