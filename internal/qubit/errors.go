package qubit

import "errors"

// Domain errors for qubit construction and spectrum queries.
var (
	// ErrMissingParameter indicates a required parameter name was absent.
	ErrMissingParameter = errors.New("qubit: missing required parameter")

	// ErrInvalidTruncation indicates a basis truncation outside the valid range.
	ErrInvalidTruncation = errors.New("qubit: invalid basis truncation")

	// ErrDimensionMismatch indicates an operator with the wrong basis dimension.
	ErrDimensionMismatch = errors.New("qubit: operator dimension mismatch")

	// ErrInsufficientSpectrum indicates too few eigenpairs for the requested quantity.
	ErrInsufficientSpectrum = errors.New("qubit: insufficient eigenpairs for spectrum")
)
