// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Functions return these sentinels (optionally wrapped with a call-site
// tag via %w) and tests check them via errors.Is. No function panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy grepping.
// Wrap with fmt.Errorf("ctx: %w", ErrX) at the detection site; callers match
// with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// (matrix vs matrix, or matrix vs vector length).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix or vector was passed.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrOutsideUnitInterval signals an entry outside [0,1] (beyond eps) where a
	// probability was required.
	ErrOutsideUnitInterval = errors.New("matrix: value outside [0,1]")

	// ErrNotStochastic signals a row (or vector) whose sum deviates from 1 by more than eps.
	ErrNotStochastic = errors.New("matrix: not stochastic within eps")

	// ErrSingular signals a linear system without a unique solution, e.g. a
	// reducible transition matrix with several stationary distributions.
	ErrSingular = errors.New("matrix: singular system")
)
