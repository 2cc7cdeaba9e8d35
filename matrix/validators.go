// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep probability kernels minimal by delegating shape/stochastic checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can match
//    them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Row sums use gonum/floats in fixed index order.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has length n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateUnitInterval checks that every element of x is finite and lies in
// [-eps, 1+eps].
// Errors: ErrNaNInf, ErrOutsideUnitInterval. Complexity: O(n).
func ValidateUnitInterval(x []float64, opts ...Option) error {
	o := gatherOptions(opts...)
	for _, v := range x {
		if isNonFinite(v) {
			return validatorErrorf("ValidateUnitInterval", ErrNaNInf)
		}
		if v < -o.eps || v > 1+o.eps {
			return validatorErrorf("ValidateUnitInterval", ErrOutsideUnitInterval)
		}
	}

	return nil
}

// ValidateDistribution checks that x is a probability vector: every entry in
// [0,1] and Σx = 1 within eps.
// Errors: ErrNilMatrix, ErrNaNInf, ErrOutsideUnitInterval, ErrNotStochastic.
// Complexity: O(n).
func ValidateDistribution(x []float64, opts ...Option) error {
	if x == nil {
		return validatorErrorf("ValidateDistribution", ErrNilMatrix)
	}
	if err := ValidateUnitInterval(x, opts...); err != nil {
		return validatorErrorf("ValidateDistribution", err)
	}
	o := gatherOptions(opts...)
	if math.Abs(floats.Sum(x)-1) > o.eps {
		return validatorErrorf("ValidateDistribution", ErrNotStochastic)
	}

	return nil
}

// ValidateRowStochastic checks that m is square and every row is a
// probability vector (entries in [0,1], row sum 1 within eps).
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrOutsideUnitInterval,
// ErrNotStochastic.
// Complexity: O(n²).
func ValidateRowStochastic(m *Dense, opts ...Option) error {
	if m == nil {
		return validatorErrorf("ValidateRowStochastic", ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateRowStochastic", err)
	}
	var i int
	for i = 0; i < m.r; i++ {
		if err := ValidateDistribution(m.data[i*m.c:(i+1)*m.c], opts...); err != nil {
			return validatorErrorf(fmt.Sprintf("ValidateRowStochastic: row %d", i), err)
		}
	}

	return nil
}
