// SPDX-License-Identifier: MIT
// Package matrix - public constructors and helpers.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for the shapes the
//     probability models hand out (diagonal abundance matrices, row-degenerate
//     transition matrices) and for the consistency checks run on them.
//
// Determinism & Policy:
//   - Fixed i→j loop orders; no map iteration.
//   - Every constructor returns (*Dense, error) so shape errors surface as sentinels.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// matrixErrorf wraps an error with a public-function tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NewFromRows builds a Dense from a rectangular slice of rows (values copied).
// Errors: ErrInvalidDimensions for empty input, ErrDimensionMismatch for ragged
// rows, ErrNaNInf for non-finite values.
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf("NewFromRows", ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, matrixErrorf("NewFromRows", err)
	}
	for i, row := range rows {
		if err = m.SetRow(i, row); err != nil {
			return nil, matrixErrorf("NewFromRows", err)
		}
	}

	return m, nil
}

// NewDiag returns the n×n matrix with diag = vals and zeros elsewhere (n = len(vals)).
// This is the canonical "distribution matrix" form diag(W).
// Complexity: O(n^2).
func NewDiag(vals []float64) (*Dense, error) {
	m, err := NewDense(len(vals), len(vals))
	if err != nil {
		return nil, matrixErrorf("NewDiag", err)
	}
	for i, v := range vals {
		if err = m.Set(i, i, v); err != nil {
			return nil, matrixErrorf("NewDiag", err)
		}
	}

	return m, nil
}

// NewRepeatedRows returns the n×len(row) matrix whose every row equals row.
// Used for zero-memory transition matrices (P[i][j] = W[j]).
// Complexity: O(n*len(row)).
func NewRepeatedRows(row []float64, n int) (*Dense, error) {
	m, err := NewDense(n, len(row))
	if err != nil {
		return nil, matrixErrorf("NewRepeatedRows", err)
	}
	for i := 0; i < n; i++ {
		if err = m.SetRow(i, row); err != nil {
			return nil, matrixErrorf("NewRepeatedRows", err)
		}
	}

	return m, nil
}

// Diagonal returns a copy of the main diagonal of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Diagonal(m *Dense) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf("Diagonal", ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("Diagonal", err)
	}
	out := make([]float64, m.r)
	for i := range out {
		out[i] = m.data[i*m.c+i]
	}

	return out, nil
}

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Complexity: O(rc).
func RowSums(m *Dense) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf("RowSums", ErrNilMatrix)
	}
	out := make([]float64, m.r)
	for i := range out {
		out[i] = floats.Sum(m.data[i*m.c : (i+1)*m.c])
	}

	return out, nil
}

// VecMul returns the row-vector product x·m (len(x) must equal Rows()).
// For a transition matrix P and abundance vector W, W·P = W holds when W is
// the stationary distribution of P.
// Complexity: O(rc).
func VecMul(x []float64, m *Dense) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf("VecMul", ErrNilMatrix)
	}
	if err := ValidateVecLen(x, m.r); err != nil {
		return nil, matrixErrorf("VecMul", err)
	}
	out := make([]float64, m.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		xi := x[i]
		for j = 0; j < m.c; j++ {
			out[j] += xi * m.data[i*m.c+j]
		}
	}

	return out, nil
}

// ClampFloat returns v limited to [lo, hi]. NaN passes through unchanged.
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if a == nil || b == nil {
		return false, matrixErrorf("AllClose", ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return false, matrixErrorf("AllClose", ErrDimensionMismatch)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for k := range a.data {
		x, y := a.data[k], b.data[k]
		if math.IsNaN(x) || math.IsNaN(y) {
			return false, nil
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false, nil
		}
	}

	return true, nil
}
