// SPDX-License-Identifier: MIT
// Package matrix - stationary distribution of a transition matrix.
//
// Purpose:
//   - Recover π with π·P = π and Σπ = 1, the abundance vector a Markov
//     stacking sequence settles to. A consistent model has W = π.
//
// Method:
//   - Stage 1: build A = Pᵀ - I, replace its last row with ones.
//   - Stage 2: solve A·π = e_n with gonum's LU-backed SolveVec.
//
// Complexity: O(n³) time, O(n²) space.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// StationaryDistribution returns the unique π with π·P = π and Σπ = 1.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular (no unique π, or the
// system is too ill-conditioned to trust).
func StationaryDistribution(P *Dense) ([]float64, error) {
	if P == nil {
		return nil, matrixErrorf("StationaryDistribution", ErrNilMatrix)
	}
	if err := ValidateSquare(P); err != nil {
		return nil, matrixErrorf("StationaryDistribution", err)
	}
	n := P.r

	a := mat.NewDense(n, n, nil)
	var i, j int
	for i = 0; i < n-1; i++ {
		for j = 0; j < n; j++ {
			v := P.data[j*n+i] // transpose
			if i == j {
				v--
			}
			a.Set(i, j, v)
		}
	}
	for j = 0; j < n; j++ {
		a.Set(n-1, j, 1)
	}
	b := mat.NewVecDense(n, nil)
	b.SetVec(n-1, 1)

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return nil, matrixErrorf("StationaryDistribution", ErrSingular)
	}
	out := make([]float64, n)
	for i = range out {
		out[i] = x.AtVec(i)
	}

	return out, nil
}
