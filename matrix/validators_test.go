// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reichweite/matrix"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func TestValidateSquare(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquare(dense(t, [][]float64{{1, 2}})), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSquare(dense(t, [][]float64{{1}})))
}

func TestValidateVecLen(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}

func TestValidateDistribution(t *testing.T) {
	tests := []struct {
		name    string
		x       []float64
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"ok", []float64{0.25, 0.75}, nil},
		{"single", []float64{1}, nil},
		{"short", []float64{0.25, 0.5}, matrix.ErrNotStochastic},
		{"negative", []float64{-0.5, 1.5}, matrix.ErrOutsideUnitInterval},
		{"nan", []float64{math.NaN(), 1}, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateDistribution(tc.x)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateUnitInterval(t *testing.T) {
	require.NoError(t, matrix.ValidateUnitInterval([]float64{0, 1, 1 + 1e-12}))
	require.ErrorIs(t, matrix.ValidateUnitInterval([]float64{1.1}), matrix.ErrOutsideUnitInterval)
	require.ErrorIs(t, matrix.ValidateUnitInterval([]float64{math.Inf(1)}), matrix.ErrNaNInf)
}

func TestValidateRowStochastic(t *testing.T) {
	tests := []struct {
		name    string
		m       *matrix.Dense
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"non-square", dense(t, [][]float64{{1, 0}}), matrix.ErrNonSquare},
		{"ok", dense(t, [][]float64{{0.5, 0.5}, {1.0 / 6, 5.0 / 6}}), nil},
		{"bad sum", dense(t, [][]float64{{0.5, 0.5}, {0.2, 0.7}}), matrix.ErrNotStochastic},
		{"out of range", dense(t, [][]float64{{1.5, -0.5}, {0, 1}}), matrix.ErrOutsideUnitInterval},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateRowStochastic(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
