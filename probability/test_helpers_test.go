// SPDX-License-Identifier: MIT
// Package probability_test contains shared fixtures.

package probability_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reichweite/matrix"
	"github.com/katalvlaran/reichweite/probability"
)

// tol is the tolerance for sums and closed-form comparisons.
const tol = 1e-9

// structure is a minimal owning structure for Select.
type structure struct{ r, g int }

func (s structure) Reichweite() int { return s.r }
func (s structure) Components() int { return s.g }

// pointerStructure implements Structure on its pointer, so a typed nil
// dereferences if its methods are called.
type pointerStructure struct{ r, g int }

func (s *pointerStructure) Reichweite() int { return s.r }
func (s *pointerStructure) Components() int { return s.g }

// mustNew builds a model or fails the test.
func mustNew(t *testing.T, r, g int, opts ...probability.Option) probability.Model {
	t.Helper()
	m, err := probability.New(r, g, opts...)
	require.NoError(t, err)
	require.NotNil(t, m)

	return m
}

// requireConsistent settles m and checks that W is a distribution, P is
// row-stochastic and W is stationary under P.
func requireConsistent(t *testing.T, m probability.Model) []float64 {
	t.Helper()
	w, err := m.DistributionArray()
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateDistribution(w, matrix.WithEpsilon(tol)))
	P := m.ProbabilityMatrix()
	require.NoError(t, matrix.ValidateRowStochastic(P, matrix.WithEpsilon(tol)))

	// W is stationary under P: W·P = W.
	wp, err := matrix.VecMul(w, P)
	require.NoError(t, err)
	require.InDeltaSlice(t, w, wp, tol)

	return w
}

// at reads P[i][j] from the last completed update.
func at(t *testing.T, m probability.Model, i, j int) float64 {
	t.Helper()
	v, err := m.ProbabilityMatrix().At(i, j)
	require.NoError(t, err)

	return v
}

// param reads an independent parameter.
func param(t *testing.T, m probability.Model, name string) float64 {
	t.Helper()
	v, err := m.Param(name)
	require.NoError(t, err)

	return v
}

// counter subscribes to m and returns a pointer to the notification count.
func counter(m probability.Model) *int {
	n := new(int)
	m.Subscribe(func() { *n++ })

	return n
}

// requireRowStochastic checks the last completed P without settling.
func requireRowStochastic(t *testing.T, m probability.Model) {
	t.Helper()
	require.NoError(t, matrix.ValidateRowStochastic(m.ProbabilityMatrix(), matrix.WithEpsilon(tol)))
}
