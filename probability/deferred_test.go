package probability_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reichweite/probability"
)

// TestWritesAreDeferred ensures writes do not touch the published state.
func TestWritesAreDeferred(t *testing.T) {
	m := mustNew(t, 1, 2)
	before := m.ProbabilityMatrix()
	n := counter(m)

	require.NoError(t, m.SetParam("W1", 0.1))
	assert.True(t, m.Pending())
	assert.Equal(t, 0, *n)
	assert.Equal(t, before.String(), m.ProbabilityMatrix().String())
}

// TestBurstCoalescesIntoOneRecompute checks one notification per settle.
func TestBurstCoalescesIntoOneRecompute(t *testing.T) {
	m := mustNew(t, 1, 3)
	n := counter(m)

	require.NoError(t, m.SetParam("W1", 0.3))
	require.NoError(t, m.SetParam("P11_or_P22", 0.4))
	require.NoError(t, m.SetParam("G1", 0.5))
	assert.Equal(t, 0, *n)

	require.NoError(t, m.Flush())
	assert.Equal(t, 1, *n)
	assert.False(t, m.Pending())

	require.NoError(t, m.Flush()) // clean: no recompute
	assert.Equal(t, 1, *n)
}

// TestDistributionArraySettles forces the pending recompute on read.
func TestDistributionArraySettles(t *testing.T) {
	m := mustNew(t, 0, 3)
	n := counter(m)
	require.NoError(t, m.SetParam("W1", 0.6))

	w, err := m.DistributionArray()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, w[0]+w[1]+w[2], tol)
	assert.InDelta(t, 0.6, w[0], tol)
	assert.Equal(t, 1, *n)
	assert.False(t, m.Pending())
}

// TestBatchSettlesOnce groups writes through the Setter.
func TestBatchSettlesOnce(t *testing.T) {
	m := mustNew(t, 1, 2)
	n := counter(m)

	err := m.Batch(func(s probability.Setter) error {
		if err := s.SetParam("W1", 0.25); err != nil {
			return err
		}
		v, err := s.Param("W1")
		if err != nil {
			return err
		}
		assert.Equal(t, 0.25, v)
		return s.SetParam("P11_or_P22", 0.5)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, *n)
	assert.InDelta(t, 5.0/6.0, at(t, m, 1, 1), tol)

	err = m.Batch(func(s probability.Setter) error { return s.SetParam("nope", 1) })
	require.ErrorIs(t, err, probability.ErrUnknownParameter)
	assert.Equal(t, 1, *n)
}

// TestUpdateIsIdempotent compares two consecutive updates bit for bit.
func TestUpdateIsIdempotent(t *testing.T) {
	for _, tc := range []struct{ r, g int }{{0, 3}, {1, 2}, {1, 3}} {
		m := mustNew(t, tc.r, tc.g)
		require.NoError(t, m.Update())
		w1, err := m.DistributionArray()
		require.NoError(t, err)
		p1 := m.ProbabilityMatrix()

		require.NoError(t, m.Update())
		w2, err := m.DistributionArray()
		require.NoError(t, err)
		p2 := m.ProbabilityMatrix()

		assert.Equal(t, w1, w2)
		assert.Equal(t, p1, p2)
	}
}

// TestUpdateAlwaysNotifies emits once per explicit update.
func TestUpdateAlwaysNotifies(t *testing.T) {
	m := mustNew(t, 0, 2)
	n := counter(m)
	require.NoError(t, m.Update())
	require.NoError(t, m.Update())
	assert.Equal(t, 2, *n)
}

// TestSubscribeCancel stops delivery after cancel.
func TestSubscribeCancel(t *testing.T) {
	m := mustNew(t, 0, 2)
	calls := 0
	cancel := m.Subscribe(func() { calls++ })
	require.NoError(t, m.Update())
	cancel()
	cancel() // idempotent
	require.NoError(t, m.Update())
	assert.Equal(t, 1, calls)
}

// TestSubscriberMayReadModel checks notifications fire outside the lock.
func TestSubscriberMayReadModel(t *testing.T) {
	m := mustNew(t, 1, 2)
	var seen []float64
	m.Subscribe(func() {
		w, err := m.DistributionArray()
		require.NoError(t, err)
		seen = w
	})
	require.NoError(t, m.SetParam("W1", 0.4))
	require.NoError(t, m.Flush())
	assert.InDeltaSlice(t, []float64{0.4, 0.6}, seen, tol)
}

// TestSnapshotRestore round-trips every independent parameter.
func TestSnapshotRestore(t *testing.T) {
	src := mustNew(t, 1, 3, probability.WithValues(map[string]float64{
		"W1": 0.3, "P11_or_P22": 0.2, "G1": 0.4, "G2": 0.6, "G3": 0.5, "G4": 0.3,
	}))
	snap := src.Snapshot()
	require.Len(t, snap, len(src.IndependentLabelMap()))

	dst := mustNew(t, 1, 3)
	n := counter(dst)
	require.NoError(t, dst.Restore(snap))
	assert.Equal(t, 1, *n)
	assert.Equal(t, src.ProbabilityMatrix().String(), dst.ProbabilityMatrix().String())

	err := dst.Restore(map[string]float64{"W1": 0.1, "W9": 0.2})
	require.ErrorIs(t, err, probability.ErrUnknownParameter)
	assert.Equal(t, 0.3, param(t, dst, "W1")) // nothing written
}

// TestNonFiniteRejected rejects NaN and Inf while clamping finite values.
func TestNonFiniteRejected(t *testing.T) {
	m := mustNew(t, 0, 2)
	require.ErrorIs(t, m.SetParam("W1", math.NaN()), probability.ErrNonFinite)
	require.ErrorIs(t, m.SetParam("W1", math.Inf(-1)), probability.ErrNonFinite)
	assert.False(t, m.Pending())

	require.NoError(t, m.SetParam("W1", 2))
	assert.Equal(t, 1.0, param(t, m, "W1"))
}
