package probability_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reichweite/probability"
)

// TestSelectSupported checks the variant and label-map size for every supported pair.
func TestSelectSupported(t *testing.T) {
	cases := []struct {
		name   string
		r, g   int
		labels int
	}{
		{"R0 G1", 0, 1, 0},
		{"R0 G2", 0, 2, 1},
		{"R0 G3", 0, 3, 2},
		{"R0 G4", 0, 4, 3},
		{"G1 ignores R", 3, 1, 0},
		{"R1 G2", 1, 2, 2},
		{"R1 G3", 1, 3, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := probability.Select(structure{r: tc.r, g: tc.g})
			require.NoError(t, err)
			require.NotNil(t, m)
			assert.Len(t, m.IndependentLabelMap(), tc.labels)
			assert.Equal(t, tc.g, m.Components())
			requireConsistent(t, m)
		})
	}
}

// TestSelectVariantTypes verifies dispatch picks the concrete variant.
func TestSelectVariantTypes(t *testing.T) {
	m := mustNew(t, 0, 3)
	_, ok := m.(*probability.R0Model)
	assert.True(t, ok)

	m = mustNew(t, 1, 2)
	_, ok = m.(*probability.R1G2Model)
	assert.True(t, ok)

	m = mustNew(t, 1, 3)
	_, ok = m.(*probability.R1G3Model)
	assert.True(t, ok)
}

// TestSelectUnsupported ensures unsupported pairs fail explicitly with the exact pair.
func TestSelectUnsupported(t *testing.T) {
	cases := []struct{ r, g int }{
		{1, 4}, {2, 2}, {2, 3}, {2, 4}, {3, 2}, {3, 3}, {3, 4}, {4, 2}, {-1, 2}, {0, 5}, {1, 5},
	}
	for _, tc := range cases {
		m, err := probability.Select(structure{r: tc.r, g: tc.g})
		require.ErrorIs(t, err, probability.ErrUnsupportedCombination, "R=%d G=%d", tc.r, tc.g)
		require.Nil(t, m)

		var ue *probability.UnsupportedError
		require.True(t, errors.As(err, &ue))
		assert.Equal(t, tc.r, ue.R)
		assert.Equal(t, tc.g, ue.G)
	}
}

// TestSelectInvalidComponents rejects G < 1 rather than building an empty model.
func TestSelectInvalidComponents(t *testing.T) {
	_, err := probability.New(0, 0)
	require.ErrorIs(t, err, probability.ErrInvalidComponents)

	_, err = probability.NewR0(-2)
	require.ErrorIs(t, err, probability.ErrInvalidComponents)
}

// TestSelectNilStructure returns the absent state, not an error.
func TestSelectNilStructure(t *testing.T) {
	m, err := probability.Select(nil)
	require.NoError(t, err)
	require.Nil(t, m)

	var owner *pointerStructure
	require.NotPanics(t, func() { m, err = probability.Select(owner) })
	require.NoError(t, err)
	require.Nil(t, m)
}

// TestSelectInitialValues applies caller values over defaults.
func TestSelectInitialValues(t *testing.T) {
	m, err := probability.Select(structure{r: 0, g: 3},
		probability.WithValue("W1", 0.3), probability.WithValue("W2", 0.3))
	require.NoError(t, err)
	w := requireConsistent(t, m)
	assert.InDeltaSlice(t, []float64{0.3, 0.3, 0.4}, w, tol)

	_, err = probability.New(1, 2, probability.WithValue("W3", 0.1))
	require.ErrorIs(t, err, probability.ErrUnknownParameter)
}
