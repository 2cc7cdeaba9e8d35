// SPDX-License-Identifier: MIT
// Package probability: sentinel error set.
// Every message is prefixed with "probability: ..." so it greps cleanly next
// to matrix errors. Callers match with errors.Is; the typed UnsupportedError
// additionally carries the rejected (R, G) pair for errors.As.

package probability

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedCombination is returned by Select/New for any (R, G) pair
	// outside the implemented set. It is never approximated by another model.
	ErrUnsupportedCombination = errors.New("probability: unsupported correlation/component combination")

	// ErrInvalidComponents is returned when G < 1.
	ErrInvalidComponents = errors.New("probability: component count must be >= 1")

	// ErrNotImplemented is returned by Update on a model without a closed-form algorithm.
	ErrNotImplemented = errors.New("probability: update not implemented")

	// ErrDegenerate reports a division by a (near-)zero abundance or ratio
	// product during update. There is no principled substitute value, so the
	// model keeps its last completed state and the error propagates.
	ErrDegenerate = errors.New("probability: arithmetic degeneracy")

	// ErrUnknownParameter is returned for a name absent from the label map.
	ErrUnknownParameter = errors.New("probability: unknown parameter")

	// ErrInfeasible reports parameters for which no stacking exists: some
	// pair abundance Wij would have to be negative. The model keeps its last
	// completed state.
	ErrInfeasible = errors.New("probability: parameters admit no consistent stacking")

	// ErrNonFinite is returned when a NaN or ±Inf value is written.
	// Finite values outside the domain are clamped, never rejected.
	ErrNonFinite = errors.New("probability: NaN or Inf value")
)

// UnsupportedError names the exact (R, G) pair a selector rejected.
type UnsupportedError struct {
	R int // Reichweite requested
	G int // component count requested
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: R=%d G=%d", ErrUnsupportedCombination.Error(), e.R, e.G)
}

// Is reports whether target is ErrUnsupportedCombination, so callers can
// match without knowing the pair.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupportedCombination
}

// unsupported builds the typed error for (r, g).
func unsupported(r, g int) error {
	return &UnsupportedError{R: r, G: g}
}

// degenerate wraps ErrDegenerate with the quantity that vanished.
func degenerate(what string) error {
	return fmt.Errorf("%w: %s is zero", ErrDegenerate, what)
}

// infeasible wraps ErrInfeasible with the offending pair abundance.
func infeasible(pair string, v float64) error {
	return fmt.Errorf("%w: %s = %.6g", ErrInfeasible, pair, v)
}
