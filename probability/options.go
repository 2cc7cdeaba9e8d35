// SPDX-License-Identifier: MIT

// Package probability: functional options for model construction.
package probability

import (
	"io"
	"log/slog"
	"math"
)

// DefaultDegeneracyTolerance is the magnitude at or below which a divisor
// counts as zero. The default treats only an exact zero as degenerate.
const DefaultDegeneracyTolerance = 0.0

const panicToleranceInvalid = "probability: WithDegeneracyTolerance: tol must be finite, non-negative"

// Option configures a model before its first update.
type Option func(*options)

type options struct {
	logger *slog.Logger
	tol    float64
	values []namedValue // initial independent values, applied in label-map order
}

type namedValue struct {
	name string
	v    float64
}

// WithLogger routes model diagnostics (recompute, degeneracy) to l.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithValue sets the initial value of one independent parameter.
// Unknown names make the constructor fail with ErrUnknownParameter.
func WithValue(name string, v float64) Option {
	return func(o *options) { o.values = append(o.values, namedValue{name: name, v: v}) }
}

// WithValues sets several initial values at once.
func WithValues(values map[string]float64) Option {
	return func(o *options) {
		for name, v := range values {
			o.values = append(o.values, namedValue{name: name, v: v})
		}
	}
}

// WithDegeneracyTolerance treats divisors with |d| <= tol as zero.
// Panics on NaN, ±Inf or negative tol (programmer error).
func WithDegeneracyTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

func gatherOptions(opts ...Option) options {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tol:    DefaultDegeneracyTolerance,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
