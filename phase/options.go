// SPDX-License-Identifier: MIT

package phase

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/reichweite/probability"
)

// Option configures a Phase at construction.
type Option func(*options)

type options struct {
	logger *slog.Logger
	values map[string]float64
	tol    float64
}

// WithLogger sets the logger used for model replacement and handed to every
// model the phase builds. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithValues sets the initial independent parameters of the first model.
// Models built later by SetReichweite/SetComponents start from defaults.
func WithValues(values map[string]float64) Option {
	return func(o *options) {
		if o.values == nil {
			o.values = make(map[string]float64, len(values))
		}
		for k, v := range values {
			o.values[k] = v
		}
	}
}

// WithDegeneracyTolerance is forwarded to every model the phase builds.
func WithDegeneracyTolerance(tol float64) Option {
	_ = probability.WithDegeneracyTolerance(tol) // same validation, same panic
	return func(o *options) { o.tol = tol }
}

func gatherOptions(opts ...Option) options {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tol:    probability.DefaultDegeneracyTolerance,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// modelOptions translates phase options into model options.
func (o options) modelOptions(withValues bool) []probability.Option {
	out := []probability.Option{
		probability.WithLogger(o.logger),
		probability.WithDegeneracyTolerance(o.tol),
	}
	if withValues && len(o.values) > 0 {
		out = append(out, probability.WithValues(o.values))
	}

	return out
}
