// SPDX-License-Identifier: MIT

package probability

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/reichweite/matrix"
)

// MaxR0Components is the largest G an R0 model supports.
const MaxR0Components = 4

// R0Model is the zero-memory model (Reichweite 0).
//
// Independent parameters are W1..W(G-1); the last abundance is dependent.
// Every row of P equals W: the next layer does not depend on the current one.
type R0Model struct {
	*model
}

// NewR0 builds an R0 model for g components (1 <= g <= 4).
// Defaults give every component the abundance 1/g.
func NewR0(g int, opts ...Option) (*R0Model, error) {
	if g < 1 {
		return nil, fmt.Errorf("NewR0: %w: G=%d", ErrInvalidComponents, g)
	}
	if g > MaxR0Components {
		return nil, unsupported(0, g)
	}

	bindings := make([]binding, 0, g-1)
	defaults := make([]namedValue, 0, g-1)
	for i := 0; i < g-1; i++ {
		idx := i
		name := fmt.Sprintf("W%d", idx+1)
		bindings = append(bindings, binding{
			Param: Param{Name: name, Label: name},
			get:   func(s *ParameterStore) float64 { return s.W(idx) },
			set:   func(s *ParameterStore, v float64) error { return s.SetW(idx, v) },
		})
		defaults = append(defaults, namedValue{name: name, v: 1 / float64(g)})
	}

	core, err := newModel(0, g, 0, bindings, updateR0, defaults, gatherOptions(opts...))
	if err != nil {
		return nil, fmt.Errorf("NewR0: %w", err)
	}
	m := &R0Model{model: core}
	if err = m.Update(); err != nil {
		return nil, fmt.Errorf("NewR0: %w", err)
	}

	return m, nil
}

// updateR0 closes W and copies it into every row of P.
//
//	G == 1: W[0] = 1
//	G  > 1: s = ΣW[0..G-2]; W[G-1] = max(1-s, 0); if s > 1, W *= 1/s
//	P[i][j] = W[j]
//
// Over-specified input (s > 1) is redistributed proportionally, not rejected.
func updateR0(s *ParameterStore, _ float64) error {
	g := s.G()
	if g == 1 {
		s.w[0] = 1
	} else {
		partial := floats.Sum(s.w[:g-1])
		s.w[g-1] = math.Max(1-partial, 0)
		if partial > 1 {
			floats.Scale(1/partial, s.w)
		}
	}
	p, err := matrix.NewRepeatedRows(s.w, g)
	if err != nil {
		return err
	}
	s.p = p

	return nil
}
