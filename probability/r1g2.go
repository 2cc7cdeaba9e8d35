// SPDX-License-Identifier: MIT

package probability

import (
	"fmt"
	"math"
)

// Names of the independent parameters shared by the R1 models.
const (
	ParamW1         = "W1"
	ParamP11orP22   = "P11_or_P22"
	labelP11orP22   = "P11 or P22"
	majorityCutover = 0.5
)

// R1G2Model is the nearest-neighbour model for two components.
//
// Independent parameters: W1 and P11_or_P22. The latter addresses the
// self-transition of the less abundant component: P[0][0] while W[0] <= 0.5,
// P[1][1] otherwise (W[0] == 0.5 selects P[0][0]).
//
//	W[1] = 1 - W[0]
//	W[0] <= 0.5:  P01 = 1 - P00;  P10 = W0·P01 / W1;  P11 = 1 - P10
//	W[0]  > 0.5:  P10 = 1 - P11;  P01 = W1·P10 / W0;  P00 = 1 - P01
type R1G2Model struct {
	*model
}

// NewR1G2 builds an R1G2 model. Defaults: W1 = 0.25, P11_or_P22 = 0.5.
func NewR1G2(opts ...Option) (*R1G2Model, error) {
	bindings := []binding{
		wBinding(),
		minorityBinding(),
	}
	defaults := []namedValue{
		{name: ParamW1, v: 0.25},
		{name: ParamP11orP22, v: 0.5},
	}

	core, err := newModel(1, 2, 0, bindings, updateR1G2, defaults, gatherOptions(opts...))
	if err != nil {
		return nil, fmt.Errorf("NewR1G2: %w", err)
	}
	m := &R1G2Model{model: core}
	if err = m.Update(); err != nil {
		return nil, fmt.Errorf("NewR1G2: %w", err)
	}

	return m, nil
}

// wBinding exposes W[0] as "W1".
func wBinding() binding {
	return binding{
		Param: Param{Name: ParamW1, Label: ParamW1},
		get:   func(s *ParameterStore) float64 { return s.W(0) },
		set:   func(s *ParameterStore, v float64) error { return s.SetW(0, v) },
	}
}

// minorityBinding exposes the self-transition of the less abundant
// component as "P11_or_P22".
// The routing is re-evaluated on every access against the current W[0].
func minorityBinding() binding {
	return binding{
		Param: Param{Name: ParamP11orP22, Label: labelP11orP22},
		get: func(s *ParameterStore) float64 {
			if firstIsMinority(s) {
				return s.P(0, 0)
			}
			return s.P(1, 1)
		},
		set: func(s *ParameterStore, v float64) error {
			if firstIsMinority(s) {
				return s.SetP(0, 0, v)
			}
			return s.SetP(1, 1, v)
		},
	}
}

// firstIsMinority is the branch rule of the R1 models: W[0] <= 0.5.
func firstIsMinority(s *ParameterStore) bool {
	return s.W(0) <= majorityCutover
}

// isZero reports |d| <= tol.
func isZero(d, tol float64) bool {
	return math.Abs(d) <= tol
}

func updateR1G2(s *ParameterStore, tol float64) error {
	w0 := s.W(0)
	if err := s.SetW(1, 1-w0); err != nil {
		return err
	}
	w1 := s.W(1)

	if firstIsMinority(s) {
		if isZero(w1, tol) {
			return degenerate("W2")
		}
		p01 := 1 - s.P(0, 0)
		p10 := w0 * p01 / w1
		return setAll(s,
			cell{0, 1, p01},
			cell{1, 0, p10},
			cell{1, 1, 1 - p10},
		)
	}

	if isZero(w0, tol) {
		return degenerate("W1")
	}
	p10 := 1 - s.P(1, 1)
	p01 := w1 * p10 / w0
	return setAll(s,
		cell{1, 0, p10},
		cell{0, 1, p01},
		cell{0, 0, 1 - p01},
	)
}

// cell is one derived transition probability.
type cell struct {
	i, j int
	v    float64
}

// setAll clamps and stores cells in order, stopping at the first error.
func setAll(s *ParameterStore, cells ...cell) error {
	for _, c := range cells {
		if err := s.SetP(c.i, c.j, c.v); err != nil {
			return err
		}
	}

	return nil
}
