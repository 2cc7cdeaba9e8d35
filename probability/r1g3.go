// SPDX-License-Identifier: MIT

package probability

import "fmt"

// feasibilityEps absorbs rounding in the cascade; a pair abundance below
// -feasibilityEps makes the parameter set infeasible.
const feasibilityEps = 1e-12

// Auxiliary ratio names of the R1G3 model.
const (
	ParamG1 = "G1"
	ParamG2 = "G2"
	ParamG3 = "G3"
	ParamG4 = "G4"
)

// R1G3Model is the nearest-neighbour model for three components.
//
// Independent parameters: W1, P11_or_P22 (routed as in R1G2) and four ratios
// over the pair abundances Wij = W[i]·P[i][j]:
//
//	G1 = W2 / (W2 + W3)                         (1-based component names)
//	G2 = (W22 + W23) / (W22 + W23 + W32 + W33)
//	G3 = W22 / (W22 + W23)
//	G4 = W32 / (W32 + W33)
//
// The update is a cascade; each step consumes only values derived before it:
//
//  1. W[1] = (1 - W[0])·G1,  W[2] = 1 - W[0] - W[1]
//  2. T = W11 + W12 + W21 + W22 (0-based pairs away from component 0):
//     W[0] <= 0.5: W00 = P00·W[0], T = 1 - 2·W[0] + W00
//     W[0]  > 0.5: W11 = P11·W[1], T = W11 / (G2·G3)
//  3. W11 = G2·G3·T (first branch only), W12 = G2·(1-G3)·T
//  4. W10 = W[1] - W11 - W12
//  5. W21 = (1-G2)·G4·T, W22 = (1-G2)·(1-G4)·T, W20 = W[2] - W21 - W22
//  6. row 0 from the column balance: W01 = W[1] - W11 - W21,
//     W02 = W[2] - W12 - W22, W00 = W[0] - W01 - W02
//
// and P[i][j] = Wij / W[i]. Row and column balances hold by construction, so
// the only way the ratios can contradict W1 and P11_or_P22 is a negative
// pair abundance; Update then fails with ErrInfeasible and the model keeps
// its last completed state. The independent self-transition is never
// overwritten, which keeps Update idempotent.
type R1G3Model struct {
	*model
}

// NewR1G3 builds an R1G3 model.
// Defaults: W1 = 0.4, P11_or_P22 = 0.5, G1..G4 = 0.5.
func NewR1G3(opts ...Option) (*R1G3Model, error) {
	bindings := []binding{
		wBinding(),
		minorityBinding(),
		auxBinding(0, ParamG1, "W2 / (W2 + W3)"),
		auxBinding(1, ParamG2, "(W22 + W23) / (W22 + W23 + W32 + W33)"),
		auxBinding(2, ParamG3, "W22 / (W22 + W23)"),
		auxBinding(3, ParamG4, "W32 / (W32 + W33)"),
	}
	defaults := []namedValue{
		{name: ParamW1, v: 0.4},
		{name: ParamP11orP22, v: 0.5},
		{name: ParamG1, v: 0.5},
		{name: ParamG2, v: 0.5},
		{name: ParamG3, v: 0.5},
		{name: ParamG4, v: 0.5},
	}

	core, err := newModel(1, 3, 4, bindings, updateR1G3, defaults, gatherOptions(opts...))
	if err != nil {
		return nil, fmt.Errorf("NewR1G3: %w", err)
	}
	m := &R1G3Model{model: core}
	if err = m.Update(); err != nil {
		return nil, fmt.Errorf("NewR1G3: %w", err)
	}

	return m, nil
}

func auxBinding(k int, name, label string) binding {
	return binding{
		Param: Param{Name: name, Label: label},
		get:   func(s *ParameterStore) float64 { return s.Aux(k) },
		set:   func(s *ParameterStore, v float64) error { return s.SetAux(k, v) },
	}
}

func updateR1G3(s *ParameterStore, tol float64) error {
	g1, g2, g3, g4 := s.Aux(0), s.Aux(1), s.Aux(2), s.Aux(3)

	// 1. abundances
	w0 := s.W(0)
	if err := s.SetW(1, (1-w0)*g1); err != nil {
		return err
	}
	if err := s.SetW(2, 1-w0-s.W(1)); err != nil {
		return err
	}
	w1, w2 := s.W(1), s.W(2)
	if isZero(w1, tol) {
		return degenerate("W2")
	}
	if isZero(w2, tol) {
		return degenerate("W3")
	}

	// 2-3. block total and the 1-row pairs
	minority := firstIsMinority(s)
	var t, w11 float64
	if minority {
		if isZero(w0, tol) {
			return degenerate("W1")
		}
		t = 1 - 2*w0 + s.P(0, 0)*w0
		w11 = g2 * g3 * t
	} else {
		if isZero(g2*g3, tol) {
			return degenerate("G2·G3")
		}
		w11 = s.P(1, 1) * w1
		t = w11 / (g2 * g3)
	}
	w12 := g2 * (1 - g3) * t

	// 4. remainder of row 1
	w10 := w1 - w11 - w12

	// 5. row 2
	w21 := (1 - g2) * g4 * t
	w22 := (1 - g2) * (1 - g4) * t
	w20 := w2 - w21 - w22

	// 6. row 0 from the column balance
	w01 := w1 - w11 - w21
	w02 := w2 - w12 - w22

	w00 := w0 - w01 - w02

	pairs := [...]struct {
		name string
		v    float64
	}{
		{"W11", w00}, {"W12", w01}, {"W13", w02},
		{"W21", w10}, {"W22", w11}, {"W23", w12},
		{"W31", w20}, {"W32", w21}, {"W33", w22},
	}
	for _, pr := range pairs {
		if pr.v < -feasibilityEps {
			return infeasible(pr.name, pr.v)
		}
	}

	cells := []cell{
		{1, 2, w12 / w1},
		{1, 0, w10 / w1},
		{2, 1, w21 / w2},
		{2, 2, w22 / w2},
		{2, 0, w20 / w2},
		{0, 1, w01 / w0},
		{0, 2, w02 / w0},
	}
	if minority {
		cells = append(cells, cell{1, 1, w11 / w1})
	} else {
		cells = append(cells, cell{0, 0, w00 / w0})
	}

	return setAll(s, cells...)
}
