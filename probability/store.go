// SPDX-License-Identifier: MIT

package probability

import (
	"fmt"
	"math"

	"github.com/katalvlaran/reichweite/matrix"
)

// Domain is the closed interval a parameter is clamped into.
type Domain struct {
	Lo, Hi float64
}

// UnitDomain is [0,1], the domain of every abundance, probability and ratio.
var UnitDomain = Domain{Lo: 0, Hi: 1}

// Clamp limits v to the domain.
func (d Domain) Clamp(v float64) float64 {
	return matrix.ClampFloat(v, d.Lo, d.Hi)
}

// ParameterStore holds the numeric state of one model: the abundance vector W,
// the transition matrix P and the auxiliary ratios. Independent and dependent
// entries share the same storage; which is which is a property of the variant.
// Every write goes through the domain clamp.
type ParameterStore struct {
	g      int
	w      []float64
	p      *matrix.Dense
	aux    []float64
	domain Domain
}

// newParameterStore allocates a zeroed store for g components and nAux ratios.
func newParameterStore(g, nAux int) (*ParameterStore, error) {
	p, err := matrix.NewDense(g, g)
	if err != nil {
		return nil, fmt.Errorf("newParameterStore: %w", err)
	}

	return &ParameterStore{
		g:      g,
		w:      make([]float64, g),
		p:      p,
		aux:    make([]float64, nAux),
		domain: UnitDomain,
	}, nil
}

// clone returns an independent copy, used as scratch space during update.
func (s *ParameterStore) clone() *ParameterStore {
	w := make([]float64, len(s.w))
	copy(w, s.w)
	aux := make([]float64, len(s.aux))
	copy(aux, s.aux)

	return &ParameterStore{g: s.g, w: w, p: s.p.Copy(), aux: aux, domain: s.domain}
}

// G returns the component count.
func (s *ParameterStore) G() int { return s.g }

// W returns abundance i (0-based).
func (s *ParameterStore) W(i int) float64 { return s.w[i] }

// SetW clamps v and stores it as abundance i.
func (s *ParameterStore) SetW(i int, v float64) error {
	if err := checkFinite(v); err != nil {
		return err
	}
	s.w[i] = s.domain.Clamp(v)

	return nil
}

// P returns transition probability (i, j) (0-based).
func (s *ParameterStore) P(i, j int) float64 {
	v, _ := s.p.At(i, j) // indices come from variant code, always in range

	return v
}

// SetP clamps v and stores it as transition probability (i, j).
func (s *ParameterStore) SetP(i, j int, v float64) error {
	if err := checkFinite(v); err != nil {
		return err
	}

	return s.p.Set(i, j, s.domain.Clamp(v))
}

// Aux returns auxiliary ratio k (0-based; G1 is Aux(0)).
func (s *ParameterStore) Aux(k int) float64 { return s.aux[k] }

// SetAux clamps v and stores it as auxiliary ratio k.
func (s *ParameterStore) SetAux(k int, v float64) error {
	if err := checkFinite(v); err != nil {
		return err
	}
	s.aux[k] = s.domain.Clamp(v)

	return nil
}

// Abundances returns a copy of W.
func (s *ParameterStore) Abundances() []float64 {
	out := make([]float64, len(s.w))
	copy(out, s.w)

	return out
}

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v", ErrNonFinite, v)
	}

	return nil
}
