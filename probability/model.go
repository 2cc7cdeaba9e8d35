// SPDX-License-Identifier: MIT

// Package probability: the shared model core.
//
// Every variant (R0Model, R1G2Model, R1G3Model) embeds *model, which owns:
//   - the ParameterStore (raw independent values plus derived entries),
//   - the snapshot of the last completed update (what readers see),
//   - the dirty flag that coalesces a burst of writes into one recompute,
//   - the "updated" notifier.
//
// Locking: one mutex spans write → recompute → commit. Notifications are
// emitted after the mutex is released, so subscribers may read the model.
package probability

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/katalvlaran/reichweite/matrix"
)

// refineTitle is the refinement-group title shared by all probability models.
const refineTitle = "Probabilities"

// binding maps one external parameter name onto store storage.
type binding struct {
	Param
	get func(s *ParameterStore) float64
	set func(s *ParameterStore, v float64) error
}

// recomputeFunc derives every dependent entry of s from its independent ones.
// tol is the degeneracy tolerance for divisors.
type recomputeFunc func(s *ParameterStore, tol float64) error

type model struct {
	mu sync.Mutex

	r, g     int
	bindings []binding
	index    map[string]int
	calc     recomputeFunc
	store    *ParameterStore

	// last completed update
	w    []float64
	p    *matrix.Dense
	diag *matrix.Dense

	dirty bool
	tol   float64
	log   *slog.Logger

	events notifier
}

// Compile-time check: the shared core satisfies the full contract.
var _ Model = (*model)(nil)

// newModel builds the core, applies defaults then caller values (both in
// label-map order) and leaves the model dirty. It does not run the first
// update; variant constructors do, so a core without calc can be built.
func newModel(r, g, nAux int, bindings []binding, calc recomputeFunc, defaults []namedValue, o options) (*model, error) {
	store, err := newParameterStore(g, nAux)
	if err != nil {
		return nil, err
	}
	p, _ := matrix.NewDense(g, g)
	diag, _ := matrix.NewDense(g, g)
	m := &model{
		r:        r,
		g:        g,
		bindings: bindings,
		index:    make(map[string]int, len(bindings)),
		calc:     calc,
		store:    store,
		w:        make([]float64, g),
		p:        p,
		diag:     diag,
		dirty:    true,
		tol:      o.tol,
		log:      o.logger.With("R", r, "G", g),
	}
	for k, b := range bindings {
		m.index[b.Name] = k
	}
	for _, nv := range defaults {
		if err = m.setParamLocked(nv.name, nv.v); err != nil {
			return nil, err
		}
	}
	if err = m.applyOrdered(o.values); err != nil {
		return nil, err
	}

	return m, nil
}

// applyOrdered writes values in label-map order, so a routed parameter
// (P11_or_P22) sees the W1 written in the same call. Unknown names are
// rejected before anything is written.
func (m *model) applyOrdered(values []namedValue) error {
	for _, nv := range values {
		if _, ok := m.index[nv.name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownParameter, nv.name)
		}
	}
	ordered := make([]namedValue, len(values))
	copy(ordered, values)
	sort.SliceStable(ordered, func(a, b int) bool {
		return m.index[ordered[a].name] < m.index[ordered[b].name]
	})
	for _, nv := range ordered {
		if err := m.setParamLocked(nv.name, nv.v); err != nil {
			return err
		}
	}

	return nil
}

// Reichweite returns R.
func (m *model) Reichweite() int { return m.r }

// Components returns G.
func (m *model) Components() int { return m.g }

// String names the variant, e.g. "R1G2".
func (m *model) String() string { return fmt.Sprintf("R%dG%d", m.r, m.g) }

// ProbabilityMatrix returns a copy of P from the last completed update.
func (m *model) ProbabilityMatrix() *matrix.Dense {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.p.Copy()
}

// DistributionMatrix returns a copy of diag(W) from the last completed update.
func (m *model) DistributionMatrix() *matrix.Dense {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.diag.Copy()
}

// DistributionArray settles any pending recompute and returns a copy of W.
func (m *model) DistributionArray() ([]float64, error) {
	m.mu.Lock()
	changed, err := m.settleLocked()
	out := make([]float64, len(m.w))
	copy(out, m.w)
	m.mu.Unlock()

	if changed {
		m.events.emit()
	}
	if err != nil {
		return nil, err
	}

	return out, nil
}

// IndependentLabelMap lists the parameters this instance accepts, in order.
func (m *model) IndependentLabelMap() []Param {
	out := make([]Param, len(m.bindings))
	for k, b := range m.bindings {
		out[k] = b.Param
	}

	return out
}

// Param returns the raw current value of an independent parameter.
// It does not settle pending writes.
func (m *model) Param(name string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.paramLocked(name)
}

// SetParam clamps v into [0,1], stores it and schedules a recompute.
func (m *model) SetParam(name string, v float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.setParamLocked(name, v)
}

func (m *model) paramLocked(name string) (float64, error) {
	k, ok := m.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}

	return m.bindings[k].get(m.store), nil
}

func (m *model) setParamLocked(name string, v float64) error {
	k, ok := m.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}
	if err := m.bindings[k].set(m.store, v); err != nil {
		return fmt.Errorf("set %s: %w", name, err)
	}
	m.dirty = true

	return nil
}

// Update recomputes every dependent entry now, then notifies once.
// On failure the last completed state is kept and no notification is sent.
func (m *model) Update() error {
	m.mu.Lock()
	err := m.recomputeLocked()
	m.mu.Unlock()

	if err != nil {
		return err
	}
	m.events.emit()

	return nil
}

// Flush settles pending writes with a single recompute. A clean model is left alone.
func (m *model) Flush() error {
	m.mu.Lock()
	changed, err := m.settleLocked()
	m.mu.Unlock()

	if changed {
		m.events.emit()
	}

	return err
}

// Pending reports whether writes are waiting for a recompute.
func (m *model) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.dirty
}

// lockedSetter is the Setter handed to Batch callbacks; the model mutex is
// already held, so it must not be used outside the callback.
type lockedSetter struct{ m *model }

func (s lockedSetter) Param(name string) (float64, error)    { return s.m.paramLocked(name) }
func (s lockedSetter) SetParam(name string, v float64) error { return s.m.setParamLocked(name, v) }

// Batch runs fn with exclusive access and settles afterwards with one
// recompute and one notification. fn must only use the Setter it is given;
// calling methods on the model itself from fn deadlocks.
// If fn fails its writes stay pending and the error is returned as is.
func (m *model) Batch(fn func(Setter) error) error {
	m.mu.Lock()
	if err := fn(lockedSetter{m: m}); err != nil {
		m.mu.Unlock()
		return err
	}
	changed, err := m.settleLocked()
	m.mu.Unlock()

	if changed {
		m.events.emit()
	}

	return err
}

// Subscribe registers fn for the "updated" event and returns its cancel func.
func (m *model) Subscribe(fn func()) (cancel func()) {
	return m.events.subscribe(fn)
}

// Snapshot returns every independent parameter by name.
func (m *model) Snapshot() map[string]float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]float64, len(m.bindings))
	for _, b := range m.bindings {
		out[b.Name] = b.get(m.store)
	}

	return out
}

// Restore writes values in label-map order and settles with one recompute.
// Unknown names are rejected before anything is written.
func (m *model) Restore(values map[string]float64) error {
	nvs := make([]namedValue, 0, len(values))
	for name, v := range values {
		nvs = append(nvs, namedValue{name: name, v: v})
	}

	m.mu.Lock()
	if err := m.applyOrdered(nvs); err != nil {
		m.mu.Unlock()
		return err
	}
	changed, err := m.settleLocked()
	m.mu.Unlock()

	if changed {
		m.events.emit()
	}

	return err
}

// RefineTitle is the title of this model's refinement group.
func (m *model) RefineTitle() string { return refineTitle }

// Refinables lists the refinable parameter names in label-map order.
func (m *model) Refinables() []string {
	out := make([]string, len(m.bindings))
	for k, b := range m.bindings {
		out[k] = b.Name
	}

	return out
}

// settleLocked runs one recompute if the model is dirty.
func (m *model) settleLocked() (bool, error) {
	if !m.dirty {
		return false, nil
	}
	if err := m.recomputeLocked(); err != nil {
		return false, err
	}

	return true, nil
}

// consistencyEps bounds the rounding a closed-form update may leave in the
// unit sums of W and of every row of P.
const consistencyEps = 1e-6

// checkConsistent rejects a recompute result that is not a distribution W
// with a row-stochastic P. Closed-form updates guarantee both for feasible
// input, so a failure here means the input admits no stacking.
func checkConsistent(w []float64, p *matrix.Dense) error {
	if err := matrix.ValidateDistribution(w, matrix.WithEpsilon(consistencyEps)); err != nil {
		return fmt.Errorf("%w: W: %v", ErrInfeasible, err)
	}
	if err := matrix.ValidateRowStochastic(p, matrix.WithEpsilon(consistencyEps)); err != nil {
		return fmt.Errorf("%w: P: %v", ErrInfeasible, err)
	}

	return nil
}

// recomputeLocked derives into a scratch copy and commits only on success.
func (m *model) recomputeLocked() error {
	if m.calc == nil {
		return fmt.Errorf("%s: %w", m, ErrNotImplemented)
	}
	scratch := m.store.clone()
	if err := m.calc(scratch, m.tol); err != nil {
		m.log.Warn("probability update failed", "err", err)
		return fmt.Errorf("%s update: %w", m, err)
	}
	w := scratch.Abundances()
	if err := checkConsistent(w, scratch.p); err != nil {
		m.log.Warn("probability update failed", "err", err)
		return fmt.Errorf("%s update: %w", m, err)
	}
	diag, err := matrix.NewDiag(w)
	if err != nil {
		return fmt.Errorf("%s update: %w", m, err)
	}

	m.store = scratch
	m.w = w
	m.p = scratch.p.Copy()
	m.diag = diag
	m.dirty = false
	m.log.Debug("probability model updated", "W", w)

	return nil
}
