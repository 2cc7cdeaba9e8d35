// SPDX-License-Identifier: MIT

package phase

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/reichweite/probability"
)

// Phase is one layered structure: a name, an identity, its correlation
// range R, its component count G and the probability model those select.
//
// The model is replaced wholesale whenever R or G changes. Listeners added
// with OnProbabilitiesChanged survive the replacement.
//
// Phase is safe for concurrent use.
type Phase struct {
	mu sync.RWMutex

	id   uuid.UUID
	name string
	r, g int

	model  probability.Model
	detach func() // cancels the forwarding subscription on model

	listeners listeners
	opts      options
	log       *slog.Logger
}

var _ probability.Structure = (*Phase)(nil)

// New builds a phase and its first model.
// It fails with ErrEmptyName, or with whatever probability.Select reports
// for (r, g), e.g. probability.ErrUnsupportedCombination.
func New(name string, r, g int, opts ...Option) (*Phase, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	o := gatherOptions(opts...)
	id := uuid.New()
	p := &Phase{
		id:   id,
		name: name,
		opts: o,
		log:  o.logger.With("phase", name, "id", id.String()),
	}

	m, err := probability.Select(dims{r: r, g: g}, o.modelOptions(true)...)
	if err != nil {
		return nil, fmt.Errorf("phase %q: %w", name, err)
	}
	p.r, p.g = r, g
	p.attachLocked(m)
	p.log.Debug("phase created", "R", r, "G", g, "model", m)

	return p, nil
}

// ID returns the phase identity.
func (p *Phase) ID() uuid.UUID { return p.id }

// Name returns the phase name.
func (p *Phase) Name() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.name
}

// SetName renames the phase.
func (p *Phase) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	p.mu.Lock()
	p.name = name
	p.mu.Unlock()

	return nil
}

// Reichweite returns R.
func (p *Phase) Reichweite() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.r
}

// Components returns G.
func (p *Phase) Components() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.g
}

// Probabilities returns the current model. Callers that hold on to it must
// re-fetch after SetReichweite/SetComponents.
func (p *Phase) Probabilities() probability.Model {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.model
}

// SetReichweite changes R and replaces the model. On error the phase keeps
// its previous R, G and model.
func (p *Phase) SetReichweite(r int) error {
	return p.reshape(func(d dims) dims {
		d.r = r
		return d
	})
}

// SetComponents changes G and replaces the model. On error the phase keeps
// its previous R, G and model.
func (p *Phase) SetComponents(g int) error {
	return p.reshape(func(d dims) dims {
		d.g = g
		return d
	})
}

// OnProbabilitiesChanged registers fn for every completed recompute of the
// current model and for every model replacement. It returns a cancel func.
func (p *Phase) OnProbabilitiesChanged(fn func()) (cancel func()) {
	return p.listeners.add(fn)
}

// String renders "name (RrGg)".
func (p *Phase) String() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return fmt.Sprintf("%s (R%dG%d)", p.name, p.r, p.g)
}

// reshape applies change to the current (R, G), builds the model for the
// result and swaps it in only on success. The write lock is held from the
// read of (R, G) to the commit, so concurrent SetReichweite and
// SetComponents calls compose instead of overwriting each other.
func (p *Phase) reshape(change func(dims) dims) error {
	p.mu.Lock()
	cur := dims{r: p.r, g: p.g}
	next := change(cur)
	if next == cur {
		p.mu.Unlock()
		return nil
	}
	m, err := probability.Select(next, p.opts.modelOptions(false)...)
	if err != nil {
		name := p.name
		p.mu.Unlock()
		p.log.Warn("model replacement rejected", "R", next.r, "G", next.g, "err", err)
		return fmt.Errorf("phase %q: %w", name, err)
	}
	old := p.model
	p.r, p.g = next.r, next.g
	p.attachLocked(m)
	p.mu.Unlock()

	p.log.Info("model replaced", "from", old, "to", m)
	p.listeners.emit()

	return nil
}

// attachLocked installs m and forwards its notifications to the listeners.
func (p *Phase) attachLocked(m probability.Model) {
	if p.detach != nil {
		p.detach()
	}
	p.model = m
	p.detach = m.Subscribe(p.listeners.emit)
}

// dims is the (R, G) pair handed to probability.Select before it is committed.
type dims struct{ r, g int }

func (d dims) Reichweite() int { return d.r }
func (d dims) Components() int { return d.g }
