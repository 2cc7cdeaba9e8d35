// SPDX-License-Identifier: MIT

// Package probability: the shared contract of every probability model and
// the narrower views handed to collaborators.
package probability

import "github.com/katalvlaran/reichweite/matrix"

// Param is one entry of an independent-parameter label map.
// Name is the internal key accepted by Param/SetParam (1-based, e.g. "W1");
// Label is the display text for editing UIs.
type Param struct {
	Name  string
	Label string
}

// Structure is the owning structure descriptor a model is selected for.
type Structure interface {
	// Reichweite returns the correlation range R.
	Reichweite() int
	// Components returns the component count G.
	Components() int
}

// Reader is the read surface consumed by the diffraction-intensity engine.
// Both methods return copies of the most recent completed update and never
// trigger a recompute.
type Reader interface {
	ProbabilityMatrix() *matrix.Dense
	DistributionMatrix() *matrix.Dense
}

// Setter is the write surface available inside Batch.
type Setter interface {
	Param(name string) (float64, error)
	SetParam(name string, v float64) error
}

// Editor is the surface used by editing and persistence collaborators.
type Editor interface {
	Setter
	IndependentLabelMap() []Param
	Flush() error
	Snapshot() map[string]float64
	Restore(values map[string]float64) error
	Subscribe(fn func()) (cancel func())
}

// Model is the uniform operation set every variant implements.
//
// Writes (SetParam) clamp into [0,1] and mark the model dirty; the dependent
// entries of W and P are recomputed once, on the next Flush, DistributionArray,
// end of Batch, or explicit Update. Exactly one change notification follows
// each completed recompute.
type Model interface {
	Reader
	Editor

	// Reichweite returns R.
	Reichweite() int
	// Components returns G.
	Components() int

	// DistributionArray settles any pending recompute, then returns a copy of W.
	DistributionArray() ([]float64, error)

	// Update recomputes every dependent entry now and notifies once.
	Update() error
	// Pending reports whether writes are waiting for a recompute.
	Pending() bool
	// Batch runs fn against a Setter and settles with one recompute afterwards.
	Batch(fn func(Setter) error) error

	// RefineTitle is the title of the model's refinement group.
	RefineTitle() string
	// Refinables lists the refinable parameter names (label-map order).
	Refinables() []string
}
