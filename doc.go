// Package reichweite models the stacking statistics of mixed-layer
// (interstratified) clay minerals for X-ray diffraction simulation.
//
// 🚀 What is reichweite?
//
//	A structure built from G layer components, stacked with correlation
//	range R (the Reichweite), is described by two quantities:
//		• W – the relative abundance of every component (sums to 1)
//		• P – the row-stochastic transition matrix: P[i][j] is the chance
//		      that a layer of type i is followed by one of type j
//
//	A few independent parameters fix everything else through closed-form
//	relations. reichweite keeps W and P consistent as those parameters move.
//
// ✨ Why reichweite?
//
//   - Explicit – unsupported (R, G) pairs fail loudly, never approximate
//   - Coalesced – a burst of edits costs one recompute and one notification
//   - Safe – models are goroutine-safe; readers only ever get copies
//
// Under the hood:
//
//	matrix/         dense row-major matrices and probability validators
//	probability/    R0, R1G2, R1G3 models, Select, deferred recompute
//	phase/          the owning structure: name, identity, R, G, model
//	config/         YAML description of phases
//	cmd/reichweite  CLI printing W and P
//
// Quick example:
//
//	m, _ := probability.New(1, 2)
//	_ = m.SetParam("W1", 0.25)
//	_ = m.SetParam("P11_or_P22", 0.5)
//	w, _ := m.DistributionArray() // [0.25 0.75]
//
//	go install github.com/katalvlaran/reichweite/cmd/reichweite@latest
package reichweite
