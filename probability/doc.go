// Package probability models the stacking statistics of mixed-layer
// structures: the abundance vector W (how much of each layer component) and
// the row-stochastic transition matrix P (which component follows which).
//
// What & Why:
//
//	A structure with G components and correlation range R (Reichweite) is
//	described by a handful of independent parameters; every other entry of
//	W and P follows from closed-form relations. Each supported (R, G) pair
//	has its own relations, so each is its own model:
//
//	  R0Model   – R = 0 (or G = 1), G ≤ 4: layers are uncorrelated, P[i] = W
//	  R1G2Model – R = 1, G = 2
//	  R1G3Model – R = 1, G = 3
//
//	Select/New map (R, G) to the right model and refuse every other pair
//	with ErrUnsupportedCombination.
//
// Deferred recompute:
//
//	SetParam only stores (clamped) raw values and marks the model dirty.
//	One recompute settles any number of writes: call Flush, read
//	DistributionArray, or group writes in Batch. Subscribers of the
//	"updated" event are notified once per completed recompute.
//
//	m, _ := probability.New(1, 2)
//	_ = m.SetParam("W1", 0.25)
//	_ = m.SetParam("P11_or_P22", 0.5)
//	_ = m.Flush()                      // one recompute, one notification
//	P := m.ProbabilityMatrix()         // [[0.5 0.5] [1/6 5/6]]
//
// Errors:
//
//	ErrUnsupportedCombination – (R, G) outside the implemented set
//	ErrNotImplemented         – Update on a model without an algorithm
//	ErrDegenerate             – division by a zero abundance during update
//	ErrInfeasible             – parameters need a negative pair abundance
//	ErrUnknownParameter       – name absent from the label map
//	ErrNonFinite              – NaN/Inf written; finite values are clamped
package probability
