// Package phase holds the owning structure of a probability model.
//
// A Phase carries a name, a UUID identity, its Reichweite R and component
// count G, and the probability.Model that (R, G) selects. Changing R or G
// builds a new model and swaps it in only if the new pair is supported:
//
//	ph, _ := phase.New("illite/smectite", 0, 2)
//	cancel := ph.OnProbabilitiesChanged(func() { redraw(ph.Probabilities()) })
//	defer cancel()
//
//	_ = ph.SetReichweite(1)        // R1G2 replaces R0G2, listeners fire
//	err := ph.SetComponents(4)     // R1G4 unsupported: ph stays R1G2
//
// Listeners registered on the phase follow the current model, so they keep
// firing across replacements.
package phase
