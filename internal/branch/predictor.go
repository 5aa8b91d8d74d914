// Package branch implements the simulator's one permitted speculation
// policy: always-not-taken. §1's Non-goals rule out anything more
// elaborate (a saturating-counter table, TAGE-style tagged history),
// so this is intentionally a single method with no state rather than
// a packed-counter or TAGE-style predictor.
package branch

// Predictor always predicts a conditional branch will fall through.
// Taken outcomes are always mispredictions (§4.5, GLOSSARY).
type Predictor struct{}

// New returns the always-not-taken predictor.
func New() *Predictor {
	return &Predictor{}
}

// Predict reports whether the branch at pc is predicted taken. It is
// always false: every BEQ is predicted not-taken regardless of pc or
// history.
func (p *Predictor) Predict(pc int) bool {
	return false
}

// Update is a no-op: an always-not-taken predictor carries no state
// to learn from outcomes. It exists so a caller driving the predictor
// symmetrically with Predict does not need a type switch.
func (p *Predictor) Update(pc int, taken bool) {}
