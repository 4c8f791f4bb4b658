// Package policy turns an equity estimate and a betting observation into
// one legal action. It is a thin layer over the evaluator and estimator:
// stochastic, not optimal, and never the source of correctness.
package policy

import (
	rand "math/rand/v2"
)

// Default mixing frequencies.
const (
	DefaultRaiseProbability = 0.5
	DefaultBluffFrequency   = 0.2
)

// Policy holds the mixing knobs for the decision rule. Randomness comes
// from the rand source passed to Decide, which must be independent of the
// estimator's source so that seeding one does not perturb the other.
type Policy struct {
	// RaiseProbability is the chance of raising rather than flat calling
	// when equity beats the pot odds.
	RaiseProbability float64

	// BluffFrequency is the chance of raising with a hand that does not
	// have the equity to continue, taken only when checking is also
	// available.
	BluffFrequency float64
}

// New returns a Policy with the default frequencies.
func New() *Policy {
	return &Policy{
		RaiseProbability: DefaultRaiseProbability,
		BluffFrequency:   DefaultBluffFrequency,
	}
}

// Decide returns exactly one action offered by obs.LegalActions.
//
// When equity beats the pot odds the hand continues: a raise of a bounded
// random amount within [MinRaise, MaxRaise] with RaiseProbability
// (scaled down against opponents who bet this board often), otherwise a
// call or check. When equity is short the hand checks when it can
// (occasionally bluff-raising), and folds when facing a bet.
func (p *Policy) Decide(obs Observation, equity float64, model *OpponentModel, rng *rand.Rand) Action {
	raiseProb := p.RaiseProbability
	if model != nil {
		// Raise less into opponents who already bet this board a lot,
		// more into ones who check it down.
		raiseProb = clamp01(raiseProb * (1.5 - model.Aggression(obs.BoardCards)))
	}

	if equity > obs.PotOdds() {
		if p.canRaise(obs) && rng.Float64() < raiseProb {
			return Action{Type: Raise, Amount: p.raiseAmount(obs, rng)}
		}
		if obs.ContinueCost() > 0 && obs.Allows(Call) {
			return Action{Type: Call}
		}
		if obs.Allows(Check) {
			return Action{Type: Check}
		}
		if obs.Allows(Call) {
			return Action{Type: Call}
		}
		return Action{Type: Fold}
	}

	if obs.Allows(Check) {
		if p.canRaise(obs) && rng.Float64() < p.BluffFrequency {
			return Action{Type: Raise, Amount: p.raiseAmount(obs, rng)}
		}
		return Action{Type: Check}
	}
	if obs.Allows(Fold) {
		return Action{Type: Fold}
	}
	if obs.Allows(Call) {
		return Action{Type: Call}
	}
	return Action{Type: Check}
}

func (p *Policy) canRaise(obs Observation) bool {
	return obs.Allows(Raise) && obs.MaxRaise >= obs.MinRaise
}

func (p *Policy) raiseAmount(obs Observation, rng *rand.Rand) int {
	return obs.MinRaise + rng.IntN(obs.MaxRaise-obs.MinRaise+1)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
