package policy

import "github.com/lox/limitbot/internal/deck"

// ActionType enumerates the legal action kinds the runner can offer.
type ActionType int

const (
	Fold ActionType = iota
	Check
	Call
	Raise
)

// String returns the action name
func (t ActionType) String() string {
	switch t {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	default:
		return "unknown"
	}
}

// Action is a single decision returned to the runner. Amount is only
// meaningful for raises.
type Action struct {
	Type   ActionType
	Amount int
}

// Observation is the per-decision view of the betting round supplied by
// the external runner, with cards already parsed into the internal type.
// Pips are the chips committed in the current betting round;
// contributions are the chips committed across the whole hand
// (pips included).
type Observation struct {
	MyCards    []deck.Card
	BoardCards []deck.Card

	MyPip           int
	OppPip          int
	MyStack         int
	OppStack        int
	MyContribution  int
	OppContribution int

	MinRaise     int
	MaxRaise     int
	LegalActions []ActionType
}

// ContinueCost is the number of chips needed to match the opponent's pip.
func (o Observation) ContinueCost() int {
	return o.OppPip - o.MyPip
}

// Pot is the total chips committed by both players so far.
func (o Observation) Pot() int {
	return o.MyContribution + o.OppContribution
}

// PotOdds is the price of continuing: the continue cost divided by the
// total pot once the call completes. Zero when checking is free.
func (o Observation) PotOdds() float64 {
	cost := o.ContinueCost()
	if cost <= 0 {
		return 0.0
	}
	return float64(cost) / float64(o.Pot()+cost)
}

// Allows reports whether the runner offered the given action type.
func (o Observation) Allows(t ActionType) bool {
	for _, a := range o.LegalActions {
		if a == t {
			return true
		}
	}
	return false
}
