package evaluator

import (
	"strings"

	"github.com/lox/limitbot/internal/deck"
)

// Category enumerates poker hand categories ordered from weakest to strongest.
// A royal flush is the ace-high straight flush, not a separate category.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Strength is the comparable result of evaluating a hand. It is a composite
// ordered key: the category always dominates, then Tiebreaks break ties
// within a category in significance order. Keeping the two components
// separate makes rank collisions between categories impossible, which a
// single arithmetic scalar cannot guarantee.
type Strength struct {
	Category  Category
	Tiebreaks [5]deck.Rank
}

// Compare returns 1 if s is stronger than other, -1 if weaker, 0 if equal.
func (s Strength) Compare(other Strength) int {
	if s.Category != other.Category {
		if s.Category > other.Category {
			return 1
		}
		return -1
	}
	for i := range s.Tiebreaks {
		if s.Tiebreaks[i] != other.Tiebreaks[i] {
			if s.Tiebreaks[i] > other.Tiebreaks[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Beats returns true if s strictly outranks other.
func (s Strength) Beats(other Strength) bool {
	return s.Compare(other) > 0
}

// String returns a description like "Full House [A K]".
func (s Strength) String() string {
	var ranks []string
	for _, r := range s.Tiebreaks {
		if r == 0 {
			break
		}
		ranks = append(ranks, r.String())
	}
	if len(ranks) == 0 {
		return s.Category.String()
	}
	return s.Category.String() + " [" + strings.Join(ranks, " ") + "]"
}
