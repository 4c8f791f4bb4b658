package deck

// CardSet represents a set of cards using a bitset for fast membership checks.
// Each card maps to a bit: index = (rank-2)*4 + suit.
type CardSet uint64

func cardIndex(card Card) int {
	return int(card.Rank-Two)*4 + int(card.Suit)
}

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << cardIndex(card)
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<cardIndex(card)) != 0
}

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards []Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

// All returns the 52 canonical cards in suit-then-rank order.
func All() []Card {
	cards := make([]Card, 0, 52)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return cards
}

// Remaining returns the 52 canonical cards minus the known cards.
// Invariant: len(result) == 52 - len(known) when known has no duplicates.
// Duplicate known cards are a caller bug; they are caught by the
// evaluator and estimator, not silently deduplicated here.
func Remaining(known ...Card) []Card {
	used := NewCardSet(known)
	cards := make([]Card, 0, 52-len(known))
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := Card{Rank: rank, Suit: suit}
			if !used.Contains(card) {
				cards = append(cards, card)
			}
		}
	}
	return cards
}
