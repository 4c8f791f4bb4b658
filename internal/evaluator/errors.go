package evaluator

import (
	"fmt"

	"github.com/lox/limitbot/internal/deck"
)

// InvalidHandError indicates malformed evaluator input: fewer than two
// cards, more than seven, or a duplicated card. It is never recovered
// silently.
type InvalidHandError struct {
	Count     int
	Duplicate *deck.Card
}

func (e *InvalidHandError) Error() string {
	if e.Duplicate != nil {
		return fmt.Sprintf("invalid hand: duplicate card %s", e.Duplicate)
	}
	return fmt.Sprintf("invalid hand: %d cards (want 2 to 7)", e.Count)
}
