package policy

import (
	"sort"
	"strings"

	"github.com/lox/limitbot/internal/deck"
)

// OpponentModel tracks how often the opponent bets into each board we have
// seen. It is an explicit mutable structure owned by the caller and passed
// into Decide; there is no package-level state, so rounds stay decoupled
// and tests stay reproducible.
type OpponentModel struct {
	boards map[string]*tendency
}

type tendency struct {
	raises   int
	observed int
}

// NewOpponentModel returns an empty model.
func NewOpponentModel() *OpponentModel {
	return &OpponentModel{boards: make(map[string]*tendency)}
}

// Observe records whether the opponent was betting into this board.
func (m *OpponentModel) Observe(board []deck.Card, raised bool) {
	key := boardKey(board)
	t := m.boards[key]
	if t == nil {
		t = &tendency{}
		m.boards[key] = t
	}
	t.observed++
	if raised {
		t.raises++
	}
}

// Aggression returns the smoothed frequency with which the opponent has
// bet into this board. Unseen boards report 0.5.
func (m *OpponentModel) Aggression(board []deck.Card) float64 {
	t := m.boards[boardKey(board)]
	if t == nil {
		return 0.5
	}
	// Laplace smoothing keeps early observations from swinging to 0 or 1.
	return float64(t.raises+1) / float64(t.observed+2)
}

// Boards returns the number of distinct boards observed so far.
func (m *OpponentModel) Boards() int {
	return len(m.boards)
}

// boardKey normalizes a board to an order-independent string key.
func boardKey(board []deck.Card) string {
	tokens := make([]string, len(board))
	for i, c := range board {
		tokens[i] = c.Token()
	}
	sort.Strings(tokens)
	return strings.Join(tokens, "")
}
