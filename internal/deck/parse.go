package deck

import (
	"fmt"
	"strings"
)

// ParseError indicates a malformed card token at the external boundary.
// It is surfaced before any card reaches the evaluator or estimator.
type ParseError struct {
	Input    string
	Position int
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s at position %d", e.Input, e.Reason, e.Position)
}

// ParseCard parses a single two-character card token.
// Ranks: 2-9, T, J, Q, K, A. Suits: s, h, d, c (letters case-insensitive).
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, &ParseError{Input: s, Position: 0, Reason: "token must be exactly 2 characters"}
	}

	rank, ok := parseRank(s[0])
	if !ok {
		return Card{}, &ParseError{Input: s, Position: 0, Reason: fmt.Sprintf("unknown rank %q", s[0])}
	}

	suit, ok := parseSuit(s[1])
	if !ok {
		return Card{}, &ParseError{Input: s, Position: 1, Reason: fmt.Sprintf("unknown suit %q", s[1])}
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a string of concatenated card tokens ("AsKd" or "As Kd").
func ParseCards(s string) ([]Card, error) {
	compact := strings.ReplaceAll(s, " ", "")
	if len(compact)%2 != 0 {
		return nil, &ParseError{Input: s, Position: len(compact), Reason: "odd length, incomplete card token"}
	}

	var cards []Card
	for i := 0; i < len(compact); i += 2 {
		card, err := ParseCard(compact[i : i+2])
		if err != nil {
			pe := err.(*ParseError)
			return nil, &ParseError{Input: s, Position: i + pe.Position, Reason: pe.Reason}
		}
		cards = append(cards, card)
	}

	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

func parseRank(c byte) (Rank, bool) {
	switch c {
	case 'A', 'a':
		return Ace, true
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'J', 'j':
		return Jack, true
	case 'T', 't':
		return Ten, true
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(c - '0'), true
	default:
		return 0, false
	}
}

func parseSuit(c byte) (Suit, bool) {
	switch c {
	case 's', 'S':
		return Spades, true
	case 'h', 'H':
		return Hearts, true
	case 'd', 'D':
		return Diamonds, true
	case 'c', 'C':
		return Clubs, true
	default:
		return 0, false
	}
}
