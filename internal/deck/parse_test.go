package deck

import (
	"errors"
	"testing"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		input string
		rank  Rank
		suit  Suit
	}{
		{"As", Ace, Spades},
		{"Kh", King, Hearts},
		{"Qd", Queen, Diamonds},
		{"Jc", Jack, Clubs},
		{"Ts", Ten, Spades},
		{"9h", Nine, Hearts},
		{"2c", Two, Clubs},
		{"aS", Ace, Spades}, // letters are case-insensitive
		{"tD", Ten, Diamonds},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			card, err := ParseCard(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if card.Rank != tt.rank || card.Suit != tt.suit {
				t.Errorf("got %v, want rank %v suit %v", card, tt.rank, tt.suit)
			}
		})
	}
}

func TestParseCardErrors(t *testing.T) {
	tests := []string{"", "A", "Asd", "1s", "Xs", "Ax", "A♠"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseCard(input)
			if err == nil {
				t.Fatalf("expected error for %q", input)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("expected *ParseError, got %T", err)
			}
		})
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("AsKd Qh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}
	if cards[0] != (Card{Rank: Ace, Suit: Spades}) {
		t.Errorf("first card = %v, want A♠", cards[0])
	}
	if cards[2] != (Card{Rank: Queen, Suit: Hearts}) {
		t.Errorf("third card = %v, want Q♥", cards[2])
	}
}

func TestParseCardsOddLength(t *testing.T) {
	_, err := ParseCards("AsK")
	if err == nil {
		t.Fatal("expected error for odd-length input")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Errorf("expected *ParseError, got %T", err)
	}
}

func TestCardRoundTrip(t *testing.T) {
	for _, card := range All() {
		parsed, err := ParseCard(card.Token())
		if err != nil {
			t.Fatalf("parse %q: %v", card.Token(), err)
		}
		if parsed != card {
			t.Errorf("round trip %v != %v", parsed, card)
		}
	}
}
