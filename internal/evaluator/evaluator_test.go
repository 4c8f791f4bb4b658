package evaluator

import (
	"errors"
	rand "math/rand/v2"
	"testing"

	"github.com/lox/limitbot/internal/deck"
)

func mustEvaluate(t *testing.T, cards string) Strength {
	t.Helper()
	s, err := Evaluate(deck.MustParseCards(cards))
	if err != nil {
		t.Fatalf("evaluate %q: %v", cards, err)
	}
	return s
}

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected Category
	}{
		{"Royal Flush", "AsKsQsJsTs9h8h", StraightFlush},
		{"Straight Flush", "9s8s7s6s5s4h3h", StraightFlush},
		{"Wheel Straight Flush", "5h4h3h2hAhKs9d", StraightFlush},
		{"Four of a Kind", "AsAhAdAcKs2h3h", FourOfAKind},
		{"Full House", "AsAhAdKsKh2h3h", FullHouse},
		{"Flush", "AsKsQs8s6s4h3h", Flush},
		{"Straight", "AsKhQdJcTs9h8h", Straight},
		{"Wheel Straight", "5s4h3d2cAs9h8h", Straight},
		{"Three of a Kind", "AsAhAdKs9c7h5h", ThreeOfAKind},
		{"Two Pair", "AsAhKdKs9c7h5h", TwoPair},
		{"One Pair", "AsAhKdQs9c7h5h", OnePair},
		{"High Card", "AsKhQd9s7c5h3h", HighCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustEvaluate(t, tt.cards)
			if s.Category != tt.expected {
				t.Errorf("category = %v, want %v", s.Category, tt.expected)
			}
		})
	}
}

func TestCategoryOrdering(t *testing.T) {
	// Hand-crafted representatives, strongest first. Every category must
	// outrank every category below it regardless of kickers: the weakest
	// member of one category still beats the strongest of the next.
	representatives := []struct {
		name  string
		cards string
	}{
		{"worst straight flush (wheel)", "5h4h3h2hAh"},
		{"worst four of a kind", "2s2h2d2c3s"},
		{"worst full house", "2s2h2d3c3s"},
		{"worst flush", "7s5s4s3s2s"},
		{"worst straight (wheel)", "5s4h3d2cAs"},
		{"worst three of a kind", "2s2h2d4c3s"},
		{"worst two pair", "3s3h2d2c4s"},
		{"worst one pair", "2s2h5d4c3s"},
		{"best high card", "AsKhQdJs9c"},
	}

	strengths := make([]Strength, len(representatives))
	for i, rep := range representatives {
		strengths[i] = mustEvaluate(t, rep.cards)
	}

	for i := 0; i < len(strengths); i++ {
		for j := i + 1; j < len(strengths); j++ {
			if strengths[i].Compare(strengths[j]) <= 0 {
				t.Errorf("%s (%v) should beat %s (%v)",
					representatives[i].name, strengths[i],
					representatives[j].name, strengths[j])
			}
		}
	}
}

func TestKickerTieBreaks(t *testing.T) {
	tests := []struct {
		name   string
		strong string
		weak   string
	}{
		{"pair kicker", "AsAhKd9c7s", "AsAhQd9c7s"},
		{"two pair low pair", "AsAhKdKc7s", "AsAhQdQc7s"},
		{"two pair kicker", "AsAhKdKcQs", "AsAhKdKcJs"},
		{"trips kicker", "AsAhAdKc7s", "AsAhAdQc7s"},
		{"full house trips dominate", "AsAhAdKcKs", "KdKhKcAsAd"},
		{"quads kicker", "AsAhAdAcKs", "AsAhAdAcQs"},
		{"straight high card", "6s5h4d3c2s", "5s4h3d2cAs"},
		{"flush second card", "AsKs8s5s3s", "AsQs8s5s3s"},
		{"high card last kicker", "AsKhQd9s8c", "AsKhQd9s7c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strong := mustEvaluate(t, tt.strong)
			weak := mustEvaluate(t, tt.weak)
			if !strong.Beats(weak) {
				t.Errorf("%v should beat %v", strong, weak)
			}
		})
	}
}

func TestEqualHandsTie(t *testing.T) {
	a := mustEvaluate(t, "AsAhKdQs9c")
	b := mustEvaluate(t, "AcAdKhQc9d")
	if a.Compare(b) != 0 {
		t.Errorf("identical ranks should tie: %v vs %v", a, b)
	}
}

func TestBestFiveOfSevenPrefersFlushOverStraight(t *testing.T) {
	// Without the fifth heart the best subset is the ace-high straight.
	s := mustEvaluate(t, "AhKhQdJcTs9h5h")
	if s.Category != Straight {
		t.Fatalf("expected straight, got %v", s)
	}

	// Swapping Ts for Th keeps the straight available but also completes
	// Ah Kh Th 9h 5h. Flush outranks straight, so the flush subset wins
	// even though its kickers look weaker than the straight's ranks.
	s = mustEvaluate(t, "AhKhQdJcTh9h5h")
	if s.Category != Flush {
		t.Errorf("flush subset must beat the straight subset, got %v", s)
	}
	want := [5]deck.Rank{deck.Ace, deck.King, deck.Ten, deck.Nine, deck.Five}
	if s.Tiebreaks != want {
		t.Errorf("flush tiebreaks = %v, want %v", s.Tiebreaks, want)
	}
}

func TestBestFiveOfSevenMatchesSubsetMaximum(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	all := deck.All()

	for trial := 0; trial < 200; trial++ {
		rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
		hand := make([]deck.Card, 7)
		copy(hand, all[:7])

		got, err := Evaluate(hand)
		if err != nil {
			t.Fatal(err)
		}

		var best Strength
		first := true
		for i := 0; i < 7; i++ {
			for j := i + 1; j < 7; j++ {
				var subset []deck.Card
				for k := 0; k < 7; k++ {
					if k != i && k != j {
						subset = append(subset, hand[k])
					}
				}
				s, err := Evaluate(subset)
				if err != nil {
					t.Fatal(err)
				}
				if first || s.Beats(best) {
					best = s
					first = false
				}
			}
		}

		if got.Compare(best) != 0 {
			t.Fatalf("trial %d: Evaluate(%v) = %v, subset max = %v", trial, hand, got, best)
		}
	}
}

func TestEvaluatePermutationInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	cards := deck.MustParseCards("AsAhKdKs9c7h5h")

	want, err := Evaluate(cards)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 50; i++ {
		rng.Shuffle(len(cards), func(a, b int) { cards[a], cards[b] = cards[b], cards[a] })
		got, err := Evaluate(cards)
		if err != nil {
			t.Fatal(err)
		}
		if got.Compare(want) != 0 {
			t.Fatalf("permutation changed result: %v vs %v", got, want)
		}
	}
}

func TestEvaluatePartialHands(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected Category
	}{
		{"pocket pair", "AsAh", OnePair},
		{"two high cards", "AsKh", HighCard},
		{"trips on three", "AsAhAd", ThreeOfAKind},
		{"two pair on four", "AsAhKdKc", TwoPair},
		{"quads on four", "AsAhAdAc", FourOfAKind},
		{"no straight below five cards", "5s4h3d2c", HighCard},
		{"no flush below five cards", "AsKs9s5s", HighCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustEvaluate(t, tt.cards)
			if s.Category != tt.expected {
				t.Errorf("category = %v, want %v", s.Category, tt.expected)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name  string
		cards []deck.Card
	}{
		{"no cards", nil},
		{"one card", deck.MustParseCards("As")},
		{"eight cards", deck.MustParseCards("AsKsQsJsTs9s8s7s")},
		{"duplicate card", deck.MustParseCards("AsAsKdQs9c")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.cards)
			if err == nil {
				t.Fatal("expected error")
			}
			var ihe *InvalidHandError
			if !errors.As(err, &ihe) {
				t.Errorf("expected *InvalidHandError, got %T", err)
			}
		})
	}
}
