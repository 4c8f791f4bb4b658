// Package evaluator ranks poker hands. Evaluate is a pure function: no
// randomness, no I/O, and the same multiset of cards always produces the
// same Strength regardless of input order.
package evaluator

import (
	"github.com/lox/limitbot/internal/deck"
)

// Evaluate returns the Strength of the best five-card hand reachable from
// cards. With six or seven cards every five-card subset is examined and
// the strongest wins; a greedy scan over suits and ranks can mis-rank
// hands where flush and straight candidates overlap with pair candidates.
// With two to four cards only rank multiplicities and kickers apply, so
// the result is a consistent pair/high-card strength.
//
// The wheel straight (5-4-3-2-A) is supported and scored as five-high.
func Evaluate(cards []deck.Card) (Strength, error) {
	if len(cards) < 2 || len(cards) > 7 {
		return Strength{}, &InvalidHandError{Count: len(cards)}
	}

	var seen deck.CardSet
	for i := range cards {
		if seen.Contains(cards[i]) {
			dup := cards[i]
			return Strength{}, &InvalidHandError{Count: len(cards), Duplicate: &dup}
		}
		seen.Add(cards[i])
	}

	if len(cards) <= 5 {
		return evaluateFive(cards), nil
	}

	// Best five of six/seven: enumerate subsets by excluding one or two cards.
	var scratch [5]deck.Card
	var best Strength
	first := true

	consider := func(skip1, skip2 int) {
		n := 0
		for i := range cards {
			if i == skip1 || i == skip2 {
				continue
			}
			scratch[n] = cards[i]
			n++
		}
		s := evaluateFive(scratch[:])
		if first || s.Beats(best) {
			best = s
			first = false
		}
	}

	if len(cards) == 6 {
		for i := range cards {
			consider(i, -1)
		}
	} else {
		for i := 0; i < len(cards); i++ {
			for j := i + 1; j < len(cards); j++ {
				consider(i, j)
			}
		}
	}

	return best, nil
}

// evaluateFive ranks two to five distinct cards. Straights and flushes
// require exactly five cards; everything else falls out of the rank counts.
func evaluateFive(cards []deck.Card) Strength {
	var counts [15]int
	for _, c := range cards {
		counts[c.Rank]++
	}

	if len(cards) == 5 {
		flush := true
		for _, c := range cards[1:] {
			if c.Suit != cards[0].Suit {
				flush = false
				break
			}
		}
		high := straightHigh(counts)

		if flush && high != 0 {
			return Strength{Category: StraightFlush, Tiebreaks: [5]deck.Rank{high}}
		}
		if quad := rankWithCount(counts, 4); quad != 0 {
			kicker := highestExcept(counts, quad)
			return Strength{Category: FourOfAKind, Tiebreaks: [5]deck.Rank{quad, kicker}}
		}
		if trip := rankWithCount(counts, 3); trip != 0 {
			if pair := rankWithCount(counts, 2); pair != 0 {
				return Strength{Category: FullHouse, Tiebreaks: [5]deck.Rank{trip, pair}}
			}
		}
		if flush {
			return Strength{Category: Flush, Tiebreaks: descendingRanks(counts)}
		}
		if high != 0 {
			return Strength{Category: Straight, Tiebreaks: [5]deck.Rank{high}}
		}
	}

	// Rank-multiplicity categories, shared by the partial (2-4 card) path.
	if quad := rankWithCount(counts, 4); quad != 0 {
		kicker := highestExcept(counts, quad)
		return Strength{Category: FourOfAKind, Tiebreaks: [5]deck.Rank{quad, kicker}}
	}
	if trip := rankWithCount(counts, 3); trip != 0 {
		tb := [5]deck.Rank{trip}
		fillKickers(counts, tb[:], 1, trip, 0)
		return Strength{Category: ThreeOfAKind, Tiebreaks: tb}
	}

	highPair, lowPair := pairRanks(counts)
	switch {
	case highPair != 0 && lowPair != 0:
		tb := [5]deck.Rank{highPair, lowPair}
		fillKickers(counts, tb[:], 2, highPair, lowPair)
		return Strength{Category: TwoPair, Tiebreaks: tb}
	case highPair != 0:
		tb := [5]deck.Rank{highPair}
		fillKickers(counts, tb[:], 1, highPair, 0)
		return Strength{Category: OnePair, Tiebreaks: tb}
	}

	return Strength{Category: HighCard, Tiebreaks: descendingRanks(counts)}
}

// straightHigh returns the high rank of a straight formed by exactly five
// distinct ranks, 0 if there is none. The wheel reports Five as its high.
func straightHigh(counts [15]int) deck.Rank {
	for r := deck.Two; r <= deck.Ace; r++ {
		if counts[r] > 1 {
			return 0
		}
	}
	for high := deck.Ace; high >= deck.Six; high-- {
		run := true
		for r := high - 4; r <= high; r++ {
			if counts[r] == 0 {
				run = false
				break
			}
		}
		if run {
			return high
		}
	}
	if counts[deck.Ace] == 1 && counts[deck.Two] == 1 && counts[deck.Three] == 1 &&
		counts[deck.Four] == 1 && counts[deck.Five] == 1 {
		return deck.Five
	}
	return 0
}

// rankWithCount returns the highest rank appearing exactly n times, 0 if none.
func rankWithCount(counts [15]int, n int) deck.Rank {
	for r := deck.Ace; r >= deck.Two; r-- {
		if counts[r] == n {
			return r
		}
	}
	return 0
}

// pairRanks returns the two highest pair ranks, 0 when absent.
func pairRanks(counts [15]int) (high, low deck.Rank) {
	for r := deck.Ace; r >= deck.Two; r-- {
		if counts[r] != 2 {
			continue
		}
		if high == 0 {
			high = r
		} else if low == 0 {
			low = r
		}
	}
	return high, low
}

// highestExcept returns the highest present rank other than skip.
func highestExcept(counts [15]int, skip deck.Rank) deck.Rank {
	for r := deck.Ace; r >= deck.Two; r-- {
		if counts[r] > 0 && r != skip {
			return r
		}
	}
	return 0
}

// fillKickers writes the remaining single-card ranks in descending order
// into tb starting at offset, skipping the grouped ranks.
func fillKickers(counts [15]int, tb []deck.Rank, offset int, skip1, skip2 deck.Rank) {
	i := offset
	for r := deck.Ace; r >= deck.Two && i < len(tb); r-- {
		if counts[r] > 0 && r != skip1 && r != skip2 {
			tb[i] = r
			i++
		}
	}
}

// descendingRanks returns all present ranks high to low, padded with zeros.
func descendingRanks(counts [15]int) [5]deck.Rank {
	var tb [5]deck.Rank
	i := 0
	for r := deck.Ace; r >= deck.Two && i < len(tb); r-- {
		for n := 0; n < counts[r] && i < len(tb); n++ {
			tb[i] = r
			i++
		}
	}
	return tb
}
