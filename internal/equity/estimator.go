// Package equity estimates heads-up win probability by Monte Carlo
// simulation: repeatedly deal random opponent hole cards and the remaining
// community cards, evaluate both hands, and count the hero's wins.
package equity

import (
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/limitbot/internal/deck"
	"github.com/lox/limitbot/internal/evaluator"
	"github.com/lox/limitbot/internal/randutil"
)

// DefaultTrials is the trial count used when Estimator.Trials is zero.
const DefaultTrials = 10000

// batchSize is how many trials run between wall-clock budget checks.
const batchSize = 512

// InsufficientDeckError indicates a trial would need more cards than
// remain in the deck. It cannot occur under a correct observation state,
// so it always indicates a caller bug; it is surfaced, never retried.
type InsufficientDeckError struct {
	Need int
	Have int
}

func (e *InsufficientDeckError) Error() string {
	return fmt.Sprintf("insufficient deck: need %d cards, %d remain", e.Need, e.Have)
}

// Estimator runs Monte Carlo equity estimates. The zero value estimates
// with DefaultTrials, a single worker, no budget and the real clock.
// An Estimator holds no mutable state between calls; concurrent Estimate
// calls are safe as long as each is given its own rand source.
type Estimator struct {
	// Trials is the number of simulations per estimate.
	Trials int

	// Workers fans trials out over an errgroup when greater than one.
	Workers int

	// Budget optionally bounds the wall-clock time of an estimate.
	// When it expires between batches the estimate returns early with
	// the trials completed so far. Zero means no budget.
	Budget time.Duration

	// Clock is consulted for the budget. Defaults to the real clock;
	// tests inject a mock.
	Clock quartz.Clock
}

// Estimate returns the simulated equity of hole against a uniformly random
// opponent hand, completing board to five cards in every trial. All cards
// within a trial are drawn without replacement from the deck remaining
// after hole and board, and every trial draws from the full remaining deck
// again. The same seeded rng always produces the same Result, including
// with Workers > 1.
func (e *Estimator) Estimate(hole, board []deck.Card, rng *rand.Rand) (Result, error) {
	if len(hole) != 2 {
		return Result{}, &evaluator.InvalidHandError{Count: len(hole)}
	}
	if len(board) > 5 {
		return Result{}, &evaluator.InvalidHandError{Count: len(hole) + len(board)}
	}

	known := make([]deck.Card, 0, len(hole)+len(board))
	known = append(known, hole...)
	known = append(known, board...)

	var seen deck.CardSet
	for i := range known {
		if seen.Contains(known[i]) {
			dup := known[i]
			return Result{}, &evaluator.InvalidHandError{Count: len(known), Duplicate: &dup}
		}
		seen.Add(known[i])
	}

	remaining := deck.Remaining(known...)
	draws := 2 + (5 - len(board))
	if draws > len(remaining) {
		return Result{}, &InsufficientDeckError{Need: draws, Have: len(remaining)}
	}

	trials := e.Trials
	if trials <= 0 {
		trials = DefaultTrials
	}
	clock := e.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	if e.Workers <= 1 {
		return e.simulate(hole, board, remaining, trials, rng, clock)
	}
	return e.parallel(hole, board, remaining, trials, rng, clock)
}

// parallel splits trials over Workers goroutines. Worker seeds are drawn
// from rng up front and each worker gets a fixed share, so the summed
// counts do not depend on scheduling.
func (e *Estimator) parallel(hole, board, remaining []deck.Card, trials int, rng *rand.Rand, clock quartz.Clock) (Result, error) {
	workers := e.Workers
	if workers > trials {
		workers = trials
	}

	rngs := make([]*rand.Rand, workers)
	for i := range rngs {
		rngs[i] = randutil.Derive(rng)
	}

	share := trials / workers
	extra := trials % workers

	var g errgroup.Group
	results := make([]Result, workers)
	for w := 0; w < workers; w++ {
		workerTrials := share
		if w < extra {
			workerTrials++
		}
		workerRng := rngs[w]
		g.Go(func() error {
			res, err := e.simulate(hole, board, remaining, workerTrials, workerRng, clock)
			if err != nil {
				return err
			}
			results[w] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var total Result
	for _, res := range results {
		total = total.add(res)
	}
	return total, nil
}

// simulate runs trials sequentially against its own rand source.
func (e *Estimator) simulate(hole, board, remaining []deck.Card, trials int, rng *rand.Rand, clock quartz.Clock) (Result, error) {
	// Local copy so concurrent workers never share the swap area.
	cards := make([]deck.Card, len(remaining))
	copy(cards, remaining)

	draws := 2 + (5 - len(board))
	hero := make([]deck.Card, 0, 7)
	opp := make([]deck.Card, 0, 7)

	var start time.Time
	if e.Budget > 0 {
		start = clock.Now()
	}

	var res Result
	for res.Trials < trials {
		if e.Budget > 0 && clock.Since(start) >= e.Budget {
			break
		}

		batch := trials - res.Trials
		if batch > batchSize {
			batch = batchSize
		}

		for i := 0; i < batch; i++ {
			// Partial Fisher-Yates: the first `draws` positions become a
			// uniform without-replacement sample of the remaining deck.
			for k := 0; k < draws; k++ {
				j := k + rng.IntN(len(cards)-k)
				cards[k], cards[j] = cards[j], cards[k]
			}
			oppHole := cards[0:2]
			runout := cards[2:draws]

			hero = hero[:0]
			hero = append(hero, hole...)
			hero = append(hero, board...)
			hero = append(hero, runout...)

			opp = opp[:0]
			opp = append(opp, oppHole...)
			opp = append(opp, board...)
			opp = append(opp, runout...)

			heroStrength, err := evaluator.Evaluate(hero)
			if err != nil {
				return Result{}, err
			}
			oppStrength, err := evaluator.Evaluate(opp)
			if err != nil {
				return Result{}, err
			}

			switch heroStrength.Compare(oppStrength) {
			case 1:
				res.Wins++
			case 0:
				res.Ties++
			}
			res.Trials++
		}
	}

	return res, nil
}
