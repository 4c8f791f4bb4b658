package equity

import "math"

// Result holds the outcome counts of a Monte Carlo equity estimate.
// Trials is the number of trials actually completed, which can be lower
// than requested when a wall-clock budget expires.
type Result struct {
	Wins   int
	Ties   int
	Trials int
}

// Equity returns the fraction of trials the hero's hand strictly beat the
// sampled opponent hand. Ties are scored as non-win: they are excluded
// from the numerator but counted in the denominator.
func (r Result) Equity() float64 {
	if r.Trials == 0 {
		return 0.0
	}
	return float64(r.Wins) / float64(r.Trials)
}

// TieRate returns the fraction of trials that split.
func (r Result) TieRate() float64 {
	if r.Trials == 0 {
		return 0.0
	}
	return float64(r.Ties) / float64(r.Trials)
}

// LossRate returns the fraction of trials the hero lost outright.
func (r Result) LossRate() float64 {
	if r.Trials == 0 {
		return 0.0
	}
	losses := r.Trials - r.Wins - r.Ties
	return float64(losses) / float64(r.Trials)
}

// ConfidenceInterval returns the 95% confidence interval for Equity.
func (r Result) ConfidenceInterval() (lower, upper float64) {
	if r.Trials == 0 {
		return 0.0, 0.0
	}

	p := r.Equity()
	n := float64(r.Trials)

	// Standard error for a binomial proportion, ±1.96*SE for 95%.
	se := math.Sqrt((p * (1.0 - p)) / n)
	margin := 1.96 * se

	return math.Max(0.0, p-margin), math.Min(1.0, p+margin)
}

func (r Result) add(other Result) Result {
	return Result{
		Wins:   r.Wins + other.Wins,
		Ties:   r.Ties + other.Ties,
		Trials: r.Trials + other.Trials,
	}
}
