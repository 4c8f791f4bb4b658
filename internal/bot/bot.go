// Package bot glues the estimator and policy into the round lifecycle the
// external runner drives: new round, a series of decisions, round over.
package bot

import (
	"fmt"
	rand "math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/limitbot/internal/deck"
	"github.com/lox/limitbot/internal/equity"
	"github.com/lox/limitbot/internal/policy"
	"github.com/lox/limitbot/internal/randutil"
)

// RawObservation mirrors the runner's per-decision fields, with cards
// still in the external two-character encoding. Parsing happens at this
// boundary; malformed tokens never reach the core.
type RawObservation struct {
	MyCards    []string
	BoardCards []string

	MyPip           int
	OppPip          int
	MyStack         int
	OppStack        int
	MyContribution  int
	OppContribution int

	MinRaise     int
	MaxRaise     int
	LegalActions []policy.ActionType
}

// Bot makes one decision per observation. Two independent random sources
// back it: simRng drives the Monte Carlo estimator and playRng drives the
// policy's mixing, so seeding one never perturbs the other.
type Bot struct {
	cfg       *Config
	logger    *log.Logger
	clock     quartz.Clock
	estimator *equity.Estimator
	policy    *policy.Policy
	model     *policy.OpponentModel
	playRng   *rand.Rand
	simRng    *rand.Rand
	roundLog  []string
}

// New creates a bot from config. A zero seed draws one from the clock.
func New(cfg *Config, logger *log.Logger, clock quartz.Clock) *Bot {
	if clock == nil {
		clock = quartz.NewReal()
	}

	seed := cfg.Bot.Seed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}
	base := randutil.New(seed)

	return &Bot{
		cfg:    cfg,
		logger: logger.WithPrefix("bot"),
		clock:  clock,
		estimator: &equity.Estimator{
			Trials:  cfg.Bot.Trials,
			Workers: cfg.Bot.Workers,
			Budget:  time.Duration(cfg.Bot.BudgetMS) * time.Millisecond,
			Clock:   clock,
		},
		policy: &policy.Policy{
			RaiseProbability: cfg.Bot.RaiseProbability,
			BluffFrequency:   cfg.Bot.BluffFrequency,
		},
		model:   policy.NewOpponentModel(),
		playRng: randutil.Derive(base),
		simRng:  randutil.Derive(base),
	}
}

// Model exposes the opponent model the bot owns.
func (b *Bot) Model() *policy.OpponentModel {
	return b.model
}

// HandleNewRound resets the per-round log.
func (b *Bot) HandleNewRound(round int) {
	b.roundLog = b.roundLog[:0]
	b.note("new round %d", round)
	b.logger.Debug("new round", "round", round)
}

// HandleRoundOver records the result and returns the round's log lines.
func (b *Bot) HandleRoundOver(delta int) []string {
	b.note("round over, delta %d", delta)
	lines := make([]string, len(b.roundLog))
	copy(lines, b.roundLog)
	return lines
}

// GetAction estimates equity for the observed hand and asks the policy
// for one legal action.
func (b *Bot) GetAction(raw RawObservation) (policy.Action, error) {
	start := b.clock.Now()

	hole, err := parseTokens(raw.MyCards)
	if err != nil {
		return policy.Action{}, err
	}
	board, err := parseTokens(raw.BoardCards)
	if err != nil {
		return policy.Action{}, err
	}

	obs := policy.Observation{
		MyCards:         hole,
		BoardCards:      board,
		MyPip:           raw.MyPip,
		OppPip:          raw.OppPip,
		MyStack:         raw.MyStack,
		OppStack:        raw.OppStack,
		MyContribution:  raw.MyContribution,
		OppContribution: raw.OppContribution,
		MinRaise:        raw.MinRaise,
		MaxRaise:        raw.MaxRaise,
		LegalActions:    raw.LegalActions,
	}

	facingBet := obs.ContinueCost() > 0
	defer b.model.Observe(board, facingBet)

	// Preflop gate: fold hands below the percentile floor when facing a
	// bet, before spending any trials on them.
	if len(board) == 0 && b.cfg.Bot.PreflopFoldBelow > 0 {
		pct := deck.Percentile(hole)
		b.note("preflop percentile %.3f", pct)
		if pct < b.cfg.Bot.PreflopFoldBelow && facingBet && obs.Allows(policy.Fold) {
			b.note("preflop gate folds below %.3f", b.cfg.Bot.PreflopFoldBelow)
			b.logger.Debug("preflop gate fold", "percentile", pct)
			return policy.Action{Type: policy.Fold}, nil
		}
	}

	res, err := b.estimator.Estimate(hole, board, b.simRng)
	if err != nil {
		return policy.Action{}, err
	}

	action := b.policy.Decide(obs, res.Equity(), b.model, b.playRng)

	b.note("equity %.3f over %d trials, pot odds %.3f, %s", res.Equity(), res.Trials, obs.PotOdds(), action.Type)
	b.logger.Info("decision",
		"hole", strings.Join(raw.MyCards, " "),
		"board", strings.Join(raw.BoardCards, " "),
		"equity", res.Equity(),
		"trials", res.Trials,
		"potOdds", obs.PotOdds(),
		"action", action.Type.String(),
		"amount", action.Amount,
		"elapsed", b.clock.Since(start))

	return action, nil
}

func parseTokens(tokens []string) ([]deck.Card, error) {
	var cards []deck.Card
	for _, tok := range tokens {
		card, err := deck.ParseCard(tok)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func (b *Bot) note(format string, args ...any) {
	b.roundLog = append(b.roundLog, fmt.Sprintf(format, args...))
}
