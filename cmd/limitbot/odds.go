package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/limitbot/internal/deck"
	"github.com/lox/limitbot/internal/equity"
	"github.com/lox/limitbot/internal/randutil"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

type OddsCmd struct {
	Hole    string `arg:"" help:"Hole cards, e.g. 'AsKd'"`
	Board   string `short:"b" help:"Community board cards (e.g., 'Td7s8h')"`
	Trials  int    `short:"t" help:"Number of Monte Carlo trials" default:"10000"`
	Workers int    `short:"w" help:"Parallel simulation workers" default:"1"`
	Seed    *int64 `help:"Random seed for reproducible results"`
}

func (c *OddsCmd) Run(logger *log.Logger) error {
	hole, err := deck.ParseCards(c.Hole)
	if err != nil {
		return err
	}
	if len(hole) != 2 {
		return fmt.Errorf("hole must contain exactly 2 cards, got %d", len(hole))
	}

	var board []deck.Card
	if c.Board != "" {
		board, err = deck.ParseCards(c.Board)
		if err != nil {
			return err
		}
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	rng := randutil.New(seed)

	logger.Debug("estimating equity", "trials", c.Trials, "workers", c.Workers, "seed", seed)

	est := &equity.Estimator{Trials: c.Trials, Workers: c.Workers}
	startTime := time.Now()
	res, err := est.Estimate(hole, board, rng)
	if err != nil {
		return err
	}
	duration := time.Since(startTime)

	if len(board) > 0 {
		fmt.Printf("%s\n%s\n\n", headerStyle.Render("board"), formatCards(board))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("loss"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		handStyle.Render(formatCards(hole)),
		winStyle.Render(fmt.Sprintf("%.1f%%", res.Equity()*100)),
		tieStyle.Render(fmt.Sprintf("%.1f%%", res.TieRate()*100)),
		lossStyle.Render(fmt.Sprintf("%.1f%%", res.LossRate()*100)))
	w.Flush()

	lower, upper := res.ConfidenceInterval()
	fmt.Printf("\n95%% CI %.1f%%-%.1f%%", lower*100, upper*100)
	if len(board) == 0 {
		fmt.Printf("  preflop percentile %.1f%%", deck.Percentile(hole)*100)
	}
	fmt.Printf("\n%d trials in %v\n", res.Trials, duration.Truncate(time.Millisecond))

	return nil
}

func formatCards(cards []deck.Card) string {
	var parts []string
	for _, card := range cards {
		parts = append(parts, card.String())
	}
	return strings.Join(parts, " ")
}
