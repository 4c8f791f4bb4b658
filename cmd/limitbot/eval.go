package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/limitbot/internal/deck"
	"github.com/lox/limitbot/internal/evaluator"
)

type EvalCmd struct {
	Cards string `arg:"" help:"Cards to evaluate, e.g. 'AsKsQsJsTs9h8h'"`
}

func (c *EvalCmd) Run(logger *log.Logger) error {
	cards, err := deck.ParseCards(c.Cards)
	if err != nil {
		return err
	}

	strength, err := evaluator.Evaluate(cards)
	if err != nil {
		return err
	}

	logger.Debug("evaluated", "cards", len(cards), "category", strength.Category.String())

	fmt.Printf("%s\n%s\n", handStyle.Render(formatCards(cards)), strength)
	return nil
}
