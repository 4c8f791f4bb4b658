package bot

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/limitbot/internal/equity"
	"github.com/lox/limitbot/internal/policy"
)

// Config is the bot configuration loaded from an HCL file.
type Config struct {
	Bot Settings `hcl:"bot,block"`
}

// Settings contains the tunable knobs for a bot instance.
type Settings struct {
	// Trials per equity estimate.
	Trials int `hcl:"trials,optional"`

	// Workers for the estimator's parallel mode.
	Workers int `hcl:"workers,optional"`

	// BudgetMS optionally bounds each estimate's wall-clock time.
	BudgetMS int `hcl:"budget_ms,optional"`

	// RaiseProbability and BluffFrequency feed the decision policy.
	RaiseProbability float64 `hcl:"raise_probability,optional"`
	BluffFrequency   float64 `hcl:"bluff_frequency,optional"`

	// PreflopFoldBelow folds trash preflop by starting-hand percentile
	// before spending any simulation trials. Zero disables the gate.
	PreflopFoldBelow float64 `hcl:"preflop_fold_below,optional"`

	// Seed makes the bot deterministic; zero seeds from the clock.
	Seed int64 `hcl:"seed,optional"`

	LogLevel string `hcl:"log_level,optional"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Bot: Settings{
			Trials:           equity.DefaultTrials,
			Workers:          1,
			RaiseProbability: policy.DefaultRaiseProbability,
			BluffFrequency:   policy.DefaultBluffFrequency,
			LogLevel:         "info",
		},
	}
}

// LoadConfig loads bot configuration from an HCL file. A missing file
// yields the defaults; a present file has defaults applied per-field.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig().Bot
	if config.Bot.Trials <= 0 {
		config.Bot.Trials = defaults.Trials
	}
	if config.Bot.Workers <= 0 {
		config.Bot.Workers = defaults.Workers
	}
	if config.Bot.RaiseProbability == 0 {
		config.Bot.RaiseProbability = defaults.RaiseProbability
	}
	if config.Bot.BluffFrequency == 0 {
		config.Bot.BluffFrequency = defaults.BluffFrequency
	}
	if config.Bot.LogLevel == "" {
		config.Bot.LogLevel = defaults.LogLevel
	}

	return &config, nil
}
