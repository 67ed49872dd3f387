package bot

import (
	"fmt"
	"strings"

	botinternal "tractor/internal/bot/internal"
)

// BotLevel selects a strategy.
type BotLevel int

const (
	BotLevelGood BotLevel = iota
	BotLevelStandard
	BotLevelSmart
)

func (l BotLevel) String() string {
	switch l {
	case BotLevelGood:
		return "good"
	case BotLevelStandard:
		return "standard"
	case BotLevelSmart:
		return "smart"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseBotLevel maps a config or env value to a level.
func ParseBotLevel(s string) (BotLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "good", "easy":
		return BotLevelGood, nil
	case "standard", "medium", "":
		return BotLevelStandard, nil
	case "smart", "hard":
		return BotLevelSmart, nil
	default:
		return BotLevelStandard, fmt.Errorf("unknown bot level: %q", s)
	}
}

// Option adjusts the tuning of a scoring brain.
type Option func(*botinternal.BotTuning)

// WithPointThresholds sets the trick values below which a follower ducks
// instead of contesting, and keeps its trump instead of ruffing.
func WithPointThresholds(pass, ruff int) Option {
	return func(t *botinternal.BotTuning) {
		t.PassPointsThreshold = pass
		t.RuffPointsThreshold = ruff
	}
}

// NewBrain creates a new AI brain based on the specified level.
func NewBrain(level BotLevel, opts ...Option) (Brain, error) {
	tuning := DefaultTuning
	for _, opt := range opts {
		opt(&tuning)
	}

	switch level {
	case BotLevelGood:
		return &GoodBot{}, nil
	case BotLevelStandard:
		return &StandardBot{Tuning: tuning}, nil
	case BotLevelSmart:
		return &SmartBot{Tuning: tuning, Rules: DefaultLeadRules()}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}
