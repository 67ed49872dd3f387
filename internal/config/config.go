package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"tractor/internal/domain"
)

// SimulationConfig drives the local self-play runner.
type SimulationConfig struct {
	Seed    int64 `yaml:"seed"`
	Rounds  int   `yaml:"rounds"`
	Workers int   `yaml:"workers"`
}

// TuningConfig overrides the bot's point thresholds.
type TuningConfig struct {
	// PassPointsThreshold is the trick value below which a follower ducks.
	PassPointsThreshold int `yaml:"pass_points_threshold"`
	// RuffPointsThreshold is the trick value below which a void follower keeps its trump.
	RuffPointsThreshold int `yaml:"ruff_points_threshold"`
}

type EngineConfig struct {
	BotLevel   string           `yaml:"bot_level"`
	TrumpRank  int              `yaml:"trump_rank"`
	TrumpSuit  string           `yaml:"trump_suit"` // S, H, C, D or empty for no trump suit
	Simulation SimulationConfig `yaml:"simulation"`
	Tuning     TuningConfig     `yaml:"tuning"`
}

var ErrInvalidConfig = errors.New("invalid engine config")

var (
	cfg      *EngineConfig
	loadOnce sync.Once
	loadErr  error
)

// DefaultEngineConfig is used for every field the YAML file leaves out.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		BotLevel:  "standard",
		TrumpRank: int(domain.Two),
		TrumpSuit: "S",
		Simulation: SimulationConfig{
			Seed:    1,
			Rounds:  100,
			Workers: 4,
		},
		Tuning: TuningConfig{
			PassPointsThreshold: 5,
			RuffPointsThreshold: 10,
		},
	}
}

// ParseEngineConfig decodes YAML on top of the defaults and validates it.
func ParseEngineConfig(data []byte) (*EngineConfig, error) {
	c := DefaultEngineConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal engine config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadEngineConfig loads the engine configuration from the given path.
func LoadEngineConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read engine config: %w", err)
			return
		}
		cfg, loadErr = ParseEngineConfig(data)
	})
	return loadErr
}

// GetEngineConfig returns the global engine configuration, or the defaults
// when nothing was loaded.
func GetEngineConfig() *EngineConfig {
	if cfg == nil {
		c := DefaultEngineConfig()
		return &c
	}
	return cfg
}

// Validate checks ranges the rest of the module relies on.
func (c *EngineConfig) Validate() error {
	if c.TrumpRank < int(domain.Two) || c.TrumpRank > int(domain.Ace) {
		return fmt.Errorf("%w: trump_rank %d", ErrInvalidConfig, c.TrumpRank)
	}
	if _, err := domain.ParseSuit(c.TrumpSuit); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Simulation.Rounds < 0 || c.Simulation.Workers < 1 {
		return fmt.Errorf("%w: simulation rounds %d, workers %d", ErrInvalidConfig, c.Simulation.Rounds, c.Simulation.Workers)
	}
	if c.Tuning.PassPointsThreshold < 0 || c.Tuning.RuffPointsThreshold < 0 {
		return fmt.Errorf("%w: negative point threshold", ErrInvalidConfig)
	}
	return nil
}

// Trump returns the configured trump declaration.
func (c *EngineConfig) Trump() domain.TrumpInfo {
	suit, _ := domain.ParseSuit(c.TrumpSuit)
	return domain.TrumpInfo{Rank: domain.Rank(c.TrumpRank), Suit: suit}
}
