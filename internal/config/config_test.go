package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tractor/internal/domain"
)

func TestParseEngineConfig(t *testing.T) {
	data := []byte(`
bot_level: smart
trump_rank: 10
trump_suit: H
simulation:
  rounds: 8
tuning:
  ruff_points_threshold: 20
`)
	c, err := ParseEngineConfig(data)
	if err != nil {
		t.Fatalf("ParseEngineConfig failed: %v", err)
	}
	if c.BotLevel != "smart" {
		t.Errorf("bot level = %q", c.BotLevel)
	}
	if got := c.Trump(); got != (domain.TrumpInfo{Rank: domain.Ten, Suit: domain.Hearts}) {
		t.Errorf("trump = %+v", got)
	}
	if c.Simulation.Rounds != 8 || c.Simulation.Workers != 4 || c.Simulation.Seed != 1 {
		t.Errorf("simulation defaults not kept: %+v", c.Simulation)
	}
	if c.Tuning.RuffPointsThreshold != 20 || c.Tuning.PassPointsThreshold != 5 {
		t.Errorf("tuning = %+v", c.Tuning)
	}
}

func TestParseEngineConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "rank too low", yaml: "trump_rank: 1"},
		{name: "joker rank", yaml: "trump_rank: 15"},
		{name: "bad suit", yaml: "trump_suit: X"},
		{name: "no workers", yaml: "simulation: {workers: 0}"},
		{name: "negative threshold", yaml: "tuning: {pass_points_threshold: -5}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseEngineConfig([]byte(tt.yaml)); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	if _, err := ParseEngineConfig([]byte("trump_rank: [")); err == nil {
		t.Fatalf("expected a decode error")
	}
}

func TestNoTrumpSuit(t *testing.T) {
	c, err := ParseEngineConfig([]byte(`trump_suit: ""`))
	if err != nil {
		t.Fatalf("ParseEngineConfig failed: %v", err)
	}
	if c.Trump().Suit != domain.SuitNone {
		t.Errorf("expected no trump suit, got %v", c.Trump().Suit)
	}
}

func TestLoadEngineConfigOnce(t *testing.T) {
	if got := GetEngineConfig(); got.BotLevel != "standard" {
		t.Fatalf("expected defaults before loading, got %+v", got)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yml")
	if err := os.WriteFile(path, []byte("bot_level: good\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := LoadEngineConfig(path); err != nil {
		t.Fatalf("LoadEngineConfig failed: %v", err)
	}
	if got := GetEngineConfig(); got.BotLevel != "good" {
		t.Fatalf("bot level = %q, want good", got.BotLevel)
	}

	// later loads are ignored
	if err := LoadEngineConfig(filepath.Join(dir, "missing.yml")); err != nil {
		t.Fatalf("second load should be a no-op, got %v", err)
	}
	if got := GetEngineConfig(); got.BotLevel != "good" {
		t.Fatalf("config replaced by a second load")
	}
}
