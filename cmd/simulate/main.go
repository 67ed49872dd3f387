// Package main runs Tractor rounds between bots and reports how the
// attacking side scored.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"tractor/internal/app"
	"tractor/internal/bot"
	"tractor/internal/config"
	"tractor/internal/domain"
	"tractor/internal/logging"
)

var (
	configPath string
	rounds     int
	seed       int64
	workers    int
	level      string
	rivalLevel string
	verbose    bool
)

func init() {
	flag.StringVar(&configPath, "config", "", "YAML engine config (defaults apply when empty)")
	flag.IntVar(&rounds, "rounds", 0, "Number of rounds to play (0 = config value)")
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 = config value)")
	flag.IntVar(&workers, "workers", 0, "Worker goroutines (0 = config value)")
	flag.StringVar(&level, "level", "", "Bot level for seats 0 and 2 (good, standard, smart)")
	flag.StringVar(&rivalLevel, "rival-level", "", "Bot level for seats 1 and 3 (defaults to -level)")
	flag.BoolVar(&verbose, "v", false, "Log every finished round")
}

func main() {
	flag.Parse()

	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger := logging.NewSlogLogger(os.Stderr, logLevel)

	if configPath != "" {
		if err := config.LoadEngineConfig(configPath); err != nil {
			logger.Error("simulate: %v", err)
			os.Exit(1)
		}
	}
	cfg := config.GetEngineConfig()

	sim := app.Simulation{
		Trump:   cfg.Trump(),
		Seed:    cfg.Simulation.Seed,
		Rounds:  cfg.Simulation.Rounds,
		Workers: cfg.Simulation.Workers,
	}
	if seed != 0 {
		sim.Seed = seed
	}
	if rounds > 0 {
		sim.Rounds = rounds
	}
	if workers > 0 {
		sim.Workers = workers
	}

	if level == "" {
		level = cfg.BotLevel
	}
	if rivalLevel == "" {
		rivalLevel = level
	}
	opts := []bot.Option{bot.WithPointThresholds(cfg.Tuning.PassPointsThreshold, cfg.Tuning.RuffPointsThreshold)}
	for seat := 0; seat < domain.Seats; seat++ {
		name := level
		if seat%2 == 1 {
			name = rivalLevel
		}
		brain, err := newBrain(name, opts)
		if err != nil {
			logger.Error("simulate: seat %d: %v", seat, err)
			os.Exit(2)
		}
		sim.Brains[seat] = brain
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.WithFields(map[string]interface{}{
		"rounds":  sim.Rounds,
		"workers": sim.Workers,
		"seed":    sim.Seed,
		"trump":   fmt.Sprintf("%v", sim.Trump),
	}).Info("simulate: starting %s vs %s", level, rivalLevel)

	summary, err := app.RunSimulation(ctx, logger, sim)
	if err != nil {
		logger.Error("simulate: %v", err)
		os.Exit(1)
	}

	fmt.Printf("rounds:          %d\n", len(summary.Results))
	fmt.Printf("attacker wins:   %d\n", summary.AttackerWins)
	fmt.Printf("average points:  %.1f\n", summary.AverageAttackerPoints())
}

func newBrain(name string, opts []bot.Option) (bot.Brain, error) {
	lvl, err := bot.ParseBotLevel(name)
	if err != nil {
		return nil, err
	}
	return bot.NewBrain(lvl, opts...)
}
