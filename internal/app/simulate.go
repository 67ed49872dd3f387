package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/heroiclabs/nakama-common/runtime"

	"tractor/internal/bot"
	"tractor/internal/domain"
)

// AttackerTarget is the card-point total at which the attackers win a round.
const AttackerTarget = 80

var ErrNoWorkers = errors.New("simulation needs at least one worker")

// simSeats are the user IDs of the four self-play seats.
var simSeats = []string{"bot0", "bot1", "bot2", "bot3"}

// RoundResult summarizes one self-played round.
type RoundResult struct {
	Index          int
	Seed           int64
	RoundID        string
	DealerSeat     int
	Tricks         int
	AttackerPoints int
	KittyPoints    int
	AttackersWon   bool
}

// SimulationSummary aggregates the results of a batch, ordered by round index.
type SimulationSummary struct {
	Results             []RoundResult
	AttackerWins        int
	TotalAttackerPoints int
}

// AverageAttackerPoints returns the mean attacker score per round.
func (s *SimulationSummary) AverageAttackerPoints() float64 {
	if len(s.Results) == 0 {
		return 0
	}
	return float64(s.TotalAttackerPoints) / float64(len(s.Results))
}

// Simulation describes a batch of self-play rounds.
type Simulation struct {
	Trump   domain.TrumpInfo
	Seed    int64
	Rounds  int
	Workers int
	// Brains plays each seat; strategies must be safe for concurrent use.
	Brains [domain.Seats]bot.Brain
}

// SimulateRound deals one round from the seed and lets the brains play it to
// the end. The dealer buries the kitty with bot.BuryKitty.
func SimulateRound(seed int64, trump domain.TrumpInfo, dealerSeat int, brains [domain.Seats]bot.Brain) (RoundResult, error) {
	svc := NewService(rand.New(rand.NewSource(seed)))
	round, _, err := svc.StartRound(simSeats, trump, dealerSeat)
	if err != nil {
		return RoundResult{}, err
	}

	dealer := round.PlayerAt(dealerSeat)
	discard := bot.BuryKitty(dealer.Hand, trump, KittySize)
	if _, err := svc.ExchangeKitty(round, dealer.UserID, discard); err != nil {
		return RoundResult{}, fmt.Errorf("bury kitty: %w", err)
	}

	agents := make(map[string]*bot.Agent, domain.Seats)
	for seat, id := range simSeats {
		agents[id] = &bot.Agent{ID: id, Name: id, Strategy: brains[seat]}
	}

	res := RoundResult{Seed: seed, RoundID: round.ID, DealerSeat: dealerSeat}
	for round.Phase == domain.PhasePlaying {
		id := round.Seats[round.TurnSeat]
		move, err := agents[id].Play(round)
		if err != nil {
			return RoundResult{}, fmt.Errorf("%s move: %w", id, err)
		}
		events, err := svc.PlayCards(round, id, move.Cards)
		if err != nil {
			return RoundResult{}, fmt.Errorf("%s plays %v: %w", id, move.Cards, err)
		}
		for _, ev := range events {
			if ended, ok := ev.Payload.(RoundEndedPayload); ok {
				res.KittyPoints = ended.KittyPoints
			}
		}
	}

	res.Tricks = len(round.Completed)
	res.AttackerPoints = round.AttackerPoints
	res.AttackersWon = round.AttackerPoints >= AttackerTarget
	return res, nil
}

type simJob struct {
	index int
	seed  int64
}

// RunSimulation plays sim.Rounds rounds on sim.Workers goroutines. Round
// seeds are drawn up front from sim.Seed and the dealer rotates with the
// round index, so the summary does not depend on the worker count.
func RunSimulation(ctx context.Context, logger runtime.Logger, sim Simulation) (*SimulationSummary, error) {
	if sim.Workers < 1 {
		return nil, ErrNoWorkers
	}
	for seat, b := range sim.Brains {
		if b == nil {
			return nil, fmt.Errorf("%w: seat %d has no brain", bot.ErrNotSeated, seat)
		}
	}

	rng := rand.New(rand.NewSource(sim.Seed))
	jobs := make(chan simJob, sim.Rounds)
	for i := 0; i < sim.Rounds; i++ {
		jobs <- simJob{index: i, seed: rng.Int63()}
	}
	close(jobs)

	results := make([]RoundResult, sim.Rounds)
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for w := 0; w < sim.Workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for job := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				res, err := SimulateRound(job.seed, sim.Trump, job.index%domain.Seats, sim.Brains)
				if err != nil {
					errOnce.Do(func() {
						firstErr = fmt.Errorf("round %d (seed %d): %w", job.index, job.seed, err)
						cancel()
					})
					return
				}
				res.Index = job.index
				results[job.index] = res
				logger.Debug("RunSimulation: worker %d finished round %d, attackers %d", worker, job.index, res.AttackerPoints)
			}
		}(w)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := &SimulationSummary{Results: results}
	for _, res := range results {
		summary.TotalAttackerPoints += res.AttackerPoints
		if res.AttackersWon {
			summary.AttackerWins++
		}
	}
	logger.Info("RunSimulation: %d rounds, attackers won %d, average %.1f points", len(results), summary.AttackerWins, summary.AverageAttackerPoints())
	return summary, nil
}
