package bot

import (
	"fmt"

	"tractor/internal/domain"
)

// Agent represents an autonomous bot player.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// Play asks the agent to calculate its move based on the current round.
// Whatever the strategy returns is checked against the rules before it is
// handed back.
func (a *Agent) Play(round *domain.Round) (Move, error) {
	player, ok := round.Players[a.ID]
	if !ok {
		return Move{}, fmt.Errorf("%w: %s", ErrNotSeated, a.ID)
	}
	if len(player.Hand) == 0 {
		return Move{}, ErrEmptyHand
	}

	move, err := a.Strategy.CalculateMove(round, player)
	if err != nil {
		return Move{}, err
	}
	move.Cards = ensureLegal(round, player, move.Cards)
	return move, nil
}

// PlayAtSeat is used when the caller only knows the seat index.
func (a *Agent) PlayAtSeat(round *domain.Round, seat int) (Move, error) {
	player := round.PlayerAt(seat)
	if player == nil {
		return Move{}, fmt.Errorf("%w: seat %d", ErrNotSeated, seat)
	}
	if player.UserID != a.ID {
		return Move{}, fmt.Errorf("%w: seat %d belongs to %s", ErrNotSeated, seat, player.UserID)
	}
	return a.Play(round)
}
