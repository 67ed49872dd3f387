package bot

import (
	"errors"

	"tractor/internal/domain"
)

var (
	// ErrNotSeated is returned when the agent has no seat in the round.
	ErrNotSeated = errors.New("bot: player not seated in round")
	// ErrEmptyHand is returned when a move is requested from an empty hand.
	ErrEmptyHand = errors.New("bot: empty hand")
)

// Move represents the decision made by the AI.
type Move struct {
	Cards []domain.Card
}

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	CalculateMove(round *domain.Round, player *domain.Player) (Move, error)
}
