package app

import "tractor/internal/domain"

// EventKind identifies emitted domain events for dispatch.
type EventKind string

const (
	EventHandDealt      EventKind = "hand_dealt"
	EventRoundStarted   EventKind = "round_started"
	EventKittyExchanged EventKind = "kitty_exchanged"
	EventCardPlayed     EventKind = "card_played"
	EventTrickWon       EventKind = "trick_won"
	EventRoundEnded     EventKind = "round_ended"
)

// Event is a domain/app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type HandDealtPayload struct {
	UserID string
	Hand   []domain.Card
}

type RoundStartedPayload struct {
	RoundID      string
	Trump        domain.TrumpInfo
	DealerUserID string
}

type KittyExchangedPayload struct {
	UserID          string
	FirstTurnUserID string
}

type CardPlayedPayload struct {
	UserID         string
	Cards          []domain.Card
	NextTurnUserID string
}

type TrickWonPayload struct {
	WinnerUserID   string
	Points         int
	AttackerPoints int
}

type RoundEndedPayload struct {
	RoundID        string
	AttackerPoints int
	KittyPoints    int // buried points added to AttackerPoints, already multiplied
	LastTrickUser  string
}
