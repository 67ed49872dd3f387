package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"tractor/internal/domain"
)

// Service contains Tractor use-cases operating on domain state.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

var (
	ErrTooFewPlayers   = errors.New("round needs four players")
	ErrDuplicatePlayer = errors.New("player seated twice")
	ErrInvalidSeat     = errors.New("seat out of range")
	ErrUnknownPlayer   = errors.New("player not found")
	ErrNotKittyPhase   = errors.New("round not in kitty phase")
	ErrNotPlaying      = errors.New("round not in playing phase")
	ErrNotDealer       = errors.New("actor is not the dealer")
	ErrKittySize       = errors.New("wrong number of kitty cards")
	ErrCardsNotInHand  = errors.New("cards not in hand")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrIllegalPlay     = errors.New("illegal play")
	ErrUnsafeMultiLead = errors.New("multi-combo lead can be beaten")
)

// IllegalPlayError carries the rule a rejected play broke.
type IllegalPlayError struct {
	Violation domain.Violation
}

func (e *IllegalPlayError) Error() string {
	return fmt.Sprintf("%s: %s", ErrIllegalPlay, e.Violation)
}

func (e *IllegalPlayError) Unwrap() error { return ErrIllegalPlay }

// StartRound shuffles a double deck and deals HandSize cards to each seat in
// order. The dealer also takes the kitty and must bury KittySize cards with
// ExchangeKitty before the first lead.
func (s *Service) StartRound(playerIDs []string, trump domain.TrumpInfo, dealerSeat int) (*domain.Round, []Event, error) {
	if len(playerIDs) != domain.Seats {
		return nil, nil, ErrTooFewPlayers
	}
	if dealerSeat < 0 || dealerSeat >= domain.Seats {
		return nil, nil, fmt.Errorf("%w: dealer %d", ErrInvalidSeat, dealerSeat)
	}

	round := &domain.Round{
		ID:         uuid.NewString(),
		Phase:      domain.PhaseKitty,
		Trump:      trump,
		Players:    make(map[string]*domain.Player, domain.Seats),
		DealerSeat: dealerSeat,
		TurnSeat:   dealerSeat,
	}
	for _, userID := range playerIDs {
		if userID == "" {
			return nil, nil, ErrTooFewPlayers
		}
		if _, dup := round.Players[userID]; dup {
			return nil, nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, userID)
		}
		seat := domain.LowestAvailableSeat(&round.Seats)
		round.Seats[seat] = userID
		round.Players[userID] = &domain.Player{UserID: userID, Seat: seat}
	}

	deck := domain.ShuffleDeck(domain.NewDeck(), s.rng)
	events := make([]Event, 0, domain.Seats+1)

	cardIdx := 0
	for seat := 0; seat < domain.Seats; seat++ {
		pl := round.PlayerAt(seat)
		pl.Hand = append([]domain.Card{}, deck[cardIdx:cardIdx+HandSize]...)
		cardIdx += HandSize
	}
	dealer := round.PlayerAt(dealerSeat)
	dealer.Hand = append(dealer.Hand, deck[cardIdx:cardIdx+KittySize]...)

	for seat := 0; seat < domain.Seats; seat++ {
		pl := round.PlayerAt(seat)
		domain.SortHand(pl.Hand, trump)
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{UserID: pl.UserID, Hand: pl.Hand},
			Recipients: []string{pl.UserID},
		})
	}

	events = append(events, Event{
		Kind:    EventRoundStarted,
		Payload: RoundStartedPayload{RoundID: round.ID, Trump: trump, DealerUserID: dealer.UserID},
	})
	return round, events, nil
}

// ExchangeKitty buries the dealer's discard and opens play with the dealer
// to lead.
func (s *Service) ExchangeKitty(round *domain.Round, actorUserID string, discard []domain.Card) ([]Event, error) {
	if round.Phase != domain.PhaseKitty {
		return nil, ErrNotKittyPhase
	}
	pl, ok := round.Players[actorUserID]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if pl.Seat != round.DealerSeat {
		return nil, ErrNotDealer
	}
	if len(discard) != KittySize {
		return nil, fmt.Errorf("%w: %d", ErrKittySize, len(discard))
	}
	if !domain.ContainsAll(pl.Hand, discard) {
		return nil, ErrCardsNotInHand
	}

	pl.Hand = domain.RemoveCards(pl.Hand, discard)
	round.Kitty = append([]domain.Card{}, discard...)
	round.Phase = domain.PhasePlaying
	round.TurnSeat = round.DealerSeat

	return []Event{
		{
			Kind:    EventKittyExchanged,
			Payload: KittyExchangedPayload{UserID: actorUserID, FirstTurnUserID: actorUserID},
		},
	}, nil
}

// PlayCards validates and applies a play, completing the trick after the
// fourth play and the round after the last trick.
func (s *Service) PlayCards(round *domain.Round, actorUserID string, cards []domain.Card) ([]Event, error) {
	if round.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	pl, ok := round.Players[actorUserID]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if round.Seats[round.TurnSeat] != actorUserID {
		return nil, ErrNotYourTurn
	}

	trump := round.Trump
	if len(round.Trick.Plays) == 0 {
		if v := domain.ValidateLead(cards, pl.Hand, trump); v != domain.ViolationNone {
			return nil, &IllegalPlayError{Violation: v}
		}
		if lead := domain.LeadCombo(cards, trump); lead.Type == domain.Multi {
			if err := checkMultiLead(round, pl, lead); err != nil {
				return nil, err
			}
		}
		round.Trick = domain.NewTrick(actorUserID, cards, trump)
	} else {
		if v := domain.ValidatePlay(cards, pl.Hand, round.Trick.Lead, trump); v != domain.ViolationNone {
			return nil, &IllegalPlayError{Violation: v}
		}
		round.Trick = round.Trick.Add(actorUserID, cards, trump)
	}
	pl.Hand = domain.RemoveCards(pl.Hand, cards)

	var events []Event
	if round.Trick.IsComplete(domain.Seats) {
		events = s.completeTrick(round)
	} else {
		round.TurnSeat = domain.NextSeat(round.TurnSeat)
	}

	next := ""
	if round.Phase != domain.PhaseEnded {
		next = round.Seats[round.TurnSeat]
	}
	played := Event{
		Kind: EventCardPlayed,
		Payload: CardPlayedPayload{
			UserID:         actorUserID,
			Cards:          cards,
			NextTurnUserID: next,
		},
	}
	return append([]Event{played}, events...), nil
}

func (s *Service) completeTrick(round *domain.Round) []Event {
	trick := round.Trick
	winner := round.Players[trick.WinningPlayerID]

	round.Completed = append(round.Completed, trick)
	round.Trick = domain.Trick{}
	round.TurnSeat = winner.Seat
	if !round.IsDefender(winner.Seat) {
		round.AttackerPoints += trick.Points
	}

	events := []Event{
		{
			Kind: EventTrickWon,
			Payload: TrickWonPayload{
				WinnerUserID:   winner.UserID,
				Points:         trick.Points,
				AttackerPoints: round.AttackerPoints,
			},
		},
	}
	if len(winner.Hand) > 0 {
		return events
	}

	kittyPoints := 0
	if !round.IsDefender(winner.Seat) {
		kittyPoints = KittyMultiplier * domain.TotalPoints(round.Kitty)
		round.AttackerPoints += kittyPoints
	}
	round.Phase = domain.PhaseEnded

	return append(events, Event{
		Kind: EventRoundEnded,
		Payload: RoundEndedPayload{
			RoundID:        round.ID,
			AttackerPoints: round.AttackerPoints,
			KittyPoints:    kittyPoints,
			LastTrickUser:  winner.UserID,
		},
	})
}

// checkMultiLead rejects a multi-combo lead when an opponent holds a
// same-shape combo in the group that beats one of its components.
func checkMultiLead(round *domain.Round, leader *domain.Player, lead domain.Combo) error {
	trump := round.Trump
	g, _ := lead.Group(trump)
	for _, component := range domain.MaximalCombos(lead.Cards, trump) {
		for _, id := range round.Opponents(leader.UserID) {
			opp := round.Players[id]
			for _, rival := range domain.CombosOfShape(opp.Hand, trump, g, component.Type, component.Count) {
				if domain.Compare(component, rival, trump) < 0 {
					return fmt.Errorf("%w: %s beats %v", ErrUnsafeMultiLead, id, component.Cards)
				}
			}
		}
	}
	return nil
}
