package bot

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"tractor/internal/domain"
)

var twoSpades = domain.TrumpInfo{Rank: domain.Two, Suit: domain.Spades}

func card(r domain.Rank, s domain.Suit) domain.Card { return domain.Card{Suit: s, Rank: r} }

func copy1(r domain.Rank, s domain.Suit) domain.Card { return domain.Card{Suit: s, Rank: r, Deck: 1} }

// newRound seats p0..p3 with the given hands; p0 and p2 are partners.
func newRound(trump domain.TrumpInfo, hands [domain.Seats][]domain.Card) *domain.Round {
	r := &domain.Round{
		ID:      "test",
		Phase:   domain.PhasePlaying,
		Trump:   trump,
		Players: make(map[string]*domain.Player),
	}
	for i := 0; i < domain.Seats; i++ {
		id := fmt.Sprintf("p%d", i)
		r.Seats[i] = id
		r.Players[id] = &domain.Player{UserID: id, Seat: i, Hand: hands[i]}
	}
	return r
}

// dealRound shuffles a double deck with the seed and deals 25 cards each.
func dealRound(seed int64) *domain.Round {
	deck := domain.ShuffleDeck(domain.NewDeck(), rand.New(rand.NewSource(seed)))
	var hands [domain.Seats][]domain.Card
	for i := 0; i < domain.Seats; i++ {
		hands[i] = append([]domain.Card{}, deck[i*25:(i+1)*25]...)
	}
	trump := domain.TrumpInfo{Rank: domain.Rank(2 + seed%13), Suit: domain.Suits[seed%4]}
	r := newRound(trump, hands)
	r.Kitty = append([]domain.Card{}, deck[100:]...)
	return r
}

// play applies a move the way the round service does and fails the test
// when the rules reject it.
func play(t *testing.T, r *domain.Round, id string, cards []domain.Card) {
	t.Helper()
	p := r.Players[id]
	if len(r.Trick.Plays) == 0 {
		require.Equal(t, domain.ViolationNone, domain.ValidateLead(cards, p.Hand, r.Trump), "lead %v from %v", cards, p.Hand)
		r.Trick = domain.NewTrick(id, cards, r.Trump)
	} else {
		require.Equal(t, domain.ViolationNone, domain.ValidatePlay(cards, p.Hand, r.Trick.Lead, r.Trump),
			"follow %v to %v from %v", cards, r.Trick.Lead.Cards, p.Hand)
		r.Trick = r.Trick.Add(id, cards, r.Trump)
	}
	p.Hand = domain.RemoveCards(p.Hand, cards)
	r.TurnSeat = domain.NextSeat(p.Seat)
	if r.Trick.IsComplete(domain.Seats) {
		r.Completed = append(r.Completed, r.Trick)
		r.TurnSeat = r.Players[r.Trick.WinningPlayerID].Seat
		r.Trick = domain.Trick{}
	}
}

// playOut lets the brains play every trick of the round. Moves go straight
// from the strategy to the rules, without the agent's safety net.
func playOut(t *testing.T, r *domain.Round, brains [domain.Seats]Brain) {
	t.Helper()
	for {
		p := r.PlayerAt(r.TurnSeat)
		if p == nil || len(p.Hand) == 0 {
			return
		}
		move, err := brains[r.TurnSeat].CalculateMove(r, p)
		require.NoError(t, err)
		play(t, r, p.UserID, move.Cards)
	}
}
