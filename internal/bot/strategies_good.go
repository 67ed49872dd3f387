package bot

import (
	"sort"

	botinternal "tractor/internal/bot/internal"
	"tractor/internal/domain"
)

// GoodBot leads its strongest combo and follows as cheaply as it legally can.
type GoodBot struct{}

func (b *GoodBot) CalculateMove(round *domain.Round, player *domain.Player) (Move, error) {
	if player == nil || len(player.Hand) == 0 {
		return Move{}, ErrEmptyHand
	}

	trump := round.Trump
	if leading(round) {
		return Move{Cards: botinternal.StrongestLead(player.Hand, trump).Cards}, nil
	}

	moves := botinternal.GetValidMoves(player.Hand, round.Trick.Lead, trump)

	// Cheapest first: fewest points given away, then the weakest cards.
	sort.SliceStable(moves, func(i, j int) bool {
		pi, pj := domain.TotalPoints(moves[i].Cards), domain.TotalPoints(moves[j].Cards)
		if pi != pj {
			return pi < pj
		}
		return strengthSum(moves[i].Cards, trump) < strengthSum(moves[j].Cards, trump)
	})

	return Move{Cards: moves[0].Cards}, nil
}

func strengthSum(cards []domain.Card, trump domain.TrumpInfo) int {
	sum := 0
	for _, c := range cards {
		sum += trump.Strength(c)
	}
	return sum
}
