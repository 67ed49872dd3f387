package bot

import (
	botinternal "tractor/internal/bot/internal"
	"tractor/internal/domain"
)

// StandardBot scores every legal follow with phase weights and leads with a
// safe multi-combo or its strongest combo.
type StandardBot struct {
	Tuning botinternal.BotTuning
}

func (b *StandardBot) CalculateMove(round *domain.Round, player *domain.Player) (Move, error) {
	if player == nil || len(player.Hand) == 0 {
		return Move{}, ErrEmptyHand
	}

	if leading(round) {
		return Move{Cards: leadMove(round, player, memoryFor(round, player))}, nil
	}

	scored := b.scoreFollows(round, player)
	return Move{Cards: bestScored(scored).Move.Cards}, nil
}

func (b *StandardBot) scoreFollows(round *domain.Round, player *domain.Player) []botinternal.ScoredMove {
	moves := botinternal.GetValidMoves(player.Hand, round.Trick.Lead, round.Trump)
	weights := b.Tuning.ForPhase(botinternal.DetectPhase(round))
	ctx := moveContext(round, player, b.Tuning)
	return botinternal.BuildScoredMoves(player.Hand, moves, ctx, weights)
}
