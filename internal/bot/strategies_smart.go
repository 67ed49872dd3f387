package bot

import (
	"tractor/internal/bot/brain"
	botinternal "tractor/internal/bot/internal"
	"tractor/internal/domain"
)

// SmartBot reads the play history: it runs the lead rules over its hand
// and discounts wins that a later opponent could still take away.
type SmartBot struct {
	Tuning botinternal.BotTuning
	Rules  []LeadRule
}

func (b *SmartBot) CalculateMove(round *domain.Round, player *domain.Player) (Move, error) {
	if player == nil || len(player.Hand) == 0 {
		return Move{}, ErrEmptyHand
	}

	trump := round.Trump
	est := brain.NewEstimator(memoryFor(round, player))
	opponents := round.Opponents(player.UserID)

	if leading(round) {
		if combo, ok := est.DetectOptimalMultiCombo(player.Hand, opponents); ok {
			return Move{Cards: combo.Cards}, nil
		}
		ctx := NewLeadContext(player.Hand, trump, opponents, est)
		for _, rule := range b.Rules {
			rule.Apply(ctx)
		}
		return Move{Cards: ctx.CurrentBest.Cards}, nil
	}

	moves := botinternal.GetValidMoves(player.Hand, round.Trick.Lead, trump)
	weights := b.Tuning.ForPhase(botinternal.DetectPhase(round))
	ctx := moveContext(round, player, b.Tuning)
	scored := botinternal.BuildScoredMoves(player.Hand, moves, ctx, weights)

	later := laterOpponents(round, player)
	if len(later) > 0 && round.Trick.Lead.Type != domain.Multi && !ctx.PartnerWinning {
		for i := range scored {
			s := &scored[i]
			if !s.Wins {
				continue
			}
			value := round.Trick.Points + domain.TotalPoints(s.Move.Cards)
			risk := 1 - est.IsSafeFromPlayers(s.Combo, later)
			s.Score -= weights.WinPointsBonus * float64(value) * risk
		}
	}

	return Move{Cards: bestScored(scored).Move.Cards}, nil
}
