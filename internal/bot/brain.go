package bot

import (
	"fmt"

	"tractor/internal/bot/brain"
	botinternal "tractor/internal/bot/internal"
	"tractor/internal/domain"
)

// SelectMove picks the play for the player whose turn it is with the
// standard strategy. Leads are a safe multi-combo when one exists, else the
// strongest simple combo; follows are always legal.
func SelectMove(round *domain.Round, playerID string) []domain.Card {
	player, ok := round.Players[playerID]
	if !ok {
		panic(fmt.Sprintf("bot: %s is not seated", playerID))
	}
	if len(player.Hand) == 0 {
		panic(fmt.Sprintf("bot: %s has no cards", playerID))
	}
	move, err := (&StandardBot{Tuning: DefaultTuning}).CalculateMove(round, player)
	if err != nil {
		panic(fmt.Sprintf("bot: select for %s: %v", playerID, err))
	}
	return ensureLegal(round, player, move.Cards)
}

// leading reports whether the next play opens a trick.
func leading(round *domain.Round) bool {
	return len(round.Trick.Plays) == 0
}

// memoryFor rebuilds what the player has seen this round.
func memoryFor(round *domain.Round, player *domain.Player) *brain.GameMemory {
	return brain.Replay(round.Trump, player.Hand, round.Completed, round.Trick)
}

// leadMove opens with a multi-combo no opponent can contest, else with the
// strongest simple combo.
func leadMove(round *domain.Round, player *domain.Player, mem *brain.GameMemory) []domain.Card {
	est := brain.NewEstimator(mem)
	if combo, ok := est.DetectOptimalMultiCombo(player.Hand, round.Opponents(player.UserID)); ok {
		return combo.Cards
	}
	return botinternal.StrongestLead(player.Hand, round.Trump).Cards
}

// moveContext describes the trick in progress from the player's seat.
func moveContext(round *domain.Round, player *domain.Player, tuning botinternal.BotTuning) botinternal.MoveContext {
	ctx := botinternal.MoveContext{
		Trump:     round.Trump,
		Trick:     round.Trick,
		DuckBelow: tuning.PassPointsThreshold,
		RuffBelow: tuning.RuffPointsThreshold,
	}
	if leading(round) {
		return ctx
	}
	if winner, ok := round.Players[round.Trick.WinningPlayerID]; ok {
		ctx.PartnerWinning = winner.Seat == domain.Partner(player.Seat)
	}
	ctx.LastToPlay = len(round.Trick.Plays) == domain.Seats-1
	ctx.LastTrick = len(player.Hand) == round.Trick.Lead.Count
	return ctx
}

// laterOpponents lists the opponents who still play to the current trick.
func laterOpponents(round *domain.Round, player *domain.Player) []string {
	var out []string
	seat := player.Seat
	for i := len(round.Trick.Plays) + 1; i < domain.Seats; i++ {
		seat = domain.NextSeat(seat)
		if seat != domain.Partner(player.Seat) {
			out = append(out, round.Seats[seat])
		}
	}
	return out
}

// ensureLegal replaces a choice the validator rejects: with the strongest
// simple combo when leading, with the synthesized follow otherwise.
func ensureLegal(round *domain.Round, player *domain.Player, cards []domain.Card) []domain.Card {
	trump := round.Trump
	if leading(round) {
		if domain.ValidateLead(cards, player.Hand, trump) == domain.ViolationNone {
			return cards
		}
		return botinternal.StrongestLead(player.Hand, trump).Cards
	}
	if domain.IsLegal(cards, player.Hand, round.Trick.Lead, trump) {
		return cards
	}
	return domain.Synthesize(player.Hand, round.Trick.Lead, trump)
}

// bestScored returns the highest score; ties keep the lower combo value.
func bestScored(scored []botinternal.ScoredMove) botinternal.ScoredMove {
	best := scored[0]
	for _, s := range scored[1:] {
		if s.Score > best.Score || (s.Score == best.Score && s.Combo.Value < best.Combo.Value) {
			best = s
		}
	}
	return best
}
