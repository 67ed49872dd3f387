package internal

import "tractor/internal/domain"

// MoveContext describes the trick a move is scored against.
type MoveContext struct {
	Trump          domain.TrumpInfo
	Trick          domain.Trick // no plays when leading
	PartnerWinning bool
	LastToPlay     bool
	LastTrick      bool
	DuckBelow      int // trick value not worth contesting
	RuffBelow      int // trick value not worth a ruff
}

// Leading reports whether the move opens the trick.
func (c MoveContext) Leading() bool {
	return len(c.Trick.Plays) == 0
}

// ScoredMove holds a move with its computed score and supporting metadata.
type ScoredMove struct {
	Move             ValidMove
	Score            float64
	Combo            domain.Combo
	Wins             bool
	Remaining        []domain.Card
	RemainingProfile HandProfile
}

// ScoreHand evaluates a hand using the configured weights and structure profile.
func ScoreHand(hand []domain.Card, trump domain.TrumpInfo, weights PhaseWeights) float64 {
	profile := ProfileHand(hand, trump)
	return scoreHandWithProfile(hand, trump, profile, weights)
}

// BuildScoredMoves scores each move by the hand it leaves behind and by what
// it does to the trick.
func BuildScoredMoves(hand []domain.Card, moves []ValidMove, ctx MoveContext, weights PhaseWeights) []ScoredMove {
	trump := ctx.Trump
	scored := make([]ScoredMove, 0, len(moves))
	for _, move := range moves {
		remaining := domain.RemoveCards(hand, move.Cards)
		profile := ProfileHand(remaining, trump)
		score := scoreHandWithProfile(remaining, trump, profile, weights)

		trumpsUsed := len(trump.CardsInGroup(move.Cards, domain.GroupTrump))
		score -= weights.UseTrumpPenalty * float64(trumpsUsed)
		score -= weights.UseHighCardPenalty * float64(topRank(move.Cards, trump))

		points := domain.TotalPoints(move.Cards)
		combo := domain.IdentifyCombo(move.Cards, trump)
		wins := false

		if ctx.Leading() {
			score -= weights.FeedPointsPenalty * float64(points)
		} else {
			combo = domain.FollowCombo(ctx.Trick.Lead, move.Cards, trump)
			eval := domain.EvaluateTrickPlay(move.Cards, ctx.Trick, trump, hand)
			wins = eval.CanBeat
			value := ctx.Trick.Points + points
			ruff := !ctx.Trick.Lead.IsTrump(trump) && trumpsUsed == len(move.Cards)

			switch {
			case wins && ctx.PartnerWinning:
				score -= weights.OvertakePenalty
			case wins && ruff && value < ctx.RuffBelow:
				score -= weights.UseTrumpPenalty * float64(trumpsUsed)
			case wins && value >= ctx.DuckBelow:
				score += weights.WinPointsBonus * float64(value)
				if ctx.LastTrick {
					score += weights.LastTrickBonus
				}
			case !wins && ctx.PartnerWinning:
				bonus := weights.DumpPointsBonus * float64(points)
				if !ctx.LastToPlay {
					bonus /= 2
				}
				score += bonus
			case !wins:
				score -= weights.FeedPointsPenalty * float64(points)
			}
		}

		scored = append(scored, ScoredMove{
			Move:             move,
			Score:            score,
			Combo:            combo,
			Wins:             wins,
			Remaining:        remaining,
			RemainingProfile: profile,
		})
	}
	return scored
}

func scoreHandWithProfile(hand []domain.Card, trump domain.TrumpInfo, profile HandProfile, weights PhaseWeights) float64 {
	score := 0.0
	score += weights.HandScoreWeight * EvaluateHand(hand, trump)
	score += weights.TractorPairWeight * float64(profile.TractorPairs)
	score += weights.PairWeight * float64(profile.Pairs)
	score += weights.SingleWeight * float64(profile.Singles)
	score += weights.TrumpCardWeight * float64(profile.TrumpCards)
	score += weights.VoidSuitWeight * float64(profile.VoidSuits)
	return score
}

// topRank places the strongest card of the move on one 2..25 scale: plain
// and trump-suit cards by rank, trump-rank cards and jokers above them.
func topRank(cards []domain.Card, trump domain.TrumpInfo) int {
	best := 0
	for _, c := range cards {
		s := trump.Strength(c)
		switch {
		case s >= 290:
			s -= 275
		case s >= 100:
			s -= 100
		}
		if s > best {
			best = s
		}
	}
	return best
}
