package internal

import (
	"tractor/internal/domain"
)

const (
	ScoreJoker       = 8.0
	ScoreTrumpRank   = 6.0
	ScoreTrumpCard   = 3.0
	ScoreTractorPair = 6.0 // Per pair inside a tractor
	ScorePair        = 4.0
	ScoreHighSingle  = 2.0  // A, K
	ScoreLowSingle   = -1.0 // 2..Q outside trump
	ScoreVoidSuit    = 3.0  // Plain suit emptied while trump remains
)

// EvaluateHand returns a heuristic score for the given hand.
// Higher is better.
func EvaluateHand(hand []domain.Card, trump domain.TrumpInfo) float64 {
	score := 0.0

	trumps := 0
	for _, c := range hand {
		switch {
		case c.IsJoker():
			score += ScoreJoker
		case c.Rank == trump.Rank:
			score += ScoreTrumpRank
		case trump.IsTrump(c):
			score += ScoreTrumpCard
		default:
			continue
		}
		trumps++
	}

	for _, combo := range domain.MaximalCombos(hand, trump) {
		switch combo.Type {
		case domain.Tractor:
			score += ScoreTractorPair * float64(combo.Count/2)
		case domain.Pair:
			score += ScorePair
		case domain.Single:
			if combo.IsTrump(trump) {
				continue
			}
			if r := combo.Cards[0].Rank; r == domain.Ace || r == domain.King {
				score += ScoreHighSingle
			} else {
				score += ScoreLowSingle
			}
		}
	}

	if trumps > 0 {
		byGroup := trump.SplitByGroup(hand)
		for _, s := range domain.Suits {
			if s == trump.Suit {
				continue
			}
			if len(byGroup[domain.Group(s)]) == 0 {
				score += ScoreVoidSuit
			}
		}
	}
	return score
}
