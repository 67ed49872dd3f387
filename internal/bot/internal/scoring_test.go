package internal

import (
	"sort"
	"testing"

	"tractor/internal/domain"
)

func best(scored []ScoredMove) ScoredMove {
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	return scored[0]
}

func TestBuildScoredMoves_PointsFollowTheWinner(t *testing.T) {
	hand := []domain.Card{card(domain.King, domain.Clubs), card(domain.Four, domain.Clubs), card(domain.Three, domain.Diamonds)}
	trick := domain.NewTrick("partner", []domain.Card{card(domain.Ace, domain.Hearts)}, twoSpades)
	moves := GetValidMoves(hand, trick.Lead, twoSpades)

	weights := PhaseWeights{DumpPointsBonus: 1, FeedPointsPenalty: 1}

	ctx := MoveContext{Trump: twoSpades, Trick: trick, PartnerWinning: true, LastToPlay: true}
	if got := best(BuildScoredMoves(hand, moves, ctx, weights)); got.Move.Cards[0] != card(domain.King, domain.Clubs) {
		t.Errorf("partner holds the trick: expected the king, got %v", got.Move.Cards)
	}

	ctx.PartnerWinning = false
	if got := best(BuildScoredMoves(hand, moves, ctx, weights)); got.Move.Cards[0].Points() != 0 {
		t.Errorf("opponent holds the trick: expected no points, got %v", got.Move.Cards)
	}
}

func TestBuildScoredMoves_RuffThreshold(t *testing.T) {
	hand := []domain.Card{card(domain.Ace, domain.Spades), card(domain.Four, domain.Clubs)}
	weights := PhaseWeights{WinPointsBonus: 1, UseTrumpPenalty: 1}

	cheap := domain.NewTrick("opp", []domain.Card{card(domain.Seven, domain.Hearts)}, twoSpades)
	ctx := MoveContext{Trump: twoSpades, Trick: cheap, RuffBelow: 10}
	got := best(BuildScoredMoves(hand, GetValidMoves(hand, cheap.Lead, twoSpades), ctx, weights))
	if got.Wins {
		t.Errorf("expected to keep the trump on a pointless trick, got %v", got.Move.Cards)
	}

	rich := domain.NewTrick("opp", []domain.Card{card(domain.King, domain.Hearts)}, twoSpades)
	rich = rich.Add("partner", []domain.Card{card(domain.Ten, domain.Hearts)}, twoSpades)
	ctx.Trick = rich
	got = best(BuildScoredMoves(hand, GetValidMoves(hand, rich.Lead, twoSpades), ctx, weights))
	if !got.Wins || got.Move.Cards[0] != card(domain.Ace, domain.Spades) {
		t.Errorf("expected to ruff a 20 point trick, got %v", got.Move.Cards)
	}
}

func TestBuildScoredMoves_Lead(t *testing.T) {
	hand := []domain.Card{card(domain.King, domain.Clubs), card(domain.Four, domain.Clubs)}
	ctx := MoveContext{Trump: twoSpades}
	scored := BuildScoredMoves(hand, GetLeadMoves(hand, twoSpades), ctx, PhaseWeights{FeedPointsPenalty: 1})
	if len(scored) != 2 {
		t.Fatalf("expected two lead moves, got %d", len(scored))
	}
	if got := best(scored); got.Move.Cards[0] != card(domain.Four, domain.Clubs) {
		t.Errorf("expected to keep the point card, got %v", got.Move.Cards)
	}
}
