package internal

import (
	"fmt"
	"sort"

	"tractor/internal/domain"
)

// ValidMove represents a possible legal play.
type ValidMove struct {
	Cards []domain.Card
}

// GetLeadMoves returns every single, pair and tractor the hand can open with.
// Multi-combo leads depend on play history and are proposed by the brain.
func GetLeadMoves(hand []domain.Card, trump domain.TrumpInfo) []ValidMove {
	combos := domain.EnumerateCombos(hand, trump)
	moves := make([]ValidMove, 0, len(combos))
	for _, c := range combos {
		moves = append(moves, ValidMove{Cards: c.Cards})
	}
	return moves
}

// GetValidMoves returns the legal follows to the lead: every same-shape combo
// from the led group, same-shape trump ruffs when the group is exhausted, a
// point-dumping discard, and always the synthesized canonical follow.
func GetValidMoves(hand []domain.Card, lead domain.Combo, trump domain.TrumpInfo) []ValidMove {
	g, ok := lead.Group(trump)
	if !ok {
		panic(fmt.Sprintf("bot: lead spans several groups: %v", lead.Cards))
	}

	var moves []ValidMove
	seen := make(map[string]bool)
	add := func(cards []domain.Card) {
		if len(cards) != lead.Count || !domain.IsLegal(cards, hand, lead, trump) {
			return
		}
		key := moveKey(cards, trump)
		if seen[key] {
			return
		}
		seen[key] = true
		moves = append(moves, ValidMove{Cards: cards})
	}

	simple := lead.Type == domain.Single || lead.Type == domain.Pair || lead.Type == domain.Tractor
	if simple {
		for _, c := range domain.CombosOfShape(hand, trump, g, lead.Type, lead.Count) {
			add(c.Cards)
		}
	}

	inGroup := trump.CardsInGroup(hand, g)
	if len(inGroup) == 0 && g != domain.GroupTrump {
		trumps := trump.CardsInGroup(hand, domain.GroupTrump)
		if simple {
			for _, c := range domain.CombosOfShape(trumps, trump, domain.GroupTrump, lead.Type, lead.Count) {
				add(c.Cards)
			}
		}
		add(domain.ShapeFrom(trumps, lead, trump))
	}
	if len(inGroup) < lead.Count {
		add(pointsDiscard(hand, inGroup, lead.Count, trump))
	}

	add(domain.Synthesize(hand, lead, trump))
	return moves
}

// pointsDiscard plays the whole short group and fills with the richest
// non-trump cards, for feeding points to a partner who holds the trick.
func pointsDiscard(hand, inGroup []domain.Card, n int, trump domain.TrumpInfo) []domain.Card {
	rest := domain.RemoveCards(hand, inGroup)
	sorted := make([]domain.Card, len(rest))
	copy(sorted, rest)
	domain.SortHand(sorted, trump)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := trump.IsTrump(sorted[i]), trump.IsTrump(sorted[j])
		if ti != tj {
			return tj
		}
		return sorted[i].Points() > sorted[j].Points()
	})

	play := append([]domain.Card{}, inGroup...)
	for _, c := range sorted {
		if len(play) == n {
			break
		}
		play = append(play, c)
	}
	return play
}

func moveKey(cards []domain.Card, trump domain.TrumpInfo) string {
	sorted := make([]domain.Card, len(cards))
	copy(sorted, cards)
	domain.SortHand(sorted, trump)
	return fmt.Sprint(sorted)
}
