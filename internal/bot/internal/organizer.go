package internal

import (
	"tractor/internal/domain"
)

// GroupHolding is the part of a hand that follows as one group, split into
// its maximal tractors, pairs and singles.
type GroupHolding struct {
	Group    domain.Group
	Cards    []domain.Card
	Tractors []domain.Combo
	Pairs    []domain.Combo
	Singles  []domain.Combo
	Points   int
}

// OrganizedHand represents a tactical partitioning of a player's hand.
type OrganizedHand struct {
	Groups []GroupHolding // non-empty groups in the fixed group order
}

// OrganizeHand partitions the hand group by group.
func OrganizeHand(hand []domain.Card, trump domain.TrumpInfo) OrganizedHand {
	organized := OrganizedHand{}
	if len(hand) == 0 {
		return organized
	}

	byGroup := trump.SplitByGroup(hand)
	for _, g := range domain.Groups {
		cards := byGroup[g]
		if len(cards) == 0 {
			continue
		}
		holding := GroupHolding{Group: g, Cards: cards, Points: domain.TotalPoints(cards)}
		for _, combo := range domain.MaximalCombos(cards, trump) {
			switch combo.Type {
			case domain.Tractor:
				holding.Tractors = append(holding.Tractors, combo)
			case domain.Pair:
				holding.Pairs = append(holding.Pairs, combo)
			default:
				holding.Singles = append(holding.Singles, combo)
			}
		}
		organized.Groups = append(organized.Groups, holding)
	}
	return organized
}

// Holding returns the holding of one group.
func (o OrganizedHand) Holding(g domain.Group) (GroupHolding, bool) {
	for _, h := range o.Groups {
		if h.Group == g {
			return h, true
		}
	}
	return GroupHolding{}, false
}

// HasTrump reports whether any trump card is held.
func (o OrganizedHand) HasTrump() bool {
	_, ok := o.Holding(domain.GroupTrump)
	return ok
}

// ShortestPlainSuit returns the non-empty plain suit with the fewest cards.
// Ties go to the earlier group.
func (o OrganizedHand) ShortestPlainSuit() (GroupHolding, bool) {
	var best GroupHolding
	found := false
	for _, h := range o.Groups {
		if h.Group == domain.GroupTrump {
			continue
		}
		if !found || len(h.Cards) < len(best.Cards) {
			best = h
			found = true
		}
	}
	return best, found
}

// StrongestLead picks the opening combo the selector falls back to when no
// multi-combo lead is safe: the longest maximal combo, plain suits before
// trump, then the highest value, then the earlier group.
func StrongestLead(hand []domain.Card, trump domain.TrumpInfo) domain.Combo {
	combos := domain.MaximalCombos(hand, trump)
	if len(combos) == 0 {
		panic("bot: lead from an empty hand")
	}
	best := combos[0]
	for _, c := range combos[1:] {
		if leadBetter(c, best, trump) {
			best = c
		}
	}
	return best
}

func leadBetter(a, b domain.Combo, trump domain.TrumpInfo) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	at, bt := a.IsTrump(trump), b.IsTrump(trump)
	if at != bt {
		return !at
	}
	return a.Value > b.Value
}
