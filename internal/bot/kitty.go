package bot

import (
	"fmt"
	"sort"

	"tractor/internal/domain"
)

// BuryKitty picks the n cards a dealer returns to the kitty: plain cards
// before trump, cards without points before point cards, and within those
// the weakest first. Pairs are only split when nothing else is left.
func BuryKitty(hand []domain.Card, trump domain.TrumpInfo, n int) []domain.Card {
	if n > len(hand) {
		panic(fmt.Sprintf("bot: bury %d cards from a hand of %d", n, len(hand)))
	}

	paired := make(map[domain.Card]bool)
	for _, combo := range domain.MaximalCombos(hand, trump) {
		if combo.Type != domain.Single {
			for _, c := range combo.Cards {
				paired[c] = true
			}
		}
	}

	sorted := append([]domain.Card{}, hand...)
	domain.SortHand(sorted, trump)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if ta, tb := trump.IsTrump(a), trump.IsTrump(b); ta != tb {
			return tb
		}
		if pa, pb := paired[a], paired[b]; pa != pb {
			return pb
		}
		if pa, pb := a.Points() > 0, b.Points() > 0; pa != pb {
			return pb
		}
		return trump.Strength(a) < trump.Strength(b)
	})
	return sorted[:n]
}
