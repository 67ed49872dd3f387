package domain

import "sort"

func groupIndex(g Group) int {
	for i, x := range Groups {
		if x == g {
			return i
		}
	}
	return len(Groups)
}

// SortHand orders cards by group, then ascending strength, then suit and
// deck copy. The order is total, so sorted hands are stable across calls.
func SortHand(cards []Card, trump TrumpInfo) {
	sort.Slice(cards, func(i, j int) bool {
		return cardLess(cards[i], cards[j], trump)
	})
}

func cardLess(a, b Card, trump TrumpInfo) bool {
	ga, gb := groupIndex(trump.GroupOf(a)), groupIndex(trump.GroupOf(b))
	if ga != gb {
		return ga < gb
	}
	sa, sb := trump.Strength(a), trump.Strength(b)
	if sa != sb {
		return sa < sb
	}
	if a.Suit != b.Suit {
		return a.Suit < b.Suit
	}
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.Deck < b.Deck
}

// sortedCopy returns a sorted copy without touching the input.
func sortedCopy(cards []Card, trump TrumpInfo) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	SortHand(out, trump)
	return out
}

// RemoveCards removes the specified physical cards from a hand and returns
// the updated hand. Cards are matched by identity, deck copy included.
func RemoveCards(hand []Card, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(hand) == 0 {
		return hand
	}

	removeCounts := make(map[Card]int, len(toRemove))
	for _, card := range toRemove {
		removeCounts[card]++
	}

	updated := make([]Card, 0, len(hand))
	for _, card := range hand {
		if count, ok := removeCounts[card]; ok && count > 0 {
			removeCounts[card] = count - 1
			continue
		}
		updated = append(updated, card)
	}

	return updated
}

// ContainsAll reports whether every card is held, each physical card used at
// most once.
func ContainsAll(hand []Card, cards []Card) bool {
	held := make(map[Card]int, len(hand))
	for _, c := range hand {
		held[c]++
	}
	for _, c := range cards {
		if held[c] == 0 {
			return false
		}
		held[c]--
	}
	return true
}

// faceCounts counts cards per face, ignoring the deck copy.
func faceCounts(cards []Card) map[Card]int {
	counts := make(map[Card]int, len(cards))
	for _, c := range cards {
		counts[c.Face()]++
	}
	return counts
}

// countPairs returns the number of disjoint same-face pairs in cards.
func countPairs(cards []Card) int {
	n := 0
	for _, count := range faceCounts(cards) {
		n += count / 2
	}
	return n
}
