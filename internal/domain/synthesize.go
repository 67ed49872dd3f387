package domain

import (
	"fmt"
	"sort"
)

// Synthesize builds the canonical legal follow for the lead: matching
// tractors first, then pairs, then singles from the led group, then filler
// (trump first when the lead was not trump). The result is deterministic and
// always passes ValidatePlay.
func Synthesize(hand []Card, lead Combo, trump TrumpInfo) []Card {
	n := lead.Count
	if n == 0 {
		panic("domain: synthesize against a trick without a lead")
	}
	if len(hand) < n {
		panic(fmt.Sprintf("domain: hand of %d cannot follow a lead of %d", len(hand), n))
	}
	g, ok := lead.Group(trump)
	if !ok {
		panic(fmt.Sprintf("domain: lead spans several groups: %v", lead.Cards))
	}

	inGroup := sortedCopy(trump.CardsInGroup(hand, g), trump)
	var play []Card
	if len(inGroup) <= n {
		play = append(play, inGroup...)
		play = append(play, filler(RemoveCards(hand, inGroup), n-len(play), g, trump)...)
	} else {
		play = followInGroup(inGroup, StructureOf(lead, trump), n, trump)
	}

	if v := ValidatePlay(play, hand, lead, trump); v != ViolationNone {
		panic(fmt.Sprintf("domain: synthesized play %v breaks rule %s", play, v))
	}
	return play
}

func followInGroup(pool []Card, target Structure, n int, trump TrumpInfo) []Card {
	play := make([]Card, 0, n)
	remaining := pool

	for _, k := range target.Tractors {
		if n-len(play) < 2*k {
			continue
		}
		runs, _ := pairRuns(remaining, trump)
		for _, r := range runs {
			if len(r) >= k {
				picked := r.cards(0, k)
				play = append(play, picked...)
				remaining = RemoveCards(remaining, picked)
				break
			}
		}
	}

	for n-len(play) >= 2 {
		runs, _ := pairRuns(remaining, trump)
		if len(runs) == 0 {
			break
		}
		weakest := runs[0][0]
		play = append(play, weakest...)
		remaining = RemoveCards(remaining, weakest)
	}

	_, singles := pairRuns(remaining, trump)
	for _, c := range singles {
		if len(play) == n {
			return play
		}
		play = append(play, c)
	}
	remaining = RemoveCards(remaining, play)
	for _, c := range sortedCopy(remaining, trump) {
		if len(play) == n {
			break
		}
		play = append(play, c)
	}
	return play
}

// filler picks the free cards of an exhausted follow: trump first when the
// led group is plain, then the cheapest cards by points and strength.
func filler(rest []Card, need int, led Group, trump TrumpInfo) []Card {
	if need <= 0 {
		return nil
	}
	cards := sortedCopy(rest, trump)
	sort.SliceStable(cards, func(i, j int) bool {
		ti, tj := trump.IsTrump(cards[i]), trump.IsTrump(cards[j])
		if led != GroupTrump && ti != tj {
			return ti
		}
		pi, pj := cards[i].Points(), cards[j].Points()
		if pi != pj {
			return pi < pj
		}
		return trump.Strength(cards[i]) < trump.Strength(cards[j])
	})
	if need > len(cards) {
		need = len(cards)
	}
	return cards[:need]
}

// ShapeFrom picks lead.Count cards from a one-group pool that repeat the
// lead's structure as far as the pool allows, weakest first. It returns nil
// when the pool is smaller than the lead.
func ShapeFrom(pool []Card, lead Combo, trump TrumpInfo) []Card {
	if lead.Count == 0 || len(pool) < lead.Count {
		return nil
	}
	return followInGroup(sortedCopy(pool, trump), StructureOf(lead, trump), lead.Count, trump)
}
