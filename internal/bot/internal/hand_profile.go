package internal

import "tractor/internal/domain"

// HandProfile summarizes a hand's strategic structure for phase-aware scoring.
type HandProfile struct {
	TotalCards      int
	Singles         int
	Pairs           int
	Tractors        int
	TractorPairs    int
	MaxTractorPairs int
	TrumpCards      int
	Jokers          int
	Points          int
	VoidSuits       int
}

// ProfileHand analyzes a hand and extracts combo counts from its maximal
// decomposition.
func ProfileHand(hand []domain.Card, trump domain.TrumpInfo) HandProfile {
	profile := HandProfile{TotalCards: len(hand)}
	if len(hand) == 0 {
		return profile
	}

	for _, c := range hand {
		if trump.IsTrump(c) {
			profile.TrumpCards++
		}
		if c.IsJoker() {
			profile.Jokers++
		}
		profile.Points += c.Points()
	}

	for _, combo := range domain.MaximalCombos(hand, trump) {
		switch combo.Type {
		case domain.Tractor:
			pairs := combo.Count / 2
			profile.Tractors++
			profile.TractorPairs += pairs
			if pairs > profile.MaxTractorPairs {
				profile.MaxTractorPairs = pairs
			}
		case domain.Pair:
			profile.Pairs++
		case domain.Single:
			profile.Singles++
		}
	}

	byGroup := trump.SplitByGroup(hand)
	for _, s := range domain.Suits {
		if s != trump.Suit && len(byGroup[domain.Group(s)]) == 0 {
			profile.VoidSuits++
		}
	}
	return profile
}
