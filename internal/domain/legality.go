package domain

import "fmt"

// Violation names the first follow rule a play breaks.
type Violation int

const (
	ViolationNone       Violation = iota
	ViolationLength               // wrong number of cards
	ViolationNotInHand            // card not held, or one physical card used twice
	ViolationMustFollow           // off-group card while the group could fill the play
	ViolationExhaustion           // short in the group but did not play all of it
	ViolationTractor              // held a matching tractor but did not play one
	ViolationPairs                // broke or skipped pairs while pairs were required
	ViolationEmptyLead            // lead without cards
	ViolationMixedLead            // lead spanning several groups
)

func (v Violation) String() string {
	switch v {
	case ViolationNone:
		return "none"
	case ViolationLength:
		return "length"
	case ViolationNotInHand:
		return "not_in_hand"
	case ViolationMustFollow:
		return "must_follow"
	case ViolationExhaustion:
		return "exhaustion"
	case ViolationTractor:
		return "tractor"
	case ViolationPairs:
		return "pairs"
	case ViolationEmptyLead:
		return "empty_lead"
	case ViolationMixedLead:
		return "mixed_lead"
	}
	return fmt.Sprintf("violation(%d)", int(v))
}

// ValidateLead checks an opening play: non-empty, held, and from one group.
// Whether a multi-combo lead is safe depends on play history and is decided
// by the caller.
func ValidateLead(cards []Card, hand []Card, trump TrumpInfo) Violation {
	if len(cards) == 0 {
		return ViolationEmptyLead
	}
	if !ContainsAll(hand, cards) {
		return ViolationNotInHand
	}
	if _, ok := trump.SingleGroup(cards); !ok {
		return ViolationMixedLead
	}
	return ViolationNone
}

// ValidatePlay checks a follow play against the lead and reports the first
// violated rule. The whole hand is needed because legality depends on what
// the hand could have played instead.
func ValidatePlay(candidate []Card, hand []Card, lead Combo, trump TrumpInfo) Violation {
	if lead.Count == 0 {
		panic("domain: validate against a trick without a lead")
	}
	if len(candidate) != lead.Count {
		return ViolationLength
	}
	if !ContainsAll(hand, candidate) {
		return ViolationNotInHand
	}

	g, ok := lead.Group(trump)
	if !ok {
		panic(fmt.Sprintf("domain: lead spans several groups: %v", lead.Cards))
	}
	inGroup := trump.CardsInGroup(hand, g)
	played := trump.CardsInGroup(candidate, g)

	if len(inGroup) < lead.Count {
		if len(played) != len(inGroup) {
			return ViolationExhaustion
		}
		return ViolationNone
	}
	if len(played) != len(candidate) {
		return ViolationMustFollow
	}

	target := StructureOf(lead, trump)
	if k := target.LongestTractor(); k > 0 {
		if longestRun(inGroup, trump) >= k && longestRun(candidate, trump) < k {
			return ViolationTractor
		}
	}
	required := target.TotalPairs()
	if avail := countPairs(inGroup); avail < required {
		required = avail
	}
	if countPairs(candidate) < required {
		return ViolationPairs
	}
	return ViolationNone
}

// IsLegal reports whether the candidate is a legal follow to the lead.
func IsLegal(candidate []Card, hand []Card, lead Combo, trump TrumpInfo) bool {
	return ValidatePlay(candidate, hand, lead, trump) == ViolationNone
}

// longestRun is the pair count of the longest tractor the cards contain.
func longestRun(cards []Card, trump TrumpInfo) int {
	runs, _ := pairRuns(cards, trump)
	longest := 0
	for _, r := range runs {
		if len(r) > longest {
			longest = len(r)
		}
	}
	if longest < 2 {
		return 0
	}
	return longest
}
