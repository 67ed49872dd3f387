package domain

// Compare reports which of two plays is stronger. reference is the play that
// currently holds the trick. The result is 1 when reference stays ahead, 0
// when both are equally strong (reference still keeps the trick) and -1 when
// challenger beats it.
//
// Only a play of the reference's shape can win: either from the same group
// with a higher value, or from the trump group against a plain-suit play.
// Plain plays of different suits never beat each other.
func Compare(reference, challenger Combo, trump TrumpInfo) int {
	if challenger.Count != reference.Count || challenger.Count == 0 {
		return 1
	}
	rg, rok := reference.Group(trump)
	cg, cok := challenger.Group(trump)
	if !rok || !cok {
		return 1
	}
	if reference.Type == Multi {
		return compareMulti(reference, challenger, rg, cg, trump)
	}
	if challenger.Type != reference.Type || reference.Type == Invalid {
		return 1
	}

	switch {
	case rg == cg:
		return compareValues(reference.Value, challenger.Value)
	case cg == GroupTrump:
		return -1
	default:
		return 1
	}
}

func compareValues(reference, challenger int) int {
	switch {
	case challenger > reference:
		return -1
	case challenger == reference:
		return 0
	default:
		return 1
	}
}

// compareMulti handles multi-combo leads. A plain-suit multi is only beaten by
// a trump play that covers its structure; two covering trump plays compare by
// their strongest largest component.
func compareMulti(reference, challenger Combo, rg, cg Group, trump TrumpInfo) int {
	if challenger.Type != Multi || cg != GroupTrump {
		return 1
	}
	if !Decompose(challenger.Cards, trump).Covers(Decompose(reference.Cards, trump)) {
		return 1
	}
	if rg != GroupTrump {
		return -1
	}
	return compareValues(multiKey(reference.Cards, trump), multiKey(challenger.Cards, trump))
}

// multiKey is the strength of the strongest card of the largest component.
func multiKey(cards []Card, trump TrumpInfo) int {
	p := decompose(cards, trump)
	var top []Card
	switch {
	case len(p.tractors) > 0:
		for _, t := range p.tractors {
			if len(t) >= len(top) {
				top = t
			}
		}
	case len(p.pairs) > 0:
		top = p.pairs[len(p.pairs)-1]
	default:
		top = p.singles
	}
	best := 0
	for _, c := range top {
		if s := trump.Strength(c); s > best {
			best = s
		}
	}
	return best
}

// FollowCombo classifies a follow play against the lead. Against a multi lead
// a one-group play covering the lead's structure is tagged Multi so it can
// contend for the trick.
func FollowCombo(lead Combo, cards []Card, trump TrumpInfo) Combo {
	combo := IdentifyCombo(cards, trump)
	if lead.Type != Multi {
		return combo
	}
	if _, ok := combo.Group(trump); !ok {
		return combo
	}
	if Decompose(combo.Cards, trump).Covers(StructureOf(lead, trump)) {
		combo.Type = Multi
	}
	return combo
}

// PlayEvaluation is the outcome of probing a candidate against a trick.
type PlayEvaluation struct {
	IsLegal   bool
	Violation Violation
	CanBeat   bool // would take over the trick from the current winner
	Strength  int  // value of the play when it contends, else 0
}

// EvaluateTrickPlay folds the comparator over the trick so far and reports
// whether the candidate is legal and whether it would become the winner.
func EvaluateTrickPlay(candidate []Card, trick Trick, trump TrumpInfo, hand []Card) PlayEvaluation {
	if len(trick.Plays) == 0 {
		v := ValidateLead(candidate, hand, trump)
		eval := PlayEvaluation{IsLegal: v == ViolationNone, Violation: v, CanBeat: v == ViolationNone}
		if eval.IsLegal {
			eval.Strength = IdentifyCombo(candidate, trump).Value
		}
		return eval
	}

	v := ValidatePlay(candidate, hand, trick.Lead, trump)
	eval := PlayEvaluation{IsLegal: v == ViolationNone, Violation: v}
	follow := FollowCombo(trick.Lead, candidate, trump)
	if follow.Type == trick.Lead.Type {
		if _, ok := follow.Group(trump); ok {
			eval.Strength = follow.Value
		}
	}
	eval.CanBeat = eval.IsLegal && Compare(trick.Winning, follow, trump) < 0
	return eval
}
