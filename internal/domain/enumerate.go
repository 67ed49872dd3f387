package domain

// pairRun is a maximal chain of consecutive pairs, weakest pair first.
type pairRun [][]Card

func (r pairRun) cards(from, to int) []Card {
	out := make([]Card, 0, (to-from)*2)
	for _, p := range r[from:to] {
		out = append(out, p...)
	}
	return out
}

type parts struct {
	tractors [][]Card
	pairs    [][]Card
	singles  []Card
}

// pairRuns groups the cards into maximal runs of consecutive pairs. Cards
// that are not part of any pair are returned as singles, weakest first.
func pairRuns(cards []Card, trump TrumpInfo) ([]pairRun, []Card) {
	sorted := sortedCopy(cards, trump)

	byFace := make(map[Card][]Card)
	var faces []Card
	for _, c := range sorted {
		f := c.Face()
		if _, ok := byFace[f]; !ok {
			faces = append(faces, f)
		}
		byFace[f] = append(byFace[f], c)
	}

	var runs []pairRun
	var singles []Card
	var current pairRun
	var last Card
	for _, f := range faces {
		group := byFace[f]
		if len(group) < 2 {
			singles = append(singles, group...)
			continue
		}
		pair := group[:2]
		singles = append(singles, group[2:]...)
		if len(current) > 0 && trump.adjacent(last, f) {
			current = append(current, pair)
		} else {
			if len(current) > 0 {
				runs = append(runs, current)
			}
			current = pairRun{pair}
		}
		last = f
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}
	return runs, singles
}

// decompose is the maximal partition: tractors, then pairs, then singles.
func decompose(cards []Card, trump TrumpInfo) parts {
	runs, singles := pairRuns(cards, trump)
	var p parts
	for _, r := range runs {
		if len(r) >= 2 {
			p.tractors = append(p.tractors, r.cards(0, len(r)))
		} else {
			p.pairs = append(p.pairs, r[0])
		}
	}
	p.singles = singles
	return p
}

// EnumerateCombos returns every single, pair and tractor embedded in the
// hand, group by group. Singles are reported once per distinct face and every
// consecutive sub-run of two or more pairs is reported as a tractor, so
// overlapping structures appear more than once.
func EnumerateCombos(hand []Card, trump TrumpInfo) []Combo {
	var combos []Combo
	byGroup := trump.SplitByGroup(hand)
	for _, g := range Groups {
		cards := byGroup[g]
		if len(cards) == 0 {
			continue
		}
		seen := make(map[Card]bool)
		for _, c := range sortedCopy(cards, trump) {
			if seen[c.Face()] {
				continue
			}
			seen[c.Face()] = true
			combos = append(combos, IdentifyCombo([]Card{c}, trump))
		}

		runs, _ := pairRuns(cards, trump)
		for _, r := range runs {
			for _, p := range r {
				combos = append(combos, IdentifyCombo(p, trump))
			}
		}
		for _, r := range runs {
			for from := 0; from < len(r)-1; from++ {
				for to := from + 2; to <= len(r); to++ {
					combos = append(combos, IdentifyCombo(r.cards(from, to), trump))
				}
			}
		}
	}
	return combos
}

// MaximalCombos partitions the hand into maximal tractors, then the
// remaining pairs, then singles. No card appears in more than one combo.
func MaximalCombos(hand []Card, trump TrumpInfo) []Combo {
	var combos []Combo
	byGroup := trump.SplitByGroup(hand)
	for _, g := range Groups {
		if len(byGroup[g]) == 0 {
			continue
		}
		p := decompose(byGroup[g], trump)
		for _, t := range p.tractors {
			combos = append(combos, IdentifyCombo(t, trump))
		}
		for _, pair := range p.pairs {
			combos = append(combos, IdentifyCombo(pair, trump))
		}
		for _, c := range p.singles {
			combos = append(combos, IdentifyCombo([]Card{c}, trump))
		}
	}
	return combos
}

// CombosOfShape filters EnumerateCombos to one group, type and length.
func CombosOfShape(hand []Card, trump TrumpInfo, g Group, t ComboType, count int) []Combo {
	var out []Combo
	for _, c := range EnumerateCombos(trump.CardsInGroup(hand, g), trump) {
		if c.Type == t && c.Count == count {
			out = append(out, c)
		}
	}
	return out
}
