package brain

import (
	"tractor/internal/domain"
)

// minMultiGroupCards is the smallest holding in a group worth scanning for
// a multi-combo lead.
const minMultiGroupCards = 3

// Estimator provides probabilistic insights based on memory.
type Estimator struct {
	Memory *GameMemory
}

// NewEstimator creates a new reasoning engine.
func NewEstimator(m *GameMemory) *Estimator {
	return &Estimator{Memory: m}
}

// GetBossCards returns the cards in the bot's hand that no unseen card of
// their group can beat as singles.
func (e *Estimator) GetBossCards(hand []domain.Card) []domain.Card {
	var bossCards []domain.Card
	for _, c := range hand {
		if e.Memory.IsBoss(c) {
			bossCards = append(bossCards, c)
		}
	}
	return bossCards
}

// IsUnbeatable reports whether no combination of the same shape and group can
// be formed from unseen cards with a higher value.
func (e *Estimator) IsUnbeatable(component domain.Combo) bool {
	trump := e.Memory.Trump
	g, ok := component.Group(trump)
	if !ok {
		return false
	}
	unseen := e.Memory.UnseenInGroup(g)
	for _, rival := range domain.CombosOfShape(unseen, trump, g, component.Type, component.Count) {
		if domain.Compare(component, rival, trump) < 0 {
			return false
		}
	}
	return true
}

// DetectOptimalMultiCombo finds the longest multi-component lead that no
// opponent can contest: every opponent is known to be void in the group and
// each component is unbeatable by unseen cards. Groups need at least three
// cards in hand and at least two unbeatable components. Ties go to the first
// group in the fixed group order.
func (e *Estimator) DetectOptimalMultiCombo(hand []domain.Card, opponents []string) (domain.Combo, bool) {
	trump := e.Memory.Trump
	byGroup := trump.SplitByGroup(hand)

	var best []domain.Card
	for _, g := range domain.Groups {
		cards := byGroup[g]
		if len(cards) < minMultiGroupCards || !e.allVoid(opponents, g) {
			continue
		}

		var picked []domain.Card
		components := 0
		for _, component := range domain.MaximalCombos(cards, trump) {
			if !e.IsUnbeatable(component) {
				continue
			}
			picked = append(picked, component.Cards...)
			components++
		}
		if components < 2 {
			continue
		}
		if len(picked) > len(best) {
			best = picked
		}
	}

	if best == nil {
		return domain.Combo{}, false
	}
	return domain.LeadCombo(best, trump), true
}

func (e *Estimator) allVoid(players []string, g domain.Group) bool {
	if len(players) == 0 {
		return false
	}
	for _, id := range players {
		if !e.Memory.IsVoid(id, g) {
			return false
		}
	}
	return true
}

// LeadTurnProbability returns a 0.0 to 1.0 chance that leading this card as
// a single holds the trick within its group.
func (e *Estimator) LeadTurnProbability(c domain.Card) float64 {
	if e.Memory.IsBoss(c) {
		return 1.0
	}

	trump := e.Memory.Trump
	g := trump.GroupOf(c)
	s := trump.Strength(c)
	higherUnknown := 0
	for _, u := range e.Memory.UnseenInGroup(g) {
		if trump.Strength(u) > s {
			higherUnknown++
		}
	}
	return 1.0 / float64(higherUnknown+1)
}

// CalculateDominance returns a 0.0 to 1.0 score for the share of trump the
// bot holds among all trump cards not yet played.
func (e *Estimator) CalculateDominance(hand []domain.Card) float64 {
	trump := e.Memory.Trump
	mine := 0.0
	for _, c := range trump.CardsInGroup(hand, domain.GroupTrump) {
		mine += float64(trump.Strength(c))
	}
	unseen := 0.0
	for _, c := range e.Memory.UnseenInGroup(domain.GroupTrump) {
		unseen += float64(trump.Strength(c))
	}
	if mine+unseen == 0 {
		return 0.0
	}
	return mine / (mine + unseen)
}

// IsSafeFromPlayers returns the share of the given players that are known to
// be unable to beat the combination. Unknown players count as threats.
func (e *Estimator) IsSafeFromPlayers(combo domain.Combo, players []string) float64 {
	if combo.Type == domain.Invalid || len(players) == 0 {
		return 0.0
	}
	if e.IsUnbeatable(combo) {
		trump := e.Memory.Trump
		g, _ := combo.Group(trump)
		safe := 0.0
		for _, id := range players {
			// players still holding the group must follow it
			if g == domain.GroupTrump || !e.Memory.IsVoid(id, g) {
				safe++
				continue
			}
			if p, ok := e.Memory.Players[id]; ok && !p.CanPossiblyBeat(combo, trump) {
				safe++
			}
		}
		return safe / float64(len(players))
	}

	safe := 0.0
	for _, id := range players {
		p, ok := e.Memory.Players[id]
		if ok && !p.CanPossiblyBeat(combo, e.Memory.Trump) {
			safe++
		}
	}
	return safe / float64(len(players))
}
