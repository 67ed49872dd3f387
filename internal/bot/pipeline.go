package bot

import (
	"tractor/internal/bot/brain"
	botinternal "tractor/internal/bot/internal"
	"tractor/internal/domain"
)

// maxShortSuit is the longest plain holding worth emptying to ruff later.
const maxShortSuit = 3

// LeadContext holds the state for the lead decision pipeline.
type LeadContext struct {
	Hand          []domain.Card
	Trump         domain.TrumpInfo
	Opponents     []string
	Organized     botinternal.OrganizedHand
	Estimator     *brain.Estimator
	Candidates    []domain.Combo
	CurrentBest   domain.Combo
	SelectedIndex int
}

// NewLeadContext seeds the pipeline with the maximal combos of the hand and
// the strongest of them as the current choice.
func NewLeadContext(hand []domain.Card, trump domain.TrumpInfo, opponents []string, est *brain.Estimator) *LeadContext {
	ctx := &LeadContext{
		Hand:       hand,
		Trump:      trump,
		Opponents:  opponents,
		Organized:  botinternal.OrganizeHand(hand, trump),
		Estimator:  est,
		Candidates: domain.MaximalCombos(hand, trump),
	}
	strongest := botinternal.StrongestLead(hand, trump)
	for i, c := range ctx.Candidates {
		if domain.ContainsAll(c.Cards, strongest.Cards) && len(c.Cards) == len(strongest.Cards) {
			ctx.selectIndex(i)
			break
		}
	}
	return ctx
}

func (ctx *LeadContext) selectIndex(i int) {
	ctx.SelectedIndex = i
	ctx.CurrentBest = ctx.Candidates[i]
}

// holds reports whether the current choice is expected to win the trick.
func (ctx *LeadContext) holds(c domain.Combo) bool {
	if !ctx.Estimator.IsUnbeatable(c) {
		return false
	}
	g, _ := c.Group(ctx.Trump)
	if g == domain.GroupTrump {
		return true
	}
	for _, id := range ctx.Opponents {
		// a void opponent may ruff
		if ctx.Estimator.Memory.IsVoid(id, g) {
			return false
		}
	}
	return true
}

// LeadRule represents a logic unit that can influence which combo is led.
type LeadRule interface {
	Name() string
	Apply(ctx *LeadContext)
}

// DefaultLeadRules is the pipeline the smart bot runs.
func DefaultLeadRules() []LeadRule {
	return []LeadRule{&FavorBossRule{}, &FavorShortSuitRule{}}
}

// FavorBossRule prefers the longest plain combo that should hold the trick.
type FavorBossRule struct{}

func (r *FavorBossRule) Name() string { return "FavorBoss" }

func (r *FavorBossRule) Apply(ctx *LeadContext) {
	if ctx.holds(ctx.CurrentBest) {
		return
	}
	bestIdx := -1
	for i, c := range ctx.Candidates {
		if c.IsTrump(ctx.Trump) || !ctx.holds(c) {
			continue
		}
		if bestIdx < 0 || c.Count > ctx.Candidates[bestIdx].Count {
			bestIdx = i
		}
	}
	if bestIdx >= 0 {
		ctx.selectIndex(bestIdx)
	}
}

// FavorShortSuitRule leads a low single from a short plain suit so the
// suit runs out and later leads in it can be ruffed.
type FavorShortSuitRule struct{}

func (r *FavorShortSuitRule) Name() string { return "FavorShortSuit" }

func (r *FavorShortSuitRule) Apply(ctx *LeadContext) {
	if ctx.holds(ctx.CurrentBest) || !ctx.Organized.HasTrump() {
		return
	}
	short, ok := ctx.Organized.ShortestPlainSuit()
	if !ok || len(short.Cards) > maxShortSuit || len(short.Singles) == 0 {
		return
	}

	bestIdx := -1
	for i, c := range ctx.Candidates {
		if c.Type != domain.Single || domain.TotalPoints(c.Cards) > 0 {
			continue
		}
		if g, _ := c.Group(ctx.Trump); g != short.Group {
			continue
		}
		if bestIdx < 0 || c.Value < ctx.Candidates[bestIdx].Value {
			bestIdx = i
		}
	}
	if bestIdx >= 0 {
		ctx.selectIndex(bestIdx)
	}
}
