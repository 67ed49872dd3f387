package brain

import (
	"tractor/internal/domain"
)

// failureKey scopes a failure record to the group it was observed in.
type failureKey struct {
	Group domain.Group
	Type  domain.ComboType
}

// OpponentProfile tracks the behavioral history of a specific player.
type OpponentProfile struct {
	PlayerID    string
	CardsPlayed int
	Ruffs       int
	// Voids holds the groups the player is known to have run out of.
	Voids map[domain.Group]bool
	// PairShort holds the groups where the player can no longer hold a pair.
	PairShort map[domain.Group]bool
	// Weaknesses maps a group and combination type to the strongest value
	// the player followed without beating.
	Weaknesses map[failureKey]int
	// PlayedStats tracks how many of each combination type this player has played.
	PlayedStats map[domain.ComboType]int
}

// NewOpponentProfile initializes a profile for a specific player.
func NewOpponentProfile(playerID string) *OpponentProfile {
	return &OpponentProfile{
		PlayerID:    playerID,
		Voids:       make(map[domain.Group]bool),
		PairShort:   make(map[domain.Group]bool),
		Weaknesses:  make(map[failureKey]int),
		PlayedStats: make(map[domain.ComboType]int),
	}
}

// RecordPlay logs a combination played by this player.
func (p *OpponentProfile) RecordPlay(combo domain.Combo) {
	if combo.Type == domain.Invalid {
		return
	}
	p.PlayedStats[combo.Type]++
}

// MarkVoid records that the player has no card left in the group. A void
// group has no pairs either.
func (p *OpponentProfile) MarkVoid(g domain.Group) {
	p.Voids[g] = true
	p.PairShort[g] = true
}

// MarkPairShort records that the player has no pair left in the group.
func (p *OpponentProfile) MarkPairShort(g domain.Group) {
	p.PairShort[g] = true
}

// RecordFailure notes that this player could not (or chose not to) beat a
// combination in the group.
func (p *OpponentProfile) RecordFailure(g domain.Group, combo domain.Combo) {
	if combo.Type == domain.Invalid {
		return
	}
	key := failureKey{Group: g, Type: combo.Type}
	currentMax, ok := p.Weaknesses[key]
	if !ok || combo.Value > currentMax {
		p.Weaknesses[key] = combo.Value
	}
}

// CanPossiblyBeat returns true if we have no evidence that the player cannot
// beat the combination.
func (p *OpponentProfile) CanPossiblyBeat(combo domain.Combo, trump domain.TrumpInfo) bool {
	g, ok := combo.Group(trump)
	if !ok {
		return false
	}
	needsPairs := combo.Type == domain.Pair || combo.Type == domain.Tractor

	if p.Voids[g] {
		if g == domain.GroupTrump {
			return false
		}
		// void players may ruff
		if p.Voids[domain.GroupTrump] {
			return false
		}
		return !(needsPairs && p.PairShort[domain.GroupTrump])
	}
	if needsPairs && p.PairShort[g] {
		return false
	}

	maxFailed, seen := p.Weaknesses[failureKey{Group: g, Type: combo.Type}]
	if seen && combo.Value >= maxFailed {
		return false
	}
	return true
}
