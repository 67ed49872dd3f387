package domain

import "fmt"

// Play is one player's contribution to a trick.
type Play struct {
	PlayerID string
	Cards    []Card
}

// Trick holds the plays of one trick. Values are never mutated in place;
// Add returns the next state.
type Trick struct {
	LeadingPlayerID string
	WinningPlayerID string
	Points          int
	Lead            Combo // classified opening play
	Winning         Combo // play currently holding the trick
	Plays           []Play
}

// LeadCombo classifies a lead. A one-group set that is not a simple shape
// becomes a Multi lead.
func LeadCombo(cards []Card, trump TrumpInfo) Combo {
	combo := IdentifyCombo(cards, trump)
	if combo.Type == Invalid {
		if _, ok := combo.Group(trump); ok {
			combo.Type = Multi
		}
	}
	return combo
}

// NewTrick opens a trick. The lead must already have passed ValidateLead.
func NewTrick(leaderID string, cards []Card, trump TrumpInfo) Trick {
	lead := LeadCombo(cards, trump)
	if lead.Type == Invalid {
		panic(fmt.Sprintf("domain: invalid lead %v", cards))
	}
	return Trick{
		LeadingPlayerID: leaderID,
		WinningPlayerID: leaderID,
		Points:          TotalPoints(cards),
		Lead:            lead,
		Winning:         lead,
		Plays:           []Play{{PlayerID: leaderID, Cards: copyCards(cards)}},
	}
}

// Add appends a follow play and updates the winner and points.
func (t Trick) Add(playerID string, cards []Card, trump TrumpInfo) Trick {
	if len(t.Plays) == 0 {
		panic("domain: add to a trick without a lead")
	}
	if len(cards) != t.Lead.Count {
		panic(fmt.Sprintf("domain: follow of %d cards against a lead of %d", len(cards), t.Lead.Count))
	}

	next := t
	next.Plays = make([]Play, len(t.Plays), len(t.Plays)+1)
	copy(next.Plays, t.Plays)
	next.Plays = append(next.Plays, Play{PlayerID: playerID, Cards: copyCards(cards)})
	next.Points += TotalPoints(cards)

	follow := FollowCombo(t.Lead, cards, trump)
	if Compare(t.Winning, follow, trump) < 0 {
		next.WinningPlayerID = playerID
		next.Winning = follow
	}
	return next
}

// IsComplete reports whether every player has played.
func (t Trick) IsComplete(players int) bool {
	return len(t.Plays) >= players
}

// PlayOf returns the cards a player contributed, if any.
func (t Trick) PlayOf(playerID string) ([]Card, bool) {
	for _, p := range t.Plays {
		if p.PlayerID == playerID {
			return p.Cards, true
		}
	}
	return nil, false
}

func copyCards(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}
