package brain

import (
	"tractor/internal/domain"
)

// CardStatus represents what the bot knows about a specific physical card.
type CardStatus int

const (
	StatusUnknown CardStatus = iota // In another hand or the kitty
	StatusMine                      // In the bot's hand
	StatusPlayed                    // Already on the table
)

// faces lists every distinct face of the double deck once.
var faces = func() []domain.Card {
	var out []domain.Card
	for _, c := range domain.NewDeck() {
		if c.Deck == 0 {
			out = append(out, c)
		}
	}
	return out
}()

// GameMemory stores the bot's private view of the round: its own hand, the
// public table history and what that history reveals about other players.
type GameMemory struct {
	Trump domain.TrumpInfo
	// status tracks physical cards; a missing entry is StatusUnknown.
	status map[domain.Card]CardStatus
	// Players tracks behavioral profiles by user ID.
	Players map[string]*OpponentProfile
	// CurrentTrick is the trick in progress, without plays between tricks.
	CurrentTrick domain.Trick
}

// NewMemory initializes a fresh memory state.
func NewMemory(trump domain.TrumpInfo) *GameMemory {
	return &GameMemory{
		Trump:   trump,
		status:  make(map[domain.Card]CardStatus),
		Players: make(map[string]*OpponentProfile),
	}
}

// Reset clears the memory for a new round.
func (m *GameMemory) Reset(trump domain.TrumpInfo) {
	m.Trump = trump
	m.status = make(map[domain.Card]CardStatus)
	m.Players = make(map[string]*OpponentProfile)
	m.CurrentTrick = domain.Trick{}
}

// MarkMine records the cards currently in the bot's hand.
func (m *GameMemory) MarkMine(cards []domain.Card) {
	for _, c := range cards {
		m.status[c] = StatusMine
	}
}

// MarkPlayed records cards that have been played on the table.
func (m *GameMemory) MarkPlayed(cards []domain.Card) {
	for _, c := range cards {
		m.status[c] = StatusPlayed
	}
}

// UpdateHand marks the current hand as Mine; cards that left the hand
// without being seen on the table (kitty discards) become Unknown.
func (m *GameMemory) UpdateHand(hand []domain.Card) {
	for c, s := range m.status {
		if s == StatusMine {
			delete(m.status, c)
		}
	}
	m.MarkMine(hand)
}

// Status returns what is known about a physical card.
func (m *GameMemory) Status(c domain.Card) CardStatus {
	return m.status[c]
}

// IsPlayed returns true if the card is already out of the game.
func (m *GameMemory) IsPlayed(c domain.Card) bool {
	return m.status[c] == StatusPlayed
}

// Unseen counts the copies of a face that may still sit in another hand.
func (m *GameMemory) Unseen(face domain.Card) int {
	n := 0
	for d := uint8(0); d < 2; d++ {
		c := face.Face()
		c.Deck = d
		if m.status[c] == StatusUnknown {
			n++
		}
	}
	return n
}

// UnseenInGroup returns the physical cards of a group that may still sit in
// another hand, one entry per copy.
func (m *GameMemory) UnseenInGroup(g domain.Group) []domain.Card {
	var out []domain.Card
	for _, f := range faces {
		if m.Trump.GroupOf(f) != g {
			continue
		}
		for d := uint8(0); d < 2; d++ {
			c := f
			c.Deck = d
			if m.status[c] == StatusUnknown {
				out = append(out, c)
			}
		}
	}
	return out
}

// IsBoss returns true if no unseen card of the same group is stronger.
func (m *GameMemory) IsBoss(c domain.Card) bool {
	g := m.Trump.GroupOf(c)
	s := m.Trump.Strength(c)
	for _, f := range faces {
		if m.Trump.GroupOf(f) != g || m.Trump.Strength(f) <= s {
			continue
		}
		if m.Unseen(f) > 0 {
			return false
		}
	}
	return true
}

// Profile returns the profile of a player, creating it on first use.
func (m *GameMemory) Profile(playerID string) *OpponentProfile {
	p, ok := m.Players[playerID]
	if !ok {
		p = NewOpponentProfile(playerID)
		m.Players[playerID] = p
	}
	return p
}

// RecordPlay logs that a player put cards on the table. The first play of a
// trick is its lead; every later play is checked against the lead for what
// the must-follow rules reveal about the player's hand.
func (m *GameMemory) RecordPlay(playerID string, cards []domain.Card) {
	if len(cards) == 0 {
		return
	}
	p := m.Profile(playerID)
	m.MarkPlayed(cards)
	p.CardsPlayed += len(cards)

	if len(m.CurrentTrick.Plays) == 0 {
		m.CurrentTrick = domain.NewTrick(playerID, cards, m.Trump)
		p.RecordPlay(m.CurrentTrick.Lead)
		return
	}

	lead := m.CurrentTrick.Lead
	g, _ := lead.Group(m.Trump)
	followed := m.Trump.CardsInGroup(cards, g)
	if len(followed) < len(cards) {
		// any off-group card proves the group is exhausted
		p.MarkVoid(g)
		if g != domain.GroupTrump && len(followed) == 0 && len(m.Trump.CardsInGroup(cards, domain.GroupTrump)) == len(cards) {
			p.Ruffs++
		}
	} else if required := domain.StructureOf(lead, m.Trump).TotalPairs(); required > 0 {
		if domain.Decompose(cards, m.Trump).TotalPairs() < required {
			p.MarkPairShort(g)
		}
	}

	before := m.CurrentTrick.WinningPlayerID
	m.CurrentTrick = m.CurrentTrick.Add(playerID, cards, m.Trump)
	if m.CurrentTrick.WinningPlayerID == before {
		p.RecordFailure(g, m.CurrentTrick.Winning)
	}
	p.RecordPlay(domain.FollowCombo(lead, cards, m.Trump))
}

// EndTrick clears the trick in progress.
func (m *GameMemory) EndTrick() {
	m.CurrentTrick = domain.Trick{}
}

// IsVoid reports whether the player is known to hold no card of the group.
func (m *GameMemory) IsVoid(playerID string, g domain.Group) bool {
	p, ok := m.Players[playerID]
	return ok && p.Voids[g]
}

// Replay rebuilds a player's memory from the public history of a round:
// completed tricks in order, then the trick in progress.
func Replay(trump domain.TrumpInfo, hand []domain.Card, completed []domain.Trick, current domain.Trick) *GameMemory {
	m := NewMemory(trump)
	for _, t := range completed {
		for _, play := range t.Plays {
			m.RecordPlay(play.PlayerID, play.Cards)
		}
		m.EndTrick()
	}
	for _, play := range current.Plays {
		m.RecordPlay(play.PlayerID, play.Cards)
	}
	m.UpdateHand(hand)
	return m
}
