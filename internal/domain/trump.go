package domain

// TrumpInfo is the round-scoped trump designation.
// Suit is SuitNone while no trump suit has been declared.
type TrumpInfo struct {
	Rank Rank
	Suit Suit
}

// Group is the following class a card belongs to for one round: either one
// of the four plain suits or the unified trump group.
type Group int8

// GroupTrump covers jokers, trump-rank cards and trump-suit cards.
const GroupTrump Group = -1

// Groups lists every group in the fixed order used for deterministic scans.
var Groups = []Group{Group(Spades), Group(Hearts), Group(Clubs), Group(Diamonds), GroupTrump}

func (g Group) String() string {
	if g == GroupTrump {
		return "trump"
	}
	return Suit(g).String()
}

// IsTrump reports whether the card belongs to the trump group.
func (t TrumpInfo) IsTrump(c Card) bool {
	if c.IsJoker() || c.Rank == t.Rank {
		return true
	}
	return t.Suit != SuitNone && c.Suit == t.Suit
}

// GroupOf returns the group the card follows as.
func (t TrumpInfo) GroupOf(c Card) Group {
	if t.IsTrump(c) {
		return GroupTrump
	}
	return Group(c.Suit)
}

// Strength orders cards inside a group. Trump cards always rank above plain
// cards, but plain cards of different suits must never be compared with it.
func (t TrumpInfo) Strength(c Card) int {
	switch {
	case c.Rank == BigJoker:
		return 300
	case c.Rank == SmallJoker:
		return 299
	case c.Rank == t.Rank:
		if t.Suit != SuitNone && c.Suit == t.Suit {
			return 298
		}
		return 290 + c.Suit.precedence()
	case t.Suit != SuitNone && c.Suit == t.Suit:
		return 100 + int(c.Rank)
	}
	return int(c.Rank)
}

// Tractor categories. Pairs chain only inside one category.
const (
	categoryTrumpSuit = 10
	categoryJoker     = 20
	categoryTrumpRank = 30
)

// tractorSlot places a card on the line along which pairs may chain.
type tractorSlot struct {
	category int
	position int
}

func (t TrumpInfo) slot(c Card) tractorSlot {
	switch {
	case c.IsJoker():
		return tractorSlot{category: categoryJoker, position: int(c.Rank - SmallJoker)}
	case c.Rank == t.Rank:
		// each trump-rank face stands alone
		return tractorSlot{category: categoryTrumpRank + int(c.Suit)}
	case t.Suit != SuitNone && c.Suit == t.Suit:
		return tractorSlot{category: categoryTrumpSuit, position: int(c.Rank)}
	}
	return tractorSlot{category: int(c.Suit), position: int(c.Rank)}
}

// adjacent reports whether a pair of face b directly follows a pair of face a.
func (t TrumpInfo) adjacent(a, b Card) bool {
	sa, sb := t.slot(a), t.slot(b)
	if sa.category != sb.category {
		return false
	}
	if sa.category >= categoryTrumpRank {
		return false
	}
	return sb.position == sa.position+1
}

// SplitByGroup buckets cards by group, keeping the input order in each bucket.
func (t TrumpInfo) SplitByGroup(cards []Card) map[Group][]Card {
	out := make(map[Group][]Card)
	for _, c := range cards {
		g := t.GroupOf(c)
		out[g] = append(out[g], c)
	}
	return out
}

// CardsInGroup returns the cards of the given group in input order.
func (t TrumpInfo) CardsInGroup(cards []Card, g Group) []Card {
	var out []Card
	for _, c := range cards {
		if t.GroupOf(c) == g {
			out = append(out, c)
		}
	}
	return out
}

// SingleGroup reports the group shared by all cards, if any.
func (t TrumpInfo) SingleGroup(cards []Card) (Group, bool) {
	if len(cards) == 0 {
		return 0, false
	}
	g := t.GroupOf(cards[0])
	for _, c := range cards[1:] {
		if t.GroupOf(c) != g {
			return 0, false
		}
	}
	return g, true
}
