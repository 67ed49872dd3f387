package domain

import "sort"

// ComboType represents the structural shape of a set of cards.
type ComboType int

const (
	Invalid ComboType = iota
	Single
	Pair
	Tractor // Two or more consecutive pairs inside one tractor category
	Multi   // Validated lead made of several components of one group
)

func (t ComboType) String() string {
	switch t {
	case Single:
		return "single"
	case Pair:
		return "pair"
	case Tractor:
		return "tractor"
	case Multi:
		return "multi"
	default:
		return "invalid"
	}
}

// Combo is a classified set of cards.
type Combo struct {
	Type  ComboType
	Cards []Card // sorted weakest first
	Value int    // strength of the weakest card (lowest pair for tractors)
	Count int    // number of cards
}

// Classify identifies the structural combination formed by the cards.
// Sets that are not a single, a pair or a tractor are Invalid; callers treat
// them as single-equivalent when comparing.
func Classify(cards []Card, trump TrumpInfo) ComboType {
	switch n := len(cards); {
	case n == 1:
		return Single
	case n == 2:
		if cards[0].SameFace(cards[1]) {
			return Pair
		}
		return Invalid
	case n >= 4 && n%2 == 0:
		if isTractor(cards, trump) {
			return Tractor
		}
	}
	return Invalid
}

// IdentifyCombo classifies the cards and returns the full combination value.
func IdentifyCombo(cards []Card, trump TrumpInfo) Combo {
	sorted := sortedCopy(cards, trump)
	combo := Combo{Type: Classify(sorted, trump), Cards: sorted, Count: len(sorted)}
	if len(sorted) > 0 {
		combo.Value = trump.Strength(sorted[0])
	}
	return combo
}

// Group returns the group shared by every card of the combo.
func (c Combo) Group(trump TrumpInfo) (Group, bool) {
	return trump.SingleGroup(c.Cards)
}

// IsTrump reports whether the whole combo is played from the trump group.
func (c Combo) IsTrump(trump TrumpInfo) bool {
	g, ok := c.Group(trump)
	return ok && g == GroupTrump
}

func isTractor(cards []Card, trump TrumpInfo) bool {
	if len(cards) < 4 || len(cards)%2 != 0 {
		return false
	}
	counts := faceCounts(cards)
	if len(counts)*2 != len(cards) {
		return false
	}
	faces := make([]Card, 0, len(counts))
	for face, count := range counts {
		if count != 2 {
			return false
		}
		faces = append(faces, face)
	}
	SortHand(faces, trump)
	for i := 1; i < len(faces); i++ {
		if !trump.adjacent(faces[i-1], faces[i]) {
			return false
		}
	}
	return true
}

// Structure summarizes the maximal decomposition of a one-group card set.
type Structure struct {
	Tractors []int // pair counts of each tractor, longest first
	Pairs    int   // pairs outside tractors
	Singles  int
}

// TotalPairs counts pairs including those inside tractors.
func (s Structure) TotalPairs() int {
	n := s.Pairs
	for _, k := range s.Tractors {
		n += k
	}
	return n
}

// LongestTractor returns the pair count of the longest tractor, or 0.
func (s Structure) LongestTractor() int {
	if len(s.Tractors) == 0 {
		return 0
	}
	return s.Tractors[0]
}

// Components is the number of tractors, pairs and singles.
func (s Structure) Components() int {
	return len(s.Tractors) + s.Pairs + s.Singles
}

// Covers reports whether s holds at least the structure of other.
func (s Structure) Covers(other Structure) bool {
	if s.TotalPairs() < other.TotalPairs() {
		return false
	}
	if len(s.Tractors) < len(other.Tractors) {
		return false
	}
	for i, k := range other.Tractors {
		if s.Tractors[i] < k {
			return false
		}
	}
	return true
}

// Decompose splits the cards into maximal tractors, then pairs, then singles.
func Decompose(cards []Card, trump TrumpInfo) Structure {
	parts := decompose(cards, trump)
	s := Structure{Pairs: len(parts.pairs), Singles: len(parts.singles)}
	for _, t := range parts.tractors {
		s.Tractors = append(s.Tractors, len(t)/2)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(s.Tractors)))
	return s
}

// StructureOf returns the follow target of a lead combo.
func StructureOf(lead Combo, trump TrumpInfo) Structure {
	switch lead.Type {
	case Single:
		return Structure{Singles: 1}
	case Pair:
		return Structure{Pairs: 1}
	case Tractor:
		return Structure{Tractors: []int{lead.Count / 2}}
	}
	return Decompose(lead.Cards, trump)
}
