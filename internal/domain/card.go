package domain

import "fmt"

// Suit is the printed suit of a card. Jokers carry SuitNone.
type Suit int8

const (
	// SuitNone marks jokers and an undeclared trump suit.
	SuitNone Suit = iota
	Spades
	Hearts
	Clubs
	Diamonds
)

// Suits lists the four printed suits in precedence order.
var Suits = []Suit{Spades, Hearts, Clubs, Diamonds}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	default:
		return ""
	}
}

// precedence ranks suits for ordering trump-rank cards of non-trump suits.
func (s Suit) precedence() int {
	switch s {
	case Spades:
		return 4
	case Hearts:
		return 3
	case Clubs:
		return 2
	case Diamonds:
		return 1
	default:
		return 0
	}
}

// ParseSuit converts a one-letter suit code. The empty string is SuitNone.
func ParseSuit(code string) (Suit, error) {
	switch code {
	case "S", "s":
		return Spades, nil
	case "H", "h":
		return Hearts, nil
	case "C", "c":
		return Clubs, nil
	case "D", "d":
		return Diamonds, nil
	case "":
		return SuitNone, nil
	}
	return SuitNone, fmt.Errorf("unknown suit %q", code)
}

// Rank is the face value of a card. Two..Ace use their pip values.
type Rank int8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	SmallJoker
	BigJoker
)

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	case SmallJoker:
		return "SJ"
	case BigJoker:
		return "BJ"
	}
	if r >= Two && r <= Ten {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// IsJoker reports whether the rank is one of the two jokers.
func (r Rank) IsJoker() bool {
	return r == SmallJoker || r == BigJoker
}

// Card is a single physical card of the double deck.
// Deck distinguishes the two copies of every face.
type Card struct {
	Suit Suit
	Rank Rank
	Deck uint8
}

// NewCard builds a suited card from deck copy 0.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Suit: suit, Rank: rank}
}

// NewJoker builds a joker from the given deck copy.
func NewJoker(rank Rank, deck uint8) Card {
	return Card{Suit: SuitNone, Rank: rank, Deck: deck}
}

// IsJoker reports whether the card is a joker.
func (c Card) IsJoker() bool {
	return c.Rank.IsJoker()
}

// SameFace compares suit and rank, ignoring the deck copy.
func (c Card) SameFace(o Card) bool {
	return c.Suit == o.Suit && c.Rank == o.Rank
}

// Face strips the deck copy so value-equal cards compare equal.
func (c Card) Face() Card {
	return Card{Suit: c.Suit, Rank: c.Rank}
}

// Points is the scoring value of the card.
func (c Card) Points() int {
	switch c.Rank {
	case Five:
		return 5
	case Ten, King:
		return 10
	}
	return 0
}

func (c Card) String() string {
	if c.IsJoker() {
		return fmt.Sprintf("%s#%d", c.Rank, c.Deck)
	}
	return fmt.Sprintf("%s%s#%d", c.Rank, c.Suit, c.Deck)
}

// TotalPoints sums the scoring value of the cards.
func TotalPoints(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Points()
	}
	return total
}
