package domain

import "math/rand"

// DeckSize is the number of cards in the double deck.
const DeckSize = 108

// NewDeck returns the ordered double deck: two copies of 52 suited cards and
// four jokers.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for d := uint8(0); d < 2; d++ {
		for _, s := range Suits {
			for r := Two; r <= Ace; r++ {
				deck = append(deck, Card{Suit: s, Rank: r, Deck: d})
			}
		}
		deck = append(deck, NewJoker(SmallJoker, d), NewJoker(BigJoker, d))
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
