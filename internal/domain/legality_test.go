package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heartsTractor() Combo {
	return LeadCombo([]Card{c(Seven, Hearts), c1(Seven, Hearts), c(Eight, Hearts), c1(Eight, Hearts)}, twoSpades)
}

func TestValidatePlay(t *testing.T) {
	twoHearts := TrumpInfo{Rank: Two, Suit: Hearts}
	trumpPair := LeadCombo([]Card{c(Five, Hearts), c1(Five, Hearts)}, twoHearts)
	multi := LeadCombo([]Card{c(Ace, Hearts), c(King, Hearts), c1(King, Hearts)}, twoSpades)

	shortHand := []Card{c(Nine, Hearts), c1(Nine, Hearts), c(Six, Hearts), c(Five, Hearts), c(Four, Hearts), c(Ace, Spades), c(King, Clubs)}
	tractorHand := []Card{
		c(Three, Hearts), c1(Three, Hearts), c(Four, Hearts), c1(Four, Hearts),
		c(Nine, Hearts), c1(Nine, Hearts), c(Jack, Hearts), c(Ace, Clubs),
	}

	tests := []struct {
		name      string
		trump     TrumpInfo
		lead      Combo
		hand      []Card
		candidate []Card
		want      Violation
	}{
		{
			name:      "keeps the only pair",
			trump:     twoSpades,
			lead:      heartsTractor(),
			hand:      shortHand,
			candidate: []Card{c(Nine, Hearts), c1(Nine, Hearts), c(Six, Hearts), c(Five, Hearts)},
			want:      ViolationNone,
		},
		{
			name:      "breaks the only pair",
			trump:     twoSpades,
			lead:      heartsTractor(),
			hand:      shortHand,
			candidate: []Card{c(Nine, Hearts), c(Six, Hearts), c(Five, Hearts), c(Four, Hearts)},
			want:      ViolationPairs,
		},
		{
			name:      "trump while still holding the led suit",
			trump:     twoSpades,
			lead:      heartsTractor(),
			hand:      shortHand,
			candidate: []Card{c(Nine, Hearts), c1(Nine, Hearts), c(Six, Hearts), c(Ace, Spades)},
			want:      ViolationMustFollow,
		},
		{
			name:      "wrong length",
			trump:     twoSpades,
			lead:      heartsTractor(),
			hand:      shortHand,
			candidate: []Card{c(Nine, Hearts), c1(Nine, Hearts), c(Six, Hearts)},
			want:      ViolationLength,
		},
		{
			name:      "card from the other deck",
			trump:     twoSpades,
			lead:      heartsTractor(),
			hand:      shortHand,
			candidate: []Card{c(Nine, Hearts), c1(Nine, Hearts), c(Six, Hearts), c1(Five, Hearts)},
			want:      ViolationNotInHand,
		},
		{
			name:      "held tractor must be played",
			trump:     twoSpades,
			lead:      heartsTractor(),
			hand:      tractorHand,
			candidate: []Card{c(Three, Hearts), c1(Three, Hearts), c(Nine, Hearts), c1(Nine, Hearts)},
			want:      ViolationTractor,
		},
		{
			name:      "tractor for tractor",
			trump:     twoSpades,
			lead:      heartsTractor(),
			hand:      tractorHand,
			candidate: []Card{c(Three, Hearts), c1(Three, Hearts), c(Four, Hearts), c1(Four, Hearts)},
			want:      ViolationNone,
		},
		{
			name:      "short suit must empty the suit",
			trump:     twoSpades,
			lead:      heartsTractor(),
			hand:      []Card{c(Three, Hearts), c(Jack, Hearts), c(King, Clubs), c(Queen, Clubs), c(Four, Diamonds), c(Ace, Spades)},
			candidate: []Card{c(Three, Hearts), c(King, Clubs), c(Queen, Clubs), c(Four, Diamonds)},
			want:      ViolationExhaustion,
		},
		{
			name:      "short suit emptied",
			trump:     twoSpades,
			lead:      heartsTractor(),
			hand:      []Card{c(Three, Hearts), c(Jack, Hearts), c(King, Clubs), c(Queen, Clubs), c(Four, Diamonds), c(Ace, Spades)},
			candidate: []Card{c(Three, Hearts), c(Jack, Hearts), c(King, Clubs), c(Four, Diamonds)},
			want:      ViolationNone,
		},
		{
			name:      "void may discard anything",
			trump:     twoSpades,
			lead:      LeadCombo([]Card{c(Seven, Hearts), c1(Seven, Hearts)}, twoSpades),
			hand:      []Card{c(King, Clubs), c(Three, Diamonds), c(Ace, Spades), c(Five, Diamonds)},
			candidate: []Card{c(King, Clubs), c(Three, Diamonds)},
			want:      ViolationNone,
		},
		{
			name:      "void may ruff",
			trump:     twoSpades,
			lead:      LeadCombo([]Card{c(Seven, Hearts), c1(Seven, Hearts)}, twoSpades),
			hand:      []Card{c(King, Clubs), c(Three, Diamonds), c(Ace, Spades), c(Five, Diamonds)},
			candidate: []Card{c(Ace, Spades), c(Five, Diamonds)},
			want:      ViolationNone,
		},
		{
			name:      "trump pair lead forces the joker pair",
			trump:     twoHearts,
			lead:      trumpPair,
			hand:      []Card{bj0, bj1, c(Three, Hearts), c(Seven, Hearts), c(Nine, Spades), c(King, Clubs)},
			candidate: []Card{c(Three, Hearts), c(Seven, Hearts)},
			want:      ViolationPairs,
		},
		{
			name:      "trump rank pair counts as a trump pair",
			trump:     twoHearts,
			lead:      trumpPair,
			hand:      []Card{c(Two, Clubs), c1(Two, Clubs), c(Three, Hearts), c(Four, Hearts), c(King, Spades)},
			candidate: []Card{c(Two, Clubs), c(Three, Hearts)},
			want:      ViolationPairs,
		},
		{
			name:      "trump rank pair played",
			trump:     twoHearts,
			lead:      trumpPair,
			hand:      []Card{c(Two, Clubs), c1(Two, Clubs), c(Three, Hearts), c(Four, Hearts), c(King, Spades)},
			candidate: []Card{c(Two, Clubs), c1(Two, Clubs)},
			want:      ViolationNone,
		},
		{
			name:      "multi lead needs the pair",
			trump:     twoSpades,
			lead:      multi,
			hand:      []Card{c(Queen, Hearts), c1(Queen, Hearts), c(Three, Hearts), c(Four, Hearts), c(Six, Clubs)},
			candidate: []Card{c(Three, Hearts), c(Four, Hearts), c(Queen, Hearts)},
			want:      ViolationPairs,
		},
		{
			name:      "multi lead followed",
			trump:     twoSpades,
			lead:      multi,
			hand:      []Card{c(Queen, Hearts), c1(Queen, Hearts), c(Three, Hearts), c(Four, Hearts), c(Six, Clubs)},
			candidate: []Card{c(Queen, Hearts), c1(Queen, Hearts), c(Three, Hearts)},
			want:      ViolationNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePlay(tt.candidate, tt.hand, tt.lead, tt.trump)
			assert.Equal(t, tt.want, got, "violation %s", got)
			assert.Equal(t, tt.want == ViolationNone, IsLegal(tt.candidate, tt.hand, tt.lead, tt.trump))
		})
	}
}

func TestValidatePlayPanicsOnBadLead(t *testing.T) {
	hand := []Card{c(Three, Hearts), c(Four, Hearts)}
	assert.Panics(t, func() {
		ValidatePlay(hand, hand, Combo{}, twoSpades)
	})
	mixed := Combo{Type: Invalid, Cards: []Card{c(Seven, Hearts), c(Seven, Clubs)}, Count: 2}
	assert.Panics(t, func() {
		ValidatePlay(hand, hand, mixed, twoSpades)
	})
}

func TestValidateLead(t *testing.T) {
	hand := []Card{c(Seven, Hearts), c(Eight, Hearts), c(Ace, Spades), bj0}

	assert.Equal(t, ViolationNone, ValidateLead([]Card{c(Seven, Hearts), c(Eight, Hearts)}, hand, twoSpades))
	assert.Equal(t, ViolationNone, ValidateLead([]Card{c(Ace, Spades), bj0}, hand, twoSpades))
	assert.Equal(t, ViolationMixedLead, ValidateLead([]Card{c(Seven, Hearts), c(Ace, Spades)}, hand, twoSpades))
	assert.Equal(t, ViolationEmptyLead, ValidateLead(nil, hand, twoSpades))
	assert.Equal(t, ViolationNotInHand, ValidateLead([]Card{c1(Seven, Hearts)}, hand, twoSpades))
}

// A short follower that keeps back one led-group card is always rejected.
func TestExhaustionOverRandomDeals(t *testing.T) {
	checked := 0
	for seed := int64(1); seed <= 300; seed++ {
		hands := dealHands(seed)
		for _, lead := range MaximalCombos(hands[0], twoSpades) {
			g, ok := lead.Group(twoSpades)
			require.True(t, ok)
			follower := hands[1]
			inGroup := twoSpades.CardsInGroup(follower, g)
			if len(inGroup) == 0 || len(inGroup) >= lead.Count {
				continue
			}
			others := RemoveCards(follower, inGroup)
			need := lead.Count - len(inGroup) + 1
			if len(others) < need {
				continue
			}
			candidate := append(append([]Card{}, inGroup[1:]...), others[:need]...)
			require.Equal(t, ViolationExhaustion, ValidatePlay(candidate, follower, lead, twoSpades), "seed %d lead %v", seed, lead.Cards)
			checked++
		}
	}
	require.Greater(t, checked, 0)
}
