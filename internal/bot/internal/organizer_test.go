package internal

import (
	"testing"

	"tractor/internal/domain"
)

func TestOrganizeHand(t *testing.T) {
	hand := []domain.Card{
		card(domain.Seven, domain.Hearts), copy1(domain.Seven, domain.Hearts),
		card(domain.Eight, domain.Hearts), copy1(domain.Eight, domain.Hearts),
		card(domain.Ten, domain.Hearts),
		card(domain.Four, domain.Clubs),
		card(domain.Ace, domain.Spades),
	}

	organized := OrganizeHand(hand, twoSpades)
	if len(organized.Groups) != 3 {
		t.Fatalf("Expected hearts, clubs and trump holdings, got %d", len(organized.Groups))
	}

	hearts, ok := organized.Holding(domain.Group(domain.Hearts))
	if !ok {
		t.Fatalf("hearts holding missing")
	}
	if len(hearts.Tractors) != 1 || len(hearts.Singles) != 1 || hearts.Points != 10 {
		t.Errorf("hearts holding = %+v", hearts)
	}
	if !organized.HasTrump() {
		t.Errorf("A of trump suit should count as trump")
	}

	short, ok := organized.ShortestPlainSuit()
	if !ok || short.Group != domain.Group(domain.Clubs) {
		t.Errorf("shortest plain suit = %v, want clubs", short.Group)
	}
}

func TestStrongestLead(t *testing.T) {
	tests := []struct {
		name string
		hand []domain.Card
		want []domain.Card
	}{
		{
			name: "Longest combo first",
			hand: []domain.Card{
				card(domain.Three, domain.Clubs), copy1(domain.Three, domain.Clubs),
				card(domain.Ace, domain.Hearts),
			},
			want: []domain.Card{card(domain.Three, domain.Clubs), copy1(domain.Three, domain.Clubs)},
		},
		{
			name: "Plain before trump",
			hand: []domain.Card{card(domain.Four, domain.Clubs), domain.NewJoker(domain.BigJoker, 0)},
			want: []domain.Card{card(domain.Four, domain.Clubs)},
		},
		{
			name: "Highest value",
			hand: []domain.Card{card(domain.Four, domain.Clubs), card(domain.King, domain.Diamonds)},
			want: []domain.Card{card(domain.King, domain.Diamonds)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StrongestLead(tt.hand, twoSpades)
			if len(got.Cards) != len(tt.want) {
				t.Fatalf("StrongestLead() = %v, want %v", got.Cards, tt.want)
			}
			for i := range tt.want {
				if got.Cards[i] != tt.want[i] {
					t.Fatalf("StrongestLead() = %v, want %v", got.Cards, tt.want)
				}
			}
		})
	}
}
