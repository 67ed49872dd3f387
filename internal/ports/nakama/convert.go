package nakama

import (
	"fmt"

	"tractor/internal/domain"
)

// wireCard is the JSON form of a card: suit "S", "H", "C", "D" or "" for
// jokers, rank 2..14 with 15 and 16 for the small and big joker.
type wireCard struct {
	Suit string `json:"suit"`
	Rank int    `json:"rank"`
	Deck int    `json:"deck"`
}

type wireTrump struct {
	Rank int    `json:"rank"`
	Suit string `json:"suit"`
}

// wirePlay is one seat's contribution to a trick.
type wirePlay struct {
	Seat  int        `json:"seat"`
	Cards []wireCard `json:"cards"`
}

func cardFromWire(w wireCard) (domain.Card, error) {
	suit, err := domain.ParseSuit(w.Suit)
	if err != nil {
		return domain.Card{}, err
	}
	rank := domain.Rank(w.Rank)
	if w.Rank < int(domain.Two) || w.Rank > int(domain.BigJoker) {
		return domain.Card{}, fmt.Errorf("rank %d out of range", w.Rank)
	}
	if w.Deck != 0 && w.Deck != 1 {
		return domain.Card{}, fmt.Errorf("deck %d out of range", w.Deck)
	}
	if rank.IsJoker() != (suit == domain.SuitNone) {
		return domain.Card{}, fmt.Errorf("card %s%d: jokers and only jokers have no suit", w.Suit, w.Rank)
	}
	return domain.Card{Suit: suit, Rank: rank, Deck: uint8(w.Deck)}, nil
}

func cardsFromWire(cards []wireCard) ([]domain.Card, error) {
	out := make([]domain.Card, 0, len(cards))
	for _, w := range cards {
		c, err := cardFromWire(w)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func cardsToWire(cards []domain.Card) []wireCard {
	out := make([]wireCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, wireCard{Suit: c.Suit.String(), Rank: int(c.Rank), Deck: int(c.Deck)})
	}
	return out
}

func trumpFromWire(w wireTrump) (domain.TrumpInfo, error) {
	if w.Rank < int(domain.Two) || w.Rank > int(domain.Ace) {
		return domain.TrumpInfo{}, fmt.Errorf("trump rank %d out of range", w.Rank)
	}
	suit, err := domain.ParseSuit(w.Suit)
	if err != nil {
		return domain.TrumpInfo{}, err
	}
	return domain.TrumpInfo{Rank: domain.Rank(w.Rank), Suit: suit}, nil
}

// leadFromWire classifies a lead and rejects sets spanning several groups.
func leadFromWire(cards []wireCard, trump domain.TrumpInfo) (domain.Combo, error) {
	lead, err := cardsFromWire(cards)
	if err != nil {
		return domain.Combo{}, err
	}
	combo := domain.LeadCombo(lead, trump)
	if combo.Type == domain.Invalid {
		return domain.Combo{}, fmt.Errorf("lead %v is not from one group", lead)
	}
	return combo, nil
}

// trickFromWire replays the plays of one trick, leader first.
func trickFromWire(plays []wirePlay, trump domain.TrumpInfo) (domain.Trick, error) {
	var trick domain.Trick
	for i, p := range plays {
		if p.Seat < 0 || p.Seat >= domain.Seats {
			return domain.Trick{}, fmt.Errorf("seat %d out of range", p.Seat)
		}
		cards, err := cardsFromWire(p.Cards)
		if err != nil {
			return domain.Trick{}, err
		}
		id := seatID(p.Seat)
		if i == 0 {
			if domain.LeadCombo(cards, trump).Type == domain.Invalid {
				return domain.Trick{}, fmt.Errorf("lead %v is not from one group", cards)
			}
			trick = domain.NewTrick(id, cards, trump)
			continue
		}
		if len(cards) != trick.Lead.Count {
			return domain.Trick{}, fmt.Errorf("seat %d played %d cards to a lead of %d", p.Seat, len(cards), trick.Lead.Count)
		}
		if _, dup := trick.PlayOf(id); dup {
			return domain.Trick{}, fmt.Errorf("seat %d played twice", p.Seat)
		}
		trick = trick.Add(id, cards, trump)
	}
	return trick, nil
}

func seatID(seat int) string {
	return fmt.Sprintf("seat%d", seat)
}
