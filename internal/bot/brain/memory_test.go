package brain

import (
	"testing"

	"tractor/internal/domain"
)

var twoSpades = domain.TrumpInfo{Rank: domain.Two, Suit: domain.Spades}

func card(r domain.Rank, s domain.Suit) domain.Card { return domain.NewCard(r, s) }

func copy1(r domain.Rank, s domain.Suit) domain.Card {
	c := domain.NewCard(r, s)
	c.Deck = 1
	return c
}

func TestGameMemory(t *testing.T) {
	m := NewMemory(twoSpades)
	aceHearts := card(domain.Ace, domain.Hearts)

	if m.Status(aceHearts) != StatusUnknown {
		t.Fatalf("fresh memory should know nothing")
	}
	if m.Unseen(aceHearts) != 2 {
		t.Fatalf("both copies should be unseen")
	}

	m.MarkMine([]domain.Card{aceHearts})
	if m.Status(aceHearts) != StatusMine || m.Unseen(aceHearts) != 1 {
		t.Errorf("AH should be StatusMine with one copy unseen")
	}

	m.MarkPlayed([]domain.Card{copy1(domain.Ace, domain.Hearts)})
	if !m.IsPlayed(copy1(domain.Ace, domain.Hearts)) {
		t.Errorf("second AH should be StatusPlayed")
	}
	if m.Unseen(aceHearts) != 0 {
		t.Errorf("no AH copy should be unseen")
	}

	m.UpdateHand(nil)
	if m.Status(aceHearts) != StatusUnknown {
		t.Errorf("cards leaving the hand unseen become unknown")
	}

	m.Reset(twoSpades)
	if m.IsPlayed(copy1(domain.Ace, domain.Hearts)) {
		t.Errorf("After reset, AH should be StatusUnknown")
	}
}

func TestRecordPlayInfersVoids(t *testing.T) {
	m := NewMemory(twoSpades)
	hearts := domain.Group(domain.Hearts)

	m.RecordPlay("p1", []domain.Card{card(domain.Seven, domain.Hearts)})
	m.RecordPlay("p2", []domain.Card{card(domain.Three, domain.Clubs)})
	m.RecordPlay("p3", []domain.Card{card(domain.Three, domain.Spades)})
	m.RecordPlay("p4", []domain.Card{card(domain.Nine, domain.Hearts)})

	if !m.IsVoid("p2", hearts) || !m.IsVoid("p3", hearts) {
		t.Errorf("off-group follows should mark the hearts void")
	}
	if m.IsVoid("p4", hearts) || m.IsVoid("p1", hearts) {
		t.Errorf("hearts followers are not void")
	}
	if m.Players["p3"].Ruffs != 1 || m.Players["p2"].Ruffs != 0 {
		t.Errorf("only the trump follow is a ruff")
	}
	if m.CurrentTrick.WinningPlayerID != "p3" {
		t.Errorf("winner = %s, want p3", m.CurrentTrick.WinningPlayerID)
	}

	m.EndTrick()
	if len(m.CurrentTrick.Plays) != 0 {
		t.Errorf("EndTrick should clear the trick")
	}
}

func TestRecordPlayInfersPairShortage(t *testing.T) {
	m := NewMemory(twoSpades)
	hearts := domain.Group(domain.Hearts)

	m.RecordPlay("p1", []domain.Card{card(domain.Seven, domain.Hearts), copy1(domain.Seven, domain.Hearts)})
	m.RecordPlay("p2", []domain.Card{card(domain.Nine, domain.Hearts), card(domain.Jack, domain.Hearts)})
	m.RecordPlay("p3", []domain.Card{card(domain.Ten, domain.Hearts), copy1(domain.Ten, domain.Hearts)})

	if !m.Players["p2"].PairShort[hearts] {
		t.Errorf("p2 broke the pair rule only if it had no hearts pair")
	}
	if m.Players["p3"].PairShort[hearts] || m.IsVoid("p2", hearts) {
		t.Errorf("unexpected inference")
	}
}

func TestReplay(t *testing.T) {
	trick := domain.NewTrick("p1", []domain.Card{card(domain.King, domain.Clubs)}, twoSpades)
	trick = trick.Add("p2", []domain.Card{card(domain.Four, domain.Diamonds)}, twoSpades)
	trick = trick.Add("p3", []domain.Card{card(domain.Ace, domain.Clubs)}, twoSpades)
	trick = trick.Add("p4", []domain.Card{card(domain.Two, domain.Clubs)}, twoSpades)

	current := domain.NewTrick("p4", []domain.Card{card(domain.Five, domain.Hearts)}, twoSpades)

	hand := []domain.Card{copy1(domain.Ace, domain.Clubs)}
	m := Replay(twoSpades, hand, []domain.Trick{trick}, current)

	if !m.IsVoid("p2", domain.Group(domain.Clubs)) {
		t.Errorf("p2 discarded on clubs")
	}
	if !m.IsVoid("p4", domain.Group(domain.Clubs)) {
		t.Errorf("p4 ruffed clubs with a trump-rank card")
	}
	if !m.IsPlayed(card(domain.Five, domain.Hearts)) || m.Status(copy1(domain.Ace, domain.Clubs)) != StatusMine {
		t.Errorf("replay lost card statuses")
	}
	if m.CurrentTrick.LeadingPlayerID != "p4" {
		t.Errorf("current trick not replayed")
	}
}
