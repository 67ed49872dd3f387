package internal

import "tractor/internal/domain"

// GamePhase describes the current strategic stage of a round.
type GamePhase int

const (
	// PhaseOpening indicates every player still holds at least openingCards.
	PhaseOpening GamePhase = iota
	// PhaseMid indicates no one has reached the endgame threshold yet.
	PhaseMid
	// PhaseEnd indicates some player holds endCards or fewer.
	PhaseEnd
)

const (
	openingCards = 20
	endCards     = 6
)

func (p GamePhase) String() string {
	switch p {
	case PhaseOpening:
		return "opening"
	case PhaseEnd:
		return "end"
	default:
		return "mid"
	}
}

// DetectPhase infers the phase from the players' hand sizes. Empty hands
// are skipped: they are unknown when the round is rebuilt from one seat.
func DetectPhase(round *domain.Round) GamePhase {
	if round == nil {
		return PhaseMid
	}

	counted := 0
	opening := true
	end := false
	for _, player := range round.Players {
		if player == nil || len(player.Hand) == 0 {
			continue
		}
		counted++
		if len(player.Hand) < openingCards {
			opening = false
		}
		if len(player.Hand) <= endCards {
			end = true
		}
	}

	if counted == 0 {
		return PhaseMid
	}
	if opening {
		return PhaseOpening
	}
	if end {
		return PhaseEnd
	}
	return PhaseMid
}
