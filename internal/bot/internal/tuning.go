package internal

// PhaseWeights tune move scoring for a specific phase.
type PhaseWeights struct {
	HandScoreWeight    float64
	TractorPairWeight  float64
	PairWeight         float64
	SingleWeight       float64
	TrumpCardWeight    float64
	VoidSuitWeight     float64
	UseTrumpPenalty    float64 // per trump card spent
	UseHighCardPenalty float64 // per strength point of the top card spent
	WinPointsBonus     float64 // per trick point taken
	FeedPointsPenalty  float64 // per own point handed to the opponents
	DumpPointsBonus    float64 // per own point given to a winning partner
	OvertakePenalty    float64 // beating a partner who already holds the trick
	LastTrickBonus     float64
}

// BotTuning defines phase weights and thresholds for a bot difficulty.
type BotTuning struct {
	Opening PhaseWeights
	Mid     PhaseWeights
	End     PhaseWeights
	// PassPointsThreshold is the trick value below which a follower ducks
	// instead of spending plain high cards.
	PassPointsThreshold int
	// RuffPointsThreshold is the trick value below which a void follower
	// keeps its trump.
	RuffPointsThreshold int
}

// ForPhase returns the weights that match the supplied phase.
func (t BotTuning) ForPhase(phase GamePhase) PhaseWeights {
	switch phase {
	case PhaseOpening:
		return t.Opening
	case PhaseEnd:
		return t.End
	default:
		return t.Mid
	}
}
