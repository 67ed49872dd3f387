package bot

import botinternal "tractor/internal/bot/internal"

const lastTrickBonus = 15.0

// DefaultTuning keeps structure early and fights harder for points as the
// hands shrink.
var DefaultTuning = botinternal.BotTuning{
	Opening: botinternal.PhaseWeights{
		HandScoreWeight:    1.0,
		TractorPairWeight:  1.0,
		PairWeight:         0.6,
		SingleWeight:       -0.3,
		TrumpCardWeight:    0.4,
		VoidSuitWeight:     0.5,
		UseTrumpPenalty:    2.0,
		UseHighCardPenalty: 0.3,
		WinPointsBonus:     0.6,
		FeedPointsPenalty:  0.8,
		DumpPointsBonus:    0.5,
		OvertakePenalty:    8.0,
		LastTrickBonus:     lastTrickBonus,
	},
	Mid: botinternal.PhaseWeights{
		HandScoreWeight:    1.0,
		TractorPairWeight:  0.8,
		PairWeight:         0.5,
		SingleWeight:       -0.4,
		TrumpCardWeight:    0.3,
		VoidSuitWeight:     0.6,
		UseTrumpPenalty:    1.5,
		UseHighCardPenalty: 0.25,
		WinPointsBonus:     0.8,
		FeedPointsPenalty:  1.0,
		DumpPointsBonus:    0.6,
		OvertakePenalty:    8.0,
		LastTrickBonus:     lastTrickBonus,
	},
	End: botinternal.PhaseWeights{
		HandScoreWeight:    0.6,
		TractorPairWeight:  0.4,
		PairWeight:         0.3,
		SingleWeight:       -0.2,
		TrumpCardWeight:    0.2,
		VoidSuitWeight:     0.2,
		UseTrumpPenalty:    0.8,
		UseHighCardPenalty: 0.1,
		WinPointsBonus:     1.2,
		FeedPointsPenalty:  1.2,
		DumpPointsBonus:    0.8,
		OvertakePenalty:    6.0,
		LastTrickBonus:     lastTrickBonus,
	},
	PassPointsThreshold: 5,
	RuffPointsThreshold: 10,
}
