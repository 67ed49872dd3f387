package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"

	"tractor/internal/bot"
	"tractor/internal/domain"
)

type validatePlayRequest struct {
	Trump wireTrump  `json:"trump"`
	Hand  []wireCard `json:"hand"`
	Lead  []wireCard `json:"lead,omitempty"` // empty when the cards open the trick
	Cards []wireCard `json:"cards"`
}

type validatePlayResponse struct {
	Legal     bool   `json:"legal"`
	Violation string `json:"violation,omitempty"`
}

type suggestMoveRequest struct {
	Trump   wireTrump    `json:"trump"`
	Seat    int          `json:"seat"`
	Hand    []wireCard   `json:"hand"`
	Trick   []wirePlay   `json:"trick,omitempty"`  // trick in progress, leader first
	Played  [][]wirePlay `json:"played,omitempty"` // completed tricks in order
}

type suggestMoveResponse struct {
	Cards []wireCard `json:"cards"`
}

type classifyRequest struct {
	Trump wireTrump  `json:"trump"`
	Cards []wireCard `json:"cards"`
}

type classifyResponse struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
}

// rpcHandler serves the rule RPCs. The brain answers move suggestions.
type rpcHandler struct {
	brain bot.Brain
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer, brain bot.Brain) error {
	h := &rpcHandler{brain: brain}
	if err := initializer.RegisterRpc(RpcValidatePlay, h.rpcValidatePlay); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcSuggestMove, h.rpcSuggestMove); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcClassify, h.rpcClassify)
}

func invalidArgument(logger runtime.Logger, rpc string, err error) error {
	logger.Warn("%s: invalid payload: %v", rpc, err)
	return runtime.NewError(err.Error(), codeInvalidArgument)
}

func respond(logger runtime.Logger, rpc string, v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		logger.Error("%s: failed to marshal response: %v", rpc, err)
		return "", runtime.NewError("internal error", codeInternal)
	}
	return string(b), nil
}

func (h *rpcHandler) rpcValidatePlay(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req validatePlayRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", invalidArgument(logger, "rpcValidatePlay", err)
	}
	trump, err := trumpFromWire(req.Trump)
	if err != nil {
		return "", invalidArgument(logger, "rpcValidatePlay", err)
	}
	hand, err := cardsFromWire(req.Hand)
	if err != nil {
		return "", invalidArgument(logger, "rpcValidatePlay", err)
	}
	cards, err := cardsFromWire(req.Cards)
	if err != nil {
		return "", invalidArgument(logger, "rpcValidatePlay", err)
	}

	var v domain.Violation
	if len(req.Lead) == 0 {
		v = domain.ValidateLead(cards, hand, trump)
	} else {
		lead, err := leadFromWire(req.Lead, trump)
		if err != nil {
			return "", invalidArgument(logger, "rpcValidatePlay", err)
		}
		v = domain.ValidatePlay(cards, hand, lead, trump)
	}

	resp := validatePlayResponse{Legal: v == domain.ViolationNone}
	if !resp.Legal {
		resp.Violation = v.String()
	}
	return respond(logger, "rpcValidatePlay", resp)
}

func (h *rpcHandler) rpcSuggestMove(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req suggestMoveRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", invalidArgument(logger, "rpcSuggestMove", err)
	}
	round, err := roundFromRequest(req)
	if err != nil {
		return "", invalidArgument(logger, "rpcSuggestMove", err)
	}

	agent := &bot.Agent{ID: seatID(req.Seat), Strategy: h.brain}
	move, err := agent.Play(round)
	if err != nil {
		logger.Error("rpcSuggestMove: seat %d: %v", req.Seat, err)
		return "", runtime.NewError("internal error", codeInternal)
	}
	logger.Debug("rpcSuggestMove: seat %d plays %v", req.Seat, move.Cards)
	return respond(logger, "rpcSuggestMove", suggestMoveResponse{Cards: cardsToWire(move.Cards)})
}

func (h *rpcHandler) rpcClassify(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req classifyRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", invalidArgument(logger, "rpcClassify", err)
	}
	trump, err := trumpFromWire(req.Trump)
	if err != nil {
		return "", invalidArgument(logger, "rpcClassify", err)
	}
	cards, err := cardsFromWire(req.Cards)
	if err != nil {
		return "", invalidArgument(logger, "rpcClassify", err)
	}

	combo := domain.IdentifyCombo(cards, trump)
	return respond(logger, "rpcClassify", classifyResponse{Type: combo.Type.String(), Value: combo.Value})
}

// roundFromRequest rebuilds the public state of a round from one seat's
// point of view. Other seats have unknown hands.
func roundFromRequest(req suggestMoveRequest) (*domain.Round, error) {
	if req.Seat < 0 || req.Seat >= domain.Seats {
		return nil, fmt.Errorf("seat %d out of range", req.Seat)
	}
	trump, err := trumpFromWire(req.Trump)
	if err != nil {
		return nil, err
	}
	hand, err := cardsFromWire(req.Hand)
	if err != nil {
		return nil, err
	}
	if len(hand) == 0 {
		return nil, fmt.Errorf("empty hand")
	}

	round := &domain.Round{
		Phase:    domain.PhasePlaying,
		Trump:    trump,
		Players:  make(map[string]*domain.Player, domain.Seats),
		TurnSeat: req.Seat,
	}
	for seat := 0; seat < domain.Seats; seat++ {
		id := seatID(seat)
		round.Seats[seat] = id
		round.Players[id] = &domain.Player{UserID: id, Seat: seat}
	}
	round.Players[seatID(req.Seat)].Hand = hand

	for i, plays := range req.Played {
		trick, err := trickFromWire(plays, trump)
		if err != nil {
			return nil, fmt.Errorf("played trick %d: %w", i, err)
		}
		round.Completed = append(round.Completed, trick)
	}
	if round.Trick, err = trickFromWire(req.Trick, trump); err != nil {
		return nil, fmt.Errorf("current trick: %w", err)
	}
	if _, played := round.Trick.PlayOf(seatID(req.Seat)); played {
		return nil, fmt.Errorf("seat %d already played to the current trick", req.Seat)
	}
	if n := round.Trick.Lead.Count; n > 0 && len(hand) < n {
		return nil, fmt.Errorf("hand of %d cannot follow a lead of %d", len(hand), n)
	}
	if len(round.Trick.Plays) >= domain.Seats {
		return nil, fmt.Errorf("current trick is complete")
	}
	return round, nil
}
