package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/avenmore/focusquest/internal/battle"
)

// BattleHandler handles opponent roster and battle endpoints
type BattleHandler struct {
	service battle.Service
}

// NewBattleHandler creates a new battle handler
func NewBattleHandler(service battle.Service) *BattleHandler {
	return &BattleHandler{service: service}
}

// BattleRequest is the payload for resolving a battle
type BattleRequest struct {
	UserID     string       `json:"user_id" validate:"required,uuid"`
	OpponentID string       `json:"opponent_id" validate:"required,max=128"`
	Stats      StatsPayload `json:"stats" validate:"required"`
}

// HandleGetOpponents returns the user's current opponent roster.
// The roster is deterministic for a given level and focus power, so
// clients can safely poll it.
func (h *BattleHandler) HandleGetOpponents(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromQuery(w, r)
	if !ok {
		return
	}
	stats, ok := statsFromQuery(w, r)
	if !ok {
		return
	}

	opponents, err := h.service.GetOpponents(r.Context(), userID, stats)
	if err != nil {
		slog.Error(ErrMsgGetOpponentsFailed, "error", err, "userID", userID)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: opponents})
}

// HandleBattle resolves a battle against a roster opponent and settles
// the rewards in one shot.
func (h *BattleHandler) HandleBattle(w http.ResponseWriter, r *http.Request) {
	var req BattleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}

	outcome, err := h.service.Battle(r.Context(), userID, req.Stats.toDomain(), req.OpponentID)
	if err != nil {
		slog.Error(ErrMsgBattleFailed, "error", err, "userID", userID, "opponentID", req.OpponentID)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: outcome})
}
