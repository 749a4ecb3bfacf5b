package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/avenmore/focusquest/internal/raid"
)

// RaidHandler handles portal raid endpoints
type RaidHandler struct {
	service raid.Service
}

// NewRaidHandler creates a new raid handler
func NewRaidHandler(service raid.Service) *RaidHandler {
	return &RaidHandler{service: service}
}

// RaidAttemptRequest is the payload for executing a raid attempt
type RaidAttemptRequest struct {
	UserID string       `json:"user_id" validate:"required,uuid"`
	Stats  StatsPayload `json:"stats" validate:"required"`
}

// HandleGetBosses returns the full boss map with per-boss status
func (h *RaidHandler) HandleGetBosses(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromQuery(w, r)
	if !ok {
		return
	}

	entries, err := h.service.ListBosses(r.Context(), userID)
	if err != nil {
		slog.Error(ErrMsgGetBossesFailed, "error", err, "userID", userID)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: entries})
}

// HandleGetStatus returns the user's standing against the current boss,
// including remaining daily attempts and attempt projections.
func (h *RaidHandler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromQuery(w, r)
	if !ok {
		return
	}
	stats, ok := statsFromQuery(w, r)
	if !ok {
		return
	}

	status, err := h.service.GetStatus(r.Context(), userID, stats)
	if err != nil {
		slog.Error(ErrMsgGetRaidStatusFailed, "error", err, "userID", userID)
		httpStatus, msg := mapServiceErrorToUserMessage(err)
		respondError(w, httpStatus, msg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: status})
}

// HandleAttempt executes one damage attempt against the current boss
func (h *RaidHandler) HandleAttempt(w http.ResponseWriter, r *http.Request) {
	var req RaidAttemptRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}

	outcome, err := h.service.Attempt(r.Context(), userID, req.Stats.toDomain())
	if err != nil {
		slog.Error(ErrMsgRaidAttemptFailed, "error", err, "userID", userID)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: outcome})
}
