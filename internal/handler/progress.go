package handler

import (
	"log/slog"
	"net/http"

	"github.com/avenmore/focusquest/internal/user"
)

// ProgressHandler handles user progression queries
type ProgressHandler struct {
	service user.Service
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(service user.Service) *ProgressHandler {
	return &ProgressHandler{service: service}
}

// HandleGetProgress returns the user's full progression snapshot:
// persisted totals plus derived level, rank, and progress into the
// current level.
func (h *ProgressHandler) HandleGetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromQuery(w, r)
	if !ok {
		return
	}

	snapshot, err := h.service.GetSnapshot(r.Context(), userID)
	if err != nil {
		slog.Error(ErrMsgGetProgressFailed, "error", err, "userID", userID)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: snapshot})
}
