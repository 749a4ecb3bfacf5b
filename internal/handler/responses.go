package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/avenmore/focusquest/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers already sent; nothing left but to log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Internal detail never reaches the client.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrProgressNotFound):
		return http.StatusNotFound, ErrMsgProgressNotFoundError
	case errors.Is(err, domain.ErrOpponentNotFound):
		return http.StatusNotFound, ErrMsgOpponentNotFoundError
	case errors.Is(err, domain.ErrBossNotFound):
		return http.StatusNotFound, ErrMsgBossNotFoundError
	case errors.Is(err, domain.ErrRaidCompleted):
		return http.StatusConflict, ErrMsgRaidCompletedError
	case errors.Is(err, domain.ErrAllBossesDefeated):
		return http.StatusConflict, ErrMsgAllBossesDefeatedError
	case errors.Is(err, domain.ErrNoAttemptsRemaining):
		return http.StatusTooManyRequests, ErrMsgNoAttemptsRemainingErr
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return http.StatusConflict, ErrMsgConcurrentAttemptError
	case errors.Is(err, domain.ErrInvalidStats):
		return http.StatusBadRequest, ErrMsgInvalidStatsError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
