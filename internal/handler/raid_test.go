package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avenmore/focusquest/internal/domain"
	"github.com/avenmore/focusquest/internal/raid"
)

type stubRaidService struct {
	listBossesFn func(ctx context.Context, userID uuid.UUID) ([]domain.BossListEntry, error)
	getStatusFn  func(ctx context.Context, userID uuid.UUID, userStats domain.BattlerStats) (*raid.Status, error)
	attemptFn    func(ctx context.Context, userID uuid.UUID, userStats domain.BattlerStats) (*raid.AttemptOutcome, error)
}

func (s *stubRaidService) ListBosses(ctx context.Context, userID uuid.UUID) ([]domain.BossListEntry, error) {
	return s.listBossesFn(ctx, userID)
}

func (s *stubRaidService) GetStatus(ctx context.Context, userID uuid.UUID, userStats domain.BattlerStats) (*raid.Status, error) {
	return s.getStatusFn(ctx, userID, userStats)
}

func (s *stubRaidService) Attempt(ctx context.Context, userID uuid.UUID, userStats domain.BattlerStats) (*raid.AttemptOutcome, error) {
	return s.attemptFn(ctx, userID, userStats)
}

func TestHandleGetBosses(t *testing.T) {
	validUUID := uuid.New()
	tests := []struct {
		name           string
		query          string
		service        *stubRaidService
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Missing user ID",
			query:          "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Missing user_id query parameter",
		},
		{
			name:  "Success",
			query: "user_id=" + validUUID.String(),
			service: &stubRaidService{
				listBossesFn: func(_ context.Context, userID uuid.UUID) ([]domain.BossListEntry, error) {
					assert.Equal(t, validUUID, userID)
					return []domain.BossListEntry{
						{Boss: domain.PortalBoss{Name: "Gatewarden Morvel"}, Status: domain.BossStatusCurrent},
					}, nil
				},
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Gatewarden Morvel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewRaidHandler(tt.service)

			req := httptest.NewRequest("GET", "/raid/bosses?"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.HandleGetBosses(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleGetRaidStatus(t *testing.T) {
	validUUID := uuid.New()
	tests := []struct {
		name           string
		query          string
		service        *stubRaidService
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Missing stats",
			query:          "user_id=" + validUUID.String(),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Missing health query parameter",
		},
		{
			name:  "Success",
			query: "user_id=" + validUUID.String() + "&" + testStatsQuery,
			service: &stubRaidService{
				getStatusFn: func(_ context.Context, userID uuid.UUID, stats domain.BattlerStats) (*raid.Status, error) {
					assert.Equal(t, validUUID, userID)
					assert.Equal(t, 140, stats.FocusPower)
					return &raid.Status{
						State:           domain.RaidStateInProgress,
						EstimatedMin:    3,
						EstimatedMax:    5,
						AttemptsUsed:    1,
						AttemptsAllowed: 3,
					}, nil
				},
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"attempts_allowed":3`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewRaidHandler(tt.service)

			req := httptest.NewRequest("GET", "/raid/status?"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.HandleGetStatus(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleRaidAttempt(t *testing.T) {
	validUUID := uuid.New()
	validStats := StatsPayload{Health: 50, Attack: 40, Defense: 30, Speed: 20, FocusPower: 140}
	tests := []struct {
		name           string
		reqBody        interface{}
		service        *stubRaidService
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid JSON",
			reqBody:        "invalid json",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Missing user ID",
			reqBody:        RaidAttemptRequest{Stats: validStats},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "This field is required",
		},
		{
			name:    "No attempts remaining",
			reqBody: RaidAttemptRequest{UserID: validUUID.String(), Stats: validStats},
			service: &stubRaidService{
				attemptFn: func(context.Context, uuid.UUID, domain.BattlerStats) (*raid.AttemptOutcome, error) {
					return nil, domain.ErrNoAttemptsRemaining
				},
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   ErrMsgNoAttemptsRemainingErr,
		},
		{
			name:    "Concurrent attempt",
			reqBody: RaidAttemptRequest{UserID: validUUID.String(), Stats: validStats},
			service: &stubRaidService{
				attemptFn: func(context.Context, uuid.UUID, domain.BattlerStats) (*raid.AttemptOutcome, error) {
					return nil, domain.ErrConcurrencyConflict
				},
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgConcurrentAttemptError,
		},
		{
			name:    "All bosses defeated",
			reqBody: RaidAttemptRequest{UserID: validUUID.String(), Stats: validStats},
			service: &stubRaidService{
				attemptFn: func(context.Context, uuid.UUID, domain.BattlerStats) (*raid.AttemptOutcome, error) {
					return nil, domain.ErrAllBossesDefeated
				},
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgAllBossesDefeatedError,
		},
		{
			name:    "Success",
			reqBody: RaidAttemptRequest{UserID: validUUID.String(), Stats: validStats},
			service: &stubRaidService{
				attemptFn: func(_ context.Context, userID uuid.UUID, stats domain.BattlerStats) (*raid.AttemptOutcome, error) {
					assert.Equal(t, validUUID, userID)
					assert.Equal(t, 140, stats.FocusPower)
					return &raid.AttemptOutcome{
						Boss:   domain.PortalBoss{Name: "Gatewarden Morvel"},
						Result: domain.RaidAttemptResult{DamageDealt: 123},
					}, nil
				},
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"damage_dealt":123`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewRaidHandler(tt.service)

			var body []byte
			if s, ok := tt.reqBody.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tt.reqBody)
			}

			req := httptest.NewRequest("POST", "/raid/attempt", bytes.NewBuffer(body))
			rec := httptest.NewRecorder()

			handler.HandleAttempt(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
