package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubPool struct {
	pingErr error
}

func (p *stubPool) Ping(ctx context.Context) error { return p.pingErr }
func (p *stubPool) Close()                         {}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()

	HandleHealthz()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name           string
		pool           *stubPool
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Database reachable",
			pool:           &stubPool{},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"ok"`,
		},
		{
			name:           "Database unreachable",
			pool:           &stubPool{pingErr: errors.New("connection refused")},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "database connection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/readyz", nil)
			rec := httptest.NewRecorder()

			HandleReadyz(tt.pool)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
