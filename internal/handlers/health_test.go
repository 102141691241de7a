package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boxes360/stalker-bot/pkg/storage"
)

func TestHealthHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name        string
		pingError   error
		wantStatus  int
		wantOverall string
		wantStore   string
	}{
		{
			name:        "healthy store",
			pingError:   nil,
			wantStatus:  http.StatusOK,
			wantOverall: "healthy",
			wantStore:   "healthy",
		},
		{
			name:        "unhealthy store",
			pingError:   errors.New("connection refused"),
			wantStatus:  http.StatusServiceUnavailable,
			wantOverall: "degraded",
			wantStore:   "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMockPlayerStore()
			store.SetPingError(tt.pingError)

			h := NewHealthHandler(store, logger)
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp HealthResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantOverall, resp.Status)
			assert.Equal(t, "stalker-bot", resp.Service)
			assert.Equal(t, tt.wantStore, resp.Components["store"])
		})
	}
}
