package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdhack/medgemma-gateway/internal/services/health"
)

type stubProber struct {
	reachable bool
}

func (s *stubProber) CheckReachable(ctx context.Context) bool {
	return s.reachable
}

func TestHandleHealth(t *testing.T) {
	tests := []struct {
		name              string
		reachable         bool
		expectedStatus    string
		expectedReachable bool
	}{
		{
			name:              "remote reachable",
			reachable:         true,
			expectedStatus:    health.StatusHealthy,
			expectedReachable: true,
		},
		{
			name:              "remote unreachable still answers 200",
			reachable:         false,
			expectedStatus:    health.StatusDegraded,
			expectedReachable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			healthService := health.NewService(&stubProber{reachable: tt.reachable}, "Abdhack/medgemma-4b-it")

			r := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()

			HandleHealth(healthService, w, r)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var status health.Status
			require.NoError(t, json.NewDecoder(w.Body).Decode(&status))
			assert.Equal(t, tt.expectedStatus, status.Status)
			assert.Equal(t, tt.expectedReachable, status.RemoteReachable)
			assert.NotEmpty(t, status.Timestamp)
		})
	}
}

func TestHandleRoot(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	HandleRoot("Abdhack/medgemma-4b-it", w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var info infoResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&info))
	assert.Equal(t, health.StatusHealthy, info.Status)
	assert.Equal(t, health.ServiceName, info.Service)
	assert.Equal(t, health.Version, info.Version)
	assert.Equal(t, "Abdhack/medgemma-4b-it", info.GradioSpace)
}
