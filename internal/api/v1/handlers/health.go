package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/abdhack/medgemma-gateway/internal/services/health"
)

type infoResponse struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Version     string `json:"version"`
	GradioSpace string `json:"gradio_space"`
}

// HandleHealth reports liveness and remote reachability. It always answers 200;
// an unreachable remote is reported in the body, not as an HTTP error.
func HandleHealth(healthService *health.Service, w http.ResponseWriter, r *http.Request) {
	status := healthService.CheckHealth(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		log.Error().Err(err).Msg("Failed to encode health response")
	}
}

// HandleRoot reports service identity
func HandleRoot(space string, w http.ResponseWriter, r *http.Request) {
	info := infoResponse{
		Status:      health.StatusHealthy,
		Service:     health.ServiceName,
		Version:     health.Version,
		GradioSpace: space,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(info); err != nil {
		log.Error().Err(err).Msg("Failed to encode info response")
	}
}
