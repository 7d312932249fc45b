package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/abdhack/medgemma-gateway/internal/services/query"
	"github.com/abdhack/medgemma-gateway/internal/services/query/models"
	"github.com/abdhack/medgemma-gateway/pkg/httpext"
)

// single instance of Validate, it caches struct info
var validate = validator.New(validator.WithRequiredStructEnabled())

// HandleQuery handles medical query requests
func HandleQuery(queryService query.Service, w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	w.Header().Set("X-Request-ID", requestID)

	// Parse request
	var req models.QueryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Str("request_id", requestID).Msg("Client sent malformed JSON request")
		httpext.JsonError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	// Validate request against model constraints
	if err := validate.Struct(req); err != nil {
		log.Warn().Err(err).Str("request_id", requestID).Msg("Request validation failed")
		httpext.JsonError(w, fmt.Sprintf("Invalid request: %v", err), http.StatusUnprocessableEntity)
		return
	}

	log.Info().
		Str("request_id", requestID).
		Int("text_length", len(req.Message.Text)).
		Str("client_ip", r.RemoteAddr).
		Msg("Received medical query request")

	// Process query
	resp, err := queryService.ProcessQuery(r.Context(), &req)
	if err != nil {
		if errors.Is(err, query.ErrEmptyQuery) {
			log.Warn().Str("request_id", requestID).Msg("Client sent empty query text")
			httpext.JsonError(w, "Message text cannot be empty", http.StatusUnprocessableEntity)
			return
		}
		log.Error().Err(err).Str("request_id", requestID).Msg("Failed to process query")
		httpext.JsonError(w, "Failed to process query", http.StatusInternalServerError)
		return
	}

	// Send response
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Str("request_id", requestID).Msg("Failed to encode response")
		httpext.JsonError(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("request_id", requestID).
		Str("source", resp.Source).
		Float64("processing_time", resp.ProcessingTime).
		Int("status", http.StatusOK).
		Msg("Medical query request processed successfully")
}
