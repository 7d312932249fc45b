package query

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/abdhack/medgemma-gateway/internal/infrastructure/gradio"
	"github.com/abdhack/medgemma-gateway/internal/services/query/models"
)

const (
	// LiveConfidence is the constant placeholder reported for live answers;
	// the remote model exposes no real confidence signal
	LiveConfidence = 0.85
	// FallbackConfidence is the constant reported for fallback answers
	FallbackConfidence = 0.10
)

// FallbackMessage is returned whenever the remote model cannot produce an answer
const FallbackMessage = "I apologize, but the AI medical service is temporarily " +
	"unavailable and I cannot process your question right now. Please try again later, " +
	"or consult with a healthcare professional for immediate assistance."

// ErrEmptyQuery rejects requests whose message text is empty after trimming
var ErrEmptyQuery = errors.New("message text must not be empty")

type Implementation struct {
	mu     sync.RWMutex
	client RemoteClient
}

func NewService(client RemoteClient) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("remote client is required")
	}

	return &Implementation{
		mu:     sync.RWMutex{},
		client: client,
	}, nil
}

// ProcessQuery runs the single query procedure: validate, call the remote model
// once, post-process the text, and assemble the response. Remote failures of any
// kind are absorbed into a fallback response and never returned as errors.
func (s *Implementation) ProcessQuery(ctx context.Context, req *models.QueryRequest) (*models.QueryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if strings.TrimSpace(req.Message.Text) == "" {
		return nil, ErrEmptyQuery
	}

	req.ApplyDefaults()

	start := time.Now()

	log.Debug().
		Int("text_length", len(req.Message.Text)).
		Int("max_tokens", req.MaxTokens).
		Str("user_id", req.UserID).
		Msg("Forwarding medical query to remote model")

	text, err := s.client.Predict(ctx, gradio.PredictRequest{
		Text:         req.Message.Text,
		Files:        req.Message.Files,
		SystemPrompt: req.SystemPrompt,
		MaxTokens:    req.MaxTokens,
	})

	elapsed := time.Since(start).Seconds()

	if err != nil {
		log.Error().
			Err(err).
			Str("error_kind", string(gradio.KindOf(err))).
			Float64("elapsed_seconds", elapsed).
			Msg("Remote model call failed - returning fallback response")

		return &models.QueryResponse{
			Response:       EnsureDisclaimer(FallbackMessage),
			Confidence:     FallbackConfidence,
			Source:         models.SourceFallback,
			ProcessingTime: elapsed,
			UserID:         req.UserID,
		}, nil
	}

	log.Info().
		Float64("elapsed_seconds", elapsed).
		Int("response_length", len(text)).
		Msg("Remote model call succeeded")

	return &models.QueryResponse{
		Response:       EnsureDisclaimer(text),
		Confidence:     LiveConfidence,
		Source:         models.SourceLive,
		ProcessingTime: elapsed,
		UserID:         req.UserID,
	}, nil
}
