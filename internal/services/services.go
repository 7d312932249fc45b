package services

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/abdhack/medgemma-gateway/internal/infrastructure/gradio"
	"github.com/abdhack/medgemma-gateway/internal/services/health"
	"github.com/abdhack/medgemma-gateway/internal/services/query"
)

var (
	// Mutex for thread-safe initialization
	servicesMu sync.RWMutex
)

type Services struct {
	gradioService *gradio.Service
	queryService  query.Service
	healthService *health.Service
}

// InitializeServices initializes all required services
func InitializeServices() (*Services, error) {
	servicesMu.Lock()
	defer servicesMu.Unlock()

	log.Info().Msg("Initializing core services")

	// Initialize Gradio service (required)
	gradioService := gradio.NewService()
	if gradioService == nil {
		return nil, fmt.Errorf("failed to initialize Gradio service: no Space configured")
	}
	log.Info().Msg("Initializing Gradio service")

	// Initialize query service (required)
	queryService, err := query.NewService(gradioService)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize query service - required for message processing")
		return nil, fmt.Errorf("failed to initialize query service: %w", err)
	}
	log.Info().Msg("Initializing query service")

	// Initialize health service
	healthService := health.NewService(gradioService, gradioService.Space())
	log.Info().Msg("Initializing health service")

	log.Info().Msg("All services initialized successfully")

	return &Services{
		gradioService: gradioService,
		queryService:  queryService,
		healthService: healthService,
	}, nil
}

// GetQueryService returns the query service
func (s *Services) GetQueryService() query.Service {
	return s.queryService
}

// GetHealthService returns the health service
func (s *Services) GetHealthService() *health.Service {
	return s.healthService
}

// GetGradioService returns the Gradio service
func (s *Services) GetGradioService() *gradio.Service {
	return s.gradioService
}
