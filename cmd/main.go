package main

import (
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/abdhack/medgemma-gateway/internal/api/v1/handlers"
	"github.com/abdhack/medgemma-gateway/internal/config"
	"github.com/abdhack/medgemma-gateway/internal/services"
)

func main() {
	// A missing .env file is fine; environment variables still apply
	_ = godotenv.Load()

	setupLogging()

	svcs, err := services.InitializeServices()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}

	r := setupRouter(svcs)

	addr := net.JoinHostPort(config.GetHost(), config.GetPort())
	log.Info().
		Str("addr", addr).
		Str("space", svcs.GetGradioService().Space()).
		Bool("api_key_required", config.GetRequireAPIKey()).
		Msg("Starting Medical AI Service")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal().Err(err).Msg("ListenAndServe error")
	}
}

func setupRouter(svcs *services.Services) *mux.Router {
	r := mux.NewRouter()
	handlers.RegisterRoutes(r, svcs)
	return r
}

func setupLogging() {
	level := zerolog.InfoLevel
	if config.IsDevelopment() {
		level = zerolog.DebugLevel
	}
	if parsed, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL"))); err == nil && parsed != zerolog.NoLevel {
		level = parsed
	}
	zerolog.SetGlobalLevel(level)

	if config.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
