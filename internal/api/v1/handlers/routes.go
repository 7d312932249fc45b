package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	v1mware "github.com/abdhack/medgemma-gateway/internal/api/v1/middleware"
	"github.com/abdhack/medgemma-gateway/internal/services"
)

func RegisterRoutes(router *mux.Router, services *services.Services) {
	router.Use(v1mware.CORS())

	// Public routes (no auth required)
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		HandleRoot(services.GetGradioService().Space(), w, r)
	}).Methods("GET")
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		HandleHealth(services.GetHealthService(), w, r)
	}).Methods("GET")

	// Query routes (API key checked when enforcement is enabled). OPTIONS is
	// routed too so browser preflights reach the CORS middleware, which
	// short-circuits them before auth.
	queryRouter := router.NewRoute().Subrouter()
	queryRouter.Use(v1mware.RequireAPIKey())
	queryRouter.HandleFunc("/query-medgemma", func(w http.ResponseWriter, r *http.Request) {
		HandleQuery(services.GetQueryService(), w, r)
	}).Methods("POST", "OPTIONS")
}
