package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abdhack/medgemma-gateway/internal/config"
	"github.com/abdhack/medgemma-gateway/internal/services"
)

func TestMainServer(t *testing.T) {
	svcs, err := services.InitializeServices()
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	// Start test server
	server := httptest.NewServer(setupRouter(svcs))
	defer server.Close()

	t.Run("root endpoint", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/")
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status code %d, got %d", http.StatusOK, resp.StatusCode)
		}

		var info struct {
			Service     string `json:"service"`
			GradioSpace string `json:"gradio_space"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
			t.Fatalf("Failed to decode info response: %v", err)
		}
		if info.Service == "" || info.GradioSpace == "" {
			t.Errorf("Expected populated service info, got %+v", info)
		}
	})

	t.Run("query endpoint rejects empty text", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/query-medgemma", "application/json", strings.NewReader(`{
			"message": {"text": "   ", "files": []}
		}`))
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusUnprocessableEntity {
			t.Errorf("Expected status code %d, got %d", http.StatusUnprocessableEntity, resp.StatusCode)
		}
	})

	t.Run("query endpoint enforces API key", func(t *testing.T) {
		restore := config.SetRequireAPIKey(true)
		defer restore()

		resp, err := http.Post(server.URL+"/query-medgemma", "application/json", strings.NewReader(`{
			"message": {"text": "What are the symptoms of diabetes?"}
		}`))
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("Expected status code %d, got %d", http.StatusUnauthorized, resp.StatusCode)
		}
	})

	t.Run("query endpoint answers CORS preflight", func(t *testing.T) {
		restore := config.SetRequireAPIKey(true)
		defer restore()

		req, err := http.NewRequest(http.MethodOptions, server.URL+"/query-medgemma", nil)
		if err != nil {
			t.Fatalf("Failed to create request: %v", err)
		}
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Method", "POST")
		req.Header.Set("Access-Control-Request-Headers", "Authorization")

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNoContent {
			t.Errorf("Expected status code %d, got %d", http.StatusNoContent, resp.StatusCode)
		}
		if got := resp.Header.Get("Access-Control-Allow-Origin"); got == "" {
			t.Error("Expected Access-Control-Allow-Origin header on preflight response")
		}
		if got := resp.Header.Get("Access-Control-Allow-Headers"); got == "" {
			t.Error("Expected Access-Control-Allow-Headers header on preflight response")
		}
	})

	t.Run("invalid endpoint", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/invalid")
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status code %d, got %d", http.StatusNotFound, resp.StatusCode)
		}
	})
}
