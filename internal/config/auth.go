package config

import (
	"strings"
	"sync"
)

// Auth config is read lazily so values from a .env file loaded at startup are
// honored; test overrides installed via the Set helpers take precedence.
var (
	apiKeyMu sync.RWMutex
	// apiKeyOverride, when non-nil, replaces the environment-sourced key
	apiKeyOverride *string

	requireAPIKeyMu sync.RWMutex
	// requireAPIKeyOverride, when non-nil, replaces the environment-sourced flag
	requireAPIKeyOverride *bool
)

// GetAPIKey returns the shared secret compared against caller credentials.
// In production, this must be overridden via the API_KEY environment variable.
func GetAPIKey() string {
	apiKeyMu.RLock()
	defer apiKeyMu.RUnlock()
	if apiKeyOverride != nil {
		return *apiKeyOverride
	}
	return GetEnvOrDefault("API_KEY", "your-secure-api-key-here")
}

// SetAPIKey temporarily changes the API key and returns a function to restore it
// This is primarily used for testing
func SetAPIKey(key string) func() {
	apiKeyMu.Lock()
	previous := apiKeyOverride
	apiKeyOverride = &key
	apiKeyMu.Unlock()

	return func() {
		apiKeyMu.Lock()
		apiKeyOverride = previous
		apiKeyMu.Unlock()
	}
}

// GetRequireAPIKey reports whether API key enforcement is enabled
func GetRequireAPIKey() bool {
	requireAPIKeyMu.RLock()
	defer requireAPIKeyMu.RUnlock()
	if requireAPIKeyOverride != nil {
		return *requireAPIKeyOverride
	}
	return strings.EqualFold(GetEnvOrDefault("REQUIRE_API_KEY", "false"), "true")
}

// SetRequireAPIKey temporarily toggles enforcement and returns a function to restore it
// This is primarily used for testing
func SetRequireAPIKey(required bool) func() {
	requireAPIKeyMu.Lock()
	previous := requireAPIKeyOverride
	requireAPIKeyOverride = &required
	requireAPIKeyMu.Unlock()

	return func() {
		requireAPIKeyMu.Lock()
		requireAPIKeyOverride = previous
		requireAPIKeyMu.Unlock()
	}
}
