package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/abdhack/medgemma-gateway/internal/config"
	"github.com/abdhack/medgemma-gateway/pkg/httpext"
)

// ExtractAPIKey pulls the bearer credential from the Authorization header
func ExtractAPIKey(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// RequireAPIKey verifies the caller's credential against the configured key.
// A missing credential is allowed unless enforcement is enabled; a supplied
// credential must always match.
func RequireAPIKey() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ExtractAPIKey(r)

			if key == "" {
				if config.GetRequireAPIKey() {
					log.Warn().
						Str("path", r.URL.Path).
						Str("client_ip", r.RemoteAddr).
						Msg("Request rejected - API key required but not supplied")
					httpext.JsonError(w, "API key required", http.StatusUnauthorized)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			if subtle.ConstantTimeCompare([]byte(key), []byte(config.GetAPIKey())) != 1 {
				log.Warn().
					Str("path", r.URL.Path).
					Str("client_ip", r.RemoteAddr).
					Msg("Request rejected - invalid API key")
				httpext.JsonError(w, "Invalid API key", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
