package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"ecoclean/internal/application/auth"
	"ecoclean/internal/delivery/http/handler"
)

// Auth middleware validates the bearer token when auth is enabled
func Auth(authService auth.Service) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !authService.Enabled() {
				next(w, r)
				return
			}

			token := extractToken(r)
			if token == "" {
				handler.SendError(w, "Authorization required", http.StatusUnauthorized)
				return
			}

			if err := authService.ValidateToken(token); err != nil {
				slog.Warn("Rejected API token", "path", r.URL.Path, "remote", r.RemoteAddr)
				handler.SendError(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			next(w, r)
		}
	}
}

func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
