package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"ceremonia/internal/api/v1/dto"
	"ceremonia/internal/auth"
	"ceremonia/internal/logger"
)

// Injected key type to avoid context collisions
type contextKey string

const UserContextKey = contextKey("user")

// AuthMiddleware validates the bearer token and injects the numeric user id
// into the request context.
func AuthMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.New()
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Warn().Str("path", r.URL.Path).Msg("Authorization header missing")
				unauthorized(w, "Authorization header missing")
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn().Str("path", r.URL.Path).Msg("Invalid authorization header")
				unauthorized(w, "Invalid authorization header")
				return
			}
			claims, err := auth.ValidateToken(jwtSecret, parts[1])
			if err != nil {
				log.Warn().Err(err).Msg("Invalid token")
				unauthorized(w, "Invalid or expired token")
				return
			}
			userID, err := claims.UserID()
			if err != nil {
				log.Warn().Err(err).Msg("Invalid token subject")
				unauthorized(w, "Invalid or expired token")
				return
			}
			ctx := context.WithValue(r.Context(), UserContextKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID extracts the authenticated user id placed by AuthMiddleware.
func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(UserContextKey).(int)
	return id, ok
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(dto.Envelope{
		Success: false,
		Error:   msg,
		Code:    "TOKEN_INVALID",
	})
}
