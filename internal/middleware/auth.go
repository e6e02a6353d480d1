package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const userIDKey contextKey = "user_id"

// TokenVerifier is the slice of the auth service this middleware needs.
type TokenVerifier interface {
	VerifyToken(token string) (int64, error)
}

// GetUserIDFromContext returns the authenticated user id set by WithTokenAuth.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// WithTokenAuth guards a subtree with "Authorization: Token <tok>" headers.
// The 401 bodies match the upstream API so clients can rely on them.
func WithTokenAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
				return
			}
			token, ok := strings.CutPrefix(header, "Token ")
			if !ok {
				writeDetail(w, http.StatusUnauthorized, "Invalid token.")
				return
			}
			userID, err := verifier.VerifyToken(token)
			if err != nil {
				writeDetail(w, http.StatusUnauthorized, "Invalid token.")
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
