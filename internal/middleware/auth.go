package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rngenius/rngenius-go/internal/crypto"
)

type contextKey string

const requesterIDKey contextKey = "requesterID"

// JWTAuth returns middleware that resolves the requester id from the
// Authorization header. Both "Bearer <token>" and a bare token are accepted;
// mobile clients send the raw token.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAuthError(w, "Missing authorization header")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == "" {
				writeAuthError(w, "Invalid authorization header")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeAuthError(w, "Invalid or expired token")
				return
			}

			requesterID, err := claims.RequesterID()
			if err != nil {
				writeAuthError(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), requesterIDKey, requesterID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequesterIDFromContext extracts the authenticated requester id from the
// request context.
func RequesterIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(requesterIDKey).(int64)
	return id, ok
}

func writeAuthError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"field": "authorization", "message": msg})
}
