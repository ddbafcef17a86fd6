package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hirefusion/hirefusion-go/internal/model"
)

// TokenCookie is the name of the cookie carrying the session token.
const TokenCookie = "token"

type contextKey string

const identityKey contextKey = "identity"

// TokenVerifier validates a session token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (model.Identity, error)
}

// CookieAuth returns middleware that validates the session token from the token cookie.
func CookieAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(TokenCookie)
			if err != nil || cookie.Value == "" {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			identity, err := verifier.Verify(cookie.Value)
			if err != nil {
				slog.Debug("rejected session token", "path", r.URL.Path, "error", err)
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext extracts the verified caller identity from the request context.
func IdentityFromContext(ctx context.Context) (model.Identity, bool) {
	id, ok := ctx.Value(identityKey).(model.Identity)
	return id, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
