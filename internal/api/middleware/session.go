package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/medicare-app/backend/internal/domain/entities"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionResolver looks up the session behind a cookie token.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*entities.Session, error)
}

// SessionMiddleware resolves the session cookie, if any, and attaches the
// session to the request context. It never rejects a request; handlers that
// need authentication use RequireSession or check the context themselves.
func SessionMiddleware(resolver SessionResolver, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err == nil && cookie.Value != "" {
				if session, err := resolver.ResolveSession(r.Context(), cookie.Value); err == nil {
					ctx := context.WithValue(r.Context(), sessionContextKey, session)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SessionFromContext returns the session attached by SessionMiddleware.
func SessionFromContext(ctx context.Context) (*entities.Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(*entities.Session)
	return session, ok
}

// RequireSession rejects requests that carry no valid session.
func RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFromContext(r.Context()); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
			return
		}
		next(w, r)
	}
}
