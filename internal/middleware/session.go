package middleware

import (
	"context"
	"net/http"

	"userportal/internal/services"
	"userportal/pkg/utils"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session_token"

type contextKey string

const userIDKey contextKey = "user_id"

// UserID returns the authenticated user's ID placed in the context by the
// session gate.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// SessionGate checks that a request carries a valid session before the wrapped
// handler runs. The same missing-session condition has two presentations:
// page routes redirect to /login, the JSON endpoint answers 401.
type SessionGate struct {
	Sessions services.SessionStore
	Secret   string
}

// Token extracts and verifies the session token from the request cookie.
// Returns "" for a missing, malformed, or tampered cookie.
func (g *SessionGate) Token(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	token, err := utils.VerifyCookieValue(cookie.Value, g.Secret)
	if err != nil {
		return ""
	}
	return token
}

func (g *SessionGate) authenticate(r *http.Request) (string, bool) {
	userID, ok, err := g.Sessions.Validate(r.Context(), g.Token(r))
	if err != nil || !ok {
		return "", false
	}
	return userID, true
}

// RequirePage gates a protected page: anonymous requests are redirected to the
// login page.
func (g *SessionGate) RequirePage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := g.authenticate(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

// RequireAPI gates a JSON endpoint: anonymous requests get 401 Unauthorized.
func (g *SessionGate) RequireAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := g.authenticate(r)
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}
