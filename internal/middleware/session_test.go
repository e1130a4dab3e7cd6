package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userportal/internal/services"
	"userportal/pkg/utils"
)

func newGate(t *testing.T) (*SessionGate, string) {
	t.Helper()

	sessions := services.NewMemorySessionStore(time.Hour)
	gate := &SessionGate{Sessions: sessions, Secret: "test-secret"}

	token, err := sessions.Create(context.Background(), "user-1")
	require.NoError(t, err)
	return gate, token
}

func sessionCookie(token, secret string) *http.Cookie {
	return &http.Cookie{
		Name:  SessionCookieName,
		Value: utils.SignCookieValue(token, secret),
	}
}

func TestRequirePage_WithSession(t *testing.T) {
	gate, token := newGate(t)

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = UserID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/main", nil)
	req.AddCookie(sessionCookie(token, "test-secret"))
	w := httptest.NewRecorder()
	gate.RequirePage(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", gotUserID)
}

func TestRequirePage_Anonymous(t *testing.T) {
	gate, _ := newGate(t)

	w := httptest.NewRecorder()
	gate.RequirePage(http.NotFoundHandler()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/main", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireAPI_Anonymous(t *testing.T) {
	gate, _ := newGate(t)

	w := httptest.NewRecorder()
	gate.RequireAPI(http.NotFoundHandler()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/userinfo", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestToken_RejectsBadSignature(t *testing.T) {
	gate, token := newGate(t)

	req := httptest.NewRequest(http.MethodGet, "/main", nil)
	req.AddCookie(sessionCookie(token, "other-secret"))

	assert.Empty(t, gate.Token(req))
}

func TestToken_NoCookie(t *testing.T) {
	gate, _ := newGate(t)

	assert.Empty(t, gate.Token(httptest.NewRequest(http.MethodGet, "/", nil)))
}
