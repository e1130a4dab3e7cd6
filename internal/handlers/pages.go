package handlers

import (
	"net/http"
	"path/filepath"
)

// Home redirects by session presence: authenticated clients to the main page,
// everyone else to the login page.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := opCtx(r)
	defer cancel()

	if _, ok, _ := h.sessions.Validate(ctx, h.gate.Token(r)); ok {
		http.Redirect(w, r, "/main", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) servePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(h.viewsDir, name))
	}
}

// RegisterPage serves the registration form (public).
func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.servePage("register.html")(w, r)
}

// LoginPage serves the login form (public).
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.servePage("login.html")(w, r)
}

// MainPage serves the main page (protected).
func (h *Handler) MainPage(w http.ResponseWriter, r *http.Request) {
	h.servePage("main.html")(w, r)
}

// ProfilePage serves the profile page (protected).
func (h *Handler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	h.servePage("profile.html")(w, r)
}
