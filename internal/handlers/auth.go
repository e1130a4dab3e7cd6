package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"userportal/internal/config"
	"userportal/internal/middleware"
	"userportal/internal/models"
	"userportal/internal/services"
	"userportal/pkg/utils"
)

// MinimumAge is the youngest age allowed to register.
const MinimumAge = 15

const dobLayout = "2006-01-02"

// Registration result. Business-rule failures (underage, duplicate phone) and
// persistence failures all ride this shape with a 200 status; the message is
// the only distinction exposed to the caller.
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Handler serves the account routes against the injected stores.
type Handler struct {
	users    services.UserStore
	sessions services.SessionStore
	gate     *middleware.SessionGate
	secret   string
	secure   bool // Secure flag on session cookies (production)
	viewsDir string
}

func New(users services.UserStore, sessions services.SessionStore, gate *middleware.SessionGate, cfg *config.Config) *Handler {
	return &Handler{
		users:    users,
		sessions: sessions,
		gate:     gate,
		secret:   cfg.SessionSecret,
		secure:   cfg.IsProduction(),
		viewsDir: cfg.ViewsDir,
	}
}

func writeResult(w http.ResponseWriter, success bool, message string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RegisterResponse{Success: success, Message: message})
}

func opCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 5*time.Second)
}

// Register handles the registration form.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeResult(w, false, "Invalid form data.")
		return
	}

	phone := strings.TrimSpace(r.FormValue("phone"))
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	gender := strings.TrimSpace(r.FormValue("gender"))
	dobValue := strings.TrimSpace(r.FormValue("dob"))

	if phone == "" || username == "" || password == "" || gender == "" || dobValue == "" {
		writeResult(w, false, "All fields are required.")
		return
	}

	dob, err := time.Parse(dobLayout, dobValue)
	if err != nil {
		writeResult(w, false, "Invalid date of birth.")
		return
	}

	if utils.AgeOn(dob, time.Now()) < MinimumAge {
		writeResult(w, false, "You must be at least 15 years old to register.")
		return
	}

	ctx, cancel := opCtx(r)
	defer cancel()

	// Friendly pre-check; the unique index catches the race where two requests
	// register the same phone at once.
	if _, err := h.users.FindByPhone(ctx, phone); err == nil {
		writeResult(w, false, "Phone number already registered!")
		return
	} else if err != services.ErrUserNotFound {
		log.Printf("register: phone lookup failed: %v", err)
		writeResult(w, false, "Error registering user.")
		return
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("register: password hashing failed: %v", err)
		writeResult(w, false, "Error registering user.")
		return
	}

	user := &models.User{
		Phone:        phone,
		Username:     username,
		PasswordHash: passwordHash,
		Gender:       gender,
		DOB:          dob,
	}

	if err := h.users.Create(ctx, user); err != nil {
		if err == services.ErrDuplicatePhone {
			writeResult(w, false, "Phone number already registered!")
			return
		}
		log.Printf("register: insert failed: %v", err)
		writeResult(w, false, "Error registering user.")
		return
	}

	writeResult(w, true, "Registration successful! Redirecting to login...")
}

// Login handles the login form. On success the session cookie is set and the
// client is redirected to the main page; on bad credentials the response is a
// plain-text message that does not distinguish unknown phone from wrong
// password.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.Write([]byte("Invalid phone number or password."))
		return
	}

	phone := strings.TrimSpace(r.FormValue("phone"))
	password := r.FormValue("password")

	ctx, cancel := opCtx(r)
	defer cancel()

	user, err := h.users.FindByPhone(ctx, phone)
	if err != nil {
		if err != services.ErrUserNotFound {
			log.Printf("login: phone lookup failed: %v", err)
		}
		w.Write([]byte("Invalid phone number or password."))
		return
	}

	valid, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil || !valid {
		w.Write([]byte("Invalid phone number or password."))
		return
	}

	token, err := h.sessions.Create(ctx, user.ID.Hex())
	if err != nil {
		log.Printf("login: session create failed: %v", err)
		w.Write([]byte("Error logging in."))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    utils.SignCookieValue(token, h.secret),
		Path:     "/",
		MaxAge:   int(services.SessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/main", http.StatusFound)
}

// Logout destroys the session and redirects to the login page. A destruction
// failure is logged and the redirect still happens.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := h.gate.Token(r); token != "" {
		ctx, cancel := opCtx(r)
		defer cancel()
		if err := h.sessions.Destroy(ctx, token); err != nil {
			log.Printf("logout: session destroy failed: %v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/login", http.StatusFound)
}

// UserInfo returns the logged-in user's record as JSON. The password hash is
// never serialized. The record is re-fetched per request rather than cached in
// the session, so it is always current.
func (h *Handler) UserInfo(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := opCtx(r)
	defer cancel()

	user, err := h.users.FindByID(ctx, userID)
	if err == services.ErrUserNotFound {
		// Account deleted since login; treat the session as dead.
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if err != nil {
		log.Printf("userinfo: lookup failed: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}
