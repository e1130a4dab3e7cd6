package routes

import (
	"github.com/go-chi/chi/v5"

	"userportal/internal/handlers"
	"userportal/internal/middleware"
)

func SetupRoutes(r *chi.Mux, h *handlers.Handler, gate *middleware.SessionGate) {
	r.Get("/", h.Home)

	// Public pages
	r.Get("/register", h.RegisterPage)
	r.Post("/register", h.Register)
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.Login)

	// Protected pages
	r.With(gate.RequirePage).Get("/main", h.MainPage)
	r.With(gate.RequirePage).Get("/profile", h.ProfilePage)

	// Protected JSON endpoint
	r.With(gate.RequireAPI).Get("/userinfo", h.UserInfo)

	r.Get("/logout", h.Logout)
}
