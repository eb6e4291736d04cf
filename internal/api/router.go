package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Health check (no auth required)
		r.Get("/health", s.handleHealth)

		// Account endpoints (no auth required)
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)

		// Protected routes: authentication gate first
		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			r.Route("/workouts", func(r chi.Router) {
				r.Get("/", s.handleListWorkouts)
				r.Post("/", s.handleCreateWorkout)
				r.Put("/{id}", s.handleUpdateWorkout)
				r.Delete("/{id}", s.handleDeleteWorkout)
			})

			// Admin routes: role gate layered after the auth gate
			r.Route("/admin", func(r chi.Router) {
				r.Use(s.requireAdmin)

				r.Get("/users", s.handleListUsers)
				r.Put("/users/{id}/role", s.handleSetRole)
				r.Get("/workouts", s.handleAdminListWorkouts)
				r.Delete("/workouts/{id}", s.handleAdminDeleteWorkout)
			})
		})
	})

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
