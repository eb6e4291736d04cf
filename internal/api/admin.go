package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fittrack/fittrack-core/internal/auth"
	"github.com/fittrack/fittrack-core/internal/workout"
)

// userSummary is the admin-facing view of a user account.
type userSummary struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Role     auth.Role `json:"role"`
}

// setRoleRequest is the request body for PUT /admin/users/{id}/role.
type setRoleRequest struct {
	Role string `json:"role"`
}

// handleListUsers returns all user accounts ordered by id.
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.logger.Error("listing users", "error", err)
		writeInternalError(w, "failed to list users")
		return
	}

	summaries := make([]userSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, userSummary{ID: u.ID, Username: u.Username, Role: u.Role})
	}

	writeJSON(w, http.StatusOK, summaries)
}

// handleSetRole changes a user's role.
//
// Tokens the target already holds keep their embedded role until they
// expire; only freshly issued tokens reflect the change.
func (s *Server) handleSetRole(w http.ResponseWriter, r *http.Request) {
	var req setRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	role := auth.Role(req.Role)
	id := chi.URLParam(r, "id")
	if err := s.users.UpdateRole(r.Context(), id, role); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidRole):
			writeBadRequest(w, "role must be user or admin")
		case errors.Is(err, auth.ErrUserNotFound):
			writeNotFound(w, "user not found")
		default:
			s.logger.Error("updating role", "user_id", id, "error", err)
			writeInternalError(w, "failed to update role")
		}
		return
	}

	s.logger.Info("role changed", "user_id", id, "role", role)

	writeJSON(w, http.StatusOK, map[string]string{"id": id, "role": string(role)})
}

// handleAdminListWorkouts returns every workout joined with its owner's
// username, newest first.
func (s *Server) handleAdminListWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := s.workouts.ListAllWithOwners(r.Context())
	if err != nil {
		s.logger.Error("listing all workouts", "error", err)
		writeInternalError(w, "failed to list workouts")
		return
	}

	writeJSON(w, http.StatusOK, workouts)
}

// handleAdminDeleteWorkout removes any user's workout. Admins can delete
// but not edit other users' workouts; there is no admin update route.
func (s *Server) handleAdminDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.workouts.DeleteAny(r.Context(), id); err != nil {
		if errors.Is(err, workout.ErrWorkoutNotFound) {
			writeNotFound(w, "workout not found")
			return
		}
		s.logger.Error("deleting workout", "workout_id", id, "error", err)
		writeInternalError(w, "failed to delete workout")
		return
	}

	claims, _ := claimsFromContext(r.Context())
	if claims != nil {
		s.logger.Info("workout deleted by admin", "workout_id", id, "admin_id", claims.Subject)
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
}
