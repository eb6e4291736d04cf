package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fittrack/fittrack-core/internal/workout"
)

// workoutRequest is the request body for creating or updating a workout.
// Duration is accepted as either a JSON number or a numeric string and
// coerced to whole minutes.
type workoutRequest struct {
	Date      string          `json:"date"`
	Activity  string          `json:"activity"`
	Duration  any             `json:"duration"`
	Intensity string          `json:"intensity"`
	Notes     string          `json:"notes"`
	Distance  *float64        `json:"distance"`
	Exercises json.RawMessage `json:"exercises"`
}

// coerceDuration converts a decoded JSON duration value to whole minutes.
func coerceDuration(v any) (int, error) {
	switch d := v.(type) {
	case float64:
		return int(d), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(d), 64)
		if err != nil {
			return 0, fmt.Errorf("duration must be a number")
		}
		return int(f), nil
	case nil:
		return 0, fmt.Errorf("duration is required")
	default:
		return 0, fmt.Errorf("duration must be a number")
	}
}

// toWorkout converts the request payload to a domain workout owned by ownerID.
func (req *workoutRequest) toWorkout(ownerID string) (*workout.Workout, error) {
	duration, err := coerceDuration(req.Duration)
	if err != nil {
		return nil, err
	}

	return &workout.Workout{
		Date:      req.Date,
		Activity:  req.Activity,
		Duration:  duration,
		Intensity: workout.Intensity(req.Intensity),
		Notes:     req.Notes,
		Distance:  req.Distance,
		Exercises: req.Exercises,
		OwnerID:   ownerID,
	}, nil
}

// handleCreateWorkout logs a new workout for the authenticated caller.
func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}

	var req workoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	wk, err := req.toWorkout(claims.Subject)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if err := s.workouts.Create(r.Context(), wk); err != nil {
		if errors.Is(err, workout.ErrInvalidWorkout) {
			writeBadRequest(w, err.Error())
			return
		}
		s.logger.Error("creating workout", "owner_id", claims.Subject, "error", err)
		writeInternalError(w, "failed to create workout")
		return
	}

	s.exportWorkoutMetric(wk)

	writeJSON(w, http.StatusCreated, wk)
}

// handleListWorkouts returns the caller's workouts, newest first.
func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}

	workouts, err := s.workouts.ListByOwner(r.Context(), claims.Subject)
	if err != nil {
		s.logger.Error("listing workouts", "owner_id", claims.Subject, "error", err)
		writeInternalError(w, "failed to list workouts")
		return
	}

	writeJSON(w, http.StatusOK, workouts)
}

// handleUpdateWorkout rewrites a workout owned by the caller.
//
// A row that is absent or owned by someone else reports the same
// not-found, so non-owners cannot probe for existing ids.
func (s *Server) handleUpdateWorkout(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}

	var req workoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	wk, err := req.toWorkout(claims.Subject)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	wk.ID = chi.URLParam(r, "id")

	if err := s.workouts.Update(r.Context(), wk); err != nil {
		switch {
		case errors.Is(err, workout.ErrInvalidWorkout):
			writeBadRequest(w, err.Error())
		case errors.Is(err, workout.ErrWorkoutNotFound):
			writeNotFound(w, "workout not found")
		default:
			s.logger.Error("updating workout", "workout_id", wk.ID, "error", err)
			writeInternalError(w, "failed to update workout")
		}
		return
	}

	writeJSON(w, http.StatusOK, wk)
}

// handleDeleteWorkout removes a workout owned by the caller.
func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}

	id := chi.URLParam(r, "id")
	if err := s.workouts.Delete(r.Context(), id, claims.Subject); err != nil {
		if errors.Is(err, workout.ErrWorkoutNotFound) {
			writeNotFound(w, "workout not found")
			return
		}
		s.logger.Error("deleting workout", "workout_id", id, "error", err)
		writeInternalError(w, "failed to delete workout")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
}

// exportWorkoutMetric records a created workout in the metrics store.
// A nil client is a no-op; export never blocks or fails the request.
func (s *Server) exportWorkoutMetric(wk *workout.Workout) {
	if s.metrics == nil {
		return
	}

	distance := 0.0
	if wk.Distance != nil {
		distance = *wk.Distance
	}

	category := workout.CategoryFor(wk.Activity)
	s.metrics.WriteWorkout(wk.OwnerID, category.Name, string(wk.Intensity), wk.Duration, distance)
}
