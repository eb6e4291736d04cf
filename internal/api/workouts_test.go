package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fittrack/fittrack-core/internal/workout"
)

func TestWorkouts_RoundTrip(t *testing.T) {
	_, router := testServer(t)
	_, token := registerAndLogin(t, router, "alice", "pw1")

	w := doJSON(t, router, http.MethodPost, "/api/v1/workouts", token, map[string]any{
		"date":      "2024-05-01",
		"activity":  "running",
		"duration":  30,
		"intensity": "medium",
		"notes":     "morning run",
		"distance":  5.2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/workouts", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}

	var workouts []workout.Workout
	if err := json.Unmarshal(w.Body.Bytes(), &workouts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(workouts) != 1 {
		t.Fatalf("got %d workouts, want 1", len(workouts))
	}

	got := workouts[0]
	if got.Date != "2024-05-01" || got.Activity != "running" || got.Duration != 30 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if got.Intensity != workout.IntensityMedium || got.Notes != "morning run" {
		t.Errorf("optional fields mismatch: %+v", got)
	}
	if got.Distance == nil || *got.Distance != 5.2 {
		t.Errorf("Distance = %v, want 5.2", got.Distance)
	}
}

func TestWorkouts_DurationCoercion(t *testing.T) {
	_, router := testServer(t)
	_, token := registerAndLogin(t, router, "alice", "pw1")

	tests := []struct {
		name     string
		duration any
		want     int
		status   int
	}{
		{"integer", 45, 45, http.StatusCreated},
		{"float truncated", 30.9, 30, http.StatusCreated},
		{"numeric string", "25", 25, http.StatusCreated},
		{"garbage string", "soon", 0, http.StatusBadRequest},
		{"missing", nil, 0, http.StatusBadRequest},
		{"zero", 0, 0, http.StatusBadRequest},
		{"negative", -10, 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := map[string]any{"date": "2024-05-01", "activity": "running"}
			if tt.duration != nil {
				body["duration"] = tt.duration
			}
			w := doJSON(t, router, http.MethodPost, "/api/v1/workouts", token, body)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d, body = %s", w.Code, tt.status, w.Body.String())
			}
			if tt.status != http.StatusCreated {
				return
			}
			var created workout.Workout
			if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if created.Duration != tt.want {
				t.Errorf("Duration = %d, want %d", created.Duration, tt.want)
			}
		})
	}
}

func TestWorkouts_CategoryFieldRules(t *testing.T) {
	_, router := testServer(t)
	_, token := registerAndLogin(t, router, "alice", "pw1")

	// Distance on a gym session is dropped, exercise blob kept
	w := doJSON(t, router, http.MethodPost, "/api/v1/workouts", token, map[string]any{
		"date": "2024-05-01", "activity": "gym", "duration": 60,
		"distance":  3.0,
		"exercises": []map[string]any{{"name": "squat", "sets": 3, "reps": 10, "weight": 60}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	var gym workout.Workout
	if err := json.Unmarshal(w.Body.Bytes(), &gym); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if gym.Distance != nil {
		t.Error("distance should be dropped for gym sessions")
	}
	if len(gym.Exercises) == 0 {
		t.Error("exercises should be kept for gym sessions")
	}

	// Exercises on a run are dropped, distance kept
	w = doJSON(t, router, http.MethodPost, "/api/v1/workouts", token, map[string]any{
		"date": "2024-05-02", "activity": "running", "duration": 30,
		"distance":  5.0,
		"exercises": []map[string]any{{"name": "squat", "sets": 3, "reps": 10, "weight": 60}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	var run workout.Workout
	if err := json.Unmarshal(w.Body.Bytes(), &run); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if run.Distance == nil {
		t.Error("distance should be kept for running")
	}
	if len(run.Exercises) != 0 {
		t.Error("exercises should be dropped for running")
	}
}

func TestWorkouts_ListScopedToCaller(t *testing.T) {
	_, router := testServer(t)
	aliceID, aliceToken := registerAndLogin(t, router, "alice", "pw1")
	_, bobToken := registerAndLogin(t, router, "bob", "pw2")

	for _, body := range []map[string]any{
		{"date": "2024-05-01", "activity": "running", "duration": 30},
		{"date": "2024-05-02", "activity": "cycling", "duration": 40},
	} {
		if w := doJSON(t, router, http.MethodPost, "/api/v1/workouts", aliceToken, body); w.Code != http.StatusCreated {
			t.Fatalf("create status = %d", w.Code)
		}
	}
	if w := doJSON(t, router, http.MethodPost, "/api/v1/workouts", bobToken, map[string]any{
		"date": "2024-05-03", "activity": "swimming", "duration": 20,
	}); w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/workouts", aliceToken, nil)
	var workouts []workout.Workout
	if err := json.Unmarshal(w.Body.Bytes(), &workouts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(workouts) != 2 {
		t.Fatalf("alice sees %d workouts, want 2", len(workouts))
	}
	for _, wk := range workouts {
		if wk.OwnerID != aliceID {
			t.Errorf("leaked workout owned by %q", wk.OwnerID)
		}
	}

	// Newest first
	if workouts[0].Date != "2024-05-02" {
		t.Errorf("first date = %q, want 2024-05-02", workouts[0].Date)
	}
}

func TestWorkouts_DeleteOwnershipScoped(t *testing.T) {
	_, router := testServer(t)
	_, aliceToken := registerAndLogin(t, router, "alice", "pw1")
	_, bobToken := registerAndLogin(t, router, "bob", "pw2")

	w := doJSON(t, router, http.MethodPost, "/api/v1/workouts", aliceToken, map[string]any{
		"date": "2024-05-01", "activity": "running", "duration": 30,
	})
	var created workout.Workout
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// Bob's delete reports not found, not forbidden
	w = doJSON(t, router, http.MethodDelete, "/api/v1/workouts/"+created.ID, bobToken, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("cross-user delete status = %d, want 404", w.Code)
	}

	// Alice can delete her own row
	w = doJSON(t, router, http.MethodDelete, "/api/v1/workouts/"+created.ID, aliceToken, nil)
	if w.Code != http.StatusOK {
		t.Errorf("owner delete status = %d, want 200", w.Code)
	}

	// Row is gone
	w = doJSON(t, router, http.MethodDelete, "/api/v1/workouts/"+created.ID, aliceToken, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("repeat delete status = %d, want 404", w.Code)
	}
}

func TestWorkouts_UpdateValidation(t *testing.T) {
	_, router := testServer(t)
	_, token := registerAndLogin(t, router, "alice", "pw1")

	w := doJSON(t, router, http.MethodPost, "/api/v1/workouts", token, map[string]any{
		"date": "2024-05-01", "activity": "running", "duration": 30,
	})
	var created workout.Workout
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// Missing required field on update is a 400
	w = doJSON(t, router, http.MethodPut, "/api/v1/workouts/"+created.ID, token, map[string]any{
		"activity": "running", "duration": 30,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("update without date status = %d, want 400", w.Code)
	}

	// Valid update succeeds and echoes the new fields
	w = doJSON(t, router, http.MethodPut, "/api/v1/workouts/"+created.ID, token, map[string]any{
		"date": "2024-05-01", "activity": "running", "duration": "45",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", w.Code, w.Body.String())
	}
	var updated workout.Workout
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if updated.Duration != 45 {
		t.Errorf("Duration = %d, want 45", updated.Duration)
	}

	// The response echoes the row, including its real timestamps
	if updated.CreatedAt.IsZero() || updated.UpdatedAt.IsZero() {
		t.Errorf("update response has zero timestamps: created=%v updated=%v", updated.CreatedAt, updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("CreatedAt = %v, want original %v", updated.CreatedAt, created.CreatedAt)
	}
}
