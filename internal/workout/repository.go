package workout

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for workout persistence.
//
// Every mutating operation takes the caller's identity explicitly and
// encodes the ownership predicate itself. DeleteAny is the admin bypass;
// role enforcement for it lives at the access-control layer, not here.
type Repository interface {
	Create(ctx context.Context, w *Workout) error
	ListByOwner(ctx context.Context, ownerID string) ([]Workout, error)
	Update(ctx context.Context, w *Workout) error
	Delete(ctx context.Context, id, ownerID string) error
	DeleteAny(ctx context.Context, id string) error
	ListAllWithOwners(ctx context.Context) ([]OwnedWorkout, error)
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewRepository creates a new SQLite-backed workout repository.
func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create validates and inserts a new workout. The ID is generated if empty.
func (r *SQLiteRepository) Create(ctx context.Context, w *Workout) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if w.OwnerID == "" {
		return fmt.Errorf("%w: owner is required", ErrInvalidWorkout)
	}
	if w.ID == "" {
		w.ID = "wo-" + uuid.NewString()[:8]
	}

	now := time.Now().UTC().Format(time.RFC3339)
	w.CreatedAt, _ = time.Parse(time.RFC3339, now) //nolint:errcheck // format is controlled
	w.UpdatedAt = w.CreatedAt

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO workouts (id, date, activity, duration_minutes, intensity, notes, distance, exercises, owner_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.Date, w.Activity, w.Duration,
		nullableString(string(w.Intensity)), nullableString(w.Notes),
		nullableFloat(w.Distance), nullableBlob(w.Exercises),
		w.OwnerID, now, now,
	)
	if err != nil {
		return fmt.Errorf("creating workout: %w", err)
	}

	return nil
}

// ListByOwner returns the caller's workouts ordered by date descending.
// The result is a one-shot snapshot; rows belonging to other owners are
// excluded by the query predicate.
func (r *SQLiteRepository) ListByOwner(ctx context.Context, ownerID string) ([]Workout, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, activity, duration_minutes, intensity, notes, distance, exercises, owner_id, created_at, updated_at
		 FROM workouts WHERE owner_id = ? ORDER BY date DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing workouts: %w", err)
	}
	defer rows.Close()

	workouts := []Workout{}
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workouts: %w", err)
	}

	return workouts, nil
}

// Update validates and rewrites a workout's fields. The row must exist
// and belong to ownerID; anything else reports ErrWorkoutNotFound so a
// non-owner cannot distinguish someone else's row from a missing one.
// On success the struct's timestamps are refreshed from the stored row
// so callers can echo it as-is.
func (r *SQLiteRepository) Update(ctx context.Context, w *Workout) error {
	if err := w.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	result, err := r.db.ExecContext(ctx,
		`UPDATE workouts
		 SET date = ?, activity = ?, duration_minutes = ?, intensity = ?, notes = ?, distance = ?, exercises = ?, updated_at = ?
		 WHERE id = ? AND owner_id = ?`,
		w.Date, w.Activity, w.Duration,
		nullableString(string(w.Intensity)), nullableString(w.Notes),
		nullableFloat(w.Distance), nullableBlob(w.Exercises),
		now, w.ID, w.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("updating workout: %w", err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return ErrWorkoutNotFound
	}

	// The row is confirmed present and owned; pull created_at back so the
	// struct mirrors the row rather than carrying zero timestamps.
	var createdAt string
	if err := r.db.QueryRowContext(ctx,
		"SELECT created_at FROM workouts WHERE id = ?", w.ID).Scan(&createdAt); err != nil {
		return fmt.Errorf("reading workout timestamps: %w", err)
	}
	w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt) //nolint:errcheck // format is controlled
	w.UpdatedAt, _ = time.Parse(time.RFC3339, now)       //nolint:errcheck // format is controlled

	return nil
}

// Delete removes a workout owned by ownerID. Reports ErrWorkoutNotFound
// when the row is absent or owned by someone else.
func (r *SQLiteRepository) Delete(ctx context.Context, id, ownerID string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM workouts WHERE id = ? AND owner_id = ?", id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting workout: %w", err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// DeleteAny removes a workout regardless of owner.
func (r *SQLiteRepository) DeleteAny(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM workouts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting workout: %w", err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// ListAllWithOwners returns every workout joined with its owner's
// username, ordered by date descending then id descending.
func (r *SQLiteRepository) ListAllWithOwners(ctx context.Context) ([]OwnedWorkout, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT w.id, w.date, w.activity, w.duration_minutes, w.intensity, w.notes, w.distance, w.exercises, w.owner_id, w.created_at, w.updated_at, u.username
		 FROM workouts w
		 JOIN users u ON u.id = w.owner_id
		 ORDER BY w.date DESC, w.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing all workouts: %w", err)
	}
	defer rows.Close()

	workouts := []OwnedWorkout{}
	for rows.Next() {
		var ow OwnedWorkout
		var intensity, notes sql.NullString
		var distance sql.NullFloat64
		var exercises sql.NullString
		var createdAt, updatedAt string

		err := rows.Scan(&ow.ID, &ow.Date, &ow.Activity, &ow.Duration,
			&intensity, &notes, &distance, &exercises,
			&ow.OwnerID, &createdAt, &updatedAt, &ow.OwnerUsername)
		if err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}

		applyNullables(&ow.Workout, intensity, notes, distance, exercises, createdAt, updatedAt)
		workouts = append(workouts, ow)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workouts: %w", err)
	}

	return workouts, nil
}

// scanWorkout scans a workout row without the owner join.
func scanWorkout(rows *sql.Rows) (*Workout, error) {
	var w Workout
	var intensity, notes sql.NullString
	var distance sql.NullFloat64
	var exercises sql.NullString
	var createdAt, updatedAt string

	err := rows.Scan(&w.ID, &w.Date, &w.Activity, &w.Duration,
		&intensity, &notes, &distance, &exercises,
		&w.OwnerID, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("scanning workout: %w", err)
	}

	applyNullables(&w, intensity, notes, distance, exercises, createdAt, updatedAt)
	return &w, nil
}

// applyNullables copies nullable column values into the workout struct.
func applyNullables(w *Workout, intensity, notes sql.NullString, distance sql.NullFloat64, exercises sql.NullString, createdAt, updatedAt string) {
	if intensity.Valid {
		w.Intensity = Intensity(intensity.String)
	}
	if notes.Valid {
		w.Notes = notes.String
	}
	if distance.Valid {
		d := distance.Float64
		w.Distance = &d
	}
	if exercises.Valid && exercises.String != "" {
		w.Exercises = json.RawMessage(exercises.String)
	}
	w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt) //nolint:errcheck // format is controlled
	w.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt) //nolint:errcheck // format is controlled
}

// nullableString converts an empty string to NULL for storage.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullableFloat converts a nil pointer to NULL for storage.
func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

// nullableBlob converts an empty JSON blob to NULL for storage.
func nullableBlob(b json.RawMessage) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
