package workout

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for workout operations.
var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrInvalidWorkout  = errors.New("invalid workout")
)

// Intensity is the subjective effort level of a workout.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// IsValidIntensity returns true for a recognised intensity value.
func IsValidIntensity(i Intensity) bool {
	switch i {
	case IntensityLow, IntensityMedium, IntensityHigh:
		return true
	}
	return false
}

// Category describes an activity class and which optional fields apply to it.
// A single table governs field meaning instead of string checks scattered
// through validation.
type Category struct {
	Name            string
	TracksDistance  bool
	TracksExercises bool
}

// categories is the closed set of activity categories. Endurance
// activities track distance; gym sessions track a structured exercise
// list; anything unrecognised falls back to "other" with neither.
var categories = map[string]Category{
	"running":  {Name: "running", TracksDistance: true},
	"swimming": {Name: "swimming", TracksDistance: true},
	"cycling":  {Name: "cycling", TracksDistance: true},
	"hiking":   {Name: "hiking", TracksDistance: true},
	"walking":  {Name: "walking", TracksDistance: true},
	"gym":      {Name: "gym", TracksExercises: true},
}

// categoryOther is the fallback for free-text activities outside the table.
var categoryOther = Category{Name: "other"}

// CategoryFor resolves an activity label to its category, case-insensitively.
func CategoryFor(activity string) Category {
	if c, ok := categories[strings.ToLower(strings.TrimSpace(activity))]; ok {
		return c
	}
	return categoryOther
}

// Workout represents a single logged training session.
type Workout struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Activity  string          `json:"activity"`
	Duration  int             `json:"duration"`
	Intensity Intensity       `json:"intensity,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	Distance  *float64        `json:"distance,omitempty"`
	Exercises json.RawMessage `json:"exercises,omitempty"`
	OwnerID   string          `json:"owner_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// OwnedWorkout pairs a workout with its owner's username for admin listings.
type OwnedWorkout struct {
	Workout
	OwnerUsername string `json:"owner_username"`
}

// Validate checks required fields and enum values, then normalises
// category-dependent fields: distance is kept only for categories that
// track it, the exercise blob only for categories that track exercises.
func (w *Workout) Validate() error {
	if strings.TrimSpace(w.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidWorkout)
	}
	if _, err := time.Parse("2006-01-02", w.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidWorkout)
	}
	if strings.TrimSpace(w.Activity) == "" {
		return fmt.Errorf("%w: activity is required", ErrInvalidWorkout)
	}
	if w.Duration <= 0 {
		return fmt.Errorf("%w: duration must be a positive number of minutes", ErrInvalidWorkout)
	}
	if w.Intensity != "" && !IsValidIntensity(w.Intensity) {
		return fmt.Errorf("%w: intensity must be low, medium, or high", ErrInvalidWorkout)
	}
	if w.Distance != nil && *w.Distance <= 0 {
		return fmt.Errorf("%w: distance must be positive", ErrInvalidWorkout)
	}
	if len(w.Exercises) > 0 && !json.Valid(w.Exercises) {
		return fmt.Errorf("%w: exercises must be valid JSON", ErrInvalidWorkout)
	}

	category := CategoryFor(w.Activity)
	if !category.TracksDistance {
		w.Distance = nil
	}
	if !category.TracksExercises {
		w.Exercises = nil
	}

	return nil
}
