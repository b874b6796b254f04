package models

import (
	"fmt"
	"time"
)

type Category string

const (
	CategoryCardio   Category = "Cardio"
	CategoryStrength Category = "Strength"
	CategoryHIIT     Category = "HIIT"
	CategoryYoga     Category = "Yoga"
	CategoryRunning  Category = "Running"
	CategoryCycling  Category = "Cycling"
	CategorySwimming Category = "Swimming"
	CategoryWalking  Category = "Walking"
	CategoryOther    Category = "Other"
)

// WorkoutEntry is a single logged workout, either timer-based or manually entered.
// ActualElapsedSeconds is only set for timer-based workouts.
type WorkoutEntry struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	DurationMinutes      int       `json:"duration"`
	Calories             int       `json:"calories"`
	Category             Category  `json:"type"`
	Date                 time.Time `json:"date"`
	ActualElapsedSeconds int       `json:"actualDuration,omitempty"`
}

// Validate rejects entries before any state is mutated.
func (w *WorkoutEntry) Validate() error {
	if w.Name == "" {
		return fmt.Errorf("%w: workout name is required", ErrValidation)
	}
	if w.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be a positive number of minutes", ErrValidation)
	}
	if w.Calories < 0 {
		return fmt.Errorf("%w: calories must not be negative", ErrValidation)
	}
	if w.Category == "" {
		return fmt.Errorf("%w: workout category is required", ErrValidation)
	}
	return nil
}
