package models

import (
	"fmt"

	"github.com/gookit/validate"
)

// HealthMetrics holds the user profile used for calorie derivation.
// Stored as JSON under the healthMetrics key.
type HealthMetrics struct {
	Height    float64 `json:"height" validate:"required|min:1"`
	Weight    float64 `json:"weight" validate:"required|min:1"`
	DailyGoal int     `json:"dailyGoal" validate:"required|min:1"`
	Age       int     `json:"age" validate:"required|min:1"`
}

// Validate rejects non-positive fields before any state is mutated.
func (h *HealthMetrics) Validate() error {
	v := validate.Struct(h)
	if !v.Validate() {
		return fmt.Errorf("%w: %s", ErrValidation, v.Errors.One())
	}
	return nil
}

// BMI derives the body mass index from height (cm) and weight (kg).
func (h *HealthMetrics) BMI() float64 {
	if h.Height <= 0 {
		return 0
	}
	m := h.Height / 100
	return h.Weight / (m * m)
}
