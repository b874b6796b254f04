package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaloriesFromSteps(t *testing.T) {
	tests := []struct {
		steps    int
		weightKg float64
		expected int
	}{
		{0, 70, 0},
		{1000, 70, 35},
		{10000, 70, 350},
		{10000, 80, 400},
		{1, 70, 0},  // 0.035 rounds down
		{15, 70, 1}, // 0.525 rounds up
		{28, 70, 1}, // 0.98 rounds up
		{29, 70, 1}, // 1.015 rounds down
		{200000, 70, 7000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, CaloriesFromSteps(tt.steps, tt.weightKg),
			"steps=%d weight=%v", tt.steps, tt.weightKg)
	}
}

func TestCaloriesFromWorkout_KnownCategories(t *testing.T) {
	tests := []struct {
		category Category
		minutes  int
		expected int
	}{
		{CategoryCardio, 60, 500},
		{CategoryStrength, 60, 400},
		{CategoryHIIT, 60, 600},
		{CategoryYoga, 60, 200},
		{CategoryRunning, 60, 550},
		{CategoryRunning, 30, 275},
		{CategoryCycling, 60, 450},
		{CategorySwimming, 60, 500},
		{CategoryWalking, 60, 250},
		{CategoryOther, 60, 350},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, CaloriesFromWorkout(tt.minutes, tt.category),
			"category=%s minutes=%d", tt.category, tt.minutes)
	}
}

func TestCaloriesFromWorkout_UnknownCategoryUsesDefault(t *testing.T) {
	assert.Equal(t, 350, CaloriesFromWorkout(60, Category("Parkour")))
	assert.Equal(t, 175, CaloriesFromWorkout(30, Category("Parkour")))
}

func TestCaloriesFromWorkout_RoundsHalfUp(t *testing.T) {
	// 200 * 45 / 60 = 150
	assert.Equal(t, 150, CaloriesFromWorkout(45, CategoryYoga))
	// 550 * 7 / 60 = 64.16
	assert.Equal(t, 64, CaloriesFromWorkout(7, CategoryRunning))
	// 450 * 2 / 60 = 15
	assert.Equal(t, 15, CaloriesFromWorkout(2, CategoryCycling))
}

func TestRateFor(t *testing.T) {
	assert.Equal(t, 600, RateFor(CategoryHIIT))
	assert.Equal(t, 350, RateFor(Category("unknown")))
}
