package models

import "math"

// Calories burned per hour for each workout category.
var caloriesPerHour = map[Category]int{
	CategoryCardio:   500,
	CategoryStrength: 400,
	CategoryHIIT:     600,
	CategoryYoga:     200,
	CategoryRunning:  550,
	CategoryCycling:  450,
	CategorySwimming: 500,
	CategoryWalking:  250,
	CategoryOther:    350,
}

const defaultCaloriesPerHour = 350

// CaloriesFromSteps converts a step count into calories for a given body weight.
// Formula: steps * weight * 0.0005 (calories per step per kg of body weight).
func CaloriesFromSteps(steps int, weightKg float64) int {
	return int(math.Round(float64(steps) * weightKg * 0.0005))
}

// CaloriesFromWorkout converts a workout duration into calories using the
// per-category hourly rate. Unknown categories use the default rate.
func CaloriesFromWorkout(durationMinutes int, category Category) int {
	rate, ok := caloriesPerHour[category]
	if !ok {
		rate = defaultCaloriesPerHour
	}
	return int(math.Round(float64(rate) * float64(durationMinutes) / 60))
}

// RateFor returns the hourly calorie rate for a category.
func RateFor(category Category) int {
	if rate, ok := caloriesPerHour[category]; ok {
		return rate
	}
	return defaultCaloriesPerHour
}
