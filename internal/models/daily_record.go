package models

import "time"

// DailyRecord is the accumulated steps and calories for one calendar date.
type DailyRecord struct {
	Date        string    `json:"date"`
	Steps       int       `json:"steps"`
	Calories    int       `json:"calories"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// StepsEntry is the stored value under a steps_<date> key.
type StepsEntry struct {
	Date        string    `json:"date"`
	Steps       int       `json:"steps"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// CaloriesEntry is the stored value under a calories_<date> key.
type CaloriesEntry struct {
	Date        string    `json:"date"`
	Calories    int       `json:"calories"`
	LastUpdated time.Time `json:"lastUpdated"`
}

const (
	StepsKeyPrefix    = "steps_"
	CaloriesKeyPrefix = "calories_"
	TrackingKey       = "isTracking"
	HealthMetricsKey  = "healthMetrics"
	WorkoutsKey       = "workouts"
	ClaimedCouponsKey = "claimedCoupons"
)

// DateOf formats a timestamp as an ISO-8601 calendar date.
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}

func StepsKey(date string) string {
	return StepsKeyPrefix + date
}

func CaloriesKey(date string) string {
	return CaloriesKeyPrefix + date
}
