package models

import "time"

type MetricType string

const (
	MetricSteps    MetricType = "steps"
	MetricCalories MetricType = "calories"
)

// RewardDefinition is a fixed benefit unlocked once a lifetime metric crosses
// its threshold. Definitions are static and never persisted.
type RewardDefinition struct {
	ID          string
	Title       string
	Description string
	Requirement string
	Metric      MetricType
	Threshold   int
}

// RewardView is the evaluated state of one reward for the current lifetime totals.
type RewardView struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Requirement      string     `json:"requirement"`
	RequirementValue int        `json:"requirementValue"`
	CurrentValue     int        `json:"currentValue"`
	Metric           MetricType `json:"type"`
	Unlocked         bool       `json:"isUnlocked"`
	Claimed          bool       `json:"isClaimed"`
	DiscountCode     string     `json:"discountCode,omitempty"`
}

// ClaimedReward is one entry of the persisted append-only claim list.
type ClaimedReward struct {
	CouponID     string    `json:"couponId"`
	DiscountCode string    `json:"discountCode"`
	ClaimedAt    time.Time `json:"claimedAt"`
}

// RewardDefinitions returns the fixed reward catalogue in display order.
func RewardDefinitions() []RewardDefinition {
	return []RewardDefinition{
		{
			ID:          "health-checkup",
			Title:       "Free Health Check-up",
			Description: "Get a comprehensive health check-up when you purchase any insurance policy",
			Requirement: "Complete 200,000 steps",
			Metric:      MetricSteps,
			Threshold:   200000,
		},
		{
			ID:          "borderless-addon",
			Title:       "Borderless Treatment Add-on",
			Description: "Get treatment anywhere in the world, up to sum insured with co-payment options",
			Requirement: "Burn 25,000 calories",
			Metric:      MetricCalories,
			Threshold:   25000,
		},
		{
			ID:          "befit-benefit",
			Title:       "Be-Fit Benefit",
			Description: "Avail 10% discount on select fitness centers (applicable for certain policies)",
			Requirement: "Burn 60,000 calories",
			Metric:      MetricCalories,
			Threshold:   60000,
		},
	}
}
