package controllers

import (
	"ftd/internal/models"
	"ftd/internal/providers"
	"ftd/internal/services"
)

type ctrlTestLogger struct{}

func (m *ctrlTestLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *ctrlTestLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *ctrlTestLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *ctrlTestLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *ctrlTestLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *ctrlTestLogger) Close()                                                  {}

type ctrlTestCache struct {
	data    map[string][]byte
	deleted []string
}

func newCtrlTestCache() *ctrlTestCache {
	return &ctrlTestCache{data: make(map[string][]byte)}
}

func (c *ctrlTestCache) Get(key string) ([]byte, bool) {
	v, ok := c.data[key]
	return v, ok
}
func (c *ctrlTestCache) Set(key string, value []byte) { c.data[key] = value }
func (c *ctrlTestCache) Del(key string) {
	delete(c.data, key)
	c.deleted = append(c.deleted, key)
}

type mockLedger struct {
	today         models.DailyRecord
	lifetimeSteps int
	lifetimeCals  int
	trackedDays   int
	health        models.HealthMetrics
	updateErr     error
	resetCalls    int
	updatedHealth *models.HealthMetrics
	sumCalls      int
}

func (m *mockLedger) GetToday() models.DailyRecord                { return m.today }
func (m *mockLedger) AccumulateSteps(_ int) models.DailyRecord    { return m.today }
func (m *mockLedger) AccumulateCalories(_ int) models.DailyRecord { return m.today }
func (m *mockLedger) ResetToday() models.DailyRecord {
	m.resetCalls++
	return models.DailyRecord{Date: m.today.Date}
}
func (m *mockLedger) SumAllRecords(_ string) (int, int) {
	m.sumCalls++
	return m.lifetimeSteps, m.lifetimeCals
}
func (m *mockLedger) TrackedDays() int                       { return m.trackedDays }
func (m *mockLedger) GetHealthMetrics() models.HealthMetrics { return m.health }
func (m *mockLedger) UpdateHealthMetrics(h models.HealthMetrics) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedHealth = &h
	return nil
}

type mockSession struct {
	running     bool
	addStepsErr error
	addedSteps  int
}

func (m *mockSession) Start()        { m.running = true }
func (m *mockSession) Stop()         { m.running = false }
func (m *mockSession) Halt()         {}
func (m *mockSession) Resume()       {}
func (m *mockSession) Running() bool { return m.running }
func (m *mockSession) AddSteps(n int) (models.DailyRecord, error) {
	if m.addStepsErr != nil {
		return models.DailyRecord{}, m.addStepsErr
	}
	m.addedSteps += n
	return models.DailyRecord{Steps: m.addedSteps}, nil
}

type mockWorkouts struct {
	entries   []models.WorkoutEntry
	addErr    error
	deleteErr error
	deletedID string
	lastTimed bool
}

func (m *mockWorkouts) List() []models.WorkoutEntry { return m.entries }
func (m *mockWorkouts) AddManual(name string, durationMinutes, calories int, category models.Category) (models.WorkoutEntry, error) {
	if m.addErr != nil {
		return models.WorkoutEntry{}, m.addErr
	}
	m.lastTimed = false
	return models.WorkoutEntry{ID: "1", Name: name, DurationMinutes: durationMinutes, Calories: calories, Category: category}, nil
}
func (m *mockWorkouts) CompleteTimed(name string, elapsedSeconds int, category models.Category) (models.WorkoutEntry, error) {
	if m.addErr != nil {
		return models.WorkoutEntry{}, m.addErr
	}
	m.lastTimed = true
	return models.WorkoutEntry{ID: "2", Name: name, Category: category, ActualElapsedSeconds: elapsedSeconds}, nil
}
func (m *mockWorkouts) Delete(id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	return nil
}

type mockRewards struct {
	views    []models.RewardView
	claimErr error
	result   *services.ClaimResult
}

func (m *mockRewards) Evaluate() []models.RewardView { return m.views }
func (m *mockRewards) Claim(rewardID string) (*services.ClaimResult, error) {
	if m.claimErr != nil {
		return nil, m.claimErr
	}
	return m.result, nil
}
