package services

import (
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"ftd/internal/models"
	"ftd/internal/providers"
	"ftd/internal/storage"
	"ftd/internal/structures"
)

type LedgerServiceInterface interface {
	GetToday() models.DailyRecord
	AccumulateSteps(delta int) models.DailyRecord
	AccumulateCalories(delta int) models.DailyRecord
	ResetToday() models.DailyRecord
	SumAllRecords(excludeDate string) (steps int, calories int)
	TrackedDays() int
	GetHealthMetrics() models.HealthMetrics
	UpdateHealthMetrics(m models.HealthMetrics) error
}

// LedgerService owns every read and write of daily records. All
// read-modify-write sequences run under one mutex so concurrent callers
// (HTTP handlers, the tracking tick) cannot interleave mid-sequence.
type LedgerService struct {
	mu            sync.Mutex
	store         storage.KeyValueStoreInterface
	logger        providers.Logger
	metrics       providers.MetricsProviderInterface
	defaultWeight float64
	now           func() time.Time
}

func NewLedgerService(conf *structures.Config, store storage.KeyValueStoreInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) LedgerServiceInterface {
	weight := conf.Tracking.DefaultWeightKg
	if weight <= 0 {
		weight = 70
	}
	return &LedgerService{
		store:         store,
		logger:        logger,
		metrics:       metrics,
		defaultWeight: weight,
		now:           time.Now,
	}
}

func (ls *LedgerService) GetToday() models.DailyRecord {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.readDay(models.DateOf(ls.now()))
}

// AccumulateSteps adjusts today's step count and moves the calorie total by
// the difference of step-derived calories before and after. The per-call
// deltas telescope, so cumulative step calories always equal
// CaloriesFromSteps(totalSteps, weight) while workout calories stay intact.
func (ls *LedgerService) AccumulateSteps(delta int) models.DailyRecord {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	rec := ls.readDay(models.DateOf(ls.now()))
	weight := ls.weight()

	oldSteps := rec.Steps
	newSteps := oldSteps + delta
	if newSteps < 0 {
		newSteps = 0
	}

	calDelta := models.CaloriesFromSteps(newSteps, weight) - models.CaloriesFromSteps(oldSteps, weight)
	rec.Steps = newSteps
	rec.Calories += calDelta
	if rec.Calories < 0 {
		rec.Calories = 0
	}

	ls.writeDay(&rec)
	if delta > 0 {
		ls.metrics.AddStepsTotal(delta)
	}
	return rec
}

// AccumulateCalories adjusts today's calorie count directly, floored at 0.
// Used by workout flows, which compute their own calorie values.
func (ls *LedgerService) AccumulateCalories(delta int) models.DailyRecord {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	rec := ls.readDay(models.DateOf(ls.now()))
	rec.Calories += delta
	if rec.Calories < 0 {
		rec.Calories = 0
	}
	ls.writeDay(&rec)
	return rec
}

func (ls *LedgerService) ResetToday() models.DailyRecord {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	rec := models.DailyRecord{Date: models.DateOf(ls.now())}
	ls.writeDay(&rec)
	return rec
}

// SumAllRecords sums steps and calories across every persisted day.
// excludeDate skips one date (pass "" to sum everything). Malformed
// records count as zero instead of failing the aggregation.
func (ls *LedgerService) SumAllRecords(excludeDate string) (int, int) {
	steps := 0
	for _, key := range ls.store.ListKeys(models.StepsKeyPrefix) {
		date := key[len(models.StepsKeyPrefix):]
		if date == excludeDate {
			continue
		}
		raw, ok := ls.store.Get(key)
		if !ok {
			continue
		}
		var entry models.StepsEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			ls.logger.Warnf(providers.TypeApp, "Skipping malformed record %s: %s", key, err)
			continue
		}
		steps += entry.Steps
	}

	calories := 0
	for _, key := range ls.store.ListKeys(models.CaloriesKeyPrefix) {
		date := key[len(models.CaloriesKeyPrefix):]
		if date == excludeDate {
			continue
		}
		raw, ok := ls.store.Get(key)
		if !ok {
			continue
		}
		var entry models.CaloriesEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			ls.logger.Warnf(providers.TypeApp, "Skipping malformed record %s: %s", key, err)
			continue
		}
		calories += entry.Calories
	}

	return steps, calories
}

// TrackedDays counts calendar days with a persisted step record.
func (ls *LedgerService) TrackedDays() int {
	return len(ls.store.ListKeys(models.StepsKeyPrefix))
}

func (ls *LedgerService) GetHealthMetrics() models.HealthMetrics {
	raw, ok := ls.store.Get(models.HealthMetricsKey)
	if !ok {
		return models.HealthMetrics{Weight: ls.defaultWeight}
	}
	var m models.HealthMetrics
	if err := json.Unmarshal([]byte(raw), &m); err != nil || m.Weight <= 0 {
		ls.logger.Warnf(providers.TypeApp, "Unreadable health metrics, using default weight")
		return models.HealthMetrics{Weight: ls.defaultWeight}
	}
	return m
}

// UpdateHealthMetrics persists a new profile and re-derives today's
// step calories under the new body weight.
func (ls *LedgerService) UpdateHealthMetrics(m models.HealthMetrics) error {
	if err := m.Validate(); err != nil {
		return err
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	oldWeight := ls.weight()
	data, err := json.Marshal(&m)
	if err != nil {
		return err
	}
	ls.store.Set(models.HealthMetricsKey, string(data))

	rec := ls.readDay(models.DateOf(ls.now()))
	calDelta := models.CaloriesFromSteps(rec.Steps, m.Weight) - models.CaloriesFromSteps(rec.Steps, oldWeight)
	if calDelta != 0 {
		rec.Calories += calDelta
		if rec.Calories < 0 {
			rec.Calories = 0
		}
		ls.writeDay(&rec)
	}
	return nil
}

// weight reads the persisted body weight without taking the mutex.
func (ls *LedgerService) weight() float64 {
	raw, ok := ls.store.Get(models.HealthMetricsKey)
	if !ok {
		return ls.defaultWeight
	}
	var m models.HealthMetrics
	if err := json.Unmarshal([]byte(raw), &m); err != nil || m.Weight <= 0 {
		return ls.defaultWeight
	}
	return m.Weight
}

// readDay merges the steps and calories entries for a date. Absent or
// malformed entries yield a zero-valued record, never an error.
func (ls *LedgerService) readDay(date string) models.DailyRecord {
	rec := models.DailyRecord{Date: date}

	if raw, ok := ls.store.Get(models.StepsKey(date)); ok {
		var entry models.StepsEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			ls.logger.Warnf(providers.TypeApp, "Malformed steps record for %s: %s", date, err)
		} else {
			rec.Steps = entry.Steps
			rec.LastUpdated = entry.LastUpdated
		}
	}

	if raw, ok := ls.store.Get(models.CaloriesKey(date)); ok {
		var entry models.CaloriesEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			ls.logger.Warnf(providers.TypeApp, "Malformed calories record for %s: %s", date, err)
		} else {
			rec.Calories = entry.Calories
			if entry.LastUpdated.After(rec.LastUpdated) {
				rec.LastUpdated = entry.LastUpdated
			}
		}
	}

	return rec
}

func (ls *LedgerService) writeDay(rec *models.DailyRecord) {
	rec.LastUpdated = ls.now()

	stepsData, err := json.Marshal(models.StepsEntry{Date: rec.Date, Steps: rec.Steps, LastUpdated: rec.LastUpdated})
	if err != nil {
		ls.logger.Errorf(providers.TypeApp, "Failed to encode steps record: %s", err)
		return
	}
	caloriesData, err := json.Marshal(models.CaloriesEntry{Date: rec.Date, Calories: rec.Calories, LastUpdated: rec.LastUpdated})
	if err != nil {
		ls.logger.Errorf(providers.TypeApp, "Failed to encode calories record: %s", err)
		return
	}

	ls.store.Set(models.StepsKey(rec.Date), string(stepsData))
	ls.store.Set(models.CaloriesKey(rec.Date), string(caloriesData))
}
