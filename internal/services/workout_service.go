package services

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"ftd/internal/models"
	"ftd/internal/providers"
	"ftd/internal/storage"
)

type WorkoutServiceInterface interface {
	List() []models.WorkoutEntry
	AddManual(name string, durationMinutes, calories int, category models.Category) (models.WorkoutEntry, error)
	CompleteTimed(name string, elapsedSeconds int, category models.Category) (models.WorkoutEntry, error)
	Delete(id string) error
}

// WorkoutService owns the persisted workout list. Calorie contributions of
// workouts flow through the ledger so the daily totals stay shared with
// step tracking.
type WorkoutService struct {
	mu     sync.Mutex
	store  storage.KeyValueStoreInterface
	ledger LedgerServiceInterface
	logger providers.Logger
	now    func() time.Time
}

func NewWorkoutService(store storage.KeyValueStoreInterface, ledger LedgerServiceInterface, logger providers.Logger) WorkoutServiceInterface {
	return &WorkoutService{
		store:  store,
		ledger: ledger,
		logger: logger,
		now:    time.Now,
	}
}

func (ws *WorkoutService) List() []models.WorkoutEntry {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.readAll()
}

// AddManual logs a user-entered workout. A zero calorie value is derived
// from the category's hourly rate.
func (ws *WorkoutService) AddManual(name string, durationMinutes, calories int, category models.Category) (models.WorkoutEntry, error) {
	if calories == 0 {
		calories = models.CaloriesFromWorkout(durationMinutes, category)
	}
	entry := models.WorkoutEntry{
		Name:            name,
		DurationMinutes: durationMinutes,
		Calories:        calories,
		Category:        category,
	}
	return ws.add(entry)
}

// CompleteTimed logs a workout finished through the timer. Duration is the
// elapsed time rounded to whole minutes; calories are always derived.
func (ws *WorkoutService) CompleteTimed(name string, elapsedSeconds int, category models.Category) (models.WorkoutEntry, error) {
	if elapsedSeconds <= 0 {
		return models.WorkoutEntry{}, fmt.Errorf("%w: elapsed time must be positive", models.ErrValidation)
	}
	if name == "" {
		name = string(category) + " Workout"
	}
	durationMinutes := int(math.Round(float64(elapsedSeconds) / 60))
	if durationMinutes < 1 {
		durationMinutes = 1
	}
	entry := models.WorkoutEntry{
		Name:                 name,
		DurationMinutes:      durationMinutes,
		Calories:             models.CaloriesFromWorkout(durationMinutes, category),
		Category:             category,
		ActualElapsedSeconds: elapsedSeconds,
	}
	return ws.add(entry)
}

func (ws *WorkoutService) add(entry models.WorkoutEntry) (models.WorkoutEntry, error) {
	if err := entry.Validate(); err != nil {
		return models.WorkoutEntry{}, err
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()

	entry.ID = strconv.FormatInt(ws.now().UnixNano(), 10)
	entry.Date = ws.now()

	entries := append([]models.WorkoutEntry{entry}, ws.readAll()...)
	if err := ws.writeAll(entries); err != nil {
		return models.WorkoutEntry{}, err
	}

	ws.ledger.AccumulateCalories(entry.Calories)
	ws.logger.Infof(providers.TypeApp, "Workout %s logged: %d min %s, %d cal", entry.ID, entry.DurationMinutes, entry.Category, entry.Calories)
	return entry, nil
}

// Delete removes a workout. Its calorie contribution is reversed only when
// the workout was logged today; older entries leave history untouched.
func (ws *WorkoutService) Delete(id string) error {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	entries := ws.readAll()
	idx := -1
	for i, e := range entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: workout %s not found", models.ErrValidation, id)
	}

	deleted := entries[idx]
	entries = append(entries[:idx], entries[idx+1:]...)
	if err := ws.writeAll(entries); err != nil {
		return err
	}

	if models.DateOf(deleted.Date) == models.DateOf(ws.now()) {
		ws.ledger.AccumulateCalories(-deleted.Calories)
	}
	ws.logger.Infof(providers.TypeApp, "Workout %s deleted", id)
	return nil
}

func (ws *WorkoutService) readAll() []models.WorkoutEntry {
	raw, ok := ws.store.Get(models.WorkoutsKey)
	if !ok {
		return nil
	}
	var entries []models.WorkoutEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		ws.logger.Warnf(providers.TypeApp, "Malformed workout list, treating as empty: %s", err)
		return nil
	}
	return entries
}

func (ws *WorkoutService) writeAll(entries []models.WorkoutEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: %s", models.ErrStorage, err)
	}
	ws.store.Set(models.WorkoutsKey, string(data))
	return nil
}
