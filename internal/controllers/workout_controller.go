package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"ftd/internal/models"
	"ftd/internal/providers"
	"ftd/internal/services"
)

type WorkoutController struct {
	logger  providers.Logger
	service services.WorkoutServiceInterface
	cache   providers.CacheProviderInterface
}

func NewWorkoutController(logger providers.Logger, service services.WorkoutServiceInterface, cache providers.CacheProviderInterface) *WorkoutController {
	return &WorkoutController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

type workoutRequest struct {
	Name           string `json:"name"`
	Duration       int    `json:"duration"`
	Calories       int    `json:"calories"`
	Category       string `json:"type"`
	ElapsedSeconds int    `json:"elapsedSeconds"`
}

func (wc *WorkoutController) List(w http.ResponseWriter, r *http.Request) {
	entries := wc.service.List()
	if entries == nil {
		entries = []models.WorkoutEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// Add logs a workout. A payload with elapsedSeconds is a timer completion;
// otherwise it is a manual entry.
func (wc *WorkoutController) Add(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload workoutRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var entry models.WorkoutEntry
	var err error
	if payload.ElapsedSeconds > 0 {
		entry, err = wc.service.CompleteTimed(payload.Name, payload.ElapsedSeconds, models.Category(payload.Category))
	} else {
		entry, err = wc.service.AddManual(payload.Name, payload.Duration, payload.Calories, models.Category(payload.Category))
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}

	wc.invalidate()
	writeJSON(w, http.StatusCreated, entry)
}

func (wc *WorkoutController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := wc.service.Delete(id); err != nil {
		writeDomainError(w, err)
		return
	}
	wc.invalidate()
	w.WriteHeader(http.StatusNoContent)
}

func (wc *WorkoutController) invalidate() {
	wc.cache.Del(lifetimeCacheKey)
	wc.cache.Del(rewardsCacheKey)
}
