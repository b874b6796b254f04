package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"ftd/internal/models"
	"ftd/internal/providers"
	"ftd/internal/services"
	"ftd/internal/tracker"
)

const (
	lifetimeCacheKey = "summary:lifetime"
	rewardsCacheKey  = "rewards"
)

// TrackingController serves the daily ledger, the tracking session and the
// health profile.
type TrackingController struct {
	logger  providers.Logger
	ledger  services.LedgerServiceInterface
	session tracker.SessionInterface
	cache   providers.CacheProviderInterface
}

func NewTrackingController(logger providers.Logger, ledger services.LedgerServiceInterface, session tracker.SessionInterface, cache providers.CacheProviderInterface) *TrackingController {
	return &TrackingController{
		logger:  logger,
		ledger:  ledger,
		session: session,
		cache:   cache,
	}
}

type lifetimeSummary struct {
	Steps    int `json:"steps"`
	Calories int `json:"calories"`
	Days     int `json:"days"`
}

type addStepsRequest struct {
	Count int `json:"count"`
}

type trackingStatus struct {
	IsTracking bool `json:"isTracking"`
}

func (tc *TrackingController) GetToday(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, tc.ledger.GetToday())
}

func (tc *TrackingController) GetLifetime(w http.ResponseWriter, r *http.Request) {
	serveFromCacheOrCompute(w, tc.cache, lifetimeCacheKey, func() (any, error) {
		steps, calories := tc.ledger.SumAllRecords("")
		return lifetimeSummary{Steps: steps, Calories: calories, Days: tc.ledger.TrackedDays()}, nil
	})
}

func (tc *TrackingController) AddSteps(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload addStepsRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	rec, err := tc.session.AddSteps(payload.Count)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	tc.invalidate()
	writeJSON(w, http.StatusOK, rec)
}

func (tc *TrackingController) ResetToday(w http.ResponseWriter, r *http.Request) {
	rec := tc.ledger.ResetToday()
	tc.invalidate()
	tc.logger.Infof(providers.TypeApp, "Today's record reset")
	writeJSON(w, http.StatusOK, rec)
}

func (tc *TrackingController) GetTracking(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, trackingStatus{IsTracking: tc.session.Running()})
}

func (tc *TrackingController) StartTracking(w http.ResponseWriter, r *http.Request) {
	tc.session.Start()
	writeJSON(w, http.StatusOK, trackingStatus{IsTracking: true})
}

func (tc *TrackingController) StopTracking(w http.ResponseWriter, r *http.Request) {
	tc.session.Stop()
	writeJSON(w, http.StatusOK, trackingStatus{IsTracking: false})
}

func (tc *TrackingController) GetHealthMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, tc.ledger.GetHealthMetrics())
}

func (tc *TrackingController) UpdateHealthMetrics(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.HealthMetrics
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := tc.ledger.UpdateHealthMetrics(payload); err != nil {
		writeDomainError(w, err)
		return
	}
	tc.invalidate()
	writeJSON(w, http.StatusOK, payload)
}

// invalidate drops cached aggregates after any write to the ledger.
func (tc *TrackingController) invalidate() {
	tc.cache.Del(lifetimeCacheKey)
	tc.cache.Del(rewardsCacheKey)
}
