package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"ftd/internal/providers"
	"ftd/internal/services"
)

type RewardController struct {
	logger  providers.Logger
	service services.RewardServiceInterface
	cache   providers.CacheProviderInterface
}

func NewRewardController(logger providers.Logger, service services.RewardServiceInterface, cache providers.CacheProviderInterface) *RewardController {
	return &RewardController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

type claimRequest struct {
	RewardID string `json:"rewardId"`
}

func (rc *RewardController) List(w http.ResponseWriter, r *http.Request) {
	serveFromCacheOrCompute(w, rc.cache, rewardsCacheKey, func() (any, error) {
		return rc.service.Evaluate(), nil
	})
}

func (rc *RewardController) Claim(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload claimRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := rc.service.Claim(payload.RewardID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	rc.cache.Del(rewardsCacheKey)
	writeJSON(w, http.StatusOK, result)
}
