package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftd/internal/models"
	"ftd/internal/services"
)

func newRewardController() (*RewardController, *mockRewards, *ctrlTestCache) {
	service := &mockRewards{}
	cache := newCtrlTestCache()
	rc := NewRewardController(&ctrlTestLogger{}, service, cache)
	return rc, service, cache
}

func TestRewardList(t *testing.T) {
	rc, service, cache := newRewardController()
	service.views = []models.RewardView{
		{ID: "health-checkup", Title: "Free Health Check-up", Unlocked: true},
		{ID: "borderless-addon", Unlocked: false},
	}

	rr := httptest.NewRecorder()
	rc.List(rr, httptest.NewRequest(http.MethodGet, "/rewards", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var views []models.RewardView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &views))
	require.Len(t, views, 2)
	assert.True(t, views[0].Unlocked)

	_, ok := cache.Get(rewardsCacheKey)
	assert.True(t, ok)
}

func TestRewardList_ServedFromCache(t *testing.T) {
	rc, _, cache := newRewardController()
	cache.Set(rewardsCacheKey, []byte(`[{"id":"cached"}]`))

	rr := httptest.NewRecorder()
	rc.List(rr, httptest.NewRequest(http.MethodGet, "/rewards", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":"cached"}]`, rr.Body.String())
}

func TestRewardClaim(t *testing.T) {
	rc, service, cache := newRewardController()
	cache.Set(rewardsCacheKey, []byte("stale"))
	service.result = &services.ClaimResult{
		Claim:  models.ClaimedReward{CouponID: "health-checkup", DiscountCode: "ABCD-1234"},
		Synced: true,
	}

	body := `{"rewardId":"health-checkup"}`
	req := httptest.NewRequest(http.MethodPost, "/rewards/claim", strings.NewReader(body))
	rr := httptest.NewRecorder()
	rc.Claim(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var result services.ClaimResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, "ABCD-1234", result.Claim.DiscountCode)
	assert.True(t, result.Synced)

	_, ok := cache.Get(rewardsCacheKey)
	assert.False(t, ok)
}

func TestRewardClaim_SyncWarningPassedThrough(t *testing.T) {
	rc, service, _ := newRewardController()
	service.result = &services.ClaimResult{
		Claim:       models.ClaimedReward{CouponID: "befit-benefit", DiscountCode: "X"},
		Synced:      false,
		SyncWarning: "claimed locally but failed to sync with server",
	}

	body := `{"rewardId":"befit-benefit"}`
	req := httptest.NewRequest(http.MethodPost, "/rewards/claim", strings.NewReader(body))
	rr := httptest.NewRecorder()
	rc.Claim(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var result services.ClaimResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.False(t, result.Synced)
	assert.NotEmpty(t, result.SyncWarning)
}

func TestRewardClaim_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"already claimed", models.ErrAlreadyClaimed, http.StatusConflict},
		{"not unlocked", models.ErrNotUnlocked, http.StatusForbidden},
		{"unknown reward", models.ErrValidation, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, service, _ := newRewardController()
			service.claimErr = tt.err

			body := `{"rewardId":"health-checkup"}`
			req := httptest.NewRequest(http.MethodPost, "/rewards/claim", strings.NewReader(body))
			rr := httptest.NewRecorder()
			rc.Claim(rr, req)

			assert.Equal(t, tt.status, rr.Code)
		})
	}
}

func TestRewardClaim_InvalidBody(t *testing.T) {
	rc, _, _ := newRewardController()

	req := httptest.NewRequest(http.MethodPost, "/rewards/claim", strings.NewReader("not json"))
	rr := httptest.NewRecorder()
	rc.Claim(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
