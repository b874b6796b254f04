package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	json "github.com/goccy/go-json"

	"ftd/internal/models"
	"ftd/internal/structures"
	"ftd/internal/testutil"
)

func newTestRewards(t *testing.T) (*RewardService, *LedgerService, *testutil.MemStore, *testutil.MockNotifier, *testutil.MockMetrics) {
	t.Helper()
	store := testutil.NewMemStore()
	logger := &testutil.MockLogger{}
	metrics := &testutil.MockMetrics{}
	notifier := &testutil.MockNotifier{}
	conf := &structures.Config{
		Tracking: structures.TrackingConfig{DefaultWeightKg: 70},
	}
	ledger := NewLedgerService(conf, store, logger, metrics).(*LedgerService)
	ledger.now = fixedTime

	rs := NewRewardService(store, ledger, notifier, logger, metrics).(*RewardService)
	rs.now = fixedTime
	return rs, ledger, store, notifier, metrics
}

func seedSteps(t *testing.T, store *testutil.MemStore, date string, steps int) {
	t.Helper()
	data, err := json.Marshal(models.StepsEntry{Date: date, Steps: steps})
	require.NoError(t, err)
	store.Set(models.StepsKey(date), string(data))
}

func seedCalories(t *testing.T, store *testutil.MemStore, date string, calories int) {
	t.Helper()
	data, err := json.Marshal(models.CaloriesEntry{Date: date, Calories: calories})
	require.NoError(t, err)
	store.Set(models.CaloriesKey(date), string(data))
}

func TestRewards_EvaluateAllLocked(t *testing.T) {
	rs, _, _, _, _ := newTestRewards(t)

	views := rs.Evaluate()
	require.Len(t, views, 3)
	for _, v := range views {
		assert.False(t, v.Unlocked, v.ID)
		assert.False(t, v.Claimed, v.ID)
		assert.Empty(t, v.DiscountCode, v.ID)
	}
}

func TestRewards_EvaluateStepThresholdUnlocks(t *testing.T) {
	rs, _, store, _, _ := newTestRewards(t)

	seedSteps(t, store, "2025-03-05", 120000)
	seedSteps(t, store, "2025-03-06", 80000)

	views := rs.Evaluate()
	require.Len(t, views, 3)

	assert.Equal(t, "health-checkup", views[0].ID)
	assert.True(t, views[0].Unlocked)
	assert.Equal(t, 200000, views[0].CurrentValue)

	// calorie rewards stay locked
	assert.False(t, views[1].Unlocked)
	assert.False(t, views[2].Unlocked)
}

func TestRewards_EvaluateCalorieThresholds(t *testing.T) {
	rs, _, store, _, _ := newTestRewards(t)

	seedCalories(t, store, "2025-03-05", 26000)

	views := rs.Evaluate()
	assert.False(t, views[0].Unlocked) // steps
	assert.True(t, views[1].Unlocked)  // 25k threshold
	assert.False(t, views[2].Unlocked) // 60k threshold
	assert.Equal(t, 26000, views[1].CurrentValue)
}

func TestRewards_ClaimUnlocked(t *testing.T) {
	rs, _, store, notifier, metrics := newTestRewards(t)
	seedSteps(t, store, "2025-03-05", 200000)

	result, err := rs.Claim("health-checkup")
	require.NoError(t, err)

	assert.True(t, result.Synced)
	assert.Empty(t, result.SyncWarning)
	assert.Equal(t, "health-checkup", result.Claim.CouponID)
	assert.NotEmpty(t, result.Claim.DiscountCode)
	assert.Equal(t, result.Claim.DiscountCode, strings.ToUpper(result.Claim.DiscountCode))
	assert.Equal(t, fixedTime(), result.Claim.ClaimedAt)

	require.Len(t, notifier.Claims, 1)
	assert.Equal(t, result.Claim, notifier.Claims[0])
	assert.Equal(t, 1, metrics.Claims["health-checkup"])

	views := rs.Evaluate()
	assert.True(t, views[0].Claimed)
	assert.Equal(t, result.Claim.DiscountCode, views[0].DiscountCode)
}

func TestRewards_ClaimLocked(t *testing.T) {
	rs, _, store, notifier, _ := newTestRewards(t)
	seedSteps(t, store, "2025-03-05", 199999)

	_, err := rs.Claim("health-checkup")
	assert.ErrorIs(t, err, models.ErrNotUnlocked)
	assert.Empty(t, notifier.Claims)

	// nothing was persisted
	_, ok := store.Get(models.ClaimedCouponsKey)
	assert.False(t, ok)
}

func TestRewards_ClaimTwice(t *testing.T) {
	rs, _, store, _, _ := newTestRewards(t)
	seedSteps(t, store, "2025-03-05", 250000)

	first, err := rs.Claim("health-checkup")
	require.NoError(t, err)

	_, err = rs.Claim("health-checkup")
	assert.ErrorIs(t, err, models.ErrAlreadyClaimed)

	// claim list still holds exactly the first claim
	raw, ok := store.Get(models.ClaimedCouponsKey)
	require.True(t, ok)
	var claims []models.ClaimedReward
	require.NoError(t, json.Unmarshal([]byte(raw), &claims))
	require.Len(t, claims, 1)
	assert.Equal(t, first.Claim.DiscountCode, claims[0].DiscountCode)
}

func TestRewards_ClaimUnknownID(t *testing.T) {
	rs, _, _, _, _ := newTestRewards(t)

	_, err := rs.Claim("free-lunch")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestRewards_ClaimSurvivesSyncFailure(t *testing.T) {
	rs, _, store, notifier, _ := newTestRewards(t)
	seedSteps(t, store, "2025-03-05", 200000)
	notifier.Err = errors.New("connection refused")

	result, err := rs.Claim("health-checkup")
	require.NoError(t, err)

	assert.False(t, result.Synced)
	assert.NotEmpty(t, result.SyncWarning)
	assert.NotEmpty(t, result.Claim.DiscountCode)

	// local commit stands
	views := rs.Evaluate()
	assert.True(t, views[0].Claimed)
}

func TestRewards_MalformedClaimListTreatedAsEmpty(t *testing.T) {
	rs, _, store, _, _ := newTestRewards(t)
	store.Set(models.ClaimedCouponsKey, "[broken")
	seedCalories(t, store, "2025-03-05", 30000)

	views := rs.Evaluate()
	assert.False(t, views[1].Claimed)

	_, err := rs.Claim("borderless-addon")
	assert.NoError(t, err)
}
