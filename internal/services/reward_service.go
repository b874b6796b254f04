package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"ftd/internal/models"
	"ftd/internal/providers"
	"ftd/internal/storage"
)

// ClaimResult is a successful claim plus the outcome of the best-effort
// backend sync. A failed sync is a warning, never a rollback.
type ClaimResult struct {
	Claim       models.ClaimedReward `json:"claim"`
	Synced      bool                 `json:"synced"`
	SyncWarning string               `json:"syncWarning,omitempty"`
}

type RewardServiceInterface interface {
	Evaluate() []models.RewardView
	Claim(rewardID string) (*ClaimResult, error)
}

// RewardService derives reward states from lifetime totals and owns the
// persisted claimed list exclusively.
type RewardService struct {
	mu       sync.Mutex
	store    storage.KeyValueStoreInterface
	ledger   LedgerServiceInterface
	notifier RewardNotifierInterface
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
	now      func() time.Time
}

func NewRewardService(store storage.KeyValueStoreInterface, ledger LedgerServiceInterface, notifier RewardNotifierInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) RewardServiceInterface {
	return &RewardService{
		store:    store,
		ledger:   ledger,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
	}
}

// Evaluate produces the reward states for the current lifetime totals,
// preserving the fixed definition order.
func (rs *RewardService) Evaluate() []models.RewardView {
	lifetimeSteps, lifetimeCalories := rs.ledger.SumAllRecords("")
	claims := rs.readClaims()

	claimedByID := make(map[string]models.ClaimedReward, len(claims))
	for _, c := range claims {
		claimedByID[c.CouponID] = c
	}

	defs := models.RewardDefinitions()
	views := make([]models.RewardView, 0, len(defs))
	for _, def := range defs {
		current := lifetimeSteps
		if def.Metric == models.MetricCalories {
			current = lifetimeCalories
		}
		view := models.RewardView{
			ID:               def.ID,
			Title:            def.Title,
			Description:      def.Description,
			Requirement:      def.Requirement,
			RequirementValue: def.Threshold,
			CurrentValue:     current,
			Metric:           def.Metric,
			Unlocked:         current >= def.Threshold,
		}
		if claim, ok := claimedByID[def.ID]; ok {
			view.Claimed = true
			view.DiscountCode = claim.DiscountCode
		}
		views = append(views, view)
	}
	return views
}

// Claim issues a discount code for an unlocked, unclaimed reward. The claim
// is committed locally first; the sync endpoint is notified best-effort.
func (rs *RewardService) Claim(rewardID string) (*ClaimResult, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	var def *models.RewardDefinition
	for _, d := range models.RewardDefinitions() {
		if d.ID == rewardID {
			def = &d
			break
		}
	}
	if def == nil {
		return nil, fmt.Errorf("%w: unknown reward %s", models.ErrValidation, rewardID)
	}

	claims := rs.readClaims()
	for _, c := range claims {
		if c.CouponID == rewardID {
			return nil, models.ErrAlreadyClaimed
		}
	}

	lifetimeSteps, lifetimeCalories := rs.ledger.SumAllRecords("")
	current := lifetimeSteps
	if def.Metric == models.MetricCalories {
		current = lifetimeCalories
	}
	if current < def.Threshold {
		return nil, models.ErrNotUnlocked
	}

	claim := models.ClaimedReward{
		CouponID:     rewardID,
		DiscountCode: strings.ToUpper(uuid.NewString()),
		ClaimedAt:    rs.now(),
	}

	claims = append(claims, claim)
	if err := rs.writeClaims(claims); err != nil {
		return nil, err
	}
	rs.metrics.IncRewardClaims(rewardID)

	result := &ClaimResult{Claim: claim, Synced: true}
	if err := rs.notifier.NotifyClaim(claim); err != nil {
		rs.logger.Warnf(providers.TypeApp, "Claim %s saved locally but sync failed: %s", rewardID, err)
		result.Synced = false
		result.SyncWarning = "claimed locally but failed to sync with server"
	}
	return result, nil
}

func (rs *RewardService) readClaims() []models.ClaimedReward {
	raw, ok := rs.store.Get(models.ClaimedCouponsKey)
	if !ok {
		return nil
	}
	var claims []models.ClaimedReward
	if err := json.Unmarshal([]byte(raw), &claims); err != nil {
		rs.logger.Warnf(providers.TypeApp, "Malformed claimed list, treating as empty: %s", err)
		return nil
	}
	return claims
}

func (rs *RewardService) writeClaims(claims []models.ClaimedReward) error {
	data, err := json.Marshal(claims)
	if err != nil {
		return fmt.Errorf("%w: %s", models.ErrStorage, err)
	}
	rs.store.Set(models.ClaimedCouponsKey, string(data))
	return nil
}
