package services

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"ftd/internal/models"
	"ftd/internal/providers"
	"ftd/internal/structures"
)

type RewardNotifierInterface interface {
	NotifyClaim(claim models.ClaimedReward) error
}

// HttpRewardNotifier posts claims to the backend sync endpoint. One attempt,
// no retry; the caller treats failure as a non-fatal warning.
type HttpRewardNotifier struct {
	url    string
	client *http.Client
	logger providers.Logger
}

func NewRewardNotifier(conf *structures.Config, logger providers.Logger) RewardNotifierInterface {
	if conf.Rewards.SyncURL == "" {
		logger.Infof(providers.TypeApp, "Reward sync disabled")
		return &noopNotifier{}
	}
	return &HttpRewardNotifier{
		url:    strings.TrimRight(conf.Rewards.SyncURL, "/") + "/coupons/claim",
		client: http.DefaultClient,
		logger: logger,
	}
}

func (n *HttpRewardNotifier) NotifyClaim(claim models.ClaimedReward) error {
	body, err := json.Marshal(&claim)
	if err != nil {
		return fmt.Errorf("%w: %s", models.ErrSyncFailed, err)
	}

	req, err := http.NewRequest(http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %s", models.ErrSyncFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", models.ErrSyncFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %d", models.ErrSyncFailed, resp.StatusCode)
	}

	n.logger.Debugf(providers.TypeApp, "Claim %s synced", claim.CouponID)
	return nil
}

type noopNotifier struct{}

func (n *noopNotifier) NotifyClaim(_ models.ClaimedReward) error { return nil }
