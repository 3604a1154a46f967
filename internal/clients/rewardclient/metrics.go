package rewardclient

import (
	"context"
	"time"

	"cosmossdk.io/math"

	"github.com/babylonlabs-io/nft-staking-engine/internal/observability/metrics"
)

type rewardClientWithMetrics struct {
	reward RewardInterface
}

func NewRewardClientWithMetrics(reward RewardInterface) *rewardClientWithMetrics {
	return &rewardClientWithMetrics{reward: reward}
}

func (r *rewardClientWithMetrics) PayOut(ctx context.Context, to string, amount math.Int) error {
	_, err := runRewardClientMethodWithMetrics("PayOut", func() (struct{}, error) {
		return struct{}{}, r.reward.PayOut(ctx, to, amount)
	})
	return err
}

func (r *rewardClientWithMetrics) BalanceAvailable(ctx context.Context) (math.Int, error) {
	return runRewardClientMethodWithMetrics("BalanceAvailable", func() (math.Int, error) {
		return r.reward.BalanceAvailable(ctx)
	})
}

func runRewardClientMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	result, err := f()
	duration := time.Since(startTime)

	metrics.RecordRewardClientLatency(duration, method, err != nil)
	return result, err
}
