package db

import (
	"context"
	"time"

	"github.com/babylonlabs-io/nft-staking-engine/internal/db/model"
	"github.com/babylonlabs-io/nft-staking-engine/internal/observability/metrics"
	"github.com/babylonlabs-io/nft-staking-engine/internal/types"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) SaveNewStake(ctx context.Context, stakeDoc *model.StakeDocument) error {
	return d.run("SaveNewStake", func() error {
		return d.db.SaveNewStake(ctx, stakeDoc)
	})
}

func (d *DbWithMetrics) GetStakeByAssetID(ctx context.Context, assetID string) (result *model.StakeDocument, err error) {
	//nolint:errcheck
	d.run("GetStakeByAssetID", func() error {
		result, err = d.db.GetStakeByAssetID(ctx, assetID)
		return err
	})
	return
}

func (d *DbWithMetrics) GetStakesByStakerAddress(ctx context.Context, stakerAddress string) (result []*model.StakeDocument, err error) {
	//nolint:errcheck
	d.run("GetStakesByStakerAddress", func() error {
		result, err = d.db.GetStakesByStakerAddress(ctx, stakerAddress)
		return err
	})
	return
}

func (d *DbWithMetrics) WithdrawStake(
	ctx context.Context,
	assetID string,
	qualifiedPreviousStates []types.StakeState,
	rewardPaid string,
	withdrawnAt int64,
) error {
	return d.run("WithdrawStake", func() error {
		return d.db.WithdrawStake(ctx, assetID, qualifiedPreviousStates, rewardPaid, withdrawnAt)
	})
}

func (d *DbWithMetrics) GetStakeHistoryByAssetID(ctx context.Context, assetID string) (result []*model.StakeHistoryDocument, err error) {
	//nolint:errcheck
	d.run("GetStakeHistoryByAssetID", func() error {
		result, err = d.db.GetStakeHistoryByAssetID(ctx, assetID)
		return err
	})
	return
}

func (d *DbWithMetrics) CountActiveStakes(ctx context.Context) (result int64, err error) {
	//nolint:errcheck
	d.run("CountActiveStakes", func() error {
		result, err = d.db.CountActiveStakes(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) SaveRewardRate(ctx context.Context, rateDoc *model.RewardRateDocument) error {
	return d.run("SaveRewardRate", func() error {
		return d.db.SaveRewardRate(ctx, rateDoc)
	})
}

func (d *DbWithMetrics) GetRateTimeline(ctx context.Context) (result []*model.RewardRateDocument, err error) {
	//nolint:errcheck
	d.run("GetRateTimeline", func() error {
		result, err = d.db.GetRateTimeline(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) GetLatestRewardRate(ctx context.Context) (result *model.RewardRateDocument, err error) {
	//nolint:errcheck
	d.run("GetLatestRewardRate", func() error {
		result, err = d.db.GetLatestRewardRate(ctx)
		return err
	})
	return
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
