package db

import (
	"context"

	"github.com/babylonlabs-io/nft-staking-engine/internal/db/model"
	"github.com/babylonlabs-io/nft-staking-engine/internal/types"
)

type DbInterface interface {
	Ping(ctx context.Context) error
	SaveNewStake(ctx context.Context, stakeDoc *model.StakeDocument) error
	GetStakeByAssetID(ctx context.Context, assetID string) (*model.StakeDocument, error)
	GetStakesByStakerAddress(ctx context.Context, stakerAddress string) ([]*model.StakeDocument, error)
	WithdrawStake(
		ctx context.Context,
		assetID string,
		qualifiedPreviousStates []types.StakeState,
		rewardPaid string,
		withdrawnAt int64,
	) error
	GetStakeHistoryByAssetID(ctx context.Context, assetID string) ([]*model.StakeHistoryDocument, error)
	CountActiveStakes(ctx context.Context) (int64, error)
	SaveRewardRate(ctx context.Context, rateDoc *model.RewardRateDocument) error
	GetRateTimeline(ctx context.Context) ([]*model.RewardRateDocument, error)
	GetLatestRewardRate(ctx context.Context) (*model.RewardRateDocument, error)
}
