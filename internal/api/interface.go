package api

import (
	"context"

	"cosmossdk.io/math"

	"github.com/babylonlabs-io/nft-staking-engine/internal/db/model"
	"github.com/babylonlabs-io/nft-staking-engine/internal/types"
)

// StakingService is the ledger surface exposed over HTTP, implemented by
// services.Service.
type StakingService interface {
	Stake(ctx context.Context, assetID, stakerAddress string) *types.Error
	Unstake(ctx context.Context, assetID, callerAddress string) (math.Int, *types.Error)
	QueryReward(ctx context.Context, assetID string) (math.Int, *types.Error)
	GetStakeRecord(ctx context.Context, assetID string) (*model.StakeDocument, *types.Error)
	GetStakesByStaker(ctx context.Context, stakerAddress string) ([]*model.StakeDocument, *types.Error)
	GetStakeHistory(ctx context.Context, assetID string) ([]*model.StakeHistoryDocument, *types.Error)
	VerifyCustody(ctx context.Context, assetID string) (string, bool, *types.Error)
	SetRewardRate(ctx context.Context, newRate, adminKey string) *types.Error
	GetRewardRate(ctx context.Context) (*model.RewardRateDocument, *types.Error)
	DbPing(ctx context.Context) *types.Error
}
