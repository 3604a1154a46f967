package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cosmossdk.io/math"

	"github.com/babylonlabs-io/nft-staking-engine/internal/db"
	"github.com/babylonlabs-io/nft-staking-engine/internal/rewards"
	"github.com/babylonlabs-io/nft-staking-engine/internal/types"
)

// QueryReward returns the reward the stake would pay if withdrawn now. Read
// only, no ledger state changes.
func (s *Service) QueryReward(ctx context.Context, assetID string) (reward math.Int, resultErr *types.Error) {
	start := s.now()
	defer func() { recordOperation("QueryReward", start, resultErr != nil) }()

	stakeDoc, err := s.db.GetStakeByAssetID(ctx, assetID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return math.Int{}, types.NewError(
				http.StatusNotFound,
				types.NoActiveStake,
				fmt.Errorf("no active stake for asset %s", assetID),
			)
		}
		return math.Int{}, types.NewInternalServiceError(
			fmt.Errorf("failed to look up stake for %s: %w", assetID, err),
		)
	}

	return s.accrue(ctx, stakeDoc.StakedAt, s.now().Unix())
}

// accrue loads the persisted rate timeline and computes the interval-sum
// reward for [stakedAt, asOf].
func (s *Service) accrue(ctx context.Context, stakedAt, asOf int64) (math.Int, *types.Error) {
	timelineDocs, err := s.db.GetRateTimeline(ctx)
	if err != nil {
		return math.Int{}, types.NewInternalServiceError(
			fmt.Errorf("failed to load rate timeline: %w", err),
		)
	}

	timeline := make([]rewards.RateChange, 0, len(timelineDocs))
	for _, doc := range timelineDocs {
		rate, err := doc.RateInt()
		if err != nil {
			return math.Int{}, types.NewInternalServiceError(err)
		}
		timeline = append(timeline, rewards.RateChange{
			EffectiveFrom: doc.EffectiveFrom,
			Rate:          rate,
		})
	}

	reward, err := rewards.Accrue(stakedAt, asOf, timeline)
	if err != nil {
		if errors.Is(err, rewards.ErrOverflow) {
			return math.Int{}, types.NewError(
				http.StatusInternalServerError,
				types.RewardOverflow,
				err,
			)
		}
		return math.Int{}, types.NewInternalServiceError(
			fmt.Errorf("reward computation failed: %w", err),
		)
	}
	return reward, nil
}
