package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/babylonlabs-io/nft-staking-engine/internal/db"
	"github.com/babylonlabs-io/nft-staking-engine/internal/db/model"
	"github.com/babylonlabs-io/nft-staking-engine/internal/types"
)

// GetStakeRecord returns the active stake record for the asset, or
// NoActiveStake when the asset is not currently staked.
func (s *Service) GetStakeRecord(ctx context.Context, assetID string) (*model.StakeDocument, *types.Error) {
	stakeDoc, err := s.db.GetStakeByAssetID(ctx, assetID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewError(
				http.StatusNotFound,
				types.NoActiveStake,
				fmt.Errorf("no active stake for asset %s", assetID),
			)
		}
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to look up stake for %s: %w", assetID, err),
		)
	}
	return stakeDoc, nil
}

// GetStakesByStaker lists the active stakes deposited by one staker.
func (s *Service) GetStakesByStaker(ctx context.Context, stakerAddress string) ([]*model.StakeDocument, *types.Error) {
	stakes, err := s.db.GetStakesByStakerAddress(ctx, stakerAddress)
	if err != nil {
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to list stakes for %s: %w", stakerAddress, err),
		)
	}
	return stakes, nil
}

// VerifyCustody checks that the engine actually holds the asset its active
// record claims. Operators use this to detect drift between the ledger and
// the custody service after a failed compensating transfer.
func (s *Service) VerifyCustody(ctx context.Context, assetID string) (string, bool, *types.Error) {
	if _, err := s.GetStakeRecord(ctx, assetID); err != nil {
		return "", false, err
	}

	holder, err := s.asset.CurrentHolder(ctx, assetID)
	if err != nil {
		return "", false, types.NewInternalServiceError(
			fmt.Errorf("failed to resolve holder of %s: %w", assetID, err),
		)
	}

	return holder, holder == s.EngineAddress(), nil
}

// GetStakeHistory lists the settled stakes of an asset, newest last.
func (s *Service) GetStakeHistory(ctx context.Context, assetID string) ([]*model.StakeHistoryDocument, *types.Error) {
	history, err := s.db.GetStakeHistoryByAssetID(ctx, assetID)
	if err != nil {
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to load stake history for %s: %w", assetID, err),
		)
	}
	return history, nil
}
