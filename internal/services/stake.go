package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/nft-staking-engine/internal/clients/assetclient"
	"github.com/babylonlabs-io/nft-staking-engine/internal/db"
	"github.com/babylonlabs-io/nft-staking-engine/internal/db/model"
	"github.com/babylonlabs-io/nft-staking-engine/internal/observability/metrics"
	"github.com/babylonlabs-io/nft-staking-engine/internal/types"
)

// Stake takes custody of the asset and opens its stake record. Either both
// happen or neither: if record creation fails after the custody transfer
// succeeded, custody is returned to the staker before the error surfaces.
func (s *Service) Stake(ctx context.Context, assetID, stakerAddress string) (resultErr *types.Error) {
	start := s.now()
	defer func() { recordOperation("Stake", start, resultErr != nil) }()

	if assetID == "" || stakerAddress == "" {
		return types.NewErrorWithMsg(
			http.StatusBadRequest,
			types.ValidationError,
			"asset id and staker address are required",
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.GetStakeByAssetID(ctx, assetID)
	if err == nil {
		return types.NewError(
			http.StatusConflict,
			types.AlreadyStaked,
			fmt.Errorf("asset %s is already staked", assetID),
		)
	}
	if !db.IsNotFoundError(err) {
		return types.NewInternalServiceError(
			fmt.Errorf("failed to look up stake for %s: %w", assetID, err),
		)
	}

	engineAddress := s.cfg.Staking.EngineAddress
	if err := s.asset.TransferCustody(ctx, assetID, stakerAddress, engineAddress); err != nil {
		if errors.Is(err, assetclient.ErrTransferRejected) {
			return types.NewError(
				http.StatusUnprocessableEntity,
				types.CustodyTransferFailed,
				err,
			)
		}
		return types.NewInternalServiceError(
			fmt.Errorf("failed to acquire custody of %s: %w", assetID, err),
		)
	}

	stakedAt := s.now().Unix()
	stakeDoc := &model.StakeDocument{
		AssetID:       assetID,
		StakerAddress: stakerAddress,
		StakedAt:      stakedAt,
		State:         types.StateActive,
	}
	if err := s.db.SaveNewStake(ctx, stakeDoc); err != nil {
		// custody has moved but no record exists, undo the transfer so the
		// failed call has no observable effect
		s.returnCustody(ctx, assetID, stakerAddress)

		if db.IsDuplicateKeyError(err) {
			return types.NewError(
				http.StatusConflict,
				types.AlreadyStaked,
				fmt.Errorf("asset %s is already staked", assetID),
			)
		}
		return types.NewInternalServiceError(
			fmt.Errorf("failed to save stake record for %s: %w", assetID, err),
		)
	}

	metrics.IncActiveStakes()
	s.pushStakedEvent(ctx, &types.StakedEvent{
		EventID:       uuid.New().String(),
		AssetID:       assetID,
		StakerAddress: stakerAddress,
		StakedAt:      stakedAt,
	})

	log.Ctx(ctx).Info().
		Str("asset_id", assetID).
		Str("staker_address", stakerAddress).
		Int64("staked_at", stakedAt).
		Msg("asset staked")

	return nil
}

// returnCustody is the compensating transfer used when a ledger mutation
// fails after custody already moved to the engine.
func (s *Service) returnCustody(ctx context.Context, assetID, toAddress string) {
	metrics.RecordCustodyRollback()

	err := s.asset.TransferCustody(ctx, assetID, s.cfg.Staking.EngineAddress, toAddress)
	if err != nil {
		// custody is now orphaned at the engine, this needs an operator
		log.Ctx(ctx).Error().
			Err(err).
			Str("asset_id", assetID).
			Str("to_address", toAddress).
			Msg("compensating custody transfer failed")
	}
}

func (s *Service) pushStakedEvent(ctx context.Context, ev *types.StakedEvent) {
	if err := s.queueManager.PushStakedEvent(ctx, ev); err != nil {
		metrics.RecordQueueSendError()
		log.Ctx(ctx).Warn().
			Err(err).
			Str("asset_id", ev.AssetID).
			Msg("failed to push staked event")
	}
}
