package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cosmossdk.io/math"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/nft-staking-engine/internal/clients/assetclient"
	"github.com/babylonlabs-io/nft-staking-engine/internal/clients/rewardclient"
	"github.com/babylonlabs-io/nft-staking-engine/internal/db"
	"github.com/babylonlabs-io/nft-staking-engine/internal/observability/metrics"
	"github.com/babylonlabs-io/nft-staking-engine/internal/types"
)

// Unstake settles the stake: custody goes back to the recorded owner, the
// accrued reward is paid out and the record is destroyed. Any failure leaves
// the ledger exactly as it was; payout liquidity is pre-checked before
// anything moves and a payout failure after the custody return triggers a
// compensating custody re-take.
func (s *Service) Unstake(ctx context.Context, assetID, callerAddress string) (rewardPaid math.Int, resultErr *types.Error) {
	start := s.now()
	defer func() { recordOperation("Unstake", start, resultErr != nil) }()

	if assetID == "" || callerAddress == "" {
		return math.Int{}, types.NewErrorWithMsg(
			http.StatusBadRequest,
			types.ValidationError,
			"asset id and caller address are required",
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

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

	if authErr := s.policy.RequireOwner(stakeDoc.StakerAddress, callerAddress); authErr != nil {
		return math.Int{}, authErr
	}

	withdrawnAt := s.now().Unix()
	reward, accErr := s.accrue(ctx, stakeDoc.StakedAt, withdrawnAt)
	if accErr != nil {
		return math.Int{}, accErr
	}

	// pre-flight liquidity check, nothing has moved yet
	if reward.IsPositive() {
		available, err := s.reward.BalanceAvailable(ctx)
		if err != nil {
			return math.Int{}, types.NewInternalServiceError(
				fmt.Errorf("failed to check reward liquidity: %w", err),
			)
		}
		if available.LT(reward) {
			return math.Int{}, types.NewError(
				http.StatusUnprocessableEntity,
				types.InsufficientRewardLiquidity,
				fmt.Errorf("reward pool holds %s, need %s", available, reward),
			)
		}
	}

	engineAddress := s.cfg.Staking.EngineAddress
	if err := s.asset.TransferCustody(ctx, assetID, engineAddress, stakeDoc.StakerAddress); err != nil {
		if errors.Is(err, assetclient.ErrTransferRejected) {
			return math.Int{}, types.NewError(
				http.StatusUnprocessableEntity,
				types.CustodyTransferFailed,
				err,
			)
		}
		return math.Int{}, types.NewInternalServiceError(
			fmt.Errorf("failed to return custody of %s: %w", assetID, err),
		)
	}

	if reward.IsPositive() {
		if err := s.reward.PayOut(ctx, stakeDoc.StakerAddress, reward); err != nil {
			// custody already went back, take it again so the failed
			// withdrawal has no observable effect
			s.retakeCustody(ctx, assetID, stakeDoc.StakerAddress)

			if errors.Is(err, rewardclient.ErrPayoutRejected) {
				return math.Int{}, types.NewError(
					http.StatusUnprocessableEntity,
					types.InsufficientRewardLiquidity,
					err,
				)
			}
			return math.Int{}, types.NewInternalServiceError(
				fmt.Errorf("failed to pay out reward for %s: %w", assetID, err),
			)
		}
	}

	if err := s.db.WithdrawStake(
		ctx, assetID, types.QualifiedStatesForWithdraw(), reward.String(), withdrawnAt,
	); err != nil {
		// custody and reward are already with the owner, the record removal
		// must not be silently lost
		log.Ctx(ctx).Error().
			Err(err).
			Str("asset_id", assetID).
			Msg("failed to destroy stake record after settlement")
		return math.Int{}, types.NewInternalServiceError(
			fmt.Errorf("failed to destroy stake record for %s: %w", assetID, err),
		)
	}

	metrics.DecActiveStakes()
	s.pushUnstakedEvent(ctx, &types.UnstakedEvent{
		EventID:       uuid.New().String(),
		AssetID:       assetID,
		StakerAddress: stakeDoc.StakerAddress,
		RewardPaid:    reward.String(),
		WithdrawnAt:   withdrawnAt,
	})

	log.Ctx(ctx).Info().
		Str("asset_id", assetID).
		Str("staker_address", stakeDoc.StakerAddress).
		Str("reward_paid", reward.String()).
		Msg("asset unstaked")

	return reward, nil
}

// retakeCustody re-acquires custody after a failed payout so the whole
// withdrawal fails atomically.
func (s *Service) retakeCustody(ctx context.Context, assetID, fromAddress string) {
	metrics.RecordCustodyRollback()

	err := s.asset.TransferCustody(ctx, assetID, fromAddress, s.cfg.Staking.EngineAddress)
	if err != nil {
		// the asset is with the owner while its record is still active,
		// this needs an operator
		log.Ctx(ctx).Error().
			Err(err).
			Str("asset_id", assetID).
			Str("from_address", fromAddress).
			Msg("compensating custody re-take failed")
	}
}

func (s *Service) pushUnstakedEvent(ctx context.Context, ev *types.UnstakedEvent) {
	if err := s.queueManager.PushUnstakedEvent(ctx, ev); err != nil {
		metrics.RecordQueueSendError()
		log.Ctx(ctx).Warn().
			Err(err).
			Str("asset_id", ev.AssetID).
			Msg("failed to push unstaked event")
	}
}
