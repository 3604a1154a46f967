package services

import (
	"context"
	"fmt"
	"net/http"

	"cosmossdk.io/math"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/nft-staking-engine/internal/db"
	"github.com/babylonlabs-io/nft-staking-engine/internal/db/model"
	"github.com/babylonlabs-io/nft-staking-engine/internal/observability/metrics"
	"github.com/babylonlabs-io/nft-staking-engine/internal/types"
)

// SetRewardRate appends a new version to the rate timeline. The new rate
// governs accrual from now on; time already served under previous rates keeps
// being settled against those rates.
func (s *Service) SetRewardRate(ctx context.Context, newRate, adminKey string) (resultErr *types.Error) {
	start := s.now()
	defer func() { recordOperation("SetRewardRate", start, resultErr != nil) }()

	if authErr := s.policy.RequireAdmin(adminKey); authErr != nil {
		return authErr
	}

	rate, ok := math.NewIntFromString(newRate)
	if !ok || rate.IsNegative() {
		return types.NewError(
			http.StatusBadRequest,
			types.InvalidRate,
			fmt.Errorf("rate must be a non-negative integer amount of base units per day, got %q", newRate),
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	version := uint32(0)
	latest, err := s.db.GetLatestRewardRate(ctx)
	if err == nil {
		version = latest.Version + 1
	} else if !db.IsNotFoundError(err) {
		return types.NewInternalServiceError(
			fmt.Errorf("failed to read rate timeline: %w", err),
		)
	}

	effectiveFrom := s.now().Unix()
	rateDoc := &model.RewardRateDocument{
		Type:          model.RewardRateType,
		Version:       version,
		Rate:          rate.String(),
		EffectiveFrom: effectiveFrom,
	}
	if err := s.db.SaveRewardRate(ctx, rateDoc); err != nil {
		return types.NewInternalServiceError(
			fmt.Errorf("failed to append rate timeline version %d: %w", version, err),
		)
	}

	s.pushRateChangedEvent(ctx, &types.RewardRateChangedEvent{
		EventID:       uuid.New().String(),
		Version:       version,
		Rate:          rate.String(),
		EffectiveFrom: effectiveFrom,
	})

	log.Ctx(ctx).Info().
		Uint32("version", version).
		Str("rate", rate.String()).
		Msg("reward rate updated")

	return nil
}

// GetRewardRate returns the rate currently in force.
func (s *Service) GetRewardRate(ctx context.Context) (*model.RewardRateDocument, *types.Error) {
	latest, err := s.db.GetLatestRewardRate(ctx)
	if err != nil {
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to read rate timeline: %w", err),
		)
	}
	return latest, nil
}

func (s *Service) pushRateChangedEvent(ctx context.Context, ev *types.RewardRateChangedEvent) {
	if err := s.queueManager.PushRewardRateChangedEvent(ctx, ev); err != nil {
		metrics.RecordQueueSendError()
		log.Ctx(ctx).Warn().
			Err(err).
			Str("rate", ev.Rate).
			Msg("failed to push rate changed event")
	}
}
