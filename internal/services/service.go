package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/nft-staking-engine/internal/auth"
	"github.com/babylonlabs-io/nft-staking-engine/internal/clients/assetclient"
	"github.com/babylonlabs-io/nft-staking-engine/internal/clients/rewardclient"
	"github.com/babylonlabs-io/nft-staking-engine/internal/config"
	"github.com/babylonlabs-io/nft-staking-engine/internal/db"
	"github.com/babylonlabs-io/nft-staking-engine/internal/db/model"
	"github.com/babylonlabs-io/nft-staking-engine/internal/observability/metrics"
	"github.com/babylonlabs-io/nft-staking-engine/internal/queue"
	"github.com/babylonlabs-io/nft-staking-engine/internal/types"
)

// Service is the stake ledger. Mutating operations take the ledger mutex for
// their whole duration, so stake, unstake and rate changes never interleave
// within one process; the engine is a sequential state machine.
type Service struct {
	cfg          *config.Config
	db           db.DbInterface
	asset        assetclient.AssetInterface
	reward       rewardclient.RewardInterface
	queueManager queue.PublisherInterface
	policy       *auth.Policy

	mu sync.Mutex
	// now is the ledger clock, overridable in tests
	now func() time.Time
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	asset assetclient.AssetInterface,
	reward rewardclient.RewardInterface,
	qm queue.PublisherInterface,
) *Service {
	var adminKey string
	if cfg != nil {
		adminKey = cfg.Staking.AdminKey
	}
	return &Service{
		cfg:          cfg,
		db:           db,
		asset:        asset,
		reward:       reward,
		queueManager: qm,
		policy:       auth.NewPolicy(adminKey),
		now:          time.Now,
	}
}

// Bootstrap seeds the rate timeline with version 0 from the configured
// default if the timeline is empty and primes the active stakes gauge.
// Loss of the timeline would corrupt reward computation, which is why it is
// persisted rather than read from config on every accrual.
func (s *Service) Bootstrap(ctx context.Context) error {
	_, err := s.db.GetLatestRewardRate(ctx)
	if err != nil {
		if !db.IsNotFoundError(err) {
			return fmt.Errorf("failed to read rate timeline: %w", err)
		}

		seed := &model.RewardRateDocument{
			Type:          model.RewardRateType,
			Version:       0,
			Rate:          s.cfg.Staking.DefaultRewardRate,
			EffectiveFrom: s.now().Unix(),
		}
		if err := s.db.SaveRewardRate(ctx, seed); err != nil && !db.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to seed rate timeline: %w", err)
		}
		log.Ctx(ctx).Info().
			Str("rate", seed.Rate).
			Msg("seeded reward rate timeline")
	}

	count, err := s.db.CountActiveStakes(ctx)
	if err != nil {
		return fmt.Errorf("failed to count active stakes: %w", err)
	}
	metrics.RecordActiveStakesCount(count)

	return nil
}

// EngineAddress is the identity under which the engine holds custody.
func (s *Service) EngineAddress() string {
	return s.cfg.Staking.EngineAddress
}

// DbPing verifies the database connection, used by the healthcheck surface.
func (s *Service) DbPing(ctx context.Context) *types.Error {
	if err := s.db.Ping(ctx); err != nil {
		return types.NewInternalServiceError(
			fmt.Errorf("database ping failed: %w", err),
		)
	}
	return nil
}

func recordOperation(operation string, start time.Time, failed bool) {
	metrics.RecordStakingOperationDuration(time.Since(start), operation, failed)
}
