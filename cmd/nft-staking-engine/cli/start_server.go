package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/babylonlabs-io/nft-staking-engine/internal/api"
	"github.com/babylonlabs-io/nft-staking-engine/internal/clients/assetclient"
	"github.com/babylonlabs-io/nft-staking-engine/internal/clients/rewardclient"
	"github.com/babylonlabs-io/nft-staking-engine/internal/config"
	"github.com/babylonlabs-io/nft-staking-engine/internal/db"
	dbmodel "github.com/babylonlabs-io/nft-staking-engine/internal/db/model"
	"github.com/babylonlabs-io/nft-staking-engine/internal/observability/metrics"
	"github.com/babylonlabs-io/nft-staking-engine/internal/observability/tracing"
	"github.com/babylonlabs-io/nft-staking-engine/internal/queue"
	"github.com/babylonlabs-io/nft-staking-engine/internal/services"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the NFT staking engine server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up staking db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	// Create a basic zap logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating zap logger")
	}
	defer func() {
		//nolint:errcheck
		zapLogger.Sync()
	}()

	queueManager, err := queue.NewQueueManager(&cfg.Queue, zapLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize event publisher")
	}
	defer queueManager.Shutdown()

	var assetClient assetclient.AssetInterface = assetclient.NewClient(&cfg.Asset)
	assetClient = assetclient.NewAssetClientWithMetrics(assetClient)

	var rewardClient rewardclient.RewardInterface = rewardclient.NewClient(&cfg.Reward)
	rewardClient = rewardclient.NewRewardClientWithMetrics(rewardClient)

	service := services.NewService(cfg, dbClient, assetClient, rewardClient, queueManager)

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	if err := service.Bootstrap(ctx); err != nil {
		log.Fatal().Err(err).Msg("error while bootstrapping the staking ledger")
	}

	apiServer := api.New(&cfg.Api, service)
	return apiServer.Start(ctx)
}
