package model

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babylonlabs-io/nft-staking-engine/internal/config"
)

const dbSetupTimeout = 30 * time.Second

var collections = map[string][]mongo.IndexModel{
	StakesCollection: {
		{Keys: bson.D{{Key: "staker_address", Value: 1}}},
	},
	StakeHistoryCollection: {
		{Keys: bson.D{{Key: "asset_id", Value: 1}}},
		{Keys: bson.D{{Key: "staker_address", Value: 1}}},
	},
	RewardRateCollection: {
		{
			Keys:    bson.D{{Key: "type", Value: 1}, {Key: "version", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	},
}

// Setup creates the engine's collections and indexes. It is idempotent and
// runs on every server start.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, dbSetupTimeout)
	defer cancel()

	database := client.Database(cfg.DbName)
	for name, indexes := range collections {
		if err := createCollection(ctx, database, name); err != nil {
			return err
		}
		if len(indexes) == 0 {
			continue
		}
		if _, err := database.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return err
		}
	}

	log.Ctx(ctx).Info().Msg("database setup complete")

	return client.Disconnect(ctx)
}

func createCollection(ctx context.Context, database *mongo.Database, name string) error {
	err := database.CreateCollection(ctx, name)
	if err != nil {
		// collection already existing is fine, setup is rerun on every start
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) && cmdErr.HasErrorCode(48) {
			return nil
		}
		return err
	}
	return nil
}
