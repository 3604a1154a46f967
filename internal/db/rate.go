package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babylonlabs-io/nft-staking-engine/internal/db/model"
)

// SaveRewardRate appends a new version to the rate timeline. The unique index
// on (type, version) turns concurrent appends of the same version into a
// DuplicateKeyError instead of a forked timeline.
func (db *Database) SaveRewardRate(ctx context.Context, rateDoc *model.RewardRateDocument) error {
	if rateDoc == nil {
		return errors.New("nil reward rate document")
	}

	_, err := db.collection(model.RewardRateCollection).InsertOne(ctx, rateDoc)
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{
			Key:     rateDoc.Type,
			Message: "reward rate version already exists",
		}
	}
	return err
}

func (db *Database) GetRateTimeline(ctx context.Context) ([]*model.RewardRateDocument, error) {
	filter := bson.M{"type": model.RewardRateType}
	opts := options.Find().SetSort(bson.D{{Key: "version", Value: 1}})

	cursor, err := db.collection(model.RewardRateCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var timeline []*model.RewardRateDocument
	if err := cursor.All(ctx, &timeline); err != nil {
		return nil, err
	}
	return timeline, nil
}

func (db *Database) GetLatestRewardRate(ctx context.Context) (*model.RewardRateDocument, error) {
	filter := bson.M{"type": model.RewardRateType}
	opts := options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}})

	var rateDoc model.RewardRateDocument
	err := db.collection(model.RewardRateCollection).FindOne(ctx, filter, opts).Decode(&rateDoc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.RewardRateType,
				Message: "reward rate timeline is empty",
			}
		}
		return nil, err
	}
	return &rateDoc, nil
}
