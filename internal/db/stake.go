package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/babylonlabs-io/nft-staking-engine/internal/db/model"
	"github.com/babylonlabs-io/nft-staking-engine/internal/types"
)

func (db *Database) SaveNewStake(ctx context.Context, stakeDoc *model.StakeDocument) error {
	if stakeDoc == nil {
		return errors.New("nil stake document")
	}

	_, err := db.collection(model.StakesCollection).InsertOne(ctx, stakeDoc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &DuplicateKeyError{
				Key:     stakeDoc.AssetID,
				Message: "asset is already staked",
			}
		}
		return err
	}
	return nil
}

func (db *Database) GetStakeByAssetID(ctx context.Context, assetID string) (*model.StakeDocument, error) {
	filter := bson.M{"_id": assetID}

	var stakeDoc model.StakeDocument
	err := db.collection(model.StakesCollection).FindOne(ctx, filter).Decode(&stakeDoc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     assetID,
				Message: "no active stake for asset",
			}
		}
		return nil, err
	}
	return &stakeDoc, nil
}

func (db *Database) GetStakesByStakerAddress(ctx context.Context, stakerAddress string) ([]*model.StakeDocument, error) {
	filter := bson.M{"staker_address": stakerAddress}

	cursor, err := db.collection(model.StakesCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stakes []*model.StakeDocument
	if err := cursor.All(ctx, &stakes); err != nil {
		return nil, err
	}
	return stakes, nil
}

// WithdrawStake removes the active stake record for the asset and appends the
// settled record to the stake history. The delete is filtered by the qualified
// previous states so a stake that was settled concurrently cannot be settled
// twice.
func (db *Database) WithdrawStake(
	ctx context.Context,
	assetID string,
	qualifiedPreviousStates []types.StakeState,
	rewardPaid string,
	withdrawnAt int64,
) error {
	qualifiedStateStrs := make([]string, len(qualifiedPreviousStates))
	for i, state := range qualifiedPreviousStates {
		qualifiedStateStrs[i] = state.String()
	}

	filter := bson.M{
		"_id":   assetID,
		"state": bson.M{"$in": qualifiedStateStrs},
	}

	res := db.collection(model.StakesCollection).FindOneAndDelete(ctx, filter)
	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     assetID,
				Message: "stake not found or current state is not a qualified state",
			}
		}
		return res.Err()
	}

	var stakeDoc model.StakeDocument
	if err := res.Decode(&stakeDoc); err != nil {
		return err
	}

	historyDoc := &model.StakeHistoryDocument{
		AssetID:       stakeDoc.AssetID,
		StakerAddress: stakeDoc.StakerAddress,
		StakedAt:      stakeDoc.StakedAt,
		State:         types.StateWithdrawn,
		RewardPaid:    rewardPaid,
		WithdrawnAt:   withdrawnAt,
	}
	if _, err := db.collection(model.StakeHistoryCollection).InsertOne(ctx, historyDoc); err != nil {
		return fmt.Errorf("failed to record stake history for %s: %w", assetID, err)
	}

	return nil
}

func (db *Database) GetStakeHistoryByAssetID(ctx context.Context, assetID string) ([]*model.StakeHistoryDocument, error) {
	filter := bson.M{"asset_id": assetID}

	cursor, err := db.collection(model.StakeHistoryCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var history []*model.StakeHistoryDocument
	if err := cursor.All(ctx, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (db *Database) CountActiveStakes(ctx context.Context) (int64, error) {
	return db.collection(model.StakesCollection).CountDocuments(ctx, bson.M{})
}
