//go:build integration

package db_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/nft-staking-engine/internal/db"
	"github.com/babylonlabs-io/nft-staking-engine/internal/db/model"
	"github.com/babylonlabs-io/nft-staking-engine/internal/types"
)

func TestStakeStorage(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	t.Run("save", func(t *testing.T) {
		// error due to nil stake doc
		err := testDB.SaveNewStake(ctx, nil)
		require.Error(t, err)

		// successful save
		stake := createStake(t)
		err = testDB.SaveNewStake(ctx, stake)
		require.NoError(t, err)

		stored, err := testDB.GetStakeByAssetID(ctx, stake.AssetID)
		require.NoError(t, err)
		assert.Equal(t, stake, stored)

		// staking the same asset again is a duplicate key error
		stake2 := createStake(t)
		stake2.AssetID = stake.AssetID
		err = testDB.SaveNewStake(ctx, stake2)
		require.Error(t, err)
		assert.True(t, db.IsDuplicateKeyError(err))
	})

	t.Run("get", func(t *testing.T) {
		t.Run("by asset id", func(t *testing.T) {
			// happy path is covered by save, here we check the error shape
			stored, err := testDB.GetStakeByAssetID(ctx, "unknown-asset")
			require.Error(t, err)
			assert.True(t, db.IsNotFoundError(err))
			assert.Nil(t, stored)
		})
		t.Run("by staker address", func(t *testing.T) {
			stake1 := createStake(t)
			stake2 := createStake(t)
			stake2.StakerAddress = stake1.StakerAddress
			other := createStake(t)

			for _, doc := range []*model.StakeDocument{stake1, stake2, other} {
				require.NoError(t, testDB.SaveNewStake(ctx, doc))
			}

			stakes, err := testDB.GetStakesByStakerAddress(ctx, stake1.StakerAddress)
			require.NoError(t, err)
			require.Len(t, stakes, 2)
			assert.Contains(t, stakes, stake1)
			assert.Contains(t, stakes, stake2)
		})
	})

	t.Run("withdraw", func(t *testing.T) {
		stake := createStake(t)
		require.NoError(t, testDB.SaveNewStake(ctx, stake))

		withdrawnAt := time.Now().Unix()
		err := testDB.WithdrawStake(ctx, stake.AssetID, types.QualifiedStatesForWithdraw(), "12345", withdrawnAt)
		require.NoError(t, err)

		// the active record is gone, the asset can be staked again
		_, err = testDB.GetStakeByAssetID(ctx, stake.AssetID)
		require.Error(t, err)
		assert.True(t, db.IsNotFoundError(err))

		require.NoError(t, testDB.SaveNewStake(ctx, stake))

		// the settled record moved into history
		history, err := testDB.GetStakeHistoryByAssetID(ctx, stake.AssetID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, stake.AssetID, history[0].AssetID)
		assert.Equal(t, stake.StakerAddress, history[0].StakerAddress)
		assert.Equal(t, stake.StakedAt, history[0].StakedAt)
		assert.Equal(t, types.StateWithdrawn, history[0].State)
		assert.Equal(t, "12345", history[0].RewardPaid)
		assert.Equal(t, withdrawnAt, history[0].WithdrawnAt)

		t.Run("missing record", func(t *testing.T) {
			err := testDB.WithdrawStake(ctx, "unknown-asset", types.QualifiedStatesForWithdraw(), "0", withdrawnAt)
			require.Error(t, err)
			assert.True(t, db.IsNotFoundError(err))
		})
		t.Run("unqualified state", func(t *testing.T) {
			stake := createStake(t)
			require.NoError(t, testDB.SaveNewStake(ctx, stake))

			err := testDB.WithdrawStake(ctx, stake.AssetID, []types.StakeState{types.StateWithdrawn}, "0", withdrawnAt)
			require.Error(t, err)
			assert.True(t, db.IsNotFoundError(err))

			// record is untouched
			stored, err := testDB.GetStakeByAssetID(ctx, stake.AssetID)
			require.NoError(t, err)
			assert.Equal(t, stake, stored)
		})
	})

	t.Run("count", func(t *testing.T) {
		resetDatabase(t)

		count, err := testDB.CountActiveStakes(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)

		for range 3 {
			require.NoError(t, testDB.SaveNewStake(ctx, createStake(t)))
		}

		count, err = testDB.CountActiveStakes(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func createStake(t *testing.T) *model.StakeDocument {
	var stake model.StakeDocument
	err := gofakeit.Struct(&stake)
	require.NoError(t, err)

	// gofakeit doesn't know the state enum and the ledger clock
	stake.State = types.StateActive
	stake.StakedAt = time.Now().Add(-time.Duration(gofakeit.Number(1, 100000)) * time.Second).Unix()

	return &stake
}
