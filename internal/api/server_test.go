package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/nft-staking-engine/internal/db/model"
	"github.com/babylonlabs-io/nft-staking-engine/internal/observability/metrics"
	"github.com/babylonlabs-io/nft-staking-engine/internal/types"
)

// fakeService implements StakingService with per-test function fields.
type fakeService struct {
	stake          func(ctx context.Context, assetID, stakerAddress string) *types.Error
	unstake        func(ctx context.Context, assetID, callerAddress string) (math.Int, *types.Error)
	queryReward    func(ctx context.Context, assetID string) (math.Int, *types.Error)
	getStakeRecord func(ctx context.Context, assetID string) (*model.StakeDocument, *types.Error)
	getByStaker    func(ctx context.Context, stakerAddress string) ([]*model.StakeDocument, *types.Error)
	getHistory     func(ctx context.Context, assetID string) ([]*model.StakeHistoryDocument, *types.Error)
	verifyCustody  func(ctx context.Context, assetID string) (string, bool, *types.Error)
	setRewardRate  func(ctx context.Context, newRate, adminKey string) *types.Error
	getRewardRate  func(ctx context.Context) (*model.RewardRateDocument, *types.Error)
	dbPing         func(ctx context.Context) *types.Error
}

func (f *fakeService) Stake(ctx context.Context, assetID, stakerAddress string) *types.Error {
	return f.stake(ctx, assetID, stakerAddress)
}

func (f *fakeService) Unstake(ctx context.Context, assetID, callerAddress string) (math.Int, *types.Error) {
	return f.unstake(ctx, assetID, callerAddress)
}

func (f *fakeService) QueryReward(ctx context.Context, assetID string) (math.Int, *types.Error) {
	return f.queryReward(ctx, assetID)
}

func (f *fakeService) GetStakeRecord(ctx context.Context, assetID string) (*model.StakeDocument, *types.Error) {
	return f.getStakeRecord(ctx, assetID)
}

func (f *fakeService) GetStakesByStaker(ctx context.Context, stakerAddress string) ([]*model.StakeDocument, *types.Error) {
	return f.getByStaker(ctx, stakerAddress)
}

func (f *fakeService) GetStakeHistory(ctx context.Context, assetID string) ([]*model.StakeHistoryDocument, *types.Error) {
	return f.getHistory(ctx, assetID)
}

func (f *fakeService) VerifyCustody(ctx context.Context, assetID string) (string, bool, *types.Error) {
	return f.verifyCustody(ctx, assetID)
}

func (f *fakeService) SetRewardRate(ctx context.Context, newRate, adminKey string) *types.Error {
	return f.setRewardRate(ctx, newRate, adminKey)
}

func (f *fakeService) GetRewardRate(ctx context.Context) (*model.RewardRateDocument, *types.Error) {
	return f.getRewardRate(ctx)
}

func (f *fakeService) DbPing(ctx context.Context) *types.Error {
	return f.dbPing(ctx)
}

func serveRequest(t *testing.T, service StakingService, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	metrics.Init(9999)

	srv := &Server{service: service}

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestStakeEndpoint(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		service := &fakeService{
			stake: func(_ context.Context, assetID, stakerAddress string) *types.Error {
				assert.Equal(t, "asset-1", assetID)
				assert.Equal(t, "staker-1", stakerAddress)
				return nil
			},
		}

		rec := serveRequest(t, service, http.MethodPost, "/v1/stake",
			`{"asset_id":"asset-1","staker_address":"staker-1"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp stakeRecordResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "asset-1", resp.AssetID)
		assert.Equal(t, types.StateActive.String(), resp.State)
	})

	t.Run("already staked maps to conflict", func(t *testing.T) {
		service := &fakeService{
			stake: func(context.Context, string, string) *types.Error {
				return types.NewErrorWithMsg(http.StatusConflict, types.AlreadyStaked, "asset is already staked")
			},
		}

		rec := serveRequest(t, service, http.MethodPost, "/v1/stake",
			`{"asset_id":"asset-1","staker_address":"staker-1"}`)
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, types.AlreadyStaked.String(), decodeError(t, rec).ErrorCode)
	})

	t.Run("malformed payload", func(t *testing.T) {
		rec := serveRequest(t, &fakeService{}, http.MethodPost, "/v1/stake", `{not json`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, types.ValidationError.String(), decodeError(t, rec).ErrorCode)
	})
}

func TestUnstakeEndpoint(t *testing.T) {
	t.Run("returns reward paid", func(t *testing.T) {
		service := &fakeService{
			unstake: func(_ context.Context, assetID, callerAddress string) (math.Int, *types.Error) {
				assert.Equal(t, "asset-1", assetID)
				assert.Equal(t, "staker-1", callerAddress)
				return math.NewInt(172800), nil
			},
		}

		rec := serveRequest(t, service, http.MethodPost, "/v1/unstake",
			`{"asset_id":"asset-1","caller_address":"staker-1"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp unstakeResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "172800", resp.RewardPaid)
	})

	t.Run("not owner maps to forbidden", func(t *testing.T) {
		service := &fakeService{
			unstake: func(context.Context, string, string) (math.Int, *types.Error) {
				return math.Int{}, types.NewErrorWithMsg(http.StatusForbidden, types.NotStakeOwner, "caller does not own this stake")
			},
		}

		rec := serveRequest(t, service, http.MethodPost, "/v1/unstake",
			`{"asset_id":"asset-1","caller_address":"intruder"}`)
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, types.NotStakeOwner.String(), decodeError(t, rec).ErrorCode)
	})
}

func TestRewardEndpoint(t *testing.T) {
	t.Run("accrued reward", func(t *testing.T) {
		service := &fakeService{
			queryReward: func(_ context.Context, assetID string) (math.Int, *types.Error) {
				assert.Equal(t, "asset-1", assetID)
				return math.NewInt(315), nil
			},
		}

		rec := serveRequest(t, service, http.MethodGet, "/v1/reward/asset-1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp rewardResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "315", resp.Reward)
	})

	t.Run("no active stake", func(t *testing.T) {
		service := &fakeService{
			queryReward: func(context.Context, string) (math.Int, *types.Error) {
				return math.Int{}, types.NewErrorWithMsg(http.StatusNotFound, types.NoActiveStake, "no active stake for asset")
			},
		}

		rec := serveRequest(t, service, http.MethodGet, "/v1/reward/asset-1", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, types.NoActiveStake.String(), decodeError(t, rec).ErrorCode)
	})
}

func TestStakeRecordEndpoints(t *testing.T) {
	doc := &model.StakeDocument{
		AssetID:       "asset-1",
		StakerAddress: "staker-1",
		StakedAt:      1700000000,
		State:         types.StateActive,
	}

	t.Run("by asset id", func(t *testing.T) {
		service := &fakeService{
			getStakeRecord: func(_ context.Context, assetID string) (*model.StakeDocument, *types.Error) {
				assert.Equal(t, "asset-1", assetID)
				return doc, nil
			},
		}

		rec := serveRequest(t, service, http.MethodGet, "/v1/stake/asset-1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp stakeRecordResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, toStakeRecordResponse(doc), resp)
	})

	t.Run("by staker", func(t *testing.T) {
		service := &fakeService{
			getByStaker: func(_ context.Context, stakerAddress string) ([]*model.StakeDocument, *types.Error) {
				assert.Equal(t, "staker-1", stakerAddress)
				return []*model.StakeDocument{doc}, nil
			},
		}

		rec := serveRequest(t, service, http.MethodGet, "/v1/staker/staker-1/stakes", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp []stakeRecordResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp, 1)
		assert.Equal(t, toStakeRecordResponse(doc), resp[0])
	})

	t.Run("custody", func(t *testing.T) {
		service := &fakeService{
			verifyCustody: func(_ context.Context, assetID string) (string, bool, *types.Error) {
				assert.Equal(t, "asset-1", assetID)
				return "engine-custody-address", true, nil
			},
		}

		rec := serveRequest(t, service, http.MethodGet, "/v1/stake/asset-1/custody", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp custodyResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.InCustody)
		assert.Equal(t, "engine-custody-address", resp.Holder)
	})

	t.Run("history", func(t *testing.T) {
		service := &fakeService{
			getHistory: func(_ context.Context, assetID string) ([]*model.StakeHistoryDocument, *types.Error) {
				return []*model.StakeHistoryDocument{
					{
						AssetID:       assetID,
						StakerAddress: "staker-1",
						StakedAt:      1700000000,
						State:         types.StateWithdrawn,
						RewardPaid:    "100",
						WithdrawnAt:   1700086400,
					},
				}, nil
			},
		}

		rec := serveRequest(t, service, http.MethodGet, "/v1/stake/asset-1/history", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp []stakeHistoryResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "100", resp[0].RewardPaid)
		assert.Equal(t, types.StateWithdrawn.String(), resp[0].State)
	})
}

func TestRewardRateEndpoints(t *testing.T) {
	rateDoc := &model.RewardRateDocument{
		Type:          model.RewardRateType,
		Version:       3,
		Rate:          "200",
		EffectiveFrom: 1700000000,
	}

	t.Run("get current rate", func(t *testing.T) {
		service := &fakeService{
			getRewardRate: func(context.Context) (*model.RewardRateDocument, *types.Error) {
				return rateDoc, nil
			},
		}

		rec := serveRequest(t, service, http.MethodGet, "/v1/reward-rate", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp rewardRateResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, uint32(3), resp.Version)
		assert.Equal(t, "200", resp.Rate)
	})

	t.Run("set rate forwards admin key header", func(t *testing.T) {
		var gotKey string
		service := &fakeService{
			setRewardRate: func(_ context.Context, newRate, adminKey string) *types.Error {
				assert.Equal(t, "200", newRate)
				gotKey = adminKey
				return nil
			},
			getRewardRate: func(context.Context) (*model.RewardRateDocument, *types.Error) {
				return rateDoc, nil
			},
		}

		metrics.Init(9999)
		srv := &Server{service: service}
		req := httptest.NewRequest(http.MethodPut, "/v1/reward-rate", strings.NewReader(`{"rate":"200"}`))
		req.Header.Set(adminKeyHeader, "secret-key")
		rec := httptest.NewRecorder()
		srv.router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "secret-key", gotKey)
	})

	t.Run("set rate unauthorized", func(t *testing.T) {
		service := &fakeService{
			setRewardRate: func(context.Context, string, string) *types.Error {
				return types.NewErrorWithMsg(http.StatusForbidden, types.Unauthorized, "admin key mismatch")
			},
		}

		rec := serveRequest(t, service, http.MethodPut, "/v1/reward-rate", `{"rate":"200"}`)
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, types.Unauthorized.String(), decodeError(t, rec).ErrorCode)
	})
}

func TestHealthcheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		service := &fakeService{
			dbPing: func(context.Context) *types.Error { return nil },
		}

		rec := serveRequest(t, service, http.MethodGet, "/healthcheck", "")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("db down", func(t *testing.T) {
		service := &fakeService{
			dbPing: func(context.Context) *types.Error {
				return types.NewInternalServiceError(context.DeadlineExceeded)
			},
		}

		rec := serveRequest(t, service, http.MethodGet, "/healthcheck", "")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, types.InternalServiceError.String(), decodeError(t, rec).ErrorCode)
	})
}
