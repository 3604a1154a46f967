package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/babylonlabs-io/nft-staking-engine/internal/db/model"
	"github.com/babylonlabs-io/nft-staking-engine/internal/types"
)

const adminKeyHeader = "X-Admin-Key"

type stakeRequest struct {
	AssetID       string `json:"asset_id"`
	StakerAddress string `json:"staker_address"`
}

type unstakeRequest struct {
	AssetID       string `json:"asset_id"`
	CallerAddress string `json:"caller_address"`
}

type setRewardRateRequest struct {
	Rate string `json:"rate"`
}

type stakeRecordResponse struct {
	AssetID       string `json:"asset_id"`
	StakerAddress string `json:"staker_address"`
	StakedAt      int64  `json:"staked_at"`
	State         string `json:"state"`
}

type stakeHistoryResponse struct {
	AssetID       string `json:"asset_id"`
	StakerAddress string `json:"staker_address"`
	StakedAt      int64  `json:"staked_at"`
	State         string `json:"state"`
	RewardPaid    string `json:"reward_paid"`
	WithdrawnAt   int64  `json:"withdrawn_at"`
}

type rewardResponse struct {
	AssetID string `json:"asset_id"`
	Reward  string `json:"reward"`
}

type unstakeResponse struct {
	AssetID    string `json:"asset_id"`
	RewardPaid string `json:"reward_paid"`
}

type custodyResponse struct {
	AssetID   string `json:"asset_id"`
	Holder    string `json:"holder"`
	InCustody bool   `json:"in_custody"`
}

type rewardRateResponse struct {
	Version       uint32 `json:"version"`
	Rate          string `json:"rate"`
	EffectiveFrom int64  `json:"effective_from"`
}

func (s *Server) stake(r *http.Request) (*Result, *types.Error) {
	var req stakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "invalid request payload",
		)
	}

	if err := s.service.Stake(r.Context(), req.AssetID, req.StakerAddress); err != nil {
		return nil, err
	}

	return &Result{
		Data: stakeRecordResponse{
			AssetID:       req.AssetID,
			StakerAddress: req.StakerAddress,
			State:         types.StateActive.String(),
		},
		StatusCode: http.StatusCreated,
	}, nil
}

func (s *Server) unstake(r *http.Request) (*Result, *types.Error) {
	var req unstakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "invalid request payload",
		)
	}

	reward, err := s.service.Unstake(r.Context(), req.AssetID, req.CallerAddress)
	if err != nil {
		return nil, err
	}

	return NewResult(unstakeResponse{
		AssetID:    req.AssetID,
		RewardPaid: reward.String(),
	}), nil
}

func (s *Server) getReward(r *http.Request) (*Result, *types.Error) {
	assetID := chi.URLParam(r, "assetID")

	reward, err := s.service.QueryReward(r.Context(), assetID)
	if err != nil {
		return nil, err
	}

	return NewResult(rewardResponse{
		AssetID: assetID,
		Reward:  reward.String(),
	}), nil
}

func (s *Server) getStake(r *http.Request) (*Result, *types.Error) {
	stakeDoc, err := s.service.GetStakeRecord(r.Context(), chi.URLParam(r, "assetID"))
	if err != nil {
		return nil, err
	}

	return NewResult(toStakeRecordResponse(stakeDoc)), nil
}

func (s *Server) getStakerStakes(r *http.Request) (*Result, *types.Error) {
	stakes, err := s.service.GetStakesByStaker(r.Context(), chi.URLParam(r, "stakerAddress"))
	if err != nil {
		return nil, err
	}

	resp := make([]stakeRecordResponse, 0, len(stakes))
	for _, stakeDoc := range stakes {
		resp = append(resp, toStakeRecordResponse(stakeDoc))
	}
	return NewResult(resp), nil
}

func (s *Server) getStakeHistory(r *http.Request) (*Result, *types.Error) {
	history, err := s.service.GetStakeHistory(r.Context(), chi.URLParam(r, "assetID"))
	if err != nil {
		return nil, err
	}

	resp := make([]stakeHistoryResponse, 0, len(history))
	for _, doc := range history {
		resp = append(resp, stakeHistoryResponse{
			AssetID:       doc.AssetID,
			StakerAddress: doc.StakerAddress,
			StakedAt:      doc.StakedAt,
			State:         doc.State.String(),
			RewardPaid:    doc.RewardPaid,
			WithdrawnAt:   doc.WithdrawnAt,
		})
	}
	return NewResult(resp), nil
}

func (s *Server) verifyCustody(r *http.Request) (*Result, *types.Error) {
	assetID := chi.URLParam(r, "assetID")

	holder, inCustody, err := s.service.VerifyCustody(r.Context(), assetID)
	if err != nil {
		return nil, err
	}

	return NewResult(custodyResponse{
		AssetID:   assetID,
		Holder:    holder,
		InCustody: inCustody,
	}), nil
}

func (s *Server) getRewardRate(r *http.Request) (*Result, *types.Error) {
	rateDoc, err := s.service.GetRewardRate(r.Context())
	if err != nil {
		return nil, err
	}

	return NewResult(rewardRateResponse{
		Version:       rateDoc.Version,
		Rate:          rateDoc.Rate,
		EffectiveFrom: rateDoc.EffectiveFrom,
	}), nil
}

func (s *Server) setRewardRate(r *http.Request) (*Result, *types.Error) {
	var req setRewardRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "invalid request payload",
		)
	}

	if err := s.service.SetRewardRate(r.Context(), req.Rate, r.Header.Get(adminKeyHeader)); err != nil {
		return nil, err
	}

	rateDoc, err := s.service.GetRewardRate(r.Context())
	if err != nil {
		return nil, err
	}

	return NewResult(rewardRateResponse{
		Version:       rateDoc.Version,
		Rate:          rateDoc.Rate,
		EffectiveFrom: rateDoc.EffectiveFrom,
	}), nil
}

func (s *Server) healthcheck(r *http.Request) (*Result, *types.Error) {
	if err := s.service.DbPing(r.Context()); err != nil {
		return nil, err
	}
	return NewResult("server is up and running"), nil
}

func toStakeRecordResponse(doc *model.StakeDocument) stakeRecordResponse {
	return stakeRecordResponse{
		AssetID:       doc.AssetID,
		StakerAddress: doc.StakerAddress,
		StakedAt:      doc.StakedAt,
		State:         doc.State.String(),
	}
}
