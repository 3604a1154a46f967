package types

type EventTypes string

func (e EventTypes) String() string {
	return string(e)
}

const (
	EventAssetStaked       EventTypes = "staking.v1.EventAssetStaked"
	EventAssetUnstaked     EventTypes = "staking.v1.EventAssetUnstaked"
	EventRewardRateChanged EventTypes = "staking.v1.EventRewardRateChanged"
)

// StakedEvent is published after custody of an asset has been acquired and its
// stake record created.
type StakedEvent struct {
	EventID       string `json:"event_id"`
	AssetID       string `json:"asset_id"`
	StakerAddress string `json:"staker_address"`
	StakedAt      int64  `json:"staked_at"`
}

// UnstakedEvent is published after custody has been returned and the accrued
// reward paid out. RewardPaid is the amount in reward base units.
type UnstakedEvent struct {
	EventID       string `json:"event_id"`
	AssetID       string `json:"asset_id"`
	StakerAddress string `json:"staker_address"`
	RewardPaid    string `json:"reward_paid"`
	WithdrawnAt   int64  `json:"withdrawn_at"`
}

// RewardRateChangedEvent is published when the administrator appends a new
// entry to the reward rate timeline.
type RewardRateChangedEvent struct {
	EventID       string `json:"event_id"`
	Version       uint32 `json:"version"`
	Rate          string `json:"rate"`
	EffectiveFrom int64  `json:"effective_from"`
}
