package model

import (
	"github.com/babylonlabs-io/nft-staking-engine/internal/types"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StakesCollection       = "stakes"
	StakeHistoryCollection = "stake_history"
)

// StakeDocument is an active stake record. The asset id is the document id,
// so the unique index on _id is what enforces at most one active stake per
// asset. Presence of a document in the stakes collection is the active flag;
// settled stakes live in stake_history only.
type StakeDocument struct {
	AssetID       string           `bson:"_id"`
	StakerAddress string           `bson:"staker_address"`
	StakedAt      int64            `bson:"staked_at"`
	State         types.StakeState `bson:"state"`
}

// StakeHistoryDocument is the durable trail of settled stakes. One asset can
// appear many times, once per completed stake/unstake cycle.
type StakeHistoryDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	AssetID       string             `bson:"asset_id"`
	StakerAddress string             `bson:"staker_address"`
	StakedAt      int64              `bson:"staked_at"`
	State         types.StakeState   `bson:"state"`
	RewardPaid    string             `bson:"reward_paid"`
	WithdrawnAt   int64              `bson:"withdrawn_at"`
}
