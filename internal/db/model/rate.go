package model

import (
	"fmt"

	"cosmossdk.io/math"
)

const RewardRateCollection = "reward_rate_timeline"

const RewardRateType = "REWARD_RATE"

// RewardRateDocument is one entry of the append-only reward rate timeline.
// Version 0 is seeded at engine start from the configured default; every
// administrative rate change appends the next version. Entries are never
// updated or deleted, otherwise stakes opened under an old rate could not be
// settled against the rate actually in force.
type RewardRateDocument struct {
	Type    string `bson:"type"`
	Version uint32 `bson:"version"`
	// Rate is stored as a decimal string of reward base units per asset per
	// day, since math.Int does not round-trip through bson.
	Rate          string `bson:"rate"`
	EffectiveFrom int64  `bson:"effective_from"`
}

func (d *RewardRateDocument) RateInt() (math.Int, error) {
	rate, ok := math.NewIntFromString(d.Rate)
	if !ok {
		return math.Int{}, fmt.Errorf("malformed rate %q in timeline version %d", d.Rate, d.Version)
	}
	return rate, nil
}
