// Package rewards implements the accrual computation for staked assets. It is
// pure: callers pass the stake window and the rate timeline, nothing here
// reads state or clocks.
package rewards

import (
	"errors"
	"fmt"
	"math/big"

	"cosmossdk.io/math"
)

// SecondsPerDay converts timeline rates, which are expressed in reward base
// units per asset per day, into per-second contributions.
const SecondsPerDay = 86400

var (
	// ErrOverflow is returned when an accrued amount exceeds the 256-bit
	// range of math.Int instead of silently wrapping.
	ErrOverflow = errors.New("accrued reward exceeds representable range")

	ErrEmptyTimeline = errors.New("rate timeline is empty")
)

// RateChange is one entry of the reward rate timeline.
type RateChange struct {
	// EffectiveFrom is the unix second from which Rate is in force. It stays
	// in force until the next entry's EffectiveFrom.
	EffectiveFrom int64
	// Rate is the reward in base units accrued per staked asset per day.
	Rate math.Int
}

// Accrue computes the reward accrued over [stakedAt, asOf] by summing, for
// each timeline interval overlapping the stake window, rate multiplied by the
// overlap duration. A rate change mid-stake therefore applies only from its
// effective time onward; it is never applied retroactively to the whole stake
// duration.
//
// Durations are whole seconds and each interval contribution is
// rate * seconds / SecondsPerDay with the division last, so precision is only
// lost below one base unit.
func Accrue(stakedAt, asOf int64, timeline []RateChange) (math.Int, error) {
	if len(timeline) == 0 {
		return math.Int{}, ErrEmptyTimeline
	}
	if asOf < stakedAt {
		return math.Int{}, fmt.Errorf("accrual window ends at %d before it starts at %d", asOf, stakedAt)
	}
	for i, rc := range timeline {
		if rc.Rate.IsNil() || rc.Rate.IsNegative() {
			return math.Int{}, fmt.Errorf("invalid rate in timeline entry %d", i)
		}
		if i > 0 && rc.EffectiveFrom < timeline[i-1].EffectiveFrom {
			return math.Int{}, fmt.Errorf("timeline entry %d is out of order", i)
		}
	}

	total := new(big.Int)
	for i, rc := range timeline {
		// entry i is in force until entry i+1 becomes effective, the last
		// entry is open ended. The first entry covers the stake from its
		// beginning even if the stake predates the recorded effective time,
		// which can only happen for the seeded version 0.
		intervalStart := rc.EffectiveFrom
		if i == 0 {
			intervalStart = stakedAt
		}
		intervalEnd := asOf
		if i+1 < len(timeline) {
			intervalEnd = timeline[i+1].EffectiveFrom
		}

		overlapStart := max(intervalStart, stakedAt)
		overlapEnd := min(intervalEnd, asOf)
		if overlapEnd <= overlapStart {
			continue
		}

		seconds := big.NewInt(overlapEnd - overlapStart)
		contribution := new(big.Int).Mul(rc.Rate.BigInt(), seconds)
		contribution.Quo(contribution, big.NewInt(SecondsPerDay))

		total.Add(total, contribution)
		if total.BitLen() > math.MaxBitLen {
			return math.Int{}, ErrOverflow
		}
	}

	return math.NewIntFromBigInt(total), nil
}
