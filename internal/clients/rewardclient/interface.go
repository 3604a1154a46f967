package rewardclient

import (
	"context"

	"cosmossdk.io/math"
)

// RewardInterface is the payout contract of the fungible reward asset
// service. Amounts are in the reward asset's base units.
type RewardInterface interface {
	// PayOut issues the amount to the recipient. Fails with
	// ErrPayoutRejected when the service refuses, e.g. the pool cannot
	// cover the amount.
	PayOut(ctx context.Context, to string, amount math.Int) error
	// BalanceAvailable returns the amount the service can currently pay
	// out, used for pre-flight liquidity checks.
	BalanceAvailable(ctx context.Context) (math.Int, error)
}
