// Package auth centralizes the capability checks performed by mutating ledger
// operations, so every entry point authorizes callers the same way.
package auth

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/babylonlabs-io/nft-staking-engine/internal/types"
)

type Policy struct {
	adminKey string
}

func NewPolicy(adminKey string) *Policy {
	return &Policy{adminKey: adminKey}
}

// RequireAdmin verifies the administrator capability. The comparison is
// constant time so the key cannot be probed byte by byte.
func (p *Policy) RequireAdmin(providedKey string) *types.Error {
	if subtle.ConstantTimeCompare([]byte(p.adminKey), []byte(providedKey)) != 1 {
		return types.NewErrorWithMsg(
			http.StatusForbidden,
			types.Unauthorized,
			"administrator capability required",
		)
	}
	return nil
}

// RequireOwner verifies that the caller is the stake's depositor. Only the
// recorded owner may trigger withdrawal.
func (p *Policy) RequireOwner(ownerAddress, callerAddress string) *types.Error {
	if ownerAddress != callerAddress {
		return types.NewError(
			http.StatusForbidden,
			types.NotStakeOwner,
			fmt.Errorf("caller %s is not the stake owner", callerAddress),
		)
	}
	return nil
}
