package assetclient

import "context"

// AssetInterface is the custody contract of the non-fungible asset service.
// The engine never bypasses it: an asset is in the engine's custody exactly
// when a TransferCustody to the engine address succeeded and no transfer back
// has happened since.
type AssetInterface interface {
	// TransferCustody moves the asset between holders. It fails with
	// ErrTransferRejected when the service refuses, e.g. the from party is
	// not the current holder or has not authorized the transfer.
	TransferCustody(ctx context.Context, assetID, from, to string) error
	CurrentHolder(ctx context.Context, assetID string) (string, error)
}
