package assetclient

import (
	"context"
	"time"

	"github.com/babylonlabs-io/nft-staking-engine/internal/observability/metrics"
)

type assetClientWithMetrics struct {
	asset AssetInterface
}

func NewAssetClientWithMetrics(asset AssetInterface) *assetClientWithMetrics {
	return &assetClientWithMetrics{asset: asset}
}

func (a *assetClientWithMetrics) TransferCustody(ctx context.Context, assetID, from, to string) error {
	_, err := runAssetClientMethodWithMetrics("TransferCustody", func() (struct{}, error) {
		return struct{}{}, a.asset.TransferCustody(ctx, assetID, from, to)
	})
	return err
}

func (a *assetClientWithMetrics) CurrentHolder(ctx context.Context, assetID string) (string, error) {
	return runAssetClientMethodWithMetrics("CurrentHolder", func() (string, error) {
		return a.asset.CurrentHolder(ctx, assetID)
	})
}

func runAssetClientMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	result, err := f()
	duration := time.Since(startTime)

	metrics.RecordAssetClientLatency(duration, method, err != nil)
	return result, err
}
