package assetclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/nft-staking-engine/internal/clients/client"
	"github.com/babylonlabs-io/nft-staking-engine/internal/config"
)

const (
	transfersEndpoint = "/v1/transfers"
	holderEndpoint    = "/v1/assets/%s/holder"
)

// ErrTransferRejected means the custody service refused the transfer, e.g.
// the sender is not the holder or approval is missing. Never retried.
var ErrTransferRejected = errors.New("custody transfer rejected")

type Client struct {
	httpClient *http.Client
	cfg        *config.AssetClientConfig
}

func NewClient(cfg *config.AssetClientConfig) *Client {
	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

func (c *Client) GetBaseURL() string {
	return c.cfg.Endpoint
}

func (c *Client) GetDefaultRequestTimeout() time.Duration {
	return c.cfg.Timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

func (c *Client) TransferCustody(ctx context.Context, assetID, from, to string) error {
	type transferRequest struct {
		AssetID string `json:"asset_id"`
		From    string `json:"from"`
		To      string `json:"to"`
	}
	type transferResponse struct {
		TransferID string `json:"transfer_id"`
	}

	call := func() (*transferResponse, error) {
		opts := &client.HttpClientOptions{
			Path:         transfersEndpoint,
			TemplatePath: transfersEndpoint,
		}
		input := &transferRequest{AssetID: assetID, From: from, To: to}
		return client.SendRequest[transferRequest, transferResponse](ctx, c, http.MethodPost, opts, input)
	}

	_, err := clientCallWithRetry(ctx, call, c.cfg)
	if err != nil {
		var respErr *client.HttpResponseError
		if errors.As(err, &respErr) && respErr.IsRejection() {
			return fmt.Errorf("%w: %s", ErrTransferRejected, respErr.Message)
		}
		return fmt.Errorf("custody transfer of %s failed: %w", assetID, err)
	}
	return nil
}

func (c *Client) CurrentHolder(ctx context.Context, assetID string) (string, error) {
	type empty struct{}
	type holderResponse struct {
		AssetID string `json:"asset_id"`
		Holder  string `json:"holder"`
	}

	call := func() (*holderResponse, error) {
		opts := &client.HttpClientOptions{
			Path:         fmt.Sprintf(holderEndpoint, assetID),
			TemplatePath: holderEndpoint,
		}
		return client.SendRequest[empty, holderResponse](ctx, c, http.MethodGet, opts, nil)
	}

	resp, err := clientCallWithRetry(ctx, call, c.cfg)
	if err != nil {
		return "", fmt.Errorf("failed to resolve holder of %s: %w", assetID, err)
	}
	if resp.Holder == "" {
		return "", fmt.Errorf("custody service returned empty holder for %s", assetID)
	}
	return resp.Holder, nil
}

func clientCallWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[*T],
	cfg *config.AssetClientConfig,
) (*T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			// rejections are authoritative answers, only transport and
			// server failures are worth retrying
			var respErr *client.HttpResponseError
			if errors.As(err, &respErr) && respErr.IsRejection() {
				return false
			}
			return err != nil
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.MaxRetryTimes).
				Err(err).
				Msg("failed to call asset custody service, retrying")
		}),
	)
	if err != nil {
		return nil, err
	}
	return result, nil
}
