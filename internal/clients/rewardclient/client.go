package rewardclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cosmossdk.io/math"
	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/nft-staking-engine/internal/clients/client"
	"github.com/babylonlabs-io/nft-staking-engine/internal/config"
)

const (
	payoutsEndpoint = "/v1/payouts"
	balanceEndpoint = "/v1/balance"
)

// ErrPayoutRejected means the reward service refused the payout, typically
// because the reward pool cannot cover the amount. Never retried.
var ErrPayoutRejected = errors.New("reward payout rejected")

type Client struct {
	httpClient *http.Client
	cfg        *config.RewardClientConfig
}

func NewClient(cfg *config.RewardClientConfig) *Client {
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

func (c *Client) PayOut(ctx context.Context, to string, amount math.Int) error {
	type payoutRequest struct {
		To     string `json:"to"`
		Amount string `json:"amount"`
	}
	type payoutResponse struct {
		PayoutID string `json:"payout_id"`
	}

	call := func() (*payoutResponse, error) {
		opts := &client.HttpClientOptions{
			Path:         payoutsEndpoint,
			TemplatePath: payoutsEndpoint,
		}
		input := &payoutRequest{To: to, Amount: amount.String()}
		return client.SendRequest[payoutRequest, payoutResponse](ctx, c, http.MethodPost, opts, input)
	}

	_, err := clientCallWithRetry(ctx, call, c.cfg)
	if err != nil {
		var respErr *client.HttpResponseError
		if errors.As(err, &respErr) && respErr.IsRejection() {
			return fmt.Errorf("%w: %s", ErrPayoutRejected, respErr.Message)
		}
		return fmt.Errorf("payout of %s to %s failed: %w", amount, to, err)
	}
	return nil
}

func (c *Client) BalanceAvailable(ctx context.Context) (math.Int, error) {
	type empty struct{}
	type balanceResponse struct {
		Available string `json:"available"`
	}

	call := func() (*balanceResponse, error) {
		opts := &client.HttpClientOptions{
			Path:         balanceEndpoint,
			TemplatePath: balanceEndpoint,
		}
		return client.SendRequest[empty, balanceResponse](ctx, c, http.MethodGet, opts, nil)
	}

	resp, err := clientCallWithRetry(ctx, call, c.cfg)
	if err != nil {
		return math.Int{}, fmt.Errorf("failed to fetch available balance: %w", err)
	}

	available, ok := math.NewIntFromString(resp.Available)
	if !ok {
		return math.Int{}, fmt.Errorf("reward service returned malformed balance %q", resp.Available)
	}
	return available, nil
}

func clientCallWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[*T],
	cfg *config.RewardClientConfig,
) (*T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
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
				Msg("failed to call reward asset service, retrying")
		}),
	)
	if err != nil {
		return nil, err
	}
	return result, nil
}
