package assetclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/nft-staking-engine/internal/config"
)

func testConfig(endpoint string) *config.AssetClientConfig {
	return &config.AssetClientConfig{
		Endpoint:      endpoint,
		Timeout:       5 * time.Second,
		MaxRetryTimes: 3,
		RetryInterval: 10 * time.Millisecond,
	}
}

func TestTransferCustody_RetriesServerErrors(t *testing.T) {
	requestCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		if requestCount <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "asset-1", req["asset_id"])
		assert.Equal(t, "staker-1", req["from"])
		assert.Equal(t, "engine", req["to"])

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"transfer_id":"t-1"}`))
	}))
	defer server.Close()

	c := NewClient(testConfig(server.URL))
	err := c.TransferCustody(context.Background(), "asset-1", "staker-1", "engine")
	require.NoError(t, err)
	assert.Equal(t, 3, requestCount, "should have made 3 requests (2 failures + 1 success)")
}

func TestTransferCustody_RejectionNotRetried(t *testing.T) {
	requestCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`sender is not the holder`))
	}))
	defer server.Close()

	c := NewClient(testConfig(server.URL))
	err := c.TransferCustody(context.Background(), "asset-1", "staker-1", "engine")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransferRejected))
	assert.Equal(t, 1, requestCount, "rejections are authoritative and must not be retried")
}

func TestCurrentHolder(t *testing.T) {
	t.Run("resolves holder", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/assets/asset-1/holder", r.URL.Path)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"asset_id":"asset-1","holder":"engine"}`))
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL))
		holder, err := c.CurrentHolder(context.Background(), "asset-1")
		require.NoError(t, err)
		assert.Equal(t, "engine", holder)
	})

	t.Run("empty holder is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"asset_id":"asset-1","holder":""}`))
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL))
		_, err := c.CurrentHolder(context.Background(), "asset-1")
		require.Error(t, err)
	})
}
