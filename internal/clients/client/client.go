// Package client carries the shared plumbing for the engine's outgoing HTTP
// collaborator calls.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HttpClient is implemented by each collaborator client so SendRequest can
// build requests against its base URL and timeouts.
type HttpClient interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() time.Duration
	GetHttpClient() *http.Client
}

type HttpClientOptions struct {
	Path string
	// TemplatePath is the path with placeholders unexpanded, used for
	// logging and metrics labels so they stay low cardinality.
	TemplatePath string
	Headers      map[string]string
}

// HttpResponseError carries the collaborator's status code so callers can
// distinguish a rejection from an outage.
type HttpResponseError struct {
	StatusCode int
	Message    string
}

func (e *HttpResponseError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// IsRejection reports whether the collaborator refused the request rather
// than failing to process it. Rejections must not be retried.
func (e *HttpResponseError) IsRejection() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

func SendRequest[I any, O any](
	ctx context.Context,
	c HttpClient,
	method string,
	opts *HttpClientOptions,
	input *I,
) (*O, error) {
	url := c.GetBaseURL() + opts.Path

	var body io.Reader
	if input != nil {
		payload, err := json.Marshal(input)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	ctx, cancel := context.WithTimeout(ctx, c.GetDefaultRequestTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.GetHttpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", opts.TemplatePath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &HttpResponseError{
			StatusCode: resp.StatusCode,
			Message:    string(bytes.TrimSpace(msg)),
		}
	}

	var output O
	if err := json.NewDecoder(resp.Body).Decode(&output); err != nil {
		if err == io.EOF {
			return &output, nil
		}
		return nil, fmt.Errorf("failed to decode response from %s: %w", opts.TemplatePath, err)
	}
	return &output, nil
}
