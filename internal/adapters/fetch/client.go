// Package fetch provides the shared HTTP client used by every source
// adapter. It bounds the number of in-flight requests and memoizes
// response bodies by URL for the lifetime of a run.
package fetch

import (
	"context"
	"io"
	"net/http"
	"time"

	cache "github.com/patrickmn/go-cache"
	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/semaphore"
)

const (
	httpClientTimeout = 30 * time.Second
	userAgent         = "scout"

	// maxInFlight caps concurrent HTTP requests across all sources.
	// Source invocations fan out one request per package, so this is
	// the backstop below the per-invocation parallelism cap.
	maxInFlight = 100
)

// Client is the run-scoped HTTP client shared by all source adapters.
type Client struct {
	httpClient *http.Client
	gate       *semaphore.Weighted
	memo       *cache.Cache
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client with the default timeout and limits.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: httpClientTimeout,
		},
		gate: semaphore.NewWeighted(maxInFlight),
		memo: cache.New(cache.NoExpiration, 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches url and returns the response body. Extra headers are
// applied on top of the client's User-Agent. Successful bodies are
// memoized by URL, so asking twice for the same endpoint within a run
// costs one request. A 404 maps to domain.ErrRemoteNotFound; any other
// non-200 status maps to domain.ErrSourceRequestFailed.
func (c *Client) Get(ctx context.Context, url string, header http.Header) ([]byte, error) {
	if body, ok := c.memo.Get(url); ok {
		return body.([]byte), nil
	}

	if err := c.gate.Acquire(ctx, 1); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSourceRequestFailed.Error())
	}
	defer c.gate.Release(1)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSourceRequestFailed.Error())
	}
	req.Header.Set("User-Agent", userAgent)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSourceRequestFailed.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, zerr.With(domain.ErrRemoteNotFound, "url", url)
	}

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(domain.ErrSourceRequestFailed, "status_code", resp.StatusCode)
		return nil, zerr.With(statusErr, "url", url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSourceRequestFailed.Error())
	}

	c.memo.Set(url, body, cache.NoExpiration)
	return body, nil
}

// Close releases idle connections. The memo dies with the client.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
