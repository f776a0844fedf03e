// Package http implements lospec.Fetcher over net/http.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/lospec"
	"github.com/fwojciec/lospec/logging"
	"github.com/rs/zerolog"
)

// Compile-time interface verification.
var _ lospec.Fetcher = (*Client)(nil)

// DefaultTimeout bounds a single catalog request.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the client to the catalog.
const DefaultUserAgent = "lospec-cli"

// DefaultMaxBodySize caps how much of a response body is read (32MB).
const DefaultMaxBodySize = 32 << 20

// Client fetches catalog resources over HTTP.
type Client struct {
	httpClient *http.Client
	userAgent  string
	maxBody    int64
	logger     zerolog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMaxBodySize sets the largest response body Fetch accepts. Larger
// bodies fail instead of being truncated.
func WithMaxBodySize(n int64) ClientOption {
	return func(c *Client) {
		c.maxBody = n
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new Client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		userAgent:  DefaultUserAgent,
		maxBody:    DefaultMaxBodySize,
		logger:     logging.For("http"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch issues a GET to url with query appended and returns the body.
// Transport failures and non-2xx responses are returned as *lospec.TransportError.
func (c *Client) Fetch(ctx context.Context, url string, query lospec.Query) ([]byte, error) {
	target := url
	if len(query) > 0 {
		target = url + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &lospec.TransportError{URL: target, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	done := logging.LogOperationStart(c.logger.With().Str("url", target).Logger(), "fetch")
	defer done()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &lospec.TransportError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, c.maxBody))
		return nil, &lospec.TransportError{
			URL:        target,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, &lospec.TransportError{URL: target, Err: err}
	}
	if int64(len(body)) > c.maxBody {
		return nil, &lospec.TransportError{URL: target, Err: fmt.Errorf("response exceeds %d bytes", c.maxBody)}
	}
	c.logger.Debug().Str("url", target).Int("bytes", len(body)).Msg("Fetched")
	return body, nil
}
