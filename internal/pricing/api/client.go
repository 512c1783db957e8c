// Package api implements the HTTP client for the external asset pricing API.
//
// Two operations are consumed: asset lookup by (chain, symbol) and unit-price
// lookup by (chain, address). Both authenticate with an API key header; a
// missing key is not an error here — requests are sent anyway and the server's
// rejection surfaces like any other failure, which callers convert to
// fallback behavior.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/tokenconv/tokenconv/internal/logging"
)

// DefaultBaseURL is the production pricing API endpoint.
const DefaultBaseURL = "https://api.assetdex.io/v1"

// defaultTimeout bounds each API call.
const defaultTimeout = 30 * time.Second

// apiKeyHeader carries the API key on every request.
const apiKeyHeader = "X-API-Key"

// ErrNotFound indicates the API answered but has no data for the query.
var ErrNotFound = errors.New("asset not found")

// Asset is the metadata record returned by the asset-lookup operation.
type Asset struct {
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	ChainID string `json:"chainId"`
	Address string `json:"address,omitempty"`
}

// priceResponse is the wire shape of the price-lookup operation.
type priceResponse struct {
	Price float64 `json:"price"`
}

// Client calls the asset pricing API.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	logger  zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a non-default endpoint (tests).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// NewClient creates a pricing API client. An empty apiKey is tolerated and
// logged as a warning: calls will fail and callers fall back to defaults.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: defaultTimeout},
		logger:  logging.ComponentLogger(logger, "pricing-api"),
	}
	for _, opt := range opts {
		opt(c)
	}

	if apiKey == "" {
		c.logger.Warn().Msg("no API key configured; price lookups will use fallback values")
	}

	return c
}

// LookupAsset fetches metadata for (chainID, symbol).
// Returns ErrNotFound when the API has no such asset.
func (c *Client) LookupAsset(ctx context.Context, chainID, symbol string) (*Asset, error) {
	q := url.Values{}
	q.Set("chainId", chainID)
	q.Set("symbol", symbol)

	var asset Asset
	if err := c.getJSON(ctx, "/assets", q, &asset); err != nil {
		return nil, err
	}
	if asset.Symbol == "" {
		return nil, ErrNotFound
	}

	return &asset, nil
}

// LookupPrice fetches the unit USD price for the token at address on chainID.
// Returns ErrNotFound when the API has no price for the address.
func (c *Client) LookupPrice(ctx context.Context, chainID, address string) (float64, error) {
	q := url.Values{}
	q.Set("chainId", chainID)
	q.Set("address", address)

	var resp priceResponse
	if err := c.getJSON(ctx, "/prices", q, &resp); err != nil {
		return 0, err
	}

	return resp.Price, nil
}

// getJSON performs an authenticated GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	reqURL := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("calling pricing API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug().
		Str("trace_id", logging.TraceIDFromContext(ctx)).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("pricing API call")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("pricing API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding pricing API response: %w", err)
	}

	return nil
}
