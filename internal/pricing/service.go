// Package pricing fetches token data through a TTL cache and assembles the
// catalog-wide token set with per-token fallbacks.
package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tokenconv/tokenconv/internal/catalog"
	"github.com/tokenconv/tokenconv/internal/engine/cache"
	"github.com/tokenconv/tokenconv/internal/logging"
	"github.com/tokenconv/tokenconv/internal/pricing/api"
)

// ErrAllFetchesFailed indicates every catalog fetch in a batch round failed;
// callers surface this as a non-blocking banner over the fallback set.
var ErrAllFetchesFailed = errors.New("failed to load token data")

// Outcome classifies a single token fetch. External-call failures never
// propagate as errors past this layer; they become outcome values.
type Outcome int

const (
	// OutcomeFound means a token was produced (possibly with price 0 when
	// only the price lookup failed).
	OutcomeFound Outcome = iota

	// OutcomeNotFound means the API has no such asset.
	OutcomeNotFound

	// OutcomeError means the metadata lookup itself failed.
	OutcomeError
)

// Fetch is the result of a single token lookup.
type Fetch struct {
	Outcome Outcome

	// Token is populated when Outcome is OutcomeFound.
	Token catalog.Token

	// PriceErr records a failed price lookup on an otherwise found token.
	// Distinguishes "no price available" (Price 0 + PriceErr set) from a
	// genuine zero price.
	PriceErr error

	// Err records the metadata failure when Outcome is OutcomeError.
	Err error
}

// AssetAPI is the slice of the pricing API the service consumes.
type AssetAPI interface {
	LookupAsset(ctx context.Context, chainID, symbol string) (*api.Asset, error)
	LookupPrice(ctx context.Context, chainID, address string) (float64, error)
}

// Service resolves token data, caching successful fetches.
type Service struct {
	api    AssetAPI
	store  *cache.Store[catalog.Token]
	logger zerolog.Logger
}

// NewService creates a token service over the given API client and cache.
func NewService(assetAPI AssetAPI, store *cache.Store[catalog.Token], logger zerolog.Logger) *Service {
	return &Service{
		api:    assetAPI,
		store:  store,
		logger: logging.ComponentLogger(logger, "pricing"),
	}
}

// CacheKey returns the cache key for a token, "token-{chainID}-{symbol}".
func CacheKey(chainID, symbol string) string {
	return fmt.Sprintf("token-%s-%s", chainID, symbol)
}

// TokenInfo resolves one token. Cached tokens are returned immediately; on a
// miss the asset API is consulted and a successful result is written to the
// cache before returning. A failed price lookup defaults the price to 0 and
// is recorded in PriceErr rather than failing the fetch.
func (s *Service) TokenInfo(ctx context.Context, chainID, symbol string) Fetch {
	key := CacheKey(chainID, symbol)
	if token, ok := s.store.Get(key); ok {
		return Fetch{Outcome: OutcomeFound, Token: token}
	}

	asset, err := s.api.LookupAsset(ctx, chainID, symbol)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return Fetch{Outcome: OutcomeNotFound}
		}
		s.logger.Warn().Err(err).
			Str("chain_id", chainID).
			Str("symbol", symbol).
			Msg("asset lookup failed")
		return Fetch{Outcome: OutcomeError, Err: err}
	}

	fetch := Fetch{Outcome: OutcomeFound}
	var price float64
	if asset.Address != "" {
		price, err = s.api.LookupPrice(ctx, chainID, asset.Address)
		if err != nil {
			// Price failure is soft: the token is still found at price 0.
			s.logger.Warn().Err(err).
				Str("symbol", symbol).
				Str("address", asset.Address).
				Msg("price lookup failed, defaulting to 0")
			price = 0
			fetch.PriceErr = err
		}
	}

	icon := ""
	if entry, ok := catalog.Find(chainID, symbol); ok {
		icon = entry.Icon
	}

	fetch.Token = catalog.Token{
		Symbol:  asset.Symbol,
		Name:    asset.Name,
		Price:   price,
		Icon:    icon,
		ChainID: chainID,
		Address: asset.Address,
	}

	if setErr := s.store.Set(key, fetch.Token); setErr != nil {
		s.logger.Warn().Err(setErr).Str("key", key).Msg("cache write failed")
	}

	return fetch
}

// Result is the outcome of a catalog-wide fetch round. Tokens always holds
// exactly one entry per catalog position, in catalog order. Err is set only
// when every live fetch failed, so callers can show a banner while still
// rendering the fallback set.
type Result struct {
	Tokens []catalog.Token
	Err    error
}

// AllTokens resolves the full catalog. When every catalog token already has
// a valid cache entry the cached set is returned without network calls; a
// single missing entry triggers a full refetch round for all tokens.
// Individual failures are patched with the static fallback record for that
// catalog position.
func (s *Service) AllTokens(ctx context.Context) Result {
	entries := catalog.Entries()

	if tokens, ok := s.cachedSet(entries); ok {
		return Result{Tokens: tokens}
	}

	fetches := make([]Fetch, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	for i, entry := range entries {
		g.Go(func() error {
			fetches[i] = s.TokenInfo(ctx, entry.ChainID, entry.Symbol)
			return nil
		})
	}
	// Fetch goroutines only report outcomes, never errors.
	_ = g.Wait()

	tokens := make([]catalog.Token, len(entries))
	failures := 0
	for i, entry := range entries {
		if fetches[i].Outcome == OutcomeFound {
			tokens[i] = fetches[i].Token
			continue
		}
		tokens[i] = catalog.Fallback(entry)
		failures++
		s.logger.Debug().
			Str("symbol", entry.Symbol).
			Float64("fallback_price", tokens[i].Price).
			Msg("substituting fallback token")
	}

	result := Result{Tokens: tokens}
	if failures == len(entries) {
		result.Err = ErrAllFetchesFailed
	}

	return result
}

// cachedSet returns the full catalog from cache iff every entry is valid.
// The check is all-or-nothing: it deliberately does not mix cached and
// freshly fetched tokens within one round.
func (s *Service) cachedSet(entries []catalog.Entry) ([]catalog.Token, bool) {
	for _, entry := range entries {
		if !s.store.Peek(CacheKey(entry.ChainID, entry.Symbol)) {
			return nil, false
		}
	}

	tokens := make([]catalog.Token, 0, len(entries))
	for _, entry := range entries {
		token, ok := s.store.Get(CacheKey(entry.ChainID, entry.Symbol))
		if !ok {
			// Entry expired between the check and the read; force a
			// fresh round instead of returning a partial set.
			return nil, false
		}
		tokens = append(tokens, token)
	}

	return tokens, true
}

// CacheStats exposes the underlying cache counters for observability.
func (s *Service) CacheStats() cache.Stats {
	return s.store.Stats()
}
