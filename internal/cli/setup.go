package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tokenconv/tokenconv/internal/catalog"
	"github.com/tokenconv/tokenconv/internal/config"
	"github.com/tokenconv/tokenconv/internal/engine/cache"
	"github.com/tokenconv/tokenconv/internal/pricing"
	"github.com/tokenconv/tokenconv/internal/pricing/api"
)

// buildService constructs the token service for one invocation: config, a
// fresh TTL cache, and the pricing API client. The cache lives for the
// process only; repeated lookups within one command still benefit.
func buildService(cmd *cobra.Command) (*pricing.Service, config.Config, error) {
	cfg, _ := config.Load()

	ttlFlag, _ := cmd.Flags().GetInt("cache-ttl")
	store, err := cache.NewStore[catalog.Token](cfg.CacheTTL(ttlFlag), nil)
	if err != nil {
		return nil, cfg, fmt.Errorf("creating token cache: %w", err)
	}

	var opts []api.Option
	if cfg.APIURL != "" {
		opts = append(opts, api.WithBaseURL(cfg.APIURL))
	}
	client := api.NewClient(cfg.APIKey, logger, opts...)
	return pricing.NewService(client, store, logger), cfg, nil
}
