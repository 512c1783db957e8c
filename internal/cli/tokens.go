package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// newTokensCmd creates the "tokens" command for displaying the catalog with
// current prices.
func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "List supported tokens with current prices",
		Long:  "List the supported token catalog with live USD prices, falling back to static defaults when the pricing API is unavailable",
		Example: `  # Show the token table
  tokenconv tokens

  # Include cache statistics
  tokenconv tokens --debug`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTokens(cmd)
		},
	}

	return cmd
}

func runTokens(cmd *cobra.Command) error {
	svc, _, err := buildService(cmd)
	if err != nil {
		return err
	}

	result := svc.AllTokens(cmd.Context())
	if result.Err != nil {
		cmd.PrintErrln("Failed to load token data; showing fallback prices.")
	}

	const tabPadding = 2
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	p := message.NewPrinter(language.English)

	fmt.Fprintln(w, "\tSymbol\tName\tChain\tPrice (USD)")
	fmt.Fprintln(w, "\t------\t----\t-----\t-----------")
	for _, token := range result.Tokens {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			token.Icon,
			token.Symbol,
			token.Name,
			token.ChainID,
			p.Sprintf("%.2f", token.Price),
		)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("rendering token table: %w", err)
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		stats := svc.CacheStats()
		cmd.Printf("cache: %d hits, %d misses (%.1f%% hit rate)\n",
			stats.Hits, stats.Misses, stats.HitRate())
	}

	return nil
}
