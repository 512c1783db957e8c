// Package cli wires the tokenconv commands: one-shot conversion, the token
// table, and the interactive TUI.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the tokenconv CLI.
// It wires up logging and the convert, tokens, and tui subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tokenconv",
		Short:   "Token price converter",
		Long:    "tokenconv: convert amounts between tokens using live USD prices",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Negative TTLs cause undefined cache expiry behavior.
			cacheTTL, _ := cmd.Flags().GetInt("cache-ttl")
			if cacheTTL < 0 {
				return fmt.Errorf("cache-ttl must be >= 0, got %d", cacheTTL)
			}

			setupLogging(cmd)
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().
		Int("cache-ttl", 0, "cache TTL in seconds (0 = use config default, overrides config file and env var)")
	cmd.AddCommand(newConvertCmd(), newTokensCmd(), newTUICmd())

	return cmd
}

const rootCmdExample = `  # Convert 1 USDC into ETH at live prices
  tokenconv convert 1 USDC ETH

  # Show the supported tokens with current prices
  tokenconv tokens

  # Interactive conversion view
  tokenconv tui

  # Shorter cache window (30 seconds)
  tokenconv tokens --cache-ttl 30`

// Execute builds the root command and runs it.
func Execute(ver string) error {
	return NewRootCmd(ver).Execute()
}
