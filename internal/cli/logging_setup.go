package cli

import (
	"github.com/spf13/cobra"

	"github.com/tokenconv/tokenconv/internal/config"
	"github.com/tokenconv/tokenconv/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI
// flags, and attaches a per-invocation trace ID to the command context.
func setupLogging(cmd *cobra.Command) {
	cfg, warnings := config.Load()
	loggingCfg := cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	result := logging.New(logging.Config{
		Level:  loggingCfg.Level,
		Format: loggingCfg.Format,
		File:   loggingCfg.File,
	})
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.FallbackUsed {
		logger.Warn().Str("file", loggingCfg.File).Msg("log file unavailable, logging to console only")
	}
	for _, w := range warnings {
		logger.Warn().Msg(w)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Str("trace_id", traceID).Msg("command started")
}
