// Package cli provides the command-line interface for pocketshelf.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"pocketshelf/config"
	"pocketshelf/logging"
)

var (
	// Global flags
	verbose bool

	// Global logger
	logger zerolog.Logger

	// Runtime configuration from .env and the environment
	cfg config.Config
)

// Version is set by the main package at startup.
var Version = "v0.1.0-dev"

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pocketshelf",
		Short: "Pocket Shelf - browse and convert Pocket exports",
		Long: `Pocket Shelf ` + Version + `
Converts Pocket CSV exports to JSON and browses the resulting catalog.

  serve        HTML catalog page, converter and JSON API
  view         terminal catalog viewer and converter
  normalize    convert CSV from a file or stdin
  import-feed  turn an RSS/Atom feed into a catalog document`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewDefault()
			if verbose {
				logging.SetGlobalLevel(zerolog.DebugLevel)
			}
			cfg = config.Load()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	rootCmd.Version = Version

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newNormalizeCmd())
	rootCmd.AddCommand(newImportFeedCmd())
	return rootCmd
}

// Execute runs the root command, cancelling its context on SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}
