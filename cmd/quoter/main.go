// Quoter is the interactive terminal frontend of the postage comparator API.
//
// Usage:
//
//	quoter [flags]
//
// It manages the origin settings, the item and packaging catalogs, and prices
// shipments through a running API. Logs go to --log-file, never to the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/guttosm/postage-comparator/config"
	"github.com/guttosm/postage-comparator/internal/client"
	"github.com/guttosm/postage-comparator/internal/logger"
	"github.com/guttosm/postage-comparator/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	apiURL     string
	apiTimeout time.Duration
	logLevel   string
	logFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quoter",
	Short: "Terminal client for the postage comparator API",
	Long: `An interactive terminal client for the postage comparator API.

Set the origin address once, maintain the item and packaging catalogs,
then compare carrier prices for a destination.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runQuoter,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quoter %s\n", version)
	},
}

func init() {
	cfg := config.Load().Client

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Flags().StringVar(&apiURL, "api-url", cfg.BaseURL, "Base URL of the postage API (env POSTAGE_API_BASE_URL)")
	rootCmd.Flags().DurationVar(&apiTimeout, "timeout", cfg.Timeout, "Per-request timeout (env POSTAGE_API_TIMEOUT)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error, off")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file (default: discarded)")

	rootCmd.AddCommand(versionCmd)
}

func runQuoter(cmd *cobra.Command, args []string) error {
	var w io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	logger.InitWithWriter(logLevel, false, w)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.Component("quoter")
	log.Info().
		Str("api_url", apiURL).
		Dur("timeout", apiTimeout).
		Msg("Starting terminal client")

	api := client.New(apiURL, client.WithTimeout(apiTimeout))
	if err := ui.Run(ctx, ui.NewController(api)); err != nil {
		return fmt.Errorf("run terminal client: %w", err)
	}
	return nil
}
