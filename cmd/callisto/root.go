package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"selam-hq/callisto/pkg/cli"
	"selam-hq/callisto/pkg/loader"
	"selam-hq/callisto/pkg/telemetry/logging"
)

var (
	// Global flags
	configDir   string
	environment string
	output      string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "callisto",
	Short: "Selam Callisto - layered configuration service for the trading platform",
	Long: `Selam Callisto resolves the trading platform's layered YAML configuration
tree into validated documents and serves them over HTTP.

It provides:
  - Layered resolution: base documents plus per-environment overrides
  - Environment variable substitution with defaults
  - Typed validation that reports every violation at once
  - Cached lookups with hot reload on file changes
  - A read-only HTTP API for the rest of the platform`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDir := os.Getenv("CONFIG_DIR")
	if defaultDir == "" {
		defaultDir = "config"
	}
	rootCmd.PersistentFlags().StringVarP(&configDir, "config-dir", "c", defaultDir, "configuration directory (defaults to CONFIG_DIR, then config)")
	rootCmd.PersistentFlags().StringVarP(&environment, "environment", "e", "", "environment override (defaults to ENVIRONMENT, then development)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// newLogger builds the CLI logger honoring the verbose flag.
func newLogger() (*slog.Logger, error) {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Config{Level: level, Format: "text", Writer: os.Stderr})
}

// newLoader builds a loader from the global flags.
func newLoader() (*loader.Loader, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}
	return loader.New(loader.Options{
		Dir:         configDir,
		Environment: environment,
		Logger:      logger,
	})
}

// formatter resolves the output flag.
func formatter() (cli.Formatter, error) {
	return cli.NewFormatter(output)
}
