package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"selam-hq/callisto/pkg/alerting"
	"selam-hq/callisto/pkg/cli"
	"selam-hq/callisto/pkg/loader"
	"selam-hq/callisto/pkg/server"
	"selam-hq/callisto/pkg/telemetry/logging"
	"selam-hq/callisto/pkg/telemetry/metrics"
	"selam-hq/callisto/pkg/telemetry/tracker"
)

var (
	serveListen string
	serveWatch  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the configuration API over HTTP",
	Long: `Serve starts the configuration API. The listen address comes from the
resolved main document's api section unless --listen or the
CALLISTO_LISTEN_ADDRESS environment variable overrides it.

With --watch the configuration tree is watched for changes and affected
cache entries are invalidated automatically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runServe()
	},
}

func runServe() error {
	logLevel := "info"
	if verbose {
		logLevel = "debug"
	}
	logger, err := logging.New(logging.Config{Level: logLevel, Format: "json"})
	if err != nil {
		return cli.NewCommandError("serve", err)
	}

	collector := metrics.NewCollector(nil, nil)
	track := tracker.New(tracker.Options{})

	alerts := alerting.NewManager(logger, alerting.Options{})
	alerts.RegisterChannel(alerting.NewLogChannel(logger))
	if err := alerts.AddRule(alerting.Rule{
		Name:     "config_validation_failed",
		Severity: alerting.SeverityCritical,
		Message:  "configuration tree failed validation",
		Cooldown: 5 * time.Minute,
	}); err != nil {
		return cli.NewCommandError("serve", err)
	}

	l, err := loader.New(loader.Options{
		Dir:         configDir,
		Environment: environment,
		Logger:      logger,
		Metrics:     collector,
	})
	if err != nil {
		return cli.NewCommandError("serve", err)
	}

	// Surface broken documents at startup instead of on first request.
	if err := l.CheckAll(); err != nil {
		logger.Warn("configuration tree has invalid documents", "error", err)
	}

	// The service's own listen address lives in the configuration it serves.
	mainCfg, err := l.Main()
	if err != nil {
		return cli.NewCommandError("serve", fmt.Errorf("failed to resolve main config: %w", err))
	}
	listen := serveListen
	if listen == "" {
		listen = os.Getenv("CALLISTO_LISTEN_ADDRESS")
	}
	if listen == "" {
		listen = net.JoinHostPort(mainCfg.API.Host, strconv.Itoa(mainCfg.API.Port))
	}

	srv, err := server.New(server.Options{
		Config:  server.Config{ListenAddress: listen},
		Loader:  l,
		Metrics: collector,
		Tracker: track,
		Alerts:  alerts,
		Logger:  logger,
	})
	if err != nil {
		return cli.NewCommandError("serve", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if serveWatch {
		watcher, err := loader.NewFileWatcher(l, nil, logger)
		if err != nil {
			return cli.NewCommandError("serve", err)
		}
		go func() {
			if err := watcher.Watch(ctx); err != nil {
				logger.Error("file watcher exited", "error", err)
			}
		}()
		defer func() {
			if err := watcher.Stop(); err != nil {
				logger.Error("file watcher stop failed", "error", err)
			}
		}()
	}

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("serve", err)
	}
	return nil
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address override (host:port)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "watch the configuration tree and invalidate on changes")
	rootCmd.AddCommand(serveCmd)
}
