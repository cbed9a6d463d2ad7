package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"selam-hq/callisto/pkg/alerting"
	"selam-hq/callisto/pkg/loader"
	"selam-hq/callisto/pkg/telemetry/metrics"
	"selam-hq/callisto/pkg/telemetry/tracker"
)

// Default server timeouts.
const (
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 15 * time.Second
)

// Config contains configuration for the HTTP server.
type Config struct {
	// ListenAddress is the host:port the server binds to.
	ListenAddress string

	// ReadTimeout bounds reading the request.
	ReadTimeout time.Duration

	// WriteTimeout bounds writing the response.
	WriteTimeout time.Duration

	// IdleTimeout bounds keep-alive idle connections.
	IdleTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// applyDefaults fills zero-valued timeouts.
func (c *Config) applyDefaults() {
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = DefaultIdleTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
}

// Server serves the configuration API over HTTP.
type Server struct {
	config  Config
	loader  *loader.Loader
	metrics *metrics.Collector
	tracker *tracker.Tracker
	alerts  *alerting.Manager
	logger  *slog.Logger

	httpServer   *http.Server
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// Options holds the server's dependencies. Loader is required; the rest
// are optional.
type Options struct {
	Config  Config
	Loader  *loader.Loader
	Metrics *metrics.Collector
	Tracker *tracker.Tracker
	Alerts  *alerting.Manager
	Logger  *slog.Logger
}

// New creates a configuration API server.
func New(opts Options) (*Server, error) {
	if opts.Loader == nil {
		return nil, fmt.Errorf("server requires a config loader")
	}
	if opts.Config.ListenAddress == "" {
		return nil, fmt.Errorf("server requires a listen address")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	opts.Config.applyDefaults()

	return &Server{
		config:       opts.Config,
		loader:       opts.Loader,
		metrics:      opts.Metrics,
		tracker:      opts.Tracker,
		alerts:       opts.Alerts,
		logger:       opts.Logger,
		shutdownChan: make(chan struct{}),
	}, nil
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	s.httpServer = &http.Server{
		Addr:         s.config.ListenAddress,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("config API server starting",
			"address", s.config.ListenAddress,
			"environment", s.loader.Environment(),
		)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		s.logger.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	case <-s.shutdownChan:
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		running := s.isRunning
		s.isRunning = false
		s.mu.Unlock()
		if !running {
			return
		}

		s.logger.Info("initiating graceful shutdown",
			"timeout", s.config.ShutdownTimeout.String(),
		)

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				s.logger.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.logger.Info("server shutdown complete")
	})

	return shutdownErr
}

// Stop requests an asynchronous shutdown from another goroutine.
func (s *Server) Stop() {
	select {
	case <-s.shutdownChan:
	default:
		close(s.shutdownChan)
	}
}

// Handler builds the full route table wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}

	mux.HandleFunc("GET /api/config/info", s.handleInfo)
	mux.HandleFunc("GET /api/config/main", s.handleMain)
	mux.HandleFunc("GET /api/config/assets", s.handleAssets)
	mux.HandleFunc("GET /api/config/strategies", s.handleListStrategies)
	mux.HandleFunc("GET /api/config/strategies/{name}", s.handleStrategy)
	mux.HandleFunc("GET /api/config/risk", s.handleListRiskProfiles)
	mux.HandleFunc("GET /api/config/risk/{name}", s.handleRiskProfile)
	mux.HandleFunc("GET /api/config/agents", s.handleListAgents)
	mux.HandleFunc("GET /api/config/agents/{name}", s.handleAgent)
	mux.HandleFunc("POST /api/config/reload", s.handleReload)
	mux.HandleFunc("GET /api/config/validate", s.handleValidate)
	mux.HandleFunc("GET /api/metrics/summary", s.handleMetricsSummary)

	var handler http.Handler = mux
	handler = s.metricsMiddleware(handler)
	handler = s.loggingMiddleware(handler)
	handler = requestIDMiddleware(handler)
	handler = s.recoveryMiddleware(handler)
	return handler
}
