// Package telemetry groups the observability building blocks of callisto.
//
// Subpackages:
//
//   - logging: structured slog loggers and request scoped context values
//   - metrics: Prometheus collectors for resolution and HTTP traffic
//   - tracker: in-process latency and counter summaries for the API
package telemetry
