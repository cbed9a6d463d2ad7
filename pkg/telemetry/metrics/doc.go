// Package metrics exposes Prometheus instrumentation for the config
// service: document load counters and latencies, cache hit rates, reload
// and invalidation counts, substitution warnings, and HTTP request
// metrics for the API surface.
package metrics
