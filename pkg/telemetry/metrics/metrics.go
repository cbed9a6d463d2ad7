package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Config contains configuration for the metrics collector.
type Config struct {
	// Namespace is the Prometheus metric namespace.
	Namespace string

	// Subsystem is the Prometheus metric subsystem.
	Subsystem string

	// LoadDurationBuckets overrides the histogram buckets for document
	// load durations.
	LoadDurationBuckets []float64
}

// Collector holds every Prometheus metric the service exposes. It
// implements the loader's Metrics interface and carries the HTTP request
// metrics used by the server middleware.
type Collector struct {
	registry *prometheus.Registry

	// Loader metrics
	loadsTotal                *prometheus.CounterVec
	loadDuration              *prometheus.HistogramVec
	cacheHitsTotal            *prometheus.CounterVec
	cacheMissesTotal          *prometheus.CounterVec
	reloadsTotal              prometheus.Counter
	invalidationsTotal        *prometheus.CounterVec
	substitutionWarningsTotal *prometheus.CounterVec

	// HTTP metrics
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewCollector creates a metrics collector and registers its metrics with
// the given registry. A nil registry creates a fresh one.
func NewCollector(cfg *Config, registry *prometheus.Registry) *Collector {
	if cfg == nil {
		cfg = &Config{}
	}
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "selam"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "callisto"
	}
	if len(cfg.LoadDurationBuckets) == 0 {
		// Config documents are small files; loads are fast.
		cfg.LoadDurationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0}
	}

	c := &Collector{
		registry: registry,

		loadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "config_loads_total",
				Help:      "Total number of config document loads by domain and result",
			},
			[]string{"domain", "result"},
		),

		loadDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "config_load_duration_seconds",
				Help:      "Time spent resolving and validating config documents",
				Buckets:   cfg.LoadDurationBuckets,
			},
			[]string{"domain"},
		),

		cacheHitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "config_cache_hits_total",
				Help:      "Total number of config cache hits",
			},
			[]string{"domain"},
		),

		cacheMissesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "config_cache_misses_total",
				Help:      "Total number of config cache misses",
			},
			[]string{"domain"},
		),

		reloadsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "config_reloads_total",
				Help:      "Total number of full cache reloads",
			},
		),

		invalidationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "config_invalidations_total",
				Help:      "Total number of single cache entry invalidations",
			},
			[]string{"domain"},
		),

		substitutionWarningsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "config_substitution_warnings_total",
				Help:      "Total number of unresolved environment placeholders",
			},
			[]string{"domain"},
		),

		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by method, path, and status",
			},
			[]string{"method", "path", "status"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by method and path",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	registry.MustRegister(
		c.loadsTotal,
		c.loadDuration,
		c.cacheHitsTotal,
		c.cacheMissesTotal,
		c.reloadsTotal,
		c.invalidationsTotal,
		c.substitutionWarningsTotal,
		c.requestsTotal,
		c.requestDuration,
	)

	return c
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveLoad records a document load outcome and duration.
func (c *Collector) ObserveLoad(domain string, result string, seconds float64) {
	c.loadsTotal.WithLabelValues(domain, result).Inc()
	c.loadDuration.WithLabelValues(domain).Observe(seconds)
}

// CacheHit records a cache hit.
func (c *Collector) CacheHit(domain string) {
	c.cacheHitsTotal.WithLabelValues(domain).Inc()
}

// CacheMiss records a cache miss.
func (c *Collector) CacheMiss(domain string) {
	c.cacheMissesTotal.WithLabelValues(domain).Inc()
}

// Reload records a full cache reload.
func (c *Collector) Reload() {
	c.reloadsTotal.Inc()
}

// Invalidation records a single cache entry invalidation.
func (c *Collector) Invalidation(domain string) {
	c.invalidationsTotal.WithLabelValues(domain).Inc()
}

// SubstitutionWarning records an unresolved environment placeholder.
func (c *Collector) SubstitutionWarning(domain string) {
	c.substitutionWarningsTotal.WithLabelValues(domain).Inc()
}

// ObserveRequest records one HTTP request.
func (c *Collector) ObserveRequest(method, path, status string, seconds float64) {
	c.requestsTotal.WithLabelValues(method, path, status).Inc()
	c.requestDuration.WithLabelValues(method, path).Observe(seconds)
}
