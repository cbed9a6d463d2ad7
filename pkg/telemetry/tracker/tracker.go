package tracker

import (
	"math"
	"sort"
	"sync"
	"time"
)

// DefaultRetention is how long samples are kept before being trimmed.
const DefaultRetention = time.Hour

// DefaultMaxSamples caps the number of samples retained per series.
const DefaultMaxSamples = 10000

// Sample is one timestamped observation.
type Sample struct {
	Value float64
	At    time.Time
}

// Summary describes the samples of one series inside a time window.
type Summary struct {
	Count  int     `json:"count"`
	Sum    float64 `json:"sum"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P95    float64 `json:"p95"`
	P99    float64 `json:"p99"`
}

// Options configures a Tracker.
type Options struct {
	// Retention is how long samples are kept (default: 1h).
	Retention time.Duration

	// MaxSamples caps retained samples per series (default: 10000).
	MaxSamples int
}

// Tracker keeps lightweight in-process operational statistics: monotonic
// counters, point-in-time gauges, and timestamped sample series with
// windowed summaries. It is safe for concurrent use.
//
// The tracker complements the Prometheus collectors: Prometheus serves
// scrapers, the tracker serves the service's own summary endpoint and
// alerting rules.
type Tracker struct {
	retention  time.Duration
	maxSamples int

	mu       sync.RWMutex
	counters map[string]float64
	gauges   map[string]float64
	samples  map[string][]Sample
}

// New creates a Tracker.
func New(opts Options) *Tracker {
	if opts.Retention <= 0 {
		opts.Retention = DefaultRetention
	}
	if opts.MaxSamples <= 0 {
		opts.MaxSamples = DefaultMaxSamples
	}
	return &Tracker{
		retention:  opts.Retention,
		maxSamples: opts.MaxSamples,
		counters:   make(map[string]float64),
		gauges:     make(map[string]float64),
		samples:    make(map[string][]Sample),
	}
}

// Inc adds delta to a counter.
func (t *Tracker) Inc(name string, delta float64) {
	t.mu.Lock()
	t.counters[name] += delta
	t.mu.Unlock()
}

// Counter returns the current value of a counter.
func (t *Tracker) Counter(name string) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.counters[name]
}

// SetGauge sets a gauge to a value.
func (t *Tracker) SetGauge(name string, value float64) {
	t.mu.Lock()
	t.gauges[name] = value
	t.mu.Unlock()
}

// Gauge returns the current value of a gauge.
func (t *Tracker) Gauge(name string) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.gauges[name]
}

// Observe appends a sample to a series, trimming anything older than the
// retention window or beyond the per-series cap.
func (t *Tracker) Observe(name string, value float64) {
	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	series := append(t.samples[name], Sample{Value: value, At: now})

	cutoff := now.Add(-t.retention)
	start := 0
	for start < len(series) && series[start].At.Before(cutoff) {
		start++
	}
	series = series[start:]

	if len(series) > t.maxSamples {
		series = series[len(series)-t.maxSamples:]
	}

	t.samples[name] = series
}

// Summarize computes summary statistics over samples of a series that
// fall inside the given window. A zero window covers all retained
// samples. An empty window yields a zero-valued Summary.
func (t *Tracker) Summarize(name string, window time.Duration) Summary {
	t.mu.RLock()
	series := t.samples[name]
	values := make([]float64, 0, len(series))
	if window > 0 {
		cutoff := time.Now().Add(-window)
		for _, s := range series {
			if !s.At.Before(cutoff) {
				values = append(values, s.Value)
			}
		}
	} else {
		for _, s := range series {
			values = append(values, s.Value)
		}
	}
	t.mu.RUnlock()

	if len(values) == 0 {
		return Summary{}
	}

	sort.Float64s(values)

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return Summary{
		Count:  len(values),
		Sum:    sum,
		Min:    values[0],
		Max:    values[len(values)-1],
		Mean:   sum / float64(len(values)),
		Median: percentile(values, 0.50),
		P95:    percentile(values, 0.95),
		P99:    percentile(values, 0.99),
	}
}

// Counters returns a copy of every counter.
func (t *Tracker) Counters() map[string]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]float64, len(t.counters))
	for k, v := range t.counters {
		out[k] = v
	}
	return out
}

// Gauges returns a copy of every gauge.
func (t *Tracker) Gauges() map[string]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]float64, len(t.gauges))
	for k, v := range t.gauges {
		out[k] = v
	}
	return out
}

// SeriesNames returns the names of every sample series, sorted.
func (t *Tracker) SeriesNames() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.samples))
	for name := range t.samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// percentile computes the nearest-rank percentile of sorted values.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(math.Ceil(p*float64(len(sorted)))) - 1
	if rank < 0 {
		rank = 0
	}
	if rank >= len(sorted) {
		rank = len(sorted) - 1
	}
	return sorted[rank]
}

// Timer measures one duration and records it as a sample on Stop.
type Timer struct {
	tracker *Tracker
	name    string
	start   time.Time
}

// StartTimer begins timing an operation. Stop records the elapsed
// duration in seconds as a sample on the named series.
func (t *Tracker) StartTimer(name string) *Timer {
	return &Timer{tracker: t, name: name, start: time.Now()}
}

// Stop records the elapsed time and returns it.
func (tm *Timer) Stop() time.Duration {
	elapsed := time.Since(tm.start)
	tm.tracker.Observe(tm.name, elapsed.Seconds())
	return elapsed
}
