package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorLoaderMetrics(t *testing.T) {
	c := NewCollector(nil, prometheus.NewRegistry())

	c.ObserveLoad("main", "success", 0.002)
	c.ObserveLoad("main", "success", 0.004)
	c.ObserveLoad("strategy", "validation_error", 0.001)
	c.CacheHit("main")
	c.CacheMiss("main")
	c.Reload()
	c.Invalidation("strategy")
	c.SubstitutionWarning("main")

	if got := testutil.ToFloat64(c.loadsTotal.WithLabelValues("main", "success")); got != 2 {
		t.Errorf("loads_total{main,success} = %g, want 2", got)
	}
	if got := testutil.ToFloat64(c.loadsTotal.WithLabelValues("strategy", "validation_error")); got != 1 {
		t.Errorf("loads_total{strategy,validation_error} = %g, want 1", got)
	}
	if got := testutil.ToFloat64(c.cacheHitsTotal.WithLabelValues("main")); got != 1 {
		t.Errorf("cache_hits_total{main} = %g, want 1", got)
	}
	if got := testutil.ToFloat64(c.reloadsTotal); got != 1 {
		t.Errorf("reloads_total = %g, want 1", got)
	}
	if got := testutil.ToFloat64(c.substitutionWarningsTotal.WithLabelValues("main")); got != 1 {
		t.Errorf("substitution_warnings_total{main} = %g, want 1", got)
	}
}

func TestCollectorHandlerExposition(t *testing.T) {
	c := NewCollector(nil, nil)
	c.ObserveLoad("main", "success", 0.002)
	c.ObserveRequest("GET", "/api/config/main", "200", 0.01)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	c.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{
		"selam_callisto_config_loads_total",
		"selam_callisto_http_requests_total",
	} {
		if !strings.Contains(body, name) {
			t.Errorf("exposition missing %s", name)
		}
	}
}

func TestCollectorCustomNamespace(t *testing.T) {
	c := NewCollector(&Config{Namespace: "test", Subsystem: "cfg"}, nil)
	c.CacheMiss("assets")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if !strings.Contains(rec.Body.String(), "test_cfg_config_cache_misses_total") {
		t.Error("exposition missing custom-namespaced metric")
	}
}
