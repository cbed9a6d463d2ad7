package server

import (
	"net/http"
	"time"

	"selam-hq/callisto/pkg/loader"
	"selam-hq/callisto/pkg/schema"
	"selam-hq/callisto/pkg/telemetry/tracker"
)

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":      "ok",
		"environment": s.loader.Environment(),
	})
}

// handleInfo describes the configuration tree and cache state.
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.loader.Info())
}

// reloadRequested reports whether the request asked to bypass the cache.
func reloadRequested(r *http.Request) bool {
	return r.URL.Query().Get("reload") == "true"
}

// handleMain serves the resolved platform configuration.
func (s *Server) handleMain(w http.ResponseWriter, r *http.Request) {
	if reloadRequested(r) {
		s.loader.Invalidate(schema.DomainMain, "")
	}
	cfg, err := s.loader.Main()
	if err != nil {
		writeLoaderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// handleAssets serves the resolved asset catalog.
func (s *Server) handleAssets(w http.ResponseWriter, r *http.Request) {
	if reloadRequested(r) {
		s.loader.Invalidate(schema.DomainAssets, "")
	}
	cfg, err := s.loader.Assets()
	if err != nil {
		writeLoaderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// handleListStrategies lists strategy names.
func (s *Server) handleListStrategies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"strategies": s.loader.ListStrategies()})
}

// handleStrategy serves one resolved strategy.
func (s *Server) handleStrategy(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.loader.Strategy(r.PathValue("name"))
	if err != nil {
		writeLoaderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// handleListRiskProfiles lists risk profile names.
func (s *Server) handleListRiskProfiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"risk_profiles": s.loader.ListRiskProfiles()})
}

// handleRiskProfile serves one resolved risk profile.
func (s *Server) handleRiskProfile(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.loader.Risk(r.PathValue("name"))
	if err != nil {
		writeLoaderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// handleListAgents lists agent names.
func (s *Server) handleListAgents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"agents": s.loader.ListAgents()})
}

// handleAgent serves one resolved agent definition.
func (s *Server) handleAgent(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.loader.Agent(r.PathValue("name"))
	if err != nil {
		writeLoaderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// handleReload drops the whole cache so subsequent reads hit the disk.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	s.loader.ReloadAll()
	if s.tracker != nil {
		s.tracker.Inc("api_reloads", 1)
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reloaded"})
}

// validateResponse is the body of the validate endpoint.
type validateResponse struct {
	Valid     bool                    `json:"valid"`
	Documents []loader.DocumentResult `json:"documents"`
}

// handleValidate validates every document and reports per-document results.
// The response is 200 even when documents are invalid; the body carries
// the verdicts.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	results := s.loader.ValidateAll()

	valid := true
	for _, res := range results {
		if !res.Valid {
			valid = false
			break
		}
	}

	if !valid && s.alerts != nil {
		_, _ = s.alerts.Trigger(r.Context(), "config_validation_failed", map[string]any{
			"documents": len(results),
		})
	}

	writeJSON(w, http.StatusOK, validateResponse{Valid: valid, Documents: results})
}

// summaryResponse is the body of the metrics summary endpoint.
type summaryResponse struct {
	Counters map[string]float64         `json:"counters"`
	Gauges   map[string]float64         `json:"gauges"`
	Series   map[string]tracker.Summary `json:"series"`
	Window   string                     `json:"window"`
}

// handleMetricsSummary serves windowed statistics from the in-process
// tracker. The window query parameter accepts a Go duration and defaults
// to one hour.
func (s *Server) handleMetricsSummary(w http.ResponseWriter, r *http.Request) {
	if s.tracker == nil {
		writeError(w, http.StatusNotFound, "metrics tracking disabled")
		return
	}

	window := time.Hour
	if raw := r.URL.Query().Get("window"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid window duration")
			return
		}
		window = parsed
	}

	series := make(map[string]tracker.Summary)
	for _, name := range s.tracker.SeriesNames() {
		series[name] = s.tracker.Summarize(name, window)
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		Counters: s.tracker.Counters(),
		Gauges:   s.tracker.Gauges(),
		Series:   series,
		Window:   window.String(),
	})
}
