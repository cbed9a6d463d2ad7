package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"selam-hq/callisto/pkg/schema"
)

// writeFile creates a file with parent directories as needed.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// newTestLoader builds a loader over a minimal configuration tree.
func newTestLoader(t *testing.T) (*Loader, string) {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "main.yaml"), `
system:
  name: test-platform
api:
  host: 127.0.0.1
  port: 8000
  rate_limit:
    enabled: true
`)
	writeFile(t, filepath.Join(dir, "assets.yaml"), `
assets:
  forex:
    enabled: true
    pairs:
      EURUSD:
        name: Euro/US Dollar
        min_lot_size: 0.01
        max_lot_size: 100
        margin_requirement: 0.02
`)
	writeFile(t, filepath.Join(dir, "strategies", "trend.yaml"), `
strategy:
  name: trend_following
  type: trend
  parameters:
    primary_timeframe: H4
    position_sizing:
      risk_per_trade: 0.01
`)
	writeFile(t, filepath.Join(dir, "risk", "moderate.yaml"), `
risk_management:
  name: moderate
  account:
    max_risk_per_trade: 0.02
    max_daily_loss: 0.05
`)
	writeFile(t, filepath.Join(dir, "agents", "analyst.yaml"), `
agent:
  name: market_analyst
  type: analysis
  core:
    model: gpt-4
    temperature: 0.2
`)

	l, err := New(Options{Dir: dir, Environment: "development"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l, dir
}

func TestLoaderMain(t *testing.T) {
	l, _ := newTestLoader(t)

	cfg, err := l.Main()
	if err != nil {
		t.Fatalf("Main: %v", err)
	}
	if cfg.System.Name != "test-platform" {
		t.Errorf("System.Name = %q, want %q", cfg.System.Name, "test-platform")
	}
	if cfg.API.Port != 8000 {
		t.Errorf("API.Port = %d, want 8000", cfg.API.Port)
	}
	// Defaults fill fields the document omits.
	if cfg.AI.Model != schema.DefaultAIModel {
		t.Errorf("AI.Model = %q, want default %q", cfg.AI.Model, schema.DefaultAIModel)
	}
}

func TestLoaderEnvironmentOverlay(t *testing.T) {
	l, dir := newTestLoader(t)
	writeFile(t, filepath.Join(dir, "environments", "development.yaml"), `
api:
  port: 9000
`)

	cfg, err := l.Main()
	if err != nil {
		t.Fatalf("Main: %v", err)
	}
	if cfg.API.Port != 9000 {
		t.Errorf("API.Port = %d, want overlay value 9000", cfg.API.Port)
	}
	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want base value preserved", cfg.API.Host)
	}
}

func TestLoaderOverlayOnlyAffectsMain(t *testing.T) {
	l, dir := newTestLoader(t)
	writeFile(t, filepath.Join(dir, "environments", "development.yaml"), `
strategy:
  name: hijacked
`)

	cfg, err := l.Strategy("trend")
	if err != nil {
		t.Fatalf("Strategy: %v", err)
	}
	if cfg.Name != "trend_following" {
		t.Errorf("Name = %q, overlay must not touch collection domains", cfg.Name)
	}
}

func TestLoaderMissingOverlayIgnored(t *testing.T) {
	l, err := New(Options{Dir: t.TempDir(), Environment: "production"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	writeFile(t, filepath.Join(l.Dir(), "main.yaml"), "system:\n  name: x\n")

	if _, err := l.Main(); err != nil {
		t.Errorf("Main with no overlay file: %v", err)
	}
}

func TestLoaderSectionUnwrapping(t *testing.T) {
	l, _ := newTestLoader(t)

	risk, err := l.Risk("moderate")
	if err != nil {
		t.Fatalf("Risk: %v", err)
	}
	if risk.Name != "moderate" {
		t.Errorf("Name = %q, want %q", risk.Name, "moderate")
	}
	if risk.Account.MaxRiskPerTrade != 0.02 {
		t.Errorf("MaxRiskPerTrade = %g, want 0.02", risk.Account.MaxRiskPerTrade)
	}
}

func TestLoaderUnwrappedDocumentAccepted(t *testing.T) {
	l, dir := newTestLoader(t)
	// Same content without the section wrapper binds identically.
	writeFile(t, filepath.Join(dir, "risk", "flat.yaml"), `
name: flat
account:
  max_risk_per_trade: 0.01
`)

	risk, err := l.Risk("flat")
	if err != nil {
		t.Fatalf("Risk: %v", err)
	}
	if risk.Account.MaxRiskPerTrade != 0.01 {
		t.Errorf("MaxRiskPerTrade = %g, want 0.01", risk.Account.MaxRiskPerTrade)
	}
}

func TestLoaderCacheReturnsSameInstance(t *testing.T) {
	l, _ := newTestLoader(t)

	first, err := l.Main()
	if err != nil {
		t.Fatalf("Main: %v", err)
	}
	second, err := l.Main()
	if err != nil {
		t.Fatalf("Main: %v", err)
	}
	if first != second {
		t.Error("expected cached lookups to return the same instance")
	}
}

func TestLoaderReloadAllReturnsFreshInstance(t *testing.T) {
	l, _ := newTestLoader(t)

	first, err := l.Main()
	if err != nil {
		t.Fatalf("Main: %v", err)
	}
	l.ReloadAll()
	second, err := l.Main()
	if err != nil {
		t.Fatalf("Main after reload: %v", err)
	}
	if first == second {
		t.Error("expected reload to produce a fresh instance")
	}
	if l.CacheSize() != 1 {
		t.Errorf("CacheSize = %d, want 1", l.CacheSize())
	}
}

func TestLoaderValidationErrorNamesField(t *testing.T) {
	l, dir := newTestLoader(t)
	writeFile(t, filepath.Join(dir, "environments", "development.yaml"), `
api:
  port: 70000
`)

	_, err := l.Main()
	if err == nil {
		t.Fatal("expected validation error for port 70000")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	found := false
	for _, fe := range ve.Fields {
		if fe.Field == "api.port" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected api.port in %v", ve.Fields)
	}
}

func TestLoaderMissingDocument(t *testing.T) {
	l, _ := newTestLoader(t)

	_, err := l.Strategy("nonexistent")
	if err == nil {
		t.Fatal("expected error for missing strategy")
	}
	var le *LoadError
	if !errors.As(err, &le) || !le.IsNotFound() {
		t.Errorf("expected not-found LoadError, got %v", err)
	}
}

func TestLoaderMalformedYAML(t *testing.T) {
	l, dir := newTestLoader(t)
	writeFile(t, filepath.Join(dir, "strategies", "broken.yaml"), "strategy: [unclosed\n")

	_, err := l.Strategy("broken")
	if err == nil {
		t.Fatal("expected parse error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Errorf("expected *ParseError, got %T", err)
	}
}

func TestLoaderCollectionRequiresName(t *testing.T) {
	l, _ := newTestLoader(t)

	if _, err := l.Get(schema.DomainStrategy, ""); err == nil {
		t.Error("expected error for unnamed collection lookup")
	}
}

func TestLoaderSubstitutionInDocuments(t *testing.T) {
	t.Setenv("CALLISTO_TEST_DB_HOST", "db.example.com")

	l, dir := newTestLoader(t)
	writeFile(t, filepath.Join(dir, "main.yaml"), `
system:
  name: test-platform
api:
  port: 8000
database:
  host: ${CALLISTO_TEST_DB_HOST}
  port: ${CALLISTO_TEST_DB_PORT:-5433}
`)

	cfg, err := l.Main()
	if err != nil {
		t.Fatalf("Main: %v", err)
	}
	if cfg.Database.Host != "db.example.com" {
		t.Errorf("Database.Host = %q, want substituted value", cfg.Database.Host)
	}
	if cfg.Database.Port != 5433 {
		t.Errorf("Database.Port = %d, want default 5433", cfg.Database.Port)
	}
}

func TestLoaderSubstitutedValueNotReparsed(t *testing.T) {
	t.Setenv("CALLISTO_TEST_SYSTEM_NAME", "oops: injected")

	l, dir := newTestLoader(t)
	writeFile(t, filepath.Join(dir, "main.yaml"), `
system:
  name: ${CALLISTO_TEST_SYSTEM_NAME}
api:
  port: 8000
`)

	cfg, err := l.Main()
	if err != nil {
		t.Fatalf("Main: %v", err)
	}
	if cfg.System.Name != "oops: injected" {
		t.Errorf("System.Name = %q, variable values must land verbatim", cfg.System.Name)
	}
}

func TestLoaderNotifyChangedInvalidates(t *testing.T) {
	l, dir := newTestLoader(t)

	first, err := l.Strategy("trend")
	if err != nil {
		t.Fatalf("Strategy: %v", err)
	}

	l.NotifyChanged(filepath.Join(dir, "strategies", "trend.yaml"))

	second, err := l.Strategy("trend")
	if err != nil {
		t.Fatalf("Strategy after change: %v", err)
	}
	if first == second {
		t.Error("expected change notification to invalidate the cache entry")
	}
}

func TestLoaderNotifyChangedUnrelatedPathKeepsCache(t *testing.T) {
	l, dir := newTestLoader(t)

	first, err := l.Main()
	if err != nil {
		t.Fatalf("Main: %v", err)
	}

	l.NotifyChanged(filepath.Join(dir, "notes.txt"))

	second, err := l.Main()
	if err != nil {
		t.Fatalf("Main: %v", err)
	}
	if first != second {
		t.Error("unrelated path must not invalidate the cache")
	}
}

func TestLoaderEnvironmentFileChangeInvalidatesMain(t *testing.T) {
	l, dir := newTestLoader(t)

	first, err := l.Main()
	if err != nil {
		t.Fatalf("Main: %v", err)
	}

	l.NotifyChanged(filepath.Join(dir, "environments", "development.yaml"))

	second, err := l.Main()
	if err != nil {
		t.Fatalf("Main: %v", err)
	}
	if first == second {
		t.Error("environment file change must invalidate the main document")
	}
}

func TestLoaderResolved(t *testing.T) {
	l, _ := newTestLoader(t)

	doc, err := l.Resolved(schema.DomainRisk, "moderate")
	if err != nil {
		t.Fatalf("Resolved: %v", err)
	}
	if doc["name"] != "moderate" {
		t.Errorf("resolved doc name = %v, want %q", doc["name"], "moderate")
	}
	if _, hasWrapper := doc["risk_management"]; hasWrapper {
		t.Error("resolved document should be unwrapped from its section key")
	}
}

func TestLoaderDefaultEnvironmentFromVariable(t *testing.T) {
	t.Setenv("ENVIRONMENT", "staging")

	l, err := New(Options{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.Environment() != "staging" {
		t.Errorf("Environment() = %q, want %q", l.Environment(), "staging")
	}
}

func TestLoaderRejectsMissingDirectory(t *testing.T) {
	_, err := New(Options{Dir: filepath.Join(t.TempDir(), "missing")})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if !strings.Contains(err.Error(), "not accessible") {
		t.Errorf("unexpected error: %v", err)
	}
}
