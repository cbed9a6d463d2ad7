package loader

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"selam-hq/callisto/pkg/schema"
)

func TestListStrategiesSorted(t *testing.T) {
	l, dir := newTestLoader(t)
	writeFile(t, filepath.Join(dir, "strategies", "breakout.yaml"), "strategy:\n  name: b\n  type: breakout\n")
	writeFile(t, filepath.Join(dir, "strategies", "scalping.yml"), "strategy:\n  name: s\n  type: scalping\n")

	got := l.ListStrategies()
	want := []string{"breakout", "scalping", "trend"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListStrategies() = %v, want %v", got, want)
	}
}

func TestListIgnoresNonYAMLAndHidden(t *testing.T) {
	l, dir := newTestLoader(t)
	writeFile(t, filepath.Join(dir, "agents", "README.md"), "docs\n")
	writeFile(t, filepath.Join(dir, "agents", ".backup.yaml"), "agent:\n  name: x\n")

	got := l.ListAgents()
	want := []string{"analyst"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListAgents() = %v, want %v", got, want)
	}
}

func TestShortExtensionListedAndLoadable(t *testing.T) {
	l, dir := newTestLoader(t)
	writeFile(t, filepath.Join(dir, "strategies", "swing.yml"), "strategy:\n  name: swing\n  type: swing\n")

	names := l.ListStrategies()
	found := false
	for _, n := range names {
		if n == "swing" {
			found = true
		}
	}
	if !found {
		t.Fatalf("ListStrategies() = %v, want swing included", names)
	}

	// Every listed document must also resolve.
	cfg, err := l.Strategy("swing")
	if err != nil {
		t.Fatalf("Strategy(swing): %v", err)
	}
	if cfg.Name != "swing" {
		t.Errorf("Name = %q, want swing", cfg.Name)
	}
}

func TestListMissingDirectoryEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.yaml"), "system:\n  name: x\n")

	l, err := New(Options{Dir: dir, Environment: "development"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := l.ListRiskProfiles()
	if len(got) != 0 {
		t.Errorf("ListRiskProfiles() = %v, want empty", got)
	}
}

func TestListNamesSingletonEmpty(t *testing.T) {
	l, _ := newTestLoader(t)

	if got := l.ListNames(schema.DomainMain); len(got) != 0 {
		t.Errorf("ListNames(main) = %v, want empty", got)
	}
}

func TestInfo(t *testing.T) {
	l, _ := newTestLoader(t)

	if _, err := l.Main(); err != nil {
		t.Fatalf("Main: %v", err)
	}

	info := l.Info()
	if info.Environment != "development" {
		t.Errorf("Environment = %q, want %q", info.Environment, "development")
	}
	if !reflect.DeepEqual(info.Strategies, []string{"trend"}) {
		t.Errorf("Strategies = %v, want [trend]", info.Strategies)
	}
	if info.CachedDocs != 1 {
		t.Errorf("CachedDocs = %d, want 1", info.CachedDocs)
	}
}

func TestValidateAllReportsEveryDocument(t *testing.T) {
	l, _ := newTestLoader(t)

	results := l.ValidateAll()
	// main, assets, one strategy, one risk profile, one agent.
	if len(results) != 5 {
		t.Fatalf("got %d results, want 5: %v", len(results), results)
	}
	for _, r := range results {
		if !r.Valid {
			t.Errorf("%s %s unexpectedly invalid: %s", r.Domain, r.Name, r.Error)
		}
	}
}

func TestValidateAllIsolatesFailures(t *testing.T) {
	l, dir := newTestLoader(t)
	writeFile(t, filepath.Join(dir, "strategies", "bad.yaml"), `
strategy:
  name: bad
  type: trend
  parameters:
    position_sizing:
      risk_per_trade: 5.0
`)

	results := l.ValidateAll()

	var badSeen, trendSeen bool
	for _, r := range results {
		if r.Domain == schema.DomainStrategy && r.Name == "bad" {
			badSeen = true
			if r.Valid {
				t.Error("bad strategy should be invalid")
			}
			if !strings.Contains(r.Error, "risk_per_trade") {
				t.Errorf("error should name the field, got %q", r.Error)
			}
		}
		if r.Domain == schema.DomainStrategy && r.Name == "trend" {
			trendSeen = true
			if !r.Valid {
				t.Errorf("trend strategy should stay valid: %s", r.Error)
			}
		}
	}
	if !badSeen || !trendSeen {
		t.Errorf("expected both strategies in results: %v", results)
	}
}

func TestCheckAll(t *testing.T) {
	l, dir := newTestLoader(t)

	if err := l.CheckAll(); err != nil {
		t.Fatalf("CheckAll on a valid tree: %v", err)
	}

	writeFile(t, filepath.Join(dir, "agents", "hot.yaml"), `
agent:
  name: hot
  type: analysis
  core:
    temperature: 9.0
`)

	err := l.CheckAll()
	if err == nil {
		t.Fatal("CheckAll should report the invalid agent")
	}
	var list *ErrorList
	if !errors.As(err, &list) {
		t.Fatalf("error should be an *ErrorList, got %T", err)
	}
	var verr *ValidationError
	if !errors.As(list.Errors[0], &verr) {
		t.Fatalf("aggregated error should keep its type, got %T", list.Errors[0])
	}
	if verr.Name != "hot" {
		t.Errorf("Name = %q, want hot", verr.Name)
	}
}

func TestValidateAllBypassesCache(t *testing.T) {
	l, dir := newTestLoader(t)

	if _, err := l.Main(); err != nil {
		t.Fatalf("Main: %v", err)
	}

	// Break the file on disk; the cached document must not mask it.
	path := filepath.Join(dir, "main.yaml")
	if err := os.WriteFile(path, []byte("api: [broken\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var mainValid = true
	for _, r := range l.ValidateAll() {
		if r.Domain == schema.DomainMain {
			mainValid = r.Valid
		}
	}
	if mainValid {
		t.Error("ValidateAll must re-read documents from disk")
	}
}
