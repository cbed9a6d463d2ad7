package loader

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"selam-hq/callisto/pkg/schema"
)

// Info summarizes the loader's view of the configuration tree.
type Info struct {
	Dir          string   `json:"dir" yaml:"dir"`
	Environment  string   `json:"environment" yaml:"environment"`
	Strategies   []string `json:"strategies" yaml:"strategies"`
	RiskProfiles []string `json:"risk_profiles" yaml:"risk_profiles"`
	Agents       []string `json:"agents" yaml:"agents"`
	CachedDocs   int      `json:"cached_documents" yaml:"cached_documents"`
}

// DocumentResult is the outcome of validating one document.
type DocumentResult struct {
	Domain schema.Domain `json:"domain" yaml:"domain"`
	Name   string        `json:"name,omitempty" yaml:"name,omitempty"`
	Valid  bool          `json:"valid" yaml:"valid"`
	Error  string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// Info describes the configuration tree and cache state.
func (l *Loader) Info() Info {
	return Info{
		Dir:          l.dir,
		Environment:  l.environment,
		Strategies:   l.ListStrategies(),
		RiskProfiles: l.ListRiskProfiles(),
		Agents:       l.ListAgents(),
		CachedDocs:   l.CacheSize(),
	}
}

// ListStrategies returns the names of every strategy document, sorted.
// A missing strategies directory yields an empty list.
func (l *Loader) ListStrategies() []string {
	return l.listNames(schema.DomainStrategy)
}

// ListRiskProfiles returns the names of every risk profile document, sorted.
func (l *Loader) ListRiskProfiles() []string {
	return l.listNames(schema.DomainRisk)
}

// ListAgents returns the names of every agent document, sorted.
func (l *Loader) ListAgents() []string {
	return l.listNames(schema.DomainAgent)
}

// ListNames returns the document names for a collection domain, sorted.
// Singleton domains return an empty list.
func (l *Loader) ListNames(domain schema.Domain) []string {
	if domain.Singleton() {
		return []string{}
	}
	return l.listNames(domain)
}

// listNames scans a collection domain's subdirectory for YAML documents.
func (l *Loader) listNames(domain schema.Domain) []string {
	dir := filepath.Join(l.dir, domain.Subdirectory())
	entries, err := os.ReadDir(dir)
	if err != nil {
		// A missing or unreadable directory means the domain has no
		// documents, not that listing failed.
		return []string{}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		base := entry.Name()
		if strings.HasPrefix(base, ".") {
			continue
		}
		ext := filepath.Ext(base)
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, strings.TrimSuffix(base, ext))
	}
	sort.Strings(names)
	return names
}

// ValidateAll loads and validates every document in the configuration
// tree, bypassing the cache. Each document is validated independently so
// one broken file cannot mask problems in another. Results are returned
// in catalog order.
func (l *Loader) ValidateAll() []DocumentResult {
	var results []DocumentResult

	for _, domain := range schema.Domains {
		if domain.Singleton() {
			results = append(results, l.validateOne(domain, ""))
			continue
		}
		for _, name := range l.listNames(domain) {
			results = append(results, l.validateOne(domain, name))
		}
	}

	return results
}

// CheckAll validates every document and returns the failures aggregated
// into one error, or nil when the whole tree is valid. Unlike ValidateAll
// the original typed errors are preserved for errors.As inspection.
func (l *Loader) CheckAll() error {
	var list ErrorList
	for _, domain := range schema.Domains {
		if domain.Singleton() {
			if _, err := l.load(domain, ""); err != nil {
				list.Add(err)
			}
			continue
		}
		for _, name := range l.listNames(domain) {
			if _, err := l.load(domain, name); err != nil {
				list.Add(err)
			}
		}
	}
	return list.ToError()
}

// validateOne loads a single document fresh and reports the outcome.
func (l *Loader) validateOne(domain schema.Domain, name string) DocumentResult {
	result := DocumentResult{Domain: domain, Name: name}
	if _, err := l.load(domain, name); err != nil {
		result.Error = err.Error()
		return result
	}
	result.Valid = true
	return result
}
