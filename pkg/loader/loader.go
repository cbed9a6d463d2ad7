package loader

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"selam-hq/callisto/pkg/schema"
)

// Metrics receives loader events. Implementations must be safe for
// concurrent use. A nil Metrics disables instrumentation.
type Metrics interface {
	// ObserveLoad records a document load with its outcome ("success",
	// "load_error", "parse_error", "validation_error") and duration.
	ObserveLoad(domain string, result string, seconds float64)

	// CacheHit records a cache hit for a domain.
	CacheHit(domain string)

	// CacheMiss records a cache miss for a domain.
	CacheMiss(domain string)

	// Reload records a full cache reload.
	Reload()

	// Invalidation records a single cache entry invalidation.
	Invalidation(domain string)

	// SubstitutionWarning records an unresolved environment placeholder.
	SubstitutionWarning(domain string)
}

// Options configures a Loader.
type Options struct {
	// Dir is the configuration root directory. Required.
	Dir string

	// Environment selects the environments/<env>.yaml override applied to
	// the main document. Defaults to the ENVIRONMENT variable, then to
	// "development".
	Environment string

	// Logger receives loader diagnostics. Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics receives loader events. Optional.
	Metrics Metrics

	// PendingBuffer sizes the changed-path queue fed by the file watcher.
	PendingBuffer int
}

// cacheKey identifies one resolved document.
type cacheKey struct {
	domain schema.Domain
	name   string
}

// DefaultPendingBuffer is the default size of the changed-path queue.
const DefaultPendingBuffer = 64

// Loader resolves, validates, and caches configuration documents from a
// directory tree. All methods are safe for concurrent use.
//
// Resolution for the main domain is layered: main.yaml is read first and
// environments/<env>.yaml, when present, is deep-merged on top. Collection
// documents (strategies, risk profiles, agents) are read from their
// subdirectory and unwrapped from their optional section key before
// binding.
type Loader struct {
	dir         string
	environment string
	logger      *slog.Logger
	metrics     Metrics

	// pending receives paths of changed files from the watcher. It is
	// drained at the start of every lookup so the watcher never has to
	// call back into the loader.
	pending chan string

	mu       sync.RWMutex
	cache    map[cacheKey]any
	loadedAt map[cacheKey]time.Time
}

// New creates a Loader for the given configuration directory.
func New(opts Options) (*Loader, error) {
	if opts.Dir == "" {
		return nil, fmt.Errorf("configuration directory is required")
	}

	fileInfo, err := os.Stat(opts.Dir)
	if err != nil {
		return nil, &LoadError{
			FilePath: opts.Dir,
			Message:  "configuration directory not accessible",
			Cause:    err,
		}
	}
	if !fileInfo.IsDir() {
		return nil, &LoadError{
			FilePath: opts.Dir,
			Message:  "not a directory",
		}
	}

	environment := opts.Environment
	if environment == "" {
		environment = os.Getenv("ENVIRONMENT")
	}
	if environment == "" {
		environment = schema.DefaultEnvironment
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	buffer := opts.PendingBuffer
	if buffer <= 0 {
		buffer = DefaultPendingBuffer
	}

	return &Loader{
		dir:         opts.Dir,
		environment: environment,
		logger:      logger,
		metrics:     opts.Metrics,
		pending:     make(chan string, buffer),
		cache:       make(map[cacheKey]any),
		loadedAt:    make(map[cacheKey]time.Time),
	}, nil
}

// Dir returns the configuration root directory.
func (l *Loader) Dir() string {
	return l.dir
}

// Environment returns the active environment name.
func (l *Loader) Environment() string {
	return l.environment
}

// Main returns the resolved platform configuration.
func (l *Loader) Main() (*schema.MainConfig, error) {
	v, err := l.Get(schema.DomainMain, "")
	if err != nil {
		return nil, err
	}
	return v.(*schema.MainConfig), nil
}

// Assets returns the resolved asset catalog.
func (l *Loader) Assets() (*schema.AssetsConfig, error) {
	v, err := l.Get(schema.DomainAssets, "")
	if err != nil {
		return nil, err
	}
	return v.(*schema.AssetsConfig), nil
}

// Strategy returns the named strategy configuration.
func (l *Loader) Strategy(name string) (*schema.StrategyConfig, error) {
	v, err := l.Get(schema.DomainStrategy, name)
	if err != nil {
		return nil, err
	}
	return v.(*schema.StrategyConfig), nil
}

// Risk returns the named risk profile.
func (l *Loader) Risk(name string) (*schema.RiskProfileConfig, error) {
	v, err := l.Get(schema.DomainRisk, name)
	if err != nil {
		return nil, err
	}
	return v.(*schema.RiskProfileConfig), nil
}

// Agent returns the named agent configuration.
func (l *Loader) Agent(name string) (*schema.AgentConfig, error) {
	v, err := l.Get(schema.DomainAgent, name)
	if err != nil {
		return nil, err
	}
	return v.(*schema.AgentConfig), nil
}

// Get returns the resolved, validated document for a domain. Singleton
// domains ignore name; collection domains require it. Repeated calls
// return the same instance until the entry is invalidated, so callers
// must treat the result as read-only.
func (l *Loader) Get(domain schema.Domain, name string) (any, error) {
	if !domain.Singleton() && name == "" {
		return nil, fmt.Errorf("%s config requires a name", domain)
	}
	if domain.Singleton() {
		name = ""
	}

	l.drainPending()

	key := cacheKey{domain: domain, name: name}

	l.mu.RLock()
	cached, ok := l.cache[key]
	l.mu.RUnlock()
	if ok {
		if l.metrics != nil {
			l.metrics.CacheHit(string(domain))
		}
		return cached, nil
	}

	if l.metrics != nil {
		l.metrics.CacheMiss(string(domain))
	}

	start := time.Now()
	cfg, err := l.load(domain, name)
	if l.metrics != nil {
		l.metrics.ObserveLoad(string(domain), loadResult(err), time.Since(start).Seconds())
	}
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	// Another goroutine may have loaded the same document concurrently;
	// keep the first instance so callers observe a stable pointer.
	if existing, ok := l.cache[key]; ok {
		l.mu.Unlock()
		return existing, nil
	}
	l.cache[key] = cfg
	l.loadedAt[key] = time.Now()
	l.mu.Unlock()

	l.logger.Debug("config document loaded",
		"domain", string(domain),
		"name", name,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return cfg, nil
}

// Resolved returns the merged generic document for a domain without
// binding it to a typed schema. The main domain includes its environment
// overlay; collection documents are unwrapped from their section key.
func (l *Loader) Resolved(domain schema.Domain, name string) (map[string]any, error) {
	if !domain.Singleton() && name == "" {
		return nil, fmt.Errorf("%s config requires a name", domain)
	}
	doc, _, err := l.resolve(domain, name)
	return doc, err
}

// ReloadAll drops every cached document. Subsequent lookups re-read the
// file system.
func (l *Loader) ReloadAll() {
	l.mu.Lock()
	n := len(l.cache)
	l.cache = make(map[cacheKey]any)
	l.loadedAt = make(map[cacheKey]time.Time)
	l.mu.Unlock()

	if l.metrics != nil {
		l.metrics.Reload()
	}
	l.logger.Info("config cache cleared", "entries", n)
}

// Invalidate drops a single cached document.
func (l *Loader) Invalidate(domain schema.Domain, name string) {
	if domain.Singleton() {
		name = ""
	}
	key := cacheKey{domain: domain, name: name}

	l.mu.Lock()
	_, existed := l.cache[key]
	delete(l.cache, key)
	delete(l.loadedAt, key)
	l.mu.Unlock()

	if existed && l.metrics != nil {
		l.metrics.Invalidation(string(domain))
	}
}

// CacheSize returns the number of cached documents.
func (l *Loader) CacheSize() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.cache)
}

// NotifyChanged queues a changed file path for invalidation. It never
// blocks; when the queue is full the whole cache is marked for reload on
// the next lookup instead.
func (l *Loader) NotifyChanged(path string) {
	select {
	case l.pending <- path:
	default:
		// Queue overflow. Safer to drop everything than to miss a change.
		l.ReloadAll()
	}
}

// drainPending applies queued file change notifications to the cache.
func (l *Loader) drainPending() {
	for {
		select {
		case path := <-l.pending:
			key, ok := l.keyForPath(path)
			if !ok {
				continue
			}
			l.logger.Info("config file changed",
				"path", path,
				"domain", string(key.domain),
				"name", key.name,
			)
			l.Invalidate(key.domain, key.name)
		default:
			return
		}
	}
}

// keyForPath maps a changed file path to the cache entry it affects.
func (l *Loader) keyForPath(path string) (cacheKey, bool) {
	rel, err := filepath.Rel(l.dir, path)
	if err != nil {
		return cacheKey{}, false
	}
	rel = filepath.ToSlash(rel)

	ext := filepath.Ext(rel)
	if ext != ".yaml" && ext != ".yml" {
		return cacheKey{}, false
	}
	stem := strings.TrimSuffix(filepath.Base(rel), ext)

	switch {
	case rel == "main.yaml" || rel == "main.yml":
		return cacheKey{domain: schema.DomainMain}, true
	case rel == "assets.yaml" || rel == "assets.yml":
		return cacheKey{domain: schema.DomainAssets}, true
	case strings.HasPrefix(rel, "environments/"):
		// Any environment file change may affect the main overlay.
		return cacheKey{domain: schema.DomainMain}, true
	case strings.HasPrefix(rel, "strategies/"):
		return cacheKey{domain: schema.DomainStrategy, name: stem}, true
	case strings.HasPrefix(rel, "risk/"):
		return cacheKey{domain: schema.DomainRisk, name: stem}, true
	case strings.HasPrefix(rel, "agents/"):
		return cacheKey{domain: schema.DomainAgent, name: stem}, true
	default:
		return cacheKey{}, false
	}
}

// path returns the file backing a document.
func (l *Loader) path(domain schema.Domain, name string) string {
	if domain.Singleton() {
		return yamlPath(filepath.Join(l.dir, string(domain)))
	}
	return yamlPath(filepath.Join(l.dir, domain.Subdirectory(), name))
}

// environmentPath returns the override file for the active environment.
func (l *Loader) environmentPath() string {
	return yamlPath(filepath.Join(l.dir, "environments", l.environment))
}

// yamlPath resolves base+".yaml", falling back to base+".yml" when only
// the short extension exists on disk. Listing accepts both extensions,
// so resolution must too.
func yamlPath(base string) string {
	long := base + ".yaml"
	if _, err := os.Stat(long); os.IsNotExist(err) {
		short := base + ".yml"
		if _, err := os.Stat(short); err == nil {
			return short
		}
	}
	return long
}

// resolve reads and merges the generic document tree for a domain.
func (l *Loader) resolve(domain schema.Domain, name string) (map[string]any, string, error) {
	path := l.path(domain, name)

	doc, unresolved, err := readDocument(path)
	l.countUnresolved(domain, path, unresolved)
	if err != nil {
		return nil, path, err
	}

	// Environment overrides layer on top of the main document only.
	if domain == schema.DomainMain {
		envPath := l.environmentPath()
		override, envUnresolved, err := readDocument(envPath)
		switch {
		case err == nil:
			l.countUnresolved(domain, envPath, envUnresolved)
			doc = DeepMerge(doc, override)
		case isNotFound(err):
			// No override for this environment. Base document stands.
		default:
			return nil, envPath, err
		}
	}

	// Collection documents may wrap their content in a section key.
	if key := domain.SectionKey(); key != "" {
		if inner, ok := doc[key].(map[string]any); ok {
			doc = inner
		}
	}

	return doc, path, nil
}

// load resolves, binds, defaults, and validates one document.
func (l *Loader) load(domain schema.Domain, name string) (any, error) {
	doc, path, err := l.resolve(domain, name)
	if err != nil {
		return nil, err
	}

	cfg, err := bind(domain, doc, path)
	if err != nil {
		return nil, err
	}

	var fields []schema.FieldError
	switch c := cfg.(type) {
	case *schema.MainConfig:
		schema.ApplyMainDefaults(c)
		fields = schema.ValidateMain(c)
	case *schema.AssetsConfig:
		fields = schema.ValidateAssets(c)
	case *schema.StrategyConfig:
		schema.ApplyStrategyDefaults(c)
		if c.Name == "" {
			c.Name = name
		}
		fields = schema.ValidateStrategy(c)
	case *schema.RiskProfileConfig:
		if c.Name == "" {
			c.Name = name
		}
		fields = schema.ValidateRiskProfile(c)
	case *schema.AgentConfig:
		schema.ApplyAgentDefaults(c)
		if c.Name == "" {
			c.Name = name
		}
		fields = schema.ValidateAgent(c)
	}

	if len(fields) > 0 {
		return nil, &ValidationError{
			Domain:   domain,
			Name:     name,
			FilePath: path,
			Fields:   fields,
		}
	}

	return cfg, nil
}

// bind converts a generic document tree into its typed schema struct by
// round-tripping through YAML. Unknown keys are tolerated; type
// mismatches surface as parse errors.
func bind(domain schema.Domain, doc map[string]any, path string) (any, error) {
	var target any
	switch domain {
	case schema.DomainMain:
		target = &schema.MainConfig{}
	case schema.DomainAssets:
		target = &schema.AssetsConfig{}
	case schema.DomainStrategy:
		target = &schema.StrategyConfig{}
	case schema.DomainRisk:
		target = &schema.RiskProfileConfig{}
	case schema.DomainAgent:
		target = &schema.AgentConfig{}
	default:
		return nil, fmt.Errorf("unknown configuration domain %q", domain)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, &ParseError{
			FilePath: path,
			Message:  "failed to re-encode document for binding",
			Cause:    err,
		}
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return nil, &ParseError{
			FilePath: path,
			Message:  "document does not match expected structure",
			Cause:    err,
		}
	}
	return target, nil
}

// countUnresolved logs and counts unresolved environment placeholders.
func (l *Loader) countUnresolved(domain schema.Domain, path string, n int) {
	if n == 0 {
		return
	}
	l.logger.Warn("unresolved environment placeholders left in config",
		"path", path,
		"count", n,
	)
	if l.metrics != nil {
		for i := 0; i < n; i++ {
			l.metrics.SubstitutionWarning(string(domain))
		}
	}
}

// loadResult classifies a load outcome for instrumentation.
func loadResult(err error) string {
	switch err.(type) {
	case nil:
		return "success"
	case *LoadError:
		return "load_error"
	case *ParseError:
		return "parse_error"
	case *ValidationError:
		return "validation_error"
	default:
		return "error"
	}
}

// isNotFound reports whether err is a missing-file load error.
func isNotFound(err error) bool {
	le, ok := err.(*LoadError)
	return ok && le.IsNotFound()
}
