package alerting

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Severity classifies an alert.
type Severity string

const (
	// SeverityInfo is informational.
	SeverityInfo Severity = "info"

	// SeverityWarning needs attention but not immediately.
	SeverityWarning Severity = "warning"

	// SeverityCritical needs immediate attention.
	SeverityCritical Severity = "critical"
)

// Alert is one fired alert instance.
type Alert struct {
	Rule     string         `json:"rule"`
	Severity Severity       `json:"severity"`
	Message  string         `json:"message"`
	Details  map[string]any `json:"details,omitempty"`
	At       time.Time      `json:"at"`
}

// Rule declares when and where an alert fires.
type Rule struct {
	// Name identifies the rule.
	Name string

	// Severity classifies alerts fired by this rule.
	Severity Severity

	// Message is the alert text. Details are attached separately.
	Message string

	// Channels names the channels the alert is delivered to. Empty means
	// every registered channel.
	Channels []string

	// Cooldown suppresses repeat firings of the same rule inside the
	// interval. Zero means no cooldown.
	Cooldown time.Duration
}

// Channel delivers alerts somewhere.
type Channel interface {
	// Name identifies the channel for rule routing.
	Name() string

	// Send delivers one alert.
	Send(ctx context.Context, alert Alert) error
}

// DefaultMaxPerHour caps how many alerts the manager fires per hour.
const DefaultMaxPerHour = 60

// DefaultMaxHistory caps the retained alert history.
const DefaultMaxHistory = 500

// Options configures a Manager.
type Options struct {
	// MaxPerHour caps fired alerts per rolling hour (default: 60).
	MaxPerHour int

	// MaxHistory caps the retained alert history (default: 500).
	MaxHistory int
}

// Manager evaluates alert rules, applies cooldowns and the hourly rate
// limit, delivers alerts to channels, and keeps a bounded history. It is
// safe for concurrent use.
type Manager struct {
	logger     *slog.Logger
	maxPerHour int
	maxHistory int

	mu        sync.Mutex
	rules     map[string]Rule
	channels  map[string]Channel
	lastFired map[string]time.Time
	fired     []time.Time
	history   []Alert
}

// NewManager creates an alert manager.
func NewManager(logger *slog.Logger, opts Options) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.MaxPerHour <= 0 {
		opts.MaxPerHour = DefaultMaxPerHour
	}
	if opts.MaxHistory <= 0 {
		opts.MaxHistory = DefaultMaxHistory
	}
	return &Manager{
		logger:     logger,
		maxPerHour: opts.MaxPerHour,
		maxHistory: opts.MaxHistory,
		rules:      make(map[string]Rule),
		channels:   make(map[string]Channel),
		lastFired:  make(map[string]time.Time),
	}
}

// RegisterChannel adds a delivery channel.
func (m *Manager) RegisterChannel(ch Channel) {
	m.mu.Lock()
	m.channels[ch.Name()] = ch
	m.mu.Unlock()
}

// AddRule registers or replaces a rule.
func (m *Manager) AddRule(rule Rule) error {
	if rule.Name == "" {
		return fmt.Errorf("alert rule requires a name")
	}
	if rule.Severity == "" {
		rule.Severity = SeverityWarning
	}
	m.mu.Lock()
	m.rules[rule.Name] = rule
	m.mu.Unlock()
	return nil
}

// Trigger fires the named rule. It returns false when the alert was
// suppressed by the rule's cooldown or the hourly rate limit. Delivery
// failures are logged per channel; the alert still counts as fired.
func (m *Manager) Trigger(ctx context.Context, ruleName string, details map[string]any) (bool, error) {
	m.mu.Lock()
	rule, ok := m.rules[ruleName]
	if !ok {
		m.mu.Unlock()
		return false, fmt.Errorf("unknown alert rule %q", ruleName)
	}

	now := time.Now()

	if rule.Cooldown > 0 {
		if last, fired := m.lastFired[ruleName]; fired && now.Sub(last) < rule.Cooldown {
			m.mu.Unlock()
			return false, nil
		}
	}

	m.trimFired(now)
	if len(m.fired) >= m.maxPerHour {
		m.mu.Unlock()
		m.logger.Warn("alert suppressed by hourly rate limit", "rule", ruleName)
		return false, nil
	}

	alert := Alert{
		Rule:     ruleName,
		Severity: rule.Severity,
		Message:  rule.Message,
		Details:  details,
		At:       now,
	}

	m.lastFired[ruleName] = now
	m.fired = append(m.fired, now)
	m.history = append(m.history, alert)
	if len(m.history) > m.maxHistory {
		m.history = m.history[len(m.history)-m.maxHistory:]
	}

	targets := m.targetChannels(rule)
	m.mu.Unlock()

	for _, ch := range targets {
		if err := ch.Send(ctx, alert); err != nil {
			m.logger.Error("alert delivery failed",
				"rule", ruleName,
				"channel", ch.Name(),
				"error", err,
			)
		}
	}

	return true, nil
}

// History returns a copy of the retained alerts, oldest first.
func (m *Manager) History() []Alert {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Alert, len(m.history))
	copy(out, m.history)
	return out
}

// targetChannels resolves a rule's channel names. Callers must hold mu.
func (m *Manager) targetChannels(rule Rule) []Channel {
	if len(rule.Channels) == 0 {
		out := make([]Channel, 0, len(m.channels))
		for _, ch := range m.channels {
			out = append(out, ch)
		}
		return out
	}

	out := make([]Channel, 0, len(rule.Channels))
	for _, name := range rule.Channels {
		if ch, ok := m.channels[name]; ok {
			out = append(out, ch)
		} else {
			m.logger.Warn("alert rule references unknown channel",
				"rule", rule.Name,
				"channel", name,
			)
		}
	}
	return out
}

// trimFired drops fire timestamps older than one hour. Callers must hold mu.
func (m *Manager) trimFired(now time.Time) {
	cutoff := now.Add(-time.Hour)
	start := 0
	for start < len(m.fired) && m.fired[start].Before(cutoff) {
		start++
	}
	m.fired = m.fired[start:]
}
