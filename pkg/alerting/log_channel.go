package alerting

import (
	"context"
	"log/slog"
)

// LogChannel delivers alerts to the structured log. It is the default
// delivery channel; external transports plug in through the Channel
// interface.
type LogChannel struct {
	logger *slog.Logger
}

// NewLogChannel creates a log delivery channel.
func NewLogChannel(logger *slog.Logger) *LogChannel {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogChannel{logger: logger}
}

// Name identifies the channel.
func (c *LogChannel) Name() string {
	return "log"
}

// Send writes the alert to the log at a level matching its severity.
func (c *LogChannel) Send(ctx context.Context, alert Alert) error {
	attrs := []any{
		"rule", alert.Rule,
		"severity", string(alert.Severity),
	}
	for k, v := range alert.Details {
		attrs = append(attrs, k, v)
	}

	switch alert.Severity {
	case SeverityCritical:
		c.logger.ErrorContext(ctx, alert.Message, attrs...)
	case SeverityWarning:
		c.logger.WarnContext(ctx, alert.Message, attrs...)
	default:
		c.logger.InfoContext(ctx, alert.Message, attrs...)
	}
	return nil
}
