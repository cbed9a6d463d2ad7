// Package logging builds the service's structured slog loggers and
// carries request correlation IDs through contexts.
package logging
