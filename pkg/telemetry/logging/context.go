package logging

import (
	"context"

	"github.com/google/uuid"
)

// Context keys for common log fields.
type contextKey string

const (
	// RequestIDKey is the context key for request IDs.
	RequestIDKey contextKey = "request_id"

	// EnvironmentKey is the context key for the active environment name.
	EnvironmentKey contextKey = "environment"
)

// NewRequestID generates a fresh request correlation ID.
func NewRequestID() string {
	return uuid.NewString()
}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from the context.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithEnvironment adds the active environment name to the context.
func WithEnvironment(ctx context.Context, environment string) context.Context {
	return context.WithValue(ctx, EnvironmentKey, environment)
}

// GetEnvironment retrieves the environment name from the context.
func GetEnvironment(ctx context.Context) string {
	if environment, ok := ctx.Value(EnvironmentKey).(string); ok {
		return environment
	}
	return ""
}
