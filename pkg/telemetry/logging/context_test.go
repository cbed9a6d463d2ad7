package logging

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc-123")
	if got := GetRequestID(ctx); got != "abc-123" {
		t.Errorf("GetRequestID = %q, want %q", got, "abc-123")
	}
}

func TestGetRequestIDMissing(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("GetRequestID on empty context = %q, want empty", got)
	}
}

func TestNewRequestIDUnique(t *testing.T) {
	a := NewRequestID()
	b := NewRequestID()
	if a == "" || a == b {
		t.Errorf("NewRequestID returned %q and %q, want distinct non-empty IDs", a, b)
	}
}

func TestEnvironmentRoundTrip(t *testing.T) {
	ctx := WithEnvironment(context.Background(), "production")
	if got := GetEnvironment(ctx); got != "production" {
		t.Errorf("GetEnvironment = %q, want %q", got, "production")
	}
}
