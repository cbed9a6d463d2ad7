package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("document loaded", "domain", "main")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "document loaded" {
		t.Errorf("msg = %v, want %q", entry["msg"], "document loaded")
	}
	if entry["domain"] != "main" {
		t.Errorf("domain = %v, want %q", entry["domain"], "main")
	}
}

func TestNewTextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "debug", Format: "text", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Debug("cache invalidated")
	if !strings.Contains(buf.String(), "cache invalidated") {
		t.Errorf("output missing message: %q", buf.String())
	}
}

func TestNewConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("watching tree", "dir", "config")
	out := buf.String()
	if !strings.Contains(out, "watching tree") || !strings.Contains(out, "dir=config") {
		t.Errorf("unexpected console output: %q", out)
	}
}

func TestNewLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("suppressed")
	if buf.Len() != 0 {
		t.Errorf("info entry written at warn level: %q", buf.String())
	}
	logger.Warn("emitted")
	if buf.Len() == 0 {
		t.Error("warn entry missing at warn level")
	}
}

func TestNewDefaults(t *testing.T) {
	logger, err := New(Config{})
	if err != nil {
		t.Fatalf("New with empty config: %v", err)
	}
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("default level should enable info")
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("default level should suppress debug")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}
