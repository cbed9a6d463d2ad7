package server

import (
	"context"
	"testing"
	"time"
)

func TestNewRequiresLoader(t *testing.T) {
	if _, err := New(Options{Config: Config{ListenAddress: ":0"}}); err == nil {
		t.Error("expected error without loader")
	}
}

func TestNewRequiresListenAddress(t *testing.T) {
	srv, _ := newTestServer(t)
	if _, err := New(Options{Loader: srv.loader}); err == nil {
		t.Error("expected error without listen address")
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{ListenAddress: ":0"}
	cfg.applyDefaults()
	if cfg.ReadTimeout != DefaultReadTimeout {
		t.Errorf("ReadTimeout = %v, want %v", cfg.ReadTimeout, DefaultReadTimeout)
	}
	if cfg.ShutdownTimeout != DefaultShutdownTimeout {
		t.Errorf("ShutdownTimeout = %v, want %v", cfg.ShutdownTimeout, DefaultShutdownTimeout)
	}
}

func TestStartAndShutdownOnContextCancel(t *testing.T) {
	srv, _ := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start returned %v, want nil after graceful shutdown", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestStopTriggersShutdown(t *testing.T) {
	srv, _ := newTestServer(t)

	done := make(chan error, 1)
	go func() { done <- srv.Start(context.Background()) }()

	time.Sleep(100 * time.Millisecond)
	srv.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start returned %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down after Stop")
	}
}
