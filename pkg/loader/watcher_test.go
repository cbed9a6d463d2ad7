package loader

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCollapsesBursts(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var fired atomic.Int32
	for i := 0; i < 10; i++ {
		d.Trigger(func() { fired.Add(1) })
	}

	time.Sleep(100 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("callback fired %d times, want 1", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })
	d.Stop()

	time.Sleep(100 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Errorf("callback fired %d times after Stop, want 0", got)
	}
}

func TestFileWatcherInvalidatesOnChange(t *testing.T) {
	l, dir := newTestLoader(t)

	fw, err := NewFileWatcher(l, &FileWatcherConfig{
		DebounceInterval: 20 * time.Millisecond,
		Extensions:       []string{".yaml", ".yml"},
		SkipHidden:       true,
	}, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watchErr := make(chan error, 1)
	go func() { watchErr <- fw.Watch(ctx) }()
	defer func() {
		if err := fw.Stop(); err != nil {
			t.Errorf("Stop: %v", err)
		}
		if err := <-watchErr; err != nil {
			t.Errorf("Watch: %v", err)
		}
	}()

	// Let the watcher register its directories before writing.
	time.Sleep(50 * time.Millisecond)

	first, err := l.Strategy("trend")
	if err != nil {
		t.Fatalf("Strategy: %v", err)
	}

	path := filepath.Join(dir, "strategies", "trend.yaml")
	updated := "strategy:\n  name: trend_following_v2\n  type: trend\n"
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Wait for the event to be debounced and queued.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		second, err := l.Strategy("trend")
		if err != nil {
			t.Fatalf("Strategy after change: %v", err)
		}
		if second != first {
			if second.Name != "trend_following_v2" {
				t.Errorf("Name = %q, want %q", second.Name, "trend_following_v2")
			}
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("cache entry was never invalidated by the watcher")
}

func TestFileWatcherDoubleStartRejected(t *testing.T) {
	l, _ := newTestLoader(t)

	fw, err := NewFileWatcher(l, nil, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- fw.Watch(ctx) }()
	time.Sleep(50 * time.Millisecond)

	if err := fw.Watch(ctx); err == nil {
		t.Error("second Watch call should fail while running")
	}

	if err := fw.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if err := <-done; err != nil {
		t.Errorf("Watch: %v", err)
	}
}
