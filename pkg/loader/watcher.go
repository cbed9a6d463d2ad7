package loader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a configuration tree for changes and queues the
// changed paths on a Loader. It debounces rapid event bursts so an editor
// save that touches a file several times invalidates the cache once.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	loader   *Loader
	logger   *slog.Logger
	config   *FileWatcherConfig
	debounce *Debouncer

	// changed collects paths seen since the last debounce flush.
	changedMu sync.Mutex
	changed   map[string]struct{}

	mu      sync.RWMutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// FileWatcherConfig contains configuration for the file watcher.
type FileWatcherConfig struct {
	// DebounceInterval is the quiet period required before changed paths
	// are flushed to the loader (default: 100ms).
	DebounceInterval time.Duration

	// Extensions is the list of file extensions to watch.
	Extensions []string

	// SkipHidden controls whether hidden files and directories are ignored.
	SkipHidden bool
}

// DefaultFileWatcherConfig returns the default watcher configuration.
func DefaultFileWatcherConfig() *FileWatcherConfig {
	return &FileWatcherConfig{
		DebounceInterval: 100 * time.Millisecond,
		Extensions:       []string{".yaml", ".yml"},
		SkipHidden:       true,
	}
}

// NewFileWatcher creates a file watcher bound to a loader. The watcher
// only ever queues paths via Loader.NotifyChanged; it never loads
// documents itself.
func NewFileWatcher(loader *Loader, config *FileWatcherConfig, logger *slog.Logger) (*FileWatcher, error) {
	if config == nil {
		config = DefaultFileWatcherConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &FileWatcher{
		watcher:  watcher,
		loader:   loader,
		logger:   logger,
		config:   config,
		debounce: NewDebouncer(config.DebounceInterval),
		changed:  make(map[string]struct{}),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Watch starts watching the loader's configuration directory. It blocks
// until the context is cancelled or Stop is called.
func (fw *FileWatcher) Watch(ctx context.Context) error {
	fw.mu.Lock()
	if fw.running {
		fw.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	fw.running = true
	fw.mu.Unlock()

	defer func() {
		fw.mu.Lock()
		fw.running = false
		fw.mu.Unlock()
		close(fw.doneCh)
	}()

	if err := fw.addDirectory(fw.loader.Dir()); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	fw.logger.Info("config file watcher started",
		"dir", fw.loader.Dir(),
		"debounce_ms", fw.config.DebounceInterval.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			fw.logger.Info("config file watcher stopped (context cancelled)")
			return nil

		case <-fw.stopCh:
			fw.logger.Info("config file watcher stopped")
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !fw.shouldProcessEvent(event) {
				continue
			}

			fw.logger.Debug("config file event",
				"path", event.Name,
				"op", event.Op.String(),
			)

			fw.changedMu.Lock()
			fw.changed[event.Name] = struct{}{}
			fw.changedMu.Unlock()

			fw.debounce.Trigger(fw.flush)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			fw.logger.Error("config file watcher error", "error", err)
			// Keep watching despite errors.
		}
	}
}

// Stop stops the file watcher and waits for the event loop to exit.
func (fw *FileWatcher) Stop() error {
	fw.mu.Lock()
	if !fw.running {
		fw.mu.Unlock()
		return nil
	}
	fw.mu.Unlock()

	close(fw.stopCh)
	<-fw.doneCh

	fw.debounce.Stop()

	if err := fw.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

// flush hands every collected path to the loader.
func (fw *FileWatcher) flush() {
	fw.changedMu.Lock()
	paths := make([]string, 0, len(fw.changed))
	for p := range fw.changed {
		paths = append(paths, p)
	}
	fw.changed = make(map[string]struct{})
	fw.changedMu.Unlock()

	for _, p := range paths {
		fw.loader.NotifyChanged(p)
	}
}

// addDirectory adds a directory and all subdirectories to the watcher.
func (fw *FileWatcher) addDirectory(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if fw.config.SkipHidden && strings.HasPrefix(filepath.Base(path), ".") && path != dir {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			if err := fw.watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch directory %q: %w", path, err)
			}
			fw.logger.Debug("watching directory", "path", path)
		}
		return nil
	})
}

// shouldProcessEvent filters out events that cannot affect resolution.
func (fw *FileWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}

	ext := strings.ToLower(filepath.Ext(event.Name))
	if !fw.hasValidExtension(ext) {
		return false
	}

	if fw.config.SkipHidden && strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}

	return true
}

// hasValidExtension checks if a file extension should be watched.
func (fw *FileWatcher) hasValidExtension(ext string) bool {
	for _, validExt := range fw.config.Extensions {
		if ext == strings.ToLower(validExt) {
			return true
		}
	}
	return false
}

// Debouncer collapses rapid event bursts and runs the callback only
// after a quiet period.
type Debouncer struct {
	interval time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	callback func()
	stopped  bool
}

// NewDebouncer creates a new debouncer.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger arms the debouncer with a callback. The callback runs after the
// debounce interval unless another trigger resets the timer first.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.callback = callback
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
}

// fire runs the armed callback.
func (d *Debouncer) fire() {
	d.mu.Lock()
	callback := d.callback
	stopped := d.stopped
	d.mu.Unlock()

	if callback != nil && !stopped {
		callback()
	}
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
