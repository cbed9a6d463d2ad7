package loader

import "sync"

var (
	// globalLoader holds the singleton loader instance.
	globalLoader *Loader

	// loaderMutex protects access to globalLoader.
	loaderMutex sync.RWMutex

	// initOnce ensures the loader is initialized only once.
	initOnce sync.Once
)

// Initialize creates the global loader singleton. This function should be
// called once at application startup; subsequent calls are ignored.
//
// Returns an error if the configuration directory is not usable.
func Initialize(opts Options) error {
	var initErr error

	initOnce.Do(func() {
		l, err := New(opts)
		if err != nil {
			initErr = err
			return
		}

		loaderMutex.Lock()
		globalLoader = l
		loaderMutex.Unlock()
	})

	return initErr
}

// GetLoader returns the global loader instance, or nil if Initialize has
// not been called successfully.
//
// For testing, prefer dependency injection with explicit Loader instances
// rather than relying on the global singleton.
func GetLoader() *Loader {
	loaderMutex.RLock()
	defer loaderMutex.RUnlock()
	return globalLoader
}

// SetLoader replaces the global loader instance. This function is
// primarily intended for testing.
func SetLoader(l *Loader) {
	loaderMutex.Lock()
	defer loaderMutex.Unlock()
	globalLoader = l
}

// MustGetLoader returns the global loader instance and panics if it has
// not been initialized. Use only in code paths that run after successful
// application startup.
func MustGetLoader() *Loader {
	l := GetLoader()
	if l == nil {
		panic("config loader not initialized: call Initialize first")
	}
	return l
}
