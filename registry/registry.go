// Package registry implements the process-wide directory of named loggers:
// a well-known root logger, lazy single-shot initialization, and
// get-or-create lookup by name.
//
// Grounded on the process-singleton default logger and package-level facade
// in _examples/lixenwraith-log/default.go, generalized from one global
// logger to a name -> *logger.Logger map with a root fallback, the way the
// specification's registry component requires.
package registry

import (
	"sync"

	"github.com/AwakeLion-Robot-Lab/awakelion-logger/logger"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/sink/console"
)

// RootName is the well-known name under which the root logger is
// registered; Get(RootName) always returns the registry-owned root, even
// before any named logger has been requested.
const RootName = "root"

// Registry is a directory of named loggers sharing one root fallback.
type Registry struct {
	initOnce sync.Once

	mu      sync.RWMutex
	root    *logger.Logger
	loggers map[string]*logger.Logger
}

// New constructs an uninitialized Registry. Init (directly, or implicitly
// via the first Get) establishes the root logger.
func New() *Registry {
	return &Registry{loggers: make(map[string]*logger.Logger)}
}

// Init idempotently establishes the root logger with a default console
// sink. It is safe to call concurrently from any number of goroutines and
// runs its body at most once; every Get is guaranteed to observe its
// effects.
func (r *Registry) Init() {
	r.initOnce.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		root := logger.New(RootName)
		_ = root.AddSink(console.New())
		r.root = root
		r.loggers[RootName] = root
	})
}

// Get returns the named logger, creating it on first request with the
// registry's root as its parent fallback. Get(RootName) always returns the
// registry-owned root.
func (r *Registry) Get(name string) *logger.Logger {
	r.Init()

	if name == RootName {
		r.mu.RLock()
		defer r.mu.RUnlock()
		return r.root
	}

	r.mu.RLock()
	if l, ok := r.loggers[name]; ok {
		r.mu.RUnlock()
		return l
	}
	root := r.root
	r.mu.RUnlock()

	candidate := logger.New(name)
	if root != nil {
		_ = candidate.SetRoot(root)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.loggers[name]; ok {
		// Another goroutine won the race to create this name; discard our
		// candidate and return the winner.
		return existing
	}
	r.loggers[name] = candidate
	return candidate
}

// Root returns the registry-owned root logger, initializing the registry
// first if necessary.
func (r *Registry) Root() *logger.Logger {
	return r.Get(RootName)
}

// Shutdown closes every logger the registry owns (including root) and
// clears the map. Each logger drains and stops its own worker as part of
// Close; Shutdown does not return until all of them have.
func (r *Registry) Shutdown() error {
	r.mu.Lock()
	loggers := r.loggers
	r.loggers = make(map[string]*logger.Logger)
	r.root = nil
	r.mu.Unlock()

	var firstErr error
	for _, l := range loggers {
		if err := l.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Names returns the currently registered logger names, for diagnostics and
// tests.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		out = append(out, name)
	}
	return out
}
