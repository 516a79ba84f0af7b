package logfactory

import (
	"strings"
	"sync"
)

// Registry is the named-logger registry: one logger per dotted name, parent
// relationships following the dotted-name convention, and a single root at
// the top. The factory works against this narrow seam so tests can run on
// isolated registries instead of process-wide state.
type Registry interface {
	// GetOrCreate returns the logger registered under name, creating it
	// (and any missing ancestors) on first use. The name "root" and the
	// empty string both address the hierarchy root.
	GetOrCreate(name string) *Logger
}

type registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
	root    *Logger
}

// NewRegistry returns a fresh, empty registry with its own root logger.
func NewRegistry() Registry {
	return &registry{
		loggers: make(map[string]*Logger),
		root:    newLogger(rootLoggerName, nil),
	}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by New and
// NewContextGenerator.
func Default() Registry {
	return defaultRegistry
}

func (r *registry) GetOrCreate(name string) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getOrCreate(name)
}

// getOrCreate resolves the parent as the nearest dotted-name ancestor,
// creating placeholder ancestors as needed. Caller must hold r.mu.
func (r *registry) getOrCreate(name string) *Logger {
	if name == emptyString || name == rootLoggerName {
		return r.root
	}
	if l, ok := r.loggers[name]; ok {
		return l
	}

	parent := r.root
	if i := strings.LastIndex(name, "."); i > 0 {
		parent = r.getOrCreate(name[:i])
	}

	l := newLogger(name, parent)
	r.loggers[name] = l
	return l
}
