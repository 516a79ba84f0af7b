package logfactory

import (
	"fmt"
	"reflect"
)

// New builds a pre-configured logger on the default registry. The logger
// name must be non-blank after trimming; that is the only condition reported
// as ErrInvalidConfiguration. Level parse and file-open failures propagate
// from their own layers.
func New(cfg Config) (*Logger, error) {
	return NewWithRegistry(Default(), cfg)
}

// NewWithRegistry is New against an explicit registry.
func NewWithRegistry(reg Registry, cfg Config) (*Logger, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	formatter := selectFormatter(cfg)

	handlers, err := buildHandlers(cfg.ToConsole, cfg.FilePath, cfg.RotateDaily)
	if err != nil {
		return nil, err
	}
	handlers = append(handlers, cfg.CustomHandlers.slice()...)

	logger := reg.GetOrCreate(cfg.Name)
	logger.SetLevel(level)

	attachHandlers(logger, handlers, formatter, cfg.DedupeTypes)
	collapseIntoParent(logger, cfg.DedupeTypes)

	return logger, nil
}

// attachHandlers applies the shared formatter and the logger's threshold to
// each new handler and attaches it. With dedupe enabled, a handler whose
// concrete type already exists on the logger or its parent is skipped. The
// existing lists are read as copies, never aliased.
func attachHandlers(logger *Logger, handlers []Handler, f *Formatter, dedupe bool) {
	existing := logger.Handlers()
	if p := logger.Parent(); p != nil {
		existing = append(existing, p.Handlers()...)
	}

	seen := make(map[reflect.Type]struct{}, len(existing))
	for _, h := range existing {
		seen[reflect.TypeOf(h)] = struct{}{}
	}

	level := logger.Level()
	for _, h := range handlers {
		if dedupe {
			if _, ok := seen[reflect.TypeOf(h)]; ok {
				continue
			}
		}
		h.SetFormatter(f)
		h.SetLevel(level)
		logger.AddHandler(h)
	}
}

// collapseIntoParent clears the logger's handler list when, after attachment
// with dedupe enabled, it holds exactly the parent's handlers (same
// instances, same order). Such a logger defers entirely to its parent so
// records are not emitted twice through propagation.
func collapseIntoParent(logger *Logger, dedupe bool) {
	if !dedupe {
		return
	}
	parent := logger.Parent()
	if parent == nil {
		return
	}

	own := logger.Handlers()
	theirs := parent.Handlers()
	if len(own) == 0 || len(own) != len(theirs) {
		return
	}
	for i := range own {
		if own[i] != theirs[i] {
			return
		}
	}
	logger.SetHandlers(nil)
}
