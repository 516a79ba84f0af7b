package logfactory

import (
	"sync"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Fields is a set of extra structured fields attached to a single log call.
// Values that implement error are logged with cause-chain enrichment.
type Fields map[string]any

// Logger is a named member of the logging hierarchy. It carries a severity
// threshold and an ordered handler list; records it emits also propagate to
// every ancestor's handlers. Loggers are created through a Registry and live
// for the rest of the process.
type Logger struct {
	name   string
	parent *Logger

	mu       sync.RWMutex
	handlers []Handler
	level    zerolog.Level

	// The live zerolog logger is swapped atomically on mutation so the
	// emission path never takes the logger lock.
	zl atomic.Pointer[zerolog.Logger]
}

func newLogger(name string, parent *Logger) *Logger {
	l := &Logger{
		name:   name,
		parent: parent,
		level:  zerolog.DebugLevel,
	}
	l.rebuild(zerolog.DebugLevel)
	return l
}

// rebuild constructs a fresh zerolog logger at the given threshold and
// stores it atomically.
func (l *Logger) rebuild(level zerolog.Level) {
	zl := zerolog.New(&emitter{logger: l}).Level(level).With().Str(loggerFieldName, l.name).Logger()
	l.zl.Store(&zl)
}

// Name returns the logger's registered name.
func (l *Logger) Name() string {
	return l.name
}

// Parent returns the next logger up the naming hierarchy, or nil for the
// root.
func (l *Logger) Parent() *Logger {
	return l.parent
}

// Level returns the logger's severity threshold.
func (l *Logger) Level() zerolog.Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// SetLevel replaces the logger's severity threshold.
func (l *Logger) SetLevel(level zerolog.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.rebuild(level)
}

// Handlers returns a copy of the logger's handler list. Callers may inspect
// or extend the copy freely without affecting the logger.
func (l *Logger) Handlers() []Handler {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Handler, len(l.handlers))
	copy(out, l.handlers)
	return out
}

// AddHandler appends a handler to the logger's list.
func (l *Logger) AddHandler(h Handler) {
	if h == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers = append(l.handlers, h)
}

// SetHandlers replaces the logger's handler list. A nil slice clears it.
func (l *Logger) SetHandlers(hs []Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers = make([]Handler, len(hs))
	copy(l.handlers, hs)
}

// Debug logs msg at debug level with any extra fields.
func (l *Logger) Debug(msg string, extra ...Fields) {
	l.log(zerolog.DebugLevel, msg, false, extra)
}

// Info logs msg at info level with any extra fields.
func (l *Logger) Info(msg string, extra ...Fields) {
	l.log(zerolog.InfoLevel, msg, false, extra)
}

// Warning logs msg at warn level with any extra fields.
func (l *Logger) Warning(msg string, extra ...Fields) {
	l.log(zerolog.WarnLevel, msg, false, extra)
}

// Error logs msg at error level with any extra fields.
func (l *Logger) Error(msg string, extra ...Fields) {
	l.log(zerolog.ErrorLevel, msg, false, extra)
}

// Exception logs msg at error level and records the call site as a caller
// field.
func (l *Logger) Exception(msg string, extra ...Fields) {
	l.log(zerolog.ErrorLevel, msg, true, extra)
}

func (l *Logger) log(level zerolog.Level, msg string, withCaller bool, extra []Fields) {
	zl := l.zl.Load()
	if zl == nil {
		return
	}

	var ev *zerolog.Event
	switch level {
	case zerolog.DebugLevel:
		ev = zl.Debug()
	case zerolog.InfoLevel:
		ev = zl.Info()
	case zerolog.WarnLevel:
		ev = zl.Warn()
	case zerolog.ErrorLevel:
		ev = zl.Error()
	default:
		return
	}

	if withCaller {
		ev = ev.Caller(2)
	}
	for _, f := range extra {
		applyFields(ev, f)
	}
	ev.Msg(msg)
}
