package logfactory

// Config is the full configuration surface of the factory. The zero value is
// not useful on its own; start from DefaultConfig and override fields.
type Config struct {
	// Name is the dotted logger name ("svc", "svc.api"). Required; must be
	// non-blank after trimming. The name "root" addresses the hierarchy root.
	Name string `validate:"required"`

	// FilePath enables file output when non-empty.
	FilePath string

	// RotateDaily rotates the log file at midnight boundaries. Only takes
	// effect when FilePath is set.
	RotateDaily bool

	// Level is the severity threshold applied to the logger and every
	// attached handler. Accepts zerolog level names (case-insensitive,
	// "warning" is accepted as an alias for "warn") or a numeric level.
	// Empty means debug.
	Level string

	// ToConsole emits records to stderr through a stream handler.
	ToConsole bool

	// CustomHandlers holds additional handlers to attach after the built-in
	// ones. Use OneHandler or HandlerList to populate it.
	CustomHandlers HandlerSet

	// MessageFormat is the formatter template. Empty means
	// DefaultMessageFormat.
	MessageFormat string

	// TimeFormat is the timestamp layout. Ignored when rotating to a file
	// (the time-only layout is forced); empty means full date+time.
	TimeFormat string

	// DedupeTypes skips any handler whose type is already attached to the
	// logger or its parent, and collapses the logger into its parent when
	// their handler lists end up identical.
	DedupeTypes bool
}

// DefaultConfig returns the conventional configuration for name: console
// output, debug level, daily rotation for any file output, default formats.
func DefaultConfig(name string) Config {
	return Config{
		Name:          name,
		RotateDaily:   true,
		Level:         "debug",
		ToConsole:     true,
		MessageFormat: DefaultMessageFormat,
	}
}

// HandlerSet models the "single handler or list of handlers" union at the
// configuration boundary.
type HandlerSet struct {
	handlers []Handler
}

// OneHandler wraps a single handler. A nil handler yields the empty set.
func OneHandler(h Handler) HandlerSet {
	if h == nil {
		return HandlerSet{}
	}
	return HandlerSet{handlers: []Handler{h}}
}

// HandlerList wraps zero or more handlers, preserving order.
func HandlerList(hs ...Handler) HandlerSet {
	out := make([]Handler, 0, len(hs))
	for _, h := range hs {
		if h != nil {
			out = append(out, h)
		}
	}
	return HandlerSet{handlers: out}
}

func (s HandlerSet) slice() []Handler {
	return s.handlers
}
