package logfactory

import (
	"fmt"
	"reflect"
)

// LogContext is an immutable bundle of severity calls that attach a fixed
// set of extra fields to every record. Values are minted by a
// ContextGenerator and share its owned logger.
type LogContext struct {
	logger *Logger
	extra  Fields
}

// Exception logs msg at error level, tagged with the bound fields and the
// call site.
func (c LogContext) Exception(msg string) {
	if c.logger == nil {
		return
	}
	c.logger.Exception(msg, c.extra)
}

// Error logs msg at error level with the bound fields.
func (c LogContext) Error(msg string) {
	if c.logger == nil {
		return
	}
	c.logger.Error(msg, c.extra)
}

// Warning logs msg at warn level with the bound fields.
func (c LogContext) Warning(msg string) {
	if c.logger == nil {
		return
	}
	c.logger.Warning(msg, c.extra)
}

// Info logs msg at info level with the bound fields.
func (c LogContext) Info(msg string) {
	if c.logger == nil {
		return
	}
	c.logger.Info(msg, c.extra)
}

// Debug logs msg at debug level with the bound fields.
func (c LogContext) Debug(msg string) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(msg, c.extra)
}

// Equal reports structural equality: same owned logger and equal bound
// fields.
func (c LogContext) Equal(other LogContext) bool {
	if c.logger != other.logger || len(c.extra) != len(other.extra) {
		return false
	}
	for k, v := range c.extra {
		ov, ok := other.extra[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

func (c LogContext) String() string {
	name := "<nil>"
	if c.logger != nil {
		name = c.logger.Name()
	}
	return fmt.Sprintf("LogContext(logger=%s, fields=%d)", name, len(c.extra))
}

// ContextGenerator owns one factory-built logger and mints LogContext values
// against it. All contexts from one generator share that logger.
type ContextGenerator struct {
	logger *Logger
}

// NewContextGenerator builds the owned logger via New with the given
// configuration, forwarded verbatim.
func NewContextGenerator(cfg Config) (*ContextGenerator, error) {
	return NewContextGeneratorWithRegistry(Default(), cfg)
}

// NewContextGeneratorWithRegistry is NewContextGenerator against an explicit
// registry.
func NewContextGeneratorWithRegistry(reg Registry, cfg Config) (*ContextGenerator, error) {
	logger, err := NewWithRegistry(reg, cfg)
	if err != nil {
		return nil, err
	}
	return &ContextGenerator{logger: logger}, nil
}

// Logger returns the generator's owned logger.
func (g *ContextGenerator) Logger() *Logger {
	return g.logger
}

// Bind returns a LogContext that attaches extra to every call. The map is
// copied, so later mutation of the caller's map does not leak into the
// context.
func (g *ContextGenerator) Bind(extra Fields) LogContext {
	copied := make(Fields, len(extra))
	for k, v := range extra {
		copied[k] = v
	}
	return LogContext{logger: g.logger, extra: copied}
}
