package logfactory

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
)

// parseLevel parses a severity string into a zerolog.Level. Names are
// trimmed and lower-cased first; "warning" is accepted as an alias for
// "warn" and numeric strings pass through via zerolog's parser. The empty
// string means debug.
func parseLevel(level string) (zerolog.Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	switch s {
	case emptyString:
		return zerolog.DebugLevel, nil
	case "warning":
		s = "warn"
	}
	l, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, err
	}
	return l, nil
}

// buildErrorChain walks an error's cause chain via errors.Unwrap and returns
// the messages outermost -> innermost plus the root message. It guards
// against excessive depth and repeated messages to avoid cycles.
func buildErrorChain(err error) (chain []string, root string) {
	const maxDepth = 50
	seen := map[string]bool{}

	for err != nil && len(chain) < maxDepth {
		msg := err.Error()
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)
		err = errors.Unwrap(err)
	}

	if len(chain) > 0 {
		root = chain[len(chain)-1]
	}
	return chain, root
}

// joinChain returns a single string for the error chain separated by " -> ".
func joinChain(chain []string) string {
	if len(chain) == 0 {
		return emptyString
	}
	return strings.Join(chain, " -> ")
}

// applyFields adds the extra fields to a zerolog event. Error values get
// chain enrichment alongside the plain field so the full cause history is
// queryable.
func applyFields(ev *zerolog.Event, fields Fields) {
	for k, v := range fields {
		if err, ok := v.(error); ok && err != nil {
			ev.AnErr(k, err)
			chain, root := buildErrorChain(err)
			if len(chain) > 1 {
				ev.Strs(k+"_chain", chain)
				ev.Str(k+"_root", root)
				ev.Str(k+"_history", joinChain(chain))
			}
			continue
		}
		ev.Interface(k, v)
	}
}
