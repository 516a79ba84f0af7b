package logfactory

import (
	"os"

	"github.com/rs/zerolog"
)

// buildHandlers creates the built-in handlers in order: console first, then
// file. A file that needs daily rotation gets the rotating variant. Returns
// nil when neither output is requested; file-open errors propagate.
func buildHandlers(toConsole bool, filePath string, rotateDaily bool) ([]Handler, error) {
	var handlers []Handler

	if toConsole {
		handlers = append(handlers, NewStreamHandler(os.Stderr))
	}

	if filePath != emptyString {
		if rotateDaily {
			handlers = append(handlers, NewRotatingFileHandler(filePath))
		} else {
			fh, err := NewFileHandler(filePath)
			if err != nil {
				return nil, err
			}
			handlers = append(handlers, fh)
		}
	}

	return handlers, nil
}

// emitter is the writer behind each logger's zerolog instance. It fans every
// record out to the logger's own handlers and, walking the naming hierarchy,
// to each ancestor's handlers. Only the emitting logger's threshold gates a
// record; ancestor handlers filter on their own levels.
type emitter struct {
	logger *Logger
}

func (e *emitter) Write(p []byte) (int, error) {
	return e.WriteLevel(zerolog.NoLevel, p)
}

func (e *emitter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	var firstErr error
	for l := e.logger; l != nil; l = l.parent {
		for _, h := range l.Handlers() {
			if _, err := h.WriteLevel(level, p); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return len(p), firstErr
}
