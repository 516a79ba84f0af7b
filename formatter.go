package logfactory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Formatter is an immutable (message template, time layout) pair. All
// handlers attached by one factory call share a single Formatter instance.
//
// The message template uses the tokens {time}, {name}, {level} and {message};
// any extra structured fields on a record are appended as sorted key=value
// pairs after the rendered template.
type Formatter struct {
	MessageFormat string
	TimeFormat    string
}

// selectFormatter applies the format precedence rules. Daily rotation forces
// the time-only layout, but only when a file is actually configured: a
// console-only logger with RotateDaily set keeps the caller's (or default)
// time layout.
func selectFormatter(cfg Config) *Formatter {
	switch {
	case cfg.FilePath != emptyString && cfg.RotateDaily:
		return &Formatter{MessageFormat: cfg.MessageFormat, TimeFormat: rotatingTimeFormat}
	case cfg.TimeFormat != emptyString:
		return &Formatter{MessageFormat: cfg.MessageFormat, TimeFormat: cfg.TimeFormat}
	default:
		return &Formatter{MessageFormat: cfg.MessageFormat, TimeFormat: defaultTimeFormat}
	}
}

func (f *Formatter) messageFormat() string {
	if f == nil || f.MessageFormat == emptyString {
		return DefaultMessageFormat
	}
	return f.MessageFormat
}

func (f *Formatter) timeFormat() string {
	if f == nil || f.TimeFormat == emptyString {
		return defaultTimeFormat
	}
	return f.TimeFormat
}

// Render decodes one zerolog-encoded record and produces the formatted
// output line, newline-terminated.
func (f *Formatter) Render(now time.Time, record []byte) ([]byte, error) {
	var evt map[string]any
	dec := json.NewDecoder(bytes.NewReader(record))
	dec.UseNumber()
	if err := dec.Decode(&evt); err != nil {
		return nil, fmt.Errorf("decoding log record: %w", err)
	}

	level, _ := evt[zerolog.LevelFieldName].(string)
	name, _ := evt[loggerFieldName].(string)
	message, _ := evt[zerolog.MessageFieldName].(string)

	line := strings.NewReplacer(
		"{time}", now.Format(f.timeFormat()),
		"{name}", name,
		"{level}", strings.ToUpper(level),
		"{message}", message,
	).Replace(f.messageFormat())

	keys := make([]string, 0, len(evt))
	for k := range evt {
		switch k {
		case zerolog.LevelFieldName, zerolog.MessageFieldName, loggerFieldName:
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b bytes.Buffer
	b.WriteString(line)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, evt[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
