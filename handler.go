package logfactory

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Handler is an output sink for log records. Handlers receive
// zerolog-encoded records, filter them against their own severity threshold
// and render them through their formatter. Deduplication during attachment
// is by concrete handler type.
type Handler interface {
	zerolog.LevelWriter

	SetFormatter(f *Formatter)
	SetLevel(level zerolog.Level)
	Formatter() *Formatter
	Level() zerolog.Level
}

// handlerCore carries the formatter, threshold and sink shared by all
// built-in handler types.
type handlerCore struct {
	mu        sync.Mutex
	out       io.Writer
	level     zerolog.Level
	formatter *Formatter
}

func (h *handlerCore) SetFormatter(f *Formatter) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.formatter = f
}

func (h *handlerCore) SetLevel(level zerolog.Level) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.level = level
}

func (h *handlerCore) Formatter() *Formatter {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.formatter
}

func (h *handlerCore) Level() zerolog.Level {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.level
}

func (h *handlerCore) Write(p []byte) (int, error) {
	return h.WriteLevel(zerolog.NoLevel, p)
}

func (h *handlerCore) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if level != zerolog.NoLevel && level < h.level {
		return len(p), nil
	}

	line, err := h.formatter.Render(time.Now(), p)
	if err != nil {
		return 0, err
	}
	if _, err := h.out.Write(line); err != nil {
		return 0, err
	}
	return len(p), nil
}

// StreamHandler writes formatted records to an arbitrary writer. The factory
// uses it with os.Stderr for console output.
type StreamHandler struct {
	handlerCore
}

func NewStreamHandler(w io.Writer) *StreamHandler {
	return &StreamHandler{handlerCore: handlerCore{out: w}}
}

// FileHandler appends formatted records to a plain file. The file is opened
// at construction; open errors surface to the caller unmodified. The handle
// stays open for the life of the process.
type FileHandler struct {
	handlerCore
}

func NewFileHandler(path string) (*FileHandler, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileHandler{handlerCore: handlerCore{out: f}}, nil
}

// RotatingFileHandler appends to a file and rotates it when a write crosses
// a midnight boundary. Rotation mechanics, backup naming and the actual file
// handle are delegated to lumberjack.
type RotatingFileHandler struct {
	handlerCore

	file    *lumberjack.Logger
	rotMu   sync.Mutex
	lastDay int
}

func NewRotatingFileHandler(path string) *RotatingFileHandler {
	lj := &lumberjack.Logger{Filename: path}
	h := &RotatingFileHandler{file: lj}
	h.out = lj
	return h
}

func (h *RotatingFileHandler) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if err := h.rollover(time.Now()); err != nil {
		return 0, err
	}
	return h.handlerCore.WriteLevel(level, p)
}

func (h *RotatingFileHandler) rollover(now time.Time) error {
	h.rotMu.Lock()
	defer h.rotMu.Unlock()

	day := now.Year()*1000 + now.YearDay()
	if h.lastDay == 0 {
		h.lastDay = day
		return nil
	}
	if day == h.lastDay {
		return nil
	}
	h.lastDay = day
	return h.file.Rotate()
}
