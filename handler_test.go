package logfactory

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamHandler_Output(t *testing.T) {
	t.Run("renders the default template with extras", func(t *testing.T) {
		var buf threadSafeBuffer
		cfg := DefaultConfig("h_stream")
		cfg.ToConsole = false
		cfg.CustomHandlers = OneHandler(NewStreamHandler(&buf))

		logger, err := NewWithRegistry(NewRegistry(), cfg)
		require.NoError(t, err)

		logger.Info("hello world", Fields{"request_id": "abc-123"})

		out := buf.String()
		assert.Contains(t, out, " - h_stream - INFO - hello world")
		assert.Contains(t, out, "request_id=abc-123")
	})

	t.Run("rotation without a file keeps the full timestamp", func(t *testing.T) {
		var buf threadSafeBuffer
		cfg := DefaultConfig("h_stream_rotate")
		cfg.ToConsole = false
		cfg.CustomHandlers = OneHandler(NewStreamHandler(&buf))
		require.True(t, cfg.RotateDaily)

		logger, err := NewWithRegistry(NewRegistry(), cfg)
		require.NoError(t, err)

		logger.Info("timestamped")

		out := buf.String()
		assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} - `), out)
	})

	t.Run("filters below its own level", func(t *testing.T) {
		var buf threadSafeBuffer
		h := NewStreamHandler(&buf)
		h.SetLevel(zerolog.ErrorLevel)

		logger := NewRegistry().GetOrCreate("h_filter")
		logger.AddHandler(h)

		logger.Info("quiet")
		assert.Empty(t, buf.String())

		logger.Error("loud")
		assert.Contains(t, buf.String(), "ERROR - loud")
	})
}

func TestFileHandler(t *testing.T) {
	t.Run("appends formatted records", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		cfg := Config{Name: "h_file", FilePath: path}

		logger, err := NewWithRegistry(NewRegistry(), cfg)
		require.NoError(t, err)

		logger.Error("disk full", Fields{"disk": "sda1"})

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "ERROR - disk full")
		assert.Contains(t, string(data), "disk=sda1")
	})

	t.Run("unwritable path surfaces unmodified", func(t *testing.T) {
		cfg := Config{
			Name:     "h_file_bad",
			FilePath: filepath.Join(t.TempDir(), "missing", "app.log"),
		}

		_, err := NewWithRegistry(NewRegistry(), cfg)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidConfiguration)
	})
}

func TestRotatingFileHandler(t *testing.T) {
	t.Run("writes carry the time-only format", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "app.log")
		cfg := Config{Name: "h_rotating", FilePath: path, RotateDaily: true}

		logger, err := NewWithRegistry(NewRegistry(), cfg)
		require.NoError(t, err)

		handlers := logger.Handlers()
		require.Len(t, handlers, 1)
		assert.Equal(t, rotatingTimeFormat, handlers[0].Formatter().TimeFormat)

		logger.Info("first entry")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^\d{2}:\d{2}:\d{2} - h_rotating - INFO - first entry`), string(data))
	})

	t.Run("day change rotates the file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "app.log")
		cfg := Config{Name: "h_rollover", FilePath: path, RotateDaily: true}

		logger, err := NewWithRegistry(NewRegistry(), cfg)
		require.NoError(t, err)

		logger.Info("day one")

		h, ok := logger.Handlers()[0].(*RotatingFileHandler)
		require.True(t, ok)
		require.NoError(t, h.rollover(time.Now().Add(48*time.Hour)))

		logger.Info("day two")

		entries, err := filepath.Glob(filepath.Join(dir, "*"))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(entries), 2)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "day two")
		assert.NotContains(t, string(data), "day one")
	})

	t.Run("same day does not rotate", func(t *testing.T) {
		dir := t.TempDir()
		h := NewRotatingFileHandler(filepath.Join(dir, "app.log"))

		now := time.Now()
		require.NoError(t, h.rollover(now))
		require.NoError(t, h.rollover(now.Add(time.Minute)))
	})
}
