package logfactory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Render(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)

	t.Run("default template", func(t *testing.T) {
		f := &Formatter{}
		record := []byte(`{"level":"info","logger":"app","message":"hello","request_id":"abc-123"}`)

		line, err := f.Render(now, record)
		require.NoError(t, err)
		assert.Equal(t, "2026-08-29 10:30:00 - app - INFO - hello request_id=abc-123\n", string(line))
	})

	t.Run("custom template and time format", func(t *testing.T) {
		f := &Formatter{MessageFormat: "{level} | {message}", TimeFormat: "15:04:05"}
		record := []byte(`{"level":"warn","logger":"app","message":"careful"}`)

		line, err := f.Render(now, record)
		require.NoError(t, err)
		assert.Equal(t, "WARN | careful\n", string(line))
	})

	t.Run("extras are sorted", func(t *testing.T) {
		f := &Formatter{MessageFormat: "{message}"}
		record := []byte(`{"level":"info","logger":"app","message":"m","zeta":"1","alpha":"2"}`)

		line, err := f.Render(now, record)
		require.NoError(t, err)
		assert.Equal(t, "m alpha=2 zeta=1\n", string(line))
	})

	t.Run("numeric extras keep their literal form", func(t *testing.T) {
		f := &Formatter{MessageFormat: "{message}"}
		record := []byte(`{"level":"info","logger":"app","message":"m","port":8080}`)

		line, err := f.Render(now, record)
		require.NoError(t, err)
		assert.Equal(t, "m port=8080\n", string(line))
	})

	t.Run("malformed record", func(t *testing.T) {
		f := &Formatter{}
		_, err := f.Render(now, []byte("not json"))
		assert.Error(t, err)
	})
}

func TestSelectFormatter(t *testing.T) {
	t.Run("rotating file wins over caller time format", func(t *testing.T) {
		f := selectFormatter(Config{FilePath: "app.log", RotateDaily: true, TimeFormat: "2006"})
		assert.Equal(t, rotatingTimeFormat, f.TimeFormat)
	})

	t.Run("caller time format", func(t *testing.T) {
		f := selectFormatter(Config{TimeFormat: "15:04"})
		assert.Equal(t, "15:04", f.TimeFormat)
	})

	t.Run("rotation flag alone does not force time-only", func(t *testing.T) {
		f := selectFormatter(Config{RotateDaily: true, TimeFormat: "15:04"})
		assert.Equal(t, "15:04", f.TimeFormat)
	})

	t.Run("default", func(t *testing.T) {
		f := selectFormatter(Config{})
		assert.Equal(t, defaultTimeFormat, f.TimeFormat)
	})

	t.Run("message format carried through", func(t *testing.T) {
		f := selectFormatter(Config{MessageFormat: "{message}"})
		assert.Equal(t, "{message}", f.MessageFormat)
	})
}
