package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("trace")
	assert.Error(t, err)
}

func TestNewDiscard(t *testing.T) {
	log, closer, err := New("", "debug")
	require.NoError(t, err)
	assert.False(t, log.Enabled(t.Context(), slog.LevelError))
	assert.NoError(t, closer.Close())
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	log, closer, err := New(path, "warn")
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("resize failed", "width", 10)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), `msg="resize failed" width=10`)
}

func TestNewErrors(t *testing.T) {
	_, _, err := New("", "loud")
	assert.Error(t, err)

	_, _, err = New(filepath.Join(t.TempDir(), "missing", "out.log"), "info")
	assert.Error(t, err)
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, slog.LevelDebug)
	log.Debug("frame", "count", 3)
	assert.Contains(t, buf.String(), "level=DEBUG msg=frame count=3")
}
