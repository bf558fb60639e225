package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Info("GetAll: fetching movies")
	log.Warn("GetAll: cache miss for q=%s", "dune")
	log.Error("GetAll: backend error: %v", assert.AnError)

	out := buf.String()
	assert.NotContains(t, out, "fetching movies")
	assert.Contains(t, out, "cache miss for q=dune")
	assert.Contains(t, out, "level=ERROR")
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug").With("request_id", "abc")

	log.Debug("hello %d", 1)
	assert.Contains(t, buf.String(), "request_id=abc")
	assert.Contains(t, buf.String(), "hello 1")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := New(path, "info")
	require.NoError(t, err)
	log.Info("written to %s", "file")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)

	_, err = New("", "verbose")
	assert.Error(t, err)
}
