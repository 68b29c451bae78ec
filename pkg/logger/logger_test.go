package logger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-cli/pkg/logger"
)

func TestNewLogger_Console(t *testing.T) {
	var buf bytes.Buffer

	l, err := logger.NewLogger("", "weather-cli", "info", &buf)
	require.NoError(t, err)

	l.Debug().Msg("hidden")
	l.Warn().Str("location", "Seattle").Msg("lookup failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "lookup failed")
	assert.Contains(t, out, "Seattle")
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, err := logger.NewLogger(path, "weather-cli", "debug", nil)
	require.NoError(t, err)
	l.Info().Msg("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"service":"weather-cli"`)
	assert.Contains(t, string(data), "written to file")
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, err := logger.NewLogger("", "weather-cli", "loud", nil)
	assert.Error(t, err)
}

func TestNewFileLogger(t *testing.T) {
	l, err := logger.NewFileLogger("")
	require.NoError(t, err)
	assert.NotNil(t, l)

	path := filepath.Join(t.TempDir(), "nested", "http.log")
	l, err = logger.NewFileLogger(path)
	require.NoError(t, err)
	l.Info("HTTP request completed")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "HTTP request completed")
}
