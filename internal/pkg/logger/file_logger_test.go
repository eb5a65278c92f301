//go:build unit
// +build unit

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/bookshelf/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileLogger(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	logger := NewFileLogger(config.LogLevelInfo, logPath, 10, 3, 28)
	require.NotNil(t, logger)

	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	// Verify file exists
	_, err := os.Stat(logPath)
	assert.NoError(t, err)

	// Verify log content
	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	logOutput := string(content)
	assert.Contains(t, logOutput, "info message")
	assert.Contains(t, logOutput, "warn message")
	assert.Contains(t, logOutput, "error message")
	assert.Contains(t, logOutput, "INFO")
	assert.Contains(t, logOutput, "WARN")
	assert.Contains(t, logOutput, "ERROR")
}

func TestFileLogger_Debug(t *testing.T) {
	dir := t.TempDir()

	verbose := NewFileLogger(config.LogLevelDebug, filepath.Join(dir, "debug.log"), 1, 1, 1)
	verbose.Debug("cache miss for book:", 7)
	content, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"level":"DEBUG"`)
	assert.Contains(t, string(content), "cache miss for book:7")

	quiet := NewFileLogger(config.LogLevelInfo, filepath.Join(dir, "info.log"), 1, 1, 1)
	quiet.Debug("hidden")
	quiet.Info("shown")
	content, err = os.ReadFile(filepath.Join(dir, "info.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "hidden")
	assert.Contains(t, string(content), "shown")
}
