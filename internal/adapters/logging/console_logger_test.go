package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Halasue/endfield-aic-calculator/internal/application/common"
	"github.com/Halasue/endfield-aic-calculator/internal/infrastructure/config"
)

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestLogger(buf *bytes.Buffer, format, level string) *ConsoleLogger {
	logger := NewConsoleLogger(buf, format, level)
	logger.now = func() time.Time { return fixedTime }
	return logger
}

func TestConsoleLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, "text", "info")

	logger.Log(common.LevelWarn, "Recipe skipped", map[string]interface{}{
		"kind":    "unknown_facility",
		"item_id": "plate",
	})

	assert.Equal(t, "[2025-03-01T12:00:00Z] WARN: Recipe skipped item_id=plate kind=unknown_facility\n", buf.String())
}

func TestConsoleLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, "json", "debug")

	logger.Log(common.LevelInfo, "Catalog loaded", map[string]interface{}{"items": 3})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Catalog loaded", entry["message"])
	assert.Equal(t, "2025-03-01T12:00:00Z", entry["timestamp"])
	assert.Equal(t, 3.0, entry["metadata"].(map[string]interface{})["items"])
}

func TestConsoleLogger_JSONUnencodableMetadata(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, "json", "debug")

	logger.Log(common.LevelInfo, "odd", map[string]interface{}{"ch": make(chan int)})

	assert.Contains(t, buf.String(), "metadata_error")
	assert.Contains(t, buf.String(), `"message":"odd"`)
}

func TestConsoleLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, "text", "warn")

	logger.Log(common.LevelDebug, "debug", nil)
	logger.Log(common.LevelInfo, "info", nil)
	logger.Log(common.LevelWarn, "warn", nil)
	logger.Log(common.LevelError, "error", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "WARN: warn")
	assert.Contains(t, lines[1], "ERROR: error")
}

func TestNewLoggerFromConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aic.log")
	logger, err := NewLoggerFromConfig(&config.LoggingConfig{Level: "info", Format: "text", Output: "file", FilePath: path})
	require.NoError(t, err)

	logger.Log(common.LevelInfo, "hello", nil)
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO: hello")
}

func TestNewLoggerFromConfig_UnsupportedOutput(t *testing.T) {
	_, err := NewLoggerFromConfig(&config.LoggingConfig{Output: "syslog"})

	assert.Error(t, err)
}
