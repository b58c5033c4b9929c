package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Halasue/endfield-aic-calculator/internal/application/common"
	"github.com/Halasue/endfield-aic-calculator/internal/infrastructure/config"
)

var levelRank = map[string]int{
	common.LevelDebug: 0,
	common.LevelInfo:  1,
	common.LevelWarn:  2,
	common.LevelError: 3,
}

// ConsoleLogger writes log entries as text or JSON lines
type ConsoleLogger struct {
	mu       sync.Mutex
	out      io.Writer
	closer   io.Closer
	format   string
	minLevel int
	now      func() time.Time
}

// NewConsoleLogger creates a logger writing to w in the given format ("json" or "text"),
// dropping entries below minLevel ("debug", "info", "warn", "error")
func NewConsoleLogger(w io.Writer, format, minLevel string) *ConsoleLogger {
	rank, ok := levelRank[strings.ToUpper(minLevel)]
	if !ok {
		rank = levelRank[common.LevelInfo]
	}
	return &ConsoleLogger{
		out:      w,
		format:   format,
		minLevel: rank,
		now:      time.Now,
	}
}

// NewLoggerFromConfig opens the configured output and creates a logger for it
func NewLoggerFromConfig(cfg *config.LoggingConfig) (*ConsoleLogger, error) {
	var out io.Writer
	var closer io.Closer

	switch cfg.Output {
	case "stdout":
		out = os.Stdout
	case "", "stderr":
		out = os.Stderr
	case "file":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closer = f
	default:
		return nil, fmt.Errorf("unsupported log output: %s", cfg.Output)
	}

	logger := NewConsoleLogger(out, cfg.Format, cfg.Level)
	logger.closer = closer
	return logger, nil
}

// Log writes one entry
func (l *ConsoleLogger) Log(level, message string, metadata map[string]interface{}) {
	rank, known := levelRank[level]
	if known && rank < l.minLevel {
		return
	}

	timestamp := l.now()

	var line string
	if l.format == "json" {
		line = l.jsonLine(timestamp, level, message, metadata)
	} else {
		line = l.textLine(timestamp, level, message, metadata)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, line)
}

// Close releases the log file, if any
func (l *ConsoleLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *ConsoleLogger) textLine(timestamp time.Time, level, message string, metadata map[string]interface{}) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", timestamp.Format(time.RFC3339), level, message)

	for _, key := range sortedKeys(metadata) {
		fmt.Fprintf(&b, " %s=%v", key, metadata[key])
	}
	return b.String()
}

func (l *ConsoleLogger) jsonLine(timestamp time.Time, level, message string, metadata map[string]interface{}) string {
	entry := struct {
		Timestamp string                 `json:"timestamp"`
		Level     string                 `json:"level"`
		Message   string                 `json:"message"`
		Metadata  map[string]interface{} `json:"metadata,omitempty"`
	}{
		Timestamp: timestamp.Format(time.RFC3339),
		Level:     level,
		Message:   message,
		Metadata:  metadata,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		// Metadata that cannot be encoded is dropped, the entry is kept
		entry.Metadata = map[string]interface{}{"metadata_error": err.Error()}
		data, _ = json.Marshal(entry)
	}
	return string(data)
}

func sortedKeys(metadata map[string]interface{}) []string {
	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
