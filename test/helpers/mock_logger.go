package helpers

import (
	"sync"
	"time"
)

// LogEntry is one captured log line
type LogEntry struct {
	Level     string
	Message   string
	Metadata  map[string]interface{}
	Timestamp time.Time
}

// MockLogger is an in-memory Logger for testing that records every entry
type MockLogger struct {
	mu      sync.Mutex
	Entries []LogEntry
}

// NewMockLogger creates a new mock logger
func NewMockLogger() *MockLogger {
	return &MockLogger{
		Entries: make([]LogEntry, 0),
	}
}

// Log records a log entry
func (m *MockLogger) Log(level, message string, metadata map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Entries = append(m.Entries, LogEntry{
		Level:     level,
		Message:   message,
		Metadata:  metadata,
		Timestamp: time.Now(),
	})
}

// EntriesWithLevel returns the entries logged at level
func (m *MockLogger) EntriesWithLevel(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	filtered := make([]LogEntry, 0)
	for _, entry := range m.Entries {
		if entry.Level == level {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// WarningKinds returns the "kind" metadata of every WARN entry, in logging order
func (m *MockLogger) WarningKinds() []string {
	kinds := make([]string, 0)
	for _, entry := range m.EntriesWithLevel("WARN") {
		if kind, ok := entry.Metadata["kind"].(string); ok {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}
