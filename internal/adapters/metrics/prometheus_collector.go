package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
)

const (
	// Namespace for all metrics
	namespace = "aic"
	// Subsystem for calculator metrics
	subsystem = "calculator"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalProductionCollector is the singleton production metrics collector
	// Set by SetGlobalProductionCollector() when metrics are enabled
	globalProductionCollector ProductionMetricsRecorder
)

// ProductionMetricsRecorder defines the interface for recording tree build metrics.
// Application code records through the package-level functions below.
type ProductionMetricsRecorder interface {
	RecordTreeBuilt(rootItemID string, nodeCount int, totalEquipment int, duration time.Duration)
	RecordBuildWarning(kind production.WarningKind)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalProductionCollector sets the global production metrics collector
func SetGlobalProductionCollector(collector ProductionMetricsRecorder) {
	globalProductionCollector = collector
}

// RecordTreeBuilt records a completed tree build globally
func RecordTreeBuilt(rootItemID string, nodeCount int, totalEquipment int, duration time.Duration) {
	if globalProductionCollector != nil {
		globalProductionCollector.RecordTreeBuilt(rootItemID, nodeCount, totalEquipment, duration)
	}
}

// RecordBuildWarning records a soft failure met during a build globally
func RecordBuildWarning(kind production.WarningKind) {
	if globalProductionCollector != nil {
		globalProductionCollector.RecordBuildWarning(kind)
	}
}

// WriteTextfile writes every registered metric to path in the text exposition format,
// for pickup by a node_exporter textfile collector
func WriteTextfile(path string) error {
	if Registry == nil {
		return nil // Metrics not enabled
	}
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
