package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
)

// ProductionMetricsCollector handles requirement tree build metrics
type ProductionMetricsCollector struct {
	treesBuiltTotal     *prometheus.CounterVec
	buildWarningsTotal  *prometheus.CounterVec
	treeNodes           *prometheus.HistogramVec
	treeEquipment       *prometheus.HistogramVec
	buildDurationSecond *prometheus.HistogramVec
}

// NewProductionMetricsCollector creates a new production metrics collector
func NewProductionMetricsCollector() *ProductionMetricsCollector {
	return &ProductionMetricsCollector{
		treesBuiltTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "trees_built_total",
				Help:      "Total requirement trees built by root item",
			},
			[]string{"root_item"},
		),

		buildWarningsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "build_warnings_total",
				Help:      "Soft failures met while building trees by warning kind",
			},
			[]string{"kind"},
		),

		treeNodes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "tree_nodes",
				Help:      "Number of nodes in built trees",
				Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
			},
			[]string{"root_item"},
		),

		treeEquipment: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "tree_equipment_total",
				Help:      "Total equipment count of built trees",
				Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 200},
			},
			[]string{"root_item"},
		),

		buildDurationSecond: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "tree_build_duration_seconds",
				Help:      "Time spent building a requirement tree",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"root_item"},
		),
	}
}

// Register registers all production metrics with the Prometheus registry
func (c *ProductionMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.treesBuiltTotal,
		c.buildWarningsTotal,
		c.treeNodes,
		c.treeEquipment,
		c.buildDurationSecond,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordTreeBuilt records one finished build
func (c *ProductionMetricsCollector) RecordTreeBuilt(rootItemID string, nodeCount int, totalEquipment int, duration time.Duration) {
	c.treesBuiltTotal.WithLabelValues(rootItemID).Inc()
	c.treeNodes.WithLabelValues(rootItemID).Observe(float64(nodeCount))
	c.treeEquipment.WithLabelValues(rootItemID).Observe(float64(totalEquipment))
	c.buildDurationSecond.WithLabelValues(rootItemID).Observe(duration.Seconds())
}

// RecordBuildWarning counts one soft failure
func (c *ProductionMetricsCollector) RecordBuildWarning(kind production.WarningKind) {
	c.buildWarningsTotal.WithLabelValues(string(kind)).Inc()
}
