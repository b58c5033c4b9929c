package metrics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Halasue/endfield-aic-calculator/internal/adapters/metrics"
	"github.com/Halasue/endfield-aic-calculator/internal/application/common"
)

type PingQuery struct{}

func TestPrometheusMiddleware_RecordsByRequestAndStatus(t *testing.T) {
	// Arrange
	metrics.InitRegistry()
	t.Cleanup(func() { metrics.Registry = nil })
	collector := metrics.NewRequestMetricsCollector()
	require.NoError(t, collector.Register())
	middleware := metrics.PrometheusMiddleware(collector)

	ok := func(ctx context.Context, request common.Request) (common.Response, error) { return "pong", nil }
	fail := func(ctx context.Context, request common.Request) (common.Response, error) { return nil, errors.New("boom") }

	// Act
	response, err := middleware(context.Background(), &PingQuery{}, ok)
	require.NoError(t, err)
	_, _ = middleware(context.Background(), &PingQuery{}, ok)
	_, failErr := middleware(context.Background(), &PingQuery{}, fail)

	// Assert
	assert.Equal(t, "pong", response)
	assert.EqualError(t, failErr, "boom")

	count, err := testutil.GatherAndCount(metrics.GetRegistry(), "aic_calculator_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "success and failure series")

	families, err := metrics.GetRegistry().Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != "aic_calculator_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			assert.Equal(t, "PingQuery", labels["request"])
			if labels["status"] == "success" {
				assert.Equal(t, 2.0, metric.GetCounter().GetValue())
			} else {
				assert.Equal(t, 1.0, metric.GetCounter().GetValue())
			}
		}
	}
}

func TestPrometheusMiddleware_NilCollectorPassesThrough(t *testing.T) {
	middleware := metrics.PrometheusMiddleware(nil)

	response, err := middleware(context.Background(), &PingQuery{}, func(ctx context.Context, request common.Request) (common.Response, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, response)
}
