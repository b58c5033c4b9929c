package metrics

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/Halasue/endfield-aic-calculator/internal/application/common"
)

// PrometheusMiddleware creates a middleware that records request handling metrics.
// Request names are the bare type name, e.g. "*queries.ListItemsQuery" becomes "ListItemsQuery".
func PrometheusMiddleware(collector *RequestMetricsCollector) common.Middleware {
	return func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		// Skip metrics if collector is nil (metrics disabled)
		if collector == nil {
			return next(ctx, request)
		}

		requestName := extractRequestName(request)
		start := time.Now()

		response, err := next(ctx, request)

		collector.RecordRequest(requestName, time.Since(start).Seconds(), err == nil)

		return response, err
	}
}

// extractRequestName returns the type name of a request without pointer or package prefix
func extractRequestName(request common.Request) string {
	if request == nil {
		return "UnknownRequest"
	}

	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")

	parts := strings.Split(fullName, ".")
	return parts[len(parts)-1]
}
