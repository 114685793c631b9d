package obs

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	metricsOnce      sync.Once
	requestCounter   metric.Int64Counter
	latencyHistogram metric.Float64Histogram
	errorCounter     metric.Int64Counter
)

func installMetrics(m metric.Meter) {
	metricsOnce.Do(func() {
		if m == nil {
			return
		}
		requestCounter, _ = m.Int64Counter("ttkia.requests", metric.WithDescription("Total API requests"))
		latencyHistogram, _ = m.Float64Histogram("ttkia.request.latency_ms", metric.WithDescription("API request latency (ms)"))
		errorCounter, _ = m.Int64Counter("ttkia.request.errors", metric.WithDescription("Failed API requests"))
	})
}

func recordRequest(attrs ...attribute.KeyValue) {
	if requestCounter != nil {
		requestCounter.Add(context.Background(), 1, metric.WithAttributes(attrs...))
	}
}

func recordLatency(ms float64, attrs ...attribute.KeyValue) {
	if latencyHistogram != nil {
		latencyHistogram.Record(context.Background(), ms, metric.WithAttributes(attrs...))
	}
}

func recordError(attrs ...attribute.KeyValue) {
	if errorCounter != nil {
		errorCounter.Add(context.Background(), 1, metric.WithAttributes(attrs...))
	}
}
