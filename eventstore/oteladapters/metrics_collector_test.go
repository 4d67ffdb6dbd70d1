package oteladapters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/bankledger/eventsourced-accounts-go/eventstore/oteladapters"
)

func newCollectorWithReader() (*oteladapters.MetricsCollector, *sdkmetric.ManualReader) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := provider.Meter("test")

	return oteladapters.NewMetricsCollector(meter), reader
}

func Test_MetricsCollector_RecordDuration(t *testing.T) {
	collector, reader := newCollectorWithReader()

	testDuration := 150 * time.Millisecond
	labels := map[string]string{
		"operation": "append",
		"status":    "success",
	}

	collector.RecordDuration("eventstore_append_duration_seconds", testDuration, labels)

	var resourceMetrics metricdata.ResourceMetrics
	err := reader.Collect(context.Background(), &resourceMetrics)
	require.NoError(t, err)

	histogram := findHistogramMetric(t, resourceMetrics, "eventstore_append_duration_seconds")
	require.Len(t, histogram.DataPoints, 1)

	dataPoint := histogram.DataPoints[0]
	assert.Equal(t, uint64(1), dataPoint.Count)
	assert.InDelta(t, 0.15, dataPoint.Sum, 0.001, "duration is recorded in seconds")

	expectedAttrs := attribute.NewSet(
		attribute.String("operation", "append"),
		attribute.String("status", "success"),
	)
	assert.True(t, dataPoint.Attributes.Equals(&expectedAttrs))
}

func Test_MetricsCollector_IncrementCounter(t *testing.T) {
	collector, reader := newCollectorWithReader()

	labels := map[string]string{
		"command_type": "OpenAccount",
		"error_type":   "concurrency_conflict",
	}

	collector.IncrementCounter("commandhandler_retries_total", labels)
	collector.IncrementCounter("commandhandler_retries_total", labels)
	collector.IncrementCounter("commandhandler_retries_total", labels)

	var resourceMetrics metricdata.ResourceMetrics
	err := reader.Collect(context.Background(), &resourceMetrics)
	require.NoError(t, err)

	counter := findCounterMetric(t, resourceMetrics, "commandhandler_retries_total")
	require.Len(t, counter.DataPoints, 1)
	assert.Equal(t, int64(3), counter.DataPoints[0].Value)
}

func Test_MetricsCollector_ContextualMethods(t *testing.T) {
	collector, reader := newCollectorWithReader()

	ctx := context.Background()
	labels := map[string]string{"test": "contextual"}

	collector.RecordDurationContext(ctx, "test_duration", 100*time.Millisecond, labels)
	collector.IncrementCounterContext(ctx, "test_counter", labels)
	collector.RecordValueContext(ctx, "test_gauge", 123.45, labels)

	var resourceMetrics metricdata.ResourceMetrics
	err := reader.Collect(context.Background(), &resourceMetrics)
	require.NoError(t, err)

	metricNames := make(map[string]bool)
	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			metricNames[m.Name] = true
		}
	}

	assert.True(t, metricNames["test_duration"])
	assert.True(t, metricNames["test_counter"])
	assert.True(t, metricNames["test_gauge"])
}

func Test_MetricsCollector_InstrumentReuse(t *testing.T) {
	collector, reader := newCollectorWithReader()

	collector.RecordDuration("reused_histogram", 100*time.Millisecond, nil)
	collector.RecordDuration("reused_histogram", 200*time.Millisecond, nil)

	collector.IncrementCounter("reused_counter", nil)
	collector.IncrementCounter("reused_counter", nil)

	var resourceMetrics metricdata.ResourceMetrics
	err := reader.Collect(context.Background(), &resourceMetrics)
	require.NoError(t, err)

	histogram := findHistogramMetric(t, resourceMetrics, "reused_histogram")
	assert.Equal(t, uint64(2), histogram.DataPoints[0].Count)

	counter := findCounterMetric(t, resourceMetrics, "reused_counter")
	assert.Equal(t, int64(2), counter.DataPoints[0].Value)
}

func findHistogramMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) *metricdata.Histogram[float64] {
	t.Helper()
	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			if m.Name == name {
				if h, ok := m.Data.(metricdata.Histogram[float64]); ok {
					return &h
				}
			}
		}
	}
	t.Fatalf("histogram metric %s not found", name)
	return nil
}

func findCounterMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) *metricdata.Sum[int64] {
	t.Helper()
	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			if m.Name == name {
				if c, ok := m.Data.(metricdata.Sum[int64]); ok {
					return &c
				}
			}
		}
	}
	t.Fatalf("counter metric %s not found", name)
	return nil
}
