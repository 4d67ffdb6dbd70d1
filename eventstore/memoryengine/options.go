package memoryengine

import (
	"github.com/bankledger/eventsourced-accounts-go/eventstore"
)

// Option defines a functional option for configuring EventStore.
type Option func(*EventStore) error

// WithLogger sets the logger for the EventStore.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Info level: Event counts, durations, concurrency conflicts (production-safe)
// Error level: Invariant violations and other critical failures.
func WithLogger(logger eventstore.Logger) Option {
	return func(es *EventStore) error {
		es.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the EventStore.
// The contextual logger will receive log messages with context information including
// automatic trace/span correlation when tracing is enabled.
func WithContextualLogger(logger eventstore.ContextualLogger) Option {
	return func(es *EventStore) error {
		es.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the EventStore.
// The metrics collector will receive append/read durations, event counts,
// and concurrency conflict counters.
func WithMetrics(collector eventstore.MetricsCollector) Option {
	return func(es *EventStore) error {
		es.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the EventStore.
// The tracing collector will receive span creation for append/read operations,
// context propagation, and error tracking.
func WithTracing(collector eventstore.TracingCollector) Option {
	return func(es *EventStore) error {
		es.tracingCollector = collector
		return nil
	}
}
