package shell

import (
	"context"

	"github.com/bankledger/eventsourced-accounts-go/eventstore"
)

// Re-exported observability interfaces so feature packages only depend on the shell.

// Logger interface for operation logging, warnings, and error reporting.
type Logger = eventstore.Logger

// MetricsCollector interface for collecting performance and operational metrics.
type MetricsCollector = eventstore.MetricsCollector

// ContextualMetricsCollector extends MetricsCollector with context-aware methods.
type ContextualMetricsCollector = eventstore.ContextualMetricsCollector

// TracingCollector interface for collecting distributed tracing information.
type TracingCollector = eventstore.TracingCollector

// SpanContext represents an active tracing span.
type SpanContext = eventstore.SpanContext

// ContextualLogger interface for context-aware logging with trace correlation.
type ContextualLogger = eventstore.ContextualLogger

// Command is implemented by all command types in the features/command packages.
type Command interface {
	CommandType() string
}

// CommandHandler is the handler shape shared by all command feature packages,
// used by the observable wrapper to decorate any of them uniformly.
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}
