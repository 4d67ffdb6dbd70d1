package shell

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bankledger/eventsourced-accounts-go/eventstore"
)

const (
	// CommandHandlerDurationMetric tracks command handler execution duration.
	CommandHandlerDurationMetric = "commandhandler_handle_duration_seconds"

	// CommandHandlerCallsMetric tracks total command handler calls.
	CommandHandlerCallsMetric = "commandhandler_handle_calls_total"

	// CommandHandlerRetriesMetric tracks retry attempts in command handlers.
	// Labels: command_type, attempt_number, error_type.
	CommandHandlerRetriesMetric = "commandhandler_retries_total"

	// CommandHandlerRetryDelayMetric tracks backoff delays in command handlers.
	// Labels: command_type, attempt_number.
	CommandHandlerRetryDelayMetric = "commandhandler_retry_delay_seconds"

	// CommandHandlerMaxRetriesReachedMetric tracks when max retries are exhausted.
	// Labels: command_type, final_error_type.
	CommandHandlerMaxRetriesReachedMetric = "commandhandler_max_retries_reached_total"

	// QueryHandlerDurationMetric tracks query handler execution duration.
	QueryHandlerDurationMetric = "queryhandler_handle_duration_seconds"

	// QueryHandlerCallsMetric tracks total query handler calls.
	QueryHandlerCallsMetric = "queryhandler_handle_calls_total"

	// StatusSuccess indicates successful completion.
	StatusSuccess = "success"

	// StatusError indicates a processing error.
	StatusError = "error"

	// StatusCanceled indicates the operation was canceled due to context cancellation.
	StatusCanceled = "canceled"

	// StatusTimeout indicates the operation timed out due to context deadline exceeded.
	StatusTimeout = "timeout"

	// StatusConcurrencyConflict indicates the operation failed due to optimistic concurrency control.
	StatusConcurrencyConflict = "concurrency_conflict"

	// LogMsgCommandStarted is logged when command processing begins.
	LogMsgCommandStarted = "command handler started"

	// LogMsgCommandCompleted is logged when command processing succeeds.
	LogMsgCommandCompleted = "command handler completed"

	// LogMsgCommandFailed is logged when command processing fails.
	LogMsgCommandFailed = "command handler failed"

	// LogMsgQueryStarted is logged when query processing begins.
	LogMsgQueryStarted = "query handler started"

	// LogMsgQueryCompleted is logged when query processing succeeds.
	LogMsgQueryCompleted = "query handler completed"

	// LogMsgQueryFailed is logged when query processing fails.
	LogMsgQueryFailed = "query handler failed"

	// LogAttrCommandType is the structured log attribute for the command type.
	LogAttrCommandType = "command_type"

	// LogAttrQueryType is the structured log attribute for the query type.
	LogAttrQueryType = "query_type"

	// LogAttrStatus is the structured log attribute for the outcome status.
	LogAttrStatus = "status"

	// LogAttrError is the structured log attribute for error details.
	LogAttrError = "error"

	// LogAttrDurationMS is the structured log attribute for durations in milliseconds.
	LogAttrDurationMS = "duration_ms"

	// ComponentRead names the event store read phase in component timing metrics.
	ComponentRead = "read"

	// ComponentUnmarshal names the unmarshal phase in component timing metrics.
	ComponentUnmarshal = "unmarshal"

	// ComponentProjection names the projection phase in component timing metrics.
	ComponentProjection = "projection"

	// QueryHandlerComponentDurationMetric tracks per-phase query handler durations.
	QueryHandlerComponentDurationMetric = "queryhandler_component_duration_seconds"

	spanNameCommandPrefix = "commandhandler."
	spanNameQueryPrefix   = "queryhandler."
)

// BuildRetryLabels builds the metric labels for a retry attempt.
func BuildRetryLabels(commandType string, attemptNumber int, errorType string) map[string]string {
	return map[string]string{
		LogAttrCommandType: commandType,
		"attempt_number":   fmt.Sprintf("%d", attemptNumber),
		"error_type":       errorType,
	}
}

// IsCancellationError reports whether the error is a context cancellation.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.Canceled)
}

// IsTimeoutError reports whether the error is a context deadline exceeded.
func IsTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// IsConcurrencyConflictError reports whether the error is an optimistic concurrency conflict.
func IsConcurrencyConflictError(err error) bool {
	return errors.Is(err, eventstore.ErrConcurrencyConflict)
}

// StartCommandSpan starts a tracing span for a command handler if a collector is configured.
func StartCommandSpan(ctx context.Context, collector TracingCollector, commandType string) (context.Context, SpanContext) {
	if collector == nil {
		return ctx, nil
	}

	return collector.StartSpan(ctx, spanNameCommandPrefix+commandType, map[string]string{
		LogAttrCommandType: commandType,
	})
}

// FinishCommandSpan finishes a command handler span if a collector is configured.
func FinishCommandSpan(collector TracingCollector, span SpanContext, status string, duration time.Duration, err error) {
	finishSpan(collector, span, status, duration, err)
}

// StartQuerySpan starts a tracing span for a query handler if a collector is configured.
func StartQuerySpan(ctx context.Context, collector TracingCollector, queryType string) (context.Context, SpanContext) {
	if collector == nil {
		return ctx, nil
	}

	return collector.StartSpan(ctx, spanNameQueryPrefix+queryType, map[string]string{
		LogAttrQueryType: queryType,
	})
}

// FinishQuerySpan finishes a query handler span if a collector is configured.
func FinishQuerySpan(collector TracingCollector, span SpanContext, status string, duration time.Duration, err error) {
	finishSpan(collector, span, status, duration, err)
}

func finishSpan(collector TracingCollector, span SpanContext, status string, duration time.Duration, err error) {
	if collector == nil || span == nil {
		return
	}

	attrs := map[string]string{
		LogAttrDurationMS: fmt.Sprintf("%.3f", float64(duration.Nanoseconds())/1e6),
	}
	if err != nil {
		attrs[LogAttrError] = err.Error()
	}

	collector.FinishSpan(span, status, attrs)
}

// RecordCommandMetrics records command handler duration and call count.
func RecordCommandMetrics(ctx context.Context, collector MetricsCollector, commandType string, status string, duration time.Duration) {
	recordHandlerMetrics(ctx, collector, CommandHandlerDurationMetric, CommandHandlerCallsMetric, map[string]string{
		LogAttrCommandType: commandType,
		LogAttrStatus:      status,
	}, duration)
}

// RecordQueryMetrics records query handler duration and call count.
func RecordQueryMetrics(ctx context.Context, collector MetricsCollector, queryType string, status string, duration time.Duration) {
	recordHandlerMetrics(ctx, collector, QueryHandlerDurationMetric, QueryHandlerCallsMetric, map[string]string{
		LogAttrQueryType: queryType,
		LogAttrStatus:    status,
	}, duration)
}

// RecordQueryComponentDuration records the duration of one phase of a query handler.
func RecordQueryComponentDuration(
	ctx context.Context,
	collector MetricsCollector,
	queryType string,
	component string,
	status string,
	duration time.Duration,
) {

	if collector == nil {
		return
	}

	labels := map[string]string{
		LogAttrQueryType: queryType,
		"component":      component,
		LogAttrStatus:    status,
	}

	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, QueryHandlerComponentDurationMetric, duration, labels)
		return
	}

	collector.RecordDuration(QueryHandlerComponentDurationMetric, duration, labels)
}

func recordHandlerMetrics(
	ctx context.Context,
	collector MetricsCollector,
	durationMetric string,
	callsMetric string,
	labels map[string]string,
	duration time.Duration,
) {

	if collector == nil {
		return
	}

	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, durationMetric, duration, labels)
		contextualCollector.IncrementCounterContext(ctx, callsMetric, labels)
		return
	}

	collector.RecordDuration(durationMetric, duration, labels)
	collector.IncrementCounter(callsMetric, labels)
}

// LogCommandStart logs the beginning of command processing.
func LogCommandStart(ctx context.Context, logger Logger, contextualLogger ContextualLogger, commandType string) {
	logInfo(ctx, logger, contextualLogger, LogMsgCommandStarted, LogAttrCommandType, commandType)
}

// LogCommandSuccess logs successful command completion.
func LogCommandSuccess(ctx context.Context, logger Logger, contextualLogger ContextualLogger, commandType string, status string, duration time.Duration) {
	logInfo(ctx, logger, contextualLogger, LogMsgCommandCompleted,
		LogAttrCommandType, commandType,
		LogAttrStatus, status,
		LogAttrDurationMS, float64(duration.Nanoseconds())/1e6)
}

// LogCommandError logs failed command processing.
func LogCommandError(ctx context.Context, logger Logger, contextualLogger ContextualLogger, commandType string, err error) {
	logError(ctx, logger, contextualLogger, LogMsgCommandFailed,
		LogAttrCommandType, commandType,
		LogAttrError, err.Error())
}

// LogQueryStart logs the beginning of query processing.
func LogQueryStart(ctx context.Context, logger Logger, contextualLogger ContextualLogger, queryType string) {
	logInfo(ctx, logger, contextualLogger, LogMsgQueryStarted, LogAttrQueryType, queryType)
}

// LogQuerySuccess logs successful query completion.
func LogQuerySuccess(ctx context.Context, logger Logger, contextualLogger ContextualLogger, queryType string, status string, duration time.Duration) {
	logInfo(ctx, logger, contextualLogger, LogMsgQueryCompleted,
		LogAttrQueryType, queryType,
		LogAttrStatus, status,
		LogAttrDurationMS, float64(duration.Nanoseconds())/1e6)
}

// LogQueryError logs failed query processing.
func LogQueryError(ctx context.Context, logger Logger, contextualLogger ContextualLogger, queryType string, err error) {
	logError(ctx, logger, contextualLogger, LogMsgQueryFailed,
		LogAttrQueryType, queryType,
		LogAttrError, err.Error())
}

func logInfo(ctx context.Context, logger Logger, contextualLogger ContextualLogger, msg string, args ...any) {
	if contextualLogger != nil {
		contextualLogger.InfoContext(ctx, msg, args...)
		return
	}

	if logger != nil {
		logger.Info(msg, args...)
	}
}

func logError(ctx context.Context, logger Logger, contextualLogger ContextualLogger, msg string, args ...any) {
	if contextualLogger != nil {
		contextualLogger.ErrorContext(ctx, msg, args...)
		return
	}

	if logger != nil {
		logger.Error(msg, args...)
	}
}
