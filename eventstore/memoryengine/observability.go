package memoryengine

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/bankledger/eventsourced-accounts-go/eventstore"
)

const (
	metricAppendDuration       = "eventstore_append_duration_seconds"
	metricReadDuration         = "eventstore_read_duration_seconds"
	metricConcurrencyConflicts = "eventstore_concurrency_conflicts_total"
	metricInvariantViolations  = "eventstore_invariant_violations_total"

	spanAppend     = "eventstore.append"
	spanReadStream = "eventstore.read_stream"
	spanReadAll    = "eventstore.read_all"

	spanAttrStreamID  = "stream_id"
	spanAttrOperation = "operation"
	spanAttrErrorType = "error_type"

	operationAppend     = "append"
	operationReadStream = "read_stream"
	operationReadAll    = "read_all"

	statusSuccess  = "success"
	statusError    = "error"
	statusConflict = "concurrency_conflict"
)

// logOperation logs operational information at info level if a logger is configured.
// The contextual logger takes precedence when both are configured.
func (es *EventStore) logOperation(ctx context.Context, action string, args ...any) {
	if es.contextualLogger != nil {
		es.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
		return
	}

	if es.logger != nil {
		es.logger.Info(logMsgOperation+action, args...)
	}
}

// logError logs error information at error level if a logger is configured.
func (es *EventStore) logError(ctx context.Context, message string, args ...any) {
	if es.contextualLogger != nil {
		es.contextualLogger.ErrorContext(ctx, message, args...)
		return
	}

	if es.logger != nil {
		es.logger.Error(message, args...)
	}
}

// recordAppendFailure routes a failed append to the right log message, metric, and span status.
func (es *EventStore) recordAppendFailure(
	ctx context.Context,
	span eventstore.SpanContext,
	streamID eventstore.StreamIDString,
	duration time.Duration,
	appendErr error,
) {

	var conflictErr eventstore.ConcurrencyConflictError
	if errors.As(appendErr, &conflictErr) {
		es.logOperation(ctx,
			logMsgConcurrencyConflict,
			logAttrStreamID, streamID,
			logAttrExpectedVersion, conflictErr.ExpectedVersion,
			logAttrActualVersion, conflictErr.ActualVersion)
		es.incrementCounterContext(ctx, metricConcurrencyConflicts, map[string]string{
			spanAttrOperation: operationAppend,
		})
		es.recordDurationMetricsContext(ctx, metricAppendDuration, duration, operationAppend, statusConflict)
		es.finishTraceSpan(span, statusConflict, appendErr)

		return
	}

	var invariantErr eventstore.InvariantViolationError
	if errors.As(appendErr, &invariantErr) {
		es.logError(ctx,
			logMsgInvariantViolation,
			logAttrStreamID, streamID,
			logAttrExpectedVersion, invariantErr.ExpectedVersion,
			logAttrGotVersion, invariantErr.GotVersion)
		es.incrementCounterContext(ctx, metricInvariantViolations, map[string]string{
			spanAttrOperation: operationAppend,
		})
	}

	es.recordDurationMetricsContext(ctx, metricAppendDuration, duration, operationAppend, statusError)
	es.finishTraceSpan(span, statusError, appendErr)
}

// recordDurationMetricsContext records duration metrics, using context-aware methods when available.
func (es *EventStore) recordDurationMetricsContext(
	ctx context.Context,
	metricName string,
	duration time.Duration,
	operation, status string,
) {

	if es.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		"status":          status,
	}

	if contextualCollector, ok := es.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricName, duration, labels)
	} else {
		es.metricsCollector.RecordDuration(metricName, duration, labels)
	}
}

// incrementCounterContext increments a counter metric, using context-aware methods when available.
func (es *EventStore) incrementCounterContext(ctx context.Context, metricName string, labels map[string]string) {
	if es.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := es.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricName, labels)
	} else {
		es.metricsCollector.IncrementCounter(metricName, labels)
	}
}

// startTraceSpan starts a tracing span if the tracing collector is configured.
func (es *EventStore) startTraceSpan(
	ctx context.Context,
	operation string,
	attrs map[string]string,
) (context.Context, eventstore.SpanContext) {

	if es.tracingCollector != nil {
		return es.tracingCollector.StartSpan(ctx, operation, attrs)
	}

	return ctx, nil
}

// finishTraceSpan finishes a tracing span if the tracing collector is configured.
func (es *EventStore) finishTraceSpan(span eventstore.SpanContext, status string, err error) {
	if es.tracingCollector == nil || span == nil {
		return
	}

	attrs := map[string]string{}
	if err != nil {
		attrs[spanAttrErrorType] = err.Error()
	}

	es.tracingCollector.FinishSpan(span, status, attrs)
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (es *EventStore) toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
