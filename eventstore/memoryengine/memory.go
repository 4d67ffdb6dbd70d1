package memoryengine

import (
	"context"
	"sync"
	"time"

	"github.com/bankledger/eventsourced-accounts-go/eventstore"
)

const (
	logMsgEventsAppended      = "events appended"
	logMsgStreamRead          = "stream read"
	logMsgAllStreamsRead      = "all streams read"
	logMsgConcurrencyConflict = "concurrency conflict detected"
	logMsgInvariantViolation  = "invariant violation detected"
	logMsgOperation           = "eventstore operation: "
	logAttrStreamID           = "stream_id"
	logAttrEventCount         = "event_count"
	logAttrDurationMS         = "duration_ms"
	logAttrExpectedVersion    = "expected_version"
	logAttrActualVersion      = "actual_version"
	logAttrGotVersion         = "got_version"
)

// EventStore is an in-process, in-memory event store with per-stream ordered,
// append-only storage and optimistic concurrency control.
//
// The stream map is the only shared mutable resource; one mutex serializes the
// check-then-append step so that two concurrent appends to the same stream can
// never both observe the same expected version as valid. Reads take consistent
// snapshots under the same lock and return copies, so callers never observe a
// stream mid-append.
//
// A monotonic global sequence is assigned under the append lock: the global log
// records events in append order and ReadAll returns exactly that order. This is
// the contract a durable engine would also have to satisfy, in place of the
// wall-clock ordering a naive implementation would use.
type EventStore struct {
	mu      sync.RWMutex
	streams map[eventstore.StreamIDString]eventstore.StorableEvents
	global  eventstore.StorableEvents

	logger           eventstore.Logger
	contextualLogger eventstore.ContextualLogger
	metricsCollector eventstore.MetricsCollector
	tracingCollector eventstore.TracingCollector
}

// NewEventStore creates a new in-memory EventStore with optional configuration.
func NewEventStore(options ...Option) (*EventStore, error) {
	es := &EventStore{
		streams: make(map[eventstore.StreamIDString]eventstore.StorableEvents),
		global:  make(eventstore.StorableEvents, 0),
	}

	for _, option := range options {
		if err := option(es); err != nil {
			return nil, err
		}
	}

	return es, nil
}

// Append atomically checks that the stream's current version equals expectedStreamVersion
// and appends the given events in the order given.
//
// On a version mismatch it fails with an eventstore.ConcurrencyConflictError carrying both
// versions, and appends nothing. If any event's StreamVersion is not exactly one more than
// the previous (starting from expectedStreamVersion+1), or belongs to a different stream,
// it fails with an eventstore.InvariantViolationError - defensive, this should never occur
// if the aggregate is well-formed. On success the events become visible to subsequent reads.
func (es *EventStore) Append(
	ctx context.Context,
	streamID eventstore.StreamIDString,
	expectedStreamVersion eventstore.StreamVersionUint,
	event eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if streamID == "" {
		return eventstore.ErrEmptyStreamIDSupplied
	}

	allEvents := make(eventstore.StorableEvents, 0, 1+len(additionalEvents))
	allEvents = append(allEvents, event)
	allEvents = append(allEvents, additionalEvents...)

	start := time.Now()
	ctx, span := es.startTraceSpan(ctx, spanAppend, map[string]string{spanAttrStreamID: streamID})

	appendErr := es.checkAndAppend(streamID, expectedStreamVersion, allEvents)
	duration := time.Since(start)

	if appendErr != nil {
		es.recordAppendFailure(ctx, span, streamID, duration, appendErr)
		return appendErr
	}

	es.logOperation(ctx,
		logMsgEventsAppended,
		logAttrStreamID, streamID,
		logAttrEventCount, len(allEvents),
		logAttrDurationMS, es.toMilliseconds(duration))
	es.recordDurationMetricsContext(ctx, metricAppendDuration, duration, operationAppend, statusSuccess)
	es.finishTraceSpan(span, statusSuccess, nil)

	return nil
}

// checkAndAppend is the single mutual-exclusion region spanning
// "read current version -> compare -> append". Holding the write lock for the
// whole step makes the check-then-append effectively one atomic operation.
func (es *EventStore) checkAndAppend(
	streamID eventstore.StreamIDString,
	expectedStreamVersion eventstore.StreamVersionUint,
	allEvents eventstore.StorableEvents,
) error {

	es.mu.Lock()
	defer es.mu.Unlock()

	currentVersion := es.currentStreamVersion(streamID)
	if currentVersion != expectedStreamVersion {
		return eventstore.ConcurrencyConflictError{
			StreamID:        streamID,
			ExpectedVersion: expectedStreamVersion,
			ActualVersion:   currentVersion,
		}
	}

	nextVersion := expectedStreamVersion
	for _, newEvent := range allEvents {
		nextVersion++

		if newEvent.StreamID != streamID || newEvent.StreamVersion != nextVersion {
			return eventstore.InvariantViolationError{
				StreamID:        streamID,
				ExpectedVersion: nextVersion,
				GotVersion:      newEvent.StreamVersion,
			}
		}
	}

	es.streams[streamID] = append(es.streams[streamID], allEvents...)
	es.global = append(es.global, allEvents...)

	return nil
}

// ReadStream returns the stream's events ordered by StreamVersion ascending,
// together with the stream's current version. An unknown streamID yields an
// empty slice and version 0, not an error - absence is a valid outcome.
func (es *EventStore) ReadStream(
	ctx context.Context,
	streamID eventstore.StreamIDString,
) (eventstore.StorableEvents, eventstore.StreamVersionUint, error) {

	var empty eventstore.StorableEvents

	if ctxErr := ctx.Err(); ctxErr != nil {
		return empty, 0, ctxErr
	}

	if streamID == "" {
		return empty, 0, eventstore.ErrEmptyStreamIDSupplied
	}

	start := time.Now()
	ctx, span := es.startTraceSpan(ctx, spanReadStream, map[string]string{spanAttrStreamID: streamID})

	es.mu.RLock()
	stream := es.streams[streamID]
	eventStream := make(eventstore.StorableEvents, len(stream))
	copy(eventStream, stream)
	currentVersion := es.currentStreamVersion(streamID)
	es.mu.RUnlock()

	duration := time.Since(start)
	es.logOperation(ctx,
		logMsgStreamRead,
		logAttrStreamID, streamID,
		logAttrEventCount, len(eventStream),
		logAttrDurationMS, es.toMilliseconds(duration))
	es.recordDurationMetricsContext(ctx, metricReadDuration, duration, operationReadStream, statusSuccess)
	es.finishTraceSpan(span, statusSuccess, nil)

	return eventStream, currentVersion, nil
}

// ReadAll returns every event from every stream, totally ordered by the global
// sequence assigned at append time, together with the current maximum global
// sequence number. The returned slice is a consistent snapshot taken at the
// instant of the call.
func (es *EventStore) ReadAll(ctx context.Context) (
	eventstore.StorableEvents,
	eventstore.GlobalSequenceUint,
	error,
) {

	var empty eventstore.StorableEvents

	if ctxErr := ctx.Err(); ctxErr != nil {
		return empty, 0, ctxErr
	}

	start := time.Now()
	ctx, span := es.startTraceSpan(ctx, spanReadAll, nil)

	es.mu.RLock()
	eventStream := make(eventstore.StorableEvents, len(es.global))
	copy(eventStream, es.global)
	es.mu.RUnlock()

	maxGlobalSequence := eventstore.GlobalSequenceUint(len(eventStream))

	duration := time.Since(start)
	es.logOperation(ctx,
		logMsgAllStreamsRead,
		logAttrEventCount, len(eventStream),
		logAttrDurationMS, es.toMilliseconds(duration))
	es.recordDurationMetricsContext(ctx, metricReadDuration, duration, operationReadAll, statusSuccess)
	es.finishTraceSpan(span, statusSuccess, nil)

	return eventStream, maxGlobalSequence, nil
}

// currentStreamVersion reports the highest StreamVersion stored for the stream.
// Callers must hold es.mu.
func (es *EventStore) currentStreamVersion(streamID eventstore.StreamIDString) eventstore.StreamVersionUint {
	stream := es.streams[streamID]
	if len(stream) == 0 {
		return 0
	}

	return stream[len(stream)-1].StreamVersion
}
