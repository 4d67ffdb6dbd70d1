package eventstore

import (
	"errors"
	"fmt"
)

// ErrConcurrencyConflict is the sentinel matched by errors.Is for any ConcurrencyConflictError.
// Retry logic in client code should match against this sentinel instead of the concrete type.
var ErrConcurrencyConflict = errors.New("concurrency conflict, stream is not at the expected version")

// ErrInvariantViolation is the sentinel matched by errors.Is for any InvariantViolationError.
var ErrInvariantViolation = errors.New("invariant violation, stream versions must be contiguous")

// ConcurrencyConflictError is returned by Append when the stream's current version does not
// match the expected version supplied by the caller. It carries both versions so the caller
// can act on them; the documented recovery is reload-and-retry, never silent.
type ConcurrencyConflictError struct {
	StreamID        StreamIDString
	ExpectedVersion StreamVersionUint
	ActualVersion   StreamVersionUint
}

func (e ConcurrencyConflictError) Error() string {
	return fmt.Sprintf(
		"concurrency conflict on stream %s: expected version %d, actual version %d",
		e.StreamID, e.ExpectedVersion, e.ActualVersion,
	)
}

// Is makes errors.Is(err, ErrConcurrencyConflict) match a ConcurrencyConflictError.
func (e ConcurrencyConflictError) Is(target error) bool {
	return target == ErrConcurrencyConflict
}

// InvariantViolationError is returned by Append when the events to append do not form the
// contiguous version range expectedVersion+1 .. expectedVersion+len(events) for the stream,
// or belong to a different stream. It signals a programming error in the appending code and
// is never expected during correct operation.
type InvariantViolationError struct {
	StreamID        StreamIDString
	ExpectedVersion StreamVersionUint
	GotVersion      StreamVersionUint
}

func (e InvariantViolationError) Error() string {
	return fmt.Sprintf(
		"invariant violation on stream %s: expected next version %d, got %d",
		e.StreamID, e.ExpectedVersion, e.GotVersion,
	)
}

// Is makes errors.Is(err, ErrInvariantViolation) match an InvariantViolationError.
func (e InvariantViolationError) Is(target error) bool {
	return target == ErrInvariantViolation
}
