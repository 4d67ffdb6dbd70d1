// Package eventstore provides the core abstractions and types for event sourcing
// with versioned per-account event streams.
//
// This package defines the fundamental types used by event store engines:
// storable events, stream identity and versioning, and common error definitions.
// The engine itself lives in the memoryengine sub-package.
//
// Key types:
//   - StorableEvent: Represents an event that can be stored and retrieved
//   - StorableEvents: Collection of storable events
//   - ConcurrencyConflictError: Append rejected because the stream moved on
//   - InvariantViolationError: Append rejected because versions are not contiguous
//
// Common usage pattern:
//
//	store := memoryengine.NewEventStore()
//
//	events, currentVersion, err := store.ReadStream(ctx, accountID)
//	if err != nil {
//		// handle error
//	}
//
//	newEvent, _ := eventstore.BuildStorableEvent(accountID, currentVersion+1, eventType, time.Now(), payload, metadata)
//	err = store.Append(ctx, accountID, currentVersion, newEvent)
package eventstore
