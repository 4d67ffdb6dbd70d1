package core

import (
	"time"
)

// Instead of implementing full value objects, I'm using some alias types and helper methods here ...

// AccountIDString represents a bank account identifier
type AccountIDString = string

// EventIDString represents a globally unique event identifier
type EventIDString = string

// EventTypeString represents an event type identifier
type EventTypeString = string

// StreamVersionUint represents the version of an account stream after an event is applied
type StreamVersionUint = uint

// AmountCents represents a money amount in integer cents, no floating point money
type AmountCents = int64

// OccurredAtTS represents when an event occurred
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
