package core

import (
	"time"
)

// DomainEvents is a slice of DomainEvent instances.
type DomainEvents = []DomainEvent

// DomainEvent represents an immutable business fact that has occurred to one bank account.
type DomainEvent interface {
	// IsEventType returns the string identifier for this event type.
	IsEventType() string

	// HasEventID returns the globally unique identifier assigned at creation.
	HasEventID() string

	// HasAccountID returns the id of the account stream this event belongs to.
	HasAccountID() string

	// HasStreamVersion returns the version of the account *after* this event is applied.
	HasStreamVersion() uint

	// HasOccurredAt returns when this event occurred.
	HasOccurredAt() time.Time
}
