package core

import (
	"time"

	"github.com/google/uuid"
)

// AccountClosedEventType is the event type identifier.
const AccountClosedEventType = "AccountClosed"

// AccountClosed represents when an account is closed. Closed is terminal:
// no further deposits or withdrawals may follow this event in a stream.
type AccountClosed struct {
	EventType     EventTypeString
	EventID       EventIDString
	AccountID     AccountIDString
	Reason        string
	StreamVersion StreamVersionUint
	OccurredAt    OccurredAtTS
}

// BuildAccountClosed creates a new AccountClosed event with a fresh event id.
func BuildAccountClosed(
	accountID AccountIDString,
	reason string,
	streamVersion StreamVersionUint,
	occurredAt time.Time,
) AccountClosed {

	return AccountClosed{
		EventType:     AccountClosedEventType,
		EventID:       uuid.New().String(),
		AccountID:     accountID,
		Reason:        reason,
		StreamVersion: streamVersion,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e AccountClosed) IsEventType() string {
	return AccountClosedEventType
}

// HasEventID returns the globally unique event identifier.
func (e AccountClosed) HasEventID() string {
	return e.EventID
}

// HasAccountID returns the id of the account stream this event belongs to.
func (e AccountClosed) HasAccountID() string {
	return e.AccountID
}

// HasStreamVersion returns the version of the account after this event is applied.
func (e AccountClosed) HasStreamVersion() uint {
	return e.StreamVersion
}

// HasOccurredAt returns when this event occurred.
func (e AccountClosed) HasOccurredAt() time.Time {
	return e.OccurredAt
}
