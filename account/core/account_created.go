package core

import (
	"time"

	"github.com/google/uuid"
)

// AccountCreatedEventType is the event type identifier.
const AccountCreatedEventType = "AccountCreated"

// AccountCreated represents when a bank account is opened for a holder.
// It is always the first event of an account stream.
type AccountCreated struct {
	EventType      EventTypeString
	EventID        EventIDString
	AccountID      AccountIDString
	HolderName     string
	InitialBalance AmountCents
	StreamVersion  StreamVersionUint
	OccurredAt     OccurredAtTS
}

// BuildAccountCreated creates a new AccountCreated event with a fresh event id.
func BuildAccountCreated(
	accountID AccountIDString,
	holderName string,
	initialBalance AmountCents,
	streamVersion StreamVersionUint,
	occurredAt time.Time,
) AccountCreated {

	return AccountCreated{
		EventType:      AccountCreatedEventType,
		EventID:        uuid.New().String(),
		AccountID:      accountID,
		HolderName:     holderName,
		InitialBalance: initialBalance,
		StreamVersion:  streamVersion,
		OccurredAt:     ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e AccountCreated) IsEventType() string {
	return AccountCreatedEventType
}

// HasEventID returns the globally unique event identifier.
func (e AccountCreated) HasEventID() string {
	return e.EventID
}

// HasAccountID returns the id of the account stream this event belongs to.
func (e AccountCreated) HasAccountID() string {
	return e.AccountID
}

// HasStreamVersion returns the version of the account after this event is applied.
func (e AccountCreated) HasStreamVersion() uint {
	return e.StreamVersion
}

// HasOccurredAt returns when this event occurred.
func (e AccountCreated) HasOccurredAt() time.Time {
	return e.OccurredAt
}
