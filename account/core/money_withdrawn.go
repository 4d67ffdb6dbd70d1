package core

import (
	"time"

	"github.com/google/uuid"
)

// MoneyWithdrawnEventType is the event type identifier.
const MoneyWithdrawnEventType = "MoneyWithdrawn"

// MoneyWithdrawn represents when money is withdrawn from an account.
type MoneyWithdrawn struct {
	EventType     EventTypeString
	EventID       EventIDString
	AccountID     AccountIDString
	Amount        AmountCents
	Description   string
	StreamVersion StreamVersionUint
	OccurredAt    OccurredAtTS
}

// BuildMoneyWithdrawn creates a new MoneyWithdrawn event with a fresh event id.
func BuildMoneyWithdrawn(
	accountID AccountIDString,
	amount AmountCents,
	description string,
	streamVersion StreamVersionUint,
	occurredAt time.Time,
) MoneyWithdrawn {

	return MoneyWithdrawn{
		EventType:     MoneyWithdrawnEventType,
		EventID:       uuid.New().String(),
		AccountID:     accountID,
		Amount:        amount,
		Description:   description,
		StreamVersion: streamVersion,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e MoneyWithdrawn) IsEventType() string {
	return MoneyWithdrawnEventType
}

// HasEventID returns the globally unique event identifier.
func (e MoneyWithdrawn) HasEventID() string {
	return e.EventID
}

// HasAccountID returns the id of the account stream this event belongs to.
func (e MoneyWithdrawn) HasAccountID() string {
	return e.AccountID
}

// HasStreamVersion returns the version of the account after this event is applied.
func (e MoneyWithdrawn) HasStreamVersion() uint {
	return e.StreamVersion
}

// HasOccurredAt returns when this event occurred.
func (e MoneyWithdrawn) HasOccurredAt() time.Time {
	return e.OccurredAt
}
