package core

import (
	"time"

	"github.com/google/uuid"
)

// MoneyDepositedEventType is the event type identifier.
const MoneyDepositedEventType = "MoneyDeposited"

// MoneyDeposited represents when money is deposited into an account.
type MoneyDeposited struct {
	EventType     EventTypeString
	EventID       EventIDString
	AccountID     AccountIDString
	Amount        AmountCents
	Description   string
	StreamVersion StreamVersionUint
	OccurredAt    OccurredAtTS
}

// BuildMoneyDeposited creates a new MoneyDeposited event with a fresh event id.
func BuildMoneyDeposited(
	accountID AccountIDString,
	amount AmountCents,
	description string,
	streamVersion StreamVersionUint,
	occurredAt time.Time,
) MoneyDeposited {

	return MoneyDeposited{
		EventType:     MoneyDepositedEventType,
		EventID:       uuid.New().String(),
		AccountID:     accountID,
		Amount:        amount,
		Description:   description,
		StreamVersion: streamVersion,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e MoneyDeposited) IsEventType() string {
	return MoneyDepositedEventType
}

// HasEventID returns the globally unique event identifier.
func (e MoneyDeposited) HasEventID() string {
	return e.EventID
}

// HasAccountID returns the id of the account stream this event belongs to.
func (e MoneyDeposited) HasAccountID() string {
	return e.AccountID
}

// HasStreamVersion returns the version of the account after this event is applied.
func (e MoneyDeposited) HasStreamVersion() uint {
	return e.StreamVersion
}

// HasOccurredAt returns when this event occurred.
func (e MoneyDeposited) HasOccurredAt() time.Time {
	return e.OccurredAt
}
