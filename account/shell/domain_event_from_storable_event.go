package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/bankledger/eventsourced-accounts-go/account/core"
	"github.com/bankledger/eventsourced-accounts-go/eventstore"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	// Unknown types are rejected here, at the serialization boundary, rather than
	// silently ignored - schema evolution must be handled explicitly, not by accident.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0)

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	switch storableEvent.EventType {
	case core.AccountCreatedEventType:
		return unmarshalAccountCreated(storableEvent.PayloadJSON)

	case core.MoneyDepositedEventType:
		return unmarshalMoneyDeposited(storableEvent.PayloadJSON)

	case core.MoneyWithdrawnEventType:
		return unmarshalMoneyWithdrawn(storableEvent.PayloadJSON)

	case core.AccountClosedEventType:
		return unmarshalAccountClosed(storableEvent.PayloadJSON)

	default:
		return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
	}
}

func unmarshalAccountCreated(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.AccountCreated)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.AccountCreated{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.AccountCreated{
		EventType:      payload.EventType,
		EventID:        payload.EventID,
		AccountID:      payload.AccountID,
		HolderName:     payload.HolderName,
		InitialBalance: payload.InitialBalance,
		StreamVersion:  payload.StreamVersion,
		OccurredAt:     payload.OccurredAt,
	}, nil
}

func unmarshalMoneyDeposited(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.MoneyDeposited)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.MoneyDeposited{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.MoneyDeposited{
		EventType:     payload.EventType,
		EventID:       payload.EventID,
		AccountID:     payload.AccountID,
		Amount:        payload.Amount,
		Description:   payload.Description,
		StreamVersion: payload.StreamVersion,
		OccurredAt:    payload.OccurredAt,
	}, nil
}

func unmarshalMoneyWithdrawn(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.MoneyWithdrawn)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.MoneyWithdrawn{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.MoneyWithdrawn{
		EventType:     payload.EventType,
		EventID:       payload.EventID,
		AccountID:     payload.AccountID,
		Amount:        payload.Amount,
		Description:   payload.Description,
		StreamVersion: payload.StreamVersion,
		OccurredAt:    payload.OccurredAt,
	}, nil
}

func unmarshalAccountClosed(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.AccountClosed)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.AccountClosed{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.AccountClosed{
		EventType:     payload.EventType,
		EventID:       payload.EventID,
		AccountID:     payload.AccountID,
		Reason:        payload.Reason,
		StreamVersion: payload.StreamVersion,
		OccurredAt:    payload.OccurredAt,
	}, nil
}
