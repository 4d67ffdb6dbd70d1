package shell

import (
	"context"

	"github.com/google/uuid"

	"github.com/bankledger/eventsourced-accounts-go/account/core"
	"github.com/bankledger/eventsourced-accounts-go/eventstore"
)

// EventStore defines the interface needed by the AccountRepository for event store operations.
type EventStore interface {
	ReadStream(ctx context.Context, streamID eventstore.StreamIDString) (
		eventstore.StorableEvents,
		eventstore.StreamVersionUint,
		error,
	)
	Append(
		ctx context.Context,
		streamID eventstore.StreamIDString,
		expectedStreamVersion eventstore.StreamVersionUint,
		event eventstore.StorableEvent,
		additionalEvents ...eventstore.StorableEvent,
	) error
}

// AccountRepository bridges command-side callers to storage: it loads accounts
// by replaying their event stream and saves an account's uncommitted events
// with the optimistic concurrency check of the event store.
type AccountRepository struct {
	eventStore EventStore
}

// NewAccountRepository creates a new AccountRepository on top of the given event store.
func NewAccountRepository(eventStore EventStore) AccountRepository {
	return AccountRepository{
		eventStore: eventStore,
	}
}

// Load reads the account's stream and replays it into a reconstructed aggregate.
//
// An empty stream is not an error: absence is a valid outcome, reported through
// the found flag.
func (r AccountRepository) Load(ctx context.Context, accountID uuid.UUID) (
	account *core.BankAccount,
	found bool,
	err error,
) {

	storableEvents, _, err := r.eventStore.ReadStream(ctx, accountID.String())
	if err != nil {
		return nil, false, err
	}

	if len(storableEvents) == 0 {
		return nil, false, nil
	}

	history, err := DomainEventsFrom(storableEvents)
	if err != nil {
		return nil, false, err
	}

	return core.ReplayBankAccount(history), true, nil
}

// Save appends the account's uncommitted events to its stream and clears the
// buffer on success. With no uncommitted events it is a no-op.
//
// The expected version is the version the stream was at before the uncommitted
// events were applied. A concurrency conflict propagates unchanged - the caller
// must reload and retry; Save itself never retries.
func (r AccountRepository) Save(ctx context.Context, account *core.BankAccount) error {
	uncommittedEvents := account.UncommittedEvents()
	if len(uncommittedEvents) == 0 {
		return nil
	}

	expectedStreamVersion := account.Version() - eventstore.StreamVersionUint(len(uncommittedEvents))

	// One correlation id per save; each event gets its own message id.
	correlationID := uuid.New()

	storableEvents := make(eventstore.StorableEvents, 0, len(uncommittedEvents))
	for _, domainEvent := range uncommittedEvents {
		messageID := uuid.New()
		metadata := BuildEventMetadata(messageID, correlationID, correlationID)

		storableEvent, mappingErr := StorableEventFrom(domainEvent, metadata)
		if mappingErr != nil {
			return mappingErr
		}

		storableEvents = append(storableEvents, storableEvent)
	}

	appendErr := r.eventStore.Append(ctx, account.ID(), expectedStreamVersion, storableEvents[0], storableEvents[1:]...)
	if appendErr != nil {
		return appendErr
	}

	account.MarkEventsCommitted()

	return nil
}
