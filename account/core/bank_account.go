package core

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

const firstStreamVersion = StreamVersionUint(1)

// BankAccount is the event-sourced aggregate for one bank account.
//
// Its state is derived from, and only from, its event history: every command
// validates the business rules, emits an event, and routes the effect through
// apply - event application is the only way state changes. This equivalence is
// what makes ReplayBankAccount produce state identical to live execution.
//
// An instance is never shared for concurrent mutation; every load produces an
// independent in-memory instance, so the only race surface is the event store's
// per-stream append path.
type BankAccount struct {
	id         AccountIDString
	holderName string
	balance    AmountCents
	closed     bool
	version    StreamVersionUint

	uncommittedEvents DomainEvents
}

// OpenAccount opens a new account for the given holder with the given initial balance.
//
// It fails with a ValidationError if holderName is empty or whitespace, or if
// initialBalance is negative. On success it synthesizes the AccountCreated event
// with stream version 1, applies it, and records it as uncommitted.
func OpenAccount(
	accountID uuid.UUID,
	holderName string,
	initialBalance AmountCents,
	occurredAt time.Time,
) (*BankAccount, error) {

	if strings.TrimSpace(holderName) == "" {
		return nil, ValidationError{Reason: "holder name must not be empty"}
	}

	if initialBalance < 0 {
		return nil, ValidationError{Reason: "initial balance must not be negative"}
	}

	account := &BankAccount{}
	account.recordThat(BuildAccountCreated(accountID.String(), holderName, initialBalance, firstStreamVersion, occurredAt))

	return account, nil
}

// Deposit adds the given amount to the balance.
//
// It fails with an InvalidStateError if the account is closed and with a
// ValidationError if amount is not positive.
func (a *BankAccount) Deposit(amount AmountCents, description string, occurredAt time.Time) error {
	if a.closed {
		return InvalidStateError{Reason: "account is closed"}
	}

	if amount <= 0 {
		return ValidationError{Reason: "deposit amount must be positive"}
	}

	a.recordThat(BuildMoneyDeposited(a.id, amount, description, a.version+1, occurredAt))

	return nil
}

// Withdraw removes the given amount from the balance.
//
// It fails with an InvalidStateError if the account is closed, with a
// ValidationError if amount is not positive, and with an InsufficientFundsError
// if amount exceeds the current balance. No sequence of valid commands can
// produce a negative balance.
func (a *BankAccount) Withdraw(amount AmountCents, description string, occurredAt time.Time) error {
	if a.closed {
		return InvalidStateError{Reason: "account is closed"}
	}

	if amount <= 0 {
		return ValidationError{Reason: "withdrawal amount must be positive"}
	}

	if amount > a.balance {
		return InsufficientFundsError{Requested: amount, Available: a.balance}
	}

	a.recordThat(BuildMoneyWithdrawn(a.id, amount, description, a.version+1, occurredAt))

	return nil
}

// Close closes the account. Closed is terminal.
//
// It fails with an InvalidStateError if the account is already closed or if the
// balance is not zero at the moment of closing.
func (a *BankAccount) Close(reason string, occurredAt time.Time) error {
	if a.closed {
		return InvalidStateError{Reason: "account is already closed"}
	}

	if a.balance != 0 {
		return InvalidStateError{Reason: "balance must be zero to close the account"}
	}

	a.recordThat(BuildAccountClosed(a.id, reason, a.version+1, occurredAt))

	return nil
}

// ReplayBankAccount reconstructs an account by applying the given historical
// events in order, with no validation - replay is authoritative reconstitution
// of a trusted log, not re-execution of business rules. The history must be
// ordered by stream version ascending and belong to one account.
//
// Event kinds the state machine does not recognize leave the business state
// unchanged; the version header still advances. The serialization boundary in
// account/shell rejects unknown event types before they ever reach replay.
func ReplayBankAccount(history DomainEvents) *BankAccount {
	account := &BankAccount{}

	for _, event := range history {
		account.apply(event)
	}

	return account
}

// recordThat applies the event to the aggregate state and records it as uncommitted.
func (a *BankAccount) recordThat(event DomainEvent) {
	a.apply(event)
	a.uncommittedEvents = append(a.uncommittedEvents, event)
}

// apply is the single authority for state mutation, on both the live command
// path and the replay path. It must stay in sync with the projection folds in
// the query features, which dispatch over the same event kinds.
func (a *BankAccount) apply(event DomainEvent) {
	switch e := event.(type) {
	case AccountCreated:
		a.id = e.AccountID
		a.holderName = e.HolderName
		a.balance = e.InitialBalance
		a.closed = false

	case MoneyDeposited:
		a.balance += e.Amount

	case MoneyWithdrawn:
		a.balance -= e.Amount

	case AccountClosed:
		a.closed = true

	default:
		// unrecognized event kinds do not change business state
	}

	a.version = event.HasStreamVersion()
}

// ID returns the account identifier.
func (a *BankAccount) ID() AccountIDString {
	return a.id
}

// HolderName returns the account holder's name.
func (a *BankAccount) HolderName() string {
	return a.holderName
}

// Balance returns the current balance in cents.
func (a *BankAccount) Balance() AmountCents {
	return a.balance
}

// IsClosed reports whether the account has been closed.
func (a *BankAccount) IsClosed() bool {
	return a.closed
}

// Version returns the stream version of the last applied event.
func (a *BankAccount) Version() StreamVersionUint {
	return a.version
}

// UncommittedEvents returns the events applied since the last successful save,
// in application order. Used by the repository to persist new events.
func (a *BankAccount) UncommittedEvents() DomainEvents {
	return slices.Clone(a.uncommittedEvents)
}

// MarkEventsCommitted clears the uncommitted events buffer.
// Called by the repository after a successful append.
func (a *BankAccount) MarkEventsCommitted() {
	a.uncommittedEvents = nil
}
