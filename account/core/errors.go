package core

import (
	"fmt"
)

// ValidationError signals malformed command input, e.g. a non-positive amount or
// an empty holder name. It is always surfaced to the caller and never retried.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// InvalidStateError signals that a command violates the account's current state,
// e.g. depositing into a closed account or closing with a non-zero balance.
type InvalidStateError struct {
	Reason string
}

func (e InvalidStateError) Error() string {
	return "invalid account state: " + e.Reason
}

// InsufficientFundsError signals a withdrawal exceeding the current balance.
// It carries both amounts so the caller can act on them.
type InsufficientFundsError struct {
	Requested AmountCents
	Available AmountCents
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: requested %d, available %d", e.Requested, e.Available)
}
