package openaccount

import (
	"time"

	"github.com/google/uuid"

	"github.com/bankledger/eventsourced-accounts-go/account/core"
)

const (
	commandType = "OpenAccount"
)

// Command represents the intent to open a new bank account for a holder.
type Command struct {
	AccountID      uuid.UUID
	HolderName     string
	InitialBalance core.AmountCents
	OccurredAt     core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(accountID uuid.UUID, holderName string, initialBalance core.AmountCents, occurredAt time.Time) Command {
	return Command{
		AccountID:      accountID,
		HolderName:     holderName,
		InitialBalance: initialBalance,
		OccurredAt:     core.ToOccurredAt(occurredAt),
	}
}
