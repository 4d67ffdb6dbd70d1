package depositmoney

import (
	"time"

	"github.com/google/uuid"

	"github.com/bankledger/eventsourced-accounts-go/account/core"
)

const (
	commandType = "DepositMoney"
)

// Command represents the intent to deposit money into an account.
type Command struct {
	AccountID   uuid.UUID
	Amount      core.AmountCents
	Description string
	OccurredAt  core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(accountID uuid.UUID, amount core.AmountCents, description string, occurredAt time.Time) Command {
	return Command{
		AccountID:   accountID,
		Amount:      amount,
		Description: description,
		OccurredAt:  core.ToOccurredAt(occurredAt),
	}
}
