package closeaccount

import (
	"time"

	"github.com/google/uuid"

	"github.com/bankledger/eventsourced-accounts-go/account/core"
)

const (
	commandType = "CloseAccount"
)

// Command represents the intent to close an account.
type Command struct {
	AccountID  uuid.UUID
	Reason     string
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(accountID uuid.UUID, reason string, occurredAt time.Time) Command {
	return Command{
		AccountID:  accountID,
		Reason:     reason,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
