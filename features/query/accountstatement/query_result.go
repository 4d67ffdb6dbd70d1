package accountstatement

import (
	"time"

	"github.com/bankledger/eventsourced-accounts-go/account/core"
	"github.com/bankledger/eventsourced-accounts-go/eventstore"
)

// Line kinds appearing on a statement.
const (
	LineKindOpened     = "Opened"
	LineKindDeposit    = "Deposit"
	LineKindWithdrawal = "Withdrawal"
	LineKindClosed     = "Closed"
)

// StatementLine represents a single entry on an account statement.
// Amount is signed: positive for money flowing in, negative for money flowing out.
type StatementLine struct {
	Kind           string
	Amount         core.AmountCents
	Description    string
	RunningBalance core.AmountCents
	OccurredAt     time.Time
}

// AccountStatement represents the query result: the full transaction history
// of one account with a running balance per line.
type AccountStatement struct {
	AccountID      core.AccountIDString
	HolderName     string
	Lines          []StatementLine
	ClosingBalance core.AmountCents
	Closed         bool
	StreamVersion  eventstore.StreamVersionUint
}
