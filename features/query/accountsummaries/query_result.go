package accountsummaries

import (
	"time"

	"github.com/bankledger/eventsourced-accounts-go/account/core"
	"github.com/bankledger/eventsourced-accounts-go/eventstore"
)

// AccountSummary represents the current state of a single account,
// derived purely from its event history.
type AccountSummary struct {
	AccountID        core.AccountIDString
	HolderName       string
	Balance          core.AmountCents
	TransactionCount int
	Closed           bool
	OpenedAt         time.Time
	LastActivityAt   time.Time
}

// AccountSummaries represents the query result containing one summary per known account.
// Accounts are ordered by OpenedAt (oldest first).
type AccountSummaries struct {
	Accounts       []AccountSummary
	Count          int
	SequenceNumber eventstore.GlobalSequenceUint
}

// Get returns the summary for the given account ID, if one exists.
func (s AccountSummaries) Get(accountID core.AccountIDString) (AccountSummary, bool) {
	for _, summary := range s.Accounts {
		if summary.AccountID == accountID {
			return summary, true
		}
	}

	return AccountSummary{}, false
}

// GetAll returns all summaries ordered by OpenedAt, oldest first.
func (s AccountSummaries) GetAll() []AccountSummary {
	return s.Accounts
}
