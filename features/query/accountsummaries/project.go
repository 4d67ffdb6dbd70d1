package accountsummaries

import (
	"slices"
	"strings"

	"github.com/bankledger/eventsourced-accounts-go/account/core"
	"github.com/bankledger/eventsourced-accounts-go/eventstore"
)

// ProjectAccountSummaries implements the query logic to build a summary of every account.
// This is a pure function with no side effects - it folds the supplied domain events
// into the projected state, returning one summary per account.
//
// Query Logic:
//
//	GIVEN: All events in the system, in global append order
//	WHEN: AccountSummaries query is executed
//	THEN: AccountSummaries struct is returned with the current state of every account
//	INCLUDES: Closed accounts (marked Closed, balance retained as of closing)
//	DETAILS: TransactionCount counts deposits and withdrawals only
func ProjectAccountSummaries(history core.DomainEvents, maxSequence eventstore.GlobalSequenceUint) AccountSummaries {
	summaries := make(map[core.AccountIDString]*AccountSummary)

	for _, event := range history {
		switch e := event.(type) {
		case core.AccountCreated:
			if _, exists := summaries[e.AccountID]; !exists {
				summaries[e.AccountID] = &AccountSummary{
					AccountID:      e.AccountID,
					HolderName:     e.HolderName,
					Balance:        e.InitialBalance,
					OpenedAt:       e.OccurredAt,
					LastActivityAt: e.OccurredAt,
				}
			}

		case core.MoneyDeposited:
			if summary := summaries[e.AccountID]; summary != nil {
				summary.Balance += e.Amount
				summary.TransactionCount++
				summary.LastActivityAt = e.OccurredAt
			}

		case core.MoneyWithdrawn:
			if summary := summaries[e.AccountID]; summary != nil {
				summary.Balance -= e.Amount
				summary.TransactionCount++
				summary.LastActivityAt = e.OccurredAt
			}

		case core.AccountClosed:
			if summary := summaries[e.AccountID]; summary != nil {
				summary.Closed = true
				summary.LastActivityAt = e.OccurredAt
			}
		}
	}

	accountList := make([]AccountSummary, 0, len(summaries))
	for _, summaryPtr := range summaries {
		accountList = append(accountList, *summaryPtr)
	}
	slices.SortFunc(accountList, func(a, b AccountSummary) int {
		if c := a.OpenedAt.Compare(b.OpenedAt); c != 0 {
			return c
		}
		return strings.Compare(a.AccountID, b.AccountID)
	})

	return AccountSummaries{
		Accounts:       accountList,
		Count:          len(accountList),
		SequenceNumber: maxSequence,
	}
}
