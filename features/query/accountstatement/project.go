package accountstatement

import (
	"github.com/bankledger/eventsourced-accounts-go/account/core"
	"github.com/bankledger/eventsourced-accounts-go/eventstore"
)

// ProjectAccountStatement implements the query logic to build the statement of one account.
// This is a pure function with no side effects - it folds the account's event history
// into a list of statement lines with a running balance.
//
// Query Logic:
//
//	GIVEN: The full event history of one account, in stream order
//	WHEN: AccountStatement query is executed
//	THEN: AccountStatement struct is returned with one line per event
//	DETAILS: RunningBalance on each line reflects the balance after that event
func ProjectAccountStatement(history core.DomainEvents, streamVersion eventstore.StreamVersionUint) AccountStatement {
	statement := AccountStatement{
		StreamVersion: streamVersion,
	}

	var balance core.AmountCents

	for _, event := range history {
		switch e := event.(type) {
		case core.AccountCreated:
			statement.AccountID = e.AccountID
			statement.HolderName = e.HolderName
			balance = e.InitialBalance
			statement.Lines = append(statement.Lines, StatementLine{
				Kind:           LineKindOpened,
				Amount:         e.InitialBalance,
				Description:    "Account opened",
				RunningBalance: balance,
				OccurredAt:     e.OccurredAt,
			})

		case core.MoneyDeposited:
			balance += e.Amount
			statement.Lines = append(statement.Lines, StatementLine{
				Kind:           LineKindDeposit,
				Amount:         e.Amount,
				Description:    e.Description,
				RunningBalance: balance,
				OccurredAt:     e.OccurredAt,
			})

		case core.MoneyWithdrawn:
			balance -= e.Amount
			statement.Lines = append(statement.Lines, StatementLine{
				Kind:           LineKindWithdrawal,
				Amount:         -e.Amount,
				Description:    e.Description,
				RunningBalance: balance,
				OccurredAt:     e.OccurredAt,
			})

		case core.AccountClosed:
			statement.Closed = true
			statement.Lines = append(statement.Lines, StatementLine{
				Kind:           LineKindClosed,
				Description:    e.Reason,
				RunningBalance: balance,
				OccurredAt:     e.OccurredAt,
			})
		}
	}

	statement.ClosingBalance = balance

	return statement
}
