package accountstatement_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankledger/eventsourced-accounts-go/account/core"
	"github.com/bankledger/eventsourced-accounts-go/account/shell"
	"github.com/bankledger/eventsourced-accounts-go/eventstore/memoryengine"
	"github.com/bankledger/eventsourced-accounts-go/features/command/closeaccount"
	"github.com/bankledger/eventsourced-accounts-go/features/command/depositmoney"
	"github.com/bankledger/eventsourced-accounts-go/features/command/openaccount"
	"github.com/bankledger/eventsourced-accounts-go/features/command/withdrawmoney"
	"github.com/bankledger/eventsourced-accounts-go/features/query/accountstatement"
)

func Test_QueryHandler_Handle_FullStatement(t *testing.T) {
	// arrange - run commands through the full stack, then query the statement
	es, err := memoryengine.NewEventStore()
	require.NoError(t, err)
	repository := shell.NewAccountRepository(es)
	ctx := context.Background()

	accountID := uuid.New()

	_, err = openaccount.NewCommandHandler(repository).
		Handle(ctx, openaccount.BuildCommand(accountID, "Ada Lovelace", 1000, time.Now()))
	require.NoError(t, err)
	_, err = depositmoney.NewCommandHandler(repository).
		Handle(ctx, depositmoney.BuildCommand(accountID, 500, "Salary", time.Now()))
	require.NoError(t, err)
	_, err = withdrawmoney.NewCommandHandler(repository).
		Handle(ctx, withdrawmoney.BuildCommand(accountID, 300, "Rent", time.Now()))
	require.NoError(t, err)

	queryHandler, err := accountstatement.NewQueryHandler(es)
	require.NoError(t, err)

	// act
	statement, err := queryHandler.Handle(ctx, accountstatement.BuildQuery(accountID))

	// assert
	require.NoError(t, err)
	assert.Equal(t, accountID.String(), statement.AccountID)
	assert.Equal(t, "Ada Lovelace", statement.HolderName)
	assert.Equal(t, core.AmountCents(1200), statement.ClosingBalance)
	assert.False(t, statement.Closed)
	assert.Equal(t, uint(3), statement.StreamVersion)

	require.Len(t, statement.Lines, 3)

	assert.Equal(t, accountstatement.LineKindOpened, statement.Lines[0].Kind)
	assert.Equal(t, core.AmountCents(1000), statement.Lines[0].Amount)
	assert.Equal(t, core.AmountCents(1000), statement.Lines[0].RunningBalance)

	assert.Equal(t, accountstatement.LineKindDeposit, statement.Lines[1].Kind)
	assert.Equal(t, core.AmountCents(500), statement.Lines[1].Amount)
	assert.Equal(t, "Salary", statement.Lines[1].Description)
	assert.Equal(t, core.AmountCents(1500), statement.Lines[1].RunningBalance)

	assert.Equal(t, accountstatement.LineKindWithdrawal, statement.Lines[2].Kind)
	assert.Equal(t, core.AmountCents(-300), statement.Lines[2].Amount)
	assert.Equal(t, "Rent", statement.Lines[2].Description)
	assert.Equal(t, core.AmountCents(1200), statement.Lines[2].RunningBalance)
}

func Test_QueryHandler_Handle_ClosedAccountStatement(t *testing.T) {
	// arrange
	es, err := memoryengine.NewEventStore()
	require.NoError(t, err)
	repository := shell.NewAccountRepository(es)
	ctx := context.Background()

	accountID := uuid.New()

	_, err = openaccount.NewCommandHandler(repository).
		Handle(ctx, openaccount.BuildCommand(accountID, "Ada Lovelace", 100, time.Now()))
	require.NoError(t, err)
	_, err = withdrawmoney.NewCommandHandler(repository).
		Handle(ctx, withdrawmoney.BuildCommand(accountID, 100, "closing out", time.Now()))
	require.NoError(t, err)
	_, err = closeaccount.NewCommandHandler(repository).
		Handle(ctx, closeaccount.BuildCommand(accountID, "moving banks", time.Now()))
	require.NoError(t, err)

	queryHandler, err := accountstatement.NewQueryHandler(es)
	require.NoError(t, err)

	// act
	statement, err := queryHandler.Handle(ctx, accountstatement.BuildQuery(accountID))

	// assert
	require.NoError(t, err)
	assert.True(t, statement.Closed)
	assert.Equal(t, core.AmountCents(0), statement.ClosingBalance)

	require.Len(t, statement.Lines, 3)
	lastLine := statement.Lines[2]
	assert.Equal(t, accountstatement.LineKindClosed, lastLine.Kind)
	assert.Equal(t, "moving banks", lastLine.Description)
	assert.Equal(t, core.AmountCents(0), lastLine.RunningBalance)
}

func Test_QueryHandler_Handle_UnknownAccount(t *testing.T) {
	// arrange
	es, err := memoryengine.NewEventStore()
	require.NoError(t, err)

	queryHandler, err := accountstatement.NewQueryHandler(es)
	require.NoError(t, err)

	// act
	_, err = queryHandler.Handle(context.Background(), accountstatement.BuildQuery(uuid.New()))

	// assert
	assert.ErrorIs(t, err, shell.ErrAccountNotFound)
}
