package accountsummaries_test

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
	"github.com/bankledger/eventsourced-accounts-go/features/command/depositmoney"
	"github.com/bankledger/eventsourced-accounts-go/features/command/openaccount"
	"github.com/bankledger/eventsourced-accounts-go/features/command/withdrawmoney"
	"github.com/bankledger/eventsourced-accounts-go/features/query/accountsummaries"
)

func Test_QueryHandler_Handle_EndToEnd(t *testing.T) {
	// arrange - run commands through the full stack, then query
	es, err := memoryengine.NewEventStore()
	require.NoError(t, err)
	repository := shell.NewAccountRepository(es)
	ctx := context.Background()

	openHandler := openaccount.NewCommandHandler(repository)
	depositHandler := depositmoney.NewCommandHandler(repository)
	withdrawHandler := withdrawmoney.NewCommandHandler(repository)

	firstID := uuid.New()
	secondID := uuid.New()

	_, err = openHandler.Handle(ctx, openaccount.BuildCommand(firstID, "Ada Lovelace", 1000, time.Now()))
	require.NoError(t, err)
	_, err = openHandler.Handle(ctx, openaccount.BuildCommand(secondID, "Grace Hopper", 500, time.Now()))
	require.NoError(t, err)
	_, err = depositHandler.Handle(ctx, depositmoney.BuildCommand(firstID, 500, "Salary", time.Now()))
	require.NoError(t, err)
	_, err = withdrawHandler.Handle(ctx, withdrawmoney.BuildCommand(firstID, 300, "Rent", time.Now()))
	require.NoError(t, err)

	queryHandler, err := accountsummaries.NewQueryHandler(es)
	require.NoError(t, err)

	// act
	result, err := queryHandler.Handle(ctx)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, uint(4), result.SequenceNumber)

	first, found := result.Get(firstID.String())
	require.True(t, found)
	assert.Equal(t, core.AmountCents(1200), first.Balance)
	assert.Equal(t, 2, first.TransactionCount)

	second, found := result.Get(secondID.String())
	require.True(t, found)
	assert.Equal(t, core.AmountCents(500), second.Balance)
	assert.Equal(t, 0, second.TransactionCount)
}

func Test_QueryHandler_Handle_EmptyStore(t *testing.T) {
	// arrange
	es, err := memoryengine.NewEventStore()
	require.NoError(t, err)

	queryHandler, err := accountsummaries.NewQueryHandler(es)
	require.NoError(t, err)

	// act
	result, err := queryHandler.Handle(context.Background())

	// assert
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Accounts)
}

func Test_QueryHandler_Handle_WithCanceledContext(t *testing.T) {
	// arrange
	es, err := memoryengine.NewEventStore()
	require.NoError(t, err)

	queryHandler, err := accountsummaries.NewQueryHandler(es)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// act
	_, err = queryHandler.Handle(ctx)

	// assert
	assert.ErrorIs(t, err, context.Canceled)
}
