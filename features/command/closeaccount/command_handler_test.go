package closeaccount_test

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
	"github.com/bankledger/eventsourced-accounts-go/features/command/openaccount"
)

func setupAccount(t *testing.T, initialBalance core.AmountCents) (shell.AccountRepository, uuid.UUID) {
	t.Helper()

	es, err := memoryengine.NewEventStore()
	require.NoError(t, err)
	repository := shell.NewAccountRepository(es)

	accountID := uuid.New()
	openHandler := openaccount.NewCommandHandler(repository)
	_, err = openHandler.Handle(context.Background(), openaccount.BuildCommand(accountID, "Ada Lovelace", initialBalance, time.Now()))
	require.NoError(t, err)

	return repository, accountID
}

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// arrange - closing requires a zero balance
	repository, accountID := setupAccount(t, 0)
	handler := closeaccount.NewCommandHandler(repository)
	ctx := context.Background()

	// act
	result, err := handler.Handle(ctx, closeaccount.BuildCommand(accountID, "moving banks", time.Now()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.RetryAttempts)

	account, found, loadErr := repository.Load(ctx, accountID)
	require.NoError(t, loadErr)
	require.True(t, found)
	assert.True(t, account.IsClosed())
	assert.Equal(t, core.StreamVersionUint(2), account.Version())
}

func Test_CommandHandler_Handle_NonZeroBalance_IsRejected(t *testing.T) {
	// arrange
	repository, accountID := setupAccount(t, 1000)
	handler := closeaccount.NewCommandHandler(repository)
	ctx := context.Background()

	// act
	_, err := handler.Handle(ctx, closeaccount.BuildCommand(accountID, "moving banks", time.Now()))

	// assert
	var stateErr core.InvalidStateError
	require.ErrorAs(t, err, &stateErr)

	account, _, loadErr := repository.Load(ctx, accountID)
	require.NoError(t, loadErr)
	assert.False(t, account.IsClosed())
}

func Test_CommandHandler_Handle_AlreadyClosed(t *testing.T) {
	// arrange
	repository, accountID := setupAccount(t, 0)
	handler := closeaccount.NewCommandHandler(repository)
	ctx := context.Background()

	_, err := handler.Handle(ctx, closeaccount.BuildCommand(accountID, "moving banks", time.Now()))
	require.NoError(t, err)

	// act - closed is terminal
	_, err = handler.Handle(ctx, closeaccount.BuildCommand(accountID, "again", time.Now()))

	// assert
	var stateErr core.InvalidStateError
	assert.ErrorAs(t, err, &stateErr)
}

func Test_CommandHandler_Handle_AccountNotFound(t *testing.T) {
	// arrange
	repository, _ := setupAccount(t, 0)
	handler := closeaccount.NewCommandHandler(repository)

	// act
	_, err := handler.Handle(context.Background(), closeaccount.BuildCommand(uuid.New(), "never opened", time.Now()))

	// assert
	assert.ErrorIs(t, err, shell.ErrAccountNotFound)
}
