package withdrawmoney_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankledger/eventsourced-accounts-go/account/core"
	"github.com/bankledger/eventsourced-accounts-go/account/shell"
	"github.com/bankledger/eventsourced-accounts-go/eventstore/memoryengine"
	"github.com/bankledger/eventsourced-accounts-go/features/command/openaccount"
	"github.com/bankledger/eventsourced-accounts-go/features/command/withdrawmoney"
)

func setupAccountWithBalance(t *testing.T, balance core.AmountCents) (shell.AccountRepository, uuid.UUID) {
	t.Helper()

	es, err := memoryengine.NewEventStore()
	require.NoError(t, err)
	repository := shell.NewAccountRepository(es)

	accountID := uuid.New()
	openHandler := openaccount.NewCommandHandler(repository)
	_, err = openHandler.Handle(context.Background(), openaccount.BuildCommand(accountID, "Ada Lovelace", balance, time.Now()))
	require.NoError(t, err)

	return repository, accountID
}

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// arrange
	repository, accountID := setupAccountWithBalance(t, 1000)
	handler := withdrawmoney.NewCommandHandler(repository)
	ctx := context.Background()

	// act
	result, err := handler.Handle(ctx, withdrawmoney.BuildCommand(accountID, 300, "Rent", time.Now()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.RetryAttempts)

	account, found, loadErr := repository.Load(ctx, accountID)
	require.NoError(t, loadErr)
	require.True(t, found)
	assert.Equal(t, core.AmountCents(700), account.Balance())
	assert.Equal(t, core.StreamVersionUint(2), account.Version())
}

func Test_CommandHandler_Handle_AccountNotFound(t *testing.T) {
	// arrange
	repository, _ := setupAccountWithBalance(t, 1000)
	handler := withdrawmoney.NewCommandHandler(repository)

	// act - an account id that was never opened
	_, err := handler.Handle(context.Background(), withdrawmoney.BuildCommand(uuid.New(), 300, "Rent", time.Now()))

	// assert
	assert.ErrorIs(t, err, shell.ErrAccountNotFound)
}

func Test_CommandHandler_Handle_InsufficientFunds(t *testing.T) {
	// arrange
	repository, accountID := setupAccountWithBalance(t, 100)
	handler := withdrawmoney.NewCommandHandler(repository)
	ctx := context.Background()

	// act
	result, err := handler.Handle(ctx, withdrawmoney.BuildCommand(accountID, 500, "too much", time.Now()))

	// assert - fails fast, no retries for business rule failures
	require.Error(t, err)
	var insufficientErr core.InsufficientFundsError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, core.AmountCents(500), insufficientErr.Requested)
	assert.Equal(t, core.AmountCents(100), insufficientErr.Available)
	assert.Equal(t, 1, result.RetryAttempts)

	// the balance is untouched
	account, _, loadErr := repository.Load(ctx, accountID)
	require.NoError(t, loadErr)
	assert.Equal(t, core.AmountCents(100), account.Balance())
}

func Test_CommandHandler_Handle_ConcurrentWithdrawals_NeverOverdraw(t *testing.T) {
	// arrange - balance covers only some of the concurrent withdrawals
	repository, accountID := setupAccountWithBalance(t, 500)
	handler := withdrawmoney.NewCommandHandler(repository)
	ctx := context.Background()

	const writers = 8

	// act - each writer tries to withdraw 100; conflicts are retried with a
	// fresh load, so every attempt decides against the current balance
	var wg sync.WaitGroup
	results := make([]error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, results[idx] = handler.Handle(ctx, withdrawmoney.BuildCommand(accountID, 100, "concurrent", time.Now()))
		}(i)
	}
	wg.Wait()

	// assert - the balance never goes negative
	account, _, loadErr := repository.Load(ctx, accountID)
	require.NoError(t, loadErr)
	assert.GreaterOrEqual(t, account.Balance(), core.AmountCents(0))

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, core.AmountCents(500-int64(succeeded)*100), account.Balance())
}
