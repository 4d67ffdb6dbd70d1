package accountsummaries_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankledger/eventsourced-accounts-go/account/core"
	"github.com/bankledger/eventsourced-accounts-go/features/query/accountsummaries"
)

func Test_ProjectAccountSummaries_EmptyHistory(t *testing.T) {
	result := accountsummaries.ProjectAccountSummaries(core.DomainEvents{}, 0)

	assert.Empty(t, result.Accounts)
	assert.Equal(t, 0, result.Count)
}

func Test_ProjectAccountSummaries_MultipleAccounts(t *testing.T) {
	// arrange - two interleaved account histories in global order
	now := time.Now()
	firstID := uuid.New().String()
	secondID := uuid.New().String()

	history := core.DomainEvents{
		core.BuildAccountCreated(firstID, "Ada Lovelace", 1000, 1, now),
		core.BuildAccountCreated(secondID, "Grace Hopper", 0, 1, now.Add(time.Minute)),
		core.BuildMoneyDeposited(firstID, 500, "Salary", 2, now.Add(2*time.Minute)),
		core.BuildMoneyDeposited(secondID, 200, "Gift", 2, now.Add(3*time.Minute)),
		core.BuildMoneyWithdrawn(firstID, 300, "Rent", 3, now.Add(4*time.Minute)),
	}

	// act
	result := accountsummaries.ProjectAccountSummaries(history, 5)

	// assert
	require.Equal(t, 2, result.Count)
	assert.Equal(t, uint(5), result.SequenceNumber)

	first, found := result.Get(firstID)
	require.True(t, found)
	assert.Equal(t, "Ada Lovelace", first.HolderName)
	assert.Equal(t, core.AmountCents(1200), first.Balance)
	assert.Equal(t, 2, first.TransactionCount)
	assert.False(t, first.Closed)

	second, found := result.Get(secondID)
	require.True(t, found)
	assert.Equal(t, "Grace Hopper", second.HolderName)
	assert.Equal(t, core.AmountCents(200), second.Balance)
	assert.Equal(t, 1, second.TransactionCount)

	// ordered by OpenedAt, oldest first
	assert.Equal(t, firstID, result.Accounts[0].AccountID)
	assert.Equal(t, secondID, result.Accounts[1].AccountID)
}

func Test_ProjectAccountSummaries_ClosedAccountIsIncluded(t *testing.T) {
	// arrange
	now := time.Now()
	accountID := uuid.New().String()

	history := core.DomainEvents{
		core.BuildAccountCreated(accountID, "Ada Lovelace", 100, 1, now),
		core.BuildMoneyWithdrawn(accountID, 100, "closing out", 2, now.Add(time.Minute)),
		core.BuildAccountClosed(accountID, "moving banks", 3, now.Add(2*time.Minute)),
	}

	// act
	result := accountsummaries.ProjectAccountSummaries(history, 3)

	// assert
	summary, found := result.Get(accountID)
	require.True(t, found)
	assert.True(t, summary.Closed)
	assert.Equal(t, core.AmountCents(0), summary.Balance)
	assert.True(t, summary.LastActivityAt.Equal(core.ToOccurredAt(now.Add(2*time.Minute))))
}

func Test_ProjectAccountSummaries_AgreesWithAggregateReplay(t *testing.T) {
	// arrange - the projection fold and the aggregate replay dispatch over the
	// same event kinds; for one account's history they must agree on balance
	account, err := core.OpenAccount(uuid.New(), "Ada Lovelace", 1000, time.Now())
	require.NoError(t, err)
	require.NoError(t, account.Deposit(500, "Salary", time.Now()))
	require.NoError(t, account.Withdraw(300, "Rent", time.Now()))
	require.NoError(t, account.Deposit(50, "Interest", time.Now()))

	history := account.UncommittedEvents()

	// act
	replayed := core.ReplayBankAccount(history)
	projected := accountsummaries.ProjectAccountSummaries(history, uint(len(history)))

	// assert
	summary, found := projected.Get(replayed.ID())
	require.True(t, found)
	assert.Equal(t, replayed.Balance(), summary.Balance)
	assert.Equal(t, replayed.HolderName(), summary.HolderName)
	assert.Equal(t, replayed.IsClosed(), summary.Closed)
}

func Test_AccountSummaries_Get_UnknownAccount(t *testing.T) {
	result := accountsummaries.ProjectAccountSummaries(core.DomainEvents{}, 0)

	_, found := result.Get(uuid.New().String())
	assert.False(t, found)
}
