package openaccount

import (
	"context"

	"github.com/google/uuid"

	"github.com/bankledger/eventsourced-accounts-go/account/core"
	"github.com/bankledger/eventsourced-accounts-go/account/shell"
)

// Repository defines the interface needed by the CommandHandler to load and save accounts.
type Repository interface {
	Load(ctx context.Context, accountID uuid.UUID) (*core.BankAccount, bool, error)
	Save(ctx context.Context, account *core.BankAccount) error
}

// CommandHandler orchestrates the command processing workflow:
// Load -> Decide (aggregate command) -> Save, with retry on concurrency conflicts.
// Observability concerns live in the observable wrapper.
type CommandHandler struct {
	repository   Repository
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(repository Repository, opts ...Option) CommandHandler {
	handler := CommandHandler{
		repository: repository,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the complete command processing workflow with retry logic.
// Returns a HandlerResult containing execution metadata for observability.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		return h.executeCommand(retryCtx, command)
	}, h.retryOptions...)

	if err != nil {
		return shell.NewErrorResult(retryMetrics), err
	}

	return shell.NewSuccessResult(retryMetrics), nil
}

// executeCommand contains the core command processing logic that can be retried.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) error {
	_, found, err := h.repository.Load(ctx, command.AccountID)
	if err != nil {
		return err
	}

	if found {
		return shell.ErrAccountAlreadyExists
	}

	account, err := core.OpenAccount(command.AccountID, command.HolderName, command.InitialBalance, command.OccurredAt)
	if err != nil {
		return err
	}

	return h.repository.Save(ctx, account)
}
