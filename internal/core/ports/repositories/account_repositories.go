package repositories

import (
	"context"

	"github.com/andriybobchuk/mooney/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account or overwrites an existing one by ID.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountBalance sets an account's balance and opening balance.
	// Used by the balance audit; regular reconciliation goes through the
	// transaction repository so the balance change commits atomically with
	// the transaction row.
	UpdateAccountBalance(ctx context.Context, accountID string, balance, openingBalance decimal.Decimal) error

	// DeleteAccount removes an account. Deleting a missing account is a no-op.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountSubscriber delivers push-based query results for account data.
type AccountSubscriber interface {
	// SubscribeAccounts delivers the full account list, re-delivering it
	// whenever any write touches the accounts table. The channel is closed
	// when ctx is cancelled; after cancellation no further delivery occurs.
	SubscribeAccounts(ctx context.Context) (<-chan []domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountSubscriber
}
