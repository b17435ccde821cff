package repositories

import (
	"context"
	"time"

	"github.com/andriybobchuk/mooney/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByDateRange retrieves transactions with start <= date < end.
	ListTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error)

	// ListTransactionsByAccount retrieves all transactions referencing an account.
	ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data. Balance
// deltas accompany every mutating call so the account adjustment and the
// row change commit in one store transaction.
type TransactionWriter interface {
	// SaveTransaction upserts the transaction row and applies the given
	// account balance deltas atomically. The deltas map account IDs to the
	// signed amount to add to each account's balance; accounts are locked
	// before the row is written.
	SaveTransaction(ctx context.Context, txn domain.Transaction, balanceDeltas map[string]decimal.Decimal) error

	// DeleteTransaction removes the transaction row and applies the given
	// balance deltas atomically. Deleting a missing transaction is a no-op.
	DeleteTransaction(ctx context.Context, transactionID string, balanceDeltas map[string]decimal.Decimal) error
}

// TransactionSubscriber delivers push-based query results for transactions.
type TransactionSubscriber interface {
	// SubscribeTransactions delivers the full transaction list, re-delivering
	// whenever any write touches the transactions table. Closed on ctx cancel.
	SubscribeTransactions(ctx context.Context) (<-chan []domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionSubscriber
}
