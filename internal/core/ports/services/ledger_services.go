package services

import (
	"context"

	"github.com/andriybobchuk/mooney/internal/core/domain"
	"github.com/andriybobchuk/mooney/internal/dto"
)

// LedgerSvcFacade is the reconciliation engine: every transaction write goes
// through it so the referenced account's stored balance stays equal to its
// opening balance plus the net signed effect of its transactions.
type LedgerSvcFacade interface {
	// UpsertTransaction inserts or overwrites a transaction by ID, reversing
	// the prior version's balance effect and applying the new one.
	UpsertTransaction(ctx context.Context, req dto.UpsertTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction reverses the transaction's balance effect and removes
	// it. Unknown IDs are a benign no-op.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// GetTransactionByID retrieves a transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsForMonth retrieves the transactions dated in the month.
	ListTransactionsForMonth(ctx context.Context, month domain.MonthKey) ([]domain.Transaction, error)

	// RecomputeBalances rebuilds every account balance from its opening
	// balance and current transaction set, as ground truth after reference
	// data problems.
	RecomputeBalances(ctx context.Context) error
}
