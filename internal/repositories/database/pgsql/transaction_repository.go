package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/andriybobchuk/mooney/internal/apperrors"
	"github.com/andriybobchuk/mooney/internal/core/domain"
	portsrepo "github.com/andriybobchuk/mooney/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
	notifier *changeNotifier
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool, notifier *changeNotifier) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}, notifier: notifier}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, category_id, account_id, amount, txn_date`

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(&t.TransactionID, &t.CategoryID, &t.AccountID, &t.Amount, &t.Date)
	return t, err
}

// SaveTransaction upserts the transaction row and applies the balance deltas
// in one DB transaction. The touched accounts are locked first in a fixed
// order, so concurrent reconciliations over the same accounts serialize
// instead of deadlocking.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceDeltas map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.applyBalanceDeltas(ctx, tx, balanceDeltas); err != nil {
		return err
	}

	query := `
		INSERT INTO transactions (transaction_id, category_id, account_id, amount, txn_date)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (transaction_id) DO UPDATE SET
			category_id = EXCLUDED.category_id,
			account_id = EXCLUDED.account_id,
			amount = EXCLUDED.amount,
			txn_date = EXCLUDED.txn_date;
	`
	if _, err := tx.Exec(ctx, query, txn.TransactionID, txn.CategoryID, txn.AccountID, txn.Amount, txn.Date); err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return err
	}

	r.notifier.notify(tableTransactions)
	if len(balanceDeltas) > 0 {
		r.notifier.notify(tableAccounts)
	}
	return nil
}

// DeleteTransaction removes the row and applies the balance deltas in one DB
// transaction. Deleting a missing transaction is a no-op.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, balanceDeltas map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.applyBalanceDeltas(ctx, tx, balanceDeltas); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return err
	}

	if tag.RowsAffected() > 0 {
		r.notifier.notify(tableTransactions)
	}
	if len(balanceDeltas) > 0 {
		r.notifier.notify(tableAccounts)
	}
	return nil
}

// applyBalanceDeltas locks the referenced accounts and adds each delta to
// its balance, inside the caller's transaction.
func (r *PgxTransactionRepository) applyBalanceDeltas(ctx context.Context, tx pgx.Tx, balanceDeltas map[string]decimal.Decimal) error {
	if len(balanceDeltas) == 0 {
		return nil
	}

	accountIDs := make([]string, 0, len(balanceDeltas))
	for accountID := range balanceDeltas {
		accountIDs = append(accountIDs, accountID)
	}
	sort.Strings(accountIDs)

	rows, err := tx.Query(ctx, `SELECT account_id FROM accounts WHERE account_id = ANY($1) ORDER BY account_id FOR UPDATE;`, accountIDs)
	if err != nil {
		return fmt.Errorf("failed to lock accounts for update: %w", err)
	}
	locked := make(map[string]bool, len(accountIDs))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan locked account id: %w", err)
		}
		locked[id] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to lock accounts for update: %w", err)
	}
	for _, accountID := range accountIDs {
		if !locked[accountID] {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
	}

	for _, accountID := range accountIDs {
		if _, err := tx.Exec(ctx, `UPDATE accounts SET balance = balance + $2 WHERE account_id = $1;`, accountID, balanceDeltas[accountID]); err != nil {
			return fmt.Errorf("failed to adjust balance for account %s: %w", accountID, err)
		}
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY txn_date DESC, transaction_id;`
	return r.queryTransactions(ctx, query)
}

func (r *PgxTransactionRepository) ListTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE txn_date >= $1 AND txn_date < $2 ORDER BY txn_date DESC, transaction_id;`
	return r.queryTransactions(ctx, query, start, end)
}

func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE account_id = $1 ORDER BY txn_date DESC, transaction_id;`
	return r.queryTransactions(ctx, query, accountID)
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txns := make([]domain.Transaction, 0)
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transaction rows: %w", err)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) SubscribeTransactions(ctx context.Context) (<-chan []domain.Transaction, error) {
	return watch(ctx, r.notifier, tableTransactions, r.ListTransactions)
}
