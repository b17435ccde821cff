package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/andriybobchuk/mooney/internal/apperrors"
	"github.com/andriybobchuk/mooney/internal/core/domain"
	portsrepo "github.com/andriybobchuk/mooney/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	BaseRepository
	notifier *changeNotifier
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool, notifier *changeNotifier) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}, notifier: notifier}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.AccountID, &a.Title, &a.CurrencyCode, &a.Balance, &a.OpeningBalance, &a.Emoji)
	return a, err
}

const accountColumns = `account_id, title, currency_code, balance, opening_balance, emoji`

// SaveAccount inserts a new account or overwrites an existing one by ID.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (account_id, title, currency_code, balance, opening_balance, emoji)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (account_id) DO UPDATE SET
			title = EXCLUDED.title,
			currency_code = EXCLUDED.currency_code,
			balance = EXCLUDED.balance,
			opening_balance = EXCLUDED.opening_balance,
			emoji = EXCLUDED.emoji;
	`
	_, err := r.Pool.Exec(ctx, query,
		account.AccountID,
		account.Title,
		string(account.CurrencyCode),
		account.Balance,
		account.OpeningBalance,
		account.Emoji,
	)
	if err != nil {
		return fmt.Errorf("failed to save account %s: %w", account.AccountID, err)
	}

	r.notifier.notify(tableAccounts)
	return nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	account, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return &account, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY title;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read account rows: %w", err)
	}
	return accounts, nil
}

// UpdateAccountBalance sets an account's balance and opening balance outside
// of any reconciliation; used by the balance audit.
func (r *PgxAccountRepository) UpdateAccountBalance(ctx context.Context, accountID string, balance, openingBalance decimal.Decimal) error {
	query := `UPDATE accounts SET balance = $2, opening_balance = $3 WHERE account_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, accountID, balance, openingBalance)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}

	r.notifier.notify(tableAccounts)
	return nil
}

func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	query := `DELETE FROM accounts WHERE account_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	if tag.RowsAffected() > 0 {
		r.notifier.notify(tableAccounts)
	}
	return nil
}

func (r *PgxAccountRepository) SubscribeAccounts(ctx context.Context) (<-chan []domain.Account, error) {
	return watch(ctx, r.notifier, tableAccounts, r.ListAccounts)
}
