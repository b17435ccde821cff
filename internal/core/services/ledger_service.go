package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/andriybobchuk/mooney/internal/apperrors"
	"github.com/andriybobchuk/mooney/internal/core/domain"
	portsrepo "github.com/andriybobchuk/mooney/internal/core/ports/repositories"
	portssvc "github.com/andriybobchuk/mooney/internal/core/ports/services"
	"github.com/andriybobchuk/mooney/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ledgerService keeps each account's stored balance equal to its opening
// balance plus the net signed effect of the transactions referencing it.
//
// Every mutation computes its balance deltas up front (reverse the old
// effect, apply the new one) and hands row + deltas to a single repository
// call, so a crash can never leave the transaction row and the account
// balances disagreeing.
type ledgerService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
	categories      *domain.CategorySet
	now             func() time.Time
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerClock overrides the clock used for defaulted transaction dates.
func WithLedgerClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates the reconciliation engine over the given store
// and the preloaded category tree.
func NewLedgerService(transactionRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, categories *domain.CategorySet, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categories:      categories,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) UpsertTransaction(ctx context.Context, req dto.UpsertTransactionRequest) (*domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
	}

	date := req.Date
	if date.IsZero() {
		date = s.now()
	}
	txn := domain.Transaction{
		TransactionID: req.TransactionID,
		CategoryID:    req.CategoryID,
		AccountID:     req.AccountID,
		Amount:        req.Amount,
		Date:          domain.DayOf(date),
	}

	deltas := make(map[string]decimal.Decimal)

	// 1. If updating, reverse the prior version's effect on whatever account
	// and category it referenced at the time.
	if txn.TransactionID == "" {
		txn.TransactionID = uuid.NewString()
	} else {
		existing, err := s.transactionRepo.FindTransactionByID(ctx, txn.TransactionID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up existing transaction: %w", err)
		}
		if existing != nil {
			if err := s.accumulateEffect(ctx, deltas, *existing, true); err != nil {
				return nil, err
			}
		}
	}

	// 2. Apply the incoming version's effect.
	if err := s.accumulateEffect(ctx, deltas, txn, false); err != nil {
		return nil, err
	}

	// 3. Persist the row and the balance deltas in one store transaction.
	if err := s.transactionRepo.SaveTransaction(ctx, txn, deltas); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction upserted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", txn.AccountID),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	existing, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Deleting an unknown transaction is a benign no-op.
			return nil
		}
		return fmt.Errorf("failed to look up transaction: %w", err)
	}

	deltas := make(map[string]decimal.Decimal)
	if err := s.accumulateEffect(ctx, deltas, *existing, true); err != nil {
		return err
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID, deltas); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction",
			slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *ledgerService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

func (s *ledgerService) ListTransactionsForMonth(ctx context.Context, month domain.MonthKey) ([]domain.Transaction, error) {
	return s.transactionRepo.ListTransactionsByDateRange(ctx, month.FirstDay(), month.FirstDayOfNextMonth())
}

// RecomputeBalances rebuilds every account balance from its opening balance
// and the signed sum of its current transactions. Ground-truth repair for
// balances that drifted through unresolved references.
func (s *ledgerService) RecomputeBalances(ctx context.Context) error {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}

	for _, account := range accounts {
		txns, err := s.transactionRepo.ListTransactionsByAccount(ctx, account.AccountID)
		if err != nil {
			return fmt.Errorf("failed to list transactions for account %s: %w", account.AccountID, err)
		}

		balance := account.OpeningBalance
		for _, txn := range txns {
			effect, ok := s.signedEffect(txn)
			if !ok {
				s.LogWarn(ctx, "Skipping transaction with unresolvable category during recompute",
					slog.String("transaction_id", txn.TransactionID),
					slog.String("category_id", txn.CategoryID))
				continue
			}
			balance = balance.Add(effect)
		}

		if err := s.accountRepo.UpdateAccountBalance(ctx, account.AccountID, balance, account.OpeningBalance); err != nil {
			return fmt.Errorf("failed to write recomputed balance for account %s: %w", account.AccountID, err)
		}
		s.LogInfo(ctx, "Account balance recomputed",
			slog.String("account_id", account.AccountID),
			slog.String("balance", balance.String()))
	}
	return nil
}

// signedEffect resolves the amount a transaction adds to its account's
// balance: negative for EXPENSE-rooted categories, positive for INCOME.
func (s *ledgerService) signedEffect(txn domain.Transaction) (decimal.Decimal, bool) {
	rootType, ok := s.categories.RootType(txn.CategoryID)
	if !ok {
		return decimal.Zero, false
	}
	if rootType == domain.Expense {
		return txn.Amount.Neg(), true
	}
	return txn.Amount, true
}

// accumulateEffect folds one transaction's balance effect into the delta
// map, negated when reversing. An unresolvable category or account skips
// the effect with a warning instead of failing: partially missing reference
// data must not block the transaction itself from persisting.
func (s *ledgerService) accumulateEffect(ctx context.Context, deltas map[string]decimal.Decimal, txn domain.Transaction, reverse bool) error {
	effect, ok := s.signedEffect(txn)
	if !ok {
		s.LogWarn(ctx, "Category not resolvable, skipping balance effect",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("category_id", txn.CategoryID))
		return nil
	}

	if _, err := s.accountRepo.FindAccountByID(ctx, txn.AccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Account not resolvable, skipping balance effect",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("account_id", txn.AccountID))
			return nil
		}
		return fmt.Errorf("failed to resolve account %s: %w", txn.AccountID, err)
	}

	if reverse {
		effect = effect.Neg()
	}
	deltas[txn.AccountID] = deltas[txn.AccountID].Add(effect)
	return nil
}
