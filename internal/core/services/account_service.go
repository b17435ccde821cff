package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/andriybobchuk/mooney/internal/apperrors"
	"github.com/andriybobchuk/mooney/internal/core/domain"
	portsrepo "github.com/andriybobchuk/mooney/internal/core/ports/repositories"
	portssvc "github.com/andriybobchuk/mooney/internal/core/ports/services"
	"github.com/andriybobchuk/mooney/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	rates       domain.ExchangeRates
}

// NewAccountService creates a new instance of the account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, rates domain.ExchangeRates) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo, rates: rates}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	currency := domain.Currency(req.CurrencyCode)
	if !s.rates.Has(currency) {
		return nil, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, req.CurrencyCode)
	}

	account := domain.Account{
		AccountID:    uuid.NewString(),
		Title:        req.Title,
		CurrencyCode: currency,
		Balance:      req.Balance,
		// The starting balance anchors future balance recomputation.
		OpeningBalance: req.Balance,
		Emoji:          req.Emoji,
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("title", req.Title))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("currency", string(account.CurrencyCode)))
	return &account, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		account.Title = *req.Title
	}
	if req.Emoji != nil {
		account.Emoji = *req.Emoji
	}
	if req.Balance != nil {
		// A manual balance edit shifts the opening balance by the same
		// amount, so reconciliation keeps treating the edit as ground truth.
		shift := req.Balance.Sub(account.Balance)
		account.Balance = *req.Balance
		account.OpeningBalance = account.OpeningBalance.Add(shift)
	}

	if err := s.accountRepo.SaveAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}

// NetWorth converts every account balance into the selected currency and
// sums them. Accounts holding a currency without a configured rate fail the
// whole query rather than silently under-reporting.
func (s *accountService) NetWorth(ctx context.Context, selected domain.Currency) (decimal.Decimal, error) {
	if !s.rates.Has(selected) {
		return decimal.Zero, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, selected)
	}

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, account := range accounts {
		converted, err := s.rates.Convert(account.Balance, account.CurrencyCode, selected)
		if err != nil {
			if errors.Is(err, apperrors.ErrMissingRate) {
				s.LogError(ctx, err, "Account currency has no exchange rate",
					slog.String("account_id", account.AccountID),
					slog.String("currency", string(account.CurrencyCode)))
			}
			return decimal.Zero, err
		}
		total = total.Add(converted)
	}
	return total, nil
}
