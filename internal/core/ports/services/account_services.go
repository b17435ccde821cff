package services

import (
	"context"

	"github.com/andriybobchuk/mooney/internal/core/domain"
	"github.com/andriybobchuk/mooney/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data.
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// NetWorth sums every account balance converted into the selected
	// currency.
	NetWorth(ctx context.Context, selected domain.Currency) (decimal.Decimal, error)
}

// AccountWriterSvc defines write operations for account data.
type AccountWriterSvc interface {
	// CreateAccount persists a new account with its starting balance.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount updates an account; an explicit balance edit re-anchors
	// the opening balance so reconciliation stays consistent.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
