package dto

import (
	"github.com/andriybobchuk/mooney/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Title        string          `json:"title" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currencycode"`
	Balance      decimal.Decimal `json:"balance"`
	Emoji        string          `json:"emoji"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Title   *string          `json:"title"`
	Balance *decimal.Decimal `json:"balance"` // explicit balance edit; re-anchors the opening balance
	Emoji   *string          `json:"emoji"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID    string          `json:"accountID"`
	Title        string          `json:"title"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
	Emoji        string          `json:"emoji"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:    acc.AccountID,
		Title:        acc.Title,
		CurrencyCode: string(acc.CurrencyCode),
		Balance:      acc.Balance,
		Emoji:        acc.Emoji,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// NetWorthResponse defines the data returned for the net worth query.
type NetWorthResponse struct {
	Total        decimal.Decimal `json:"total"`
	CurrencyCode string          `json:"currencyCode"`
	Formatted    string          `json:"formatted"`
}
