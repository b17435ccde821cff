package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a money account (cash, card, ...) in a single currency.
//
// Balance is mutated only by the ledger service as transactions are posted,
// edited and deleted, or through an explicit account edit. OpeningBalance is
// the balance the account held before any transaction referenced it; it is
// the anchor used to recompute Balance from scratch during a balance audit.
type Account struct {
	AccountID      string          `json:"accountID"`
	Title          string          `json:"title"`
	CurrencyCode   Currency        `json:"currencyCode"`
	Balance        decimal.Decimal `json:"balance"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Emoji          string          `json:"emoji"`
}
