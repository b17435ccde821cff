package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction records a single categorized spend or income against an
// account. Amount is a positive magnitude; its sign on the account balance
// is derived from the root type of the referenced category. The currency is
// implied by the referenced account. Date is a calendar day with no
// time-of-day component.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	CategoryID    string          `json:"categoryID"`
	AccountID     string          `json:"accountID"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
}
