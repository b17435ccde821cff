package dto

import (
	"time"

	"github.com/andriybobchuk/mooney/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertTransactionRequest defines the data needed to create or edit a
// transaction. An empty TransactionID means insert with a fresh ID; a known
// TransactionID overwrites that transaction, reconciling balances.
type UpsertTransactionRequest struct {
	TransactionID string          `json:"transactionID"`
	CategoryID    string          `json:"categoryID" binding:"required"`
	AccountID     string          `json:"accountID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          time.Time       `json:"date" time_format:"2006-01-02"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	CategoryID    string          `json:"categoryID"`
	AccountID     string          `json:"accountID"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		CategoryID:    txn.CategoryID,
		AccountID:     txn.AccountID,
		Amount:        txn.Amount,
		Date:          txn.Date.Format("2006-01-02"),
	}
}

// ToListTransactionResponse converts a slice of transactions to DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
