package dto

import (
	"github.com/andriybobchuk/mooney/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyReportResponse defines the data returned for the monthly report.
type MonthlyReportResponse struct {
	Month         string                   `json:"month"`
	TotalRevenue  decimal.Decimal          `json:"totalRevenue"`
	Metrics       []domain.AnalyticsMetric `json:"metrics"`
	TopCategories []domain.CategorySummary `json:"topCategories"`
	Transactions  []TransactionResponse    `json:"transactions"`
}

// ToMonthlyReportResponse converts a domain.MonthlyReport to its DTO.
func ToMonthlyReportResponse(r *domain.MonthlyReport) MonthlyReportResponse {
	return MonthlyReportResponse{
		Month:         r.Month.String(),
		TotalRevenue:  r.TotalRevenue,
		Metrics:       r.Metrics,
		TopCategories: r.TopCategories,
		Transactions:  ToListTransactionResponse(r.Transactions),
	}
}
