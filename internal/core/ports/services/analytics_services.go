package services

import (
	"context"

	"github.com/andriybobchuk/mooney/internal/core/domain"
)

// AnalyticsSvcFacade is the read-side projection over transactions: monthly
// currency-normalized, category-rolled-up financial reports.
type AnalyticsSvcFacade interface {
	// MonthlyReport aggregates the month's transactions into revenue, the
	// metric calculator chain and the expense category rollup.
	MonthlyReport(ctx context.Context, month domain.MonthKey) (*domain.MonthlyReport, error)
}
