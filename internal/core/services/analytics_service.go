package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/andriybobchuk/mooney/internal/core/domain"
	portsrepo "github.com/andriybobchuk/mooney/internal/core/ports/repositories"
	portssvc "github.com/andriybobchuk/mooney/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// analyticsService builds the monthly financial report: it converts the
// month's transactions to the base currency, runs the metric calculator
// chain and rolls expenses up to general categories.
type analyticsService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
	categories      *domain.CategorySet
	rates           domain.ExchangeRates
	calculators     []MetricCalculator
}

// NewAnalyticsService creates the read-side financial projection over the
// given store. The calculator chain is fixed at construction time.
func NewAnalyticsService(transactionRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, categories *domain.CategorySet, rates domain.ExchangeRates, calculators []MetricCalculator) portssvc.AnalyticsSvcFacade {
	return &analyticsService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categories:      categories,
		rates:           rates,
		calculators:     calculators,
	}
}

// Ensure analyticsService implements the AnalyticsSvcFacade interface
var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

func (s *analyticsService) MonthlyReport(ctx context.Context, month domain.MonthKey) (*domain.MonthlyReport, error) {
	txns, err := s.transactionRepo.ListTransactionsByDateRange(ctx, month.FirstDay(), month.FirstDayOfNextMonth())
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	currencyByAccount := make(map[string]domain.Currency, len(accounts))
	for _, a := range accounts {
		currencyByAccount[a.AccountID] = a.CurrencyCode
	}

	entries := s.convertEntries(ctx, txns, currencyByAccount)

	revenue := decimal.Zero
	for _, e := range entries {
		if e.RootType == domain.Income {
			revenue = revenue.Add(e.Amount)
		}
	}

	mc := MetricContext{
		Month:   month,
		Base:    s.rates.Base,
		Revenue: revenue,
		Entries: entries,
	}
	metrics := make([]domain.AnalyticsMetric, 0, len(s.calculators))
	for _, calculate := range s.calculators {
		metrics = append(metrics, calculate(mc))
	}

	return &domain.MonthlyReport{
		Month:         month,
		TotalRevenue:  revenue,
		Metrics:       metrics,
		TopCategories: s.rollupExpenses(entries),
		Transactions:  txns,
	}, nil
}

// convertEntries resolves each transaction's category and account currency
// and converts its amount to the base currency. Transactions with broken
// references or an unconvertible currency are excluded with a warning, never
// an error: the report degrades instead of failing.
func (s *analyticsService) convertEntries(ctx context.Context, txns []domain.Transaction, currencyByAccount map[string]domain.Currency) []LedgerEntry {
	entries := make([]LedgerEntry, 0, len(txns))
	for _, txn := range txns {
		category, ok := s.categories.ByID(txn.CategoryID)
		if !ok {
			s.LogWarn(ctx, "Excluding transaction with unknown category from report",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("category_id", txn.CategoryID))
			continue
		}
		currency, ok := currencyByAccount[txn.AccountID]
		if !ok {
			s.LogWarn(ctx, "Excluding transaction with unknown account from report",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("account_id", txn.AccountID))
			continue
		}
		converted, err := s.rates.Convert(txn.Amount, currency, s.rates.Base)
		if err != nil {
			s.LogWarn(ctx, "Excluding transaction with unconvertible currency from report",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("currency", string(currency)))
			continue
		}
		entries = append(entries, LedgerEntry{
			Transaction: txn,
			Category:    category,
			RootType:    category.Root().Type,
			Amount:      converted,
		})
	}
	return entries
}

// rollupExpenses groups expense entries by their general category, sums the
// converted amounts and sorts descending. Percentages are taken over the
// total of all expenses in the window.
func (s *analyticsService) rollupExpenses(entries []LedgerEntry) []domain.CategorySummary {
	totals := make(map[string]decimal.Decimal)
	generals := make(map[string]*domain.Category)
	expenseTotal := decimal.Zero

	for _, e := range entries {
		if e.RootType != domain.Expense {
			continue
		}
		general := e.Category.General()
		totals[general.ID] = totals[general.ID].Add(e.Amount)
		generals[general.ID] = general
		expenseTotal = expenseTotal.Add(e.Amount)
	}

	summaries := make([]domain.CategorySummary, 0, len(totals))
	for id, amount := range totals {
		general := generals[id]
		percentage := domain.FormatPercent(amount, expenseTotal)
		if percentage != "–" {
			percentage += "%"
		}
		summaries = append(summaries, domain.CategorySummary{
			CategoryID: id,
			Title:      general.Title,
			Emoji:      general.ResolveEmoji(),
			Amount:     amount,
			Formatted:  domain.FormatAmount(amount, s.rates.Base),
			Percentage: percentage,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Amount.Equal(summaries[j].Amount) {
			return summaries[i].Title < summaries[j].Title
		}
		return summaries[i].Amount.GreaterThan(summaries[j].Amount)
	})
	return summaries
}
