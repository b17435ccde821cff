package services

import (
	"strings"

	"github.com/andriybobchuk/mooney/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerEntry is one transaction enriched for aggregation: the resolved
// category node, its root type and the amount converted to base currency.
type LedgerEntry struct {
	Transaction domain.Transaction
	Category    *domain.Category
	RootType    domain.CategoryType
	Amount      decimal.Decimal
}

// MetricContext is the window snapshot every metric calculator receives:
// the month, the base currency, the pre-computed revenue total and the
// converted entries.
type MetricContext struct {
	Month   domain.MonthKey
	Base    domain.Currency
	Revenue decimal.Decimal
	Entries []LedgerEntry
}

// MetricCalculator turns a window snapshot into one labeled report metric.
// Calculators never fail; empty windows degrade to zero values and a "–"
// subtitle.
type MetricCalculator func(MetricContext) domain.AnalyticsMetric

// StandardCalculators is the metric chain the monthly report runs, in
// display order. The burn rate metric is opt-in.
func StandardCalculators(enableBurnRate bool) []MetricCalculator {
	calculators := []MetricCalculator{
		RevenueCalculator,
		TaxesCalculator,
		OperatingCostsCalculator,
		NetIncomeCalculator,
	}
	if enableBurnRate {
		calculators = append(calculators, BurnRateCalculator)
	}
	return calculators
}

// RevenueCalculator reports the window's income total.
func RevenueCalculator(mc MetricContext) domain.AnalyticsMetric {
	return domain.AnalyticsMetric{
		Title: "Revenue",
		Value: domain.FormatAmount(mc.Revenue, mc.Base),
	}
}

// TaxesCalculator reports the sum of tax-titled entries (ZUS, PIT).
func TaxesCalculator(mc MetricContext) domain.AnalyticsMetric {
	return domain.AnalyticsMetric{
		Title:    "Taxes",
		Value:    domain.FormatAmount(taxTotal(mc.Entries), mc.Base),
		Subtitle: percentOfRevenue(taxTotal(mc.Entries), mc.Revenue),
	}
}

// OperatingCostsCalculator reports expense entries excluding taxes.
func OperatingCostsCalculator(mc MetricContext) domain.AnalyticsMetric {
	costs := operatingCostTotal(mc.Entries)
	return domain.AnalyticsMetric{
		Title:    "Operating Costs",
		Value:    domain.FormatAmount(costs, mc.Base),
		Subtitle: percentOfRevenue(costs, mc.Revenue),
	}
}

// NetIncomeCalculator reports revenue minus taxes minus operating costs.
func NetIncomeCalculator(mc MetricContext) domain.AnalyticsMetric {
	net := mc.Revenue.Sub(taxTotal(mc.Entries)).Sub(operatingCostTotal(mc.Entries))
	return domain.AnalyticsMetric{
		Title:    "Net Income",
		Value:    domain.FormatAmount(net, mc.Base),
		Subtitle: percentOfRevenue(net, mc.Revenue),
	}
}

// BurnRateCalculator reports operating costs spread over a fixed 30-day
// month.
func BurnRateCalculator(mc MetricContext) domain.AnalyticsMetric {
	rate := operatingCostTotal(mc.Entries).Div(decimal.NewFromInt(30))
	return domain.AnalyticsMetric{
		Title:    "Burn Rate",
		Value:    domain.FormatAmount(rate, mc.Base),
		Subtitle: "per day",
	}
}

// isTaxEntry matches entries whose category title names a Polish tax or
// social-security payment.
func isTaxEntry(e LedgerEntry) bool {
	title := strings.ToLower(e.Category.Title)
	return strings.Contains(title, "zus") || strings.Contains(title, "pit")
}

func taxTotal(entries []LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if isTaxEntry(e) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

func operatingCostTotal(entries []LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.RootType == domain.Expense && !isTaxEntry(e) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

func percentOfRevenue(part, revenue decimal.Decimal) string {
	p := domain.FormatPercent(part, revenue)
	if p == "–" {
		return p
	}
	return p + "% of revenue"
}
