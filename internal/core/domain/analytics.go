package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsMetric is one labeled value in the monthly financial report,
// produced by a metric calculator.
type AnalyticsMetric struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Subtitle string `json:"subtitle,omitempty"`
}

// CategorySummary is one row of the expense rollup: a general category with
// its converted total and its share of all expenses in the window.
type CategorySummary struct {
	CategoryID string          `json:"categoryID"`
	Title      string          `json:"title"`
	Emoji      string          `json:"emoji"`
	Amount     decimal.Decimal `json:"amount"`
	Formatted  string          `json:"formatted"`
	Percentage string          `json:"percentage"`
}

// MonthlyReport is the read-side projection for one calendar month: total
// revenue in the base currency, the calculator metrics and the expense
// rollup, over the month's transactions.
type MonthlyReport struct {
	Month         MonthKey          `json:"month"`
	TotalRevenue  decimal.Decimal   `json:"totalRevenue"`
	Metrics       []AnalyticsMetric `json:"metrics"`
	TopCategories []CategorySummary `json:"topCategories"`
	Transactions  []Transaction     `json:"transactions"`
}

// JobSummary is a per-job hour total within a single day, with the job's
// whole-number percentage of that day's hours.
type JobSummary struct {
	JobID      string  `json:"jobID"`
	JobName    string  `json:"jobName"`
	TotalHours float64 `json:"totalHours"`
	Percentage float64 `json:"percentage"`
}

// DailySummary is the per-day time breakdown: the day's blocks, total hours
// and per-job shares.
type DailySummary struct {
	Date         time.Time             `json:"date"`
	Blocks       []TimeBlock           `json:"blocks"`
	TotalHours   float64               `json:"totalHours"`
	JobBreakdown map[string]JobSummary `json:"jobBreakdown"`
}

// JobAnalytics is a per-job rollup over a whole window: totals, the daily
// average under the window's averaging policy, and the job's share of the
// window total.
type JobAnalytics struct {
	JobID             string  `json:"jobID"`
	JobName           string  `json:"jobName"`
	TotalHours        float64 `json:"totalHours"`
	AverageDailyHours float64 `json:"averageDailyHours"`
	Percentage        float64 `json:"percentage"`
}

// WeeklyAnalytics is the window-level time report: one DailySummary per day
// plus window totals, a daily average and a per-job breakdown. Whether the
// totals cover all days or working days only depends on which report
// produced it.
type WeeklyAnalytics struct {
	WeekStart         time.Time               `json:"weekStart"`
	WeekEnd           time.Time               `json:"weekEnd"`
	DailySummaries    []DailySummary          `json:"dailySummaries"`
	TotalHours        float64                 `json:"totalHours"`
	AverageDailyHours float64                 `json:"averageDailyHours"`
	JobBreakdown      map[string]JobAnalytics `json:"jobBreakdown"`
}

// FormatAmount renders a money amount for display with thousand separators
// and the currency symbol, e.g. "1,234.56 zł".
func FormatAmount(amount decimal.Decimal, currency Currency) string {
	return formatWithCommas(amount) + " " + currency.Symbol()
}

// FormatPercent renders part as a percentage of total with two decimals.
// Returns "–" when total is zero so callers never divide by zero.
func FormatPercent(part, total decimal.Decimal) string {
	if total.IsZero() {
		return "–"
	}
	return formatWithCommas(part.Div(total).Mul(decimal.NewFromInt(100)))
}

func formatWithCommas(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}
