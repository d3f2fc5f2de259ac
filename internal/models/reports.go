package models

import "github.com/shopspring/decimal"

// Analytics periods accepted by the backend.
const (
	PeriodWeek    = "week"
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"
)

// IsValidPeriod checks if the period is one the analytics endpoint accepts.
func IsValidPeriod(period string) bool {
	switch period {
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return true
	default:
		return false
	}
}

// Insight advisory levels.
const (
	InsightPositive = "positive"
	InsightWarning  = "warning"
	InsightInfo     = "info"
)

// Insight is a typed advisory message computed by the backend for the
// analytics view.
type Insight struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// CategorySummary contains aggregated transaction data for one category.
// The same shape backs the analytics category breakdown, the yearly category
// report and the top-categories endpoint.
type CategorySummary struct {
	Category         string          `json:"category"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	TransactionCount int64           `json:"transactionCount"`
}

// AnalyticsReport is the period-scoped analytics snapshot: aggregate summary,
// per-category breakdown, advisory insights and a recent-transactions slice.
type AnalyticsReport struct {
	Summary            Summary           `json:"summary"`
	CategoryBreakdown  []CategorySummary `json:"categoryBreakdown"`
	Insights           []Insight         `json:"insights"`
	RecentTransactions []Transaction     `json:"recentTransactions"`
}

// MonthlyReportRow is one month of the yearly report. Month is 1-based;
// Expense may be reported negative by the backend, so consumers take the
// absolute value for display.
type MonthlyReportRow struct {
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Count   int64           `json:"count"`
	Balance decimal.Decimal `json:"balance"`
}
