package services

import (
	"context"
	"time"

	"spendtrack-client/internal/models"
)

// TransactionDataServiceInterface is the contract the UI layer programs
// against: load, create and delete operations over one user's transactions,
// independent report fetches, and snapshot accessors for the held state.
type TransactionDataServiceInterface interface {
	// LoadTransactions refreshes the transaction list and summary together.
	LoadTransactions(ctx context.Context, filters models.TransactionFilters) error

	// CreateTransaction validates, persists and reloads.
	CreateTransaction(ctx context.Context, input models.TransactionInput) error

	// DeleteTransaction removes one transaction and reloads on success.
	// Callers must have obtained explicit user confirmation first; deletion
	// is irreversible.
	DeleteTransaction(ctx context.Context, id string) error

	// Independent report reads. None of them touch the list/summary state.
	FetchAnalytics(ctx context.Context, period string, filters models.TransactionFilters) (*models.AnalyticsReport, error)
	FetchMonthlyReport(ctx context.Context, year int) ([]models.MonthlyReportRow, error)
	FetchCategoryReport(ctx context.Context, startDate, endDate time.Time) ([]models.CategorySummary, error)
	FetchTopCategories(ctx context.Context, limit int) ([]models.CategorySummary, error)
	FetchRecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error)
	FetchTransactionsByMonth(ctx context.Context, year, month int) ([]models.Transaction, error)
	FetchTransactionsByCategory(ctx context.Context, category string) ([]models.Transaction, error)
	FetchTransactionsByDateRange(ctx context.Context, startDate, endDate time.Time) ([]models.Transaction, error)

	// Snapshot accessors for the state the UI renders from.
	Transactions() []models.Transaction
	Summary() models.Summary
	Analytics() *models.AnalyticsReport
	MonthlyReport() []models.MonthlyReportRow
	CategoryReport() []models.CategorySummary
	IsLoading() bool
}

// MetricsRecorderInterface abstracts metrics collection for the data client
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}
