package repositories

import (
	"context"
	"time"

	"spendtrack-client/internal/dto"
	"spendtrack-client/internal/models"
)

// TransactionRepositoryInterface defines the contract for transaction data access
type TransactionRepositoryInterface interface {
	GetByUserID(ctx context.Context, userID string, filters models.TransactionFilters) ([]models.Transaction, error)
	GetByMonth(ctx context.Context, userID string, year, month int) ([]models.Transaction, error)
	GetByCategory(ctx context.Context, userID, category string) ([]models.Transaction, error)
	GetByDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.Transaction, error)
	GetSummary(ctx context.Context, userID string, filters models.TransactionFilters) (*models.Summary, error)
	Create(ctx context.Context, req *dto.CreateTransactionRequest) error
	Delete(ctx context.Context, id string) error
}

// ReportRepositoryInterface defines the contract for server-computed report access
type ReportRepositoryInterface interface {
	GetAnalytics(ctx context.Context, userID, period string, filters models.TransactionFilters) (*models.AnalyticsReport, error)
	GetMonthlyReport(ctx context.Context, userID string, year int) ([]models.MonthlyReportRow, error)
	GetCategorySummary(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.CategorySummary, error)
	GetTopCategories(ctx context.Context, userID string, limit int) ([]models.CategorySummary, error)
	GetRecent(ctx context.Context, userID string, limit int) ([]models.Transaction, error)
}
