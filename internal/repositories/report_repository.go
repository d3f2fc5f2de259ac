package repositories

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"spendtrack-client/internal/models"
)

// reportRepository implements ReportRepositoryInterface over the backend's
// server-computed reporting endpoints.
type reportRepository struct {
	client *RESTClient
}

// NewReportRepository creates a new report repository
func NewReportRepository(client *RESTClient) ReportRepositoryInterface {
	return &reportRepository{
		client: client,
	}
}

// GetAnalytics retrieves the period-scoped analytics snapshot: summary,
// category breakdown, insights and recent transactions.
func (r *reportRepository) GetAnalytics(ctx context.Context, userID, period string, filters models.TransactionFilters) (*models.AnalyticsReport, error) {
	report := &models.AnalyticsReport{}
	path := "/transactions/analytics/" + url.PathEscape(userID)
	query := filters.ToQuery()
	query.Set("period", period)
	if err := r.client.getJSON(ctx, path, query, report); err != nil {
		return nil, fmt.Errorf("failed to get analytics: %w", err)
	}
	return report, nil
}

// GetMonthlyReport retrieves the per-month breakdown for one year.
func (r *reportRepository) GetMonthlyReport(ctx context.Context, userID string, year int) ([]models.MonthlyReportRow, error) {
	var rows []models.MonthlyReportRow
	path := fmt.Sprintf("/transactions/monthly-report/%s/%d", url.PathEscape(userID), year)
	if err := r.client.getJSON(ctx, path, nil, &rows); err != nil {
		return nil, fmt.Errorf("failed to get monthly report: %w", err)
	}
	return rows, nil
}

// GetCategorySummary retrieves per-category aggregates for a date range.
// The endpoint takes calendar dates, not instants.
func (r *reportRepository) GetCategorySummary(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.CategorySummary, error) {
	var summaries []models.CategorySummary
	path := "/transactions/category-summary/" + url.PathEscape(userID)
	query := url.Values{}
	query.Set("startDate", startDate.Format("2006-01-02"))
	query.Set("endDate", endDate.Format("2006-01-02"))
	if err := r.client.getJSON(ctx, path, query, &summaries); err != nil {
		return nil, fmt.Errorf("failed to get category summary: %w", err)
	}
	return summaries, nil
}

// GetTopCategories retrieves the highest-spend categories.
func (r *reportRepository) GetTopCategories(ctx context.Context, userID string, limit int) ([]models.CategorySummary, error) {
	var categories []models.CategorySummary
	path := "/transactions/top-categories/" + url.PathEscape(userID)
	if err := r.client.getJSON(ctx, path, limitQuery(limit), &categories); err != nil {
		return nil, fmt.Errorf("failed to get top categories: %w", err)
	}
	return categories, nil
}

// GetRecent retrieves the user's most recent transactions.
func (r *reportRepository) GetRecent(ctx context.Context, userID string, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	path := "/transactions/recent/" + url.PathEscape(userID)
	if err := r.client.getJSON(ctx, path, limitQuery(limit), &transactions); err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return transactions, nil
}

func limitQuery(limit int) url.Values {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	return query
}
