package repositories

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"spendtrack-client/internal/dto"
	"spendtrack-client/internal/models"
)

// transactionRepository implements TransactionRepositoryInterface over the
// backend's REST transaction endpoints.
type transactionRepository struct {
	client *RESTClient
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(client *RESTClient) TransactionRepositoryInterface {
	return &transactionRepository{
		client: client,
	}
}

// GetByUserID retrieves the user's transactions, newest first, optionally
// constrained by the filter set.
func (r *transactionRepository) GetByUserID(ctx context.Context, userID string, filters models.TransactionFilters) ([]models.Transaction, error) {
	var transactions []models.Transaction
	path := "/transactions/user/" + url.PathEscape(userID)
	if err := r.client.getJSON(ctx, path, filters.ToQuery(), &transactions); err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// GetByMonth retrieves the user's transactions for one calendar month.
func (r *transactionRepository) GetByMonth(ctx context.Context, userID string, year, month int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	path := fmt.Sprintf("/transactions/user/%s/month/%d/%d", url.PathEscape(userID), year, month)
	if err := r.client.getJSON(ctx, path, nil, &transactions); err != nil {
		return nil, fmt.Errorf("failed to get monthly transactions: %w", err)
	}
	return transactions, nil
}

// GetByCategory retrieves the user's transactions for one category.
func (r *transactionRepository) GetByCategory(ctx context.Context, userID, category string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	path := fmt.Sprintf("/transactions/user/%s/category/%s", url.PathEscape(userID), url.PathEscape(category))
	if err := r.client.getJSON(ctx, path, nil, &transactions); err != nil {
		return nil, fmt.Errorf("failed to get transactions by category: %w", err)
	}
	return transactions, nil
}

// GetByDateRange retrieves the user's transactions between two instants.
func (r *transactionRepository) GetByDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	path := fmt.Sprintf("/transactions/user/%s/date-range", url.PathEscape(userID))
	query := url.Values{}
	query.Set("startDate", startDate.UTC().Format(time.RFC3339))
	query.Set("endDate", endDate.UTC().Format(time.RFC3339))
	if err := r.client.getJSON(ctx, path, query, &transactions); err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

// GetSummary retrieves the server-computed balance/income/expense aggregate,
// scoped by the same filter set as the list.
func (r *transactionRepository) GetSummary(ctx context.Context, userID string, filters models.TransactionFilters) (*models.Summary, error) {
	summary := &models.Summary{}
	path := "/transactions/summary/" + url.PathEscape(userID)
	if err := r.client.getJSON(ctx, path, filters.ToQuery(), summary); err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	return summary, nil
}

// Create persists a new transaction. The backend assigns the identifier and
// timestamp; callers observe the record through a subsequent list reload.
func (r *transactionRepository) Create(ctx context.Context, req *dto.CreateTransactionRequest) error {
	if err := r.client.postJSON(ctx, "/transactions", req, nil); err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// Delete removes a transaction by identifier.
func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.delete(ctx, "/transactions/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
