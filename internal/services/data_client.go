package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"spendtrack-client/internal/dto"
	apierrors "spendtrack-client/internal/errors"
	"spendtrack-client/internal/identity"
	"spendtrack-client/internal/models"
	"spendtrack-client/internal/repositories"
	"spendtrack-client/internal/validation"
)

// DataClient is the transaction data client bound to one user. It fetches
// the user's transactions and server-computed aggregates, holds the latest
// snapshot in memory for the UI to render, and performs validated mutations.
//
// The client holds no authoritative state: every successful mutation
// triggers a full reload from the server rather than a local patch.
type DataClient struct {
	userID     string
	txRepo     repositories.TransactionRepositoryInterface
	reportRepo repositories.ReportRepositoryInterface
	metrics    MetricsRecorderInterface
	logger     *slog.Logger

	mu             sync.Mutex
	transactions   []models.Transaction
	summary        models.Summary
	analytics      *models.AnalyticsReport
	monthlyReport  []models.MonthlyReportRow
	categoryReport []models.CategorySummary
	loading        int
	loadSeq        uint64
}

// NewDataClient creates a data client for the given user identifier. A nil
// logger falls back to slog.Default; a nil metrics recorder to a no-op.
func NewDataClient(
	userID string,
	txRepo repositories.TransactionRepositoryInterface,
	reportRepo repositories.ReportRepositoryInterface,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
) TransactionDataServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = NewNoopMetrics()
	}
	return &DataClient{
		userID:     userID,
		txRepo:     txRepo,
		reportRepo: reportRepo,
		metrics:    metrics,
		logger:     logger,
	}
}

// NewDataClientForSession creates a data client bound to the user an
// identity-provider session resolves to.
func NewDataClientForSession(
	session *identity.Session,
	txRepo repositories.TransactionRepositoryInterface,
	reportRepo repositories.ReportRepositoryInterface,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
) (TransactionDataServiceInterface, error) {
	if !session.Valid(time.Now()) {
		return nil, apierrors.New(apierrors.ClientInvalidSession)
	}
	return NewDataClient(session.UserID, txRepo, reportRepo, logger, metrics), nil
}

// LoadTransactions fetches the transaction list and the summary concurrently
// and installs both atomically before the loading flag clears. With no bound
// user it resolves immediately without touching the network or the held
// state. On any failure the previous snapshot stays intact and the error is
// returned for the UI to present.
//
// Overlapping loads are sequenced: each invocation takes a sequence number,
// and a completion that is no longer the latest issued load discards its
// result instead of overwriting newer state.
func (c *DataClient) LoadTransactions(ctx context.Context, filters models.TransactionFilters) error {
	if c.userID == "" {
		return nil
	}

	c.mu.Lock()
	c.loadSeq++
	seq := c.loadSeq
	c.loading++
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading--
		c.mu.Unlock()
	}()

	start := time.Now()

	var (
		transactions []models.Transaction
		summary      *models.Summary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if filters.IsMonthScoped() {
			month, year := filters.MonthYear(time.Now())
			transactions, err = c.txRepo.GetByMonth(gctx, c.userID, year, month)
		} else {
			transactions, err = c.txRepo.GetByUserID(gctx, c.userID, filters)
		}
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = c.txRepo.GetSummary(gctx, c.userID, filters)
		return err
	})

	if err := g.Wait(); err != nil {
		c.metrics.IncrementCounter("load.completed", map[string]string{"result": "failed"})
		c.logger.Error("failed to load transactions",
			"user_id", c.userID,
			"error", err)
		return err
	}

	c.metrics.RecordProcessingTime("load", time.Since(start))

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.loadSeq {
		c.metrics.IncrementCounter("load.stale_discarded", nil)
		c.logger.Debug("discarding stale load result",
			"user_id", c.userID,
			"load_seq", seq,
			"latest_seq", c.loadSeq)
		return nil
	}

	c.transactions = transactions
	c.summary = *summary
	c.metrics.IncrementCounter("load.completed", map[string]string{"result": "success"})

	c.logger.Info("transactions loaded",
		"user_id", c.userID,
		"count", len(transactions),
		"balance", summary.Balance.String())

	return nil
}

// CreateTransaction validates the form input, normalizes it and persists a
// new transaction. Validation failures surface before any network call, with
// the first rule failure as the presented message. On success the list and
// summary are reloaded; the created record is observed through that reload.
func (c *DataClient) CreateTransaction(ctx context.Context, input models.TransactionInput) error {
	if c.userID == "" {
		return nil
	}

	if validationErrors := validation.ValidateTransactionInput(input); len(validationErrors) > 0 {
		c.metrics.IncrementCounter("validation.rejected", map[string]string{"operation": "create"})
		return apierrors.NewValidationError(validationErrors)
	}

	amount, err := validation.NormalizedAmount(input.Amount, input.IsExpense)
	if err != nil {
		return apierrors.New(apierrors.ValidationAmountNotNumeric, apierrors.WithCause(err))
	}

	req := &dto.CreateTransactionRequest{
		UserID:   c.userID,
		Title:    strings.TrimSpace(input.Title),
		Amount:   amount,
		Category: strings.TrimSpace(input.Category),
	}
	if err := validation.GetValidator().Struct(req); err != nil {
		return apierrors.New(apierrors.ValidationGeneral, apierrors.WithCause(err))
	}

	if err := c.txRepo.Create(ctx, req); err != nil {
		c.metrics.IncrementCounter("mutation.completed", map[string]string{"operation": "create", "result": "failed"})
		c.logger.Error("failed to create transaction",
			"user_id", c.userID,
			"category", req.Category,
			"error", err)
		return fallbackAPIError(err, apierrors.APICreateFailed)
	}

	c.metrics.IncrementCounter("mutation.completed", map[string]string{"operation": "create", "result": "success"})
	c.logger.Info("transaction created",
		"user_id", c.userID,
		"category", req.Category,
		"amount", req.Amount.String())

	return c.LoadTransactions(ctx, models.TransactionFilters{})
}

// DeleteTransaction removes one transaction by identifier. On failure the
// held state is untouched and no reload happens. On success the list and
// summary are reloaded exactly once. Deletion is irreversible, so callers
// only invoke this after explicit user confirmation.
func (c *DataClient) DeleteTransaction(ctx context.Context, id string) error {
	if c.userID == "" {
		return nil
	}

	if err := c.txRepo.Delete(ctx, id); err != nil {
		c.metrics.IncrementCounter("mutation.completed", map[string]string{"operation": "delete", "result": "failed"})
		c.logger.Error("failed to delete transaction",
			"user_id", c.userID,
			"transaction_id", id,
			"error", err)
		return fallbackAPIError(err, apierrors.APIDeleteFailed)
	}

	c.metrics.IncrementCounter("mutation.completed", map[string]string{"operation": "delete", "result": "success"})
	c.logger.Info("transaction deleted",
		"user_id", c.userID,
		"transaction_id", id)

	return c.LoadTransactions(ctx, models.TransactionFilters{})
}

// FetchAnalytics retrieves the period-scoped analytics snapshot and caches
// it. The primary list/summary state is not affected.
func (c *DataClient) FetchAnalytics(ctx context.Context, period string, filters models.TransactionFilters) (*models.AnalyticsReport, error) {
	if c.userID == "" {
		return nil, nil
	}
	if !models.IsValidPeriod(period) {
		return nil, apierrors.New(apierrors.ClientInvalidPeriod,
			apierrors.WithMessage(fmt.Sprintf("invalid analytics period %q", period)))
	}

	report, err := c.reportRepo.GetAnalytics(ctx, c.userID, period, filters)
	if err != nil {
		c.recordReportFetch("analytics", err)
		return nil, err
	}
	c.recordReportFetch("analytics", nil)

	c.mu.Lock()
	c.analytics = report
	c.mu.Unlock()

	return report, nil
}

// FetchMonthlyReport retrieves the per-month breakdown for a year and
// caches it.
func (c *DataClient) FetchMonthlyReport(ctx context.Context, year int) ([]models.MonthlyReportRow, error) {
	if c.userID == "" {
		return nil, nil
	}

	rows, err := c.reportRepo.GetMonthlyReport(ctx, c.userID, year)
	if err != nil {
		c.recordReportFetch("monthly", err)
		return nil, err
	}
	c.recordReportFetch("monthly", nil)

	c.mu.Lock()
	c.monthlyReport = rows
	c.mu.Unlock()

	return rows, nil
}

// FetchCategoryReport retrieves per-category aggregates for a date range and
// caches them.
func (c *DataClient) FetchCategoryReport(ctx context.Context, startDate, endDate time.Time) ([]models.CategorySummary, error) {
	if c.userID == "" {
		return nil, nil
	}

	summaries, err := c.reportRepo.GetCategorySummary(ctx, c.userID, startDate, endDate)
	if err != nil {
		c.recordReportFetch("category", err)
		return nil, err
	}
	c.recordReportFetch("category", nil)

	c.mu.Lock()
	c.categoryReport = summaries
	c.mu.Unlock()

	return summaries, nil
}

// FetchTopCategories retrieves the highest-spend categories.
func (c *DataClient) FetchTopCategories(ctx context.Context, limit int) ([]models.CategorySummary, error) {
	if c.userID == "" {
		return nil, nil
	}
	categories, err := c.reportRepo.GetTopCategories(ctx, c.userID, limit)
	c.recordReportFetch("top_categories", err)
	return categories, err
}

// FetchRecentTransactions retrieves the most recent transactions.
func (c *DataClient) FetchRecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	if c.userID == "" {
		return nil, nil
	}
	transactions, err := c.reportRepo.GetRecent(ctx, c.userID, limit)
	c.recordReportFetch("recent", err)
	return transactions, err
}

// FetchTransactionsByMonth retrieves one calendar month of transactions
// without touching the held list.
func (c *DataClient) FetchTransactionsByMonth(ctx context.Context, year, month int) ([]models.Transaction, error) {
	if c.userID == "" {
		return nil, nil
	}
	return c.txRepo.GetByMonth(ctx, c.userID, year, month)
}

// FetchTransactionsByCategory retrieves one category's transactions without
// touching the held list.
func (c *DataClient) FetchTransactionsByCategory(ctx context.Context, category string) ([]models.Transaction, error) {
	if c.userID == "" {
		return nil, nil
	}
	return c.txRepo.GetByCategory(ctx, c.userID, category)
}

// FetchTransactionsByDateRange retrieves transactions between two instants
// without touching the held list.
func (c *DataClient) FetchTransactionsByDateRange(ctx context.Context, startDate, endDate time.Time) ([]models.Transaction, error) {
	if c.userID == "" {
		return nil, nil
	}
	return c.txRepo.GetByDateRange(ctx, c.userID, startDate, endDate)
}

// Transactions returns the held transaction list, ordered as the backend
// returned it (newest first by convention).
func (c *DataClient) Transactions() []models.Transaction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transactions
}

// Summary returns the held summary snapshot.
func (c *DataClient) Summary() models.Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.summary
}

// Analytics returns the held analytics snapshot, nil before the first fetch.
func (c *DataClient) Analytics() *models.AnalyticsReport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.analytics
}

// MonthlyReport returns the held monthly report snapshot.
func (c *DataClient) MonthlyReport() []models.MonthlyReportRow {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.monthlyReport
}

// CategoryReport returns the held category report snapshot.
func (c *DataClient) CategoryReport() []models.CategorySummary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.categoryReport
}

// IsLoading reports whether a combined list+summary load is in flight.
func (c *DataClient) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading > 0
}

func (c *DataClient) recordReportFetch(report string, err error) {
	result := "success"
	if err != nil {
		result = "failed"
	}
	c.metrics.IncrementCounter("report.fetched", map[string]string{"report": report, "result": result})
}

// fallbackAPIError substitutes the operation-specific fallback message when
// the backend rejected the request without a message of its own.
func fallbackAPIError(err error, code apierrors.ErrorCode) error {
	var e *apierrors.Error
	if errors.As(err, &e) &&
		e.Code == apierrors.APIRequestRejected &&
		e.Message == apierrors.GetErrorMessage(apierrors.APIRequestRejected) {
		return apierrors.New(code, apierrors.WithHTTPStatus(e.HTTPStatus), apierrors.WithCause(err))
	}
	return err
}
