package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"spendtrack-client/internal/config"
	"spendtrack-client/internal/models"
	"spendtrack-client/internal/repositories"
)

// IntegrationTestSuite wires the full client stack (data client, REST
// repositories, HTTP transport) against an in-process fake backend.
type IntegrationTestSuite struct {
	suite.Suite
	backend *fakeBackend
	client  TransactionDataServiceInterface
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

// fakeBackend is a minimal in-memory rendition of the transactions API:
// the same routes, envelope and summary arithmetic the real server exposes.
type fakeBackend struct {
	transactions []models.Transaction
	nextID       int
}

func (b *fakeBackend) envelope(data interface{}) map[string]interface{} {
	return map[string]interface{}{
		"meta": map[string]string{"status": "success"},
		"data": data,
	}
}

func (b *fakeBackend) listHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, b.envelope(b.transactions))
}

func (b *fakeBackend) summaryHandler(c echo.Context) error {
	balance, income, expense := decimal.Zero, decimal.Zero, decimal.Zero
	for _, t := range b.transactions {
		balance = balance.Add(t.Amount)
		if t.Amount.IsNegative() {
			expense = expense.Add(t.Amount)
		} else {
			income = income.Add(t.Amount)
		}
	}
	return c.JSON(http.StatusOK, b.envelope(models.Summary{
		Balance: balance, Income: income, Expense: expense,
	}))
}

func (b *fakeBackend) createHandler(c echo.Context) error {
	var body struct {
		UserID   string          `json:"user_id"`
		Title    string          `json:"title"`
		Amount   decimal.Decimal `json:"amount"`
		Category string          `json:"category"`
	}
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "All fields are required"})
	}
	b.nextID++
	transaction := models.Transaction{
		ID:       fmt.Sprintf("t%d", b.nextID),
		UserID:   body.UserID,
		Title:    body.Title,
		Amount:   body.Amount,
		Category: body.Category,
	}
	b.transactions = append([]models.Transaction{transaction}, b.transactions...)
	return c.JSON(http.StatusCreated, b.envelope(transaction))
}

func (b *fakeBackend) deleteHandler(c echo.Context) error {
	id := c.Param("id")
	for i, t := range b.transactions {
		if t.ID == id {
			b.transactions = append(b.transactions[:i], b.transactions[i+1:]...)
			return c.NoContent(http.StatusNoContent)
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": "Transaction not found"})
}

func (s *IntegrationTestSuite) SetupTest() {
	s.backend = &fakeBackend{
		transactions: []models.Transaction{
			{ID: "income", UserID: "user_1", Title: "Salary", Amount: decimal.RequireFromString("100"), Category: models.CategoryIncome},
			{ID: "bill", UserID: "user_1", Title: "Power bill", Amount: decimal.RequireFromString("-40"), Category: models.CategoryBills},
		},
		nextID: 2,
	}

	e := echo.New()
	e.GET("/transactions/user/:userID", s.backend.listHandler)
	e.GET("/transactions/summary/:userID", s.backend.summaryHandler)
	e.POST("/transactions", s.backend.createHandler)
	e.DELETE("/transactions/:id", s.backend.deleteHandler)

	server := httptest.NewServer(e)
	s.T().Cleanup(server.Close)

	cfg := &config.Config{
		API:  config.APIConfig{BaseURL: server.URL, SessionToken: "session-token"},
		HTTP: config.HTTPConfig{UserAgent: "spendtrack-client-test"},
	}
	restClient := repositories.NewRESTClient(cfg, testLogger())
	s.client = NewDataClient("user_1",
		repositories.NewTransactionRepository(restClient),
		repositories.NewReportRepository(restClient),
		testLogger(), NewNoopMetrics())
}

func (s *IntegrationTestSuite) TestLoadComputesSummary() {
	s.Require().NoError(s.client.LoadTransactions(context.Background(), models.TransactionFilters{}))

	s.Len(s.client.Transactions(), 2)
	summary := s.client.Summary()
	s.True(summary.Income.Equal(decimal.RequireFromString("100")))
	s.True(summary.AbsExpense().Equal(decimal.RequireFromString("40")))
	s.True(summary.Balance.Equal(decimal.RequireFromString("60")))
}

func (s *IntegrationTestSuite) TestCreateIsObservedThroughReload() {
	err := s.client.CreateTransaction(context.Background(), models.TransactionInput{
		Title:     "Groceries",
		Amount:    "25.50",
		Category:  models.CategoryFoodDrinks,
		IsExpense: true,
	})
	s.Require().NoError(err)

	transactions := s.client.Transactions()
	s.Require().Len(transactions, 3)
	s.Equal("Groceries", transactions[0].Title)
	s.True(transactions[0].Amount.Equal(decimal.RequireFromString("-25.5")))
	s.True(s.client.Summary().Balance.Equal(decimal.RequireFromString("34.5")))
}

func (s *IntegrationTestSuite) TestDeleteIsObservedThroughReload() {
	s.Require().NoError(s.client.DeleteTransaction(context.Background(), "bill"))

	transactions := s.client.Transactions()
	s.Require().Len(transactions, 1)
	s.Equal("Salary", transactions[0].Title)
	s.True(s.client.Summary().Balance.Equal(decimal.RequireFromString("100")))
	s.True(s.client.Summary().AbsExpense().Equal(decimal.Zero))
}
