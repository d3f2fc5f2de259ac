package validation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"spendtrack-client/internal/models"
)

type TransactionRulesTestSuite struct {
	suite.Suite
}

func TestTransactionRulesSuite(t *testing.T) {
	suite.Run(t, new(TransactionRulesTestSuite))
}

func (s *TransactionRulesTestSuite) validInput() models.TransactionInput {
	return models.TransactionInput{
		UserID:   "user_123",
		Title:    "Groceries at the market",
		Amount:   "42.50",
		Category: models.CategoryFoodDrinks,
	}
}

func (s *TransactionRulesTestSuite) TestValidInputs() {
	testCases := []struct {
		name     string
		title    string
		amount   string
		category string
	}{
		{"plain expense", "Lunch", "12.90", models.CategoryFoodDrinks},
		{"whole amount", "Salary", "2500", models.CategoryIncome},
		{"one decimal place", "Bus ticket", "3.5", models.CategoryTransportation},
		{"minimum amount", "Candy", "0.01", models.CategoryOther},
		{"maximum amount", "House payment", "999999.99", models.CategoryBills},
		{"title at limit", strings.Repeat("a", 100), "10", models.CategoryShopping},
		{"title padded with spaces", "  Cinema  ", "15.00", models.CategoryEntertainment},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			input := models.TransactionInput{
				UserID:   "user_123",
				Title:    tc.title,
				Amount:   tc.amount,
				Category: tc.category,
			}
			s.Empty(ValidateTransactionInput(input))
		})
	}
}

func (s *TransactionRulesTestSuite) TestTitleErrors() {
	testCases := []struct {
		name     string
		title    string
		expected string
	}{
		{"empty title", "", "Transaction title is required"},
		{"whitespace title", "   ", "Transaction title is required"},
		{"title too long", strings.Repeat("a", 101), "Transaction title must not exceed 100 characters"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			input := s.validInput()
			input.Title = tc.title
			errs := ValidateTransactionInput(input)
			s.Require().Len(errs, 1)
			s.Equal(tc.expected, errs[0])
		})
	}
}

func (s *TransactionRulesTestSuite) TestAmountErrors() {
	testCases := []struct {
		name     string
		amount   string
		expected string
	}{
		{"empty amount", "", "Amount is required"},
		{"whitespace amount", "  ", "Amount is required"},
		{"not a number", "abc", "Please enter a valid numeric amount"},
		{"zero amount", "0", "Amount must be greater than 0"},
		{"negative amount", "-5", "Amount must be greater than 0"},
		{"above ceiling", "1000000", "Amount cannot exceed $999,999.99"},
		{"three decimal places", "12.345", "Amount can only have up to 2 decimal places"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			input := s.validInput()
			input.Amount = tc.amount
			errs := ValidateTransactionInput(input)
			s.Require().Len(errs, 1)
			s.Equal(tc.expected, errs[0])
		})
	}
}

func (s *TransactionRulesTestSuite) TestCategoryError() {
	input := s.validInput()
	input.Category = "  "
	errs := ValidateTransactionInput(input)
	s.Require().Len(errs, 1)
	s.Equal("Please select a category", errs[0])
}

func (s *TransactionRulesTestSuite) TestErrorOrdering() {
	// all fields invalid: title check reports before amount, amount before category
	input := models.TransactionInput{}
	errs := ValidateTransactionInput(input)
	s.Require().Len(errs, 3)
	s.Equal("Transaction title is required", errs[0])
	s.Equal("Amount is required", errs[1])
	s.Equal("Please select a category", errs[2])
}

func (s *TransactionRulesTestSuite) TestIdempotent() {
	input := s.validInput()
	input.Amount = "12.345"

	first := ValidateTransactionInput(input)
	second := ValidateTransactionInput(input)
	s.Equal(first, second)
}

func (s *TransactionRulesTestSuite) TestNormalizedAmount() {
	testCases := []struct {
		name      string
		amount    string
		isExpense bool
		expected  string
	}{
		{"expense becomes negative", "50.00", true, "-50"},
		{"income stays positive", "50.00", false, "50"},
		{"expense input already negative", "-50.00", true, "-50"},
		{"income input already negative", "-50.00", false, "50"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			amount, err := NormalizedAmount(tc.amount, tc.isExpense)
			s.Require().NoError(err)
			s.True(amount.Equal(decimal.RequireFromString(tc.expected)),
				"expected %s, got %s", tc.expected, amount.String())
		})
	}
}
