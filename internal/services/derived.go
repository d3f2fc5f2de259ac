package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"spendtrack-client/internal/models"
)

// Derived-view helpers. All of them are pure: they operate only on
// already-loaded in-memory data and never touch the network. An empty
// transaction list yields a zero/neutral result, never an error.

// ApplyFilters returns the transactions whose title or category contains the
// search query, case-insensitively. An empty or whitespace-only query is the
// identity: the input slice is returned unfiltered.
func ApplyFilters(transactions []models.Transaction, searchQuery string) []models.Transaction {
	query := strings.TrimSpace(searchQuery)
	if query == "" {
		return transactions
	}

	filtered := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.MatchesQuery(query) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// AverageTransaction returns the mean transaction magnitude rounded to a
// whole unit, as the quick-stats widget displays it. Zero for an empty list.
func AverageTransaction(transactions []models.Transaction) decimal.Decimal {
	if len(transactions) == 0 {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.AbsAmount())
	}
	return total.Div(decimal.NewFromInt(int64(len(transactions)))).Round(0)
}

// TodayCount returns how many transactions were created on the same calendar
// day as now, in now's location.
func TodayCount(transactions []models.Transaction, now time.Time) int {
	count := 0
	for _, t := range transactions {
		if t.OccurredOn(now) {
			count++
		}
	}
	return count
}

// LargestExpense returns the magnitude of the single largest expense, zero
// when the list holds no expenses.
func LargestExpense(transactions []models.Transaction) decimal.Decimal {
	largest := decimal.Zero
	for _, t := range transactions {
		if t.IsExpense() && t.AbsAmount().GreaterThan(largest) {
			largest = t.AbsAmount()
		}
	}
	return largest
}
