package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	// MaxTitleLength is the longest accepted transaction title after trimming.
	MaxTitleLength = 100
)

// MaxAmount is the largest accepted transaction magnitude. Amounts are
// decimal currency with at most two fractional digits.
var MaxAmount = decimal.RequireFromString("999999.99")

// Transaction represents a single signed monetary record owned by one user.
// Income is stored positive, expenses negative. The backend assigns ID and
// CreatedAt on creation; the client never updates a transaction in place.
type Transaction struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"createdAt"`
}

// IsExpense reports whether the transaction is an expense (negative amount).
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsIncome reports whether the transaction is income (non-negative amount).
func (t *Transaction) IsIncome() bool {
	return !t.Amount.IsNegative()
}

// AbsAmount returns the transaction magnitude regardless of sign.
func (t *Transaction) AbsAmount() decimal.Decimal {
	return t.Amount.Abs()
}

// MatchesQuery reports whether the query is a case-insensitive substring of
// the transaction title or category.
func (t *Transaction) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Category), q)
}

// OccurredOn reports whether the transaction was created on the same
// calendar day as the given time, in that time's location.
func (t *Transaction) OccurredOn(day time.Time) bool {
	y1, m1, d1 := t.CreatedAt.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
