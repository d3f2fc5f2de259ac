package models

import "github.com/shopspring/decimal"

// Summary is the server-computed aggregate for a user: balance, total income
// and total expense, optionally scoped by filters.
type Summary struct {
	Balance decimal.Decimal `json:"balance"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// AbsExpense returns the expense total as a magnitude. Some endpoints report
// expenses negative and others positive, so display code always takes the
// absolute value.
func (s *Summary) AbsExpense() decimal.Decimal {
	return s.Expense.Abs()
}
