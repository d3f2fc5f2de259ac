package models

import (
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionFilters contains the optional constraints applied to a
// transaction query: category, income/expense type, amount range, date range
// and month. The zero value means "no filters".
type TransactionFilters struct {
	Category  string
	Type      string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	StartDate *time.Time
	EndDate   *time.Time
	Month     int
	Year      int
}

// ToQuery encodes the set filters as request query parameters. Unset fields
// are omitted, matching what the mobile screens send.
func (f TransactionFilters) ToQuery() url.Values {
	params := url.Values{}

	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.Type != "" && f.Type != "all" {
		params.Set("type", f.Type)
	}
	if f.MinAmount != nil {
		params.Set("minAmount", f.MinAmount.String())
	}
	if f.MaxAmount != nil {
		params.Set("maxAmount", f.MaxAmount.String())
	}
	if f.StartDate != nil {
		params.Set("startDate", f.StartDate.UTC().Format(time.RFC3339))
	}
	if f.EndDate != nil {
		params.Set("endDate", f.EndDate.UTC().Format(time.RFC3339))
	}

	return params
}

// ActiveCount returns how many filter fields are set to a non-default value.
// Year is a selector for the month filter, not a filter of its own.
func (f TransactionFilters) ActiveCount() int {
	count := 0
	if f.Category != "" {
		count++
	}
	if f.Type != "" && f.Type != "all" {
		count++
	}
	if f.MinAmount != nil {
		count++
	}
	if f.MaxAmount != nil {
		count++
	}
	if f.StartDate != nil {
		count++
	}
	if f.EndDate != nil {
		count++
	}
	if f.Month != 0 {
		count++
	}
	return count
}

// MonthYear returns the selected month and year for month-scoped queries.
// The year defaults to the current year when unset.
func (f TransactionFilters) MonthYear(now time.Time) (int, int) {
	year := f.Year
	if year == 0 {
		year = now.Year()
	}
	return f.Month, year
}

// IsMonthScoped reports whether the filter set selects a specific month.
func (f TransactionFilters) IsMonthScoped() bool {
	return f.Month >= 1 && f.Month <= 12
}
