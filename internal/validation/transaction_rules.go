package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	apierrors "spendtrack-client/internal/errors"
	"spendtrack-client/internal/models"
)

// ValidateTransactionInput checks raw form input against the transaction
// rules and returns the ordered list of human-readable failures. An empty
// list means the input is valid. The function is pure: same input, same
// output, no side effects.
//
// Check order is fixed: title, then amount, then category. Screens surface
// the first message only, but the full list is returned for field-level
// highlighting.
func ValidateTransactionInput(input models.TransactionInput) []string {
	var errs []string

	errs = appendTitleErrors(errs, input.Title)
	errs = appendAmountErrors(errs, input.Amount)
	errs = appendCategoryErrors(errs, input.Category)

	return errs
}

func appendTitleErrors(errs []string, title string) []string {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return append(errs, apierrors.GetErrorMessage(apierrors.ValidationTitleRequired))
	}
	if len(trimmed) > models.MaxTitleLength {
		return append(errs, apierrors.GetErrorMessage(apierrors.ValidationTitleTooLong))
	}
	return errs
}

func appendAmountErrors(errs []string, amount string) []string {
	trimmed := strings.TrimSpace(amount)
	if trimmed == "" {
		return append(errs, apierrors.GetErrorMessage(apierrors.ValidationAmountRequired))
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return append(errs, apierrors.GetErrorMessage(apierrors.ValidationAmountNotNumeric))
	}
	if !value.IsPositive() {
		return append(errs, apierrors.GetErrorMessage(apierrors.ValidationAmountNotPositive))
	}
	if value.GreaterThan(models.MaxAmount) {
		return append(errs, apierrors.GetErrorMessage(apierrors.ValidationAmountTooLarge))
	}
	if !amountPattern.MatchString(trimmed) {
		return append(errs, apierrors.GetErrorMessage(apierrors.ValidationAmountPrecision))
	}
	return errs
}

func appendCategoryErrors(errs []string, category string) []string {
	if strings.TrimSpace(category) == "" {
		return append(errs, apierrors.GetErrorMessage(apierrors.ValidationCategoryRequired))
	}
	return errs
}

// NormalizedAmount parses the raw amount and applies the expense/income sign
// convention: expenses are stored negative, income positive. It assumes the
// input already passed ValidateTransactionInput.
func NormalizedAmount(amount string, isExpense bool) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return decimal.Zero, err
	}
	if isExpense {
		return value.Abs().Neg(), nil
	}
	return value.Abs(), nil
}
