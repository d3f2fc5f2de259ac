package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"spendtrack-client/internal/models"
)

// amountPattern accepts unsigned decimal amounts with at most 2 fractional digits
var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// Struct validates a struct against its validation tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_amount", validateTransactionAmount)
	_ = v.RegisterValidation("transaction_title", validateTransactionTitle)
	_ = v.RegisterValidation("transaction_category", validateTransactionCategory)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateTransactionAmount validates that a signed transaction amount is
// non-zero, within the configured ceiling and has at most 2 decimal places.
// The sign is already normalized by the time a request carries the amount.
func validateTransactionAmount(fl validator.FieldLevel) bool {
	amount, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	if amount.IsZero() {
		return false
	}

	if amount.Abs().GreaterThan(models.MaxAmount) {
		return false
	}

	return amountPattern.MatchString(amount.Abs().String())
}

// validateTransactionTitle validates that a title is non-empty after trimming
// and no longer than the maximum length
func validateTransactionTitle(fl validator.FieldLevel) bool {
	title := strings.TrimSpace(fl.Field().String())
	return title != "" && len(title) <= models.MaxTitleLength
}

// validateTransactionCategory validates that a category is non-empty after trimming
func validateTransactionCategory(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
