package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

func init() {
	// the backend sends and expects bare JSON numbers for amounts
	decimal.MarshalJSONWithoutQuotes = true
}

// StatusSuccess is the meta.status value every successful response carries.
const StatusSuccess = "success"

// Meta is the response envelope metadata.
type Meta struct {
	Status string `json:"status"`
}

// Envelope is the `{ meta, data }` wrapper around every backend response.
// Data stays raw until the caller decodes it into the endpoint's type.
type Envelope struct {
	Meta Meta            `json:"meta"`
	Data json.RawMessage `json:"data"`
}

// IsSuccess reports whether the envelope carries a successful response.
func (e *Envelope) IsSuccess() bool {
	return e.Meta.Status == StatusSuccess
}

// CreateTransactionRequest is the POST /transactions body. The amount is
// already sign-normalized: negative for expenses, positive for income.
type CreateTransactionRequest struct {
	UserID   string          `json:"user_id" validate:"required"`
	Title    string          `json:"title" validate:"transaction_title"`
	Amount   decimal.Decimal `json:"amount" validate:"transaction_amount"`
	Category string          `json:"category" validate:"transaction_category"`
}

// ErrorBody is the error payload mutation endpoints answer with on failure.
type ErrorBody struct {
	Error string `json:"error"`
}
