package errors

// ErrorCode represents a standardized error code used throughout the client
type ErrorCode string

// Validation error codes (VALIDATION_*), detected locally before any network call
const (
	ValidationGeneral           ErrorCode = "VALIDATION_001"
	ValidationTitleRequired     ErrorCode = "VALIDATION_002"
	ValidationTitleTooLong      ErrorCode = "VALIDATION_003"
	ValidationAmountRequired    ErrorCode = "VALIDATION_004"
	ValidationAmountNotNumeric  ErrorCode = "VALIDATION_005"
	ValidationAmountNotPositive ErrorCode = "VALIDATION_006"
	ValidationAmountTooLarge    ErrorCode = "VALIDATION_007"
	ValidationAmountPrecision   ErrorCode = "VALIDATION_008"
	ValidationCategoryRequired  ErrorCode = "VALIDATION_009"
)

// Network/transport error codes (NETWORK_*)
const (
	NetworkRequestFailed ErrorCode = "NETWORK_001"
	NetworkTimeout       ErrorCode = "NETWORK_002"
)

// Application error codes (API_*): the backend answered but refused
const (
	APIRequestRejected  ErrorCode = "API_001"
	APIStatusNotSuccess ErrorCode = "API_002"
	APICreateFailed     ErrorCode = "API_003"
	APIDeleteFailed     ErrorCode = "API_004"
)

// Malformed-response error codes (DECODE_*)
const (
	DecodeInvalidJSON ErrorCode = "DECODE_001"
	DecodeInvalidData ErrorCode = "DECODE_002"
)

// Client usage error codes (CLIENT_*)
const (
	ClientMissingBaseURL ErrorCode = "CLIENT_001"
	ClientInvalidPeriod  ErrorCode = "CLIENT_002"
	ClientInvalidSession ErrorCode = "CLIENT_003"
)

// errorMessages maps error codes to their default human-readable messages.
// Validation messages match the strings the mobile screens display verbatim.
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:           "Validation failed",
	ValidationTitleRequired:     "Transaction title is required",
	ValidationTitleTooLong:      "Transaction title must not exceed 100 characters",
	ValidationAmountRequired:    "Amount is required",
	ValidationAmountNotNumeric:  "Please enter a valid numeric amount",
	ValidationAmountNotPositive: "Amount must be greater than 0",
	ValidationAmountTooLarge:    "Amount cannot exceed $999,999.99",
	ValidationAmountPrecision:   "Amount can only have up to 2 decimal places",
	ValidationCategoryRequired:  "Please select a category",

	// Network errors
	NetworkRequestFailed: "Could not reach the server",
	NetworkTimeout:       "The request timed out",

	// Application errors
	APIRequestRejected:  "The server rejected the request",
	APIStatusNotSuccess: "The server reported a failure",
	APICreateFailed:     "Failed to create transaction",
	APIDeleteFailed:     "Failed to delete transaction",

	// Malformed-response errors
	DecodeInvalidJSON: "The server returned an unreadable response",
	DecodeInvalidData: "The server returned unexpected data",

	// Client usage errors
	ClientMissingBaseURL: "API base URL is not configured",
	ClientInvalidPeriod:  "Invalid analytics period",
	ClientInvalidSession: "Invalid or expired session token",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
