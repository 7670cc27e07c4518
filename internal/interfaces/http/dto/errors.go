package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
)

// Workflow error codes. Every rejection from the transition engine maps
// to exactly one of these; none of them is retryable as-is.
const (
	// ErrCodeUnknownStatus is used when a status label is not recognized
	ErrCodeUnknownStatus = "UNKNOWN_STATUS"
	// ErrCodeOrderFinalized is used when the order is in a terminal status
	ErrCodeOrderFinalized = "ORDER_FINALIZED"
	// ErrCodePaymentNotConfirmed is used when payment has not been confirmed
	ErrCodePaymentNotConfirmed = "PAYMENT_NOT_CONFIRMED"
	// ErrCodeInvalidTransition is used when the target is not reachable
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
	// ErrCodeClockSkew is used when a ledger timestamp would regress
	ErrCodeClockSkew = "CLOCK_SKEW"
)

// Resource error codes
const (
	ErrCodeNotFound               = "NOT_FOUND"
	ErrCodeAlreadyExists          = "ALREADY_EXISTS"
	ErrCodeInvalidInput           = "INVALID_INPUT"
	ErrCodeInvalidState           = "INVALID_STATE"
	ErrCodeConcurrentModification = "CONCURRENT_MODIFICATION"
	ErrCodeConcurrencyConflict    = "CONCURRENCY_CONFLICT"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,

	// An unknown status label is a malformed request
	ErrCodeUnknownStatus: http.StatusBadRequest,

	// Guard rejections are well-formed requests the workflow refuses
	ErrCodeOrderFinalized:      http.StatusUnprocessableEntity,
	ErrCodePaymentNotConfirmed: http.StatusUnprocessableEntity,
	ErrCodeInvalidTransition:   http.StatusUnprocessableEntity,

	// Clock skew is an operational fault, not a client mistake
	ErrCodeClockSkew: http.StatusInternalServerError,

	ErrCodeNotFound:               http.StatusNotFound,
	ErrCodeAlreadyExists:          http.StatusConflict,
	ErrCodeInvalidInput:           http.StatusBadRequest,
	ErrCodeInvalidState:           http.StatusUnprocessableEntity,
	ErrCodeConcurrentModification: http.StatusConflict,
	ErrCodeConcurrencyConflict:    http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
