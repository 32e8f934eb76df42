package dto

import (
	"net/http"
	"strings"
)

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeValidation = "VALIDATION_ERROR"
)

// Domain error codes surfaced over HTTP. The codes mirror the ones raised
// by the domain layer so clients can distinguish failure modes.
const (
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeAlreadyExists        = "ALREADY_EXISTS"
	ErrCodeInUse                = "IN_USE"
	ErrCodeInvalidInput         = "INVALID_INPUT"
	ErrCodeInvalidState         = "INVALID_STATE"
	ErrCodeConcurrencyConflict  = "CONCURRENCY_CONFLICT"
	ErrCodeInsufficientStock    = "INSUFFICIENT_STOCK"
	ErrCodeDuplicatePosting     = "DUPLICATE_POSTING"
	ErrCodeDuplicateFulfillment = "DUPLICATE_FULFILLMENT"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeInUse:         http.StatusConflict,
	ErrCodeInvalidInput:  http.StatusBadRequest,

	// State violations are well-formed requests the current state rejects
	ErrCodeInvalidState:      http.StatusUnprocessableEntity,
	ErrCodeInsufficientStock: http.StatusUnprocessableEntity,

	// Conflicts with concurrent or repeated requests
	ErrCodeConcurrencyConflict:  http.StatusConflict,
	ErrCodeDuplicatePosting:     http.StatusConflict,
	ErrCodeDuplicateFulfillment: http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status for an error code. Field-level
// domain validation codes (INVALID_DATE, INVALID_QUANTITY and so on)
// all map to 400; anything unknown maps to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
