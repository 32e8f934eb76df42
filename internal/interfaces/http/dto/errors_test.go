package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeInUse, http.StatusConflict},
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeInvalidState, http.StatusUnprocessableEntity},
		{ErrCodeInsufficientStock, http.StatusUnprocessableEntity},
		{ErrCodeConcurrencyConflict, http.StatusConflict},
		{ErrCodeDuplicatePosting, http.StatusConflict},
		{ErrCodeDuplicateFulfillment, http.StatusConflict},
		// Field-level domain validation codes fall back to 400
		{"INVALID_QUANTITY", http.StatusBadRequest},
		{"INVALID_DATE", http.StatusBadRequest},
		{"INVALID_NAME", http.StatusBadRequest},
		// Unknown codes map to 500
		{"UNKNOWN_CODE", http.StatusInternalServerError},
		{"", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestErrorCodeConstants(t *testing.T) {
	// Every named error code must have an explicit HTTP status mapping
	allCodes := []string{
		ErrCodeInternal,
		ErrCodeBadRequest,
		ErrCodeValidation,
		ErrCodeNotFound,
		ErrCodeAlreadyExists,
		ErrCodeInUse,
		ErrCodeInvalidInput,
		ErrCodeInvalidState,
		ErrCodeConcurrencyConflict,
		ErrCodeInsufficientStock,
		ErrCodeDuplicatePosting,
		ErrCodeDuplicateFulfillment,
	}

	for _, code := range allCodes {
		t.Run(code, func(t *testing.T) {
			_, ok := ErrorCodeHTTPStatus[code]
			assert.True(t, ok, "error code %s has no HTTP status mapping", code)
		})
	}
}
