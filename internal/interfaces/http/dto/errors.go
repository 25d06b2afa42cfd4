package dto

import (
	"net/http"
	"strings"

	"github.com/chargehub/backend/internal/domain/charging"
)

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeValidation is the base code for request validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed fall back to the INVALID_ prefix rule, then 500.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:      http.StatusInternalServerError,
	ErrCodeBadRequest:    http.StatusBadRequest,
	ErrCodeValidation:    http.StatusBadRequest,
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeInvalidState:  http.StatusUnprocessableEntity,

	charging.CodeVehicleNotFound:       http.StatusNotFound,
	charging.CodeChargePointNotFound:   http.StatusNotFound,
	charging.CodeChargeSessionNotFound: http.StatusNotFound,
	charging.CodeSaveSessionIncomplete: http.StatusBadRequest,
	charging.CodeInvalidSortParameter:  http.StatusBadRequest,

	"INCONSISTENT_SESSION_STATE": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Domain validation codes all use the INVALID_ prefix and map to 400;
// anything unknown is treated as an internal error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
