package dto

import "net/http"

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not in this map default to 500.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeNotFound:   http.StatusNotFound,

	// Malformed or out-of-range input -> 400 Bad Request
	"INVALID_INPUT":    http.StatusBadRequest,
	"INVALID_LOCATION": http.StatusBadRequest,
	"INVALID_LINE":     http.StatusBadRequest,
	"INVALID_ITEM":     http.StatusBadRequest,
	"INVALID_PROFILE":  http.StatusBadRequest,

	// Valid request, but the business state forbids it -> 422 Unprocessable Entity
	"NOTHING_TO_PRINT":         http.StatusUnprocessableEntity,
	"INVALID_STATE":            http.StatusUnprocessableEntity,
	"INVALID_STATE_TRANSITION": http.StatusUnprocessableEntity,
	"LAYOUT_OVERFLOW":          http.StatusUnprocessableEntity,
	"CORRUPT_ORDER":            http.StatusUnprocessableEntity,

	// Conflicts with a concurrent operation -> 409 Conflict
	"PRINT_IN_PROGRESS":    http.StatusConflict,
	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
