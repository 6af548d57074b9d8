package shared

import "errors"

// DomainError is a business rule violation with a stable machine-readable
// code. Codes double as wire error codes in HTTP responses.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a DomainError with the given code and message
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// ErrNotFound is returned by repositories when a lookup misses
var ErrNotFound = NewDomainError("NOT_FOUND", "Resource not found")

// IsNotFound reports whether err is, or wraps, a NOT_FOUND domain error
func IsNotFound(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == ErrNotFound.Code
}
