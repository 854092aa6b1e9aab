package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned in the Code field of error
// responses. Clients branch on these, never on the message text.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodePermissionDenied  = "PERMISSION_DENIED"
	CodeInvalidState      = "INVALID_STATE"
	CodeCapacityExceeded  = "CAPACITY_EXCEEDED"
	CodeConflict          = "CONFLICT"
	CodeEmailServiceError = "EMAIL_SERVICE_ERROR"
	CodeInternalError     = "INTERNAL_ERROR"
)

// APIError carries the HTTP mapping for a domain error. Message is safe
// to show to clients; Err holds the underlying cause for logs only.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NotFound builds a 404 error
func NotFound(message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: CodeNotFound, Message: message}
}

// BadRequest builds a 400 error with a specific code
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Unauthorized builds a 401 error
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Forbidden builds a 403 error
func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodePermissionDenied, Message: message}
}

// Conflict builds a 409 error with a specific code
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// ServiceUnavailable builds a 503 error retaining the internal cause
func ServiceUnavailable(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Err: err}
}

// InternalError builds a sanitized 500 error - never exposes internal details
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}
