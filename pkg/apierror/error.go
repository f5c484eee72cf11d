package apierror

import (
	"encoding/json"
	"net/http"
)

// Error represents a structured API error response.
// The JSON body follows the frontend contract: {"message": ..., "error": ...}.
type Error struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Detail     string `json:"error,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// ToJSON converts the error to JSON bytes.
func (e *Error) ToJSON() []byte {
	data, _ := json.Marshal(e)
	return data
}

// BadRequest creates a 400 Bad Request error.
func BadRequest(message string) *Error {
	return &Error{
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

// Validation creates a 400 error for a payload that violates the data model.
func Validation(message string) *Error {
	return &Error{
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

// Unauthorized creates a 401 Unauthorized error.
func Unauthorized(message string) *Error {
	if message == "" {
		message = "Authentication required"
	}
	return &Error{
		StatusCode: http.StatusUnauthorized,
		Message:    message,
	}
}

// NotFound creates a 404 Not Found error.
func NotFound(message string) *Error {
	if message == "" {
		message = "Resource not found"
	}
	return &Error{
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}

// ServerError creates a 500 error with the store-level detail passed through.
func ServerError(detail string) *Error {
	return &Error{
		StatusCode: http.StatusInternalServerError,
		Message:    "Server error",
		Detail:     detail,
	}
}

// ServiceUnavailable creates a 503 Service Unavailable error.
func ServiceUnavailable(message string) *Error {
	if message == "" {
		message = "Service temporarily unavailable"
	}
	return &Error{
		StatusCode: http.StatusServiceUnavailable,
		Message:    message,
	}
}
