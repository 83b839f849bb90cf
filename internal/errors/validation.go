package errors

import "net/http"

// NewValidation wraps a synchronous pre-write rejection: missing
// fields, malformed times, end not after start.
func NewValidation(message string) *Exception {
	return &Exception{
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}
