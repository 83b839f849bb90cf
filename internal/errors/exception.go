package errors

import (
	"errors"
	"net/http"
)

type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// IsClientFault reports whether the error should be surfaced to the
// user verbatim rather than logged as a server failure.
func IsClientFault(err error) bool {
	code := StatusCode(err)
	return code >= 400 && code < 500
}
