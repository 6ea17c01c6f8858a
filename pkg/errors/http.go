package errors

import "net/http"

// HTTPError is an error that knows the HTTP status it should be rendered with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// NewHTTPError creates an HTTPError whose error code equals the status code.
func NewHTTPError(status int, msg string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: status, Message: msg}
}

func (e *HTTPError) Error() string {
	return e.Message
}

var ErrTooManyRequests = NewHTTPError(http.StatusTooManyRequests, "too many requests")
