package errors

import "net/http"

// HTTPError is an error that already knows its HTTP status and client-facing message.
type HTTPError struct {
	Message    string
	StatusCode int
}

// NewHTTPError returns a new HTTPError with the given message and status code.
// If statusCode is 0, it defaults to http.StatusBadRequest.
func NewHTTPError(message string, statusCode int) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewUnauthorizedHTTPError returns a new unauthorized HTTP error.
func NewUnauthorizedHTTPError(message string) *HTTPError {
	if message == "" {
		message = MessageUnauthorized
	}
	return &HTTPError{
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

// NewInternalHTTPError returns a 500 whose message is shown to the caller as is.
func NewInternalHTTPError(message string) *HTTPError {
	if message == "" {
		message = MessageInternal
	}
	return &HTTPError{
		Message:    message,
		StatusCode: http.StatusInternalServerError,
	}
}

// Error returns the error message.
func (e *HTTPError) Error() string {
	return e.Message
}
