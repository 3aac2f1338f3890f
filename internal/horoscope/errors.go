package horoscope

import (
	"fmt"
	"net/http"
)

// ErrorType is the category of a fetch or parse failure.
type ErrorType string

const (
	// ErrorTypeNetwork covers DNS failures, refused connections and other transport errors.
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeTimeout means the request context expired before a response arrived.
	ErrorTypeTimeout ErrorType = "timeout"
	// ErrorTypeClient is an HTTP 4xx answer.
	ErrorTypeClient ErrorType = "client"
	// ErrorTypeServer is an HTTP 5xx answer.
	ErrorTypeServer ErrorType = "server"
	// ErrorTypeValidation means a 200 answer whose payload could not be understood.
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// FetchError is the structured error returned by Client and Parse.
type FetchError struct {
	Type       ErrorType
	StatusCode int
	Message    string
	Cause      error
}

func (e *FetchError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Type, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s error: %s", e.Type, msg)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

func newNetworkError(cause error) *FetchError {
	return &FetchError{Type: ErrorTypeNetwork, Message: "horoscope request failed", Cause: cause}
}

func newTimeoutError(cause error) *FetchError {
	return &FetchError{Type: ErrorTypeTimeout, Message: "horoscope request timed out", Cause: cause}
}

func newValidationError(message string, cause error) *FetchError {
	return &FetchError{Type: ErrorTypeValidation, StatusCode: http.StatusOK, Message: message, Cause: cause}
}

// ClassifyStatus maps a non-200 status code to a FetchError.
func ClassifyStatus(statusCode int) *FetchError {
	switch {
	case statusCode >= 500:
		return &FetchError{Type: ErrorTypeServer, StatusCode: statusCode, Message: "server returned an error"}
	case statusCode >= 400:
		return &FetchError{Type: ErrorTypeClient, StatusCode: statusCode, Message: http.StatusText(statusCode)}
	default:
		return &FetchError{Type: ErrorTypeUnknown, StatusCode: statusCode, Message: fmt.Sprintf("unexpected status code: %d", statusCode)}
	}
}
