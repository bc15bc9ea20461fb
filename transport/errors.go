package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorType classifies transport failures.
type ErrorType string

const (
	// ErrorTypeConnection indicates a network or DNS failure.
	ErrorTypeConnection ErrorType = "connection"

	// ErrorTypeTimeout indicates a deadline was exceeded.
	ErrorTypeTimeout ErrorType = "timeout"

	// ErrorTypeCanceled indicates the context was canceled.
	ErrorTypeCanceled ErrorType = "canceled"

	// ErrorTypeResponse indicates the API answered with an error status.
	ErrorTypeResponse ErrorType = "response"

	// ErrorTypeProtocol indicates a malformed request or an unreadable
	// response.
	ErrorTypeProtocol ErrorType = "protocol"
)

// Error is returned by transports for every failure after a request was
// handed to them.
type Error struct {
	Type ErrorType

	// StatusCode is the HTTP status for ErrorTypeResponse, zero otherwise.
	StatusCode int

	// Code is the API's numeric error code, when the body carried one.
	Code int

	// Message is safe to show to users.
	Message string

	// Body is the raw response body for ErrorTypeResponse.
	Body []byte

	Cause error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Type, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Classify wraps an error returned while sending a request. Context errors
// become timeouts or cancellations; anything else is a connection failure.
func Classify(err error) *Error {
	var te *Error
	if errors.As(err, &te) {
		return te
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return contextError(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Type: ErrorTypeTimeout, Message: "request timed out", Cause: err}
	}
	return &Error{Type: ErrorTypeConnection, Message: err.Error(), Cause: err}
}

func contextError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Type: ErrorTypeTimeout, Message: "deadline exceeded", Cause: err}
	}
	return &Error{Type: ErrorTypeCanceled, Message: "context canceled", Cause: err}
}
