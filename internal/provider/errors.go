package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Error is a classified failure from a vendor adapter. Retryable errors are
// candidates for fallback dispatch in the router; non-retryable errors
// (bad request, auth) surface to the caller immediately.
type Error struct {
	// Provider is the vendor name, e.g. "openai".
	Provider string

	// Operation is the adapter method, e.g. "embed".
	Operation string

	// Status is the HTTP status code, 0 for network-level failures.
	Status int

	// Message is the vendor error message when one was returned.
	Message string

	// Retryable marks transient failures: timeouts, 429, 5xx, network errors.
	Retryable bool

	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Provider, e.Operation, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s %s: status %d: %s", e.Provider, e.Operation, e.Status, e.Message)
	default:
		return fmt.Sprintf("%s %s: status %d", e.Provider, e.Operation, e.Status)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewStatusError builds an Error from an HTTP status, classifying it.
func NewStatusError(providerName, operation string, status int, message string) *Error {
	return &Error{
		Provider:  providerName,
		Operation: operation,
		Status:    status,
		Message:   message,
		Retryable: RetryableStatus(status),
	}
}

// NewTransportError builds an Error from a network-level failure. Context
// cancellation is not retryable: the caller gave up, not the vendor.
func NewTransportError(providerName, operation string, err error) *Error {
	return &Error{
		Provider:  providerName,
		Operation: operation,
		Err:       err,
		Retryable: !errors.Is(err, context.Canceled),
	}
}

// RetryableStatus reports whether an HTTP status is worth retrying or
// falling back on: rate limiting and server-side failures.
func RetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// IsRetryable reports whether err is a retryable provider error.
func IsRetryable(err error) bool {
	var pErr *Error
	if errors.As(err, &pErr) {
		return pErr.Retryable
	}
	return false
}
