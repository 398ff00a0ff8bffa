// Package common provides shared utilities and types used across the client.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// ErrUnauthorized means the backend rejected our credentials or token.
	// It is the only error class that escalates to the login flow.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means the requested resource does not exist on the backend.
	ErrNotFound = errors.New("not found")

	// ErrBackendUnavailable means the backend could not be reached.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrNotLoggedIn means no saved session exists for a command that needs one.
	ErrNotLoggedIn = errors.New("not logged in")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user verbatim.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRetryable determines if an error should trigger a retry. Auth and
// validation failures never retry; transient transport failures do.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrBackendUnavailable) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
