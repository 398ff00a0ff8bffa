package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetry(t *testing.T) {
	fastOpts := RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
	}

	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			return nil
		}, fastOpts)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return ErrBackendUnavailable
			}
			return nil
		}, fastOpts)
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			return ErrBackendUnavailable
		}, fastOpts)
		assert.ErrorIs(t, err, ErrMaxRetries)
		assert.Equal(t, 3, calls)
	})

	t.Run("auth failures abort immediately", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			return ErrUnauthorized
		}, fastOpts)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Equal(t, 1, calls)
	})

	t.Run("cancellation stops the backoff", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := WithRetry(ctx, func() error {
			return ErrBackendUnavailable
		}, RetryOptions{MaxAttempts: 5, InitialDelay: time.Hour})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"backend unavailable", ErrBackendUnavailable, true},
		{"wrapped backend unavailable", errors.Join(errors.New("ctx"), ErrBackendUnavailable), true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"unauthorized", ErrUnauthorized, false},
		{"not found", ErrNotFound, false},
		{"explicit retryable", &RetryableError{Err: errors.New("flaky"), Retryable: true}, true},
		{"explicit not retryable", &RetryableError{Err: errors.New("fatal"), Retryable: false}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestUserError(t *testing.T) {
	err := NewUserError("You are not logged in", ErrNotLoggedIn)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Contains(t, err.Error(), "You are not logged in")

	bare := NewUserError("Passwords do not match", nil)
	assert.Equal(t, "Passwords do not match", bare.Error())
}
