package cache

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors shared by the cache backends.
var (
	// ErrCacheMiss reports that a key was absent or expired. Get itself
	// signals misses through its bool return; callers that need a miss
	// as an error value use this sentinel.
	ErrCacheMiss = errors.New("cache miss")

	// ErrNetwork reports that a remote backend could not be reached.
	ErrNetwork = errors.New("network error")
)

// RetryableError marks an error as transient. [RetryWithBackoff] only
// retries errors carrying this wrapper.
type RetryableError struct{ Err error }

// Retryable wraps err as a RetryableError. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// Error returns the message of the wrapped error.
func (e *RetryableError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped error.
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err carries a RetryableError wrapper.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff runs fn up to 3 times, doubling the delay between
// attempts starting from one second. Errors not marked with
// [Retryable] stop the loop immediately.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	const attempts = 3
	delay := time.Second

	var lastErr error
	for i := 0; i < attempts; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return err
		}
		lastErr = err

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}
