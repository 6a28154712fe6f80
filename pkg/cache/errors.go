package cache

import (
	"context"
	"errors"
	"time"
)

// Errors reported by the Redis backend. The file and null caches return
// plain I/O errors.
var (
	// ErrMiss is a lookup of a board hash with no stored measurement. Get
	// turns it into a (nil, false, nil) result.
	ErrMiss = errors.New("cache: miss")

	// ErrUnreachable is a command that failed on the connection rather
	// than on the stored data.
	ErrUnreachable = errors.New("cache: backend unreachable")
)

// transientError marks a failure that a later attempt may not repeat.
type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// transient marks err as worth retrying. nil stays nil.
func transient(err error) error {
	if err == nil {
		return nil
	}
	return &transientError{err: err}
}

func isTransient(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

// retryPolicy bounds the attempts of one cache call.
type retryPolicy struct {
	attempts int
	delay    time.Duration
}

// redisRetry is tried three times, 50ms then 100ms apart.
var redisRetry = retryPolicy{attempts: 3, delay: 50 * time.Millisecond}

// do calls fn until it succeeds or fails with a non-transient error, at
// most p.attempts times. The delay doubles after each transient failure.
func (p retryPolicy) do(ctx context.Context, fn func() error) error {
	n := max(1, p.attempts)
	delay := p.delay
	var lastErr error
	for i := range n {
		if lastErr = fn(); lastErr == nil || !isTransient(lastErr) {
			return lastErr
		}
		if i == n-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return lastErr
}
