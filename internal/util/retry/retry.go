// Package retry provides bounded polling helpers.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Until polls probe at the given interval until it returns nil, the timeout
// elapses, or the context is cancelled. The deadline is hard: an unavailable
// dependency surfaces as an explicit timeout error instead of blocking forever.
//
// Probe errors wrapped with Fatal() abort the wait immediately.
func Until(ctx context.Context, timeout, interval time.Duration, probe func(context.Context) error) error {
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastErr error
	for {
		lastErr = probe(waitCtx)
		if lastErr == nil {
			return nil
		}
		if IsFatal(lastErr) {
			return fmt.Errorf("wait aborted: %w", lastErr)
		}

		select {
		case <-waitCtx.Done():
			if errors.Is(waitCtx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("timed out after %v: %w", timeout, lastErr)
			}
			return fmt.Errorf("wait cancelled: %w", waitCtx.Err())
		case <-ticker.C:
		}
	}
}

// FatalError wraps an error to mark it as non-retryable.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Fatal marks an error as non-retryable: polling stops instead of waiting
// out the deadline on a condition that can never become true.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// IsFatal checks if an error is marked non-retryable.
func IsFatal(err error) bool {
	var fatalErr *FatalError
	return errors.As(err, &fatalErr)
}
