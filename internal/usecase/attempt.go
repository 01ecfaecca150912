package usecase

import (
	"context"
	"time"

	"github.com/aalvaropc/vilain/internal/domain"
)

// RetryPolicy bounds how often a generation is attempted.
type RetryPolicy struct {
	// MaxAttempts counts the first call. Default: 5.
	MaxAttempts int

	// Delay is waited between attempts. Default: none.
	Delay time.Duration

	// OnRetry is an optional callback invoked after a failed attempt that
	// will be retried.
	OnRetry func(err error, attempt int)
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 5}
}

// retryable reports whether another attempt can change the outcome.
// Configuration and lookup errors cannot.
func retryable(err error) bool {
	return !domain.IsKind(err, domain.KindInvalidConfig) &&
		!domain.IsKind(err, domain.KindNotFound)
}

// Attempt runs fn with attempt numbers 1..MaxAttempts until it succeeds.
// It returns the result, the number of attempts made and the last error.
func Attempt[T any](ctx context.Context, p RetryPolicy, fn func(ctx context.Context, attempt int) (T, error)) (T, int, error) {
	var zero T

	limit := p.MaxAttempts
	if limit <= 0 {
		limit = DefaultRetryPolicy().MaxAttempts
	}

	var lastErr error
	for n := 1; n <= limit; n++ {
		if err := ctx.Err(); err != nil {
			return zero, n - 1, err
		}

		res, err := fn(ctx, n)
		if err == nil {
			return res, n, nil
		}
		lastErr = err

		if !retryable(err) || n == limit {
			return zero, n, lastErr
		}
		if p.OnRetry != nil {
			p.OnRetry(err, n)
		}

		if p.Delay > 0 {
			select {
			case <-ctx.Done():
				return zero, n, ctx.Err()
			case <-time.After(p.Delay):
			}
		}
	}
	return zero, limit, lastErr
}
