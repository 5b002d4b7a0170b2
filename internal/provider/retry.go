package provider

import (
	"context"
	"errors"
	"time"
)

// Retry runs fn and, if it fails with anything other than a caller
// cancellation, runs it once more after backoff. Only idempotent reads
// should go through Retry.
func Retry[T any](ctx context.Context, backoff time.Duration, fn func(context.Context) (T, error)) (T, error) {
	res, err := fn(ctx)
	if err == nil || !retryable(ctx, err) {
		return res, err
	}

	timer := time.NewTimer(backoff)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case <-timer.C:
	}

	return fn(ctx)
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	return !errors.Is(err, ErrInvalidOptions) && !errors.Is(err, context.Canceled)
}
