package signup

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryPolicy bounds a retry loop: up to Attempts tries separated by a
// constant Interval. Tests inject zero-interval policies to avoid
// sleeping.
type RetryPolicy struct {
	Attempts int
	Interval time.Duration
}

// orDefault substitutes def for an unset (zero-value) policy. A policy
// with an explicit Attempts and zero Interval is honored as given.
func (p RetryPolicy) orDefault(def RetryPolicy) RetryPolicy {
	if p == (RetryPolicy{}) {
		return def
	}
	if p.Attempts <= 0 {
		p.Attempts = 1
	}
	return p
}

// backoff builds the bounded go-retry backoff for this policy.
func (p RetryPolicy) backoff() retry.Backoff {
	interval := p.Interval
	if interval <= 0 {
		interval = time.Nanosecond
	}
	b := retry.NewConstant(interval)
	return retry.WithMaxRetries(uint64(p.Attempts-1), b)
}

// retryDo runs fn under the policy. fn reports whether its error is
// worth another attempt; non-retryable errors abort the loop at once.
func retryDo(ctx context.Context, policy RetryPolicy, fn func(ctx context.Context) (retryable bool, err error)) error {
	return retry.Do(ctx, policy.backoff(), func(ctx context.Context) error {
		retryable, err := fn(ctx)
		if err == nil {
			return nil
		}
		if retryable {
			return retry.RetryableError(err)
		}
		return err
	})
}
