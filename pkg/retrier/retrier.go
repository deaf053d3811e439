// Package retrier provides bounded retries for transient failures.
package retrier

import (
	"context"
	"time"
)

// Retrier runs a function up to a fixed number of attempts with a constant
// delay between them. It is meant for short startup probes, not for
// long-running exponential backoff.
type Retrier struct {
	attempts int
	delay    time.Duration
}

// New creates a Retrier. Attempts below 1 are treated as a single attempt.
func New(attempts int, delay time.Duration) *Retrier {
	if attempts < 1 {
		attempts = 1
	}
	return &Retrier{attempts: attempts, delay: delay}
}

// Do executes fn until it succeeds, the attempts are exhausted or the
// context is cancelled between attempts. The last error is returned.
func (r *Retrier) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < r.attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.delay):
			}
		}

		if err = fn(ctx); err == nil {
			return nil
		}
	}
	return err
}
