package gen

import (
	"context"
	"log"
	"time"
)

// RetryPolicy controls how many times an operation runs and how long
// to wait between attempts. The delay doubles after each transient
// failure unless Multiplier overrides it. Immutable for one invocation.
type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	Multiplier   float64

	sleep func(ctx context.Context, d time.Duration) error // overridable in tests
}

// DefaultRetryPolicy matches the service defaults: 3 attempts starting at 2s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, InitialDelay: 2 * time.Second, Multiplier: 2}
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	def := DefaultRetryPolicy()
	if p.MaxAttempts < 1 {
		p.MaxAttempts = def.MaxAttempts
	}
	if p.InitialDelay <= 0 {
		p.InitialDelay = def.InitialDelay
	}
	if p.Multiplier < 1 {
		p.Multiplier = def.Multiplier
	}
	if p.sleep == nil {
		p.sleep = sleepCtx
	}
	return p
}

// InvokeWithRetry runs op until it succeeds, fails permanently, or exhausts
// the policy's attempts. Only errors recognized by IsTransient are retried;
// anything else propagates immediately without delay. After a transient
// failure the call sleeps for the current delay, then the delay is multiplied
// for the next round. The last observed error is returned on exhaustion.
func InvokeWithRetry[T any](ctx context.Context, policy RetryPolicy, op func() (T, error)) (T, error) {
	policy = policy.withDefaults()

	var zero T
	var lastErr error
	delay := policy.InitialDelay

	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		res, err := op()
		if err == nil {
			return res, nil
		}
		lastErr = err

		if !IsTransient(err) {
			return zero, err
		}
		if attempt == policy.MaxAttempts {
			break
		}

		log.Printf("[WARN] generation attempt %d/%d failed, retrying in %s: %v",
			attempt, policy.MaxAttempts, delay, err)
		if serr := policy.sleep(ctx, delay); serr != nil {
			return zero, serr
		}
		delay = time.Duration(float64(delay) * policy.Multiplier)
	}

	return zero, lastErr
}

// sleepCtx waits for d or until ctx is done, whichever comes first
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
