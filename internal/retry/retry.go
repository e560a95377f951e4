// Package retry wraps upstream operations with bounded retries, error
// classification, and a shared circuit breaker for correlated gateway
// failures.
package retry

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/gnomegl/relslurp/internal/errs"
)

// Policy bounds the retry loop
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultPolicy returns the policy used against the GitHub API
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    30 * time.Second,
	}
}

// gatewaySchedule is the steeper backoff used for bad-gateway class errors,
// so a degraded upstream is not re-hammered on the standard schedule.
var gatewaySchedule = []time.Duration{
	5 * time.Second,
	10 * time.Second,
	20 * time.Second,
	30 * time.Second,
}

// Breaker accumulates consecutive gateway failures across many operations.
// One Breaker must be shared by every Execute call of a fetch session; a
// fresh Breaker per call defeats its purpose.
type Breaker struct {
	mu          sync.Mutex
	failures    int
	lastFailure time.Time
	open        bool

	threshold int
	cooldown  time.Duration
	now       func() time.Time
}

// NewBreaker returns a closed breaker that opens after threshold
// consecutive gateway failures and holds for cooldown.
func NewBreaker(threshold int, cooldown time.Duration) *Breaker {
	return &Breaker{threshold: threshold, cooldown: cooldown, now: time.Now}
}

// gate returns how long the caller must wait before proceeding. If the
// cooldown has already elapsed the breaker closes optimistically.
func (b *Breaker) gate() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.open {
		return 0
	}
	elapsed := b.now().Sub(b.lastFailure)
	if elapsed >= b.cooldown {
		b.open = false
		b.failures = 0
		return 0
	}
	return b.cooldown - elapsed
}

// recordFailure counts a gateway failure and opens the breaker at threshold
func (b *Breaker) recordFailure() (failures int, opened bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures++
	b.lastFailure = b.now()
	if !b.open && b.failures >= b.threshold {
		b.open = true
		opened = true
	}
	return b.failures, opened
}

// recordSuccess resets the breaker to closed
func (b *Breaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
	b.open = false
}

// Failures returns the current consecutive-failure count
func (b *Breaker) Failures() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failures
}

// Open reports whether the breaker is currently open
func (b *Breaker) Open() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.open
}

// Executor runs operations under a Policy and a shared Breaker
type Executor struct {
	policy  Policy
	breaker *Breaker
	log     zerolog.Logger
	sleep   func(time.Duration)
}

// NewExecutor returns an Executor. The breaker is required and is expected
// to outlive the executor's individual calls.
func NewExecutor(policy Policy, breaker *Breaker, log zerolog.Logger) *Executor {
	return &Executor{
		policy:  policy,
		breaker: breaker,
		log:     log,
		sleep:   time.Sleep,
	}
}

// Do runs op with retries. Non-retryable errors surface immediately;
// retryable ones are reattempted up to the policy limit with exponential
// backoff, on a steeper schedule for gateway-class errors. If the shared
// breaker is open the call waits out the remaining cooldown first.
func Do[T any](ctx context.Context, e *Executor, label string, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if wait := e.breaker.gate(); wait > 0 {
		e.log.Warn().Str("op", label).Dur("wait", wait).Msg("circuit breaker open, holding")
		e.sleep(wait)
		e.log.Info().Str("op", label).Msg("circuit breaker cooldown elapsed, closing")
	}

	var lastErr error
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := op(ctx)
		if err == nil {
			if e.breaker.Failures() > 0 {
				e.breaker.recordSuccess()
			}
			return result, nil
		}
		lastErr = err

		if !errs.Retryable(err) {
			return zero, err
		}

		gateway := errs.IsGateway(err)
		if gateway {
			failures, opened := e.breaker.recordFailure()
			if opened {
				e.log.Warn().Str("op", label).Int("failures", failures).Msg("circuit breaker opened")
			}
		}

		if attempt >= e.policy.MaxAttempts {
			break
		}

		delay := e.backoff(attempt, gateway)
		e.log.Warn().Str("op", label).
			Int("attempt", attempt).
			Int("max_attempts", e.policy.MaxAttempts).
			Dur("delay", delay).
			Err(err).
			Msg("retrying after failure")
		e.sleep(delay)
	}

	return zero, errs.Wrapf(lastErr, errs.CodeOf(lastErr), "%s failed after %d attempts", label, e.policy.MaxAttempts)
}

func (e *Executor) backoff(attempt int, gateway bool) time.Duration {
	if gateway {
		if attempt > len(gatewaySchedule) {
			return gatewaySchedule[len(gatewaySchedule)-1]
		}
		return gatewaySchedule[attempt-1]
	}
	delay := e.policy.BaseDelay << (attempt - 1)
	if delay > e.policy.MaxDelay {
		delay = e.policy.MaxDelay
	}
	return delay
}
