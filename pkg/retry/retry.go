// Package retry holds the single backoff policy shared by every store-call
// wrapper, so retry behaviour lives in one place instead of being scattered
// per call site.
package retry

import (
	"context"
	"math/rand"
	"time"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/e"
)

type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      float64 // 0..1, fraction of the delay randomised

	// RetryIf decides whether a failure is worth another attempt.
	// Defaults to e.Transient.
	RetryIf func(error) bool
}

func Default() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   200 * time.Millisecond,
		MaxDelay:    2 * time.Second,
		Jitter:      0.2,
	}
}

// Do runs fn up to MaxAttempts times, sleeping an exponentially growing,
// jittered delay between attempts. The last error is returned once attempts
// are exhausted; non-retryable errors surface immediately.
func (p Policy) Do(ctx context.Context, fn func(context.Context) error) error {
	retryIf := p.RetryIf
	if retryIf == nil {
		retryIf = e.Transient
	}
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if !retryIf(err) || attempt == attempts {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.delay(attempt)):
		}
	}
	return err
}

func (p Policy) delay(attempt int) time.Duration {
	d := p.BaseDelay
	if d <= 0 {
		d = 100 * time.Millisecond
	}
	for i := 1; i < attempt; i++ {
		d *= 2
		if p.MaxDelay > 0 && d >= p.MaxDelay {
			d = p.MaxDelay
			break
		}
	}
	if p.Jitter > 0 {
		spread := float64(d) * p.Jitter
		d = time.Duration(float64(d) - spread/2 + rand.Float64()*spread)
	}
	return d
}
