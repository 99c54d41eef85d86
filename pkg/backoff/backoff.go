// Package backoff generalizes the fixed retry-interval ladder the teacher
// uses for webhook delivery (see internal/service/webhook_service.go's
// webhookRetryIntervals) into a reusable schedule with jitter, shared by
// the webhook-ingest, payment, and GL posting retry engines (spec §4.6,
// §4.7, §4.9).
package backoff

import (
	"math/rand"
	"time"
)

// Ladder is an ordered list of base intervals. Index i is the delay
// before attempt i+1 given attempt i just failed.
type Ladder []time.Duration

// DefaultWebhookLadder is the documented webhook retry cadence (spec
// §4.7): 60s, 5m, 30m, 2h, giving 5 max attempts before dead-lettering.
var DefaultWebhookLadder = Ladder{
	60 * time.Second,
	5 * time.Minute,
	30 * time.Minute,
	2 * time.Hour,
}

// DefaultPaymentLadder spaces payment retries in days, per spec §4.7's
// dunning schedule: attempt at issue, then +1d, +3d, +7d, +7d (5 max).
var DefaultPaymentLadder = Ladder{
	24 * time.Hour,
	3 * 24 * time.Hour,
	7 * 24 * time.Hour,
	7 * 24 * time.Hour,
}

// DefaultGLLadder mirrors the webhook cadence; GL posting failures are
// expected to be transient infrastructure issues, not business rejections.
var DefaultGLLadder = DefaultWebhookLadder

// MaxAttempts reports how many attempts the ladder allows before the item
// is considered exhausted (dead-lettered).
func (l Ladder) MaxAttempts() int {
	return len(l) + 1
}

// Exhausted reports whether attemptCount (attempts already made) has used
// up the ladder.
func (l Ladder) Exhausted(attemptCount int) bool {
	return attemptCount > len(l)
}

// Next returns the delay before the next attempt given attemptCount prior
// attempts, with up to +/-10% jitter (spec §4.7) to avoid thundering-herd
// retries against the processor or GL service. ok is false once the
// ladder is exhausted.
func (l Ladder) Next(attemptCount int) (delay time.Duration, ok bool) {
	if l.Exhausted(attemptCount) {
		return 0, false
	}
	idx := attemptCount - 1
	if idx < 0 {
		idx = 0
	}
	base := l[idx]
	jitter := time.Duration(rand.Int63n(int64(base) / 10)) // up to 10%
	if rand.Intn(2) == 0 {
		return base + jitter, true
	}
	return base - jitter, true
}
