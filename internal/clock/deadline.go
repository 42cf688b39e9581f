package clock

import (
	"context"
	"time"
)

// Deadline is a single-threaded, poll-only wall-clock timer (spec §5:
// "a deadline is enforced by polling a process-wide wall-clock timer at
// the top of each expansion"). It wraps a context.Context internally so
// an external SIGTERM or parent cancellation composes with an explicit
// duration the same way lvlath's flow.Options.Ctx composes with caller
// cancellation, but callers never block on it — they poll Expired().
type Deadline struct {
	ctx context.Context
	ttl time.Duration
}

// Unbounded returns a Deadline that never expires, for the §6 default
// where no budget is configured.
func Unbounded() Deadline {
	return Deadline{ctx: context.Background()}
}

// After returns a Deadline that expires ttl after now. ctx, if non-nil, is
// polled alongside the timer so an external cancellation (SIGTERM) is also
// observed by Expired(); pass context.Background() when there is none.
func After(ctx context.Context, ttl time.Duration) Deadline {
	if ctx == nil {
		ctx = context.Background()
	}
	deadline := time.Now().Add(ttl)
	c, cancel := context.WithDeadline(ctx, deadline)
	_ = cancel // the timer is released when c's deadline fires or the caller stops polling
	return Deadline{ctx: c, ttl: ttl}
}

// Expired reports whether the deadline has passed or the wrapped context
// has otherwise been canceled. Safe to call at the top of every expansion
// (spec §5); it never blocks.
func (d Deadline) Expired() bool {
	if d.ctx == nil {
		return false
	}
	select {
	case <-d.ctx.Done():
		return true
	default:
		return false
	}
}

// Remaining returns the time left before expiry, or the largest
// representable duration for an Unbounded deadline.
func (d Deadline) Remaining() time.Duration {
	if d.ctx == nil {
		return time.Duration(1<<63 - 1)
	}
	deadline, ok := d.ctx.Deadline()
	if !ok {
		return time.Duration(1<<63 - 1)
	}
	return time.Until(deadline)
}
