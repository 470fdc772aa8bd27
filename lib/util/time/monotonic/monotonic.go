package monotonic

import (
	"github.com/codyps/microtime/lib/microtime"
)

// Deadline represents a point on the monotonic timeline after which
// something has expired. It records the start instant and a lifetime;
// every check takes the current instant from the caller, so wall clock
// jumps cannot cause premature or delayed expiration.
//
// Deadline is an immutable value and is safe to share between goroutines.
type Deadline struct {
	start    microtime.MonotonicTime
	lifetime microtime.Duration
}

// NewDeadline creates a Deadline that expires lifetime after start.
//
// Panics with microtime.ErrOverflow if start+lifetime does not fit in the
// microsecond range.
func NewDeadline(start microtime.MonotonicTime, lifetime microtime.Duration) Deadline {
	_ = start.Add(lifetime)
	return Deadline{
		start:    start,
		lifetime: lifetime,
	}
}

// IsExpired reports whether the deadline has passed at now. A now that
// precedes the start is never expired.
func (d Deadline) IsExpired(now microtime.MonotonicTime) bool {
	return IsExpiredAt(d.start, d.lifetime, now)
}

// Remaining returns the time left until expiry at now, or zero if the
// deadline has passed.
func (d Deadline) Remaining(now microtime.MonotonicTime) microtime.Duration {
	expiry := d.Expiry()
	if !now.Before(expiry) {
		return microtime.ZeroDuration
	}
	return expiry.Sub(now)
}

// Elapsed returns how much time has passed since start, or zero if now
// precedes it.
func (d Deadline) Elapsed(now microtime.MonotonicTime) microtime.Duration {
	if now.Before(d.start) {
		return microtime.ZeroDuration
	}
	return now.Sub(d.start)
}

// Expiry returns the instant the deadline passes.
func (d Deadline) Expiry() microtime.MonotonicTime {
	return d.start.Add(d.lifetime)
}

func (d Deadline) Start() microtime.MonotonicTime {
	return d.start
}

func (d Deadline) Lifetime() microtime.Duration {
	return d.lifetime
}

// Extend returns a copy of d whose lifetime is longer by additional. This
// is used for lease renewal and similar lifetime extensions.
func (d Deadline) Extend(additional microtime.Duration) Deadline {
	return NewDeadline(d.start, d.lifetime.Add(additional))
}

// IsExpiredAt checks if a deadline starting at start with the given
// lifetime has expired at now. This is a stateless alternative to the
// Deadline type, useful when start and lifetime are stored separately.
func IsExpiredAt(start microtime.MonotonicTime, lifetime microtime.Duration, now microtime.MonotonicTime) bool {
	if now.Before(start) {
		return false
	}
	return now.Sub(start).Compare(lifetime) >= 0
}
