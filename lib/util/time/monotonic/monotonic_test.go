package monotonic

import (
	"errors"
	"math"
	"testing"

	"github.com/codyps/microtime/lib/microtime"
)

var (
	start  = microtime.MonotonicFromSeconds(1_000)
	minute = microtime.DurationFromSeconds(60)
)

func at(offset microtime.Duration) microtime.MonotonicTime {
	return start.Add(offset)
}

// =============================================================================
// Deadline Tests
// =============================================================================

// TestNewDeadline_NotExpiredAtStart verifies a new deadline is not expired.
func TestNewDeadline_NotExpiredAtStart(t *testing.T) {
	d := NewDeadline(start, minute)
	if d.IsExpired(start) {
		t.Error("expected new deadline to not be expired")
	}
}

// TestNewDeadline_ZeroLifetime verifies a zero-lifetime deadline expires immediately.
func TestNewDeadline_ZeroLifetime(t *testing.T) {
	d := NewDeadline(start, microtime.ZeroDuration)
	if !d.IsExpired(start) {
		t.Error("expected zero-lifetime deadline to be expired immediately")
	}
}

// TestNewDeadline_OverflowPanics verifies an unrepresentable expiry causes a panic.
func TestNewDeadline_OverflowPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for overflowing lifetime")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, microtime.ErrOverflow) {
			t.Errorf("expected ErrOverflow panic, got %v", r)
		}
	}()
	NewDeadline(start, microtime.DurationFromMicros(math.MaxUint64))
}

// TestDeadline_ExactBoundary verifies expiry happens exactly at start+lifetime.
func TestDeadline_ExactBoundary(t *testing.T) {
	d := NewDeadline(start, minute)

	if d.IsExpired(at(minute.Sub(microtime.DurationFromMicros(1)))) {
		t.Error("expected deadline to be live one microsecond before expiry")
	}
	if !d.IsExpired(at(minute)) {
		t.Error("expected deadline to be expired at exactly its lifetime")
	}
	if d.Expiry() != at(minute) {
		t.Errorf("expected Expiry = %s, got %s", at(minute), d.Expiry())
	}
}

// TestDeadline_NowBeforeStart verifies instants before the start never count as expired.
func TestDeadline_NowBeforeStart(t *testing.T) {
	d := NewDeadline(start, microtime.ZeroDuration)
	earlier := microtime.MonotonicFromSeconds(10)

	if d.IsExpired(earlier) {
		t.Error("expected deadline not to be expired before its start")
	}
	if !d.Elapsed(earlier).IsZero() {
		t.Errorf("expected zero elapsed before start, got %s", d.Elapsed(earlier))
	}
}

// TestDeadline_Remaining verifies Remaining counts down and stops at zero.
func TestDeadline_Remaining(t *testing.T) {
	d := NewDeadline(start, minute)

	half := microtime.DurationFromSeconds(30)
	if got := d.Remaining(at(half)); got != half {
		t.Errorf("expected remaining %s, got %s", half, got)
	}
	if got := d.Remaining(at(microtime.DurationFromSeconds(600))); !got.IsZero() {
		t.Errorf("expected zero remaining for expired deadline, got %s", got)
	}
	if got := d.Remaining(microtime.MonotonicZero); got != at(minute).Sub(microtime.MonotonicZero) {
		t.Errorf("expected remaining measured from now before start, got %s", got)
	}
}

// TestDeadline_Elapsed verifies Elapsed tracks time since start.
func TestDeadline_Elapsed(t *testing.T) {
	d := NewDeadline(start, minute)
	five := microtime.DurationFromSeconds(5)
	if got := d.Elapsed(at(five)); got != five {
		t.Errorf("expected elapsed %s, got %s", five, got)
	}
}

// TestDeadline_Accessors verifies Start and Lifetime return the configured values.
func TestDeadline_Accessors(t *testing.T) {
	d := NewDeadline(start, microtime.DurationFromSeconds(42))
	if d.Start() != start {
		t.Errorf("expected start %s, got %s", start, d.Start())
	}
	if d.Lifetime() != microtime.DurationFromSeconds(42) {
		t.Errorf("expected lifetime 42s, got %s", d.Lifetime())
	}
}

// TestDeadline_Extend verifies lifetime extension returns a new deadline.
func TestDeadline_Extend(t *testing.T) {
	d := NewDeadline(start, microtime.DurationFromSeconds(300))
	e := d.Extend(microtime.DurationFromSeconds(180))

	if e.Lifetime() != microtime.DurationFromSeconds(480) {
		t.Errorf("extended lifetime should be 480s, got %s", e.Lifetime())
	}
	if d.Lifetime() != microtime.DurationFromSeconds(300) {
		t.Errorf("original deadline should be unchanged, got %s", d.Lifetime())
	}
	if d.Extend(microtime.ZeroDuration) != d {
		t.Error("extending by zero should be a no-op")
	}
}

// TestDeadline_Extend_RescuesExpired verifies extension can rescue an expired deadline.
func TestDeadline_Extend_RescuesExpired(t *testing.T) {
	d := NewDeadline(start, microtime.DurationFromSeconds(300))
	now := at(microtime.DurationFromSeconds(600))

	if !d.IsExpired(now) {
		t.Fatal("deadline should be expired before extension")
	}
	if d.Extend(microtime.DurationFromSeconds(600)).IsExpired(now) {
		t.Error("deadline should not be expired after extension")
	}
}

// =============================================================================
// Standalone Helper Tests
// =============================================================================

// TestIsExpiredAt verifies the stateless helper.
func TestIsExpiredAt(t *testing.T) {
	tests := []struct {
		name string
		now  microtime.MonotonicTime
		want bool
	}{
		{"before start", microtime.MonotonicZero, false},
		{"at start", start, false},
		{"inside", at(microtime.DurationFromSeconds(59)), false},
		{"boundary", at(minute), true},
		{"after", at(microtime.DurationFromSeconds(61)), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsExpiredAt(start, minute, tc.now); got != tc.want {
				t.Errorf("IsExpiredAt(%s) = %v, want %v", tc.now, got, tc.want)
			}
		})
	}
}
