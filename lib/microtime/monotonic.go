package microtime

import (
	"cmp"
	"strconv"
	"time"
)

// MonotonicTime is an instant from a CLOCK_MONOTONIC like clock, in
// microseconds from an unspecified origin. It can only be compared with and
// subtracted from other MonotonicTime values.
type MonotonicTime struct {
	micros uint64
}

// MonotonicZero is the origin of the monotonic timeline.
var MonotonicZero = MonotonicTime{}

func MonotonicFromMicros(micros uint64) MonotonicTime {
	return MonotonicTime{micros: micros}
}

func MonotonicFromMillis(millis uint64) MonotonicTime {
	return MonotonicTime{micros: millisToMicros(millis)}
}

func MonotonicFromSeconds(seconds uint64) MonotonicTime {
	return MonotonicTime{micros: secondsToMicros(seconds)}
}

// MonotonicFromNanoDuration reads a timestamp that was carried inside a
// duration. Nanoseconds below a whole microsecond are dropped.
func MonotonicFromNanoDuration(nd NanoDuration) (MonotonicTime, error) {
	us, err := joinMicros(nd)
	if err != nil {
		return MonotonicZero, err
	}
	return MonotonicTime{micros: us}, nil
}

// MonotonicFromStdDuration is MonotonicFromNanoDuration for a time.Duration.
// A negative d fails with ErrNegative.
func MonotonicFromStdDuration(d time.Duration) (MonotonicTime, error) {
	us, err := stdToMicros(d)
	if err != nil {
		return MonotonicZero, err
	}
	return MonotonicTime{micros: us}, nil
}

func (t MonotonicTime) Micros() uint64 {
	return t.micros
}

// NanoDuration expresses t as a duration from the monotonic origin, for
// APIs that carry timestamps in duration values. It is exact.
func (t MonotonicTime) NanoDuration() NanoDuration {
	return splitMicros(t.micros)
}

// StdDuration is NanoDuration for APIs that take a time.Duration. It fails
// with ErrOutOfRange past roughly 292 years.
func (t MonotonicTime) StdDuration() (time.Duration, error) {
	return microsToStd(t.micros)
}

// Sub returns the time elapsed from o to t. It panics with ErrUnderflow if
// o is later than t.
func (t MonotonicTime) Sub(o MonotonicTime) Duration {
	return Duration{micros: mustSub(t.micros, o.micros)}
}

func (t MonotonicTime) CheckedSub(o MonotonicTime) (Duration, error) {
	us, err := checkedSub(t.micros, o.micros)
	return Duration{micros: us}, err
}

// Add returns t shifted forward by d. It panics with ErrOverflow if the
// result does not fit.
func (t MonotonicTime) Add(d Duration) MonotonicTime {
	return MonotonicTime{micros: mustAdd(t.micros, d.micros)}
}

func (t MonotonicTime) CheckedAdd(d Duration) (MonotonicTime, error) {
	us, err := checkedAdd(t.micros, d.micros)
	return MonotonicTime{micros: us}, err
}

// AddStd adds a time.Duration truncated to whole microseconds. It panics
// with ErrNegative for negative d and ErrOverflow if the result does not
// fit.
func (t MonotonicTime) AddStd(d time.Duration) MonotonicTime {
	us, err := stdToMicros(d)
	if err != nil {
		violation(err, "adding to monotonic time")
	}
	return MonotonicTime{micros: mustAdd(t.micros, us)}
}

func (t MonotonicTime) Compare(o MonotonicTime) int {
	return cmp.Compare(t.micros, o.micros)
}

func (t MonotonicTime) Before(o MonotonicTime) bool {
	return t.micros < o.micros
}

func (t MonotonicTime) After(o MonotonicTime) bool {
	return t.micros > o.micros
}

func (t MonotonicTime) IsZero() bool {
	return t.micros == 0
}

func (t MonotonicTime) String() string {
	return "mono+" + strconv.FormatUint(t.micros, 10) + "µs"
}
