package microtime

import (
	"cmp"
	"strconv"
	"time"
)

// Duration is an elapsed time in microseconds. It is not tied to any clock.
type Duration struct {
	micros uint64
}

// ZeroDuration is the empty duration. It equals the zero value.
var ZeroDuration = Duration{}

func DurationFromMicros(micros uint64) Duration {
	return Duration{micros: micros}
}

// DurationFromMillis panics with ErrOverflow if millis*1000 does not fit in
// 64 bits.
func DurationFromMillis(millis uint64) Duration {
	return Duration{micros: millisToMicros(millis)}
}

// DurationFromSeconds panics with ErrOverflow if seconds*1e6 does not fit
// in 64 bits.
func DurationFromSeconds(seconds uint64) Duration {
	return Duration{micros: secondsToMicros(seconds)}
}

// DurationFromStd converts a time.Duration, dropping any sub-microsecond
// remainder. Negative durations are rejected with ErrNegative.
func DurationFromStd(d time.Duration) (Duration, error) {
	us, err := stdToMicros(d)
	if err != nil {
		return ZeroDuration, err
	}
	return Duration{micros: us}, nil
}

// Micros returns the duration in whole microseconds.
func (d Duration) Micros() uint64 {
	return d.micros
}

// Millis returns the duration in whole milliseconds, truncated.
func (d Duration) Millis() uint64 {
	return d.micros / microsPerMilli
}

// Seconds returns the duration in whole seconds, truncated.
func (d Duration) Seconds() uint64 {
	return d.micros / microsPerSecond
}

// Std converts to a time.Duration. Durations longer than about 292 years
// fail with ErrOutOfRange.
func (d Duration) Std() (time.Duration, error) {
	return microsToStd(d.micros)
}

// Add returns d+o. It panics with ErrOverflow if the sum does not fit.
func (d Duration) Add(o Duration) Duration {
	return Duration{micros: mustAdd(d.micros, o.micros)}
}

// Sub returns d-o. It panics with ErrUnderflow if o is longer than d.
func (d Duration) Sub(o Duration) Duration {
	return Duration{micros: mustSub(d.micros, o.micros)}
}

func (d Duration) CheckedAdd(o Duration) (Duration, error) {
	us, err := checkedAdd(d.micros, o.micros)
	return Duration{micros: us}, err
}

func (d Duration) CheckedSub(o Duration) (Duration, error) {
	us, err := checkedSub(d.micros, o.micros)
	return Duration{micros: us}, err
}

// Compare returns -1, 0 or +1 depending on whether d is shorter than, equal
// to, or longer than o.
func (d Duration) Compare(o Duration) int {
	return cmp.Compare(d.micros, o.micros)
}

func (d Duration) Less(o Duration) bool {
	return d.micros < o.micros
}

func (d Duration) IsZero() bool {
	return d.micros == 0
}

func (d Duration) String() string {
	return strconv.FormatUint(d.micros, 10) + "µs"
}
