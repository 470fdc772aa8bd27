package microtime

import (
	"math/bits"

	"github.com/samber/oops"
)

const (
	microsPerMilli  = 1_000
	microsPerSecond = 1_000_000
	nanosPerMicro   = 1_000
	nanosPerSecond  = 1_000_000_000
)

func mulMicros(n, factor uint64) (uint64, error) {
	hi, lo := bits.Mul64(n, factor)
	if hi != 0 {
		return 0, oops.Wrapf(ErrOverflow, "%d * %d", n, factor)
	}
	return lo, nil
}

func secondsToMicros(seconds uint64) uint64 {
	us, err := mulMicros(seconds, microsPerSecond)
	if err != nil {
		violation(err, "converting %d seconds", seconds)
	}
	return us
}

func millisToMicros(millis uint64) uint64 {
	us, err := mulMicros(millis, microsPerMilli)
	if err != nil {
		violation(err, "converting %d milliseconds", millis)
	}
	return us
}

func checkedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, oops.Wrapf(ErrOverflow, "%dµs + %dµs", a, b)
	}
	return sum, nil
}

func checkedSub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, oops.Wrapf(ErrUnderflow, "%dµs - %dµs", a, b)
	}
	return diff, nil
}

func mustAdd(a, b uint64) uint64 {
	sum, err := checkedAdd(a, b)
	if err != nil {
		violation(err, "addition")
	}
	return sum
}

func mustSub(a, b uint64) uint64 {
	diff, err := checkedSub(a, b)
	if err != nil {
		violation(err, "subtraction")
	}
	return diff
}

// splitMicros re-encodes a microsecond count as whole seconds plus
// sub-second nanoseconds. It is exact.
func splitMicros(us uint64) NanoDuration {
	return NanoDuration{
		Seconds: us / microsPerSecond,
		Nanos:   uint32(us%microsPerSecond) * nanosPerMicro,
	}
}

// joinMicros is the inverse of splitMicros. Nanoseconds below a whole
// microsecond are discarded.
func joinMicros(nd NanoDuration) (uint64, error) {
	if nd.Nanos >= nanosPerSecond {
		return 0, oops.Wrapf(ErrInvalidNanos, "nanos=%d", nd.Nanos)
	}
	us, err := mulMicros(nd.Seconds, microsPerSecond)
	if err != nil {
		return 0, err
	}
	return checkedAdd(us, uint64(nd.Nanos/nanosPerMicro))
}
