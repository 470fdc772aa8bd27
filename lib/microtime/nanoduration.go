package microtime

import (
	"math"
	"time"

	"github.com/samber/oops"
)

// NanoDuration is a nanosecond-precision duration split into whole seconds
// and a sub-second remainder, the same shape as a POSIX timespec with an
// unsigned second count. It is valid when Nanos < 1e9.
//
// Unlike time.Duration it covers the full 64-bit microsecond range, so
// every MonotonicTime and RealTime can be expressed as one without loss.
type NanoDuration struct {
	Seconds uint64
	Nanos   uint32
}

// Valid reports whether Nanos is a proper sub-second remainder.
func (nd NanoDuration) Valid() bool {
	return nd.Nanos < nanosPerSecond
}

// maxStdMicros is the largest microsecond count that fits in a
// time.Duration.
const maxStdMicros = uint64(math.MaxInt64 / nanosPerMicro)

func microsToStd(us uint64) (time.Duration, error) {
	if us > maxStdMicros {
		return 0, oops.Wrapf(ErrOutOfRange, "%dµs exceeds time.Duration", us)
	}
	return time.Duration(us) * time.Microsecond, nil
}

// stdToMicros truncates d toward zero to whole microseconds.
func stdToMicros(d time.Duration) (uint64, error) {
	if d < 0 {
		return 0, oops.Wrapf(ErrNegative, "%s", d)
	}
	return uint64(d / time.Microsecond), nil
}
