package microtime

import (
	"cmp"
	"math/bits"
	"strconv"
	"time"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

var log = logger.GetGoI2PLogger()

// RealTime is a CLOCK_REALTIME timestamp: microseconds since the Unix
// epoch, 1970-01-01T00:00:00Z. It can only be compared with and subtracted
// from other RealTime values.
type RealTime struct {
	micros uint64
}

// Epoch is the Unix epoch.
var Epoch = RealTime{}

func RealTimeFromMicros(micros uint64) RealTime {
	return RealTime{micros: micros}
}

func RealTimeFromMillis(millis uint64) RealTime {
	return RealTime{micros: millisToMicros(millis)}
}

func RealTimeFromSeconds(seconds uint64) RealTime {
	return RealTime{micros: secondsToMicros(seconds)}
}

// RealTimeFromTime converts a time.Time, dropping any sub-microsecond
// remainder. Times before the epoch fail with ErrPreEpoch; they are never
// clamped to Epoch.
func RealTimeFromTime(t time.Time) (RealTime, error) {
	sec := t.Unix()
	if sec < 0 {
		log.WithFields(logger.Fields{
			"at":   "RealTimeFromTime",
			"time": t.UTC().Format(time.RFC3339Nano),
		}).Debug("rejecting timestamp before the Unix epoch")
		return Epoch, oops.Wrapf(ErrPreEpoch, "converting %s", t.UTC().Format(time.RFC3339Nano))
	}
	hi, us := bits.Mul64(uint64(sec), microsPerSecond)
	if hi != 0 {
		log.WithField("unix_seconds", sec).Debug("rejecting timestamp past the microsecond range")
		return Epoch, oops.Wrapf(ErrOutOfRange, "%d seconds since epoch", sec)
	}
	us, err := checkedAdd(us, uint64(t.Nanosecond()/nanosPerMicro))
	if err != nil {
		log.WithField("unix_seconds", sec).Debug("rejecting timestamp past the microsecond range")
		return Epoch, oops.Wrapf(ErrOutOfRange, "%d seconds since epoch", sec)
	}
	return RealTime{micros: us}, nil
}

// RealTimeFromNanoDuration reads an offset from the epoch split into
// seconds and nanoseconds, dropping nanoseconds below a microsecond.
func RealTimeFromNanoDuration(nd NanoDuration) (RealTime, error) {
	us, err := joinMicros(nd)
	if err != nil {
		return Epoch, err
	}
	return RealTime{micros: us}, nil
}

// Micros returns the number of microseconds since the epoch.
func (t RealTime) Micros() uint64 {
	return t.micros
}

// SinceEpoch returns the time elapsed since the epoch.
func (t RealTime) SinceEpoch() Duration {
	return Duration{micros: t.micros}
}

// Time converts t to a UTC time.Time. time.Time spans far more than 2^64
// microseconds, so every RealTime is representable.
func (t RealTime) Time() time.Time {
	nd := splitMicros(t.micros)
	return time.Unix(int64(nd.Seconds), int64(nd.Nanos)).UTC()
}

// NanoDuration returns the offset from the epoch as seconds and
// nanoseconds.
func (t RealTime) NanoDuration() NanoDuration {
	return splitMicros(t.micros)
}

// Sub returns the time elapsed from o to t. It panics with ErrUnderflow if
// o is later than t.
func (t RealTime) Sub(o RealTime) Duration {
	return Duration{micros: mustSub(t.micros, o.micros)}
}

func (t RealTime) CheckedSub(o RealTime) (Duration, error) {
	us, err := checkedSub(t.micros, o.micros)
	return Duration{micros: us}, err
}

func (t RealTime) Add(d Duration) RealTime {
	return RealTime{micros: mustAdd(t.micros, d.micros)}
}

func (t RealTime) CheckedAdd(d Duration) (RealTime, error) {
	us, err := checkedAdd(t.micros, d.micros)
	return RealTime{micros: us}, err
}

// AddStd adds a time.Duration truncated to whole microseconds. It panics
// with ErrNegative for negative d.
func (t RealTime) AddStd(d time.Duration) RealTime {
	us, err := stdToMicros(d)
	if err != nil {
		violation(err, "adding to real time")
	}
	return RealTime{micros: mustAdd(t.micros, us)}
}

func (t RealTime) Compare(o RealTime) int {
	return cmp.Compare(t.micros, o.micros)
}

func (t RealTime) Before(o RealTime) bool {
	return t.micros < o.micros
}

func (t RealTime) After(o RealTime) bool {
	return t.micros > o.micros
}

// IsZero reports whether t is the epoch.
func (t RealTime) IsZero() bool {
	return t.micros == 0
}

func (t RealTime) String() string {
	return "epoch+" + strconv.FormatUint(t.micros, 10) + "µs"
}
