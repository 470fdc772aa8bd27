package microtime

import (
	"errors"

	"github.com/samber/oops"
)

var ErrOverflow = errors.New("microtime: value exceeds 64-bit microsecond range")
var ErrUnderflow = errors.New("microtime: result would be negative")
var ErrPreEpoch = errors.New("microtime: timestamp predates the Unix epoch")
var ErrOutOfRange = errors.New("microtime: value does not fit the target representation")
var ErrNegative = errors.New("microtime: negative duration")
var ErrInvalidNanos = errors.New("microtime: sub-second nanoseconds out of range")

// violation panics with err wrapped in context. Arithmetic that leaves the
// microsecond range is a caller bug, not an input error.
func violation(err error, format string, args ...interface{}) {
	panic(oops.Wrapf(err, format, args...))
}
