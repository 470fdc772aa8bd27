// Package microtime provides fixed-precision time values that keep clock
// domains and units apart.
//
// Three types are defined, each holding a single unsigned count of
// microseconds:
//
//   - Duration: an elapsed-time magnitude, independent of any clock.
//   - MonotonicTime: an instant on a CLOCK_MONOTONIC style timeline with no
//     meaningful epoch.
//   - RealTime: an instant on the wall clock, counted from the Unix epoch.
//
// Only the operations that make sense between them exist. Two instants of
// the same kind subtract to a Duration, an instant plus a Duration is an
// instant of the same kind, and Durations add and subtract among
// themselves. There is no way to subtract a RealTime from a MonotonicTime.
//
// A 64-bit microsecond count lasts roughly 584,942 years, which is the same
// layout systemd uses for its usec_t values.
//
// # Overflow and underflow
//
// Add and Sub panic when the result leaves the 64-bit microsecond range.
// The panic value is an error wrapping ErrOverflow or ErrUnderflow. A
// negative elapsed time is never silently wrapped into a huge positive
// value. CheckedAdd and CheckedSub perform the same arithmetic and return
// the error instead.
//
// # Conversions
//
// Conversions from nanosecond-precision values truncate toward zero.
// Conversions to them are exact. Conversions from external input, such as
// RealTimeFromTime with a time before 1970, return errors rather than
// panicking:
//
//	rt, err := microtime.RealTimeFromTime(t)
//	if errors.Is(err, microtime.ErrPreEpoch) {
//	    // t predates the Unix epoch
//	}
//
// Some code carries a monotonic timestamp inside a plain duration because
// there is no way to build an instant from a number. MonotonicTime.NanoDuration
// and MonotonicFromNanoDuration formalize that:
//
//	nd := microtime.MonotonicFromMicros(10_000_001).NanoDuration()
//	// nd.Seconds == 10, nd.Nanos == 1000
//
// This package does not read clocks. Callers supply the instants.
package microtime
