// Package monotonic provides deadlines on the monotonic timeline.
//
// A Deadline pairs a microtime.MonotonicTime start with a microtime.Duration
// lifetime. Because both live in the monotonic clock domain, no wall clock
// adjustment (NTP corrections, manual time changes) can make a deadline
// expire early or late. The caller reads the monotonic clock and passes the
// current instant to every check.
//
// Usage:
//
//	deadline := monotonic.NewDeadline(now, microtime.DurationFromSeconds(600))
//	// ... later ...
//	if deadline.IsExpired(now) {
//	    // expired, safe from NTP jumps
//	}
//
// Renewal:
//
//	deadline = deadline.Extend(microtime.DurationFromSeconds(300))
//	if deadline.Remaining(now).Less(rebuildThreshold) {
//	    // time to rebuild
//	}
package monotonic
