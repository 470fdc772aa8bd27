// Package skew validates wall-clock timestamps against a clock skew window.
//
// Both the published timestamp and "now" are microtime.RealTime values, so a
// monotonic reading can never be passed in by mistake. The caller reads the
// wall clock. The default window is ±60 minutes.
//
// Usage:
//
//	if err := skew.ValidateTimestamp(published, now); err != nil {
//	    // reject
//	}
package skew
