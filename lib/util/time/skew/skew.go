package skew

import (
	"github.com/go-i2p/logger"
	"github.com/samber/oops"

	"github.com/codyps/microtime/lib/microtime"
)

var log = logger.GetGoI2PLogger()

// MaxClockSkew is the default maximum acceptable difference between a
// published timestamp and the current wall-clock time: 60 minutes either
// way.
var MaxClockSkew = microtime.DurationFromSeconds(60 * 60)

// ValidateTimestamp checks whether published lies within ±MaxClockSkew of
// now. It returns nil if the timestamp is valid, or a descriptive error if
// it falls outside the window.
//
// The epoch is always rejected as an unset timestamp.
func ValidateTimestamp(published, now microtime.RealTime) error {
	return validate(published, now, MaxClockSkew, true)
}

// IsTimestampValid is a convenience wrapper around ValidateTimestamp that
// returns a boolean instead of an error.
func IsTimestampValid(published, now microtime.RealTime) bool {
	return ValidateTimestamp(published, now) == nil
}

// ValidateTimestampWithSkew checks published against a custom window, for
// callers that need a tighter tolerance (e.g. ±2 minutes for a handshake).
// A zero maxSkew is rejected.
func ValidateTimestampWithSkew(published, now microtime.RealTime, maxSkew microtime.Duration) error {
	if maxSkew.IsZero() {
		return oops.Errorf("clock skew: maxSkew must be positive, got %s", maxSkew)
	}
	return validate(published, now, maxSkew, false)
}

func validate(published, now microtime.RealTime, maxSkew microtime.Duration, warn bool) error {
	if published.IsZero() {
		return oops.Errorf("clock skew: published timestamp is zero")
	}

	if !published.After(now) {
		behind := now.Sub(published)
		if maxSkew.Less(behind) {
			if warn {
				log.WithFields(logger.Fields{
					"published": published.String(),
					"now":       now.String(),
					"skew":      behind.String(),
					"max":       maxSkew.String(),
				}).Warn("Rejecting timestamp too far in the past")
			}
			return oops.Errorf("clock skew: timestamp is %s in the past (max %s)", behind, maxSkew)
		}
		return nil
	}

	ahead := published.Sub(now)
	if maxSkew.Less(ahead) {
		if warn {
			log.WithFields(logger.Fields{
				"published": published.String(),
				"now":       now.String(),
				"skew":      ahead.String(),
				"max":       maxSkew.String(),
			}).Warn("Rejecting timestamp too far in the future")
		}
		return oops.Errorf("clock skew: timestamp is %s in the future (max %s)", ahead, maxSkew)
	}
	return nil
}
