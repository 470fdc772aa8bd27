// Package ntptime lifts the fields of an NTP response into microtime values.
//
// Querying servers stays with the caller; this package only converts what
// a github.com/beevik/ntp Response already holds. Correct applies the
// response's signed clock offset to a local RealTime reading. Offsets are
// truncated toward zero to whole microseconds.
package ntptime

import (
	"errors"

	"github.com/beevik/ntp"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"

	"github.com/codyps/microtime/lib/microtime"
)

var log = logger.GetGoI2PLogger()

var ErrNilResponse = errors.New("ntptime: nil NTP response")

// ServerTime returns the server's transmit time.
func ServerTime(resp *ntp.Response) (microtime.RealTime, error) {
	if resp == nil {
		return microtime.Epoch, ErrNilResponse
	}
	rt, err := microtime.RealTimeFromTime(resp.Time)
	if err != nil {
		return microtime.Epoch, oops.Wrapf(err, "NTP server time")
	}
	return rt, nil
}

// RoundTrip returns the measured round-trip delay of the exchange.
func RoundTrip(resp *ntp.Response) (microtime.Duration, error) {
	if resp == nil {
		return microtime.ZeroDuration, ErrNilResponse
	}
	d, err := microtime.DurationFromStd(resp.RTT)
	if err != nil {
		return microtime.ZeroDuration, oops.Wrapf(err, "NTP round trip %s", resp.RTT)
	}
	return d, nil
}

// Correct shifts a local wall-clock reading by the response's clock offset.
// A negative offset that would move local before the epoch fails with
// microtime.ErrUnderflow.
func Correct(local microtime.RealTime, resp *ntp.Response) (microtime.RealTime, error) {
	if resp == nil {
		return microtime.Epoch, ErrNilResponse
	}
	offset := resp.ClockOffset
	if offset >= 0 {
		d, _ := microtime.DurationFromStd(offset)
		corrected, err := local.CheckedAdd(d)
		if err != nil {
			return microtime.Epoch, oops.Wrapf(err, "applying NTP offset %s", offset)
		}
		return corrected, nil
	}

	d, err := microtime.DurationFromStd(-offset)
	if err != nil {
		return microtime.Epoch, oops.Wrapf(microtime.ErrOutOfRange, "NTP offset %s", offset)
	}
	back, err := local.SinceEpoch().CheckedSub(d)
	if err != nil {
		log.WithFields(logger.Fields{
			"local":  local.String(),
			"offset": offset.String(),
		}).Warn("NTP offset moves local time before the epoch")
		return microtime.Epoch, oops.Wrapf(err, "applying NTP offset %s to %s", offset, local)
	}
	return microtime.Epoch.Add(back), nil
}
