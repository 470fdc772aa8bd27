// Package i2pdate converts between microtime.RealTime and the I2P Date
// common structure, an 8 byte count of milliseconds since the Unix epoch.
//
// I2P dates carry millisecond precision, so ToDate drops the microsecond
// digits of its input. A RealTime built from whole milliseconds survives
// the round trip unchanged.
package i2pdate

import (
	"github.com/go-i2p/common/data"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"

	"github.com/codyps/microtime/lib/microtime"
)

var log = logger.GetGoI2PLogger()

// ToDate encodes rt as an I2P Date, truncating to whole milliseconds.
func ToDate(rt microtime.RealTime) (*data.Date, error) {
	truncated := microtime.RealTimeFromMillis(rt.Micros() / 1000)
	date, err := data.DateFromTime(truncated.Time())
	if err != nil {
		log.WithError(err).WithField("realtime", rt.String()).Debug("failed to encode I2P date")
		return nil, oops.Wrapf(err, "encoding %s as I2P date", rt)
	}
	return date, nil
}

// FromDate decodes an I2P Date.
func FromDate(date data.Date) (microtime.RealTime, error) {
	rt, err := microtime.RealTimeFromTime(date.Time())
	if err != nil {
		return microtime.Epoch, oops.Wrapf(err, "decoding I2P date")
	}
	return rt, nil
}
