package cli

import (
	"encoding/hex"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/codyps/microtime/lib/config"
	"github.com/codyps/microtime/lib/microtime"
	"github.com/codyps/microtime/lib/microtime/i2pdate"
	"github.com/codyps/microtime/lib/util/time/skew"
)

type configFunc func() *config.Config

func newSplitCommand(cfg configFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "split <micros>",
		Short: "Split a monotonic timestamp into seconds and nanoseconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			us, err := parseUint("micros", args[0])
			if err != nil {
				return err
			}
			nd := microtime.MonotonicFromMicros(us).NanoDuration()
			return render(cmd.OutOrStdout(), cfg().Output,
				field{"seconds", nd.Seconds},
				field{"nanos", nd.Nanos},
			)
		},
	}
}

func newJoinCommand(cfg configFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "join <seconds> <nanos>",
		Short: "Join seconds and nanoseconds into a monotonic timestamp",
		Long:  "Nanoseconds below a whole microsecond are dropped.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			secs, err := parseUint("seconds", args[0])
			if err != nil {
				return err
			}
			nanos, err := parseUint("nanos", args[1])
			if err != nil {
				return err
			}
			if nanos > 999_999_999 {
				return oops.Wrapf(microtime.ErrInvalidNanos, "nanos=%d", nanos)
			}
			m, err := microtime.MonotonicFromNanoDuration(microtime.NanoDuration{
				Seconds: secs,
				Nanos:   uint32(nanos),
			})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), cfg().Output, field{"micros", m.Micros()})
		},
	}
}

func newUnixCommand(cfg configFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "unix <micros>",
		Short: "Convert microseconds since the epoch to Unix seconds and nanoseconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			us, err := parseUint("micros", args[0])
			if err != nil {
				return err
			}
			t := microtime.RealTimeFromMicros(us).Time()
			return render(cmd.OutOrStdout(), cfg().Output,
				field{"unix_seconds", t.Unix()},
				field{"unix_nanos", t.Nanosecond()},
			)
		},
	}
}

func newFromUnixCommand(cfg configFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "from-unix <seconds> <nanos>",
		Short: "Convert Unix seconds and nanoseconds to microseconds since the epoch",
		Long:  "Times before the epoch are rejected.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			secs, err := parseInt("seconds", args[0])
			if err != nil {
				return err
			}
			nanos, err := parseInt("nanos", args[1])
			if err != nil {
				return err
			}
			rt, err := microtime.RealTimeFromTime(time.Unix(secs, nanos))
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), cfg().Output, field{"micros", rt.Micros()})
		},
	}
}

func newDiffCommand(cfg configFunc) *cobra.Command {
	var clock string
	cmd := &cobra.Command{
		Use:   "diff <later> <earlier>",
		Short: "Subtract two instants of the same clock",
		Long:  "Fails instead of wrapping when earlier is after later.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			later, err := parseUint("later", args[0])
			if err != nil {
				return err
			}
			earlier, err := parseUint("earlier", args[1])
			if err != nil {
				return err
			}

			var d microtime.Duration
			switch clock {
			case "monotonic", "mono":
				d, err = microtime.MonotonicFromMicros(later).CheckedSub(microtime.MonotonicFromMicros(earlier))
			case "real", "realtime":
				d, err = microtime.RealTimeFromMicros(later).CheckedSub(microtime.RealTimeFromMicros(earlier))
			default:
				return oops.Errorf("unknown clock %q", clock)
			}
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), cfg().Output,
				field{"micros", d.Micros()},
				field{"millis", d.Millis()},
				field{"seconds", d.Seconds()},
			)
		},
	}
	cmd.Flags().StringVar(&clock, "clock", "monotonic", "clock domain of both instants: monotonic or real")
	return cmd
}

func newSkewCommand(cfg configFunc) *cobra.Command {
	var maxSkew time.Duration
	cmd := &cobra.Command{
		Use:   "skew <published> <now>",
		Short: "Check that a wall-clock timestamp is within the skew window",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			published, err := parseUint("published", args[0])
			if err != nil {
				return err
			}
			now, err := parseUint("now", args[1])
			if err != nil {
				return err
			}

			window := cfg().MaxSkew
			if cmd.Flags().Changed("max") {
				window, err = microtime.DurationFromStd(maxSkew)
				if err != nil {
					return err
				}
			}

			err = skew.ValidateTimestampWithSkew(
				microtime.RealTimeFromMicros(published),
				microtime.RealTimeFromMicros(now),
				window,
			)
			if renderErr := render(cmd.OutOrStdout(), cfg().Output,
				field{"valid", err == nil},
				field{"max_micros", window.Micros()},
			); renderErr != nil {
				return renderErr
			}
			return err
		},
	}
	cmd.Flags().DurationVar(&maxSkew, "max", 0, "skew window, overriding skew.max from the config")
	return cmd
}

func newI2PDateCommand(cfg configFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "i2pdate <micros>",
		Short: "Encode microseconds since the epoch as an I2P date",
		Long:  "I2P dates hold milliseconds; the microsecond digits are dropped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			us, err := parseUint("micros", args[0])
			if err != nil {
				return err
			}
			rt := microtime.RealTimeFromMicros(us)
			date, err := i2pdate.ToDate(rt)
			if err != nil {
				return err
			}
			back, err := i2pdate.FromDate(*date)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), cfg().Output,
				field{"date_hex", hex.EncodeToString(date[:])},
				field{"micros", back.Micros()},
				field{"dropped_micros", rt.Sub(back).Micros()},
			)
		},
	}
}
