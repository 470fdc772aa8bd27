// Package cli implements the microtime command-line tool.
package cli

import (
	"os"
	"strconv"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/codyps/microtime/lib/config"
)

var log = logger.GetGoI2PLogger()

// NewRootCommand builds the microtime command tree.
func NewRootCommand() *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:   "microtime",
		Short: "Inspect and convert microsecond time values",
		Long: `microtime converts between microsecond counts and the seconds+nanoseconds,
Unix time and I2P date forms, and does checked arithmetic on them.
Instants are read as monotonic or real (wall-clock) depending on the command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitConfig(); err != nil {
				return err
			}
			c, err := config.CurrentConfig()
			if err != nil {
				return err
			}
			cfg = c
			return nil
		},
	}

	root.PersistentFlags().StringVar(&config.CfgFile, "config", "", "config file (default $HOME/.microtime/config.yaml)")
	root.PersistentFlags().StringP("output", "o", config.OutputText, "output format: text or yaml")
	if err := viper.BindPFlag("output", root.PersistentFlags().Lookup("output")); err != nil {
		log.WithError(err).Error("failed to bind output flag")
	}

	current := func() *config.Config { return cfg }
	root.AddCommand(
		newSplitCommand(current),
		newJoinCommand(current),
		newUnixCommand(current),
		newFromUnixCommand(current),
		newDiffCommand(current),
		newSkewCommand(current),
		newI2PDateCommand(current),
	)
	return root
}

// Execute runs the command tree with os.Args and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		log.WithError(err).Error("microtime failed")
		os.Stderr.WriteString("error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func parseUint(name, s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, oops.Wrapf(err, "parsing %s %q", name, s)
	}
	return v, nil
}

func parseInt(name, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, oops.Wrapf(err, "parsing %s %q", name, s)
	}
	return v, nil
}
