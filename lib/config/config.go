package config

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/spf13/viper"

	"github.com/codyps/microtime/lib/microtime"
	"github.com/codyps/microtime/lib/util"
)

var (
	CfgFile string
	log     = logger.GetGoI2PLogger()
)

const MICROTIME_BASE_DIR = ".microtime"

const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Config holds the settings of the microtime command.
type Config struct {
	// Output selects the result format: "text" or "yaml".
	// Default: text
	Output string

	// MaxSkew is the window used by the skew command.
	// Default: 60 minutes
	MaxSkew microtime.Duration
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Output:  OutputText,
		MaxSkew: microtime.DurationFromSeconds(60 * 60),
	}
}

// InitConfig loads CfgFile, or config.yaml from the microtime directory if
// no file was named. A missing default file is not an error; a missing
// named file is.
func InitConfig() error {
	if CfgFile != "" {
		viper.SetConfigFile(CfgFile)
	} else {
		viper.AddConfigPath(BuildMicrotimeDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("MICROTIME")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()
	return handleConfigFile()
}

func setDefaults() {
	d := Defaults()
	viper.SetDefault("output", d.Output)
	viper.SetDefault("skew.max", time.Duration(d.MaxSkew.Micros())*time.Microsecond)
}

// CurrentConfig builds a Config from the current viper settings.
func CurrentConfig() (*Config, error) {
	output := strings.ToLower(viper.GetString("output"))
	switch output {
	case OutputText, OutputYAML:
	default:
		return nil, oops.Errorf("unknown output format %q", output)
	}

	maxSkew, err := microtime.DurationFromStd(viper.GetDuration("skew.max"))
	if err != nil {
		return nil, oops.Wrapf(err, "skew.max")
	}
	if maxSkew.IsZero() {
		return nil, oops.Errorf("skew.max must be positive")
	}

	return &Config{
		Output:  output,
		MaxSkew: maxSkew,
	}, nil
}

func handleConfigFile() error {
	err := viper.ReadInConfig()
	if err == nil {
		log.WithField("file", viper.ConfigFileUsed()).Debug("Using config file")
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) && CfgFile == "" {
		log.Debug("No config file found, using defaults")
		return nil
	}
	return oops.Wrapf(err, "reading config file")
}

func BuildMicrotimeDirPath() string {
	return filepath.Join(util.UserHome(), MICROTIME_BASE_DIR)
}
