// Package config provides configuration for the microtime command.
//
// Settings come, in increasing priority, from built-in defaults, a YAML
// file, and MICROTIME_* environment variables:
//
//	output: yaml      # MICROTIME_OUTPUT
//	skew:
//	  max: 60m        # MICROTIME_SKEW_MAX
//
// The file is $HOME/.microtime/config.yaml unless --config names another.
// A missing default file is fine; a missing named file is an error.
package config
