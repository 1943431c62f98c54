package config

import (
	"fmt"
	"strings"

	sharedcfg "github.com/leapstack-labs/leapprep/internal/config"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !sharedcfg.IsOutputMode(c.OutputFormat) {
		return invalid("output", c.OutputFormat, sharedcfg.OutputModes)
	}
	if !sharedcfg.IsLogLevel(c.LogLevel) {
		return invalid("log_level", c.LogLevel, sharedcfg.LogLevels)
	}
	if !sharedcfg.IsLogFormat(c.LogFormat) {
		return invalid("log_format", c.LogFormat, sharedcfg.LogFormats)
	}
	return nil
}

func invalid(key, got string, valid []string) error {
	return fmt.Errorf("invalid %s %q (valid: %s)\nHint: check %s, LEAPPREP_%s or the corresponding flag",
		key, got, strings.Join(valid, ", "), sharedcfg.ConfigFileName, strings.ToUpper(key))
}
