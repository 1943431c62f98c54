package config

import "slices"

// Default configuration values.
const (
	DefaultOutput    = "auto"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// EnvPrefix is the prefix of environment variables read into the config.
// Nested keys use a double underscore: LEAPPREP_DEFAULTS__NEW_MIN.
const EnvPrefix = "LEAPPREP_"

// Accepted values for the enumerated settings.
var (
	OutputModes = []string{"auto", "text", "json", "yaml", "table"}
	LogLevels   = []string{"debug", "info", "warn", "error"}
	LogFormats  = []string{"text", "json"}
)

// IsOutputMode reports whether s is an accepted output mode.
func IsOutputMode(s string) bool { return slices.Contains(OutputModes, s) }

// IsLogLevel reports whether s is an accepted log level.
func IsLogLevel(s string) bool { return slices.Contains(LogLevels, s) }

// IsLogFormat reports whether s is an accepted log format.
func IsLogFormat(s string) bool { return slices.Contains(LogFormats, s) }
