// Package config provides configuration management for the LeapPrep CLI.
//
// Configuration is layered with koanf: built-in defaults, then the
// leapprep.yaml file, then LEAPPREP_* environment variables, then
// explicitly set root flags. Shared pieces (file discovery, accepted
// values, parameter defaults) live in internal/config and are re-exported
// here where commands need them.
package config

import (
	sharedcfg "github.com/leapstack-labs/leapprep/internal/config"
)

// ParamDefaults is an alias for the shared parameter defaults map.
// This allows CLI code to use config.ParamDefaults without importing internal/config.
type ParamDefaults = sharedcfg.ParamDefaults

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string        `koanf:"output"`
	Verbose      bool          `koanf:"verbose"`
	LogLevel     string        `koanf:"log_level"`
	LogFormat    string        `koanf:"log_format"`
	Defaults     ParamDefaults `koanf:"defaults"`
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultOutput    = sharedcfg.DefaultOutput // auto renders as text
	DefaultLogLevel  = sharedcfg.DefaultLogLevel
	DefaultLogFormat = sharedcfg.DefaultLogFormat
)

// Default returns the configured default for an operation parameter.
func (c *Config) Default(param string) (any, bool) {
	if c == nil {
		return nil, false
	}
	return c.Defaults.Lookup(param)
}
