// Package config provides shared configuration types for LeapPrep.
// This package is decoupled from CLI concerns: it knows where config files
// live and what operation parameter defaults look like, not how they are
// layered.
package config

import "strings"

// ParamDefaults holds per-parameter defaults read from the "defaults"
// section of the config file, keyed by snake_case parameter name.
// Values are raw YAML or environment values (string, int, float64, bool,
// []any) and are parsed against the parameter's kind by the caller.
type ParamDefaults map[string]any

// Lookup returns the default for a parameter. Both "new_min" and "new-min"
// address the same entry.
func (d ParamDefaults) Lookup(name string) (any, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d[strings.ReplaceAll(name, "-", "_")]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}
