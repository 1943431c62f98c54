package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/leapstack-labs/leapprep/internal/cli/config"
	"github.com/leapstack-labs/leapprep/internal/codec"
	"github.com/leapstack-labs/leapprep/internal/registry"
	"github.com/leapstack-labs/leapprep/pkg/core"
)

// addParamFlags registers one string flag per parameter. Values are parsed
// by resolveParams so that flags and config defaults share one parser.
func addParamFlags(flags *pflag.FlagSet, params []registry.Param) {
	for _, p := range params {
		usage := p.Usage
		if p.Required {
			usage += " (required)"
		}
		def := ""
		if p.HasDefault() {
			def = p.Default.Repr()
		}
		flags.String(p.Name, def, usage)
	}
}

// resolveParams applies: changed flag, then defaults.<param> from config,
// then the registered default. Unresolved required parameters are errors.
func resolveParams(flags *pflag.FlagSet, cfg *config.Config, params []registry.Param) (map[string]core.Value, error) {
	resolved := make(map[string]core.Value, len(params))
	for _, p := range params {
		v, ok, err := resolveParam(flags, cfg, p)
		if err != nil {
			return nil, err
		}
		if !ok {
			if p.Required {
				return nil, invalidInputf("missing required option --%s", p.Name)
			}
			continue
		}
		resolved[p.Name] = v
	}
	return resolved, nil
}

func resolveParam(flags *pflag.FlagSet, cfg *config.Config, p registry.Param) (core.Value, bool, error) {
	if f := flags.Lookup(p.Name); f != nil && f.Changed {
		raw := f.Value.String()
		v, err := parseParam(p, raw)
		if err != nil {
			return core.Value{}, false, invalidInputf("invalid value %q for --%s: %w", raw, p.Name, err)
		}
		return v, true, nil
	}

	if raw, ok := cfg.Default(p.Name); ok {
		v, err := configParam(p, raw)
		if err != nil {
			return core.Value{}, false, invalidInputf("invalid config value defaults.%s: %w", p.ConfigKey(), err)
		}
		return v, true, nil
	}

	if p.HasDefault() {
		return p.Default, true, nil
	}
	return core.Value{}, false, nil
}

// parseParam parses a flag or environment string according to the
// parameter kind.
func parseParam(p registry.Param, s string) (core.Value, error) {
	switch p.Kind {
	case registry.ParamFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return core.Value{}, fmt.Errorf("%q is not a valid float", s)
		}
		return core.Float(f), nil
	case registry.ParamInt:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return core.Value{}, fmt.Errorf("%q is not a valid integer", s)
		}
		return core.Int(n), nil
	case registry.ParamArray:
		items, err := codec.DecodeArray(s)
		if err != nil {
			return core.Value{}, err
		}
		return core.List(items...), nil
	default:
		return codec.ParseScalar(s), nil
	}
}

// configParam converts a YAML config default. Strings, such as values
// arriving from LEAPPREP_DEFAULTS__* variables, go through parseParam.
func configParam(p registry.Param, raw any) (core.Value, error) {
	if s, ok := raw.(string); ok {
		return parseParam(p, s)
	}

	v, err := codec.DecodeYAMLValue(raw)
	if err != nil {
		return core.Value{}, err
	}

	switch p.Kind {
	case registry.ParamFloat:
		f, ok := v.Float64()
		if !ok {
			return core.Value{}, fmt.Errorf("%s is not a valid float", v.Repr())
		}
		return core.Float(f), nil
	case registry.ParamInt:
		if _, ok := v.AsInt(); !ok {
			return core.Value{}, fmt.Errorf("%s is not a valid integer", v.Repr())
		}
	case registry.ParamArray:
		if _, ok := v.AsList(); !ok {
			return core.Value{}, fmt.Errorf("%s is %w", v.Repr(), core.ErrNotList)
		}
	}
	return v, nil
}
