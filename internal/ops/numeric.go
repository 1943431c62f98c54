package ops

import (
	"context"

	"github.com/leapstack-labs/leapprep/internal/registry"
	"github.com/leapstack-labs/leapprep/pkg/core"
	"github.com/leapstack-labs/leapprep/pkg/prep"
)

// Normalize rescales values onto [new-min, new-max].
var Normalize = &registry.Operation{
	Name:        "normalize",
	Group:       GroupNumeric,
	Summary:     "Normalize numerical values using min-max scaling",
	Description: "Rescale values linearly onto [new-min, new-max]. If all values are equal every output is new-min. Numeric strings are parsed and null becomes nan.",
	Example:     `leapprep numeric normalize '[1, 2, 3, 4, 5]' --new-min 0 --new-max 10`,
	Input:       registry.InputArray,
	Params: []registry.Param{
		{Name: "new-min", Usage: "new minimum value", Kind: registry.ParamFloat, Default: core.Float(0)},
		{Name: "new-max", Usage: "new maximum value", Kind: registry.ParamFloat, Default: core.Float(1)},
	},
	Apply: func(_ context.Context, inv registry.Invocation) (core.Value, error) {
		xs, err := core.CoerceFloats(inv.Values)
		if err != nil {
			return core.Value{}, err
		}
		lo, err := inv.Float("new-min")
		if err != nil {
			return core.Value{}, err
		}
		hi, err := inv.Float("new-max")
		if err != nil {
			return core.Value{}, err
		}
		return core.List(core.FloatValues(prep.NormalizeMinMax(xs, lo, hi))...), nil
	},
}

// Standardize applies the population z-score.
var Standardize = &registry.Operation{
	Name:        "standardize",
	Group:       GroupNumeric,
	Summary:     "Standardize numerical values using the z-score method",
	Description: "Center values on their mean and divide by the population standard deviation. A zero deviation yields all zeros. Numeric strings are parsed and null becomes nan.",
	Example:     `leapprep numeric standardize '[10, 20, 30, 40, 50]'`,
	Input:       registry.InputArray,
	Apply: func(_ context.Context, inv registry.Invocation) (core.Value, error) {
		xs, err := core.CoerceFloats(inv.Values)
		if err != nil {
			return core.Value{}, err
		}
		return core.List(core.FloatValues(prep.StandardizeZScore(xs))...), nil
	},
}

// Clip bounds values to [min-value, max-value].
var Clip = &registry.Operation{
	Name:        "clip",
	Group:       GroupNumeric,
	Summary:     "Clip numerical values to a specified range",
	Description: "Apply max(x, min-value) then min(x, max-value). When min-value exceeds max-value every output is max-value.",
	Example:     `leapprep numeric clip '[1, 5, 10, 15]' --min-value 2 --max-value 8`,
	Input:       registry.InputArray,
	Params: []registry.Param{
		{Name: "min-value", Usage: "lower bound", Kind: registry.ParamFloat, Required: true},
		{Name: "max-value", Usage: "upper bound", Kind: registry.ParamFloat, Required: true},
	},
	Apply: func(_ context.Context, inv registry.Invocation) (core.Value, error) {
		xs, err := core.Floats(inv.Values)
		if err != nil {
			return core.Value{}, err
		}
		lo, err := inv.Float("min-value")
		if err != nil {
			return core.Value{}, err
		}
		hi, err := inv.Float("max-value")
		if err != nil {
			return core.Value{}, err
		}
		return core.List(core.FloatValues(prep.Clip(xs, lo, hi))...), nil
	},
}

// ToInteger keeps the elements that parse as integral numbers.
var ToInteger = &registry.Operation{
	Name:        "to-integer",
	Group:       GroupNumeric,
	Summary:     "Convert values to integers, dropping non-numerical ones",
	Description: "Parse each value as a number and keep those with no fractional part. Anything else is skipped.",
	Example:     `leapprep numeric to-integer '["1", "2.5", "abc", "3"]'`,
	Input:       registry.InputArray,
	Apply: func(_ context.Context, inv registry.Invocation) (core.Value, error) {
		return core.List(core.IntValues(prep.ToIntegers(inv.Values))...), nil
	},
}

// LogTransform takes the natural log of positive numbers.
var LogTransform = &registry.Operation{
	Name:        "log-transform",
	Group:       GroupNumeric,
	Summary:     "Transform numerical values to logarithmic scale (positive values only)",
	Description: "Take the natural logarithm of every number greater than zero. Other values are dropped.",
	Example:     `leapprep numeric log-transform '[1, 10, 100, 1000]'`,
	Input:       registry.InputArray,
	Apply: func(_ context.Context, inv registry.Invocation) (core.Value, error) {
		return core.List(core.FloatValues(prep.LogTransform(inv.Values))...), nil
	},
}
