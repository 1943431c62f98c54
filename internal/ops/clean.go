package ops

import (
	"context"

	"github.com/leapstack-labs/leapprep/internal/registry"
	"github.com/leapstack-labs/leapprep/pkg/core"
	"github.com/leapstack-labs/leapprep/pkg/prep"
)

// RemoveMissing drops null, NaN and empty-string elements.
var RemoveMissing = &registry.Operation{
	Name:        "remove-missing",
	Group:       GroupClean,
	Summary:     "Remove missing values (null, NaN, empty string) from a list",
	Description: "Remove missing values from a JSON array. Zero and false are kept.",
	Example:     `leapprep clean remove-missing '["a", null, "", "b", "c"]'`,
	Input:       registry.InputArray,
	Apply: func(_ context.Context, inv registry.Invocation) (core.Value, error) {
		return core.List(prep.RemoveMissing(inv.Values)...), nil
	},
}

// FillMissing replaces missing elements with a fill value.
var FillMissing = &registry.Operation{
	Name:    "fill-missing",
	Group:   GroupClean,
	Summary: "Fill missing values with a specified value",
	Description: `Replace every missing value (null, NaN, empty string) with the fill value.
The fill value is parsed as JSON when possible and used as plain text otherwise.`,
	Example: `leapprep clean fill-missing '[1, null, 3]' --fill-value 999
leapprep clean fill-missing '["a", null, "", "b"]' --fill-value MISSING`,
	Input: registry.InputArray,
	Params: []registry.Param{
		{Name: "fill-value", Usage: "value to fill missing entries", Kind: registry.ParamScalar, Default: core.Int(0)},
	},
	Apply: func(_ context.Context, inv registry.Invocation) (core.Value, error) {
		fill, _ := inv.Value("fill-value")
		return core.List(prep.FillMissing(inv.Values, fill)...), nil
	},
}

// RemoveDuplicates keeps the first occurrence of each distinct element.
var RemoveDuplicates = &registry.Operation{
	Name:        "remove-duplicates",
	Group:       GroupClean,
	Summary:     "Remove duplicate values from a list",
	Description: "Keep the first occurrence of each distinct value. 1, 1.0 and true are the same value; 1 and \"1\" are not.",
	Example:     `leapprep clean remove-duplicates '[1, 2, 2, 3, 3, 3]'`,
	Input:       registry.InputArray,
	Apply:       applyRemoveDuplicates,
}

func applyRemoveDuplicates(_ context.Context, inv registry.Invocation) (core.Value, error) {
	return core.List(prep.RemoveDuplicates(inv.Values)...), nil
}
