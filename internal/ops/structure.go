package ops

import (
	"context"
	"math/rand/v2"

	"github.com/leapstack-labs/leapprep/internal/registry"
	"github.com/leapstack-labs/leapprep/pkg/core"
	"github.com/leapstack-labs/leapprep/pkg/prep"
)

// Flatten concatenates the inner lists of a list of lists.
var Flatten = &registry.Operation{
	Name:        "flatten",
	Group:       GroupStruct,
	Summary:     "Flatten a list of lists into a single list",
	Description: "Concatenate the inner lists, one level deep. Every element must be a list.",
	Example:     `leapprep struct flatten '[[1, 2], [3, 4], [5, 6]]'`,
	Input:       registry.InputArray,
	Apply: func(_ context.Context, inv registry.Invocation) (core.Value, error) {
		nested, err := core.Lists(inv.Values)
		if err != nil {
			return core.Value{}, err
		}
		return core.List(prep.Flatten(nested)...), nil
	},
}

// Shuffle permutes values, deterministically when seeded.
var Shuffle = &registry.Operation{
	Name:        "shuffle",
	Group:       GroupStruct,
	Summary:     "Randomly shuffle a list of values",
	Description: "Return a random permutation of the values. The same seed always gives the same order.",
	Example:     `leapprep struct shuffle '[1, 2, 3, 4, 5]' --seed 42`,
	Input:       registry.InputArray,
	Params: []registry.Param{
		{Name: "seed", Usage: "random seed for reproducibility", Kind: registry.ParamInt},
	},
	Apply: func(_ context.Context, inv registry.Invocation) (core.Value, error) {
		seed, seeded, err := inv.Int("seed")
		if err != nil {
			return core.Value{}, err
		}
		var rng *rand.Rand
		if seeded {
			rng = prep.NewRand(seed)
		}
		return core.List(prep.Shuffle(inv.Values, rng)...), nil
	},
}

// Unique is remove-duplicates under the struct group.
var Unique = &registry.Operation{
	Name:        "unique",
	Group:       GroupStruct,
	Summary:     "Get unique values from a list",
	Description: RemoveDuplicates.Description,
	Example:     `leapprep struct unique '[1, 2, 2, 3, 3, 3, 4]'`,
	Input:       registry.InputArray,
	Apply:       applyRemoveDuplicates,
}
