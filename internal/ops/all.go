// Package ops binds the pkg/prep transforms to the operation registry.
// Import this package to register every operation:
//
//	import _ "github.com/leapstack-labs/leapprep/internal/ops"
//
// Operation groups:
//   - clean: remove-missing, fill-missing, remove-duplicates
//   - numeric: normalize, standardize, clip, to-integer, log-transform
//   - text: tokenize, remove-punctuation, remove-stopwords
//   - struct: flatten, shuffle, unique
package ops

import "github.com/leapstack-labs/leapprep/internal/registry"

// Group names.
const (
	GroupClean   = "clean"
	GroupNumeric = "numeric"
	GroupText    = "text"
	GroupStruct  = "struct"
)

// Groups lists every operation group.
var Groups = []registry.Group{
	{Name: GroupClean, Summary: "Commands for data cleaning operations"},
	{Name: GroupNumeric, Summary: "Commands for numerical data preprocessing"},
	{Name: GroupText, Summary: "Commands for text data preprocessing"},
	{Name: GroupStruct, Summary: "Commands for data structure operations"},
}

// All lists every operation defined in this package.
var All = []*registry.Operation{
	RemoveMissing, FillMissing, RemoveDuplicates,
	Normalize, Standardize, Clip, ToInteger, LogTransform,
	Tokenize, RemovePunctuation, RemoveStopwords,
	Flatten, Shuffle, Unique,
}

// RegisterAll adds every group and operation to r.
func RegisterAll(r *registry.Registry) error {
	for _, g := range Groups {
		r.RegisterGroup(g)
	}
	for _, op := range All {
		if err := r.Register(op); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	if err := RegisterAll(registry.Default); err != nil {
		panic(err)
	}
}
