package ops

import (
	"context"

	"github.com/leapstack-labs/leapprep/internal/registry"
	"github.com/leapstack-labs/leapprep/pkg/core"
	"github.com/leapstack-labs/leapprep/pkg/prep"
)

// Tokenize splits text into lower-case alphanumeric words.
var Tokenize = &registry.Operation{
	Name:        "tokenize",
	Group:       GroupText,
	Summary:     "Tokenize text into lowercase alphanumeric words",
	Description: "Lower-case the text and return its ASCII alphanumeric words in order.",
	Example:     `leapprep text tokenize "Hello, World! This is a TEST 123."`,
	Input:       registry.InputText,
	Apply: func(_ context.Context, inv registry.Invocation) (core.Value, error) {
		return core.List(core.TextValues(prep.Tokenize(inv.Text))...), nil
	},
}

// RemovePunctuation keeps ASCII letters, digits and spaces.
var RemovePunctuation = &registry.Operation{
	Name:        "remove-punctuation",
	Group:       GroupText,
	Aliases:     []string{"strip-non-alphanumeric"},
	Summary:     "Remove punctuation, keeping only alphanumeric characters and spaces",
	Description: "Delete every character that is not an ASCII letter, digit or space. Casing and spacing are kept.",
	Example:     `leapprep text remove-punctuation "Hello, World! How are you?"`,
	Input:       registry.InputText,
	Apply: func(_ context.Context, inv registry.Invocation) (core.Value, error) {
		return core.Text(prep.StripNonAlphanumeric(inv.Text)), nil
	},
}

// RemoveStopwords drops listed words from lower-cased text.
var RemoveStopwords = &registry.Operation{
	Name:    "remove-stopwords",
	Group:   GroupText,
	Summary: "Remove stop-words from text",
	Description: `Lower-case the text, split it on whitespace and drop every word found in
the stopword list. Survivors are joined with single spaces.`,
	Example: `leapprep text remove-stopwords "this is a test" --stopwords '["is", "a"]'`,
	Input:   registry.InputText,
	Params: []registry.Param{
		{Name: "stopwords", Usage: "JSON array of stopwords to remove", Kind: registry.ParamArray, Default: core.List()},
	},
	Apply: func(_ context.Context, inv registry.Invocation) (core.Value, error) {
		words, err := inv.List("stopwords")
		if err != nil {
			return core.Value{}, err
		}
		return core.Text(prep.RemoveStopwords(inv.Text, core.Texts(words))), nil
	},
}
