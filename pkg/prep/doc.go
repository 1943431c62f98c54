// Package prep is the LeapPrep transform library: small, pure functions for
// cleaning sequences, rescaling numbers, tokenizing text and reshaping lists.
//
// Every function returns newly allocated output and never modifies its
// arguments. Functions hold no package-level state, so concurrent calls are
// safe without locking. Empty input always yields empty output.
//
// # Cleaning
//
//	prep.RemoveMissing(values)               // drops None, NaN and ""
//	prep.FillMissing(values, core.Int(0))    // replaces them in place
//	prep.RemoveDuplicates(values)            // first-occurrence order
//
// # Numeric
//
//	prep.NormalizeMinMax(xs, 0, 1)
//	prep.StandardizeZScore(xs)
//	prep.Clip(xs, 2, 8)
//	prep.ToIntegers(values)
//	prep.LogTransform(values)
//
// # Text
//
//	prep.Tokenize("Hello, World!")           // ["hello", "world"]
//	prep.StripNonAlphanumeric("a-b c!")      // "ab c"
//	prep.RemoveStopwords(text, []string{"a"})
//
// # Structure
//
//	prep.Flatten([][]int{{1, 2}, {3}})
//	prep.Shuffle(xs, prep.NewRand(42))
//
// Bad elements inside a valid sequence (unparsable strings for ToIntegers,
// non-positive numbers for LogTransform) are skipped, not reported.
package prep
