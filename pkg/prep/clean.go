package prep

import "github.com/leapstack-labs/leapprep/pkg/core"

// RemoveMissing returns the elements of values that are not missing markers
// (null, NaN or empty string), in order. Zero and false are kept.
func RemoveMissing(values []core.Value) []core.Value {
	out := make([]core.Value, 0, len(values))
	for _, v := range values {
		if !v.IsMissing() {
			out = append(out, v)
		}
	}
	return out
}

// FillMissing returns a copy of values with every missing marker replaced
// by fill. The fill value may be of any kind.
func FillMissing(values []core.Value, fill core.Value) []core.Value {
	out := make([]core.Value, len(values))
	for i, v := range values {
		if v.IsMissing() {
			out[i] = fill
		} else {
			out[i] = v
		}
	}
	return out
}

// RemoveDuplicates returns the distinct elements of values in
// first-occurrence order. Equality follows core.Value.Key: 1, 1.0 and true
// collapse to the first one seen, while 1 and "1" stay distinct.
func RemoveDuplicates(values []core.Value) []core.Value {
	seen := make(map[string]struct{}, len(values))
	out := make([]core.Value, 0, len(values))
	for _, v := range values {
		key := v.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
