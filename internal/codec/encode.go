package codec

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/leapprep/pkg/core"
)

// JSONTree converts v into plain Go values that encoding/json accepts.
// NaN and infinities have no JSON form and become null.
func JSONTree(v core.Value) any {
	switch v.Kind() {
	case core.KindFloat:
		f, _ := v.Float64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f
	case core.KindList:
		items, _ := v.AsList()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = JSONTree(item)
		}
		return out
	default:
		return v.Interface()
	}
}

// MarshalJSON encodes v as indented JSON under the given top-level key.
func MarshalJSON(key string, v core.Value) ([]byte, error) {
	return json.MarshalIndent(map[string]any{key: JSONTree(v)}, "", "  ")
}

// MarshalYAML encodes v as YAML under the given top-level key.
// yaml.v3 writes non-finite floats as .nan and .inf.
func MarshalYAML(key string, v core.Value) ([]byte, error) {
	return yaml.Marshal(map[string]any{key: v.Interface()})
}

// DecodeYAMLValue converts a YAML-decoded tree, such as a config default,
// into a Value.
func DecodeYAMLValue(tree any) (core.Value, error) {
	switch t := tree.(type) {
	case map[string]any:
		return fromTree(t)
	case []any:
		items := make([]core.Value, len(t))
		for i, elem := range t {
			v, err := DecodeYAMLValue(elem)
			if err != nil {
				return core.Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			items[i] = v
		}
		return core.List(items...), nil
	default:
		return core.FromAny(t)
	}
}
