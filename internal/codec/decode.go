// Package codec converts command-line JSON arguments into core.Values and
// results back into JSON- and YAML-friendly trees.
//
// Decoding accepts standard JSON plus the bare tokens NaN, Infinity and
// -Infinity outside string literals, mirroring what Python's json module
// emits. Objects are rejected: no operation takes mappings.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/leapstack-labs/leapprep/pkg/core"
)

// Decoding errors.
var (
	// ErrMalformed is returned when the input is not valid JSON.
	ErrMalformed = errors.New("malformed JSON")
	// ErrNotArray is returned when valid JSON is not a top-level array.
	ErrNotArray = errors.New("not a JSON array")
)

// floatMarker is the object key non-finite tokens are rewritten to before
// decoding. Objects are otherwise rejected, so the rewrite is unambiguous.
const floatMarker = "$float"

// DecodeArray decodes s as a JSON array.
func DecodeArray(s string) ([]core.Value, error) {
	v, err := DecodeValue(s)
	if err != nil {
		return nil, err
	}
	items, ok := v.AsList()
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotArray, v.Kind())
	}
	return items, nil
}

// DecodeValue decodes s as any single JSON value other than an object.
func DecodeValue(s string) (core.Value, error) {
	dec := json.NewDecoder(strings.NewReader(rewriteNonFinite(s)))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		if errors.Is(err, io.EOF) {
			return core.Value{}, fmt.Errorf("%w: empty input", ErrMalformed)
		}
		return core.Value{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return core.Value{}, fmt.Errorf("%w: trailing data after value", ErrMalformed)
	}

	v, err := fromTree(tree)
	if err != nil {
		return core.Value{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return v, nil
}

func fromTree(tree any) (core.Value, error) {
	switch t := tree.(type) {
	case map[string]any:
		if f, ok := nonFinite(t); ok {
			return core.Float(f), nil
		}
		return core.Value{}, fmt.Errorf("%w: objects are not supported", core.ErrUnsupportedType)
	case []any:
		items := make([]core.Value, len(t))
		for i, elem := range t {
			v, err := fromTree(elem)
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

func nonFinite(obj map[string]any) (float64, bool) {
	if len(obj) != 1 {
		return 0, false
	}
	tok, ok := obj[floatMarker].(string)
	if !ok {
		return 0, false
	}
	switch tok {
	case "NaN":
		return math.NaN(), true
	case "Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	return 0, false
}

// rewriteNonFinite replaces NaN, Infinity and -Infinity tokens found outside
// string literals with marker objects.
func rewriteNonFinite(s string) string {
	if !strings.ContainsAny(s, "NI") {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	inString, escaped := false, false

	for i := 0; i < len(s); {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			sb.WriteByte(c)
			i++
			continue
		}
		if c == '"' {
			inString = true
			sb.WriteByte(c)
			i++
			continue
		}

		matched := false
		for _, tok := range []string{"-Infinity", "Infinity", "NaN"} {
			if strings.HasPrefix(s[i:], tok) {
				fmt.Fprintf(&sb, `{%q:%q}`, floatMarker, tok)
				i += len(tok)
				matched = true
				break
			}
		}
		if !matched {
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String()
}

// ParseScalar decodes s as JSON when it is valid JSON and returns it as
// plain text otherwise. Used for flags such as --fill-value where both
// 999 and MISSING are meaningful.
func ParseScalar(s string) core.Value {
	v, err := DecodeValue(s)
	if err != nil {
		return core.Text(s)
	}
	return v
}
