package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Conversion errors.
var (
	// ErrUnsupportedType is returned when a Go value has no Value variant,
	// such as a JSON object.
	ErrUnsupportedType = errors.New("unsupported value type")
	// ErrNotNumeric is returned when a numeric sequence holds a non-numeric element.
	ErrNotNumeric = errors.New("not numeric")
	// ErrNotList is returned when a nested sequence holds a non-list element.
	ErrNotList = errors.New("not a list")
)

// FromAny converts a decoded JSON or YAML tree into a Value.
// Objects and maps are rejected with ErrUnsupportedType.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Missing(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return fromUint(uint64(t)), nil
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		return fromUint(t), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case string:
		return Text(t), nil
	case json.Number:
		return FromNumber(string(t))
	case []Value:
		return List(t...), nil
	case []string:
		items := make([]Value, len(t))
		for i, s := range t {
			items[i] = Text(s)
		}
		return Value{kind: KindList, list: items}, nil
	case []any:
		items := make([]Value, len(t))
		for i, elem := range t {
			v, err := FromAny(elem)
			if err != nil {
				return Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			items[i] = v
		}
		return Value{kind: KindList, list: items}, nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
	}
}

func fromUint(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}

// FromNumber converts a JSON number literal into an Int or Float.
// Literals with a fraction or exponent are floats; integers that overflow
// int64 fall back to the nearest float.
func FromNumber(lit string) (Value, error) {
	if !strings.ContainsAny(lit, ".eE") {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return Int(i), nil
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return Float(f), nil
		}
		return Value{}, fmt.Errorf("invalid number %q: %w", lit, err)
	}
	return Float(f), nil
}

// Interface converts v back into plain Go values:
// nil, bool, int64, float64, string or []any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindText:
		return v.s
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// Floats converts a sequence into float64s.
// It fails on the first element that is not numeric.
func Floats(values []Value) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		f, ok := v.Float64()
		if !ok {
			return nil, fmt.Errorf("element %d (%s) is %w", i, v.Repr(), ErrNotNumeric)
		}
		out[i] = f
	}
	return out, nil
}

// CoerceFloats converts a sequence into float64s the way a float array
// constructor would: Missing becomes NaN and text is parsed as a number
// after trimming surrounding whitespace. It fails on the first element that
// is neither numeric nor numeric text.
func CoerceFloats(values []Value) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		switch {
		case v.IsNumeric():
			out[i], _ = v.Float64()
		case v.kind == KindMissing:
			out[i] = math.NaN()
		case v.kind == KindText:
			f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return nil, fmt.Errorf("element %d (%s) is %w", i, v.Repr(), ErrNotNumeric)
			}
			out[i] = f
		default:
			return nil, fmt.Errorf("element %d (%s) is %w", i, v.Repr(), ErrNotNumeric)
		}
	}
	return out, nil
}

// FloatValues wraps float64s as Float Values.
func FloatValues(fs []float64) []Value {
	out := make([]Value, len(fs))
	for i, f := range fs {
		out[i] = Float(f)
	}
	return out
}

// IntValues wraps int64s as Int Values.
func IntValues(is []int64) []Value {
	out := make([]Value, len(is))
	for i, n := range is {
		out[i] = Int(n)
	}
	return out
}

// TextValues wraps strings as Text Values.
func TextValues(ss []string) []Value {
	out := make([]Value, len(ss))
	for i, s := range ss {
		out[i] = Text(s)
	}
	return out
}

// Texts returns the string elements of values, in order.
// Elements of any other kind are dropped.
func Texts(values []Value) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.AsText(); ok {
			out = append(out, s)
		}
	}
	return out
}

// Lists unwraps a sequence of sequences.
// It fails on the first element that is not a list.
func Lists(values []Value) ([][]Value, error) {
	out := make([][]Value, len(values))
	for i, v := range values {
		if v.kind != KindList {
			return nil, fmt.Errorf("element %d (%s) is %w", i, v.Repr(), ErrNotList)
		}
		out[i] = v.list
	}
	return out, nil
}
