package core

import (
	"math"
	"strconv"
	"strings"
)

// =============================================================================
// Kind
// =============================================================================

// Kind identifies which variant a Value holds.
type Kind int

// Value kinds.
const (
	// KindMissing is the explicit null/None marker. It is the zero Kind.
	KindMissing Kind = iota
	// KindBool holds a boolean.
	KindBool
	// KindInt holds a 64-bit signed integer.
	KindInt
	// KindFloat holds a 64-bit float, possibly NaN or infinite.
	KindFloat
	// KindText holds a string.
	KindText
	// KindList holds a nested sequence of Values.
	KindList
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// =============================================================================
// Value
// =============================================================================

// Value is a single scalar or nested sequence element.
// The zero Value is Missing.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []Value
}

// Missing returns the explicit missing marker.
func Missing() Value { return Value{} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Text returns a string Value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// List returns a sequence Value. The slice is copied.
func List(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindList, list: cp}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether v is a missing marker: the explicit null,
// a NaN float, or an empty string.
func (v Value) IsMissing() bool {
	switch v.kind {
	case KindMissing:
		return true
	case KindFloat:
		return math.IsNaN(v.f)
	case KindText:
		return v.s == ""
	default:
		return false
	}
}

// IsNumeric reports whether v takes part in arithmetic.
// Booleans count as 0 and 1.
func (v Value) IsNumeric() bool {
	return v.kind == KindBool || v.kind == KindInt || v.kind == KindFloat
}

// Float64 returns the numeric value of v and whether v is numeric.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// AsInt returns the integer held by v.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsText returns the string held by v.
func (v Value) AsText() (string, bool) { return v.s, v.kind == KindText }

// AsList returns a copy of the elements held by v.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	cp := make([]Value, len(v.list))
	copy(cp, v.list)
	return cp, true
}

// Len returns the number of elements of a list, or 0 for scalars.
func (v Value) Len() int { return len(v.list) }

// =============================================================================
// Equality
// =============================================================================

// Key returns the identity of v under the de-duplication equality policy.
//
// Numbers compare by value across Bool, Int and Float, so 1, 1.0 and true
// share a key while the text "1" does not. All NaNs share one key.
// Lists compare element-wise.
func (v Value) Key() string {
	var sb strings.Builder
	v.writeKey(&sb)
	return sb.String()
}

func (v Value) writeKey(sb *strings.Builder) {
	switch v.kind {
	case KindMissing:
		sb.WriteString("none")
	case KindBool:
		if v.b {
			sb.WriteString("n:1")
		} else {
			sb.WriteString("n:0")
		}
	case KindInt:
		sb.WriteString("n:")
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		switch {
		case math.IsNaN(v.f):
			sb.WriteString("nan")
		case v.f == math.Trunc(v.f) && v.f >= math.MinInt64 && v.f < math.MaxInt64:
			sb.WriteString("n:")
			sb.WriteString(strconv.FormatInt(int64(v.f), 10))
		default:
			sb.WriteString("f:")
			sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
		}
	case KindText:
		sb.WriteString("s:")
		sb.WriteString(strconv.Quote(v.s))
	case KindList:
		sb.WriteString("l[")
		for i, item := range v.list {
			if i > 0 {
				sb.WriteByte(',')
			}
			item.writeKey(sb)
		}
		sb.WriteByte(']')
	}
}

// Equal reports whether v and other are the same under the Key policy.
func (v Value) Equal(other Value) bool {
	return v.Key() == other.Key()
}
