package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Repr renders v as a Python literal, the format the CLI result line uses:
// None, True/False, 3, 3.0, 1e-05, nan, 'text', [1, 'a'].
func (v Value) Repr() string {
	var sb strings.Builder
	v.writeRepr(&sb)
	return sb.String()
}

// String implements fmt.Stringer.
func (v Value) String() string { return v.Repr() }

// ReprList renders a sequence the way Repr renders a list Value.
func ReprList(values []Value) string {
	var sb strings.Builder
	writeReprList(&sb, values)
	return sb.String()
}

func (v Value) writeRepr(sb *strings.Builder) {
	switch v.kind {
	case KindMissing:
		sb.WriteString("None")
	case KindBool:
		if v.b {
			sb.WriteString("True")
		} else {
			sb.WriteString("False")
		}
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		sb.WriteString(FormatFloat(v.f))
	case KindText:
		sb.WriteString(QuoteText(v.s))
	case KindList:
		writeReprList(sb, v.list)
	}
}

func writeReprList(sb *strings.Builder, values []Value) {
	sb.WriteByte('[')
	for i, item := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		item.writeRepr(sb)
	}
	sb.WriteByte(']')
}

// FormatFloat renders f with the shortest round-tripping digits, always
// marking it as a float: positional notation with a trailing ".0" for
// decimal exponents in [-4, 16), scientific notation otherwise.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp := 0
	if idx := strings.IndexByte(sci, 'e'); idx >= 0 {
		exp, _ = strconv.Atoi(sci[idx+1:])
	}
	if exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// QuoteText renders s as a Python string literal. Single quotes are used
// unless s contains a single quote and no double quote.
func QuoteText(s string) string {
	quote := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var sb strings.Builder
	sb.WriteByte(quote)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			fmt.Fprintf(&sb, `\x%02x`, s[i])
			i++
			continue
		}
		i += size

		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case r == rune(quote):
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&sb, `\x%02x`, r)
		case r < utf8.RuneSelf || unicode.IsPrint(r):
			sb.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&sb, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(&sb, `\u%04x`, r)
		default:
			fmt.Fprintf(&sb, `\U%08x`, r)
		}
	}
	sb.WriteByte(quote)
	return sb.String()
}
