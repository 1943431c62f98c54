package prep

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/leapstack-labs/leapprep/pkg/core"
)

// NormalizeMinMax linearly rescales values from [min, max] onto
// [newMin, newMax]. When every value is equal, including the single-element
// case, each output is newMin. A NaN anywhere makes every output NaN.
func NormalizeMinMax(values []float64, newMin, newMax float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	if floats.HasNaN(values) {
		return fill(out, math.NaN())
	}

	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		return fill(out, newMin)
	}

	span := hi - lo
	target := newMax - newMin
	for i, x := range values {
		out[i] = (x-lo)/span*target + newMin
	}
	return out
}

// StandardizeZScore centers values on their mean and scales them by the
// population standard deviation (divisor N). A zero deviation maps every
// value to 0.
func StandardizeZScore(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	mean, std := stat.PopMeanStdDev(values, nil)
	if std == 0 {
		return out
	}
	for i, x := range values {
		out[i] = (x - mean) / std
	}
	return out
}

func fill(out []float64, x float64) []float64 {
	for i := range out {
		out[i] = x
	}
	return out
}

// Clip bounds every value to [lo, hi], applying the lower bound first and
// the upper bound second. If lo > hi every output equals hi.
func Clip(values []float64, lo, hi float64) []float64 {
	out := make([]float64, len(values))
	for i, x := range values {
		out[i] = math.Min(math.Max(x, lo), hi)
	}
	return out
}

// ToIntegers parses each element as a number and keeps the integral ones.
// Text is trimmed before parsing; numbers are taken by value. Elements that
// do not parse, carry a fractional part, are not finite, or do not fit in an
// int64 are skipped.
func ToIntegers(values []core.Value) []int64 {
	out := make([]int64, 0, len(values))
	for _, v := range values {
		if i, ok := v.AsInt(); ok {
			out = append(out, i)
			continue
		}
		f, ok := parseNumber(v)
		if !ok || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
			continue
		}
		if f < math.MinInt64 || f >= math.MaxInt64 {
			continue
		}
		out = append(out, int64(f))
	}
	return out
}

func parseNumber(v core.Value) (float64, bool) {
	if f, ok := v.Float64(); ok {
		return f, true
	}
	s, ok := v.AsText()
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// LogTransform returns the natural logarithm of every numeric element
// strictly greater than zero, in order. Everything else is dropped, so the
// output may be shorter than the input.
func LogTransform(values []core.Value) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		f, ok := v.Float64()
		if !ok || !(f > 0) {
			continue
		}
		out = append(out, math.Log(f))
	}
	return out
}
