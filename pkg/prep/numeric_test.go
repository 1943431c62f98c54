package prep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapprep/pkg/core"
)

func TestNormalizeMinMax(t *testing.T) {
	tests := []struct {
		name           string
		values         []float64
		newMin, newMax float64
		want           []float64
	}{
		{"unit range", []float64{1, 2, 3, 4, 5}, 0, 1, []float64{0, 0.25, 0.5, 0.75, 1}},
		{"wider range", []float64{1, 2, 3, 4, 5}, 0, 10, []float64{0, 2.5, 5, 7.5, 10}},
		{"negative target", []float64{0, 10}, -1, 1, []float64{-1, 1}},
		{"single element maps to new min", []float64{5}, 0, 1, []float64{0}},
		{"constant maps to new min", []float64{3, 3, 3}, 2, 9, []float64{2, 2, 2}},
		{"inverted target", []float64{0, 5, 10}, 1, 0, []float64{1, 0.5, 0}},
		{"empty", nil, 0, 1, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeMinMax(tt.values, tt.newMin, tt.newMax)
			require.Len(t, got, len(tt.want))
			assert.InDeltaSlice(t, tt.want, got, 1e-12)
		})
	}
}

func TestStandardizeZScore(t *testing.T) {
	got := StandardizeZScore([]float64{1, 2, 3})
	assert.InDeltaSlice(t, []float64{-1.224744871391589, 0, 1.224744871391589}, got, 1e-12)

	got = StandardizeZScore([]float64{1, 3})
	assert.InDeltaSlice(t, []float64{-1, 1}, got, 1e-12)

	assert.Equal(t, []float64{0, 0, 0}, StandardizeZScore([]float64{1, 1, 1}))
	assert.Equal(t, []float64{0}, StandardizeZScore([]float64{5}))
	assert.Empty(t, StandardizeZScore(nil))
}

func TestStandardizeZScoreUsesPopulationDeviation(t *testing.T) {
	// population std of {2,4,4,4,5,5,7,9} is exactly 2, mean is 5
	got := StandardizeZScore([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDeltaSlice(t, []float64{-1.5, -0.5, -0.5, -0.5, 0, 0, 1, 2}, got, 1e-12)
}

func TestNaNPropagatesThroughReductions(t *testing.T) {
	for name, got := range map[string][]float64{
		"normalize":   NormalizeMinMax([]float64{1, math.NaN(), 3}, 0, 1),
		"standardize": StandardizeZScore([]float64{1, math.NaN(), 3}),
	} {
		require.Len(t, got, 3, name)
		for i, x := range got {
			assert.True(t, math.IsNaN(x), "%s[%d] = %v", name, i, x)
		}
	}
}

func TestClip(t *testing.T) {
	assert.Equal(t, []float64{2, 5, 8, 8}, Clip([]float64{1, 5, 10, 15}, 2, 8))
	assert.Equal(t, []float64{1, 2, 3}, Clip([]float64{1, 2, 3}, 0, 10))
	assert.Equal(t, []float64{2, 2, 2}, Clip([]float64{1, 1, 1}, 2, 10))
	assert.Empty(t, Clip(nil, 0, 1))

	// lower bound first, upper bound last: everything lands on hi
	assert.Equal(t, []float64{3, 3, 3}, Clip([]float64{0, 5, 10}, 8, 3))
}

func TestClipDoesNotMutateInput(t *testing.T) {
	in := []float64{1, 5, 10}
	_ = Clip(in, 2, 8)
	assert.Equal(t, []float64{1, 5, 10}, in)
}

func TestToIntegers(t *testing.T) {
	tests := []struct {
		name   string
		values []core.Value
		want   []int64
	}{
		{"mixed", []core.Value{core.Text("1"), core.Text("2.5"), core.Text("abc"), core.Text("3")}, []int64{1, 3}},
		{"all valid", []core.Value{core.Text("1"), core.Text("2"), core.Text("3")}, []int64{1, 2, 3}},
		{"none valid", []core.Value{core.Text("abc"), core.Text("def")}, []int64{}},
		{"integral float text", []core.Value{core.Text("4.0"), core.Text(" 7 "), core.Text("-2e1")}, []int64{4, 7, -20}},
		{"numbers and missing", []core.Value{core.Int(5), core.Float(6.0), core.Float(6.5), core.Missing(), core.Bool(true)}, []int64{5, 6, 1}},
		{"non finite", []core.Value{core.Text("inf"), core.Text("nan"), core.Float(math.NaN())}, []int64{}},
		{"overflow skipped", []core.Value{core.Text("1e300"), core.Text("9")}, []int64{9}},
		{"empty", nil, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToIntegers(tt.values))
		})
	}
}

func TestLogTransform(t *testing.T) {
	got := LogTransform([]core.Value{core.Int(1), core.Int(10), core.Int(0), core.Int(-5)})
	require.Len(t, got, 2)
	assert.InDelta(t, 0.0, got[0], 0)
	assert.InDelta(t, 2.302585092994046, got[1], 1e-15)

	got = LogTransform([]core.Value{core.Text("10"), core.Missing(), core.Float(math.NaN()), core.Float(math.E), core.List(core.Int(3))})
	require.Len(t, got, 1)
	assert.InDelta(t, 1.0, got[0], 1e-15)

	assert.Empty(t, LogTransform([]core.Value{core.Int(-1), core.Int(0)}))
	assert.Empty(t, LogTransform(nil))
}
