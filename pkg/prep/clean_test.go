package prep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/leapprep/pkg/core"
)

func TestRemoveMissing(t *testing.T) {
	tests := []struct {
		name   string
		values []core.Value
		want   string
	}{
		{
			name:   "empty",
			values: nil,
			want:   "[]",
		},
		{
			name:   "mixed markers",
			values: []core.Value{core.Int(1), core.Missing(), core.Int(2), core.Float(math.NaN()), core.Text(""), core.Int(3)},
			want:   "[1, 2, 3]",
		},
		{
			name:   "falsy values survive",
			values: []core.Value{core.Int(0), core.Bool(false), core.Float(0), core.Text(" ")},
			want:   "[0, False, 0.0, ' ']",
		},
		{
			name:   "strings",
			values: []core.Value{core.Text("a"), core.Missing(), core.Text(""), core.Text("b")},
			want:   "['a', 'b']",
		},
		{
			name:   "all missing",
			values: []core.Value{core.Missing(), core.Missing(), core.Text("")},
			want:   "[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveMissing(tt.values)
			assert.Equal(t, tt.want, core.ReprList(got))
			assert.LessOrEqual(t, len(got), len(tt.values))
		})
	}
}

func TestFillMissing(t *testing.T) {
	values := []core.Value{core.Int(1), core.Missing(), core.Int(2), core.Float(math.NaN()), core.Text(""), core.Int(3)}

	got := FillMissing(values, core.Int(100))
	assert.Equal(t, "[1, 100, 2, 100, 100, 3]", core.ReprList(got))

	got = FillMissing([]core.Value{core.Text("a"), core.Missing()}, core.Text("MISSING"))
	assert.Equal(t, "['a', 'MISSING']", core.ReprList(got))

	assert.Empty(t, FillMissing(nil, core.Int(0)))

	// input untouched
	assert.True(t, values[1].IsMissing())
}

func TestFillThenRemoveLeavesNoMarkers(t *testing.T) {
	values := []core.Value{core.Missing(), core.Text("x"), core.Float(math.NaN()), core.Text("")}

	filled := FillMissing(values, core.Text("FILL"))
	for _, v := range filled {
		assert.False(t, v.IsMissing())
	}

	// filling with a missing marker is undone by removal
	refilled := FillMissing(values, core.Missing())
	assert.Equal(t, "['x']", core.ReprList(RemoveMissing(refilled)))
}

func TestRemoveDuplicates(t *testing.T) {
	tests := []struct {
		name   string
		values []core.Value
		want   string
	}{
		{"empty", nil, "[]"},
		{"single", []core.Value{core.Int(1)}, "[1]"},
		{"repeated ints", []core.Value{core.Int(1), core.Int(2), core.Int(2), core.Int(3), core.Int(3), core.Int(3)}, "[1, 2, 3]"},
		{"first occurrence order", []core.Value{core.Int(3), core.Int(1), core.Int(3), core.Int(2), core.Int(1)}, "[3, 1, 2]"},
		{"strings", []core.Value{core.Text("a"), core.Text("a"), core.Text("b")}, "['a', 'b']"},
		{"int and float conflate", []core.Value{core.Int(1), core.Float(1.0), core.Bool(true)}, "[1]"},
		{"float kept when first", []core.Value{core.Float(1.0), core.Int(1)}, "[1.0]"},
		{"int and text distinct", []core.Value{core.Int(1), core.Text("1")}, "[1, '1']"},
		{"nan once", []core.Value{core.Float(math.NaN()), core.Float(math.NaN())}, "[nan]"},
		{"lists by content", []core.Value{core.List(core.Int(1)), core.List(core.Int(1)), core.List(core.Int(2))}, "[[1], [2]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveDuplicates(tt.values)
			assert.Equal(t, tt.want, core.ReprList(got))
			assert.Equal(t, core.ReprList(got), core.ReprList(RemoveDuplicates(got)), "idempotent")
		})
	}
}
