package unityyaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatScalars(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"true", true, "1"},
		{"false", false, "0"},
		{"int", 42, "42"},
		{"negative int64", int64(-7), "-7"},
		{"float", 0.5, "0.5"},
		{"whole float", 2.0, "2"},
		{"large float", 1e21, "1e+21"},
		{"small float", 1e-7, "1e-07"},
		{"string", "Player", "Player"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.value, ""))
		})
	}
}

func TestFormatNumericTuples(t *testing.T) {
	assert.Equal(t, "{x: 1, y: 2}", Format([]any{1, 2}, ""))
	assert.Equal(t, "{x: 1, y: 2.5, z: -3}", Format([]any{1, 2.5, -3}, ""))
	assert.Equal(t, "{x: 0, y: 0, z: 0, w: 1}", Format([]any{0, 0, 0, 1}, ""))
	assert.Equal(t, "{x: 1, y: 2, z: 3}", Format([]float64{1, 2, 3}, ""))
}

func TestFormatTupleColorFields(t *testing.T) {
	assert.Equal(t, "{r: 1, g: 0, b: 0, a: 1}", FormatTuple([]any{1, 0, 0, 1}, ColorFields))
	assert.Equal(t, "{x: 1, y: 2}", FormatTuple([]any{1, 2, 3}, VectorFields[:2]))
}

func TestFormatSequences(t *testing.T) {
	// Five numbers is not a tuple.
	assert.Equal(t, "\n  - 1\n  - 2\n  - 3\n  - 4\n  - 5", Format([]any{1, 2, 3, 4, 5}, "  "))
	assert.Equal(t, "\n- 7", Format([]any{7}, ""))
	assert.Equal(t, "\n- a\n- 1", Format([]any{"a", 1}, ""))
	assert.Equal(t, "[]", Format([]any{}, ""))
}

func TestFormatRecords(t *testing.T) {
	inline := Record{{Key: "x", Value: 1}, {Key: "y", Value: 2}}
	assert.Equal(t, "{x: 1, y: 2}", Format(inline, ""))

	block := Record{{Key: "name", Value: "Sword"}, {Key: "damage", Value: 10}}
	assert.Equal(t, "\n  name: Sword\n  damage: 10", Format(block, "  "))

	tooMany := Record{
		{Key: "a", Value: 1}, {Key: "b", Value: 2}, {Key: "c", Value: 3},
		{Key: "d", Value: 4}, {Key: "e", Value: 5},
	}
	assert.Equal(t, "\na: 1\nb: 2\nc: 3\nd: 4\ne: 5", Format(tooMany, ""))

	assert.Equal(t, "{a: 1, b: 2}", Format(map[string]any{"b": 2, "a": 1}, ""))
}

func TestFormatNested(t *testing.T) {
	value := []any{
		Record{{Key: "item", Value: "Potion"}, {Key: "offset", Value: []any{1, 2}}},
	}
	want := "\n  - \n    item: Potion\n    offset: {x: 1, y: 2}"
	assert.Equal(t, want, Format(value, "  "))
}

func TestFormatFallback(t *testing.T) {
	type custom struct{ A int }
	assert.Equal(t, "{3}", Format(custom{A: 3}, ""))
}

func TestNumericSequence(t *testing.T) {
	nums, ok := NumericSequence([]any{1, 2.5})
	assert.True(t, ok)
	assert.Len(t, nums, 2)

	_, ok = NumericSequence([]any{1, "x"})
	assert.False(t, ok)
	_, ok = NumericSequence([]any{})
	assert.False(t, ok)
	_, ok = NumericSequence("1,2")
	assert.False(t, ok)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		prop  string
		value any
		want  ValueClass
	}{
		{"four numbers", "tint", []any{1, 0, 0, 1}, Color},
		{"color by name", "_BaseColor", []any{1, 1, 1}, Color},
		{"color by name any case", "_EMISSIONCOLOR", 1.0, Color},
		{"three numbers", "_Offset", []any{1, 2, 3}, Vector},
		{"two numbers", "_Tiling", []any{2, 2}, Vector},
		{"scalar", "_Metallic", 0.5, Scalar},
		{"five numbers", "_Weights", []any{1, 2, 3, 4, 5}, Scalar},
		{"quaternion is color", "_Rotation", []any{0, 0, 0, 1}, Color},
		{"string", "_Mode", "Opaque", Scalar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.prop, tt.value))
		})
	}
}
