package unityyaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRecordKeepsSourceOrder(t *testing.T) {
	var r Record
	err := yaml.Unmarshal([]byte("zeta: 1\nalpha: [1, 2]\nmid:\n  b: true\n  a: x\n"), &r)
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, r.Keys())
	v, ok := r.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, []any{1, 2}, v)

	mid, _ := r.Get("mid")
	assert.Equal(t, Record{{Key: "b", Value: true}, {Key: "a", Value: "x"}}, mid)
}

func TestRecordRejectsSequence(t *testing.T) {
	var r Record
	err := yaml.Unmarshal([]byte("- 1\n- 2\n"), &r)
	assert.Error(t, err)
}

func TestRecordSet(t *testing.T) {
	r := Record{{Key: "a", Value: 1}}
	r.Set("a", 2)
	r.Set("b", 3)
	assert.Equal(t, Record{{Key: "a", Value: 2}, {Key: "b", Value: 3}}, r)
}

func TestRecordFromMapSortsKeys(t *testing.T) {
	r := RecordFromMap(map[string]any{"c": 1, "a": map[string]any{"y": 2, "x": 1}})
	assert.Equal(t, []string{"a", "c"}, r.Keys())
	nested, _ := r.Get("a")
	assert.Equal(t, Record{{Key: "x", Value: 1}, {Key: "y", Value: 2}}, nested)
}
