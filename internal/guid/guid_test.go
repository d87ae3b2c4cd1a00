package guid

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hexGUID = regexp.MustCompile(`^[0-9a-f]{32}$`)

func TestDeriveShapeAndDeterminism(t *testing.T) {
	keys := []string{"", "a", "Enemy.prefab", "Player.mat", "Custom/Water.shader", "ünïcödé", "😀 emoji", string(make([]byte, 300))}
	for _, k := range keys {
		got := Derive(k)
		assert.Len(t, got, Length, "key %q", k)
		assert.Regexp(t, hexGUID, got, "key %q", k)
		assert.Equal(t, got, Derive(k), "key %q must be stable", k)
	}
}

func TestDeriveKnownValues(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", "00000000000000000000000000000000"},
		{"a", "00000061000000610000006100000061"},
		// 'a'*31 + 'b' = 97*31 + 98 = 3105 = 0xc21
		{"ab", "00000c2100000c2100000c2100000c21"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Derive(tt.key), "Derive(%q)", tt.key)
	}
}

func TestDeriveWrapsAndTakesAbsoluteValue(t *testing.T) {
	// Long inputs overflow 32 bits; the result must still be 8 tiled digits.
	got := Derive("a very long asset name that certainly overflows the accumulator.prefab")
	assert.Regexp(t, hexGUID, got)
	assert.Equal(t, got[:8], got[8:16])
	assert.Equal(t, got[:8], got[24:32])
}

func TestDeriveDistinguishesNames(t *testing.T) {
	assert.NotEqual(t, Derive("Enemy.prefab"), Derive("Player.prefab"))
	assert.NotEqual(t, ForAsset("Enemy", ".prefab"), ForAsset("Enemy", ".mat"))
}

func TestForAsset(t *testing.T) {
	assert.Equal(t, Derive("Enemy.prefab"), ForAsset("Enemy", ".prefab"))
}
