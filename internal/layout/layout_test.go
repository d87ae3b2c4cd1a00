package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bianoble/unity-assets/internal/spec"
)

func TestBuiltinLayout(t *testing.T) {
	l := New()

	tests := []struct {
		kind spec.Kind
		want string
	}{
		{spec.KindScript, "Scripts/Thing.cs"},
		{spec.KindScriptableObject, "ScriptableObjects/Thing.cs"},
		{spec.KindScriptableInstance, "Data/Thing.asset"},
		{spec.KindMaterial, "Materials/Thing.mat"},
		{spec.KindShader, "Shaders/Thing.shader"},
		{spec.KindPrefab, "Prefabs/Thing.prefab"},
		{spec.KindAnimation, "Animations/Thing.anim"},
		{spec.Kind("terrain"), "Other/Thing.txt"},
	}
	for _, tt := range tests {
		p := l.Resolve(tt.kind, "Thing")
		assert.Equal(t, tt.want, p.File, string(tt.kind))
		assert.Equal(t, tt.want+".meta", p.Meta, string(tt.kind))
	}
}

func TestOverridesWin(t *testing.T) {
	l := New(
		map[string]string{"prefab": "Prefabs/Base"},
		map[string]string{"prefab": "Prefabs/Enemies/", "material": "Art/Materials"},
	)

	assert.Equal(t, "Prefabs/Enemies/Orc.prefab", l.Resolve(spec.KindPrefab, "Orc").File)
	assert.Equal(t, "Art/Materials", l.Folder(spec.KindMaterial))
	assert.True(t, l.IsCustom(spec.KindPrefab))
	assert.False(t, l.IsCustom(spec.KindShader))
}

func TestSortedKinds(t *testing.T) {
	kinds := New().SortedKinds()
	assert.Len(t, kinds, 7)
	assert.Equal(t, spec.KindAnimation, kinds[0])
	assert.Equal(t, "Animations", New().Folders()[spec.KindAnimation])
}
