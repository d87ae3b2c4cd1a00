package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bianoble/unity-assets/internal/errors"
	"github.com/bianoble/unity-assets/internal/guid"
	"github.com/bianoble/unity-assets/internal/spec"
	"github.com/bianoble/unity-assets/internal/unityyaml"
)

func TestRenderEnemyPrefab(t *testing.T) {
	def := &spec.Prefab{
		Base:       spec.Base{Type: spec.KindPrefab, Name: "Enemy"},
		Components: []spec.Component{{Type: "Rigidbody"}},
	}

	out, err := Render(def)
	require.NoError(t, err)

	assert.Equal(t, spec.KindPrefab, out.Kind)
	assert.Equal(t, 3, strings.Count(out.Content, "--- !u!"))
	assert.Contains(t, out.Content, "  m_Component:\n  - component: {fileID: 1000001}\n  - component: {fileID: 1000002}\n")
	assert.Contains(t, out.Content, "--- !u!54 &1000002\nRigidbody:\n")
	assert.Empty(t, out.Warnings)

	require.True(t, out.HasMeta())
	assert.Contains(t, out.Meta, "guid: "+guid.Derive("Enemy.prefab")+"\nPrefabImporter:\n")
}

func TestRenderIsIdempotent(t *testing.T) {
	defs := []spec.Definition{
		&spec.Prefab{Base: spec.Base{Type: spec.KindPrefab, Name: "Crate"}, Components: []spec.Component{{Type: "BoxCollider"}}},
		&spec.Material{Base: spec.Base{Type: spec.KindMaterial, Name: "Rust"}, Shader: "Standard"},
		&spec.Shader{Base: spec.Base{Type: spec.KindShader, Name: "water"}},
		&spec.Animation{Base: spec.Base{Type: spec.KindAnimation, Name: "Spin"}},
	}
	for _, def := range defs {
		first, err := Render(def)
		require.NoError(t, err)
		second, err := Render(def)
		require.NoError(t, err)
		assert.Equal(t, first.Meta, second.Meta)
		assert.Equal(t, first.Content, second.Content)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := Render(&spec.Unknown{Base: spec.Base{Type: "terrain", Name: "Hills"}})
	require.Error(t, err)
	assert.True(t, errors.IsUnknownKind(err))
	assert.Contains(t, err.Error(), "terrain")
}

func TestRenderPrefabExtraTransformWarning(t *testing.T) {
	out, err := Render(&spec.Prefab{
		Base:       spec.Base{Type: spec.KindPrefab, Name: "Twice"},
		Components: []spec.Component{{Type: "Transform"}, {Type: "Transform"}},
	})
	require.NoError(t, err)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "component[1]")
	assert.Equal(t, 2, strings.Count(out.Content, "--- !u!"))
}

func TestMetaFiles(t *testing.T) {
	assert.Equal(t, "fileFormatVersion: 2\n"+
		"guid: "+guid.Derive("Rust.mat")+"\n"+
		"NativeFormatImporter:\n"+
		"  externalObjects: {}\n"+
		"  mainObjectFileID: 2100000\n"+
		"  userData: \n"+
		"  assetBundleName: \n"+
		"  assetBundleVariant: \n", MaterialMeta("Rust"))

	shader := ShaderMeta("water")
	assert.Contains(t, shader, "ShaderImporter:\n  externalObjects: {}\n  defaultTextures: []\n  nonModifiableTextures: []\n")
	assert.Contains(t, AnimationMeta("Spin"), "mainObjectFileID: 7400000")
	assert.Contains(t, ScriptMeta("abc"), "MonoImporter:")
}

func TestMaterialSplitsColorsAndFloats(t *testing.T) {
	queue := 3000
	content, warnings := Material(&spec.Material{
		Base:   spec.Base{Type: spec.KindMaterial, Name: "Slime"},
		Shader: "Universal Render Pipeline/Lit",
		Properties: unityyaml.Record{
			{Key: "tint", Value: []any{1, 0, 0, 1}},
			{Key: "_EmissionColor", Value: []any{0, 1, 0}},
			{Key: "_Tiling", Value: []any{2, 3}},
			{Key: "_Smoothness", Value: 0.25},
		},
		Keywords:    []string{"_EMISSION"},
		RenderQueue: &queue,
	})
	assert.Empty(t, warnings)

	assert.Contains(t, content, "--- !u!21 &2100000\nMaterial:\n  serializedVersion: 8\n")
	assert.Contains(t, content, "  m_Shader: {fileID: 4800000, guid: 933532a4fcc9baf4fa0491de14d08ed7, type: 3}\n")
	assert.Contains(t, content, "  m_ValidKeywords:\n  - _EMISSION\n")
	assert.Contains(t, content, "  m_CustomRenderQueue: 3000\n")
	assert.Contains(t, content, "    m_Floats:\n    - _Smoothness: 0.25\n    m_Colors:\n")
	assert.Contains(t, content, "    m_Colors:\n"+
		"    - tint: {r: 1, g: 0, b: 0, a: 1}\n"+
		"    - _EmissionColor: {r: 0, g: 1, b: 0, a: 1}\n"+
		"    - _Tiling: {x: 2, y: 3, z: 0, w: 0}\n")
	assert.True(t, strings.HasSuffix(content, "  m_BuildTextureStacks: []\n"))
}

func TestMaterialDefaults(t *testing.T) {
	content, warnings := Material(&spec.Material{
		Base:   spec.Base{Type: spec.KindMaterial, Name: "Plain"},
		Shader: "Custom/Whatever",
	})
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "unknown shader")
	assert.Contains(t, content, "guid: 0000000000000000f000000000000000")
	assert.Contains(t, content, "  m_ValidKeywords: []\n")
	assert.Contains(t, content, "  m_CustomRenderQueue: -1\n")
	assert.Contains(t, content, "    m_Floats: []\n    m_Colors: []\n")
	assert.Contains(t, content, "    - _OcclusionMap:\n        m_Texture: {fileID: 0}\n")
}

func TestColorValueFromRecord(t *testing.T) {
	assert.Equal(t, "{r: 0.5, g: 1, b: 1, a: 1}", colorValue(unityyaml.Record{{Key: "r", Value: 0.5}}))
	assert.Equal(t, "{r: 1, g: 1, b: 1, a: 1}", colorValue("red"))
	assert.Equal(t, "{x: 1, y: 0, z: 0, w: 0}", vectorValue([]any{1}))
}
