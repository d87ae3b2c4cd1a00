package bridge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bianoble/unity-assets/internal/guid"
	"github.com/bianoble/unity-assets/internal/spec"
)

func TestRender(t *testing.T) {
	src, err := Render(DefaultData())
	require.NoError(t, err)
	text := string(src)

	assert.Contains(t, text, "public static class AssetManifestBridge")
	assert.Contains(t, text, `GetCommandLineArg("-manifest")`)
	assert.Contains(t, text, `case "prefab":`)
	assert.Contains(t, text, `case "scriptable-instance":`)
	assert.NotContains(t, text, `case "material":`)
	assert.NotContains(t, text, "{{")
}

func TestDefaultData_ImportKinds(t *testing.T) {
	d := DefaultData()
	assert.Equal(t, []spec.Kind{spec.KindScriptableInstance, spec.KindPrefab}, d.ImportKinds)
	assert.Equal(t, "-manifest", d.ManifestArg)
}

func TestScriptGUID(t *testing.T) {
	g := ScriptGUID()
	assert.Len(t, g, guid.Length)
	assert.Equal(t, g, ScriptGUID())
}

func TestInstall(t *testing.T) {
	project := t.TempDir()

	inst, err := Install(project, nil)
	require.NoError(t, err)
	assert.True(t, inst.Written)
	assert.Equal(t, "Assets/Editor/AssetManifestBridge.cs", inst.Path)

	script, err := os.ReadFile(filepath.Join(project, filepath.FromSlash(inst.Path)))
	require.NoError(t, err)
	assert.Contains(t, string(script), "ProcessManifest")

	meta, err := os.ReadFile(filepath.Join(project, filepath.FromSlash(inst.MetaPath)))
	require.NoError(t, err)
	assert.Contains(t, string(meta), "guid: "+ScriptGUID())
	assert.Contains(t, string(meta), "MonoImporter:")

	ok, err := Installed(project)
	require.NoError(t, err)
	assert.True(t, ok)

	again, err := Install(project, nil)
	require.NoError(t, err)
	assert.False(t, again.Written)
}

func TestInstalled_Missing(t *testing.T) {
	ok, err := Installed(t.TempDir())
	require.NoError(t, err)
	assert.False(t, ok)
}
