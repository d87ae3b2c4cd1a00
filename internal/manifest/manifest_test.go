package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bianoble/unity-assets/internal/errors"
	"github.com/bianoble/unity-assets/internal/spec"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestAddTracksBatchMode(t *testing.T) {
	m := New("Dungeon", t0)
	m.Add(Artifact{Name: "Rust", Type: spec.KindMaterial, Path: "Materials/Rust.mat", GeneratedAt: t0})
	assert.False(t, m.RequiresBatchMode)

	m.Add(Artifact{Name: "Sword", Type: spec.KindScriptableInstance, Path: "Data/Sword.asset", GeneratedAt: t0})
	assert.True(t, m.RequiresBatchMode)

	a, ok := m.Find(spec.KindMaterial, "Rust")
	require.True(t, ok)
	assert.Equal(t, "Materials/Rust.mat", a.Path)
	_, ok = m.Find(spec.KindPrefab, "Rust")
	assert.False(t, ok)
}

func TestRequiresPostProcessing(t *testing.T) {
	assert.True(t, RequiresPostProcessing([]spec.Kind{spec.KindShader, spec.KindPrefab}))
	assert.False(t, RequiresPostProcessing([]spec.Kind{spec.KindShader, spec.KindScript}))
	assert.False(t, RequiresPostProcessing(nil))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	m := New("Dungeon", t0)
	m.AssetRoot = "Assets/Generated"
	m.Add(Artifact{
		Name: "Enemy", Type: spec.KindPrefab,
		Path: "Prefabs/Enemy.prefab", MetaPath: "Prefabs/Enemy.prefab.meta",
		SHA256: "abc", GeneratedAt: t0,
	})

	require.NoError(t, Save(path, m))
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"requiresBatchMode": true`)
	assert.Contains(t, string(data), `"type": "prefab"`)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, m.Assets[0].Path, loaded.Assets[0].Path)
	assert.Equal(t, "Assets/Generated", loaded.AssetRoot)
	assert.True(t, loaded.GeneratedAt.Equal(t0))
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing manifest")
}

func TestValidate(t *testing.T) {
	m := &Manifest{
		Assets: []Artifact{
			{Name: "A", Type: spec.KindPrefab, Path: "Prefabs/A.prefab", GeneratedAt: t0.Add(time.Second)},
			{Name: "B", Type: spec.KindMaterial, Path: "Prefabs/A.prefab", GeneratedAt: t0},
			{Type: spec.KindShader},
		},
	}
	errs := Validate(m)
	assert.Contains(t, errs, "'project' is required")
	assert.Contains(t, errs, "asset 'B': duplicate path 'Prefabs/A.prefab'")
	assert.Contains(t, errs, "asset 'B': generatedAt is earlier than the previous asset")
	assert.Contains(t, errs, "asset[2]: 'name' is required")
	assert.Contains(t, errs, "asset[2]: 'path' is required")
	assert.Contains(t, errs, "'requiresBatchMode' is false but the assets imply true")
}

func TestLoadValidationFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"assets": []}`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}
