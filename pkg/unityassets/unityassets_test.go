package unityassets

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bianoble/unity-assets/internal/batch"
	"github.com/bianoble/unity-assets/internal/config"
	"github.com/bianoble/unity-assets/internal/errors"
	"github.com/bianoble/unity-assets/internal/manifest"
)

const clientSpec = `project: Arena
outputDir: Generated
assets:
  - type: prefab
    name: Crate
    components:
      - type: BoxCollider
  - type: material
    name: Wood
    shader: Standard
`

// writeSpec writes a spec file and returns its path.
func writeSpec(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "assets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

type recordingRunner struct {
	calls []batch.Options
}

func (r *recordingRunner) Run(ctx context.Context, opts batch.Options) (*batch.Result, error) {
	r.calls = append(r.calls, opts)
	return &batch.Result{Succeeded: true}, nil
}

func TestNewDefaultSpecPath(t *testing.T) {
	c, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultSpecPath, filepath.Base(c.SpecPath()))
	assert.True(t, filepath.IsAbs(c.SpecPath()))
}

func TestGenerateResolvesOutputAgainstSpecDir(t *testing.T) {
	dir := t.TempDir()
	c, err := New(Options{SpecPath: writeSpec(t, dir, clientSpec)})
	require.NoError(t, err)

	res, err := c.Generate(context.Background(), GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Generate.Counts.Generated)
	assert.FileExists(t, filepath.Join(dir, "Generated", "Prefabs", "Crate.prefab"))
	assert.FileExists(t, filepath.Join(dir, "Generated", manifest.FileName))
	assert.False(t, res.BatchRan())
}

func TestGenerateOutputOverrideAndSettingsFolders(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	c, err := New(Options{
		SpecPath:  writeSpec(t, dir, clientSpec),
		OutputDir: out,
		Settings:  &config.Settings{Folders: map[string]string{"material": "Art"}},
	})
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), GenerateOptions{})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "Art", "Wood.mat"))
}

func TestGenerateRunsBatchInProject(t *testing.T) {
	project := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(project, "Assets"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(project, "ProjectSettings"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(project, "ProjectSettings", "ProjectVersion.txt"), []byte("m_EditorVersion: 2022.3.5f1\n"), 0o644))

	dir := filepath.Join(project, "Assets")
	runner := &recordingRunner{}
	timeout := 2 * time.Minute
	c, err := New(Options{
		SpecPath:    writeSpec(t, dir, clientSpec),
		Settings:    &config.Settings{UnityPath: "/opt/unity/Editor/Unity", Timeout: "7m"},
		Runner:      runner,
		FindEditors: func(context.Context, string) ([]batch.Editor, error) { return nil, nil },
	})
	require.NoError(t, err)

	res, err := c.Generate(context.Background(), GenerateOptions{Timeout: timeout})
	require.NoError(t, err)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "/opt/unity/Editor/Unity", runner.calls[0].Executable)
	assert.Equal(t, timeout, runner.calls[0].Timeout)
	assert.True(t, res.BatchRan())
	assert.Equal(t, project, res.UnityProject)
}

func TestGenerateSkipBatchFromSettings(t *testing.T) {
	dir := t.TempDir()
	skip := true
	runner := &recordingRunner{}
	c, err := New(Options{
		SpecPath: writeSpec(t, dir, clientSpec),
		Settings: &config.Settings{SkipBatch: &skip},
		Runner:   runner,
	})
	require.NoError(t, err)

	res, err := c.Generate(context.Background(), GenerateOptions{})
	require.NoError(t, err)
	assert.Empty(t, runner.calls)
	assert.NotEmpty(t, res.BatchSkipReason)
}

func TestInvalidSpec(t *testing.T) {
	dir := t.TempDir()
	c, err := New(Options{SpecPath: writeSpec(t, dir, "project: X\n")})
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), GenerateOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestCheckStatusAndPrune(t *testing.T) {
	dir := t.TempDir()
	specPath := writeSpec(t, dir, clientSpec)
	c, err := New(Options{SpecPath: specPath})
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), GenerateOptions{})
	require.NoError(t, err)

	check, err := c.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, check.Clean)

	statuses, err := c.Status(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, "current", statuses[0].State)

	writeSpec(t, dir, `project: Arena
outputDir: Generated
assets:
  - type: material
    name: Wood
    shader: Standard
`)
	pruned, err := c.Prune(context.Background(), PruneOptions{})
	require.NoError(t, err)
	assert.Len(t, pruned.Removed, 2)
	assert.NoFileExists(t, filepath.Join(dir, "Generated", "Prefabs", "Crate.prefab"))
}
