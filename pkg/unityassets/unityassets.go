// Package unityassets provides the public Go library API for unity-assets.
//
// unity-assets turns a declarative YAML asset spec into Unity files
// (prefabs, materials, shaders, C# scripts, ScriptableObject assets and
// animation clips) and optionally runs the Unity editor in batch mode to
// import them.
//
// # Basic Usage
//
//	client, err := unityassets.New(unityassets.Options{
//	    SpecPath: "assets.yaml",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Generate files and import them with the editor when needed
//	result, err := client.Generate(ctx, unityassets.GenerateOptions{})
//
//	// Check for drift
//	checkResult, err := client.Check(ctx)
package unityassets

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/bianoble/unity-assets/internal/config"
	"github.com/bianoble/unity-assets/internal/engine"
	"github.com/bianoble/unity-assets/internal/errors"
	"github.com/bianoble/unity-assets/internal/layout"
	"github.com/bianoble/unity-assets/internal/spec"
	"github.com/bianoble/unity-assets/internal/unityproject"
)

// DefaultSpecPath is used when Options.SpecPath is empty.
const DefaultSpecPath = "assets.yaml"

// GenerateOptions configures a generate operation.
type GenerateOptions struct {
	DryRun    bool
	SkipBatch bool
	// Timeout overrides the settings' batch timeout.
	Timeout time.Duration
	LogFile string
	// EditorOutput receives the editor's console output during batch runs.
	EditorOutput io.Writer
}

// PruneOptions configures a prune operation.
type PruneOptions struct {
	DryRun bool
}

// Generator renders a spec and writes its files.
type Generator interface {
	Generate(ctx context.Context, opts GenerateOptions) (*RunResult, error)
}

// Checker verifies that generated files match the spec.
type Checker interface {
	Check(ctx context.Context) (*CheckResult, error)
}

// Pruner removes generated files the spec no longer declares.
type Pruner interface {
	Prune(ctx context.Context, opts PruneOptions) (*PruneResult, error)
}

// Options configures a unity-assets client.
type Options struct {
	// SpecPath is the asset spec file. Default: "assets.yaml".
	SpecPath string

	// OutputDir overrides the spec's outputDir. Relative paths resolve
	// against the spec file's directory.
	OutputDir string

	// Settings are the merged tool settings. Nil uses defaults.
	Settings *config.Settings

	Logger *zap.SugaredLogger

	// Runner and FindEditors replace the real editor integration.
	Runner      engine.BatchRunner
	FindEditors engine.EditorFinder
}

// Client is the main entry point for the unity-assets library.
// It implements Generator, Checker and Pruner.
type Client struct {
	opts     Options
	specPath string
	specDir  string
	settings *config.Settings
}

// New creates a new unity-assets Client.
func New(opts Options) (*Client, error) {
	if opts.SpecPath == "" {
		opts.SpecPath = DefaultSpecPath
	}
	abs, err := filepath.Abs(opts.SpecPath)
	if err != nil {
		return nil, errors.Wrap(err, "resolving spec path")
	}

	settings := opts.Settings
	if settings == nil {
		settings = &config.Settings{}
	}

	return &Client{
		opts:     opts,
		specPath: abs,
		specDir:  filepath.Dir(abs),
		settings: settings,
	}, nil
}

// SpecPath returns the absolute spec path.
func (c *Client) SpecPath() string {
	return c.specPath
}

// LoadSpec reads and validates the spec, resolving its paths against the
// spec file's directory.
func (c *Client) LoadSpec() (*spec.Spec, error) {
	s, err := spec.Load(c.specPath)
	if err != nil {
		return nil, err
	}
	if s.UnityProject == "" {
		s.UnityProject = c.settings.UnityProject
	}
	if s.UnityProject != "" {
		s.UnityProject = c.resolve(unityproject.ExpandHome(s.UnityProject))
	}
	return s, nil
}

// OutputRoot returns the absolute output directory for s.
func (c *Client) OutputRoot(s *spec.Spec) string {
	dir := s.OutputDir
	if c.opts.OutputDir != "" {
		dir = c.opts.OutputDir
	}
	return c.resolve(unityproject.ExpandHome(dir))
}

// Layout returns the folder layout: built-ins, then settings overrides,
// then the spec's own folders.
func (c *Client) Layout(s *spec.Spec) *layout.Layout {
	return layout.New(c.settings.Folders, s.Folders)
}

func (c *Client) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.specDir, p)
}

// Generate renders the spec, writes changed files and the manifest, and
// runs the editor bridge when assets need importing.
func (c *Client) Generate(ctx context.Context, opts GenerateOptions) (*RunResult, error) {
	s, err := c.LoadSpec()
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = c.settings.TimeoutDuration()
	}

	o := &engine.Orchestrator{
		Generator: &engine.GenerateEngine{
			OutputRoot:  c.OutputRoot(s),
			Layout:      c.Layout(s),
			Parallelism: c.settings.Parallelism,
			Logger:      c.opts.Logger,
		},
		Runner:      c.opts.Runner,
		FindEditors: c.opts.FindEditors,
		Logger:      c.opts.Logger,
	}

	return o.Run(ctx, s, engine.RunOptions{
		DryRun:       opts.DryRun,
		SkipBatch:    opts.SkipBatch || c.settings.SkipBatchEnabled(),
		UnityPath:    c.settings.UnityPath,
		Timeout:      timeout,
		LogFile:      opts.LogFile,
		EditorOutput: opts.EditorOutput,
	})
}

// Check verifies that generated files match what the spec renders to.
func (c *Client) Check(ctx context.Context) (*CheckResult, error) {
	s, err := c.LoadSpec()
	if err != nil {
		return nil, err
	}
	eng := &engine.CheckEngine{OutputRoot: c.OutputRoot(s), Layout: c.Layout(s)}
	return eng.Check(ctx, s)
}

// Status returns the on-disk state of every asset.
func (c *Client) Status(ctx context.Context) ([]AssetStatus, error) {
	s, err := c.LoadSpec()
	if err != nil {
		return nil, err
	}
	eng := &engine.CheckEngine{OutputRoot: c.OutputRoot(s), Layout: c.Layout(s)}
	return eng.Status(ctx, s)
}

// Prune removes generated files the spec no longer declares.
func (c *Client) Prune(ctx context.Context, opts PruneOptions) (*PruneResult, error) {
	s, err := c.LoadSpec()
	if err != nil {
		return nil, err
	}
	eng := &engine.PruneEngine{OutputRoot: c.OutputRoot(s), Layout: c.Layout(s)}
	return eng.Prune(ctx, s, engine.PruneOptions{DryRun: opts.DryRun})
}
