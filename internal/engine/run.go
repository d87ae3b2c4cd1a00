package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/bianoble/unity-assets/internal/batch"
	"github.com/bianoble/unity-assets/internal/bridge"
	"github.com/bianoble/unity-assets/internal/logger"
	"github.com/bianoble/unity-assets/internal/spec"
	"github.com/bianoble/unity-assets/internal/unityproject"
)

// BatchRunner launches the editor in batch mode.
type BatchRunner interface {
	Run(ctx context.Context, opts batch.Options) (*batch.Result, error)
}

// EditorFinder lists editors that already have a project open.
type EditorFinder func(ctx context.Context, projectPath string) ([]batch.Editor, error)

// Orchestrator generates a spec and, when assets need importing, runs the
// editor bridge once against the Unity project.
type Orchestrator struct {
	Generator *GenerateEngine
	// Runner defaults to batch.NewRunner.
	Runner BatchRunner
	// FindEditors defaults to batch.FindRunningEditors.
	FindEditors EditorFinder
	Logger      *zap.SugaredLogger
}

// RunOptions configures a full run.
type RunOptions struct {
	DryRun    bool
	SkipBatch bool

	// UnityPath is an explicit editor executable.
	UnityPath string
	Timeout   time.Duration
	LogFile   string
	// EditorOutput receives the editor's console output.
	EditorOutput io.Writer
}

// Reasons recorded in RunResult.BatchSkipReason.
const (
	SkipDryRun         = "dry run"
	SkipNotRequired    = "no assets need editor import"
	SkipDisabled       = "batch mode disabled"
	SkipNoProject      = "no Unity project found"
	SkipVersion        = "editor version does not satisfy unityVersion"
	SkipEditorOpen     = "the project is open in a running editor"
	SkipGenerateFailed = "generation failed"
)

// Run generates s and hands post-processing to the editor when required.
// Batch failures are reported in the result and leave generated files in
// place. A configuration error, such as no resolvable editor, is returned.
func (o *Orchestrator) Run(ctx context.Context, s *spec.Spec, opts RunOptions) (*RunResult, error) {
	log := logger.OrComponent(o.Logger, "run")
	res := &RunResult{}

	project, found, err := unityproject.Resolve(s.UnityProject, o.Generator.OutputRoot)
	if err != nil {
		return nil, err
	}

	var assetRoot string
	if found {
		res.UnityProject = project
		log.Infow("Using Unity project", logger.FieldProject, project)
		root, inside := unityproject.AssetRoot(project, o.Generator.OutputRoot)
		if inside {
			assetRoot = root
		} else {
			res.Warnings = append(res.Warnings, fmt.Sprintf("output directory is outside the Unity project %s", project))
		}
	}

	gen, err := o.Generator.Generate(ctx, s, GenerateOptions{DryRun: opts.DryRun, AssetRoot: assetRoot})
	res.Generate = gen
	if err != nil {
		res.BatchSkipReason = SkipGenerateFailed
		return res, err
	}

	switch {
	case opts.DryRun:
		res.BatchSkipReason = SkipDryRun
	case !gen.Manifest.RequiresBatchMode:
		res.BatchSkipReason = SkipNotRequired
	case opts.SkipBatch:
		res.BatchSkipReason = SkipDisabled
	case !found:
		res.BatchSkipReason = SkipNoProject
		res.Warnings = append(res.Warnings, "some assets need Unity to import them; open the project in the editor or set unityProject")
	}
	if res.BatchSkipReason != "" {
		log.Debugw("Batch run skipped", "reason", res.BatchSkipReason)
		return res, nil
	}

	editorVersion, err := unityproject.EditorVersion(project)
	if err != nil {
		log.Warnw("Could not read editor version", logger.FieldProject, project, logger.FieldError, err)
	}
	if s.UnityVersion != "" && editorVersion != "" {
		if err := unityproject.CheckVersion(s.UnityVersion, editorVersion); err != nil {
			res.BatchSkipReason = SkipVersion
			res.Warnings = append(res.Warnings, err.Error())
			return res, nil
		}
	}

	if editors, err := o.findEditors()(ctx, project); err != nil {
		log.Debugw("Could not list running editors", logger.FieldError, err)
	} else if len(editors) > 0 {
		res.BatchSkipReason = SkipEditorOpen
		res.Warnings = append(res.Warnings, fmt.Sprintf("Unity (pid %d) already has %s open; close it or import the assets from the editor", editors[0].PID, project))
		return res, nil
	}

	inst, err := bridge.Install(project, o.Logger)
	if err != nil {
		return res, err
	}
	res.Bridge = inst

	br, err := o.runner().Run(ctx, batch.Options{
		Executable:    opts.UnityPath,
		EditorVersion: editorVersion,
		ProjectPath:   project,
		ExecuteMethod: bridge.ExecuteMethod,
		Args:          map[string]string{bridge.ManifestArg: gen.ManifestPath},
		LogFile:       opts.LogFile,
		Timeout:       opts.Timeout,
		Output:        opts.EditorOutput,
	})
	if err != nil {
		return res, err
	}
	res.Batch = br
	return res, nil
}

func (o *Orchestrator) runner() BatchRunner {
	if o.Runner != nil {
		return o.Runner
	}
	return batch.NewRunner(o.Logger)
}

func (o *Orchestrator) findEditors() EditorFinder {
	if o.FindEditors != nil {
		return o.FindEditors
	}
	return batch.FindRunningEditors
}
