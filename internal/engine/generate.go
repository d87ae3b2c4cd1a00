// Package engine orchestrates rendering, writing, drift checks and the
// optional editor batch run for an asset spec.
package engine

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bianoble/unity-assets/internal/errors"
	"github.com/bianoble/unity-assets/internal/generator"
	"github.com/bianoble/unity-assets/internal/layout"
	"github.com/bianoble/unity-assets/internal/logger"
	"github.com/bianoble/unity-assets/internal/manifest"
	"github.com/bianoble/unity-assets/internal/sandbox"
	"github.com/bianoble/unity-assets/internal/spec"
)

// GenerateEngine renders a spec and writes the results under OutputRoot.
type GenerateEngine struct {
	OutputRoot string
	// Layout defaults to the built-in folders plus the spec's overrides.
	Layout *layout.Layout
	// Parallelism bounds concurrent rendering. Writes are always sequential.
	Parallelism int
	Logger      *zap.SugaredLogger
	Now         func() time.Time
}

// GenerateOptions configures a generate operation.
type GenerateOptions struct {
	DryRun bool
	// AssetRoot is recorded in the manifest for the editor bridge.
	AssetRoot string
}

type rendered struct {
	def spec.Definition
	out *generator.Output
	err error
}

// Generate renders every asset, writes changed files in input order and
// saves the manifest. Per-asset failures are collected in the result and
// never stop the run; the returned error is reserved for cancellation and
// manifest failures.
func (e *GenerateEngine) Generate(ctx context.Context, s *spec.Spec, opts GenerateOptions) (*GenerateResult, error) {
	log := logger.OrComponent(e.Logger, "generate")
	lay := e.layoutFor(s)
	result := &GenerateResult{DryRun: opts.DryRun}

	renders, err := e.renderAll(ctx, s.Assets)
	if err != nil {
		return nil, errors.Wrap(err, "rendering assets")
	}

	m := manifest.New(s.Project, e.now())
	m.AssetRoot = opts.AssetRoot
	last := m.GeneratedAt

	for _, r := range renders {
		h := r.def.Header()
		outcome := AssetOutcome{Asset: h.Name, Kind: h.Type}

		switch {
		case errors.Is(r.err, errors.ErrUnknownKind):
			outcome.Status = StatusSkipped
			result.Skipped = append(result.Skipped, SkippedAsset{Asset: h.Name, Kind: h.Type, Reason: "unsupported asset type"})
			result.Warnings = append(result.Warnings, "skipping "+r.err.Error())
			log.Warnw("Skipping asset of unsupported type", logger.FieldAsset, h.Name, logger.FieldKind, h.Type)

		case r.err != nil:
			outcome.Status = StatusFailed
			outcome.Err = r.err
			result.Errors = append(result.Errors, AssetError{Asset: h.Name, Kind: h.Type, Err: r.err})
			log.Errorw("Rendering failed", logger.FieldAsset, h.Name, logger.FieldError, r.err)

		default:
			for _, w := range r.out.Warnings {
				result.Warnings = append(result.Warnings, h.Name+": "+w)
				log.Warnw(w, logger.FieldAsset, h.Name, logger.FieldKind, h.Type)
			}

			paths := lay.Resolve(h.Type, h.Name)
			outcome.Path = paths.File
			art, changed, err := e.emit(paths, r.out, opts.DryRun, result)
			if err != nil {
				outcome.Status = StatusFailed
				outcome.Err = err
				result.Errors = append(result.Errors, AssetError{Asset: h.Name, Kind: h.Type, Err: err})
				log.Errorw("Writing failed", logger.FieldAsset, h.Name, logger.FieldError, err)
				break
			}

			outcome.Status = StatusUnchanged
			if changed {
				outcome.Status = StatusGenerated
			}
			// Artifact timestamps never go backwards even if the clock does.
			stamp := e.now()
			if stamp.Before(last) {
				stamp = last
			}
			last = stamp
			art.GeneratedAt = stamp
			m.Add(art)
			log.Debugw("Asset rendered", logger.FieldAsset, h.Name, logger.FieldPath, paths.File, "status", outcome.Status)
		}

		result.Outcomes = append(result.Outcomes, outcome)
	}

	result.Counts = countOutcomes(result.Outcomes)
	result.Manifest = m

	if !opts.DryRun {
		if err := os.MkdirAll(e.OutputRoot, 0o755); err != nil {
			return result, errors.Wrapf(err, "creating output directory %s", e.OutputRoot)
		}
		path := filepath.Join(e.OutputRoot, manifest.FileName)
		if err := manifest.Save(path, m); err != nil {
			return result, err
		}
		result.ManifestPath = path
	}

	log.Infow("Generation complete",
		"generated", result.Counts.Generated,
		"unchanged", result.Counts.Unchanged,
		"skipped", result.Counts.Skipped,
		"failed", result.Counts.Failed,
		"dry_run", opts.DryRun,
	)
	return result, nil
}

// renderAll renders every definition. Each document is built by exactly
// one goroutine; results keep input order.
func (e *GenerateEngine) renderAll(ctx context.Context, defs []spec.Definition) ([]rendered, error) {
	results := make([]rendered, len(defs))

	limit := e.Parallelism
	if limit <= 0 {
		limit = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, def := range defs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := generator.Render(def)
			results[i] = rendered{def: def, out: out, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// emit writes the asset file and its meta and builds the manifest entry.
// It reports whether any file changed.
func (e *GenerateEngine) emit(paths layout.Paths, out *generator.Output, dryRun bool, result *GenerateResult) (manifest.Artifact, bool, error) {
	content := []byte(out.Content)
	art := manifest.Artifact{
		Name:   out.Name,
		Type:   out.Kind,
		Path:   paths.File,
		SHA256: sandbox.HashContent(content),
	}

	type file struct {
		path    string
		content []byte
	}
	files := []file{{paths.File, content}}
	if out.HasMeta() {
		meta := []byte(out.Meta)
		art.MetaPath = paths.Meta
		art.MetaSHA256 = sandbox.HashContent(meta)
		files = append(files, file{paths.Meta, meta})
	}

	changed := false
	for _, f := range files {
		action, err := e.writeFile(f.path, f.content, dryRun)
		if err != nil {
			return art, changed, errors.Wrapf(err, "writing %s", f.path)
		}
		if action != ActionUnchanged {
			changed = true
		}
		result.Files = append(result.Files, FileAction{Path: f.path, Action: action})
	}
	return art, changed, nil
}

func (e *GenerateEngine) writeFile(rel string, content []byte, dryRun bool) (string, error) {
	existing, err := sandbox.ReadFile(e.OutputRoot, rel)
	if err != nil && !os.IsNotExist(err) {
		return "", err
	}
	existed := err == nil
	if existed && bytes.Equal(existing, content) {
		return ActionUnchanged, nil
	}

	if dryRun {
		if existed {
			return ActionModified, nil
		}
		return ActionNew, nil
	}

	if err := sandbox.SafeWrite(e.OutputRoot, rel, content, 0o644); err != nil {
		return "", err
	}
	if existed {
		return ActionModified, nil
	}
	return ActionWritten, nil
}

func (e *GenerateEngine) layoutFor(s *spec.Spec) *layout.Layout {
	if e.Layout != nil {
		return e.Layout
	}
	return layout.New(s.Folders)
}

func (e *GenerateEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func countOutcomes(outcomes []AssetOutcome) Counts {
	var c Counts
	for _, o := range outcomes {
		switch o.Status {
		case StatusGenerated:
			c.Generated++
		case StatusUnchanged:
			c.Unchanged++
		case StatusSkipped:
			c.Skipped++
		case StatusFailed:
			c.Failed++
		}
	}
	return c
}
