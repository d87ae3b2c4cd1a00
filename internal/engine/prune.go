package engine

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bianoble/unity-assets/internal/errors"
	"github.com/bianoble/unity-assets/internal/layout"
	"github.com/bianoble/unity-assets/internal/manifest"
	"github.com/bianoble/unity-assets/internal/sandbox"
	"github.com/bianoble/unity-assets/internal/spec"
)

// PruneEngine removes generated files that the spec no longer produces.
type PruneEngine struct {
	OutputRoot string
	Layout     *layout.Layout
}

// PruneOptions configures a prune operation.
type PruneOptions struct {
	DryRun bool
}

// Prune compares the previous manifest with the current spec and removes
// artifacts that are no longer declared. Without a previous manifest there
// is nothing to prune.
func (e *PruneEngine) Prune(ctx context.Context, s *spec.Spec, opts PruneOptions) (*PruneResult, error) {
	result := &PruneResult{}

	previous, err := manifest.Load(filepath.Join(e.OutputRoot, manifest.FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return result, nil
		}
		return nil, err
	}

	lay := e.Layout
	if lay == nil {
		lay = layout.New(s.Folders)
	}
	expected := make(map[string]bool)
	for _, def := range s.Assets {
		h := def.Header()
		if !h.Type.Known() {
			continue
		}
		paths := lay.Resolve(h.Type, h.Name)
		expected[paths.File] = true
		expected[paths.Meta] = true
	}

	for _, art := range previous.Assets {
		for _, p := range []string{art.Path, art.MetaPath} {
			if p == "" || expected[p] {
				continue
			}
			if err := ctx.Err(); err != nil {
				return result, err
			}
			if _, err := sandbox.ReadFile(e.OutputRoot, p); os.IsNotExist(err) {
				continue
			}
			if !opts.DryRun {
				if err := sandbox.SafeRemove(e.OutputRoot, p); err != nil {
					result.Errors = append(result.Errors, errors.Wrapf(err, "removing %s", p))
					continue
				}
			}
			result.Removed = append(result.Removed, FileAction{Path: p, Action: ActionRemoved})
		}
	}

	return result, nil
}
