package engine

import (
	"context"
	"os"

	"github.com/bianoble/unity-assets/internal/errors"
	"github.com/bianoble/unity-assets/internal/generator"
	"github.com/bianoble/unity-assets/internal/layout"
	"github.com/bianoble/unity-assets/internal/sandbox"
	"github.com/bianoble/unity-assets/internal/spec"
)

// CheckEngine verifies that generated files on disk match what the spec
// renders to now.
type CheckEngine struct {
	OutputRoot string
	Layout     *layout.Layout
}

// Check renders every asset in memory and compares it with disk.
// Returns Clean=true if everything matches.
func (e *CheckEngine) Check(ctx context.Context, s *spec.Spec) (*CheckResult, error) {
	result := &CheckResult{Clean: true}

	err := e.walk(ctx, s, func(def spec.Definition, out *generator.Output, renderErr error, files []expectedFile) {
		h := def.Header()
		if renderErr != nil {
			if !errors.Is(renderErr, errors.ErrUnknownKind) {
				result.Errors = append(result.Errors, AssetError{Asset: h.Name, Kind: h.Type, Err: renderErr})
				result.Clean = false
			}
			return
		}
		for _, f := range files {
			actual, err := sandbox.HashFile(e.OutputRoot, f.path)
			switch {
			case os.IsNotExist(err):
				result.Missing = append(result.Missing, f.path)
				result.Clean = false
			case err != nil:
				result.Errors = append(result.Errors, AssetError{Asset: h.Name, Kind: h.Type, Err: err})
				result.Clean = false
			case actual != f.hash:
				result.Drifted = append(result.Drifted, DriftEntry{Path: f.path, Expected: f.hash, Actual: actual})
				result.Clean = false
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Status returns the on-disk state of every asset in spec order.
func (e *CheckEngine) Status(ctx context.Context, s *spec.Spec) ([]AssetStatus, error) {
	var statuses []AssetStatus

	err := e.walk(ctx, s, func(def spec.Definition, out *generator.Output, renderErr error, files []expectedFile) {
		h := def.Header()
		st := AssetStatus{Asset: h.Name, Kind: h.Type}
		switch {
		case errors.Is(renderErr, errors.ErrUnknownKind):
			st.State = StateUnsupported
		case renderErr != nil:
			st.State = StateError
		default:
			st.Path = files[0].path
			st.State = computeState(e.OutputRoot, files)
		}
		statuses = append(statuses, st)
	})
	if err != nil {
		return nil, err
	}
	return statuses, nil
}

type expectedFile struct {
	path string
	hash string
}

func (e *CheckEngine) walk(ctx context.Context, s *spec.Spec, visit func(spec.Definition, *generator.Output, error, []expectedFile)) error {
	lay := e.Layout
	if lay == nil {
		lay = layout.New(s.Folders)
	}
	for _, def := range s.Assets {
		if err := ctx.Err(); err != nil {
			return err
		}
		out, err := generator.Render(def)
		if err != nil {
			visit(def, nil, err, nil)
			continue
		}
		paths := lay.Resolve(out.Kind, out.Name)
		files := []expectedFile{{paths.File, sandbox.HashContent([]byte(out.Content))}}
		if out.HasMeta() {
			files = append(files, expectedFile{paths.Meta, sandbox.HashContent([]byte(out.Meta))})
		}
		visit(def, out, nil, files)
	}
	return nil
}

// computeState returns missing if any file is absent, drifted if any
// differs, and current otherwise.
func computeState(root string, files []expectedFile) string {
	state := StateCurrent
	for _, f := range files {
		actual, err := sandbox.HashFile(root, f.path)
		if err != nil {
			return StateMissing
		}
		if actual != f.hash {
			state = StateDrifted
		}
	}
	return state
}
