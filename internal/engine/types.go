package engine

import (
	"github.com/bianoble/unity-assets/internal/batch"
	"github.com/bianoble/unity-assets/internal/bridge"
	"github.com/bianoble/unity-assets/internal/manifest"
	"github.com/bianoble/unity-assets/internal/spec"
)

// File actions reported in results.
const (
	ActionWritten   = "written"
	ActionModified  = "modified"
	ActionNew       = "new"
	ActionUnchanged = "unchanged"
	ActionRemoved   = "removed"
)

// FileAction represents an action taken on a single file during generate or prune.
type FileAction struct {
	Path   string
	Action string
}

// AssetError represents an error associated with a specific asset.
type AssetError struct {
	Asset string
	Kind  spec.Kind
	Err   error
}

func (e AssetError) Error() string {
	return e.Asset + ": " + e.Err.Error()
}

func (e AssetError) Unwrap() error {
	return e.Err
}

// SkippedAsset is an asset that was not generated.
type SkippedAsset struct {
	Asset  string
	Kind   spec.Kind
	Reason string
}

// DriftEntry represents a file that has drifted from the expected state.
type DriftEntry struct {
	Path     string
	Expected string
	Actual   string
}

// Counts summarizes a generation run per asset.
type Counts struct {
	Generated int
	Unchanged int
	Skipped   int
	Failed    int
}

// GenerateResult holds the outcome of a generate operation.
type GenerateResult struct {
	DryRun bool
	// Files are in write order; dry runs report new/modified/unchanged.
	Files    []FileAction
	Skipped  []SkippedAsset
	Errors   []AssetError
	Warnings []string

	Counts       Counts
	Manifest     *manifest.Manifest
	ManifestPath string
	// Outcomes lists every asset in input order.
	Outcomes []AssetOutcome
}

// AssetOutcome is what happened to one asset.
type AssetOutcome struct {
	Asset  string
	Kind   spec.Kind
	Path   string
	Status string // "generated", "unchanged", "skipped", "failed"
	Err    error
}

// Asset outcome statuses.
const (
	StatusGenerated = "generated"
	StatusUnchanged = "unchanged"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// RunResult holds the outcome of generation plus the optional batch run.
type RunResult struct {
	Generate *GenerateResult

	// UnityProject is empty when no project was found.
	UnityProject string
	Bridge       *bridge.Installation
	// Batch is nil when the editor was not launched; BatchSkipReason says why.
	Batch           *batch.Result
	BatchSkipReason string
	Warnings        []string
}

// BatchRan reports whether the editor was launched.
func (r *RunResult) BatchRan() bool {
	return r.Batch != nil
}

// AssetStatus describes the on-disk state of one asset.
type AssetStatus struct {
	Asset string
	Kind  spec.Kind
	Path  string
	State string // "current", "drifted", "missing", "unsupported", "error"
}

// Asset states reported by Status.
const (
	StateCurrent     = "current"
	StateDrifted     = "drifted"
	StateMissing     = "missing"
	StateUnsupported = "unsupported"
	StateError       = "error"
)

// CheckResult holds the outcome of a check operation.
type CheckResult struct {
	Clean   bool
	Drifted []DriftEntry
	Missing []string
	Errors  []AssetError
}

// PruneResult holds the outcome of a prune operation.
type PruneResult struct {
	Removed []FileAction
	Errors  []error
}
