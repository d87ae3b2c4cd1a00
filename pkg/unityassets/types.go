package unityassets

import "github.com/bianoble/unity-assets/internal/engine"

// Type aliases re-export engine result types as the public API.

type FileAction = engine.FileAction
type AssetError = engine.AssetError
type SkippedAsset = engine.SkippedAsset
type DriftEntry = engine.DriftEntry
type Counts = engine.Counts
type AssetOutcome = engine.AssetOutcome
type GenerateResult = engine.GenerateResult
type RunResult = engine.RunResult
type AssetStatus = engine.AssetStatus
type CheckResult = engine.CheckResult
type PruneResult = engine.PruneResult
