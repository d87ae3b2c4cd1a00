package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/bianoble/unity-assets/internal/batch"
	"github.com/bianoble/unity-assets/internal/config"
	"github.com/bianoble/unity-assets/internal/engine"
	"github.com/bianoble/unity-assets/internal/history"
	"github.com/bianoble/unity-assets/internal/manifest"
	"github.com/bianoble/unity-assets/internal/spec"
)

func TestHistoryRun(t *testing.T) {
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	finished := started.Add(2 * time.Second)
	res := &engine.RunResult{
		Generate: &engine.GenerateResult{
			Manifest:     manifest.New("Arena", started),
			ManifestPath: "/work/Assets/Generated/manifest.json",
			Counts:       engine.Counts{Generated: 1, Failed: 1},
			Outcomes: []engine.AssetOutcome{
				{Asset: "Crate", Kind: spec.KindPrefab, Path: "Prefabs/Crate.prefab", Status: engine.StatusGenerated},
				{Asset: "Broken", Kind: spec.KindMaterial, Status: engine.StatusFailed, Err: errors.New("bad shader")},
			},
		},
		Batch: &batch.Result{Succeeded: false, ExitCode: 3},
	}

	run := historyRun("/work/assets.yaml", res, started, finished)

	if run.ID == "" {
		t.Error("run ID should be set")
	}
	if run.Project != "Arena" {
		t.Errorf("Project = %q, want Arena", run.Project)
	}
	if run.OutputDir != "/work/Assets/Generated" {
		t.Errorf("OutputDir = %q", run.OutputDir)
	}
	if run.Generated != 1 || run.Failed != 1 {
		t.Errorf("counts = %d generated, %d failed", run.Generated, run.Failed)
	}
	if !run.BatchRan || run.BatchSucceeded || run.BatchExitCode != 3 {
		t.Errorf("batch = ran %v, ok %v, exit %d", run.BatchRan, run.BatchSucceeded, run.BatchExitCode)
	}
	if len(run.Assets) != 2 {
		t.Fatalf("got %d assets, want 2", len(run.Assets))
	}
	if run.Assets[1].Error != "bad shader" {
		t.Errorf("asset error = %q", run.Assets[1].Error)
	}
	if run.Assets[0].Kind != "prefab" {
		t.Errorf("asset kind = %q", run.Assets[0].Kind)
	}
}

func TestBatchLabel(t *testing.T) {
	tests := []struct {
		run  history.Run
		want string
	}{
		{history.Run{}, "-"},
		{history.Run{BatchRan: true, BatchSucceeded: true}, "ok"},
		{history.Run{BatchRan: true, BatchExitCode: 2}, "exit 2"},
	}
	for _, tt := range tests {
		if got := batchLabel(&tt.run); got != tt.want {
			t.Errorf("batchLabel(%+v) = %q, want %q", tt.run, got, tt.want)
		}
	}
}

func TestApplyGenerateFlags(t *testing.T) {
	oldUnity, oldParallel, oldNoHistory := genUnity, genParallel, genNoHistory
	t.Cleanup(func() { genUnity, genParallel, genNoHistory = oldUnity, oldParallel, oldNoHistory })

	genUnity = "/opt/unity/Editor/Unity"
	genParallel = 4
	genNoHistory = true

	s := &config.Settings{UnityPath: "/from/settings", Parallelism: 2}
	applyGenerateFlags(s)

	if s.UnityPath != "/opt/unity/Editor/Unity" {
		t.Errorf("UnityPath = %q", s.UnityPath)
	}
	if s.Parallelism != 4 {
		t.Errorf("Parallelism = %d", s.Parallelism)
	}
	if !s.HistoryDisabled() {
		t.Error("history should be disabled")
	}
}

func TestApplyGenerateFlagsKeepsSettings(t *testing.T) {
	oldUnity, oldParallel, oldNoHistory := genUnity, genParallel, genNoHistory
	t.Cleanup(func() { genUnity, genParallel, genNoHistory = oldUnity, oldParallel, oldNoHistory })

	genUnity, genParallel, genNoHistory = "", 0, false

	s := &config.Settings{UnityPath: "/from/settings", Parallelism: 2}
	applyGenerateFlags(s)

	if s.UnityPath != "/from/settings" || s.Parallelism != 2 || s.HistoryDisabled() {
		t.Errorf("settings changed: %+v", s)
	}
}
