package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/bianoble/unity-assets/internal/batch"
	"github.com/bianoble/unity-assets/internal/config"
	"github.com/bianoble/unity-assets/internal/history"
	"github.com/bianoble/unity-assets/internal/logger"
	"github.com/bianoble/unity-assets/internal/watch"
	"github.com/bianoble/unity-assets/pkg/unityassets"
)

var (
	genSpec      string
	genOutput    string
	genUnity     string
	genDryRun    bool
	genSkipBatch bool
	genTimeout   time.Duration
	genParallel  int
	genWatch     bool
	genNoHistory bool
	genLogFile   string
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate Unity files from the asset spec",
	Long: `Renders every asset in the spec, writes changed files with their .meta
companions and the asset manifest, then runs Unity in batch mode when some
assets need the editor to import them.

Unknown asset types are skipped with a warning. A failed editor run keeps the
generated files. Exits non-zero when any asset failed or the editor run failed.

With --watch, the spec is regenerated whenever it changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := loadSettings()
		if err != nil {
			return err
		}
		applyGenerateFlags(s)

		client, err := newClient(genSpec, genOutput, s)
		if err != nil {
			return err
		}

		runErr := runGenerate(cmd.Context(), client, s)
		if !genWatch {
			return runErr
		}
		if runErr != nil {
			errorf("%s", runErr)
		}

		w, err := watch.New([]string{client.SpecPath()}, s.DebounceDuration(),
			func(ctx context.Context, changed []string) error {
				return runGenerate(ctx, client, s)
			}, logger.ComponentLogger("watch"))
		if err != nil {
			return err
		}
		info("Watching %s (Ctrl+C to stop)", client.SpecPath())
		return w.Run(cmd.Context())
	},
}

// applyGenerateFlags lets command-line flags override settings.
func applyGenerateFlags(s *config.Settings) {
	if genUnity != "" {
		s.UnityPath = genUnity
	}
	if genParallel > 0 {
		s.Parallelism = genParallel
	}
	if genNoHistory {
		off := true
		s.NoHistory = &off
	}
}

// runGenerate performs one generation run, prints its report and records
// it in the run history.
func runGenerate(ctx context.Context, client *unityassets.Client, s *config.Settings) error {
	started := time.Now()
	opts := unityassets.GenerateOptions{
		DryRun:    genDryRun,
		SkipBatch: genSkipBatch,
		Timeout:   genTimeout,
		LogFile:   genLogFile,
	}
	if printVerbose() {
		opts.EditorOutput = os.Stderr
	}

	res, err := client.Generate(ctx, opts)
	if res != nil && res.Generate != nil {
		printRun(res)
		if !s.HistoryDisabled() && !genDryRun {
			recordRun(ctx, s, client, res, started)
		}
	}
	if err != nil {
		return err
	}

	if n := res.Generate.Counts.Failed; n > 0 {
		return fmt.Errorf("%d asset(s) failed", n)
	}
	if res.Batch != nil && !res.Batch.Succeeded {
		return fmt.Errorf("unity batch run failed with exit code %d", res.Batch.ExitCode)
	}
	return nil
}

func printRun(res *unityassets.RunResult) {
	gen := res.Generate
	if gen.DryRun {
		info("Dry run: no files written.")
	}

	for _, f := range gen.Files {
		if f.Action == "unchanged" {
			detail("%s  %s", f.Action, f.Path)
			continue
		}
		info("  %-9s %s", f.Action, f.Path)
	}
	for _, sk := range gen.Skipped {
		warnf("skipped %s (%s): %s", sk.Asset, sk.Kind, sk.Reason)
	}
	for _, e := range gen.Errors {
		errorf("%s (%s): %s", e.Asset, e.Kind, e.Err)
	}
	for _, w := range gen.Warnings {
		warnf("%s", w)
	}
	for _, w := range res.Warnings {
		warnf("%s", w)
	}

	if res.Bridge != nil && res.Bridge.Written {
		detail("installed editor bridge %s", res.Bridge.Path)
	}
	switch {
	case res.Batch != nil:
		printBatch(res.Batch)
	case res.BatchSkipReason != "":
		detail("editor import skipped: %s", res.BatchSkipReason)
	}

	c := gen.Counts
	info("")
	info("Generate complete: %d generated, %d unchanged, %d skipped, %d failed.",
		c.Generated, c.Unchanged, c.Skipped, c.Failed)
}

func printBatch(r *batch.Result) {
	if r.Succeeded {
		success("Unity import finished in %s.", r.Duration.Round(time.Millisecond))
		detail("log: %s", r.LogPath)
		return
	}

	switch {
	case r.TimedOut:
		errorf("Unity did not finish before the timeout")
	case r.Canceled:
		errorf("Unity run canceled")
	default:
		errorf("Unity exited with code %d", r.ExitCode)
	}
	info("  log: %s", r.LogPath)
	if r.HasTail {
		info("  last lines:")
		info("%s", r.LogTail)
	} else {
		info("  no log output available")
	}
}

// recordRun stores the run in the history database. Failures only warn.
func recordRun(ctx context.Context, s *config.Settings, client *unityassets.Client, res *unityassets.RunResult, started time.Time) {
	store, err := openHistory(s)
	if err != nil {
		warnf("run history unavailable: %s", err)
		return
	}
	defer store.Close()

	run := historyRun(client.SpecPath(), res, started, time.Now())
	if err := store.Record(ctx, run); err != nil {
		warnf("recording run history: %s", err)
		return
	}
	detail("recorded run %s", run.ID)
}

// historyRun converts a run result into a history record.
func historyRun(specPath string, res *unityassets.RunResult, started, finished time.Time) *history.Run {
	gen := res.Generate
	run := &history.Run{
		ID:         history.NewRunID(),
		Project:    gen.Manifest.Project,
		SpecPath:   specPath,
		OutputDir:  filepath.Dir(gen.ManifestPath),
		StartedAt:  started,
		FinishedAt: finished,
		DryRun:     gen.DryRun,
		Generated:  gen.Counts.Generated,
		Unchanged:  gen.Counts.Unchanged,
		Skipped:    gen.Counts.Skipped,
		Failed:     gen.Counts.Failed,
		BatchRan:   res.BatchRan(),
	}
	if res.Batch != nil {
		run.BatchSucceeded = res.Batch.Succeeded
		run.BatchExitCode = res.Batch.ExitCode
	}
	for _, o := range gen.Outcomes {
		a := history.Asset{Name: o.Asset, Kind: string(o.Kind), Path: o.Path, Status: o.Status}
		if o.Err != nil {
			a.Error = o.Err.Error()
		}
		run.Assets = append(run.Assets, a)
	}
	return run
}

func init() {
	addSpecFlags(generateCmd, &genSpec, &genOutput)
	generateCmd.Flags().StringVar(&genUnity, "unity", "", "path to the Unity editor executable")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "show what would change without writing files")
	generateCmd.Flags().BoolVar(&genSkipBatch, "skip-batch", false, "never launch the Unity editor")
	generateCmd.Flags().DurationVar(&genTimeout, "timeout", 0, fmt.Sprintf("editor run timeout (default %s)", batch.DefaultTimeout))
	generateCmd.Flags().IntVar(&genParallel, "parallel", 0, "number of assets rendered concurrently")
	generateCmd.Flags().BoolVar(&genWatch, "watch", false, "regenerate when the spec changes")
	generateCmd.Flags().BoolVar(&genNoHistory, "no-history", false, "do not record the run in the history database")
	generateCmd.Flags().StringVar(&genLogFile, "log-file", "", "editor log file path")
	rootCmd.AddCommand(generateCmd)
}
