package cmd

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/bianoble/unity-assets/internal/errors"
	"github.com/bianoble/unity-assets/internal/history"
)

var (
	historyProject string
	historyLimit   int
	historyKeep    int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent generate runs",
	Long: `Lists generate runs recorded in the history database, newest first.
Runs are recorded unless --no-history or no_history is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := loadSettings()
		if err != nil {
			return err
		}
		store, err := openHistory(s)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.List(cmd.Context(), historyProject, historyLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			info("No runs recorded.")
			return nil
		}
		return pterm.DefaultTable.WithHasHeader().WithData(historyTable(runs)).Render()
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the assets of one run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := loadSettings()
		if err != nil {
			return err
		}
		store, err := openHistory(s)
		if err != nil {
			return err
		}
		defer store.Close()

		run, err := store.Get(cmd.Context(), args[0])
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("no run with id %s", args[0])
		}
		if err != nil {
			return err
		}

		fmt.Printf("run %s\n", run.ID)
		fmt.Printf("  project:   %s\n", run.Project)
		fmt.Printf("  spec:      %s\n", run.SpecPath)
		fmt.Printf("  output:    %s\n", run.OutputDir)
		fmt.Printf("  started:   %s\n", run.StartedAt.Local().Format(time.DateTime))
		fmt.Printf("  duration:  %s\n", run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond))
		fmt.Printf("  batch:     %s\n", batchLabel(run))
		fmt.Println()

		data := pterm.TableData{{"ASSET", "TYPE", "STATUS", "PATH", "ERROR"}}
		for _, a := range run.Assets {
			data = append(data, []string{a.Name, a.Kind, a.Status, a.Path, a.Error})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the most recent runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := loadSettings()
		if err != nil {
			return err
		}
		store, err := openHistory(s)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Prune(cmd.Context(), historyKeep)
		if err != nil {
			return err
		}
		info("Deleted %d run(s).", n)
		return nil
	},
}

// historyTable renders runs as table rows with a header.
func historyTable(runs []*history.Run) pterm.TableData {
	data := pterm.TableData{{"ID", "STARTED", "PROJECT", "GEN", "UNCH", "SKIP", "FAIL", "BATCH"}}
	for _, r := range runs {
		data = append(data, []string{
			r.ID,
			r.StartedAt.Local().Format(time.DateTime),
			r.Project,
			strconv.Itoa(r.Generated),
			strconv.Itoa(r.Unchanged),
			strconv.Itoa(r.Skipped),
			strconv.Itoa(r.Failed),
			batchLabel(r),
		})
	}
	return data
}

func batchLabel(r *history.Run) string {
	switch {
	case !r.BatchRan:
		return "-"
	case r.BatchSucceeded:
		return "ok"
	default:
		return fmt.Sprintf("exit %d", r.BatchExitCode)
	}
}

func init() {
	historyCmd.Flags().StringVar(&historyProject, "project", "", "only show runs of this project")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to show")
	historyPruneCmd.Flags().IntVar(&historyKeep, "keep", 50, "number of recent runs to keep")
	historyCmd.AddCommand(historyShowCmd, historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}
