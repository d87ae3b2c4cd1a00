package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bianoble/unity-assets/pkg/unityassets"
)

var (
	pruneSpec   string
	pruneOutput string
	pruneDryRun bool
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove generated files no longer declared in the spec",
	Long: `Compares the assets in the spec against the manifest of the previous run.
Removes files (and their .meta companions) that were generated before but are
no longer declared. Use --dry-run to see what would be removed without acting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := loadSettings()
		if err != nil {
			return err
		}
		client, err := newClient(pruneSpec, pruneOutput, s)
		if err != nil {
			return err
		}

		result, err := client.Prune(cmd.Context(), unityassets.PruneOptions{DryRun: pruneDryRun})
		if err != nil {
			return err
		}

		if pruneDryRun {
			info("Dry run: no files removed.")
		}

		if len(result.Removed) == 0 && len(result.Errors) == 0 {
			info("Nothing to prune.")
			return nil
		}

		for _, f := range result.Removed {
			info("  %s  %s", f.Action, f.Path)
		}
		info("")
		info("Pruned %d file(s).", len(result.Removed))

		if len(result.Errors) > 0 {
			for _, e := range result.Errors {
				errorf("%s", e)
			}
			return fmt.Errorf("%d error(s) during prune", len(result.Errors))
		}
		return nil
	},
}

func init() {
	addSpecFlags(pruneCmd, &pruneSpec, &pruneOutput)
	pruneCmd.Flags().BoolVar(&pruneDryRun, "dry-run", false, "show what would be removed without acting")
	rootCmd.AddCommand(pruneCmd)
}
